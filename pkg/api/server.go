package api

import (
	"context"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/bigodev/bigod/pkg/analysis"
	"github.com/bigodev/bigod/pkg/llm"
	"github.com/bigodev/bigod/pkg/logging"
	"github.com/bigodev/bigod/pkg/server"
)

const (
	name           = "bigod-api-server"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags to reflect actual version info
	// e.g., -X "github.com/bigodev/bigod/pkg/api.version=1.0.0"
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Serve starts the API server and blocks until shutdown.
// It configures logging, builds the analysis pipeline from the environment,
// sets up routes, and handles graceful shutdown. A missing or invalid model
// configuration does not prevent startup: the server comes up and reports
// the degraded payload on /analyze until the configuration is fixed.
func Serve() error {
	ctx, stop := signal.NotifyContext(context.Background(),
		syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Optional .env file for local development, ignored when absent.
	_ = godotenv.Load()

	logging.SetDefaultStructuredLogger(name, version)
	slog.Info("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
	)

	h := analysis.NewHandler(buildPipeline())

	r := map[string]http.HandlerFunc{
		"/":        h.HandleIndex,
		"/analyze": h.HandleAnalyze,
	}

	s := server.New(
		server.WithName(name),
		server.WithVersion(version),
		server.WithHandler(r),
	)

	if err := s.Run(ctx); err != nil {
		slog.Error("server exited with error", "error", err)
		return err
	}

	return nil
}

// buildPipeline constructs the analysis pipeline from environment
// configuration. Returns nil when the model client cannot be created, which
// the handler treats as the unconfigured state.
func buildPipeline() *analysis.Pipeline {
	client, err := llm.NewDeepSeek(llm.ConfigFromEnv())
	if err != nil {
		slog.Error("model client unavailable, serving degraded", "error", err)
		return nil
	}

	p, err := analysis.NewPipeline(client)
	if err != nil {
		slog.Error("pipeline construction failed, serving degraded", "error", err)
		return nil
	}

	slog.Info("analysis pipeline ready", "model", "deepseek")
	return p
}
