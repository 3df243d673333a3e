package cli

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/bigodev/bigod/pkg/api"
)

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:                  "serve",
		EnableShellCompletion: true,
		Usage:                 "Run the analysis API server",
		Description: `Run the HTTP API server exposing POST /analyze plus the health, readiness,
and metrics endpoints. The server reads its configuration from the
environment (PORT, DEEPSEEK_API_KEY, DEEPSEEK_API_URL, BIGOD_MODEL) and
an optional .env file, and shuts down gracefully on SIGINT/SIGTERM.`,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return api.Serve()
		},
	}
}
