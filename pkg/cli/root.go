package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/bigodev/bigod/pkg/logging"
	"github.com/bigodev/bigod/pkg/serializers"
)

const (
	name           = "bigod"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Flags shared across commands. Built fresh per command because the cli
// library stores parsed state inside the flag struct.
func outputFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "Write output to the given file instead of stdout",
	}
}

func formatFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:  "format",
		Value: string(serializers.FormatJSON),
		Usage: "Output format (json, yaml, table)",
	}
}

// New builds the root command with all subcommands attached.
func New() *cli.Command {
	return &cli.Command{
		Name:                  name,
		Version:               version,
		EnableShellCompletion: true,
		Usage:                 "Algorithmic complexity analysis via a hosted language model",
		Description: fmt.Sprintf(`bigod - Big-O complexity analyzer

Version: %s
Commit:  %s
Built:   %s

Estimates worst-case time and space complexity of a code snippet, with a
short explanation for each, using a hosted language model.`, version, commit, date),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "log-level",
				Value: "info",
				Usage: "Log level (debug, info, warn, error)",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) error {
			logging.SetDefaultStructuredLoggerWithLevel(name, version, cmd.String("log-level"))
			return nil
		},
		Commands: []*cli.Command{
			serveCmd(),
			analyzeCmd(),
		},
	}
}

// Execute runs the root command with signal-aware cancellation. It is called
// by main.main() and exits the process on error.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(),
		syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := New().Run(ctx, os.Args); err != nil {
		slog.Error("command failed", "error", err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
