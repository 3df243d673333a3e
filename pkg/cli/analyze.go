package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"

	"github.com/bigodev/bigod/pkg/analysis"
	"github.com/bigodev/bigod/pkg/llm"
	"github.com/bigodev/bigod/pkg/serializers"
)

func analyzeCmd() *cli.Command {
	return &cli.Command{
		Name:                  "analyze",
		EnableShellCompletion: true,
		Usage:                 "Analyze a code snippet for time and space complexity",
		Description: `Analyze a code snippet and report its worst-case time and space complexity
in Big-O notation, each with a short explanation.

The snippet is read from the file given with --file ("-" reads stdin).
Model access requires DEEPSEEK_API_KEY in the environment or a local .env
file. The result can be output in JSON, YAML, or table format.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "file",
				Aliases:  []string{"f"},
				Required: true,
				Usage:    `Path to the code snippet to analyze ("-" for stdin)`,
			},
			&cli.StringFlag{
				Name:     "language",
				Aliases:  []string{"l"},
				Required: true,
				Usage:    "Language of the snippet (e.g., python, go, javascript)",
			},
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			// Parse output format
			outFormat := serializers.Format(cmd.String("format"))
			if outFormat.IsUnknown() {
				return fmt.Errorf("unknown output format: %q", outFormat)
			}

			code, err := readSnippet(cmd.String("file"))
			if err != nil {
				return fmt.Errorf("failed to read code snippet: %w", err)
			}

			// Optional .env file for local development, ignored when absent.
			_ = godotenv.Load()

			client, err := llm.NewDeepSeek(llm.ConfigFromEnv())
			if err != nil {
				return fmt.Errorf("model client unavailable: %w", err)
			}

			pipeline, err := analysis.NewPipeline(client)
			if err != nil {
				return fmt.Errorf("failed to construct analysis pipeline: %w", err)
			}

			result, err := pipeline.Analyze(ctx, analysis.Request{
				Code:     code,
				Language: cmd.String("language"),
			})
			if err != nil {
				return fmt.Errorf("analysis failed: %w", err)
			}

			ser := serializers.NewFileWriterOrStdout(outFormat, cmd.String("output"))
			defer func() {
				if err := ser.Close(); err != nil {
					slog.Warn("failed to close serializer", "error", err)
				}
			}()

			return ser.Serialize(result)
		},
	}
}

// readSnippet loads the snippet from a file path, or stdin when path is "-".
func readSnippet(path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
