package analysis

import (
	"context"
	"log/slog"

	"github.com/bigodev/bigod/pkg/llm"
	"github.com/bigodev/bigod/pkg/prompt"
)

// Pipeline ties prompt rendering, model invocation, and output parsing into
// a single operation. It is constructed once at startup, holds no mutable
// per-request state, and is safe for concurrent use.
type Pipeline struct {
	renderer *prompt.Renderer
	client   llm.Client
}

// NewPipeline creates a Pipeline around the given model client. The prompt
// renderer is built from the Result schema so format instructions always
// match what the parser enforces.
func NewPipeline(client llm.Client) (*Pipeline, error) {
	renderer, err := prompt.NewRenderer(Result{})
	if err != nil {
		return nil, err
	}

	return &Pipeline{
		renderer: renderer,
		client:   client,
	}, nil
}

// Analyze runs the pipeline stages in strict sequence: render the
// prompt, invoke the model, parse the output. Each stage gates the next; a
// single failure surfaces as a single error with no retries.
func (p *Pipeline) Analyze(ctx context.Context, req Request) (Result, error) {
	human := p.renderer.Human(req.Language, req.Code)

	raw, err := p.client.Complete(ctx, p.renderer.System(), human)
	if err != nil {
		slog.Error("model invocation failed", "error", err, "language", req.Language)
		return Result{}, err
	}

	result, err := ParseResult(raw)
	if err != nil {
		slog.Error("model output failed schema parsing", "error", err)
		return Result{}, err
	}

	return result, nil
}
