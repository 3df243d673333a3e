package llm

import "context"

// Client is a minimal abstraction for chat-based models used by the
// analysis pipeline. It intentionally hides the concrete provider so the
// pipeline can be exercised with a stub in tests.
type Client interface {
	// Complete sends a system prompt and a user prompt to the model and
	// returns the raw text of the first completion choice.
	Complete(ctx context.Context, system, user string) (string, error)
}
