package provinv

import "context"

// Completer transports a prompt to a text-generation model and
// returns the raw completion text. Implementations only move bytes:
// they do not interpret the content and do not retry.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
