package model

import "context"

// LanguageModel submits a text prompt and returns the completion text. The
// returned text carries no schema guarantee.
type LanguageModel interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
