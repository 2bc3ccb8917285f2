package port

import "context"

// GenerationParams tunes a single language-model completion.
type GenerationParams struct {
	MaxTokens   int
	Temperature float32
	// JSON asks the backend to constrain output to a JSON object when it
	// supports doing so.
	JSON bool
}

// CopyWriter is a language-model text completion backend. Responses are
// free text with no guaranteed schema.
type CopyWriter interface {
	// Name identifies the backend in logs, metrics and results.
	Name() string
	Complete(ctx context.Context, prompt string, params GenerationParams) (string, error)
}

// QuotaGuard meters calls to paid backends. Allow reports whether one more
// call under key fits in the current window.
type QuotaGuard interface {
	Allow(ctx context.Context, key string) (bool, error)
}
