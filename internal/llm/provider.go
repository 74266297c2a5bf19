package llm

import "context"

// Provider is a blocking chat completion backend. Implementations hold
// no per-call state and are safe for concurrent use.
type Provider interface {
	// Complete sends one completion request and blocks until the full
	// answer is available.
	Complete(ctx context.Context, req CompletionRequest) (*CompletionResponse, error)
	// Name returns the provider identifier.
	Name() string
}
