package llm

import (
	"context"
	"errors"
)

// CompletionRequest is a single-turn completion: one system prompt, one user
// message. Session threading is the provider's concern, keyed by SessionID.
type CompletionRequest struct {
	SystemPrompt string
	UserMessage  string
	SessionID    string
	MaxTokens    int
	Temperature  float32
}

// Provider abstracts the hosted language model. Exactly one implementation is
// active per process, selected at configuration time.
type Provider interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}

// ErrProvider marks quota, timeout, network and malformed-response failures.
// Callers treat any error wrapping it as a signal to degrade, not to fail.
var ErrProvider = errors.New("llm provider error")

func IsProviderError(err error) bool {
	return errors.Is(err, ErrProvider)
}
