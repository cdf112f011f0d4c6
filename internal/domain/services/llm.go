package services

import "context"

// CompletionRequest is a single-shot text completion request
type CompletionRequest struct {
	Model       string
	Prompt      string
	MaxTokens   int
	Temperature float32
}

// CompletionProvider abstracts the text-completion collaborator.
// Implementations perform exactly one attempt; retry policy belongs to
// callers, and no caller retries.
type CompletionProvider interface {
	// Name returns the provider name for logging
	Name() string

	// Complete issues one completion and returns the response text
	Complete(ctx context.Context, req *CompletionRequest) (string, error)
}
