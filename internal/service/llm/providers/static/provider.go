package static

import (
	"context"

	"filedrive/internal/domain/services"
)

// Provider is a canned-response CompletionProvider for development and
// tests. It never leaves the process and never fails.
type Provider struct{}

// NewProvider creates a new static provider.
func NewProvider() *Provider {
	return &Provider{}
}

// Name returns the provider name.
func (p *Provider) Name() string {
	return "static"
}

// Complete returns a fixed response regardless of the prompt.
func (p *Provider) Complete(_ context.Context, _ *services.CompletionRequest) (string, error) {
	return "This directory holds a small mix of files; nothing stands out.", nil
}
