package openai

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	"filedrive/internal/domain/services"
)

// Provider implements the CompletionProvider interface against the
// OpenAI chat-completions API.
type Provider struct {
	client *openai.Client
}

// NewProvider creates a new OpenAI provider with the given API key.
func NewProvider(apiKey string) (*Provider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("openai API key is required")
	}

	return &Provider{
		client: openai.NewClient(apiKey),
	}, nil
}

// Name returns the provider name.
func (p *Provider) Name() string {
	return "openai"
}

// Complete issues a single chat completion and returns the response text.
// One attempt only; the caller surfaces failures without retrying.
func (p *Provider) Complete(ctx context.Context, req *services.CompletionRequest) (string, error) {
	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: req.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: req.Prompt},
		},
		MaxTokens:   req.MaxTokens,
		Temperature: req.Temperature,
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat completion returned no choices")
	}

	return resp.Choices[0].Message.Content, nil
}
