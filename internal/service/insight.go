package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"filedrive/internal/config"
	"filedrive/internal/domain"
	"filedrive/internal/domain/models"
	"filedrive/internal/domain/services"
)

// EmptyDirectoryMessage is returned for directories with no files. This
// is a normal response, not an error, and the completion collaborator is
// never contacted for it.
const EmptyDirectoryMessage = "The directory contains no files."

type insightService struct {
	hierarchy services.HierarchyService
	provider  services.CompletionProvider
	model     string
	maxTokens int
	logger    *slog.Logger
}

// NewInsightService creates a new insight service
func NewInsightService(
	hierarchy services.HierarchyService,
	provider services.CompletionProvider,
	model string,
	maxTokens int,
	logger *slog.Logger,
) services.InsightService {
	return &insightService{
		hierarchy: hierarchy,
		provider:  provider,
		model:     model,
		maxTokens: maxTokens,
		logger:    logger,
	}
}

// SummarizeDirectory reads the directory's file metadata, composes a
// prompt from identifier and extension pairs, and relays the model's
// response. A single attempt, bounded tokens, fixed low temperature.
func (s *insightService) SummarizeDirectory(ctx context.Context, directoryID string) (string, error) {
	listing, err := s.hierarchy.ListDirectory(ctx, directoryID)
	if err != nil {
		return "", err
	}

	descriptors := make([]models.FileDescriptor, 0, len(listing.Files))
	for _, f := range listing.Files {
		descriptors = append(descriptors, models.FileDescriptor{
			ID:        f.ID,
			Extension: f.Extension,
		})
	}

	if len(descriptors) == 0 {
		return EmptyDirectoryMessage, nil
	}

	text, err := s.provider.Complete(ctx, &services.CompletionRequest{
		Model:       s.model,
		Prompt:      buildSummaryPrompt(descriptors),
		MaxTokens:   s.maxTokens,
		Temperature: config.InsightTemperature,
	})
	if err != nil {
		return "", fmt.Errorf("completion failed: %v: %w", err, domain.ErrUpstream)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return "", fmt.Errorf("model returned an empty completion: %w", domain.ErrUpstream)
	}

	s.logger.Info("directory summarized",
		"directory_id", directoryID,
		"file_count", len(descriptors),
		"provider", s.provider.Name(),
	)

	return text, nil
}

// buildSummaryPrompt lists each file as an identifier/extension pair.
// File contents never reach the model.
func buildSummaryPrompt(files []models.FileDescriptor) string {
	var b strings.Builder
	b.WriteString("A directory contains the following files, listed as identifier and extension:\n")
	for _, f := range files {
		ext := f.Extension
		if ext == "" {
			ext = "none"
		}
		fmt.Fprintf(&b, "- %s (%s)\n", f.ID, ext)
	}
	b.WriteString("In at most two short sentences, describe what kind of content this directory likely holds.")
	return b.String()
}
