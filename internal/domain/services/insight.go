package services

import "context"

// InsightService forwards a directory's file metadata to the completion
// collaborator and relays the response text
type InsightService interface {
	// SummarizeDirectory returns a short model-generated note about the
	// files in a directory. An empty directory yields a fixed message
	// without contacting the collaborator.
	SummarizeDirectory(ctx context.Context, directoryID string) (string, error)
}
