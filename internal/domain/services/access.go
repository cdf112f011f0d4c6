package services

import (
	"context"

	"filedrive/internal/domain/models"
)

// AccessService records and ranks directory access frequency
type AccessService interface {
	// RecordAccess increments the directory's access counter. The
	// increment is a single atomic update in the store; the timestamp
	// is last-writer-wins.
	RecordAccess(ctx context.Context, directoryID string) error

	// MostAccessed returns the user's most frequently accessed
	// directory, or nil when no directory has been accessed yet
	MostAccessed(ctx context.Context, userID string) (*models.Directory, error)
}
