package repositories

import (
	"context"

	"filedrive/internal/domain/models"
)

// FileRepository handles file metadata persistence
type FileRepository interface {
	// Create creates a new file row
	Create(ctx context.Context, file *models.File) error

	// GetByID retrieves a file by ID
	GetByID(ctx context.Context, id string) (*models.File, error)

	// ListByDirectory lists files in a directory, name-ordered
	ListByDirectory(ctx context.Context, directoryID string) ([]models.File, error)

	// Delete removes a file row
	Delete(ctx context.Context, id string) error

	// DeleteByDirectoryIDs removes all files contained in the given
	// directories
	DeleteByDirectoryIDs(ctx context.Context, directoryIDs []string) error
}
