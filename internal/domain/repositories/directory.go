package repositories

import (
	"context"

	"filedrive/internal/domain/models"
)

// DirectoryRepository handles directory persistence
type DirectoryRepository interface {
	// Create creates a new directory
	Create(ctx context.Context, dir *models.Directory) error

	// GetByID retrieves a directory by ID
	GetByID(ctx context.Context, id string) (*models.Directory, error)

	// GetRoot retrieves the root directory for a user.
	// Returns domain.ErrNotFound when the user has no root yet.
	GetRoot(ctx context.Context, userID string) (*models.Directory, error)

	// ListChildren lists immediate child directories, name-ordered
	ListChildren(ctx context.Context, parentID string) ([]models.Directory, error)

	// ListSubtreeIDs returns the given directory ID plus the IDs of all
	// its descendants
	ListSubtreeIDs(ctx context.Context, id string) ([]string, error)

	// DeleteByIDs removes the given directories
	DeleteByIDs(ctx context.Context, ids []string) error

	// IncrementAccess atomically bumps the access counter and refreshes
	// the last-accessed timestamp
	IncrementAccess(ctx context.Context, id string) error

	// MostAccessed returns the user's directory with the highest access
	// counter, ties broken by most recent access. Returns (nil, nil)
	// when the user owns no directory with a nonzero counter.
	MostAccessed(ctx context.Context, userID string) (*models.Directory, error)
}
