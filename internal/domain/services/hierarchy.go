package services

import (
	"context"

	"filedrive/internal/domain/models"
)

// HierarchyService handles directory/file tree business logic
type HierarchyService interface {
	// CreateDirectory creates a directory under an existing parent
	// owned by the same user
	CreateDirectory(ctx context.Context, req *CreateDirectoryRequest) (*models.Directory, error)

	// EnsureRootDirectory returns the user's root directory, creating
	// it on first use
	EnsureRootDirectory(ctx context.Context, userID string) (*models.Directory, error)

	// GetDirectory retrieves a single directory
	GetDirectory(ctx context.Context, directoryID string) (*models.Directory, error)

	// ListDirectory returns a directory with its immediate children
	ListDirectory(ctx context.Context, directoryID string) (*models.DirectoryListing, error)

	// DeleteDirectory removes a directory and everything beneath it in
	// a single transaction
	DeleteDirectory(ctx context.Context, directoryID string) error

	// CreateFile records file metadata inside a directory owned by the
	// given user
	CreateFile(ctx context.Context, req *CreateFileRequest) (*models.File, error)

	// GetFile retrieves file metadata
	GetFile(ctx context.Context, fileID string) (*models.File, error)

	// DeleteFile removes a file
	DeleteFile(ctx context.Context, fileID string) error
}

// CreateDirectoryRequest represents a directory creation request
type CreateDirectoryRequest struct {
	UserID   string `json:"-"`
	ParentID string `json:"parent_id"`
	Name     string `json:"name"`
}

// CreateFileRequest represents a file metadata creation request
type CreateFileRequest struct {
	UserID      string
	DirectoryID string
	Name        string
	Extension   string
	FileURL     string
}
