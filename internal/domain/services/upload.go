package services

import (
	"context"
	"io"

	"filedrive/internal/domain/models"
)

// UploadService accepts a file payload, stores the bytes through the
// blob-store collaborator and records the resulting metadata
type UploadService interface {
	Upload(ctx context.Context, req *UploadRequest) (*models.File, error)
}

// UploadRequest represents a file upload
type UploadRequest struct {
	UserID      string
	DirectoryID string
	Filename    string
	Content     io.Reader
}
