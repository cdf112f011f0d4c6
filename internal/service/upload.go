package service

import (
	"context"
	"fmt"
	"log/slog"
	"path"
	"strings"

	"github.com/google/uuid"

	"filedrive/internal/domain"
	"filedrive/internal/domain/models"
	"filedrive/internal/domain/services"
	"filedrive/internal/storage"
)

type uploadService struct {
	hierarchy services.HierarchyService
	blobs     storage.BlobStore
	logger    *slog.Logger
}

// NewUploadService creates a new upload gateway service
func NewUploadService(
	hierarchy services.HierarchyService,
	blobs storage.BlobStore,
	logger *slog.Logger,
) services.UploadService {
	return &uploadService{
		hierarchy: hierarchy,
		blobs:     blobs,
		logger:    logger,
	}
}

// Upload stores the payload through the blob store and records the
// resulting metadata. If the metadata write fails after the blob was
// stored, the orphaned blob is not reconciled; the error says which key
// was left behind.
func (s *uploadService) Upload(ctx context.Context, req *services.UploadRequest) (*models.File, error) {
	switch {
	case req.DirectoryID == "":
		return nil, fmt.Errorf("directory ID is required: %w", domain.ErrValidation)
	case req.Filename == "":
		return nil, fmt.Errorf("filename is required: %w", domain.ErrValidation)
	case req.Content == nil:
		return nil, fmt.Errorf("file payload is required: %w", domain.ErrValidation)
	}

	name, extension := splitFilename(req.Filename)

	key := path.Join(req.UserID, req.DirectoryID, uuid.NewString()+"-"+req.Filename)
	url, err := s.blobs.Save(ctx, key, req.Content)
	if err != nil {
		return nil, fmt.Errorf("store blob: %v: %w", err, domain.ErrStorage)
	}

	file, err := s.hierarchy.CreateFile(ctx, &services.CreateFileRequest{
		UserID:      req.UserID,
		DirectoryID: req.DirectoryID,
		Name:        name,
		Extension:   extension,
		FileURL:     url,
	})
	if err != nil {
		return nil, fmt.Errorf("metadata write failed, blob %q is orphaned: %w", key, err)
	}

	s.logger.Info("file uploaded",
		"id", file.ID,
		"name", file.Name,
		"extension", file.Extension,
		"directory_id", file.DirectoryID,
		"key", key,
	)

	return file, nil
}

// splitFilename separates the base name from the extension after the
// last dot. A filename without a dot has an empty extension.
func splitFilename(filename string) (name, extension string) {
	idx := strings.LastIndex(filename, ".")
	if idx < 0 {
		return filename, ""
	}
	return filename[:idx], filename[idx+1:]
}
