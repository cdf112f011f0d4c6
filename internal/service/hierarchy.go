package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"filedrive/internal/config"
	"filedrive/internal/domain"
	"filedrive/internal/domain/models"
	"filedrive/internal/domain/repositories"
	"filedrive/internal/domain/services"
)

// RootDirectoryName is the name given to each user's root directory.
const RootDirectoryName = "root"

type hierarchyService struct {
	dirRepo   repositories.DirectoryRepository
	fileRepo  repositories.FileRepository
	txManager repositories.TransactionManager
	logger    *slog.Logger
}

// NewHierarchyService creates a new hierarchy service
func NewHierarchyService(
	dirRepo repositories.DirectoryRepository,
	fileRepo repositories.FileRepository,
	txManager repositories.TransactionManager,
	logger *slog.Logger,
) services.HierarchyService {
	return &hierarchyService{
		dirRepo:   dirRepo,
		fileRepo:  fileRepo,
		txManager: txManager,
		logger:    logger,
	}
}

// CreateDirectory creates a directory under an existing parent owned by
// the same user. A missing or foreign parent is a validation failure,
// not a not-found: the caller supplied a bad reference.
func (s *hierarchyService) CreateDirectory(ctx context.Context, req *services.CreateDirectoryRequest) (*models.Directory, error) {
	if err := validateCreateDirectory(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	parent, err := s.dirRepo.GetByID(ctx, req.ParentID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("parent directory %s does not exist: %w", req.ParentID, domain.ErrValidation)
		}
		return nil, err
	}
	if parent.UserID != req.UserID {
		return nil, fmt.Errorf("parent directory belongs to a different user: %w", domain.ErrValidation)
	}

	now := time.Now()
	dir := &models.Directory{
		UserID:    req.UserID,
		ParentID:  &parent.ID,
		Name:      req.Name,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.dirRepo.Create(ctx, dir); err != nil {
		return nil, err
	}

	s.logger.Info("directory created",
		"id", dir.ID,
		"name", dir.Name,
		"user_id", dir.UserID,
		"parent_id", parent.ID,
	)

	return dir, nil
}

// EnsureRootDirectory returns the user's root directory, creating it on
// first use. A concurrent first request may win the race; the partial
// unique index turns that into a conflict we resolve by re-reading.
func (s *hierarchyService) EnsureRootDirectory(ctx context.Context, userID string) (*models.Directory, error) {
	if userID == "" {
		return nil, fmt.Errorf("user ID is required: %w", domain.ErrValidation)
	}

	root, err := s.dirRepo.GetRoot(ctx, userID)
	if err == nil {
		return root, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	now := time.Now()
	root = &models.Directory{
		UserID:    userID,
		Name:      RootDirectoryName,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.dirRepo.Create(ctx, root); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return s.dirRepo.GetRoot(ctx, userID)
		}
		return nil, err
	}

	s.logger.Info("root directory created", "id", root.ID, "user_id", userID)

	return root, nil
}

// GetDirectory retrieves a single directory
func (s *hierarchyService) GetDirectory(ctx context.Context, directoryID string) (*models.Directory, error) {
	return s.dirRepo.GetByID(ctx, directoryID)
}

// ListDirectory returns a directory with its immediate children
func (s *hierarchyService) ListDirectory(ctx context.Context, directoryID string) (*models.DirectoryListing, error) {
	dir, err := s.dirRepo.GetByID(ctx, directoryID)
	if err != nil {
		return nil, err
	}

	subdirs, err := s.dirRepo.ListChildren(ctx, dir.ID)
	if err != nil {
		return nil, err
	}

	files, err := s.fileRepo.ListByDirectory(ctx, dir.ID)
	if err != nil {
		return nil, err
	}

	return &models.DirectoryListing{
		Directory:   dir,
		Directories: subdirs,
		Files:       files,
	}, nil
}

// DeleteDirectory removes a directory and everything beneath it.
// The subtree walk, file deletion and directory deletion all run in one
// transaction so a partial deletion is never observable.
func (s *hierarchyService) DeleteDirectory(ctx context.Context, directoryID string) error {
	dir, err := s.dirRepo.GetByID(ctx, directoryID)
	if err != nil {
		return err
	}

	err = s.txManager.ExecTx(ctx, func(txCtx context.Context) error {
		subtreeIDs, err := s.dirRepo.ListSubtreeIDs(txCtx, dir.ID)
		if err != nil {
			return err
		}

		if err := s.fileRepo.DeleteByDirectoryIDs(txCtx, subtreeIDs); err != nil {
			return err
		}

		return s.dirRepo.DeleteByIDs(txCtx, subtreeIDs)
	})
	if err != nil {
		return err
	}

	s.logger.Info("directory deleted",
		"id", dir.ID,
		"name", dir.Name,
		"user_id", dir.UserID,
	)

	return nil
}

// CreateFile records file metadata inside a directory owned by the user
func (s *hierarchyService) CreateFile(ctx context.Context, req *services.CreateFileRequest) (*models.File, error) {
	if err := validateCreateFile(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	dir, err := s.dirRepo.GetByID(ctx, req.DirectoryID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("directory %s does not exist: %w", req.DirectoryID, domain.ErrValidation)
		}
		return nil, err
	}
	if dir.UserID != req.UserID {
		return nil, fmt.Errorf("directory belongs to a different user: %w", domain.ErrValidation)
	}

	file := &models.File{
		UserID:      req.UserID,
		DirectoryID: dir.ID,
		Name:        req.Name,
		Extension:   req.Extension,
		FileURL:     req.FileURL,
		CreatedAt:   time.Now(),
	}

	if err := s.fileRepo.Create(ctx, file); err != nil {
		return nil, err
	}

	s.logger.Info("file created",
		"id", file.ID,
		"name", file.Name,
		"extension", file.Extension,
		"directory_id", file.DirectoryID,
	)

	return file, nil
}

// GetFile retrieves file metadata
func (s *hierarchyService) GetFile(ctx context.Context, fileID string) (*models.File, error) {
	return s.fileRepo.GetByID(ctx, fileID)
}

// DeleteFile removes a file
func (s *hierarchyService) DeleteFile(ctx context.Context, fileID string) error {
	if err := s.fileRepo.Delete(ctx, fileID); err != nil {
		return err
	}

	s.logger.Info("file deleted", "id", fileID)
	return nil
}

func validateCreateDirectory(req *services.CreateDirectoryRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.UserID, validation.Required),
		validation.Field(&req.ParentID, validation.Required),
		validation.Field(&req.Name,
			validation.Required,
			validation.Length(1, config.MaxDirectoryNameLength),
		),
	)
}

func validateCreateFile(req *services.CreateFileRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.UserID, validation.Required),
		validation.Field(&req.DirectoryID, validation.Required),
		validation.Field(&req.Name,
			validation.Required,
			validation.Length(1, config.MaxFileNameLength),
		),
		validation.Field(&req.FileURL, validation.Required),
	)
}
