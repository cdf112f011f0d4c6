package service

import (
	"context"
	"fmt"
	"log/slog"

	"filedrive/internal/domain"
	"filedrive/internal/domain/models"
	"filedrive/internal/domain/repositories"
	"filedrive/internal/domain/services"
)

type accessService struct {
	dirRepo repositories.DirectoryRepository
	logger  *slog.Logger
}

// NewAccessService creates a new access tracker service
func NewAccessService(dirRepo repositories.DirectoryRepository, logger *slog.Logger) services.AccessService {
	return &accessService{
		dirRepo: dirRepo,
		logger:  logger,
	}
}

// RecordAccess increments the directory's access counter. The counter
// update is a single atomic statement in the store, so simultaneous
// opens never lose increments; the timestamp is last-writer-wins.
func (s *accessService) RecordAccess(ctx context.Context, directoryID string) error {
	if directoryID == "" {
		return fmt.Errorf("directory ID is required: %w", domain.ErrValidation)
	}

	if err := s.dirRepo.IncrementAccess(ctx, directoryID); err != nil {
		return err
	}

	s.logger.Debug("directory access recorded", "directory_id", directoryID)
	return nil
}

// MostAccessed returns the user's most frequently accessed directory,
// or nil when no directory has a nonzero counter
func (s *accessService) MostAccessed(ctx context.Context, userID string) (*models.Directory, error) {
	if userID == "" {
		return nil, fmt.Errorf("user ID is required: %w", domain.ErrValidation)
	}

	return s.dirRepo.MostAccessed(ctx, userID)
}
