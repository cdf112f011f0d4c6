package storage

import (
	"context"
	"fmt"

	"filedrive/internal/config"
)

// NewBlobStoreFromConfig creates a BlobStore implementation based on the
// configured backend type.
func NewBlobStoreFromConfig(ctx context.Context, cfg *config.Config) (BlobStore, error) {
	switch cfg.BlobBackend {
	case "memory":
		return NewMemoryStore(), nil
	case "s3":
		return NewS3Store(ctx, cfg.S3Bucket, cfg.S3Region, cfg.PublicBaseURL)
	case "filesystem":
		return NewFileSystemStore(cfg.FSStorageRoot, cfg.PublicBaseURL)
	default:
		return nil, fmt.Errorf("unknown blob backend: %s", cfg.BlobBackend)
	}
}
