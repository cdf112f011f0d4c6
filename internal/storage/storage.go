package storage

import (
	"context"
	"io"
)

// BlobStore abstracts the blob-store collaborator the upload gateway
// delegates byte persistence to. Implementations return a URL the stored
// blob can later be retrieved from.
type BlobStore interface {
	// Save stores the blob under key and returns its retrievable URL
	Save(ctx context.Context, key string, r io.Reader) (string, error)

	// Open retrieves a previously stored blob
	Open(ctx context.Context, key string) (io.ReadCloser, error)
}
