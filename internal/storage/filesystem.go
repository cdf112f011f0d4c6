package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// FileSystemStore is a filesystem-backed BlobStore. Blobs live under a
// root directory, keyed by their storage key.
type FileSystemStore struct {
	root          string
	publicBaseURL string
}

// NewFileSystemStore creates a filesystem blob store rooted at the given
// path, creating it if needed.
func NewFileSystemStore(root, publicBaseURL string) (*FileSystemStore, error) {
	if err := os.MkdirAll(root, 0755); err != nil {
		return nil, fmt.Errorf("create storage root: %w", err)
	}

	return &FileSystemStore{
		root:          root,
		publicBaseURL: strings.TrimSuffix(publicBaseURL, "/"),
	}, nil
}

// Save writes the blob under root/key and returns its URL
func (s *FileSystemStore) Save(_ context.Context, key string, r io.Reader) (string, error) {
	destPath := filepath.Join(s.root, filepath.FromSlash(key))

	if err := os.MkdirAll(filepath.Dir(destPath), 0755); err != nil {
		return "", fmt.Errorf("create blob directory: %w", err)
	}

	f, err := os.Create(destPath)
	if err != nil {
		return "", fmt.Errorf("create blob file: %w", err)
	}

	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(destPath)
		return "", fmt.Errorf("write blob: %w", err)
	}

	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close blob file: %w", err)
	}

	if s.publicBaseURL != "" {
		return s.publicBaseURL + "/" + key, nil
	}
	return "file://" + destPath, nil
}

// Open retrieves a stored blob
func (s *FileSystemStore) Open(_ context.Context, key string) (io.ReadCloser, error) {
	f, err := os.Open(filepath.Join(s.root, filepath.FromSlash(key)))
	if err != nil {
		return nil, fmt.Errorf("open blob: %w", err)
	}
	return f, nil
}
