package service

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"filedrive/internal/domain"
	"filedrive/internal/domain/services"
	"filedrive/internal/storage"
)

type failingBlobStore struct{}

func (failingBlobStore) Save(context.Context, string, io.Reader) (string, error) {
	return "", errors.New("bucket unreachable")
}

func (failingBlobStore) Open(context.Context, string) (io.ReadCloser, error) {
	return nil, errors.New("bucket unreachable")
}

func TestSplitFilename(t *testing.T) {
	tests := []struct {
		filename string
		wantName string
		wantExt  string
	}{
		{"report.pdf", "report", "pdf"},
		{"a.txt", "a", "txt"},
		{"archive.tar.gz", "archive.tar", "gz"},
		{"README", "README", ""},
		{".gitignore", "", "gitignore"},
		{"trailing.", "trailing", ""},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			name, ext := splitFilename(tt.filename)
			if name != tt.wantName || ext != tt.wantExt {
				t.Errorf("splitFilename(%q) = (%q, %q), want (%q, %q)",
					tt.filename, name, ext, tt.wantName, tt.wantExt)
			}
		})
	}
}

func TestUploadStoresBlobAndMetadata(t *testing.T) {
	hierarchy, _, _ := newTestHierarchy()
	blobs := storage.NewMemoryStore()
	svc := NewUploadService(hierarchy, blobs, testLogger())
	ctx := context.Background()

	root, err := hierarchy.EnsureRootDirectory(ctx, "user-1")
	if err != nil {
		t.Fatalf("EnsureRootDirectory() error = %v", err)
	}

	file, err := svc.Upload(ctx, &services.UploadRequest{
		UserID:      "user-1",
		DirectoryID: root.ID,
		Filename:    "report.pdf",
		Content:     strings.NewReader("pdf bytes"),
	})
	if err != nil {
		t.Fatalf("Upload() error = %v", err)
	}

	if file.Name != "report" || file.Extension != "pdf" {
		t.Errorf("stored name/extension = (%q, %q), want (report, pdf)", file.Name, file.Extension)
	}
	if file.FileURL == "" {
		t.Error("FileURL is empty")
	}
	if blobs.Len() != 1 {
		t.Errorf("blob store holds %d blobs, want 1", blobs.Len())
	}

	listing, err := hierarchy.ListDirectory(ctx, root.ID)
	if err != nil {
		t.Fatalf("ListDirectory() error = %v", err)
	}
	if len(listing.Files) != 1 || listing.Files[0].ID != file.ID {
		t.Errorf("uploaded file missing from directory listing: %+v", listing.Files)
	}
}

func TestUploadValidation(t *testing.T) {
	hierarchy, _, _ := newTestHierarchy()
	svc := NewUploadService(hierarchy, storage.NewMemoryStore(), testLogger())
	ctx := context.Background()

	root, err := hierarchy.EnsureRootDirectory(ctx, "user-1")
	if err != nil {
		t.Fatalf("EnsureRootDirectory() error = %v", err)
	}

	tests := []struct {
		name string
		req  *services.UploadRequest
	}{
		{
			name: "missing directory ID",
			req:  &services.UploadRequest{UserID: "user-1", Filename: "a.txt", Content: strings.NewReader("x")},
		},
		{
			name: "missing filename",
			req:  &services.UploadRequest{UserID: "user-1", DirectoryID: root.ID, Content: strings.NewReader("x")},
		},
		{
			name: "missing payload",
			req:  &services.UploadRequest{UserID: "user-1", DirectoryID: root.ID, Filename: "a.txt"},
		},
		{
			name: "directory owned by another user",
			req:  &services.UploadRequest{UserID: "user-2", DirectoryID: root.ID, Filename: "a.txt", Content: strings.NewReader("x")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Upload(ctx, tt.req)
			if !errors.Is(err, domain.ErrValidation) {
				t.Errorf("Upload() error = %v, want ErrValidation", err)
			}
		})
	}
}

func TestUploadStorageFailure(t *testing.T) {
	hierarchy, _, _ := newTestHierarchy()
	svc := NewUploadService(hierarchy, failingBlobStore{}, testLogger())
	ctx := context.Background()

	root, err := hierarchy.EnsureRootDirectory(ctx, "user-1")
	if err != nil {
		t.Fatalf("EnsureRootDirectory() error = %v", err)
	}

	_, err = svc.Upload(ctx, &services.UploadRequest{
		UserID:      "user-1",
		DirectoryID: root.ID,
		Filename:    "a.txt",
		Content:     strings.NewReader("x"),
	})
	if !errors.Is(err, domain.ErrStorage) {
		t.Errorf("Upload() error = %v, want ErrStorage", err)
	}

	// Nothing was recorded
	listing, err := hierarchy.ListDirectory(ctx, root.ID)
	if err != nil {
		t.Fatalf("ListDirectory() error = %v", err)
	}
	if len(listing.Files) != 0 {
		t.Errorf("listing has %d files after failed upload, want 0", len(listing.Files))
	}
}

func TestUploadOrphanedBlobNamedInError(t *testing.T) {
	hierarchy, _, _ := newTestHierarchy()
	blobs := storage.NewMemoryStore()
	svc := NewUploadService(hierarchy, blobs, testLogger())

	// Unknown directory: blob save succeeds, metadata write fails.
	_, err := svc.Upload(context.Background(), &services.UploadRequest{
		UserID:      "user-1",
		DirectoryID: "no-such-dir",
		Filename:    "a.txt",
		Content:     strings.NewReader("x"),
	})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("Upload() error = %v, want ErrValidation", err)
	}
	if !strings.Contains(err.Error(), "orphaned") {
		t.Errorf("error %q does not name the orphaned blob", err)
	}
	if blobs.Len() != 1 {
		t.Errorf("blob store holds %d blobs, want the orphaned 1", blobs.Len())
	}
}
