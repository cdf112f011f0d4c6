package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"filedrive/internal/domain"
	"filedrive/internal/domain/models"
	"filedrive/internal/domain/repositories"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeDirectoryRepo is an in-memory DirectoryRepository with the same
// error semantics as the postgres implementation.
type fakeDirectoryRepo struct {
	mu   sync.Mutex
	dirs map[string]*models.Directory
}

func newFakeDirectoryRepo() *fakeDirectoryRepo {
	return &fakeDirectoryRepo{dirs: make(map[string]*models.Directory)}
}

func (r *fakeDirectoryRepo) Create(_ context.Context, dir *models.Directory) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if dir.ParentID == nil {
		for _, d := range r.dirs {
			if d.UserID == dir.UserID && d.ParentID == nil {
				return fmt.Errorf("root directory: %w", domain.ErrConflict)
			}
		}
	}
	if dir.ID == "" {
		dir.ID = uuid.NewString()
	}
	copied := *dir
	r.dirs[dir.ID] = &copied
	return nil
}

func (r *fakeDirectoryRepo) GetByID(_ context.Context, id string) (*models.Directory, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	dir, ok := r.dirs[id]
	if !ok {
		return nil, fmt.Errorf("directory %s: %w", id, domain.ErrNotFound)
	}
	copied := *dir
	return &copied, nil
}

func (r *fakeDirectoryRepo) GetRoot(_ context.Context, userID string) (*models.Directory, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, d := range r.dirs {
		if d.UserID == userID && d.ParentID == nil {
			copied := *d
			return &copied, nil
		}
	}
	return nil, fmt.Errorf("root directory for user %s: %w", userID, domain.ErrNotFound)
}

func (r *fakeDirectoryRepo) ListChildren(_ context.Context, parentID string) ([]models.Directory, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.Directory
	for _, d := range r.dirs {
		if d.ParentID != nil && *d.ParentID == parentID {
			out = append(out, *d)
		}
	}
	return out, nil
}

func (r *fakeDirectoryRepo) ListSubtreeIDs(_ context.Context, id string) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.dirs[id]; !ok {
		return nil, nil
	}

	ids := []string{id}
	frontier := []string{id}
	for len(frontier) > 0 {
		var next []string
		for _, d := range r.dirs {
			for _, parent := range frontier {
				if d.ParentID != nil && *d.ParentID == parent {
					ids = append(ids, d.ID)
					next = append(next, d.ID)
				}
			}
		}
		frontier = next
	}
	return ids, nil
}

func (r *fakeDirectoryRepo) DeleteByIDs(_ context.Context, ids []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	deleted := 0
	for _, id := range ids {
		if _, ok := r.dirs[id]; ok {
			delete(r.dirs, id)
			deleted++
		}
	}
	if deleted == 0 {
		return fmt.Errorf("directories %v: %w", ids, domain.ErrNotFound)
	}
	return nil
}

func (r *fakeDirectoryRepo) IncrementAccess(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	dir, ok := r.dirs[id]
	if !ok {
		return fmt.Errorf("directory %s: %w", id, domain.ErrNotFound)
	}
	dir.AccessCount++
	now := time.Now()
	dir.LastAccessedAt = &now
	return nil
}

func (r *fakeDirectoryRepo) MostAccessed(_ context.Context, userID string) (*models.Directory, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var best *models.Directory
	for _, d := range r.dirs {
		if d.UserID != userID || d.AccessCount == 0 {
			continue
		}
		if best == nil || d.AccessCount > best.AccessCount {
			best = d
			continue
		}
		if d.AccessCount == best.AccessCount && moreRecent(d.LastAccessedAt, best.LastAccessedAt) {
			best = d
		}
	}
	if best == nil {
		return nil, nil
	}
	copied := *best
	return &copied, nil
}

func moreRecent(a, b *time.Time) bool {
	if a == nil {
		return false
	}
	if b == nil {
		return true
	}
	return a.After(*b)
}

// fakeFileRepo is an in-memory FileRepository.
type fakeFileRepo struct {
	mu    sync.Mutex
	files map[string]*models.File
}

func newFakeFileRepo() *fakeFileRepo {
	return &fakeFileRepo{files: make(map[string]*models.File)}
}

func (r *fakeFileRepo) Create(_ context.Context, file *models.File) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if file.ID == "" {
		file.ID = uuid.NewString()
	}
	copied := *file
	r.files[file.ID] = &copied
	return nil
}

func (r *fakeFileRepo) GetByID(_ context.Context, id string) (*models.File, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	file, ok := r.files[id]
	if !ok {
		return nil, fmt.Errorf("file %s: %w", id, domain.ErrNotFound)
	}
	copied := *file
	return &copied, nil
}

func (r *fakeFileRepo) ListByDirectory(_ context.Context, directoryID string) ([]models.File, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.File
	for _, f := range r.files {
		if f.DirectoryID == directoryID {
			out = append(out, *f)
		}
	}
	return out, nil
}

func (r *fakeFileRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.files[id]; !ok {
		return fmt.Errorf("file %s: %w", id, domain.ErrNotFound)
	}
	delete(r.files, id)
	return nil
}

func (r *fakeFileRepo) DeleteByDirectoryIDs(_ context.Context, directoryIDs []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, f := range r.files {
		for _, dirID := range directoryIDs {
			if f.DirectoryID == dirID {
				delete(r.files, id)
				break
			}
		}
	}
	return nil
}

// fakeTxManager runs the function directly; the fakes have no
// transactions to coordinate.
type fakeTxManager struct{}

func (fakeTxManager) ExecTx(ctx context.Context, fn repositories.TxFn) error {
	return fn(ctx)
}
