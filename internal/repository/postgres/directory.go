package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"filedrive/internal/domain"
	"filedrive/internal/domain/models"
	"filedrive/internal/domain/repositories"
)

// PostgresDirectoryRepository implements the DirectoryRepository interface
type PostgresDirectoryRepository struct {
	pool *pgxpool.Pool
}

// NewDirectoryRepository creates a new directory repository
func NewDirectoryRepository(config *RepositoryConfig) repositories.DirectoryRepository {
	return &PostgresDirectoryRepository{
		pool: config.Pool,
	}
}

const directoryColumns = `id, user_id, parent_id, name, access_count, last_accessed_at, created_at, updated_at`

// Create creates a new directory
func (r *PostgresDirectoryRepository) Create(ctx context.Context, dir *models.Directory) error {
	if dir.ID == "" {
		dir.ID = uuid.NewString()
	}

	query := `
		INSERT INTO directories (id, user_id, parent_id, name, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at
	`

	err := GetExecutor(ctx, r.pool).QueryRow(ctx, query,
		dir.ID,
		dir.UserID,
		dir.ParentID,
		dir.Name,
		dir.CreatedAt,
		dir.UpdatedAt,
	).Scan(&dir.CreatedAt, &dir.UpdatedAt)

	if err != nil {
		if isPgDuplicateError(err) {
			return fmt.Errorf("directory '%s': %w", dir.Name, domain.ErrConflict)
		}
		if isPgForeignKeyError(err) {
			return fmt.Errorf("parent directory %v: %w", dir.ParentID, domain.ErrValidation)
		}
		return fmt.Errorf("create directory: %w", err)
	}

	return nil
}

// GetByID retrieves a directory by ID
func (r *PostgresDirectoryRepository) GetByID(ctx context.Context, id string) (*models.Directory, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM directories
		WHERE id = $1
	`, directoryColumns)

	var dir models.Directory
	err := GetExecutor(ctx, r.pool).QueryRow(ctx, query, id).Scan(
		&dir.ID,
		&dir.UserID,
		&dir.ParentID,
		&dir.Name,
		&dir.AccessCount,
		&dir.LastAccessedAt,
		&dir.CreatedAt,
		&dir.UpdatedAt,
	)

	if err != nil {
		if isPgNoRowsError(err) {
			return nil, fmt.Errorf("directory %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get directory: %w", err)
	}

	return &dir, nil
}

// GetRoot retrieves the root directory for a user
func (r *PostgresDirectoryRepository) GetRoot(ctx context.Context, userID string) (*models.Directory, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM directories
		WHERE user_id = $1 AND parent_id IS NULL
	`, directoryColumns)

	var dir models.Directory
	err := GetExecutor(ctx, r.pool).QueryRow(ctx, query, userID).Scan(
		&dir.ID,
		&dir.UserID,
		&dir.ParentID,
		&dir.Name,
		&dir.AccessCount,
		&dir.LastAccessedAt,
		&dir.CreatedAt,
		&dir.UpdatedAt,
	)

	if err != nil {
		if isPgNoRowsError(err) {
			return nil, fmt.Errorf("root directory for user %s: %w", userID, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get root directory: %w", err)
	}

	return &dir, nil
}

// ListChildren lists immediate child directories, name-ordered
func (r *PostgresDirectoryRepository) ListChildren(ctx context.Context, parentID string) ([]models.Directory, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM directories
		WHERE parent_id = $1
		ORDER BY name ASC
	`, directoryColumns)

	rows, err := GetExecutor(ctx, r.pool).Query(ctx, query, parentID)
	if err != nil {
		return nil, fmt.Errorf("list directory children: %w", err)
	}
	defer rows.Close()

	var dirs []models.Directory
	for rows.Next() {
		var dir models.Directory
		err := rows.Scan(
			&dir.ID,
			&dir.UserID,
			&dir.ParentID,
			&dir.Name,
			&dir.AccessCount,
			&dir.LastAccessedAt,
			&dir.CreatedAt,
			&dir.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan directory: %w", err)
		}
		dirs = append(dirs, dir)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate directories: %w", err)
	}

	return dirs, nil
}

// ListSubtreeIDs returns the given directory ID plus all descendant IDs
// using a recursive CTE
func (r *PostgresDirectoryRepository) ListSubtreeIDs(ctx context.Context, id string) ([]string, error) {
	query := `
		WITH RECURSIVE subtree AS (
			SELECT id
			FROM directories
			WHERE id = $1
			UNION ALL
			SELECT d.id
			FROM directories d
			JOIN subtree s ON d.parent_id = s.id
		)
		SELECT id FROM subtree
	`

	rows, err := GetExecutor(ctx, r.pool).Query(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("list subtree: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var dirID string
		if err := rows.Scan(&dirID); err != nil {
			return nil, fmt.Errorf("scan subtree id: %w", err)
		}
		ids = append(ids, dirID)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate subtree: %w", err)
	}

	return ids, nil
}

// DeleteByIDs removes the given directories. Children must be deleted in
// the same statement or earlier in the transaction; the FK on parent_id
// rejects anything else.
func (r *PostgresDirectoryRepository) DeleteByIDs(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	query := `DELETE FROM directories WHERE id = ANY($1)`

	result, err := GetExecutor(ctx, r.pool).Exec(ctx, query, ids)
	if err != nil {
		return fmt.Errorf("delete directories: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("directories %v: %w", ids, domain.ErrNotFound)
	}

	return nil
}

// IncrementAccess atomically bumps the access counter and refreshes the
// last-accessed timestamp. The increment happens inside the database so
// concurrent calls never lose updates.
func (r *PostgresDirectoryRepository) IncrementAccess(ctx context.Context, id string) error {
	query := `
		UPDATE directories
		SET access_count = access_count + 1, last_accessed_at = now()
		WHERE id = $1
	`

	result, err := GetExecutor(ctx, r.pool).Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("increment access count: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("directory %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// MostAccessed returns the user's directory with the highest access
// counter. The (user_id, access_count DESC) index keeps this a range
// scan rather than an in-memory sort as data grows.
func (r *PostgresDirectoryRepository) MostAccessed(ctx context.Context, userID string) (*models.Directory, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM directories
		WHERE user_id = $1 AND access_count > 0
		ORDER BY access_count DESC, last_accessed_at DESC NULLS LAST
		LIMIT 1
	`, directoryColumns)

	var dir models.Directory
	err := GetExecutor(ctx, r.pool).QueryRow(ctx, query, userID).Scan(
		&dir.ID,
		&dir.UserID,
		&dir.ParentID,
		&dir.Name,
		&dir.AccessCount,
		&dir.LastAccessedAt,
		&dir.CreatedAt,
		&dir.UpdatedAt,
	)

	if err != nil {
		if isPgNoRowsError(err) {
			return nil, nil // No accessed directories yet, not an error
		}
		return nil, fmt.Errorf("get most accessed directory: %w", err)
	}

	return &dir, nil
}
