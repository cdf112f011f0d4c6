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

// PostgresFileRepository implements the FileRepository interface
type PostgresFileRepository struct {
	pool *pgxpool.Pool
}

// NewFileRepository creates a new file repository
func NewFileRepository(config *RepositoryConfig) repositories.FileRepository {
	return &PostgresFileRepository{
		pool: config.Pool,
	}
}

const fileColumns = `id, user_id, directory_id, name, extension, file_url, created_at`

// Create creates a new file row
func (r *PostgresFileRepository) Create(ctx context.Context, file *models.File) error {
	if file.ID == "" {
		file.ID = uuid.NewString()
	}

	query := `
		INSERT INTO files (id, user_id, directory_id, name, extension, file_url, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at
	`

	err := GetExecutor(ctx, r.pool).QueryRow(ctx, query,
		file.ID,
		file.UserID,
		file.DirectoryID,
		file.Name,
		file.Extension,
		file.FileURL,
		file.CreatedAt,
	).Scan(&file.CreatedAt)

	if err != nil {
		if isPgForeignKeyError(err) {
			return fmt.Errorf("directory %s: %w", file.DirectoryID, domain.ErrValidation)
		}
		return fmt.Errorf("create file: %w", err)
	}

	return nil
}

// GetByID retrieves a file by ID
func (r *PostgresFileRepository) GetByID(ctx context.Context, id string) (*models.File, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM files
		WHERE id = $1
	`, fileColumns)

	var file models.File
	err := GetExecutor(ctx, r.pool).QueryRow(ctx, query, id).Scan(
		&file.ID,
		&file.UserID,
		&file.DirectoryID,
		&file.Name,
		&file.Extension,
		&file.FileURL,
		&file.CreatedAt,
	)

	if err != nil {
		if isPgNoRowsError(err) {
			return nil, fmt.Errorf("file %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get file: %w", err)
	}

	return &file, nil
}

// ListByDirectory lists files in a directory, name-ordered
func (r *PostgresFileRepository) ListByDirectory(ctx context.Context, directoryID string) ([]models.File, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM files
		WHERE directory_id = $1
		ORDER BY name ASC, extension ASC
	`, fileColumns)

	rows, err := GetExecutor(ctx, r.pool).Query(ctx, query, directoryID)
	if err != nil {
		return nil, fmt.Errorf("list files: %w", err)
	}
	defer rows.Close()

	var files []models.File
	for rows.Next() {
		var file models.File
		err := rows.Scan(
			&file.ID,
			&file.UserID,
			&file.DirectoryID,
			&file.Name,
			&file.Extension,
			&file.FileURL,
			&file.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan file: %w", err)
		}
		files = append(files, file)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate files: %w", err)
	}

	return files, nil
}

// Delete removes a file row
func (r *PostgresFileRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM files WHERE id = $1`

	result, err := GetExecutor(ctx, r.pool).Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete file: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("file %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// DeleteByDirectoryIDs removes all files contained in the given directories.
// Deleting zero rows is fine here; empty directories are expected.
func (r *PostgresFileRepository) DeleteByDirectoryIDs(ctx context.Context, directoryIDs []string) error {
	if len(directoryIDs) == 0 {
		return nil
	}

	query := `DELETE FROM files WHERE directory_id = ANY($1)`

	if _, err := GetExecutor(ctx, r.pool).Exec(ctx, query, directoryIDs); err != nil {
		return fmt.Errorf("delete files in directories: %w", err)
	}

	return nil
}
