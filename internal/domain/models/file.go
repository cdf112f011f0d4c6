package models

import (
	"time"
)

type File struct {
	ID          string    `json:"id" db:"id"`
	UserID      string    `json:"user_id" db:"user_id"`
	DirectoryID string    `json:"directory_id" db:"directory_id"`
	Name        string    `json:"name" db:"name"`
	Extension   string    `json:"extension" db:"extension"`
	FileURL     string    `json:"file_url" db:"file_url"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// FileDescriptor is the reduced view handed to the insight prompt:
// identifier and extension only, never file contents.
type FileDescriptor struct {
	ID        string `json:"id"`
	Extension string `json:"extension"`
}
