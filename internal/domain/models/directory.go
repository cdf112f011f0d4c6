package models

import (
	"time"
)

type Directory struct {
	ID             string     `json:"id" db:"id"`
	UserID         string     `json:"user_id" db:"user_id"`
	ParentID       *string    `json:"parent_id" db:"parent_id"` // NULL = root directory
	Name           string     `json:"name" db:"name"`
	AccessCount    int64      `json:"access_count" db:"access_count"`
	LastAccessedAt *time.Time `json:"last_accessed_at,omitempty" db:"last_accessed_at"`
	CreatedAt      time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at" db:"updated_at"`
}

// DirectoryListing is a directory together with its immediate children.
type DirectoryListing struct {
	Directory   *Directory  `json:"directory"`
	Directories []Directory `json:"directories"`
	Files       []File      `json:"files"`
}
