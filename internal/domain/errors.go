package domain

import "errors"

// Sentinel errors for the service error taxonomy - use with errors.Is().
// Services wrap these with context via fmt.Errorf("...: %w", ...) and the
// handler boundary translates them to HTTP status codes.
var (
	// ErrNotFound indicates a referenced entity is absent
	ErrNotFound = errors.New("not found")

	// ErrValidation indicates a missing or malformed required field
	ErrValidation = errors.New("validation failed")

	// ErrConflict indicates a uniqueness rule was violated
	ErrConflict = errors.New("already exists")

	// ErrUnauthorized indicates authentication failure
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden indicates authorization failure
	ErrForbidden = errors.New("forbidden")

	// ErrStorage indicates the blob-store collaborator failed
	ErrStorage = errors.New("storage failure")

	// ErrUpstream indicates the completion collaborator failed or
	// returned an unusable response
	ErrUpstream = errors.New("upstream failure")
)
