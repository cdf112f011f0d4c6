package handler

import (
	"fmt"
	"log/slog"
	"net/http"

	"filedrive/internal/domain"
	"filedrive/internal/domain/services"
	"filedrive/internal/httputil"
)

// DirectoryHandler handles directory HTTP requests
type DirectoryHandler struct {
	hierarchy services.HierarchyService
	access    services.AccessService
	logger    *slog.Logger
}

// NewDirectoryHandler creates a new directory handler
func NewDirectoryHandler(
	hierarchy services.HierarchyService,
	access services.AccessService,
	logger *slog.Logger,
) *DirectoryHandler {
	return &DirectoryHandler{
		hierarchy: hierarchy,
		access:    access,
		logger:    logger,
	}
}

// CreateDirectory creates a new directory
// POST /api/directories
func (h *DirectoryHandler) CreateDirectory(w http.ResponseWriter, r *http.Request) {
	userID := httputil.GetUserID(r)

	var req services.CreateDirectoryRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	req.UserID = userID

	dir, err := h.hierarchy.CreateDirectory(r.Context(), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, dir)
}

// GetRootDirectory returns the caller's root directory listing, creating
// the root on first use
// GET /api/directories/root
func (h *DirectoryHandler) GetRootDirectory(w http.ResponseWriter, r *http.Request) {
	userID := httputil.GetUserID(r)

	root, err := h.hierarchy.EnsureRootDirectory(r.Context(), userID)
	if err != nil {
		handleError(w, err)
		return
	}

	listing, err := h.hierarchy.ListDirectory(r.Context(), root.ID)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, listing)
}

// GetDirectory returns a directory listing
// GET /api/directories/{id}
func (h *DirectoryHandler) GetDirectory(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "directory ID is required")
		return
	}

	listing, err := h.hierarchy.ListDirectory(r.Context(), id)
	if err != nil {
		handleError(w, err)
		return
	}

	// Ownership partitions access; a foreign directory looks absent
	if listing.Directory.UserID != httputil.GetUserID(r) {
		handleError(w, fmt.Errorf("directory %s: %w", id, domain.ErrNotFound))
		return
	}

	httputil.RespondJSON(w, http.StatusOK, listing)
}

// DeleteDirectory deletes a directory and everything beneath it
// DELETE /api/directories/{id}
func (h *DirectoryHandler) DeleteDirectory(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "directory ID is required")
		return
	}

	dir, err := h.hierarchy.GetDirectory(r.Context(), id)
	if err != nil {
		handleError(w, err)
		return
	}
	if dir.UserID != httputil.GetUserID(r) {
		handleError(w, fmt.Errorf("directory %s: %w", id, domain.ErrNotFound))
		return
	}

	if err := h.hierarchy.DeleteDirectory(r.Context(), id); err != nil {
		handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// recordAccessRequest is the body for access tracking
type recordAccessRequest struct {
	DirectoryID string `json:"directory_id"`
}

// RecordAccess increments a directory's access counter
// POST /api/directories/access
func (h *DirectoryHandler) RecordAccess(w http.ResponseWriter, r *http.Request) {
	var req recordAccessRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.access.RecordAccess(r.Context(), req.DirectoryID); err != nil {
		handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// MostAccessed returns the caller's most frequently accessed directory,
// or null when nothing has been accessed yet
// GET /api/directories/most-accessed
func (h *DirectoryHandler) MostAccessed(w http.ResponseWriter, r *http.Request) {
	userID := httputil.GetUserID(r)

	dir, err := h.access.MostAccessed(r.Context(), userID)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, map[string]interface{}{"directory": dir})
}
