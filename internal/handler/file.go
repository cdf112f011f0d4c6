package handler

import (
	"fmt"
	"log/slog"
	"net/http"

	"filedrive/internal/config"
	"filedrive/internal/domain"
	"filedrive/internal/domain/services"
	"filedrive/internal/httputil"
)

// FileHandler handles file HTTP requests
type FileHandler struct {
	hierarchy services.HierarchyService
	uploads   services.UploadService
	logger    *slog.Logger
}

// NewFileHandler creates a new file handler
func NewFileHandler(
	hierarchy services.HierarchyService,
	uploads services.UploadService,
	logger *slog.Logger,
) *FileHandler {
	return &FileHandler{
		hierarchy: hierarchy,
		uploads:   uploads,
		logger:    logger,
	}
}

// Upload accepts a multipart file payload and stores it
// POST /api/files (multipart form: file, directory_id)
func (h *FileHandler) Upload(w http.ResponseWriter, r *http.Request) {
	userID := httputil.GetUserID(r)

	r.Body = http.MaxBytesReader(w, r.Body, config.MaxUploadBytes)
	if err := r.ParseMultipartForm(8 << 20); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	directoryID := r.FormValue("directory_id")

	file, header, err := r.FormFile("file")
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "file field is required")
		return
	}
	defer file.Close()

	created, err := h.uploads.Upload(r.Context(), &services.UploadRequest{
		UserID:      userID,
		DirectoryID: directoryID,
		Filename:    header.Filename,
		Content:     file,
	})
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, map[string]interface{}{"file": created})
}

// GetFile returns file metadata
// GET /api/files/{id}
func (h *FileHandler) GetFile(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "file ID is required")
		return
	}

	file, err := h.hierarchy.GetFile(r.Context(), id)
	if err != nil {
		handleError(w, err)
		return
	}
	if file.UserID != httputil.GetUserID(r) {
		handleError(w, fmt.Errorf("file %s: %w", id, domain.ErrNotFound))
		return
	}

	httputil.RespondJSON(w, http.StatusOK, map[string]interface{}{"file": file})
}

// DeleteFile removes a file
// DELETE /api/files/{id}
func (h *FileHandler) DeleteFile(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "file ID is required")
		return
	}

	file, err := h.hierarchy.GetFile(r.Context(), id)
	if err != nil {
		handleError(w, err)
		return
	}
	if file.UserID != httputil.GetUserID(r) {
		handleError(w, fmt.Errorf("file %s: %w", id, domain.ErrNotFound))
		return
	}

	if err := h.hierarchy.DeleteFile(r.Context(), id); err != nil {
		handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
