package handler

import (
	"fmt"
	"log/slog"
	"net/http"

	"filedrive/internal/domain"
	"filedrive/internal/domain/services"
	"filedrive/internal/httputil"
)

// InsightHandler handles directory summarization requests
type InsightHandler struct {
	hierarchy services.HierarchyService
	insights  services.InsightService
	logger    *slog.Logger
}

// NewInsightHandler creates a new insight handler
func NewInsightHandler(
	hierarchy services.HierarchyService,
	insights services.InsightService,
	logger *slog.Logger,
) *InsightHandler {
	return &InsightHandler{
		hierarchy: hierarchy,
		insights:  insights,
		logger:    logger,
	}
}

// Summarize asks the completion collaborator for a short note about a
// directory's files
// POST /api/directories/{id}/summarize
func (h *InsightHandler) Summarize(w http.ResponseWriter, r *http.Request) {
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

	message, err := h.insights.SummarizeDirectory(r.Context(), id)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, map[string]string{"message": message})
}
