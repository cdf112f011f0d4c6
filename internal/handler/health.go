package handler

import (
	"net/http"

	"filedrive/internal/httputil"
)

// HealthCheck reports service liveness
func HealthCheck(w http.ResponseWriter, _ *http.Request) {
	httputil.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
