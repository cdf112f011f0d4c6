package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"filedrive/internal/httputil"
)

func identityEcho(t *testing.T, gotUserID *string) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*gotUserID = httputil.GetUserID(r)
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthMiddleware(t *testing.T) {
	tests := []struct {
		name                string
		path                string
		headers             map[string]string
		allowHeaderIdentity bool
		wantStatus          int
		wantUserID          string
	}{
		{
			name:       "health check needs no credentials",
			path:       "/health",
			wantStatus: http.StatusOK,
		},
		{
			name:       "missing credentials rejected",
			path:       "/api/directories/root",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:                "dev header identity accepted",
			path:                "/api/directories/root",
			headers:             map[string]string{"X-User-ID": "user-1"},
			allowHeaderIdentity: true,
			wantStatus:          http.StatusOK,
			wantUserID:          "user-1",
		},
		{
			name:       "header identity rejected outside dev",
			path:       "/api/directories/root",
			headers:    map[string]string{"X-User-ID": "user-1"},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:                "bearer token without a verifier falls through",
			path:                "/api/directories/root",
			headers:             map[string]string{"Authorization": "Bearer some-token"},
			allowHeaderIdentity: true,
			wantStatus:          http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotUserID string
			handler := AuthMiddleware(nil, tt.allowHeaderIdentity)(identityEcho(t, &gotUserID))

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if tt.wantUserID != "" && gotUserID != tt.wantUserID {
				t.Errorf("user ID in context = %q, want %q", gotUserID, tt.wantUserID)
			}
		})
	}
}
