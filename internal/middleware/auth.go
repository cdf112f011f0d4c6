package middleware

import (
	"net/http"
	"strings"

	"filedrive/internal/auth"
	"filedrive/internal/httputil"
)

// AuthMiddleware resolves the caller's identity and stores the user ID in
// the request context. Bearer tokens are verified against the auth
// provider's JWKS keys. When allowHeaderIdentity is set (dev only), an
// X-User-ID header is accepted in place of a token.
func AuthMiddleware(verifier auth.TokenVerifier, allowHeaderIdentity bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Health check stays reachable without credentials
			if r.URL.Path == "/health" {
				next.ServeHTTP(w, r)
				return
			}

			header := r.Header.Get("Authorization")
			if token, ok := strings.CutPrefix(header, "Bearer "); ok && verifier != nil {
				claims, err := verifier.VerifyToken(token)
				if err != nil {
					httputil.RespondError(w, http.StatusUnauthorized, "invalid or expired token")
					return
				}
				next.ServeHTTP(w, httputil.WithUserID(r, claims.GetUserID()))
				return
			}

			if allowHeaderIdentity {
				if userID := r.Header.Get("X-User-ID"); userID != "" {
					next.ServeHTTP(w, httputil.WithUserID(r, userID))
					return
				}
			}

			httputil.RespondError(w, http.StatusUnauthorized, "missing credentials")
		})
	}
}
