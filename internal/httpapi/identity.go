package httpapi

import (
	"context"
	"net/http"
	"strings"

	"task-comments-service/internal/auth"
)

// withIdentity resolves the caller identity from the Authorization header.
// Identity is re-verified on every request; nothing is cached.
func withIdentity(verifier *auth.Verifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !ok {
				writeError(w, http.StatusUnauthorized, "unauthenticated", "missing or invalid credentials")
				return
			}

			userID, err := verifier.Verify(token)
			if err != nil {
				writeError(w, http.StatusUnauthorized, "unauthenticated", "missing or invalid credentials")
				return
			}

			ctx := context.WithValue(r.Context(), callerIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
