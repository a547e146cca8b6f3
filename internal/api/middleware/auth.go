package middleware

import (
	"net/http"
	"strings"

	"github.com/infatoz/sahayak-api/internal/api/shared"
)

// AccessToken extracts the caller's Google OAuth credential from the
// Authorization header for the flows that call Google APIs. The token is
// opaque here — Google validates it downstream — so the middleware only
// checks the Bearer shape. Requests without a header pass through; flows
// that need the credential reject its absence during input validation.
func AccessToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			next.ServeHTTP(w, r)
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid authorization format")
			return
		}

		ctx := shared.SetAccessToken(r.Context(), parts[1])
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
