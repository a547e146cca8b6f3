// Package middleware provides the HTTP middleware used by the API layer.
package middleware

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/infatoz/sahayak-api/internal/api/shared"
)

// Trace assigns every request a trace ID and logs its arrival. Apply it
// early so all downstream handlers and error responses can correlate.
func Trace(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := uuid.NewString()
		ctx := shared.SetTraceID(r.Context(), traceID)

		slog.Debug("request started",
			slog.String("trace_id", traceID),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("remote_addr", r.RemoteAddr))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
