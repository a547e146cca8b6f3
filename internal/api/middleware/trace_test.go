package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/infatoz/sahayak-api/internal/api/shared"
)

func TestTraceAssignsUniqueIDs(t *testing.T) {
	t.Parallel()

	var gotID string
	handler := Trace(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID = shared.GetTraceID(r.Context())
	}))

	seen := make(map[string]bool)
	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

		require.NotEmpty(t, gotID)
		_, err := uuid.Parse(gotID)
		assert.NoError(t, err, "trace IDs are UUIDs")
		assert.False(t, seen[gotID], "each request gets a fresh trace ID")
		seen[gotID] = true
	}
}
