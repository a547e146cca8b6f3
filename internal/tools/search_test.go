package tools

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// TestFilterResources exercises the stub's matching rule: a resource is
// kept when its title contains the first word of the query, ignoring case.
func TestFilterResources(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name      string
		query     string
		wantCount int
	}{
		{
			name:      "matching first word keeps all sample resources",
			query:     "photosynthesis for 5th graders",
			wantCount: 4,
		},
		{
			name:      "case insensitive match",
			query:     "PHOTOSYNTHESIS experiments",
			wantCount: 4,
		},
		{
			name:      "only the first word is considered",
			query:     "volcanoes photosynthesis",
			wantCount: 0,
		},
		{
			name:      "no match returns empty",
			query:     "trigonometry basics",
			wantCount: 0,
		},
		{
			name:      "empty query matches every title",
			query:     "",
			wantCount: 4,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := FilterResources(tc.query)
			assert.Len(t, got, tc.wantCount)
		})
	}
}

func TestSearchEducationalResourcesHandler(t *testing.T) {
	t.Parallel()

	def := NewSearchEducationalResources(discardLogger())
	assert.Equal(t, SearchEducationalResourcesName, def.Name)
	require.NotNil(t, def.Parameters)
	assert.Contains(t, def.Parameters.Required, "query")

	out, err := def.Handler(context.Background(), map[string]any{"query": "photosynthesis for kids"}, nil)
	require.NoError(t, err)

	resources, ok := out["resources"].([]any)
	require.True(t, ok, "handler output must carry a resources list")
	require.Len(t, resources, 4)

	first, ok := resources[0].(map[string]any)
	require.True(t, ok)
	assert.NotEmpty(t, first["title"])
	assert.NotEmpty(t, first["url"])
	assert.Contains(t, []string{"video", "article", "activity"}, first["type"])
}

func TestSearchEducationalResourcesHandlerNoMatches(t *testing.T) {
	t.Parallel()

	def := NewSearchEducationalResources(discardLogger())

	out, err := def.Handler(context.Background(), map[string]any{"query": "calculus"}, nil)
	require.NoError(t, err)

	resources, ok := out["resources"].([]any)
	require.True(t, ok)
	assert.Empty(t, resources, "an unmatched query yields an empty list, not an error")
}
