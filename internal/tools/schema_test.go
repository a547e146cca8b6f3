package tools

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func questionsSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"formId": {Type: genai.TypeString},
			"questions": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"title":   {Type: genai.TypeString},
						"options": {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
					},
					Required: []string{"title", "options"},
				},
			},
		},
		Required: []string{"formId", "questions"},
	}
}

func TestCheckArgsValid(t *testing.T) {
	t.Parallel()

	args := map[string]any{
		"formId": "F1",
		"questions": []any{
			map[string]any{
				"title":   "What is 2+2?",
				"options": []any{"3", "4", "5", "6"},
			},
		},
	}
	assert.NoError(t, CheckArgs(questionsSchema(), args))
}

func TestCheckArgsViolations(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		args    map[string]any
		wantMsg string
	}{
		{
			name:    "missing required property",
			args:    map[string]any{"formId": "F1"},
			wantMsg: `missing required argument "questions"`,
		},
		{
			name:    "wrong scalar type",
			args:    map[string]any{"formId": 42, "questions": []any{}},
			wantMsg: `argument "formId" must be a string`,
		},
		{
			name:    "array where object expected",
			args:    map[string]any{"formId": "F1", "questions": []any{[]any{}}},
			wantMsg: `argument "questions[0]" must be an object`,
		},
		{
			name: "missing required nested property",
			args: map[string]any{
				"formId":    "F1",
				"questions": []any{map[string]any{"title": "Q"}},
			},
			wantMsg: `missing required argument "questions[0].options"`,
		},
		{
			name: "wrong type inside nested array",
			args: map[string]any{
				"formId": "F1",
				"questions": []any{map[string]any{
					"title":   "Q",
					"options": []any{"a", 2},
				}},
			},
			wantMsg: `argument "questions[0].options[1]" must be a string`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			err := CheckArgs(questionsSchema(), tc.args)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantMsg)
		})
	}
}

func TestCheckArgsNumberTypes(t *testing.T) {
	t.Parallel()

	schema := &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"count": {Type: genai.TypeInteger},
		},
		Required: []string{"count"},
	}

	// JSON-decoded model arguments arrive as float64.
	assert.NoError(t, CheckArgs(schema, map[string]any{"count": float64(5)}))
	assert.NoError(t, CheckArgs(schema, map[string]any{"count": 5}))
	assert.Error(t, CheckArgs(schema, map[string]any{"count": "5"}))
}

func TestCheckArgsNilSchema(t *testing.T) {
	t.Parallel()

	assert.NoError(t, CheckArgs(nil, map[string]any{"anything": true}))
}
