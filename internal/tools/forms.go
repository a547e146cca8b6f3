package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"google.golang.org/genai"

	"github.com/infatoz/sahayak-api/internal/platform/googleforms"
)

// Model-facing names of the Google Forms tool pair.
const (
	CreateGoogleFormName   = "createGoogleForm"
	AddQuestionsToFormName = "addQuestionsToForm"
)

// NewCreateGoogleForm returns the tool that creates a Google Form. The
// bearer credential comes from the side-channel State, never from the
// model-supplied arguments.
func NewCreateGoogleForm(client *googleforms.Client) Definition {
	return Definition{
		Name:        CreateGoogleFormName,
		Description: "Creates a new Google Form with a given title and returns the form ID and URL.",
		Parameters: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"title": {
					Type:        genai.TypeString,
					Description: "The title of the Google Form.",
				},
			},
			Required: []string{"title"},
		},
		Handler: func(ctx context.Context, args map[string]any, state *State) (map[string]any, error) {
			if state == nil || state.AccessToken == "" {
				return nil, ErrMissingAccessToken
			}

			title, _ := args["title"].(string)
			form, err := client.CreateForm(ctx, state.AccessToken, title)
			if err != nil {
				return nil, err
			}

			return map[string]any{
				"formId":  form.ID,
				"formUrl": form.ResponderURL,
			}, nil
		},
	}
}

// addQuestionsArgs mirrors the addQuestionsToForm input shape.
type addQuestionsArgs struct {
	FormID    string `json:"formId"`
	Questions []struct {
		Title   string   `json:"title"`
		Options []string `json:"options"`
	} `json:"questions"`
}

// NewAddQuestionsToForm returns the tool that batch-inserts multiple-choice
// questions into an existing form. The form ID is a required argument, so
// the model can only call this after createGoogleForm has returned one.
func NewAddQuestionsToForm(client *googleforms.Client) Definition {
	return Definition{
		Name:        AddQuestionsToFormName,
		Description: "Adds a batch of questions to a Google Form.",
		Parameters: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"formId": {Type: genai.TypeString},
				"questions": {
					Type: genai.TypeArray,
					Items: &genai.Schema{
						Type: genai.TypeObject,
						Properties: map[string]*genai.Schema{
							"title": {
								Type:        genai.TypeString,
								Description: "The question text.",
							},
							"options": {
								Type:        genai.TypeArray,
								Description: "An array of choices for the multiple-choice question.",
								Items:       &genai.Schema{Type: genai.TypeString},
							},
						},
						Required: []string{"title", "options"},
					},
				},
			},
			Required: []string{"formId", "questions"},
		},
		Handler: func(ctx context.Context, args map[string]any, state *State) (map[string]any, error) {
			if state == nil || state.AccessToken == "" {
				return nil, ErrMissingAccessToken
			}

			var parsed addQuestionsArgs
			if err := decodeArgs(args, &parsed); err != nil {
				return nil, err
			}

			questions := make([]googleforms.Question, 0, len(parsed.Questions))
			for _, q := range parsed.Questions {
				questions = append(questions, googleforms.Question{Title: q.Title, Options: q.Options})
			}

			result, err := client.AddQuestions(ctx, state.AccessToken, parsed.FormID, questions)
			if err != nil {
				return nil, err
			}

			var out map[string]any
			if err := json.Unmarshal(result, &out); err != nil {
				return nil, fmt.Errorf("decode batch update result: %w", err)
			}
			return out, nil
		},
	}
}

// decodeArgs converts loosely typed model arguments into a typed struct via
// a JSON round trip.
func decodeArgs(args map[string]any, v any) error {
	raw, err := json.Marshal(args)
	if err != nil {
		return fmt.Errorf("encode tool arguments: %w", err)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("decode tool arguments: %w", err)
	}
	return nil
}
