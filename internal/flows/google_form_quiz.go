package flows

import (
	"context"

	"github.com/infatoz/sahayak-api/internal/generation"
	"github.com/infatoz/sahayak-api/internal/prompt"
	"github.com/infatoz/sahayak-api/internal/tools"
	"github.com/infatoz/sahayak-api/internal/validation"
)

// GoogleFormQuizInput describes the worksheet to turn into a Google Form
// quiz. AccessToken is the caller's Google OAuth credential; it is passed
// to the form tools as side-channel state and never shown to the model.
type GoogleFormQuizInput struct {
	WorksheetContent string `json:"worksheetContent" validate:"required"`
	Language         string `json:"language" validate:"required"`
	AccessToken      string `json:"accessToken" validate:"required"`
}

// GoogleFormQuizOutput carries the public URL of the created form.
type GoogleFormQuizOutput struct {
	FormURL string `json:"formUrl" validate:"required"`
}

var googleFormQuizPrompt = prompt.MustParse("createGoogleFormQuiz", `Based on the following worksheet content, generate a 5-question multiple-choice quiz in {{.Language}}.
The quiz should be titled "Quiz".
For each question, provide 4 options.

Worksheet Content:
{{.WorksheetContent}}`)

// CreateGoogleFormQuiz drives the model through creating a Google Form and
// filling it with multiple-choice questions. The flow cares specifically
// about the createGoogleForm tool's outcome: if the model never calls it,
// or its result lacks a URL, the flow fails with a protocol error.
func (s *Service) CreateGoogleFormQuiz(ctx context.Context, in GoogleFormQuizInput) (*GoogleFormQuizOutput, error) {
	if in.Language == "" {
		in.Language = "English"
	}
	if err := validation.Check(in); err != nil {
		return nil, err
	}

	rendered, err := googleFormQuizPrompt.Render(in)
	if err != nil {
		return nil, err
	}

	result, err := s.generator.Generate(ctx, &generation.Request{
		Model:  s.models.TextModel,
		Prompt: rendered,
		Tools: []tools.Definition{
			tools.NewCreateGoogleForm(s.forms),
			tools.NewAddQuestionsToForm(s.forms),
		},
		State: &tools.State{AccessToken: in.AccessToken},
	})
	if err != nil {
		return nil, err
	}

	output, ok := result.ToolOutput(tools.CreateGoogleFormName)
	if !ok {
		return nil, &generation.ProtocolError{Want: "a call to the createGoogleForm tool"}
	}

	formURL, _ := output["formUrl"].(string)
	if formURL == "" {
		return nil, &generation.ProtocolError{Want: "a formUrl from the createGoogleForm tool"}
	}

	return &GoogleFormQuizOutput{FormURL: formURL}, nil
}
