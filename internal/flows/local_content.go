package flows

import (
	"context"

	"google.golang.org/genai"

	"github.com/infatoz/sahayak-api/internal/generation"
	"github.com/infatoz/sahayak-api/internal/prompt"
	"github.com/infatoz/sahayak-api/internal/validation"
)

// LocalContentInput is a teacher's request for hyper-local content in their
// local language.
type LocalContentInput struct {
	Language string `json:"language" validate:"required"`
	Request  string `json:"request" validate:"required"`
}

// LocalContentOutput carries the generated content.
type LocalContentOutput struct {
	Content string `json:"content" validate:"required"`
}

var localContentPrompt = prompt.MustParse("localContent", `You are an AI assistant designed to generate hyper-local content for teachers in their local language.

A teacher has requested the following content in {{.Language}}:
{{.Request}}

Generate culturally relevant and simple content based on the request.
Ensure that the content is appropriate for use in a multi-grade classroom setting.
Do not include any harmful or inappropriate content.
Respond in {{.Language}}.`)

var localContentSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"content": {
			Type:        genai.TypeString,
			Description: "The generated hyper-local content in the specified language.",
		},
	},
	Required: []string{"content"},
}

// GenerateLocalContent produces culturally relevant teaching content in the
// requested language. Single-shot text generation, no tools.
func (s *Service) GenerateLocalContent(ctx context.Context, in LocalContentInput) (*LocalContentOutput, error) {
	if err := validation.Check(in); err != nil {
		return nil, err
	}

	rendered, err := localContentPrompt.Render(in)
	if err != nil {
		return nil, err
	}

	result, err := s.generator.Generate(ctx, &generation.Request{
		Model:        s.models.TextModel,
		Prompt:       rendered,
		OutputSchema: localContentSchema,
	})
	if err != nil {
		return nil, err
	}

	var out LocalContentOutput
	if err := decodeStructured(result, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
