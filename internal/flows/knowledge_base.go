package flows

import (
	"context"

	"google.golang.org/genai"

	"github.com/infatoz/sahayak-api/internal/generation"
	"github.com/infatoz/sahayak-api/internal/prompt"
	"github.com/infatoz/sahayak-api/internal/validation"
)

// KnowledgeBaseInput is a complex student question to explain simply.
type KnowledgeBaseInput struct {
	Question      string `json:"question" validate:"required"`
	LocalLanguage string `json:"localLanguage" validate:"required"`
}

// KnowledgeBaseOutput carries the explanation in the local language.
type KnowledgeBaseOutput struct {
	Explanation string `json:"explanation" validate:"required"`
}

var knowledgeBasePrompt = prompt.MustParse("instantKnowledgeBase", `You are an expert in explaining complex topics in simple terms, using analogies that are easy to understand for students.

A student has asked the following question in their local language ({{.LocalLanguage}}):
{{.Question}}

Provide a simple, accurate explanation in the same local language, using analogies to help them understand the concept. Focus on making it very simple to understand.

Explanation:`)

var knowledgeBaseSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"explanation": {
			Type:        genai.TypeString,
			Description: "A simple, accurate explanation of the question in the local language, complete with easy-to-understand analogies.",
		},
	},
	Required: []string{"explanation"},
}

// InstantKnowledgeBase answers a complex student question with a simple,
// analogy-rich explanation in the local language.
func (s *Service) InstantKnowledgeBase(ctx context.Context, in KnowledgeBaseInput) (*KnowledgeBaseOutput, error) {
	if err := validation.Check(in); err != nil {
		return nil, err
	}

	rendered, err := knowledgeBasePrompt.Render(in)
	if err != nil {
		return nil, err
	}

	result, err := s.generator.Generate(ctx, &generation.Request{
		Model:        s.models.TextModel,
		Prompt:       rendered,
		OutputSchema: knowledgeBaseSchema,
	})
	if err != nil {
		return nil, err
	}

	var out KnowledgeBaseOutput
	if err := decodeStructured(result, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
