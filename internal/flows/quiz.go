package flows

import (
	"context"

	"google.golang.org/genai"

	"github.com/infatoz/sahayak-api/internal/generation"
	"github.com/infatoz/sahayak-api/internal/prompt"
	"github.com/infatoz/sahayak-api/internal/validation"
)

// QuizInput describes the quiz to generate and publish as a Google Form.
type QuizInput struct {
	Topic        string `json:"topic" validate:"required"`
	NumQuestions int    `json:"numQuestions" validate:"required,gt=0"`
	Language     string `json:"language" validate:"required"`
	AccessToken  string `json:"accessToken" validate:"required"`
}

// QuizOutput is the published form URL plus the raw quiz text.
type QuizOutput struct {
	FormURL     string `json:"formUrl" validate:"required"`
	QuizContent string `json:"quizContent" validate:"required"`
}

var quizPrompt = prompt.MustParse("generateQuiz", `You are an expert quiz creator for educational purposes.
Generate a multiple-choice quiz in {{.Language}} about the following topic: {{.Topic}}.
The quiz should have exactly {{.NumQuestions}} questions.
For each question, provide 4 options.
The quiz should be titled "Quiz on {{.Topic}}".

Return the entire quiz as a single string.`)

var quizSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"quizContent": {
			Type:        genai.TypeString,
			Description: "The full content of the quiz with questions and multiple choice options.",
		},
	},
	Required: []string{"quizContent"},
}

// GenerateQuiz is two nested flows: the inner call generates the quiz text,
// then the Google Form quiz flow publishes it and returns the form URL
// alongside the raw content.
func (s *Service) GenerateQuiz(ctx context.Context, in QuizInput) (*QuizOutput, error) {
	if err := validation.Check(in); err != nil {
		return nil, err
	}

	rendered, err := quizPrompt.Render(in)
	if err != nil {
		return nil, err
	}

	result, err := s.generator.Generate(ctx, &generation.Request{
		Model:        s.models.TextModel,
		Prompt:       rendered,
		OutputSchema: quizSchema,
	})
	if err != nil {
		return nil, err
	}

	var quiz struct {
		QuizContent string `json:"quizContent" validate:"required"`
	}
	if err := decodeStructured(result, &quiz); err != nil {
		return nil, err
	}

	form, err := s.CreateGoogleFormQuiz(ctx, GoogleFormQuizInput{
		WorksheetContent: quiz.QuizContent,
		Language:         in.Language,
		AccessToken:      in.AccessToken,
	})
	if err != nil {
		return nil, err
	}

	return &QuizOutput{
		FormURL:     form.FormURL,
		QuizContent: quiz.QuizContent,
	}, nil
}
