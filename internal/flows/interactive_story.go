package flows

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/infatoz/sahayak-api/internal/generation"
	"github.com/infatoz/sahayak-api/internal/prompt"
	"github.com/infatoz/sahayak-api/internal/validation"
)

// InteractiveStoryInput is one turn of the classroom story. Continuity is
// entirely the caller's job: each turn re-submits the accumulated narrative
// in PreviousContext; there is no server-side session.
type InteractiveStoryInput struct {
	Topic             string `json:"topic" validate:"required"`
	Language          string `json:"language" validate:"required"`
	PreviousContext   string `json:"previousContext,omitempty"`
	StudentSuggestion string `json:"studentSuggestion,omitempty"`
}

// InteractiveStoryOutput is one new story segment plus its narration.
type InteractiveStoryOutput struct {
	StorySegment string `json:"storySegment" validate:"required"`
	AudioDataURI string `json:"audioDataUri" validate:"required,datauri"`
}

var interactiveStoryPrompt = prompt.MustParse("interactiveStory", `You are a master storyteller for children. Create a short, engaging story segment in {{.Language}}.

Topic: {{.Topic}}

{{if .PreviousContext}}This is the story so far:
"{{.PreviousContext}}"

A student suggested this should happen next: "{{.StudentSuggestion}}"
Incorporate the student's suggestion into the next part of the story. Keep it simple and continue the narrative.
{{else}}Start a new, simple story based on the topic. Keep the first part very short, about two or three sentences, and end with a question asking what should happen next.
{{end}}
Your response should only be the next part of the story.`)

var interactiveStorySchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"storySegment": {
			Type:        genai.TypeString,
			Description: "The next segment of the story.",
		},
	},
	Required: []string{"storySegment"},
}

// GenerateInteractiveStory produces exactly one new short story segment and
// its synthesized narration.
func (s *Service) GenerateInteractiveStory(ctx context.Context, in InteractiveStoryInput) (*InteractiveStoryOutput, error) {
	if err := validation.Check(in); err != nil {
		return nil, err
	}

	rendered, err := interactiveStoryPrompt.Render(in)
	if err != nil {
		return nil, err
	}

	result, err := s.generator.Generate(ctx, &generation.Request{
		Model:        s.models.TextModel,
		Prompt:       rendered,
		OutputSchema: interactiveStorySchema,
	})
	if err != nil {
		return nil, err
	}

	var segment struct {
		StorySegment string `json:"storySegment" validate:"required"`
	}
	if err := decodeStructured(result, &segment); err != nil {
		return nil, err
	}

	audioDataURI, err := s.narrate(ctx, segment.StorySegment)
	if err != nil {
		return nil, err
	}

	return &InteractiveStoryOutput{
		StorySegment: segment.StorySegment,
		AudioDataURI: audioDataURI,
	}, nil
}

// narrate synthesizes speech for the given text and wraps the raw PCM
// samples in a WAV container, returned as a data URI.
func (s *Service) narrate(ctx context.Context, text string) (string, error) {
	result, err := s.generator.Generate(ctx, &generation.Request{
		Model:      s.models.TTSModel,
		Prompt:     text,
		Modalities: []generation.Modality{generation.ModalityAudio},
		Voice:      s.models.TTSVoice,
	})
	if err != nil {
		return "", err
	}
	if result.Media == nil {
		return "", fmt.Errorf("%w: no audio media returned from the speech model", generation.ErrEmptyResult)
	}

	wav := generation.Media{
		MIMEType: "audio/wav",
		Data:     wavContainer(result.Media.Data),
	}
	return wav.DataURI(), nil
}
