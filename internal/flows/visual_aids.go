package flows

import (
	"context"
	"fmt"

	"github.com/infatoz/sahayak-api/internal/generation"
	"github.com/infatoz/sahayak-api/internal/prompt"
	"github.com/infatoz/sahayak-api/internal/validation"
)

// VisualAidInput describes the visual aid a teacher wants drawn.
type VisualAidInput struct {
	Description string `json:"description" validate:"required"`
	Subject     string `json:"subject" validate:"required"`
	Style       string `json:"style" validate:"required"`
}

// VisualAidOutput carries the generated image as a data URI.
type VisualAidOutput struct {
	Image string `json:"image" validate:"required,datauri"`
}

var visualAidPrompt = prompt.MustParse("designVisualAids", `You are an expert visual aid designer for educational purposes. Generate an accurate and clear image for a teacher.

Subject: {{.Subject}}
Style: {{.Style}}
Description: {{.Description}}

If the style is 'Simple Line Drawing' or 'Diagram/Chart', create an image that can be easily replicated on a blackboard.
For other styles, create a high-quality, illustrative image suitable for teaching.`)

// DesignVisualAid runs the two-stage visual aid pipeline: a text model
// first elaborates the teacher's description into an image-generation
// instruction, then the image model is invoked with mixed TEXT and IMAGE
// modalities. Only the image is returned; a result without media fails.
func (s *Service) DesignVisualAid(ctx context.Context, in VisualAidInput) (*VisualAidOutput, error) {
	if err := validation.Check(in); err != nil {
		return nil, err
	}

	rendered, err := visualAidPrompt.Render(in)
	if err != nil {
		return nil, err
	}

	instruction, err := s.generator.Generate(ctx, &generation.Request{
		Model:  s.models.TextModel,
		Prompt: rendered,
	})
	if err != nil {
		return nil, err
	}
	if instruction.Text == "" {
		return nil, fmt.Errorf("%w: no image instruction generated", generation.ErrEmptyResult)
	}

	image, err := s.generator.Generate(ctx, &generation.Request{
		Model:      s.models.ImageModel,
		Prompt:     instruction.Text,
		Modalities: []generation.Modality{generation.ModalityText, generation.ModalityImage},
	})
	if err != nil {
		return nil, err
	}
	if image.Media == nil {
		return nil, fmt.Errorf("%w: no media in image model result", generation.ErrEmptyResult)
	}

	out := &VisualAidOutput{Image: image.Media.DataURI()}
	if err := validation.Check(out); err != nil {
		return nil, fmt.Errorf("%w: %v", generation.ErrInvalidResponse, err)
	}
	return out, nil
}
