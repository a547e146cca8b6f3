package flows

import (
	"context"
	"strings"

	"google.golang.org/genai"

	"github.com/infatoz/sahayak-api/internal/generation"
	"github.com/infatoz/sahayak-api/internal/prompt"
	"github.com/infatoz/sahayak-api/internal/validation"
)

// DifferentiatedMaterialsInput describes a document to differentiate across
// grade levels. DocumentContent is a base64 data URI of a textbook page
// photo or document.
type DifferentiatedMaterialsInput struct {
	DocumentContent string   `json:"documentContent" validate:"required,datauri"`
	GradeLevels     []string `json:"gradeLevels" validate:"required,min=1,dive,required"`
}

// Worksheet is the material tailored to one grade level.
type Worksheet struct {
	GradeLevel       string `json:"gradeLevel" validate:"required"`
	WorksheetContent string `json:"worksheetContent" validate:"required"`
}

// DifferentiatedMaterialsOutput is one worksheet per requested grade level,
// produced by the model in a single structured call.
type DifferentiatedMaterialsOutput struct {
	Worksheets []Worksheet `json:"worksheets" validate:"required,min=1,dive"`
}

var differentiatedMaterialsPrompt = prompt.MustParse("createDifferentiatedMaterials", `You are an expert teacher specializing in creating differentiated learning materials for multi-grade classrooms.

You will use the provided document content (from a textbook page image, PDF, or DOCX) and the list of grade levels to generate tailored worksheets for each grade level.

Create worksheets that are appropriate for each grade level, with questions and activities that align with their learning level.

Grade Levels: {{.GradeLevels}}

The document content is attached. Output the worksheets in JSON format. The JSON should be an array of objects, with each object containing the gradeLevel and the worksheetContent.`)

var differentiatedMaterialsSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"worksheets": {
			Type:        genai.TypeArray,
			Description: "An array of worksheets, each tailored to a specific grade level.",
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"gradeLevel": {
						Type:        genai.TypeString,
						Description: "The grade level of the worksheet.",
					},
					"worksheetContent": {
						Type:        genai.TypeString,
						Description: "The content of the worksheet for the specified grade level.",
					},
				},
				Required: []string{"gradeLevel", "worksheetContent"},
			},
		},
	},
	Required: []string{"worksheets"},
}

// CreateDifferentiatedMaterials generates one worksheet per grade level
// from an embedded document image. The whole worksheet array comes back
// from a single model call; no per-grade iteration is imposed here.
func (s *Service) CreateDifferentiatedMaterials(ctx context.Context, in DifferentiatedMaterialsInput) (*DifferentiatedMaterialsOutput, error) {
	if err := validation.Check(in); err != nil {
		return nil, err
	}

	media, err := generation.ParseDataURI(in.DocumentContent)
	if err != nil {
		return nil, &validation.Error{Field: "DocumentContent", Rule: "datauri"}
	}

	rendered, err := differentiatedMaterialsPrompt.Render(struct{ GradeLevels string }{
		GradeLevels: strings.Join(in.GradeLevels, ", "),
	})
	if err != nil {
		return nil, err
	}

	result, err := s.generator.Generate(ctx, &generation.Request{
		Model:        s.models.TextModel,
		Prompt:       rendered,
		Media:        []generation.Media{*media},
		OutputSchema: differentiatedMaterialsSchema,
	})
	if err != nil {
		return nil, err
	}

	var out DifferentiatedMaterialsOutput
	if err := decodeStructured(result, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
