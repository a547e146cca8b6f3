package flows

import (
	"context"

	"google.golang.org/genai"

	"github.com/infatoz/sahayak-api/internal/generation"
	"github.com/infatoz/sahayak-api/internal/prompt"
	"github.com/infatoz/sahayak-api/internal/tools"
	"github.com/infatoz/sahayak-api/internal/validation"
)

// LessonPlanInput describes the lesson to plan.
type LessonPlanInput struct {
	Topic      string `json:"topic" validate:"required"`
	GradeLevel string `json:"gradeLevel" validate:"required"`
	Objectives string `json:"objectives" validate:"required"`
}

// LessonPlanResource is an online resource attached to a section.
type LessonPlanResource struct {
	Title string `json:"title" validate:"required"`
	URL   string `json:"url" validate:"required,url"`
	Type  string `json:"type" validate:"required,oneof=video article activity"`
}

// LessonPlanSection is one ordered section of the plan.
type LessonPlanSection struct {
	SectionTitle    string               `json:"sectionTitle" validate:"required"`
	DurationMinutes int                  `json:"durationMinutes" validate:"required,gt=0"`
	Description     string               `json:"description" validate:"required"`
	Resources       []LessonPlanResource `json:"resources,omitempty" validate:"omitempty,dive"`
}

// LessonPlanOutput is the structured lesson plan.
type LessonPlanOutput struct {
	LessonTitle string              `json:"lessonTitle" validate:"required"`
	LessonPlan  []LessonPlanSection `json:"lessonPlan" validate:"required,min=1,dive"`
}

var lessonPlanPrompt = prompt.MustParse("generateLessonPlan", `You are an expert curriculum developer. Your task is to create a detailed lesson plan based on the provided topic, grade level, and objectives.

Topic: {{.Topic}}
Grade Level: {{.GradeLevel}}
Learning Objectives: {{.Objectives}}

1.  First, use the 'searchEducationalResources' tool to find 2-3 relevant online resources (articles, videos, activities) for the given topic and grade level.
2.  Then, create a comprehensive lesson plan with a suitable title.
3.  The lesson plan should be divided into logical sections (e.g., Introduction, Direct Instruction, Guided Practice, Independent Activity, Assessment).
4.  For each section, provide a clear description and estimate the time required in minutes.
5.  Integrate the resources you found into the appropriate sections of the lesson plan. For instance, a video could be in the introduction, and an online article could be part of the guided practice.

Your final output must be a structured JSON object conforming to the output schema.`)

var lessonPlanSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"lessonTitle": {Type: genai.TypeString},
		"lessonPlan": {
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"sectionTitle": {
						Type:        genai.TypeString,
						Description: `Title of the lesson section (e.g., "Introduction", "Activity", "Assessment").`,
					},
					"durationMinutes": {
						Type:        genai.TypeNumber,
						Description: "Estimated duration of this section in minutes.",
					},
					"description": {
						Type:        genai.TypeString,
						Description: "A detailed description of the activities or content for this section.",
					},
					"resources": {
						Type:        genai.TypeArray,
						Description: "A list of online resources for this section.",
						Items: &genai.Schema{
							Type: genai.TypeObject,
							Properties: map[string]*genai.Schema{
								"title": {Type: genai.TypeString},
								"url":   {Type: genai.TypeString},
								"type": {
									Type: genai.TypeString,
									Enum: []string{"video", "article", "activity"},
								},
							},
							Required: []string{"title", "url", "type"},
						},
					},
				},
				Required: []string{"sectionTitle", "durationMinutes", "description"},
			},
		},
	},
	Required: []string{"lessonTitle", "lessonPlan"},
}

// GenerateLessonPlan creates a structured lesson plan. The model is given
// the resource search tool and instructed to consult it before producing
// the final plan.
func (s *Service) GenerateLessonPlan(ctx context.Context, in LessonPlanInput) (*LessonPlanOutput, error) {
	if err := validation.Check(in); err != nil {
		return nil, err
	}

	rendered, err := lessonPlanPrompt.Render(in)
	if err != nil {
		return nil, err
	}

	result, err := s.generator.Generate(ctx, &generation.Request{
		Model:        s.models.TextModel,
		Prompt:       rendered,
		OutputSchema: lessonPlanSchema,
		Tools:        []tools.Definition{tools.NewSearchEducationalResources(s.logger)},
	})
	if err != nil {
		return nil, err
	}

	var out LessonPlanOutput
	if err := decodeStructured(result, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
