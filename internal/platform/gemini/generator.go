package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"google.golang.org/genai"

	"github.com/infatoz/sahayak-api/internal/config"
	"github.com/infatoz/sahayak-api/internal/generation"
)

// modelCaller is the seam between the generator and the genai SDK. Tests
// substitute a fake to script model turns without network access.
type modelCaller interface {
	generateContent(ctx context.Context, model string, contents []*genai.Content, cfg *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

type genaiCaller struct {
	client *genai.Client
}

func (c *genaiCaller) generateContent(ctx context.Context, model string, contents []*genai.Content, cfg *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	return c.client.Models.GenerateContent(ctx, model, contents, cfg)
}

// Generator implements generation.Generator against the Gemini API.
type Generator struct {
	logger *slog.Logger
	caller modelCaller
}

// NewGenerator creates a Generator from the LLM configuration.
func NewGenerator(ctx context.Context, logger *slog.Logger, cfg config.LLMConfig) (*Generator, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("%w: gemini API key cannot be empty", generation.ErrInvalidConfig)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create Gemini client: %v", generation.ErrInvalidConfig, err)
	}

	return &Generator{
		logger: logger,
		caller: &genaiCaller{client: client},
	}, nil
}

// Generate sends one generation request to the model. When the request
// declares tools, the call is wrapped in the tool-invocation loop and the
// result records every executed tool call.
func (g *Generator) Generate(ctx context.Context, req *generation.Request) (*generation.Result, error) {
	if req.Model == "" {
		return nil, fmt.Errorf("%w: model identifier cannot be empty", generation.ErrInvalidConfig)
	}

	contents := []*genai.Content{requestContent(req)}
	cfg := requestConfig(req)

	g.logger.DebugContext(ctx, "calling generation model",
		"model", req.Model,
		"prompt_length", len(req.Prompt),
		"media_parts", len(req.Media),
		"tools", len(req.Tools),
		"structured", req.OutputSchema != nil)

	var (
		resp        *genai.GenerateContentResponse
		invocations []generation.ToolInvocation
		err         error
	)
	if len(req.Tools) > 0 {
		resp, invocations, err = g.runToolLoop(ctx, req.Model, contents, cfg, req.Tools, req.State)
	} else {
		resp, err = g.caller.generateContent(ctx, req.Model, contents, cfg)
		if err != nil {
			err = fmt.Errorf("%w: %v", generation.ErrGenerationFailed, err)
		}
	}
	if err != nil {
		return nil, err
	}

	if err := checkResponse(resp); err != nil {
		return nil, err
	}

	result := &generation.Result{Invocations: invocations}
	for _, part := range resp.Candidates[0].Content.Parts {
		if part == nil {
			continue
		}
		if part.Text != "" {
			result.Text += part.Text
		}
		if part.InlineData != nil && result.Media == nil {
			result.Media = &generation.Media{
				MIMEType: part.InlineData.MIMEType,
				Data:     part.InlineData.Data,
			}
		}
	}

	if req.OutputSchema != nil {
		payload := strings.TrimSpace(result.Text)
		if payload == "" {
			return nil, fmt.Errorf("%w: no structured output returned", generation.ErrEmptyResult)
		}
		if !json.Valid([]byte(payload)) {
			return nil, fmt.Errorf("%w: structured output is not valid JSON", generation.ErrInvalidResponse)
		}
		result.Structured = json.RawMessage(payload)
	}

	if wantsMedia(req.Modalities) && result.Media == nil {
		return nil, fmt.Errorf("%w: no media returned", generation.ErrEmptyResult)
	}

	return result, nil
}

// requestContent builds the user turn: prompt text followed by any inline
// media parts.
func requestContent(req *generation.Request) *genai.Content {
	parts := make([]*genai.Part, 0, len(req.Media)+1)
	if req.Prompt != "" {
		parts = append(parts, &genai.Part{Text: req.Prompt})
	}
	for _, m := range req.Media {
		parts = append(parts, &genai.Part{
			InlineData: &genai.Blob{MIMEType: m.MIMEType, Data: m.Data},
		})
	}
	return &genai.Content{Role: "user", Parts: parts}
}

func requestConfig(req *generation.Request) *genai.GenerateContentConfig {
	cfg := &genai.GenerateContentConfig{}

	if req.OutputSchema != nil {
		cfg.ResponseMIMEType = "application/json"
		cfg.ResponseSchema = req.OutputSchema
	}

	if len(req.Tools) > 0 {
		declarations := make([]*genai.FunctionDeclaration, 0, len(req.Tools))
		for _, t := range req.Tools {
			declarations = append(declarations, t.Declaration())
		}
		cfg.Tools = []*genai.Tool{{FunctionDeclarations: declarations}}
	}

	for _, m := range req.Modalities {
		cfg.ResponseModalities = append(cfg.ResponseModalities, string(m))
	}

	if req.Voice != "" {
		cfg.SpeechConfig = &genai.SpeechConfig{
			VoiceConfig: &genai.VoiceConfig{
				PrebuiltVoiceConfig: &genai.PrebuiltVoiceConfig{VoiceName: req.Voice},
			},
		}
	}

	return cfg
}

// checkResponse rejects responses with no usable candidate content.
func checkResponse(resp *genai.GenerateContentResponse) error {
	switch {
	case resp == nil:
		return fmt.Errorf("%w: nil response", generation.ErrInvalidResponse)
	case len(resp.Candidates) == 0:
		return fmt.Errorf("%w: no content generated", generation.ErrEmptyResult)
	case resp.Candidates[0].FinishReason == genai.FinishReasonSafety:
		return generation.ErrContentBlocked
	case resp.Candidates[0].Content == nil:
		return fmt.Errorf("%w: empty content in response", generation.ErrEmptyResult)
	}
	return nil
}

func wantsMedia(modalities []generation.Modality) bool {
	for _, m := range modalities {
		if m == generation.ModalityImage || m == generation.ModalityAudio {
			return true
		}
	}
	return false
}
