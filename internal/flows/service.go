// Package flows defines the content-generation pipelines exposed to the
// API layer. Every flow has the same shape: validate the input, render the
// prompt, invoke the generation client (with a tool loop where the flow
// declares tools), then validate the output before returning it. A flow
// either returns a fully valid output or fails with a typed error; nothing
// is retried and nothing survives the request.
package flows

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/infatoz/sahayak-api/internal/config"
	"github.com/infatoz/sahayak-api/internal/generation"
	"github.com/infatoz/sahayak-api/internal/platform/googleforms"
	"github.com/infatoz/sahayak-api/internal/validation"
)

// Service holds the shared dependencies of all flows.
type Service struct {
	generator generation.Generator
	forms     *googleforms.Client
	models    config.LLMConfig
	logger    *slog.Logger
}

// NewService creates the flow service.
func NewService(logger *slog.Logger, generator generation.Generator, forms *googleforms.Client, models config.LLMConfig) *Service {
	return &Service{
		generator: generator,
		forms:     forms,
		models:    models,
		logger:    logger,
	}
}

// decodeStructured unmarshals and re-validates a structured model payload.
// A payload the flow's own output shape rejects is treated as an invalid
// model response, never returned to the caller.
func decodeStructured(result *generation.Result, out any) error {
	if err := json.Unmarshal(result.Structured, out); err != nil {
		return fmt.Errorf("%w: %v", generation.ErrInvalidResponse, err)
	}
	if err := validation.Check(out); err != nil {
		return fmt.Errorf("%w: %v", generation.ErrInvalidResponse, err)
	}
	return nil
}
