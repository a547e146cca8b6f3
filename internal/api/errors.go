package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/infatoz/sahayak-api/internal/generation"
	"github.com/infatoz/sahayak-api/internal/prompt"
	"github.com/infatoz/sahayak-api/internal/tools"
	"github.com/infatoz/sahayak-api/internal/validation"
)

// MapErrorToStatusCode maps flow errors to HTTP status codes. Upstream
// model and tool failures are reported as bad-gateway: this service did its
// part, the collaborator did not.
func MapErrorToStatusCode(err error) int {
	var (
		validationErr *validation.Error
		templateErr   *prompt.TemplateError
		toolErr       *generation.ToolExecutionError
		protocolErr   *generation.ProtocolError
	)

	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest

	case errors.Is(err, tools.ErrMissingAccessToken):
		return http.StatusUnauthorized

	case errors.Is(err, generation.ErrContentBlocked):
		return http.StatusUnprocessableEntity

	case errors.As(err, &toolErr),
		errors.As(err, &protocolErr),
		errors.Is(err, generation.ErrGenerationFailed),
		errors.Is(err, generation.ErrEmptyResult),
		errors.Is(err, generation.ErrInvalidResponse):
		return http.StatusBadGateway

	case errors.As(err, &templateErr):
		return http.StatusInternalServerError

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-facing message for a flow
// error. Internal details (prompts, tool arguments, upstream bodies) never
// leave through this path.
func GetSafeErrorMessage(err error) string {
	var (
		validationErr *validation.Error
		toolErr       *generation.ToolExecutionError
		protocolErr   *generation.ProtocolError
	)

	switch {
	case errors.As(err, &validationErr):
		if validationErr.Field == "" {
			return "Validation error"
		}
		return fmt.Sprintf("Invalid %s: failed %s check", validationErr.Field, validationErr.Rule)

	case errors.Is(err, tools.ErrMissingAccessToken):
		return "Missing Google access token"

	case errors.Is(err, generation.ErrContentBlocked):
		return "Content was blocked by safety filters"

	case errors.As(err, &toolErr):
		return fmt.Sprintf("The %s step failed", toolErr.Tool)

	case errors.As(err, &protocolErr):
		return "The model did not complete the requested steps"

	case errors.Is(err, generation.ErrGenerationFailed),
		errors.Is(err, generation.ErrEmptyResult),
		errors.Is(err, generation.ErrInvalidResponse):
		return "Content generation failed"

	default:
		return "An unexpected error occurred"
	}
}
