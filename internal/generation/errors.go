package generation

import (
	"errors"
	"fmt"
)

// Common errors returned by the generation layer.
var (
	// ErrGenerationFailed is returned when the remote model call fails.
	ErrGenerationFailed = errors.New("generation request failed")

	// ErrEmptyResult is returned when the model returned no usable result
	// where one was mandatory (no media, no structured output).
	ErrEmptyResult = errors.New("model returned no usable result")

	// ErrInvalidResponse is returned when the model response cannot be
	// parsed or is malformed.
	ErrInvalidResponse = errors.New("invalid response from model")

	// ErrContentBlocked is returned when the model blocks the content due
	// to safety filters.
	ErrContentBlocked = errors.New("content blocked by model safety filters")

	// ErrInvalidConfig is returned when the generator configuration is invalid.
	ErrInvalidConfig = errors.New("invalid generator configuration")
)

// ToolExecutionError reports that a tool's bound function failed during the
// tool-invocation loop. The loop aborts on the first such failure; there is
// no automatic retry.
type ToolExecutionError struct {
	Tool string
	Err  error
}

func (e *ToolExecutionError) Error() string {
	return fmt.Sprintf("tool %q failed: %v", e.Tool, e.Err)
}

func (e *ToolExecutionError) Unwrap() error {
	return e.Err
}

// ProtocolError reports that the model never produced a tool call or field
// a flow required, e.g. it answered directly instead of calling the
// form-creation tool.
type ProtocolError struct {
	Want string
}

func (e *ProtocolError) Error() string {
	return "model did not produce " + e.Want
}
