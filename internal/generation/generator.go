package generation

import (
	"context"
	"encoding/json"

	"google.golang.org/genai"

	"github.com/infatoz/sahayak-api/internal/tools"
)

// Modality selects the kind of payload the model is asked to return.
type Modality string

const (
	ModalityText  Modality = "TEXT"
	ModalityImage Modality = "IMAGE"
	ModalityAudio Modality = "AUDIO"
)

// Request describes a single call to the remote model.
type Request struct {
	// Model is the model identifier, e.g. "gemini-1.5-flash".
	Model string

	// Prompt is the rendered prompt text.
	Prompt string

	// Media holds binary payloads referenced by the prompt (e.g. a textbook
	// page image). They are sent as inline parts alongside the prompt text.
	Media []Media

	// OutputSchema, when set, constrains the model to structured JSON output
	// conforming to the schema. The result's Structured field carries the
	// raw payload; callers decode and re-validate it.
	OutputSchema *genai.Schema

	// Tools are the callable functions the model may invoke mid-generation.
	Tools []tools.Definition

	// Modalities are the response modalities to request. Empty means TEXT.
	Modalities []Modality

	// Voice selects the prebuilt voice for audio generation.
	Voice string

	// State is caller-supplied context handed to tool handlers. It travels
	// outside the model-visible conversation; credentials placed here are
	// never shown to the model.
	State *tools.State
}

// ToolInvocation records one executed tool call within a generation turn.
type ToolInvocation struct {
	Name   string
	Args   map[string]any
	Output map[string]any
}

// Result is the outcome of a generation request.
type Result struct {
	// Text is the concatenated free-text portion of the response.
	Text string

	// Media is the binary payload returned by the model, if any.
	Media *Media

	// Structured is the raw structured-output payload when the request
	// declared an OutputSchema.
	Structured json.RawMessage

	// Invocations are the tool calls executed during the request, in
	// execution order.
	Invocations []ToolInvocation
}

// ToolOutput returns the recorded output of the first invocation of the
// named tool, and whether the tool was invoked at all.
func (r *Result) ToolOutput(name string) (map[string]any, bool) {
	for _, inv := range r.Invocations {
		if inv.Name == name {
			return inv.Output, true
		}
	}
	return nil, false
}

// Generator is the interface flows use to invoke the remote model.
type Generator interface {
	Generate(ctx context.Context, req *Request) (*Result, error)
}
