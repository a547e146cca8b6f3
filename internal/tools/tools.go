// Package tools defines the callable functions the model may invoke
// mid-generation. A Definition pairs a model-facing declaration (name,
// description, parameter schema) with the bound Go handler that performs
// the side effect. Definitions exist only for the duration of one
// generation call.
package tools

import (
	"context"
	"errors"

	"google.golang.org/genai"
)

// ErrMissingAccessToken is returned by handlers that require a bearer
// credential when none was supplied with the request.
var ErrMissingAccessToken = errors.New("missing access token")

// State carries caller-supplied side-channel context for tool handlers,
// such as the bearer credential for an external API. It is threaded through
// the tool-invocation loop outside the model-visible conversation — nothing
// in State ever reaches the model.
type State struct {
	AccessToken string
}

// Handler executes a tool call with the model-supplied arguments and the
// caller's side-channel state.
type Handler func(ctx context.Context, args map[string]any, state *State) (map[string]any, error)

// Definition binds a model-facing tool declaration to its handler.
type Definition struct {
	Name        string
	Description string

	// Parameters is the input shape the model's arguments must satisfy.
	Parameters *genai.Schema

	Handler Handler
}

// Declaration returns the model-facing function declaration.
func (d Definition) Declaration() *genai.FunctionDeclaration {
	return &genai.FunctionDeclaration{
		Name:        d.Name,
		Description: d.Description,
		Parameters:  d.Parameters,
	}
}
