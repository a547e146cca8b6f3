package gemini

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"

	"github.com/infatoz/sahayak-api/internal/generation"
	"github.com/infatoz/sahayak-api/internal/tools"
)

// maxToolTurns bounds the number of model turns in one tool loop. The quiz
// flow needs at most three turns; a model still requesting tools past this
// limit is treated as a protocol violation.
const maxToolTurns = 8

// runToolLoop drives the model through its tool calls until a turn arrives
// with no further tool-call requests. Each requested call is validated
// against the tool's parameter schema, executed with the side-channel
// state, and fed back into the conversation as a function response. The
// state itself never enters the conversation.
func (g *Generator) runToolLoop(
	ctx context.Context,
	model string,
	contents []*genai.Content,
	cfg *genai.GenerateContentConfig,
	defs []tools.Definition,
	state *tools.State,
) (*genai.GenerateContentResponse, []generation.ToolInvocation, error) {
	byName := make(map[string]tools.Definition, len(defs))
	for _, d := range defs {
		byName[d.Name] = d
	}

	conversation := contents
	var invocations []generation.ToolInvocation

	for turn := 0; turn < maxToolTurns; turn++ {
		resp, err := g.caller.generateContent(ctx, model, conversation, cfg)
		if err != nil {
			return nil, invocations, fmt.Errorf("%w: %v", generation.ErrGenerationFailed, err)
		}
		if err := checkResponse(resp); err != nil {
			return nil, invocations, err
		}

		calls := functionCalls(resp)
		if len(calls) == 0 {
			return resp, invocations, nil
		}

		g.logger.DebugContext(ctx, "model requested tool calls",
			"turn", turn,
			"calls", len(calls))

		conversation = append(conversation, resp.Candidates[0].Content)

		responseParts := make([]*genai.Part, 0, len(calls))
		for _, call := range calls {
			def, ok := byName[call.Name]
			if !ok {
				return nil, invocations, &generation.ToolExecutionError{
					Tool: call.Name,
					Err:  errors.New("unknown tool"),
				}
			}

			if err := tools.CheckArgs(def.Parameters, call.Args); err != nil {
				return nil, invocations, &generation.ToolExecutionError{Tool: call.Name, Err: err}
			}

			output, err := def.Handler(ctx, call.Args, state)
			if err != nil {
				return nil, invocations, &generation.ToolExecutionError{Tool: call.Name, Err: err}
			}

			invocations = append(invocations, generation.ToolInvocation{
				Name:   call.Name,
				Args:   call.Args,
				Output: output,
			})

			responseParts = append(responseParts, &genai.Part{
				FunctionResponse: &genai.FunctionResponse{
					ID:       call.ID,
					Name:     call.Name,
					Response: output,
				},
			})
		}

		conversation = append(conversation, &genai.Content{Role: "user", Parts: responseParts})
	}

	return nil, invocations, &generation.ProtocolError{
		Want: fmt.Sprintf("a final answer within %d tool turns", maxToolTurns),
	}
}

func functionCalls(resp *genai.GenerateContentResponse) []*genai.FunctionCall {
	var calls []*genai.FunctionCall
	for _, part := range resp.Candidates[0].Content.Parts {
		if part != nil && part.FunctionCall != nil {
			calls = append(calls, part.FunctionCall)
		}
	}
	return calls
}
