package gemini

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"github.com/infatoz/sahayak-api/internal/generation"
	"github.com/infatoz/sahayak-api/internal/tools"
)

func toolCallResponse(name string, args map[string]any) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{
				Role: "model",
				Parts: []*genai.Part{{
					FunctionCall: &genai.FunctionCall{Name: name, Args: args},
				}},
			},
		}},
	}
}

func echoTool(name string, executions *int) tools.Definition {
	return tools.Definition{
		Name: name,
		Parameters: &genai.Schema{
			Type:       genai.TypeObject,
			Properties: map[string]*genai.Schema{"query": {Type: genai.TypeString}},
			Required:   []string{"query"},
		},
		Handler: func(ctx context.Context, args map[string]any, state *tools.State) (map[string]any, error) {
			if executions != nil {
				*executions++
			}
			return map[string]any{"echo": args["query"]}, nil
		},
	}
}

// TestToolLoopExecutesEachRequestedCallOnce scripts N tool-call turns
// followed by a final answer and checks the loop ran the tool exactly N
// times.
func TestToolLoopExecutesEachRequestedCallOnce(t *testing.T) {
	t.Parallel()

	const n = 3
	responses := make([]*genai.GenerateContentResponse, 0, n+1)
	for i := 0; i < n; i++ {
		responses = append(responses, toolCallResponse("lookup", map[string]any{"query": "q"}))
	}
	responses = append(responses, textResponse("final answer"))

	caller := &fakeCaller{responses: responses}
	g := newTestGenerator(caller)

	var executions int
	result, err := g.Generate(context.Background(), &generation.Request{
		Model:  "m",
		Prompt: "p",
		Tools:  []tools.Definition{echoTool("lookup", &executions)},
	})
	require.NoError(t, err)

	assert.Equal(t, n, executions, "the tool must run exactly once per requested call")
	assert.Len(t, result.Invocations, n)
	assert.Equal(t, n+1, caller.calls)
	assert.Equal(t, "final answer", result.Text)

	for _, inv := range result.Invocations {
		assert.Equal(t, "lookup", inv.Name)
		assert.Equal(t, map[string]any{"echo": "q"}, inv.Output)
	}
}

// TestToolLoopFeedsResponsesBack verifies the conversation grows by a
// model turn plus a function-response turn per round, and that the
// function response carries the handler's output.
func TestToolLoopFeedsResponsesBack(t *testing.T) {
	t.Parallel()

	caller := &fakeCaller{responses: []*genai.GenerateContentResponse{
		toolCallResponse("lookup", map[string]any{"query": "photosynthesis"}),
		textResponse("done"),
	}}
	g := newTestGenerator(caller)

	_, err := g.Generate(context.Background(), &generation.Request{
		Model:  "m",
		Prompt: "p",
		Tools:  []tools.Definition{echoTool("lookup", nil)},
	})
	require.NoError(t, err)

	require.Equal(t, 2, caller.calls)
	first, second := caller.contents[0], caller.contents[1]
	assert.Len(t, first, 1, "first turn is the user prompt alone")
	require.Len(t, second, 3, "second turn appends the model's call and the function response")

	functionTurn := second[2]
	assert.Equal(t, "user", functionTurn.Role)
	require.Len(t, functionTurn.Parts, 1)
	fr := functionTurn.Parts[0].FunctionResponse
	require.NotNil(t, fr)
	assert.Equal(t, "lookup", fr.Name)
	assert.Equal(t, map[string]any{"echo": "photosynthesis"}, fr.Response)
}

// TestToolLoopStateStaysOutOfConversation checks the side-channel state
// reaches the handler while the credential never appears in any content
// sent to the model.
func TestToolLoopStateStaysOutOfConversation(t *testing.T) {
	t.Parallel()

	const secret = "ya29.secret-credential"

	caller := &fakeCaller{responses: []*genai.GenerateContentResponse{
		toolCallResponse("createForm", map[string]any{"title": "Quiz"}),
		textResponse("done"),
	}}
	g := newTestGenerator(caller)

	var seenToken string
	def := tools.Definition{
		Name: "createForm",
		Parameters: &genai.Schema{
			Type:       genai.TypeObject,
			Properties: map[string]*genai.Schema{"title": {Type: genai.TypeString}},
			Required:   []string{"title"},
		},
		Handler: func(ctx context.Context, args map[string]any, state *tools.State) (map[string]any, error) {
			seenToken = state.AccessToken
			return map[string]any{"formId": "F1"}, nil
		},
	}

	_, err := g.Generate(context.Background(), &generation.Request{
		Model:  "m",
		Prompt: "p",
		Tools:  []tools.Definition{def},
		State:  &tools.State{AccessToken: secret},
	})
	require.NoError(t, err)
	assert.Equal(t, secret, seenToken)

	for _, turn := range caller.contents {
		for _, content := range turn {
			for _, part := range content.Parts {
				assert.NotContains(t, part.Text, secret)
				if part.FunctionCall != nil {
					for _, v := range part.FunctionCall.Args {
						assert.NotEqual(t, secret, v)
					}
				}
			}
		}
	}
}

func TestToolLoopUnknownTool(t *testing.T) {
	t.Parallel()

	caller := &fakeCaller{responses: []*genai.GenerateContentResponse{
		toolCallResponse("nonexistentTool", map[string]any{}),
	}}
	g := newTestGenerator(caller)

	_, err := g.Generate(context.Background(), &generation.Request{
		Model:  "m",
		Prompt: "p",
		Tools:  []tools.Definition{echoTool("lookup", nil)},
	})

	var toolErr *generation.ToolExecutionError
	require.ErrorAs(t, err, &toolErr)
	assert.Equal(t, "nonexistentTool", toolErr.Tool)
	assert.Equal(t, 1, caller.calls, "the loop aborts before another model turn")
}

func TestToolLoopArgumentMismatch(t *testing.T) {
	t.Parallel()

	caller := &fakeCaller{responses: []*genai.GenerateContentResponse{
		toolCallResponse("lookup", map[string]any{"query": 42}),
	}}
	g := newTestGenerator(caller)

	var executions int
	_, err := g.Generate(context.Background(), &generation.Request{
		Model:  "m",
		Prompt: "p",
		Tools:  []tools.Definition{echoTool("lookup", &executions)},
	})

	var toolErr *generation.ToolExecutionError
	require.ErrorAs(t, err, &toolErr)
	assert.Equal(t, "lookup", toolErr.Tool)
	assert.Zero(t, executions, "a call with mismatched arguments never reaches the handler")
}

func TestToolLoopHandlerFailure(t *testing.T) {
	t.Parallel()

	cause := errors.New("upstream API unavailable")
	def := tools.Definition{
		Name: "failing",
		Handler: func(ctx context.Context, args map[string]any, state *tools.State) (map[string]any, error) {
			return nil, cause
		},
	}

	caller := &fakeCaller{responses: []*genai.GenerateContentResponse{
		toolCallResponse("failing", map[string]any{}),
		textResponse("never reached"),
	}}
	g := newTestGenerator(caller)

	_, err := g.Generate(context.Background(), &generation.Request{
		Model:  "m",
		Prompt: "p",
		Tools:  []tools.Definition{def},
	})

	var toolErr *generation.ToolExecutionError
	require.ErrorAs(t, err, &toolErr)
	assert.Equal(t, "failing", toolErr.Tool)
	require.ErrorIs(t, err, cause)
	assert.Equal(t, 1, caller.calls, "the first handler failure aborts the loop, no retry")
}

// TestToolLoopTurnCap drives a model that never stops requesting tools and
// checks the loop gives up with a protocol error instead of spinning.
func TestToolLoopTurnCap(t *testing.T) {
	t.Parallel()

	// The fake repeats its last scripted response, so the model requests
	// the same tool forever.
	caller := &fakeCaller{responses: []*genai.GenerateContentResponse{
		toolCallResponse("lookup", map[string]any{"query": "q"}),
	}}
	g := newTestGenerator(caller)

	var executions int
	_, err := g.Generate(context.Background(), &generation.Request{
		Model:  "m",
		Prompt: "p",
		Tools:  []tools.Definition{echoTool("lookup", &executions)},
	})

	var protoErr *generation.ProtocolError
	require.ErrorAs(t, err, &protoErr)
	assert.Equal(t, maxToolTurns, caller.calls)
	assert.Equal(t, maxToolTurns, executions)
}

// TestToolLoopMultipleCallsInOneTurn covers a turn carrying two parallel
// tool calls: both execute, in part order, before the next model turn.
func TestToolLoopMultipleCallsInOneTurn(t *testing.T) {
	t.Parallel()

	parallel := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{
				Role: "model",
				Parts: []*genai.Part{
					{FunctionCall: &genai.FunctionCall{Name: "lookup", Args: map[string]any{"query": "first"}}},
					{FunctionCall: &genai.FunctionCall{Name: "lookup", Args: map[string]any{"query": "second"}}},
				},
			},
		}},
	}

	caller := &fakeCaller{responses: []*genai.GenerateContentResponse{parallel, textResponse("done")}}
	g := newTestGenerator(caller)

	result, err := g.Generate(context.Background(), &generation.Request{
		Model:  "m",
		Prompt: "p",
		Tools:  []tools.Definition{echoTool("lookup", nil)},
	})
	require.NoError(t, err)

	require.Len(t, result.Invocations, 2)
	assert.Equal(t, "first", result.Invocations[0].Args["query"])
	assert.Equal(t, "second", result.Invocations[1].Args["query"])
	assert.Equal(t, 2, caller.calls)
}
