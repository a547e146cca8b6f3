// Package googleforms is a thin client for the Google Forms REST API. The
// bearer credential is supplied per call by the flow's caller; the client
// never caches or persists it.
package googleforms

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/tidwall/gjson"
)

const defaultBaseURL = "https://forms.googleapis.com/v1"

// Client calls the Google Forms API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// Option customizes a Client.
type Option func(*Client)

// WithBaseURL overrides the API base URL. Used by tests to point the
// client at a local server.
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = url
	}
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// NewClient creates a Forms API client.
func NewClient(logger *slog.Logger, opts ...Option) *Client {
	c := &Client{
		baseURL:    defaultBaseURL,
		httpClient: http.DefaultClient,
		logger:     logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Form identifies a created Google Form.
type Form struct {
	ID           string
	ResponderURL string
}

// Question is one multiple-choice item to add to a form.
type Question struct {
	Title   string
	Options []string
}

// CreateForm creates a new form with the given title and returns its ID
// and public responder URL.
func (c *Client) CreateForm(ctx context.Context, accessToken, title string) (*Form, error) {
	body := map[string]any{
		"info": map[string]any{"title": title},
	}

	respBody, err := c.call(ctx, accessToken, http.MethodPost, "/forms", body)
	if err != nil {
		return nil, err
	}

	form := &Form{
		ID:           gjson.GetBytes(respBody, "formId").String(),
		ResponderURL: gjson.GetBytes(respBody, "responderUri").String(),
	}
	if form.ID == "" {
		return nil, fmt.Errorf("forms API response missing formId")
	}
	return form, nil
}

// AddQuestions batch-inserts multiple-choice questions into the form. Each
// question becomes a required RADIO choice item at its list position.
func (c *Client) AddQuestions(ctx context.Context, accessToken, formID string, questions []Question) (json.RawMessage, error) {
	requests := make([]any, 0, len(questions))
	for i, q := range questions {
		options := make([]any, 0, len(q.Options))
		for _, opt := range q.Options {
			options = append(options, map[string]any{"value": opt})
		}
		requests = append(requests, map[string]any{
			"createItem": map[string]any{
				"item": map[string]any{
					"title": q.Title,
					"questionItem": map[string]any{
						"question": map[string]any{
							"required": true,
							"choiceQuestion": map[string]any{
								"type":    "RADIO",
								"options": options,
							},
						},
					},
				},
				"location": map[string]any{"index": i},
			},
		})
	}

	respBody, err := c.call(ctx, accessToken, http.MethodPost, "/forms/"+formID+":batchUpdate", map[string]any{
		"requests": requests,
	})
	if err != nil {
		return nil, err
	}
	return json.RawMessage(respBody), nil
}

func (c *Client) call(ctx context.Context, accessToken, method, path string, body any) ([]byte, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal forms API request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build forms API request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("forms API request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read forms API response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.ErrorContext(ctx, "forms API error",
			"status", resp.StatusCode,
			"path", path,
			"body", string(respBody))
		return nil, fmt.Errorf("forms API request failed with status %d", resp.StatusCode)
	}

	return respBody, nil
}
