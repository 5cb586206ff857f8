package model

import (
	"context"
	"fmt"
)

// Request captures the normalized model input produced by a role agent:
// role instructions plus the task payload. Agents never expose tools, so
// the request shape stays deliberately small.
type Request struct {
	Instructions string `json:"instructions"` // system-level role instructions
	Input        string `json:"input"`        // task payload text
}

// TokenUsage captures token usage statistics for a response.
type TokenUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// Response is the completed model output for one request.
type Response struct {
	Text         string      `json:"text"`
	FinishReason string      `json:"finish_reason"` // "stop", "length", etc.
	Usage        *TokenUsage `json:"usage,omitempty"`
}

// Info contains metadata about a model implementation.
type Info struct {
	Name     string `json:"name"`
	Provider string `json:"provider"` // "openai", "anthropic", "mock", etc.
}

// Model is the minimal interface required by role agents to drive
// generation. The call is synchronous; callers bound it with a context
// deadline.
type Model interface {
	Generate(ctx context.Context, req Request) (Response, error)

	// Info returns information about the model implementation.
	Info() Info
}

// MockModel is a lightweight in-memory Model useful for tests & examples.
// Responses are keyed by exact input text; unknown inputs get an echo
// response, keeping runs deterministic without any canned setup.
type MockModel struct {
	info      Info
	responses map[string]string
	failures  map[string]error
}

// NewMockModel constructs a MockModel.
func NewMockModel(name string) *MockModel {
	return &MockModel{
		info:      Info{Name: name, Provider: "mock"},
		responses: make(map[string]string),
		failures:  make(map[string]error),
	}
}

// AddResponse registers a deterministic canned completion for an input.
func (m *MockModel) AddResponse(input, response string) { m.responses[input] = response }

// FailOn registers an error to return for an input, overriding any canned
// response.
func (m *MockModel) FailOn(input string, err error) { m.failures[input] = err }

// Generate implements Model.
func (m *MockModel) Generate(ctx context.Context, req Request) (Response, error) {
	select {
	case <-ctx.Done():
		return Response{}, ctx.Err()
	default:
	}

	if err, ok := m.failures[req.Input]; ok {
		return Response{}, err
	}

	text, ok := m.responses[req.Input]
	if !ok {
		text = fmt.Sprintf("Mock response to: %s", req.Input)
	}

	return Response{Text: text, FinishReason: "stop"}, nil
}

// Info implements Model.
func (m *MockModel) Info() Info { return m.info }
