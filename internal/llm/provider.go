package llm

import (
	"context"
	"encoding/json"
)

// Provider is the transport abstraction over a generative text backend.
// Implementations return the model's reply verbatim; decoding and schema
// enforcement happen in the gateway package.
type Provider interface {
	// Generate sends a prompt and returns the raw reply.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured to use.
	ModelID() string
}

// Request describes what to send to the backend.
type Request struct {
	// System sets the model's role and constraints.
	System string

	// Messages is the conversation. Evaluator calls are single-turn.
	Messages []Message

	// Schema, when set, asks the provider to use its native structured
	// output mode. Providers do not validate against it.
	Schema *Schema

	// MaxTokens is the maximum number of tokens in the reply.
	MaxTokens int

	// Temperature controls randomness. Range: 0.0 - 1.0.
	Temperature float64
}

// Message is a single conversation turn.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema defines the JSON structure expected from the model.
type Schema struct {
	// Name identifies this schema (schema name for OpenAI, cache key for
	// the compiled validator). Kebab-case, e.g. "question-batch".
	Name string

	// Description is sent to the model to guide generation.
	Description string

	// Definition is the JSON Schema document as a map.
	Definition map[string]any
}

// Response holds the backend's output.
type Response struct {
	// Content is the reply text exactly as returned by the model. It is
	// usually JSON but may carry prose, code fences or truncation.
	Content json.RawMessage

	Usage Usage

	// Model is the actual model that served the request.
	Model string

	// StopReason is normalized to "end", "max_tokens" or "error".
	StopReason string
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
