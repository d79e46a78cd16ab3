package llm

import (
	"context"
	"encoding/json"
)

// Provider is the core abstraction for model invocation. Consumers call
// Generate with a Request and receive raw text or structured JSON.
type Provider interface {
	// Generate sends the assembled instruction payload to the model and
	// returns its response. When the request carries a Schema, the
	// provider uses its native structured-output mechanism and the
	// response Content is the validated JSON. Otherwise Content is the
	// raw response text.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured to use.
	ModelID() string
}

// Request describes one model invocation.
type Request struct {
	// System is the assembled instruction string, sent verbatim.
	System string

	// Messages is the conversation. A chat turn is a single user message.
	Messages []Message

	// Attachment is an optional binary payload (a PDF under analysis)
	// forwarded to the model unmodified.
	Attachment *Attachment

	// Schema, when set, constrains the response to a JSON shape via the
	// provider's structured-output mechanism. Mutation-capable chat
	// leaves this nil: the schedule protocol permits prose, so the
	// output contract is enforced downstream by the interpreter.
	Schema *Schema

	// MaxTokens caps the response length.
	MaxTokens int

	// Temperature controls randomness, 0.0-1.0. Zero means deterministic.
	Temperature float64
}

// Attachment is a binary payload with its declared media type.
type Attachment struct {
	Data      []byte
	MediaType string
}

// Message is a single message in the conversation.
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

// lastUserIndex returns the index of the most recent user message, or -1
// when there is none. Attachments ride with this message: the document
// accompanies the turn that asks about it, not replayed history.
func lastUserIndex(msgs []Message) int {
	for i := len(msgs) - 1; i >= 0; i-- {
		if msgs[i].Role != RoleAssistant {
			return i
		}
	}
	return -1
}

// Schema defines a JSON structure expected from the model.
type Schema struct {
	// Name identifies the schema (tool name for Anthropic, schema name
	// for OpenAI). Kebab-case.
	Name string

	// Description tells the model what this schema represents.
	Description string

	// Definition is the JSON Schema definition as a map.
	Definition map[string]any
}

// Response holds the model's output.
type Response struct {
	// Content is the generated output: validated JSON when a Schema was
	// requested, raw text otherwise.
	Content json.RawMessage

	// Usage reports token consumption for this request.
	Usage Usage

	// Model is the actual model that served the request.
	Model string

	// StopReason indicates why generation stopped.
	// Normalized to: "end", "max_tokens", "error"
	StopReason string
}

// Text returns the response content as a plain string.
func (r *Response) Text() string {
	return string(r.Content)
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
