package llm

import (
	"context"
	"encoding/json"
	"time"
)

// Provider is the core abstraction for LLM interaction.
// Consumers call Generate with a Request and receive the model's text
// output, which the domain layer parses defensively.
type Provider interface {
	// Generate sends a prompt to the LLM and returns its response.
	// Exactly one round trip per call; retry policy, if any, belongs to
	// the caller. The request's Schema field, when set, causes the
	// response content to be validated against that schema before
	// returning.
	Generate(ctx context.Context, req Request) (*Response, error)

	// HealthCheck sends a minimal fixed prompt and reports whether the
	// provider answered with the expected marker. It never returns an
	// error: any failure, transport or otherwise, is reported as false.
	HealthCheck(ctx context.Context) bool

	// ModelID returns the model identifier this provider is configured to use.
	ModelID() string
}

// Request describes what to send to the LLM.
type Request struct {
	// System is the system prompt. Sets the LLM's role and constraints.
	System string

	// Messages is the conversation history. For single-turn generation
	// (the only case in inkmentor), this contains one user message.
	Messages []Message

	// Schema, when set, causes the response content to be validated
	// as JSON conforming to this schema. When nil, Content is the raw
	// model text and the caller is responsible for interpreting it.
	Schema *Schema

	// MaxTokens is the maximum number of tokens in the response.
	MaxTokens int

	// Temperature controls randomness. Range: 0.0 - 1.0.
	Temperature float64
}

// Message represents a single message in the conversation.
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

// Schema defines the JSON structure expected from the LLM.
type Schema struct {
	// Name identifies this schema. Kebab-case, e.g. "response-validation".
	Name string

	// Description is a human-readable description of what this schema
	// represents.
	Description string

	// Definition is the JSON Schema definition as a map.
	Definition map[string]any
}

// Response holds the LLM's output.
type Response struct {
	// Content is the generated output. Expected to be JSON when the
	// prompt requested a JSON shape, but the model returns free text and
	// the caller must parse defensively.
	Content json.RawMessage

	// Usage reports estimated token consumption for this request.
	// See EstimateUsage for the approximation contract.
	Usage Usage

	// Model is the actual model that served the request.
	Model string

	// Timestamp is when the round trip started.
	Timestamp time.Time

	// ProcessingTime is the wall-clock latency of the round trip.
	ProcessingTime time.Duration

	// StopReason indicates why generation stopped.
	// Normalized to: "end", "max_tokens".
	StopReason string
}

// Usage tracks approximate token consumption for a single request.
//
// Counts are a character-count heuristic (len/4), not a tokenizer count,
// and EstimatedCost is a linear estimate derived from them. Treat these
// as approximations for display and budgeting, never as exact accounting.
type Usage struct {
	InputTokens   int
	OutputTokens  int
	TotalTokens   int
	EstimatedCost float64
}

// estimateTokens approximates the token count of a text as one token per
// four characters. Good enough for cost display; wrong for billing.
func estimateTokens(text string) int {
	return len(text) / 4
}

// EstimateUsage builds a Usage from prompt and completion text using the
// character-count heuristic, pricing the result for the given model.
func EstimateUsage(modelID, prompt, completion string) Usage {
	in := estimateTokens(prompt)
	out := estimateTokens(completion)

	cost := LookupCost(modelID)
	if cost == nil {
		cost = &defaultCost
	}

	return Usage{
		InputTokens:   in,
		OutputTokens:  out,
		TotalTokens:   in + out,
		EstimatedCost: cost.Cost(in, out),
	}
}
