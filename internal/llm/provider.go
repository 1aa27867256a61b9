package llm

import "context"

// Provider is the core abstraction for text generation.
// Consumers send a prompt and receive free-form text. Providers make no
// guarantee about the shape of the output — callers that expect JSON must
// run the response through ExtractJSON and validate it themselves.
type Provider interface {
	// Generate sends a prompt to the model and returns its text response.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured to use.
	ModelID() string
}

// Request describes what to send to the model.
type Request struct {
	// System is the system prompt. Sets the model's role and constraints.
	// Optional; most prompts in learnloop inline their instructions.
	System string

	// Prompt is the user prompt for this single-turn request.
	Prompt string

	// MaxTokens is the maximum number of tokens in the response.
	MaxTokens int

	// Temperature controls randomness. Range: 0.0 - 1.0.
	// Default: 0.0 (deterministic) when not set.
	Temperature float64
}

// Response holds the model's output.
type Response struct {
	// Text is the raw generated text, whitespace-trimmed. May contain
	// markdown fences, prose around a payload, or malformed JSON.
	Text string

	// Usage reports token consumption for this request.
	Usage Usage

	// Model is the actual model that served the request.
	Model string

	// StopReason indicates why generation stopped.
	// Normalized to: "end", "max_tokens", "error"
	StopReason string
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
