package llm

import "context"

// GenerateRequest is a single text generation call. System may be empty.
type GenerateRequest struct {
	System      string  `json:"system,omitempty"`
	Prompt      string  `json:"prompt"`
	MaxTokens   int     `json:"max_tokens"`
	Temperature float32 `json:"temperature"`
}

// Provider defines the interface for LLM providers
type Provider interface {
	// GenerateText runs one prompt through the provider and returns the
	// model's text output
	GenerateText(ctx context.Context, system, prompt string, maxTokens int, temperature float32) (string, error)

	// IsHealthy checks if the LLM provider is healthy and available
	IsHealthy(ctx context.Context) error

	// Name returns the name of the LLM provider
	Name() string
}
