package llmprovider

import "context"

// Provider defines the interface for LLM providers
type Provider interface {
	// GenerateContent sends a generation request and returns a response
	GenerateContent(ctx context.Context, req *Request) (*Response, error)

	// Name returns the provider name (e.g., "gemini", "groq")
	Name() string

	// Model returns the model being used
	Model() string
}

// Generator is the opaque text-generation service consumed by the pipeline.
// It fails by returning an error; callers decide how to degrade.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Request represents a normalized single-turn LLM generation request
type Request struct {
	SystemInstruction string
	Prompt            string
	Temperature       float64
	MaxTokens         int
}

// Response represents a normalized LLM generation response
type Response struct {
	Text         string
	ProviderName string
	ModelName    string
	Usage        *Usage
}

// Usage tracks token consumption
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
