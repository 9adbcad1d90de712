package gemini

import (
	"fmt"
	"time"
)

// Config holds Gemini client configuration.
type Config struct {
	APIKey string
	Model  string

	// BaseURL overrides the Gemini API endpoint (used by tests).
	BaseURL string
	Timeout time.Duration
}

// Validate validates the configuration and fills defaults.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("gemini: APIKey is required")
	}
	if c.Model == "" {
		c.Model = DefaultModel
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	return nil
}

// Request is a single-turn text generation request.
type Request struct {
	SystemInstruction string
	Prompt            string
	Temperature       float64
	MaxTokens         int
}

// Response is the generated text plus token accounting.
type Response struct {
	Text  string
	Usage Usage
}

// Usage tracks token consumption reported by the API.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
