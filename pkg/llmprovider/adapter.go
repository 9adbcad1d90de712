package llmprovider

import (
	"context"
	"fmt"

	"repair-assistant/pkg/gemini"
	"repair-assistant/pkg/groq"
)

// GeminiAdapter adapts pkg/gemini to llmprovider.Provider interface
type GeminiAdapter struct {
	client gemini.IGemini
}

// NewGeminiAdapter creates a new Gemini adapter
func NewGeminiAdapter(client gemini.IGemini) *GeminiAdapter {
	return &GeminiAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *GeminiAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	resp, err := a.client.GenerateContent(ctx, &gemini.Request{
		SystemInstruction: req.SystemInstruction,
		Prompt:            req.Prompt,
		Temperature:       req.Temperature,
		MaxTokens:         req.MaxTokens,
	})
	if err != nil {
		return nil, err
	}

	return &Response{
		Text:         resp.Text,
		ProviderName: a.Name(),
		ModelName:    a.client.Model(),
		Usage: &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// Name returns provider name
func (a *GeminiAdapter) Name() string {
	return "gemini"
}

// Model returns model name
func (a *GeminiAdapter) Model() string {
	return a.client.Model()
}

// GroqAdapter adapts pkg/groq to llmprovider.Provider interface.
// It also serves other OpenAI-compatible endpoints under their own name.
type GroqAdapter struct {
	client groq.IGroq
	name   string
}

// NewGroqAdapter creates a new Groq adapter
func NewGroqAdapter(client groq.IGroq) *GroqAdapter {
	return &GroqAdapter{client: client, name: "groq"}
}

// NewCompatibleAdapter wraps an OpenAI-compatible client reported as name.
func NewCompatibleAdapter(name string, client groq.IGroq) *GroqAdapter {
	return &GroqAdapter{client: client, name: name}
}

// GenerateContent implements Provider interface
func (a *GroqAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	groqReq := &groq.Request{
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}
	if req.SystemInstruction != "" {
		groqReq.Messages = append(groqReq.Messages, groq.Message{Role: "system", Content: req.SystemInstruction})
	}
	groqReq.Messages = append(groqReq.Messages, groq.Message{Role: "user", Content: req.Prompt})

	resp, err := a.client.GenerateContent(ctx, groqReq)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", a.name, err)
	}

	out := &Response{
		ProviderName: a.Name(),
		ModelName:    resp.Model,
		Usage: &Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}
	if len(resp.Choices) > 0 {
		out.Text = resp.Choices[0].Message.Content
	}
	return out, nil
}

// Name returns the provider name
func (a *GroqAdapter) Name() string {
	return a.name
}

// Model returns the model name
func (a *GroqAdapter) Model() string {
	return a.client.Model()
}
