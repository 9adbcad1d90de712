package gemini

import (
	"context"
	"errors"
	"fmt"
	"time"

	"google.golang.org/genai"
)

// ErrEmptyResponse is returned when the model produced no text.
var ErrEmptyResponse = errors.New("gemini: empty response")

type geminiImpl struct {
	client  *genai.Client
	model   string
	timeout time.Duration
}

func newGeminiImpl(client *genai.Client, cfg Config) *geminiImpl {
	return &geminiImpl{
		client:  client,
		model:   cfg.Model,
		timeout: cfg.Timeout,
	}
}

// GenerateContent sends a generation request to Gemini API
func (g *geminiImpl) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	result, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(req.Prompt), g.buildConfig(req))
	if err != nil {
		return nil, fmt.Errorf("gemini: failed to call API: %w", err)
	}

	text := result.Text()
	if text == "" {
		return nil, ErrEmptyResponse
	}

	resp := &Response{Text: text}
	if result.UsageMetadata != nil {
		resp.Usage = Usage{
			InputTokens:  int(result.UsageMetadata.PromptTokenCount),
			OutputTokens: int(result.UsageMetadata.CandidatesTokenCount),
			TotalTokens:  int(result.UsageMetadata.TotalTokenCount),
		}
	}
	return resp, nil
}

// Model returns the model being used
func (g *geminiImpl) Model() string {
	return g.model
}

func (g *geminiImpl) buildConfig(req *Request) *genai.GenerateContentConfig {
	cfg := &genai.GenerateContentConfig{}
	if req.SystemInstruction != "" {
		cfg.SystemInstruction = genai.NewContentFromText(req.SystemInstruction, genai.RoleUser)
	}
	if req.Temperature > 0 {
		cfg.Temperature = genai.Ptr(float32(req.Temperature))
	}
	if req.MaxTokens > 0 {
		cfg.MaxOutputTokens = int32(req.MaxTokens)
	}
	return cfg
}
