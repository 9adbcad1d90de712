package intent

import (
	"context"

	"repair-assistant/internal/repair"
	"repair-assistant/pkg/llmprovider"
	"repair-assistant/pkg/log"
)

// Extractor turns free text into a structured repair intent.
type Extractor interface {
	// Extract never fails; on any problem it returns a degraded intent.
	Extract(ctx context.Context, userQuery string) *repair.Intent

	// NormalizeDevice returns the official device name or the input unchanged.
	NormalizeDevice(ctx context.Context, text string) string
}

// LLMExtractor extracts intent with a text generator.
type LLMExtractor struct {
	llm llmprovider.Generator
	l   log.Logger
}

var _ Extractor = (*LLMExtractor)(nil)

// New creates a new LLMExtractor.
func New(llm llmprovider.Generator, l log.Logger) *LLMExtractor {
	return &LLMExtractor{
		llm: llm,
		l:   l,
	}
}
