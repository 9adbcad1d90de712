package synthesize

import (
	"repair-assistant/pkg/llmprovider"
	"repair-assistant/pkg/log"
)

// Synthesizer turns resolved knowledge into a final answer.
type Synthesizer struct {
	llm llmprovider.Generator
	l   log.Logger
}

// New creates a new Synthesizer.
func New(llm llmprovider.Generator, l log.Logger) *Synthesizer {
	return &Synthesizer{
		llm: llm,
		l:   l,
	}
}
