package pipeline

import (
	"repair-assistant/internal/intent"
	"repair-assistant/internal/strategy"
	"repair-assistant/pkg/log"
)

// Controller drives one request through the pipeline stages.
// It holds only read-only collaborators and is safe for concurrent use.
type Controller struct {
	extractor intent.Extractor
	guide     strategy.GuideResolver
	web       strategy.WebResolver
	synth     Synthesizer
	l         log.Logger
}

// New creates a new Controller.
func New(extractor intent.Extractor, guide strategy.GuideResolver, web strategy.WebResolver, synth Synthesizer, l log.Logger) *Controller {
	return &Controller{
		extractor: extractor,
		guide:     guide,
		web:       web,
		synth:     synth,
		l:         l,
	}
}
