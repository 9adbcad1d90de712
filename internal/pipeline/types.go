package pipeline

import (
	"context"

	"repair-assistant/internal/repair"
)

// Stage is a pipeline state.
type Stage string

const (
	StageExtractIntent Stage = "extract_intent"
	StageClarify       Stage = "clarify"
	StageGuide         Stage = "guide"
	StageWeb           Stage = "web"
	StageSynthesize    Stage = "synthesize"
	StageDone          Stage = "done"
)

// Event carries the outcome of a stage that the transition depends on.
type Event struct {
	Intent      *repair.Intent
	GuideResult *repair.GuideResult
}

// Observer receives progress notices while the pipeline runs.
type Observer interface {
	Diagnostic(ctx context.Context, message string)
	StageCompleted(ctx context.Context, stage Stage, state repair.PipelineState)
}

// Synthesizer produces the final answer from a resolved state.
type Synthesizer interface {
	Synthesize(ctx context.Context, state repair.PipelineState) (repair.FinalAnswer, error)
}

// RunOptions holds per-run settings.
type RunOptions struct {
	Refresh bool
}

// RunOption tunes a single Run.
type RunOption func(*RunOptions)

// WithRefresh makes the strategies skip cached results and replace them on success.
func WithRefresh(refresh bool) RunOption {
	return func(o *RunOptions) { o.Refresh = refresh }
}

// CollectOptions applies opts over the defaults.
func CollectOptions(opts ...RunOption) RunOptions {
	var o RunOptions
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

type nopObserver struct{}

func (nopObserver) Diagnostic(context.Context, string) {}
func (nopObserver) StageCompleted(context.Context, Stage, repair.PipelineState) {}
