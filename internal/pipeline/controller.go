package pipeline

import (
	"context"
	"fmt"
	"time"

	"repair-assistant/internal/repair"
	"repair-assistant/pkg/metrics"
)

// Run executes the pipeline for userQuery until Done.
// The returned error is non-nil only for cancellation or synthesis failure.
func (c *Controller) Run(ctx context.Context, userQuery string, obs Observer, opts ...RunOption) (repair.PipelineState, error) {
	if obs == nil {
		obs = nopObserver{}
	}
	o := CollectOptions(opts...)

	state := repair.PipelineState{UserQuery: userQuery}
	stage, prev := StageExtractIntent, Stage("")

	for stage != StageDone {
		if err := ctx.Err(); err != nil {
			return state, err
		}

		if msg := diagnostic(prev, stage); msg != "" {
			obs.Diagnostic(ctx, msg)
		}

		start := time.Now()
		metrics.PipelineStageTotal.WithLabelValues(string(stage)).Inc()

		delta, ev, err := c.execute(ctx, stage, state, o)
		metrics.PipelineStageDuration.WithLabelValues(string(stage)).Observe(time.Since(start).Seconds())
		if err != nil {
			c.l.Errorf(ctx, "%s: stage %s failed: %v", LogPrefixRun, stage, err)
			return state, err
		}

		state = state.Merge(delta)
		obs.StageCompleted(ctx, stage, state)

		next, err := Next(stage, ev)
		if err != nil {
			return state, err
		}
		c.l.Debugf(ctx, "%s: %s -> %s", LogPrefixRun, stage, next)
		prev, stage = stage, next
	}

	metrics.AnswerSourceTotal.WithLabelValues(string(state.Source)).Inc()
	return state, nil
}

// diagnostic returns the progress notice for entering stage, if any.
func diagnostic(prev, stage Stage) string {
	switch {
	case stage == StageGuide:
		return DiagSearchingGuides
	case stage == StageWeb && prev == StageGuide:
		return DiagGuideFallback
	case stage == StageWeb:
		return DiagSearchingWeb
	default:
		return ""
	}
}

func (c *Controller) execute(ctx context.Context, stage Stage, state repair.PipelineState, o RunOptions) (repair.PipelineState, Event, error) {
	switch stage {
	case StageExtractIntent:
		in := c.extractor.Extract(ctx, state.UserQuery)
		return repair.PipelineState{Intent: in}, Event{Intent: in}, nil

	case StageClarify:
		answer := &repair.FinalAnswer{Source: repair.SourceAgent, Content: ClarifyMessage}
		return repair.PipelineState{FinalAnswer: answer, Source: answer.Source}, Event{}, nil

	case StageGuide:
		var res *repair.GuideResult
		if o.Refresh {
			res = c.guide.Refresh(ctx, state.Intent)
		} else {
			res = c.guide.Resolve(ctx, state.Intent)
		}
		return repair.PipelineState{GuideResult: res}, Event{GuideResult: res}, nil

	case StageWeb:
		var res *repair.WebResult
		if o.Refresh {
			res = c.web.Refresh(ctx, state.UserQuery)
		} else {
			res = c.web.Resolve(ctx, state.UserQuery)
		}
		return repair.PipelineState{WebResult: res}, Event{}, nil

	case StageSynthesize:
		answer, err := c.synth.Synthesize(ctx, state)
		if err != nil {
			return repair.PipelineState{}, Event{}, err
		}
		return repair.PipelineState{FinalAnswer: &answer, Source: answer.Source}, Event{}, nil

	default:
		return repair.PipelineState{}, Event{}, fmt.Errorf("%w: unknown stage %q", ErrInvalidTransition, stage)
	}
}
