package pipeline

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"repair-assistant/internal/repair"
	"repair-assistant/pkg/log"
)

type fakeExtractor struct {
	intent *repair.Intent
	calls  int
}

func (f *fakeExtractor) Extract(_ context.Context, q string) *repair.Intent {
	f.calls++
	if f.intent == nil {
		return nil
	}
	in := *f.intent
	in.RawQuery = q
	return &in
}

func (f *fakeExtractor) NormalizeDevice(_ context.Context, text string) string { return text }

type fakeGuide struct {
	result    *repair.GuideResult
	calls     int
	refreshes int
}

func (f *fakeGuide) Resolve(context.Context, *repair.Intent) *repair.GuideResult {
	f.calls++
	return f.result
}

func (f *fakeGuide) Refresh(ctx context.Context, in *repair.Intent) *repair.GuideResult {
	f.refreshes++
	return f.Resolve(ctx, in)
}

type fakeWeb struct {
	result    *repair.WebResult
	calls     int
	refreshes int
}

func (f *fakeWeb) Resolve(context.Context, string) *repair.WebResult {
	f.calls++
	return f.result
}

func (f *fakeWeb) Refresh(ctx context.Context, q string) *repair.WebResult {
	f.refreshes++
	return f.Resolve(ctx, q)
}

type fakeSynth struct {
	err   error
	calls int
	seen  repair.PipelineState
}

func (f *fakeSynth) Synthesize(_ context.Context, s repair.PipelineState) (repair.FinalAnswer, error) {
	f.calls++
	f.seen = s
	if f.err != nil {
		return repair.FinalAnswer{}, f.err
	}
	switch {
	case !s.GuideResult.Empty():
		return repair.FinalAnswer{Source: repair.SourceIFixit, Content: "guide answer"}, nil
	case !s.WebResult.Empty():
		return repair.FinalAnswer{Source: repair.SourceWeb, Content: "web answer"}, nil
	default:
		return repair.FinalAnswer{Source: repair.SourceNone, Content: "No repair information was found."}, nil
	}
}

type recordingObserver struct {
	mu          sync.Mutex
	diagnostics []string
	stages      []Stage
}

func (r *recordingObserver) Diagnostic(_ context.Context, msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.diagnostics = append(r.diagnostics, msg)
}

func (r *recordingObserver) StageCompleted(_ context.Context, stage Stage, _ repair.PipelineState) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stages = append(r.stages, stage)
}

type fixture struct {
	extractor *fakeExtractor
	guide     *fakeGuide
	web       *fakeWeb
	synth     *fakeSynth
	obs       *recordingObserver
	ctrl      *Controller
}

func newFixture(confidence float64) *fixture {
	f := &fixture{
		extractor: &fakeExtractor{intent: &repair.Intent{Confidence: confidence}},
		guide:     &fakeGuide{},
		web:       &fakeWeb{},
		synth:     &fakeSynth{},
		obs:       &recordingObserver{},
	}
	f.ctrl = New(f.extractor, f.guide, f.web, f.synth, log.NewNop())
	return f
}

var someGuides = &repair.GuideResult{Device: "iPhone 12", Guides: []repair.Guide{{Title: "Battery"}}}

// High confidence with guides available.
func TestRun_GuidePath(t *testing.T) {
	f := newFixture(0.85)
	f.guide.result = someGuides

	state, err := f.ctrl.Run(context.Background(), "iPhone 12 battery replacement", f.obs)

	require.NoError(t, err)
	assert.Equal(t, repair.SourceIFixit, state.Source)
	assert.Equal(t, repair.SourceIFixit, state.FinalAnswer.Source)
	assert.Same(t, someGuides, state.GuideResult)
	assert.Equal(t, 0, f.web.calls)
	assert.Equal(t, []Stage{StageExtractIntent, StageGuide, StageSynthesize}, f.obs.stages)
	assert.Equal(t, []string{DiagSearchingGuides}, f.obs.diagnostics)
}

func TestRun_GuideFallsBackToWeb(t *testing.T) {
	f := newFixture(0.9)
	f.web.result = &repair.WebResult{Answer: "try this"}

	state, err := f.ctrl.Run(context.Background(), "obscure gadget", f.obs)

	require.NoError(t, err)
	assert.Equal(t, 1, f.guide.calls)
	assert.Equal(t, 1, f.web.calls)
	assert.Equal(t, repair.SourceWeb, state.Source)
	assert.Equal(t, []Stage{StageExtractIntent, StageGuide, StageWeb, StageSynthesize}, f.obs.stages)
	assert.Equal(t, []string{DiagSearchingGuides, DiagGuideFallback}, f.obs.diagnostics)
}

func TestRun_MidConfidenceGoesToWeb(t *testing.T) {
	f := newFixture(0.5)
	f.web.result = &repair.WebResult{Answer: "general advice"}

	state, err := f.ctrl.Run(context.Background(), "ps5 loud", f.obs)

	require.NoError(t, err)
	assert.Equal(t, 0, f.guide.calls)
	assert.Equal(t, repair.SourceWeb, state.Source)
	assert.Equal(t, []string{DiagSearchingWeb}, f.obs.diagnostics)
}

func TestRun_AbsentIntentGoesToWeb(t *testing.T) {
	f := newFixture(0)
	f.extractor.intent = nil

	state, err := f.ctrl.Run(context.Background(), "q", nil)

	require.NoError(t, err)
	assert.Equal(t, 0, f.guide.calls)
	assert.Equal(t, 1, f.web.calls)
	assert.Nil(t, state.Intent)
}

// Mid confidence, web search fails.
func TestRun_NothingFound(t *testing.T) {
	f := newFixture(0.5)

	state, err := f.ctrl.Run(context.Background(), "q", f.obs)

	require.NoError(t, err)
	assert.Equal(t, repair.SourceNone, state.Source)
	assert.Equal(t, "No repair information was found.", state.FinalAnswer.Content)
}

// Low confidence asks for clarification with no provider calls.
func TestRun_Clarify(t *testing.T) {
	f := newFixture(0.3)

	state, err := f.ctrl.Run(context.Background(), "it broke", f.obs)

	require.NoError(t, err)
	assert.Equal(t, repair.SourceAgent, state.Source)
	assert.Equal(t, ClarifyMessage, state.FinalAnswer.Content)
	assert.Zero(t, f.guide.calls)
	assert.Zero(t, f.web.calls)
	assert.Zero(t, f.synth.calls)
	assert.Equal(t, []Stage{StageExtractIntent, StageClarify}, f.obs.stages)
	assert.Empty(t, f.obs.diagnostics)
}

func TestRun_SynthesisError(t *testing.T) {
	f := newFixture(0.85)
	f.guide.result = someGuides
	f.synth.err = errors.New("llm down")

	state, err := f.ctrl.Run(context.Background(), "q", f.obs)

	require.Error(t, err)
	assert.Nil(t, state.FinalAnswer)
	assert.Same(t, someGuides, state.GuideResult)
}

func TestRun_StateIsAdditive(t *testing.T) {
	f := newFixture(0.85)
	f.guide.result = someGuides

	state, err := f.ctrl.Run(context.Background(), "q", nil)

	require.NoError(t, err)
	assert.Equal(t, "q", state.UserQuery)
	require.NotNil(t, state.Intent)
	assert.Equal(t, 0.85, state.Intent.Confidence)
	assert.Equal(t, "q", f.synth.seen.UserQuery)
	assert.Same(t, someGuides, f.synth.seen.GuideResult)
}

func TestRun_CancelledContext(t *testing.T) {
	f := newFixture(0.85)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := f.ctrl.Run(ctx, "q", nil)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, f.extractor.calls)
}

func TestRun_RefreshBypassesCache(t *testing.T) {
	f := newFixture(0.85)
	f.web.result = &repair.WebResult{Answer: "reset it"}

	state, err := f.ctrl.Run(context.Background(), "q", nil, WithRefresh(true))

	require.NoError(t, err)
	assert.Equal(t, repair.SourceWeb, state.Source)
	assert.Equal(t, 1, f.guide.refreshes)
	assert.Equal(t, 1, f.web.refreshes)
}

func TestRun_DefaultUsesCache(t *testing.T) {
	f := newFixture(0.85)
	f.guide.result = someGuides

	_, err := f.ctrl.Run(context.Background(), "q", nil, WithRefresh(false))

	require.NoError(t, err)
	assert.Equal(t, 1, f.guide.calls)
	assert.Zero(t, f.guide.refreshes)
}
