package pipeline_test

import (
	"context"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"repair-assistant/internal/intent"
	"repair-assistant/internal/pipeline"
	"repair-assistant/internal/repair"
	"repair-assistant/internal/repair/repository/memory"
	"repair-assistant/internal/strategy"
	"repair-assistant/internal/synthesize"
	"repair-assistant/pkg/ifixit"
	"repair-assistant/pkg/log"
	"repair-assistant/pkg/tavily"
)

// scriptedLLM answers intent prompts with a fixed JSON payload and
// synthesis prompts with a canned answer.
type scriptedLLM struct {
	intentJSON string
	calls      atomic.Int32
}

func (s *scriptedLLM) Generate(_ context.Context, prompt string) (string, error) {
	s.calls.Add(1)
	if strings.Contains(prompt, "You extract structured repair intent") {
		return s.intentJSON, nil
	}
	return "Here is how to fix it.", nil
}

type stubIFixit struct {
	device string
	calls  atomic.Int32
}

func (s *stubIFixit) SearchDevice(context.Context, string) (string, error) {
	s.calls.Add(1)
	return s.device, nil
}

func (s *stubIFixit) ListGuides(context.Context, string) ([]ifixit.GuideSummary, error) {
	return []ifixit.GuideSummary{
		{GuideID: 1, Title: "iPhone Screen Replacement", Type: "replacement"},
		{GuideID: 2, Title: "iPhone Front Panel Assembly", Type: "replacement"},
	}, nil
}

func (s *stubIFixit) GetGuideDetails(_ context.Context, id int) (*ifixit.GuideDetails, error) {
	return &ifixit.GuideDetails{GuideID: id, Title: "Guide", Steps: []ifixit.Step{{Text: "Open it"}}}, nil
}

type stubSearch struct {
	resp  *tavily.SearchResponse
	calls atomic.Int32
}

func (s *stubSearch) Search(context.Context, string) (*tavily.SearchResponse, error) {
	s.calls.Add(1)
	if s.resp == nil {
		return nil, assert.AnError
	}
	return s.resp, nil
}

func build(llm *scriptedLLM, fx *stubIFixit, web *stubSearch) *pipeline.Controller {
	l := log.NewNop()
	cache := memory.New(nil, memory.Options{}, l)
	ex := intent.New(llm, l)
	opt := strategy.Options{ProviderTimeout: time.Second}
	guide := strategy.NewGuide(fx, ex, cache, opt, l)
	return pipeline.New(ex, guide, strategy.NewWeb(web, cache, opt, l), synthesize.New(llm, l), l)
}

const screenIntent = `{"device":{"brand":"Apple","family":"iPhone"},"issue":{"type":"repair","component":"screen","symptom":"cracked"},"confidence":0.85}`

func TestScenario_HighConfidenceGuideAnswer(t *testing.T) {
	fx, web := &stubIFixit{device: "iPhone"}, &stubSearch{}
	var guides *repair.GuideResult
	obs := &guideCapture{out: &guides}
	ctrl := build(&scriptedLLM{intentJSON: screenIntent}, fx, web)

	state, err := ctrl.Run(context.Background(), "iPhone screen cracked", obs)

	require.NoError(t, err)
	require.NotNil(t, guides)
	assert.Len(t, guides.Guides, 2)
	assert.Equal(t, repair.SourceIFixit, state.FinalAnswer.Source)
	assert.Zero(t, web.calls.Load())
}

func TestScenario_LowConfidenceClarifies(t *testing.T) {
	llm := &scriptedLLM{intentJSON: `{"confidence":0.1}`}
	fx, web := &stubIFixit{device: "iPhone"}, &stubSearch{}
	ctrl := build(llm, fx, web)

	state, err := ctrl.Run(context.Background(), "thing broken help", nil)

	require.NoError(t, err)
	assert.Equal(t, repair.SourceAgent, state.FinalAnswer.Source)
	assert.Equal(t, pipeline.ClarifyMessage, state.FinalAnswer.Content)
	assert.Zero(t, fx.calls.Load())
	assert.Zero(t, web.calls.Load())
	assert.Equal(t, int32(1), llm.calls.Load())
}

func TestScenario_EmptyWebResultGivesNone(t *testing.T) {
	llm := &scriptedLLM{intentJSON: `{"confidence":0.5}`}
	fx := &stubIFixit{device: "iPhone"}
	web := &stubSearch{resp: &tavily.SearchResponse{Answer: "", Results: []tavily.Result{}}}
	ctrl := build(llm, fx, web)

	state, err := ctrl.Run(context.Background(), "my thing is weird", nil)

	require.NoError(t, err)
	assert.Equal(t, repair.SourceNone, state.FinalAnswer.Source)
	assert.Equal(t, synthesize.NoInformationMessage, state.FinalAnswer.Content)
	assert.Equal(t, int32(1), web.calls.Load())
	assert.Zero(t, fx.calls.Load())
	assert.Equal(t, int32(1), llm.calls.Load())
}

func TestScenario_GuideMissFallsBackToWeb(t *testing.T) {
	llm := &scriptedLLM{intentJSON: `{"device":{"model":"Frobnicator 9000"},"confidence":0.9}`}
	fx := &stubIFixit{}
	web := &stubSearch{resp: &tavily.SearchResponse{Answer: "Reset it.", Results: []tavily.Result{{Title: "t", URL: "u"}}}}
	ctrl := build(llm, fx, web)

	state, err := ctrl.Run(context.Background(), "frobnicator 9000 won't start", nil)

	require.NoError(t, err)
	assert.Equal(t, repair.SourceWeb, state.FinalAnswer.Source)
	assert.Equal(t, int32(1), fx.calls.Load())
	assert.Equal(t, int32(1), web.calls.Load())
}

func TestScenario_RepeatQueryServedFromCache(t *testing.T) {
	fx, web := &stubIFixit{device: "iPhone"}, &stubSearch{}
	ctrl := build(&scriptedLLM{intentJSON: screenIntent}, fx, web)
	ctx := context.Background()

	_, err := ctrl.Run(ctx, "iPhone screen cracked", nil)
	require.NoError(t, err)

	state, err := ctrl.Run(ctx, "  iphone   SCREEN cracked", nil)
	require.NoError(t, err)
	assert.Equal(t, repair.SourceIFixit, state.Source)
	assert.Equal(t, int32(1), fx.calls.Load())
}

func TestScenario_RefreshRefetchesCachedQuery(t *testing.T) {
	fx, web := &stubIFixit{device: "iPhone"}, &stubSearch{}
	ctrl := build(&scriptedLLM{intentJSON: screenIntent}, fx, web)
	ctx := context.Background()

	_, err := ctrl.Run(ctx, "iPhone screen cracked", nil)
	require.NoError(t, err)

	state, err := ctrl.Run(ctx, "iPhone screen cracked", nil, pipeline.WithRefresh(true))
	require.NoError(t, err)
	assert.Equal(t, repair.SourceIFixit, state.Source)
	assert.Equal(t, int32(2), fx.calls.Load())

	_, err = ctrl.Run(ctx, "iPhone screen cracked", nil)
	require.NoError(t, err)
	assert.Equal(t, int32(2), fx.calls.Load())
}

type guideCapture struct {
	out **repair.GuideResult
}

func (g *guideCapture) Diagnostic(context.Context, string) {}

func (g *guideCapture) StageCompleted(_ context.Context, stage pipeline.Stage, s repair.PipelineState) {
	if stage == pipeline.StageGuide {
		*g.out = s.GuideResult
	}
}
