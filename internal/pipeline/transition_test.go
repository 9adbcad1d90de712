package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"repair-assistant/internal/repair"
)

func TestNext_ExtractIntentRouting(t *testing.T) {
	tests := []struct {
		name   string
		intent *repair.Intent
		want   Stage
	}{
		{"absent intent", nil, StageWeb},
		{"zero", &repair.Intent{Confidence: 0}, StageClarify},
		{"degraded", &repair.Intent{Confidence: 0.2}, StageClarify},
		{"just below clarify", &repair.Intent{Confidence: 0.399}, StageClarify},
		{"clarify boundary", &repair.Intent{Confidence: 0.4}, StageWeb},
		{"mid", &repair.Intent{Confidence: 0.5}, StageWeb},
		{"just below guide", &repair.Intent{Confidence: 0.599}, StageWeb},
		{"guide boundary", &repair.Intent{Confidence: 0.6}, StageGuide},
		{"high", &repair.Intent{Confidence: 0.85}, StageGuide},
		{"max", &repair.Intent{Confidence: 1}, StageGuide},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Next(StageExtractIntent, Event{Intent: tt.intent})
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNext_GuideFallback(t *testing.T) {
	got, err := Next(StageGuide, Event{})
	require.NoError(t, err)
	assert.Equal(t, StageWeb, got)

	got, err = Next(StageGuide, Event{GuideResult: &repair.GuideResult{Device: "x"}})
	require.NoError(t, err)
	assert.Equal(t, StageWeb, got)

	got, err = Next(StageGuide, Event{GuideResult: &repair.GuideResult{Guides: []repair.Guide{{Title: "g"}}}})
	require.NoError(t, err)
	assert.Equal(t, StageSynthesize, got)
}

func TestNext_Unconditional(t *testing.T) {
	tests := []struct {
		from Stage
		want Stage
	}{
		{StageWeb, StageSynthesize},
		{StageClarify, StageDone},
		{StageSynthesize, StageDone},
	}
	for _, tt := range tests {
		got, err := Next(tt.from, Event{})
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "from %s", tt.from)
	}
}

func TestNext_Invalid(t *testing.T) {
	for _, s := range []Stage{StageDone, "bogus"} {
		_, err := Next(s, Event{})
		assert.ErrorIs(t, err, ErrInvalidTransition)
	}
}
