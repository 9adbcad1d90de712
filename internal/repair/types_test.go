package repair

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseIssueType(t *testing.T) {
	assert.Equal(t, IssueReplacement, ParseIssueType(" Replacement "))
	assert.Equal(t, IssueTeardown, ParseIssueType("TEARDOWN"))
	assert.Equal(t, IssueType(""), ParseIssueType("upgrade"))
}

func TestIntentSearchText(t *testing.T) {
	tests := []struct {
		name   string
		intent *Intent
		want   string
	}{
		{"nil", nil, ""},
		{"no device", &Intent{RawQuery: "x"}, ""},
		{"model wins", &Intent{Device: &Device{Brand: "Apple", Family: "iPhone", Model: "iPhone 12"}}, "iPhone 12"},
		{"brand family", &Intent{Device: &Device{Brand: "Apple", Family: "iPhone"}}, "Apple iPhone"},
		{"family only", &Intent{Device: &Device{Family: "Switch"}}, "Switch"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.intent.SearchText())
		})
	}
}

func TestWebResultEmpty(t *testing.T) {
	var nilResult *WebResult
	assert.True(t, nilResult.Empty())
	assert.True(t, (&WebResult{}).Empty())
	assert.False(t, (&WebResult{Answer: "a"}).Empty())
	assert.False(t, (&WebResult{Sources: []Source{{Title: "t"}}}).Empty())
}

func TestPipelineStateMerge(t *testing.T) {
	intent := &Intent{Confidence: 0.9, RawQuery: "q"}
	guides := &GuideResult{Device: "d", Guides: []Guide{{Title: "g"}}}

	s := PipelineState{UserQuery: "q", Intent: intent}
	next := s.Merge(PipelineState{GuideResult: guides, Source: SourceIFixit})

	assert.Equal(t, "q", next.UserQuery)
	assert.Same(t, intent, next.Intent)
	assert.Same(t, guides, next.GuideResult)
	assert.Equal(t, SourceIFixit, next.Source)

	// Empty delta never clears fields, and the input is left untouched.
	again := next.Merge(PipelineState{})
	assert.Equal(t, next, again)
	assert.Nil(t, s.GuideResult)
}
