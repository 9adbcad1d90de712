package strategy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"repair-assistant/internal/repair"
	"repair-assistant/pkg/ifixit"
)

func TestScore(t *testing.T) {
	intent := &repair.Intent{Issue: &repair.Issue{Type: repair.IssueReplacement, Component: "Battery"}}

	tests := []struct {
		name  string
		guide ifixit.GuideSummary
		want  int
	}{
		{"nothing", ifixit.GuideSummary{Title: "Teardown", Type: "teardown"}, 0},
		{"component case-insensitive", ifixit.GuideSummary{Title: "BATTERY check"}, 50},
		{"type only", ifixit.GuideSummary{Title: "Screen", Type: "replacement"}, 30},
		{"keyword only", ifixit.GuideSummary{Title: "Screen Replacement", Type: "repair"}, 10},
		{"starred only", ifixit.GuideSummary{Title: "Screen", Flags: []string{"GUIDE_STARRED"}}, 20},
		{"all", ifixit.GuideSummary{Title: "iPhone 12 Battery Replacement", Type: "replacement", Flags: []string{"GUIDE_STARRED"}}, 110},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Score(tt.guide, intent))
		})
	}
}

func TestScore_NoIssue(t *testing.T) {
	g := ifixit.GuideSummary{Title: "Battery Replacement", Type: "replacement"}
	assert.Equal(t, ScoreReplacement, Score(g, &repair.Intent{}))
}

func TestRankGuides_StableTiesAndTopN(t *testing.T) {
	intent := &repair.Intent{Issue: &repair.Issue{Component: "battery"}}
	guides := []ifixit.GuideSummary{
		{GuideID: 1, Title: "Screen"},
		{GuideID: 2, Title: "Battery"},
		{GuideID: 3, Title: "Camera"},
		{GuideID: 4, Title: "Battery Connector"},
		{GuideID: 5, Title: "Speaker"},
	}

	top := rankGuides(guides, intent, 3)

	ids := make([]int, len(top))
	for i, g := range top {
		ids[i] = g.GuideID
	}
	// Two batteries at 50 keep listing order, then the first zero-scored guide.
	assert.Equal(t, []int{2, 4, 1}, ids)
}
