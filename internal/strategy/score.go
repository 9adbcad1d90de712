package strategy

import (
	"sort"
	"strings"

	"repair-assistant/internal/repair"
	"repair-assistant/pkg/ifixit"
)

// Score ranks a guide summary against the intent.
func Score(g ifixit.GuideSummary, intent *repair.Intent) int {
	score := 0
	title := strings.ToLower(g.Title)

	if c := strings.ToLower(strings.TrimSpace(intent.Component())); c != "" && strings.Contains(title, c) {
		score += ScoreComponentMatch
	}
	if t := intent.IssueType(); t != "" && strings.EqualFold(g.Type, string(t)) {
		score += ScoreTypeMatch
	}
	if strings.Contains(title, replacementKeyword) {
		score += ScoreReplacement
	}
	if g.Starred() {
		score += ScoreStarred
	}
	return score
}

// rankGuides returns at most n guides by descending score; ties keep listing order.
func rankGuides(guides []ifixit.GuideSummary, intent *repair.Intent, n int) []ifixit.GuideSummary {
	type scored struct {
		g     ifixit.GuideSummary
		score int
	}
	list := make([]scored, 0, len(guides))
	for _, g := range guides {
		list = append(list, scored{g: g, score: Score(g, intent)})
	}
	sort.SliceStable(list, func(i, j int) bool { return list[i].score > list[j].score })

	if len(list) > n {
		list = list[:n]
	}
	out := make([]ifixit.GuideSummary, len(list))
	for i, s := range list {
		out[i] = s.g
	}
	return out
}
