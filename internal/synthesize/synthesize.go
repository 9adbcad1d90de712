package synthesize

import (
	"context"
	"fmt"
	"strings"

	"repair-assistant/internal/repair"
)

// Synthesize picks the best available knowledge and asks the generator to phrase it.
// Guides win over web results; with neither, a fixed message is returned.
func (s *Synthesizer) Synthesize(ctx context.Context, state repair.PipelineState) (repair.FinalAnswer, error) {
	var (
		source      repair.Provenance
		instruction string
		toolData    string
	)

	switch {
	case !state.GuideResult.Empty():
		source, instruction, toolData = repair.SourceIFixit, InstructionGuide, RenderGuides(state.GuideResult)
	case !state.WebResult.Empty():
		source, instruction, toolData = repair.SourceWeb, InstructionWeb, RenderWeb(state.WebResult)
	default:
		s.l.Infof(ctx, "%s: no knowledge resolved", LogPrefixSynthesize)
		return repair.FinalAnswer{Source: repair.SourceNone, Content: NoInformationMessage}, nil
	}

	prompt := fmt.Sprintf(promptTemplate, instruction, state.UserQuery, toolData)
	content, err := s.llm.Generate(ctx, prompt)
	if err != nil {
		return repair.FinalAnswer{}, fmt.Errorf("%w: %v", ErrSynthesisFailed, err)
	}
	if strings.TrimSpace(content) == "" {
		return repair.FinalAnswer{}, fmt.Errorf("%w: %w", ErrSynthesisFailed, ErrEmptyAnswer)
	}

	s.l.Infof(ctx, "%s: source=%s length=%d", LogPrefixSynthesize, source, len([]rune(content)))
	return repair.FinalAnswer{Source: source, Content: content}, nil
}
