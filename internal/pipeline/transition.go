package pipeline

import "fmt"

// Next is the pure transition function of the pipeline.
func Next(stage Stage, ev Event) (Stage, error) {
	switch stage {
	case StageExtractIntent:
		switch {
		case ev.Intent == nil:
			return StageWeb, nil
		case ev.Intent.Confidence < ClarifyBelow:
			return StageClarify, nil
		case ev.Intent.Confidence < GuideAtLeast:
			return StageWeb, nil
		default:
			return StageGuide, nil
		}
	case StageGuide:
		if ev.GuideResult.Empty() {
			return StageWeb, nil
		}
		return StageSynthesize, nil
	case StageWeb:
		return StageSynthesize, nil
	case StageClarify, StageSynthesize:
		return StageDone, nil
	default:
		return "", fmt.Errorf("%w: from %q", ErrInvalidTransition, stage)
	}
}
