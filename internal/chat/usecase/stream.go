package usecase

import (
	"context"
	"fmt"
	"strings"

	"repair-assistant/internal/chat"
	"repair-assistant/internal/pipeline"
	"repair-assistant/pkg/metrics"
)

// Stream runs the pipeline and streams the answer.
// Usage is recorded once, only when every token reached the client.
func (uc *implUseCase) Stream(ctx context.Context, in chat.StreamInput, em chat.Emitter) error {
	if err := uc.validate(ctx, in); err != nil {
		return err
	}

	metrics.StreamsActive.Inc()
	defer metrics.StreamsActive.Dec()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	uc.l.Infof(ctx, "%s: thread=%s refresh=%t", LogPrefixStream, in.ThreadID, in.Refresh)

	obs := &streamObserver{em: em, cancel: cancel}
	state, err := uc.pipeline.Run(ctx, in.Message, obs, pipeline.WithRefresh(in.Refresh))
	if obs.clientGone() || ctx.Err() != nil {
		return chat.ErrClientGone
	}
	if err != nil {
		uc.l.Errorf(ctx, "%s: pipeline.Run: %v", LogPrefixStream, err)
		if emitErr := uc.emit(ctx, em, chat.ErrorEvent(ErrMsgGenerateFailed)); emitErr == nil {
			_ = uc.emit(ctx, em, chat.EndEvent())
		}
		return fmt.Errorf("%w: %v", chat.ErrPipelineFailed, err)
	}

	answer := state.FinalAnswer
	for i, chunk := range Chunks(answer.Content, uc.opt.ChunkSize) {
		if i > 0 {
			if err := pace(ctx, uc.opt.PacingDelay); err != nil {
				return chat.ErrClientGone
			}
		}
		if err := uc.emit(ctx, em, chat.TokenEvent(chunk)); err != nil {
			return chat.ErrClientGone
		}
	}
	if ctx.Err() != nil {
		return chat.ErrClientGone
	}

	tokens := CountTokens(answer.Content)
	if err := uc.repo.IncrementUsage(ctx, in.UserID, tokens); err != nil {
		uc.l.Errorf(ctx, "%s: repo.IncrementUsage user=%s tokens=%d: %v", LogPrefixStream, in.UserID, tokens, err)
	} else {
		metrics.TokensUsedTotal.Add(float64(tokens))
	}

	if err := uc.emit(ctx, em, chat.FinalEvent(tokens, string(answer.Source))); err != nil {
		return chat.ErrClientGone
	}
	if err := uc.emit(ctx, em, chat.EndEvent()); err != nil {
		return chat.ErrClientGone
	}

	uc.l.Infof(ctx, "%s: completed source=%s tokens=%d", LogPrefixStream, answer.Source, tokens)
	return nil
}

func (uc *implUseCase) validate(ctx context.Context, in chat.StreamInput) error {
	if strings.TrimSpace(in.UserID) == "" {
		return chat.ErrMissingUser
	}
	if strings.TrimSpace(in.Message) == "" {
		return chat.ErrEmptyMessage
	}
	if uc.opt.TokenLimit <= 0 {
		return nil
	}

	used, err := uc.repo.GetUsage(ctx, in.UserID)
	if err != nil {
		// Quota is best effort; an unreachable store must not block answers.
		uc.l.Warnf(ctx, "%s: quota check skipped: %v", LogPrefixStream, err)
		return nil
	}
	if used >= uc.opt.TokenLimit {
		return chat.ErrQuotaExceeded
	}
	return nil
}

func (uc *implUseCase) emit(ctx context.Context, em chat.Emitter, ev chat.Event) error {
	if err := em.Emit(ctx, ev); err != nil {
		return err
	}
	metrics.StreamEventsTotal.WithLabelValues(string(ev.Type)).Inc()
	return nil
}
