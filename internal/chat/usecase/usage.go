package usecase

import (
	"context"

	"repair-assistant/internal/chat"
)

func (uc *implUseCase) GetUsage(ctx context.Context, userID string) (chat.UsageOutput, error) {
	if userID == "" {
		return chat.UsageOutput{}, chat.ErrMissingUser
	}

	used, err := uc.repo.GetUsage(ctx, userID)
	if err != nil {
		uc.l.Errorf(ctx, "%s: repo.GetUsage: %v", LogPrefixGetUsage, err)
		return chat.UsageOutput{}, err
	}

	return chat.UsageOutput{
		UserID:     userID,
		TokensUsed: used,
		TokenLimit: uc.opt.TokenLimit,
	}, nil
}
