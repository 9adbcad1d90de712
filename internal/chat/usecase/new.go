package usecase

import (
	"time"

	"repair-assistant/internal/chat"
	"repair-assistant/internal/chat/repository"
	"repair-assistant/pkg/log"
)

// Options tunes token streaming and quotas.
type Options struct {
	ChunkSize   int           // runes per token event
	PacingDelay time.Duration // pause between token events; 0 disables pacing
	TokenLimit  int64         // per-user cap; 0 means unlimited
}

// implUseCase is the private implementation of chat.UseCase.
type implUseCase struct {
	pipeline chat.Runner
	repo     repository.UsageRepository
	opt      Options
	l        log.Logger
}

var _ chat.UseCase = (*implUseCase)(nil)

// New creates a new chat UseCase implementation.
func New(pipeline chat.Runner, repo repository.UsageRepository, opt Options, l log.Logger) *implUseCase {
	if opt.ChunkSize <= 0 {
		opt.ChunkSize = defaultChunkSize
	}
	return &implUseCase{
		pipeline: pipeline,
		repo:     repo,
		opt:      opt,
		l:        l,
	}
}
