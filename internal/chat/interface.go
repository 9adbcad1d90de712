package chat

import (
	"context"

	"repair-assistant/internal/pipeline"
	"repair-assistant/internal/repair"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Stream runs the pipeline for one question and writes events to em.
	// Validation and quota errors are returned before anything is emitted.
	Stream(ctx context.Context, input StreamInput, em Emitter) error
	GetUsage(ctx context.Context, userID string) (UsageOutput, error)
}

// Emitter writes one event to the client. An error means the client is gone.
type Emitter interface {
	Emit(ctx context.Context, ev Event) error
}

// Runner executes the repair pipeline.
type Runner interface {
	Run(ctx context.Context, userQuery string, obs pipeline.Observer, opts ...pipeline.RunOption) (repair.PipelineState, error)
}
