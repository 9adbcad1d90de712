package usecase

import (
	"context"
	"sync"

	"repair-assistant/internal/chat"
	"repair-assistant/internal/pipeline"
	"repair-assistant/internal/repair"
	"repair-assistant/pkg/metrics"
)

// streamObserver forwards pipeline progress to the client and cancels the
// run on the first failed write.
type streamObserver struct {
	em     chat.Emitter
	cancel context.CancelFunc

	mu   sync.Mutex
	gone bool
}

var _ pipeline.Observer = (*streamObserver)(nil)

func (o *streamObserver) Diagnostic(ctx context.Context, message string) {
	o.emit(ctx, chat.DiagnosticEvent(message))
}

func (o *streamObserver) StageCompleted(ctx context.Context, stage pipeline.Stage, _ repair.PipelineState) {
	o.emit(ctx, chat.StepEndEvent(string(stage)))
}

func (o *streamObserver) emit(ctx context.Context, ev chat.Event) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.gone {
		return
	}
	if err := o.em.Emit(ctx, ev); err != nil {
		o.gone = true
		o.cancel()
		return
	}
	metrics.StreamEventsTotal.WithLabelValues(string(ev.Type)).Inc()
}

func (o *streamObserver) clientGone() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.gone
}
