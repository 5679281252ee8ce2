package events

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/ivankudzin/heartlink/internal/domain/enums"
)

// Emitter is embedded by stores to publish events without failing the
// operation that triggered them.
type Emitter struct {
	notifier Notifier
	logger   *zap.Logger
	now      func() time.Time
}

func NewEmitter(notifier Notifier, logger *zap.Logger, now func() time.Time) Emitter {
	if notifier == nil {
		notifier = Nop()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if now == nil {
		now = time.Now
	}
	return Emitter{notifier: notifier, logger: logger, now: now}
}

func (e Emitter) Emit(ctx context.Context, kind enums.EventKind, props map[string]any) {
	if e.notifier == nil {
		return
	}
	event := Event{Kind: kind, At: e.now().UTC(), Props: props}
	if err := e.notifier.Publish(ctx, event); err != nil {
		e.logger.Warn("publish store event failed", zap.String("kind", string(kind)), zap.Error(err))
	}
}
