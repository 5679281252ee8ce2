// Package latency simulates network round-trips for the in-memory stores.
package latency

import (
	"context"
	"time"
)

// Func blocks for d or until ctx is done, whichever comes first.
type Func func(ctx context.Context, d time.Duration) error

// Sleep waits on a timer. It is the default Func.
func Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// None returns immediately unless ctx is already done.
func None(ctx context.Context, _ time.Duration) error {
	return ctx.Err()
}

// OrDefault returns fn, or Sleep when fn is nil.
func OrDefault(fn Func) Func {
	if fn == nil {
		return Sleep
	}
	return fn
}
