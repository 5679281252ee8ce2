package latency

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestSleepWaitsForDuration(t *testing.T) {
	start := time.Now()
	if err := Sleep(context.Background(), 20*time.Millisecond); err != nil {
		t.Fatalf("sleep: %v", err)
	}
	if elapsed := time.Since(start); elapsed < 20*time.Millisecond {
		t.Fatalf("sleep returned too early: %s", elapsed)
	}
}

func TestSleepStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Sleep(ctx, time.Hour)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestNoneReportsDoneContext(t *testing.T) {
	if err := None(context.Background(), time.Hour); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := None(ctx, 0); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestOrDefaultFallsBackToSleep(t *testing.T) {
	if OrDefault(nil) == nil {
		t.Fatalf("expected non-nil default")
	}
	called := false
	fn := OrDefault(func(context.Context, time.Duration) error {
		called = true
		return nil
	})
	_ = fn(context.Background(), 0)
	if !called {
		t.Fatalf("expected custom func to be kept")
	}
}
