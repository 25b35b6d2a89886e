package workers

import (
	"context"
	"testing"
	"time"

	"github.com/MaulanaR/zendash/internal/logger"
)

func TestDailyUpdateWorker_StopWithoutRun(t *testing.T) {
	w := NewDailyUpdateWorker(time.Hour, logger.Nop())

	// Should not panic or block when the worker never started.
	w.Stop()
}

func TestDailyUpdateWorker_RunAndStop(t *testing.T) {
	w := NewDailyUpdateWorker(time.Hour, logger.Nop())

	w.Run(context.Background())
	w.Stop()

	// A second cycle must work after a full stop.
	w.Run(context.Background())
	w.Stop()
}

func TestDailyUpdateWorker_ContextCancelStops(t *testing.T) {
	w := NewDailyUpdateWorker(time.Hour, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	w.Run(ctx)
	cancel()

	// Stop must return promptly once the context is cancelled.
	done := make(chan struct{})
	go func() {
		w.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("worker did not stop after context cancellation")
	}
}

func TestNewDailyUpdateWorker_DefaultInterval(t *testing.T) {
	w := NewDailyUpdateWorker(0, logger.Nop())

	if w.interval != 24*time.Hour {
		t.Fatalf("expected default interval of 24h, got %s", w.interval)
	}
}
