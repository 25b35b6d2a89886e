package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MaulanaR/zendash/internal/logger"
)

// DailyUpdateWorker ticks once per configured interval for housekeeping that
// should happen at most daily. The tick currently only logs; it is the hook
// point for future maintenance such as pruning old wallpaper caches.
type DailyUpdateWorker struct {
	interval time.Duration
	logger   *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewDailyUpdateWorker(interval time.Duration, log *logger.Logger) *DailyUpdateWorker {
	if interval <= 0 {
		interval = 24 * time.Hour
	}
	return &DailyUpdateWorker{interval: interval, logger: log}
}

// Run launches the background ticker goroutine. Any previously running
// ticker is stopped first. The goroutine exits when ctx is cancelled or
// Stop is called.
func (w *DailyUpdateWorker) Run(ctx context.Context) {
	w.Stop()

	w.mu.Lock()
	workerCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel
	w.wg.Add(1)
	w.mu.Unlock()

	go func() {
		defer w.wg.Done()
		t := time.NewTicker(w.interval)
		defer t.Stop()

		for {
			select {
			case <-workerCtx.Done():
				return
			case <-t.C:
				w.logger.Info().
					Str("func", "DailyUpdateWorker.Run").
					Msg("daily update tick")
			}
		}
	}()
}

// Stop cancels the background goroutine and blocks until it has fully
// exited. Safe to call when the worker is not running.
func (w *DailyUpdateWorker) Stop() {
	w.mu.Lock()
	cancel := w.cancel
	w.cancel = nil
	w.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	w.wg.Wait()
}
