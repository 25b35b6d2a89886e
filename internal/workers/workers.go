package workers

import "context"

type Workers struct {
	workers []Worker
}

// NewWorkers groups workers to be run together, in the given order.
func NewWorkers(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Run(ctx)
	}
}
