package workers

import (
	"context"
	"sync"
)

type Workers struct {
	workers []Worker
	wg      sync.WaitGroup
}

func New(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

// Start launches every worker in its own goroutine and returns at once.
func (w *Workers) Start(ctx context.Context) {
	for _, worker := range w.workers {
		w.wg.Go(func() { worker.Run(ctx) })
	}
}

// Wait blocks until every started worker has returned.
func (w *Workers) Wait() {
	w.wg.Wait()
}
