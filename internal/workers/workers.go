package workers

import "context"

// Workers is an aggregate running a set of background workers in a
// unified way.
type Workers struct {
	workers []Worker
}

// NewWorkers builds the aggregate from the given workers.
func NewWorkers(ws ...Worker) *Workers {
	return &Workers{workers: ws}
}

// Run starts every worker in registration order.
func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Run(ctx)
	}
}

// Stop shuts workers down in reverse registration order so that
// downstream consumers outlive their producers.
func (w *Workers) Stop() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		w.workers[i].Stop()
	}
}
