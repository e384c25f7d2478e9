package scheduler

import (
	"sync"
	"time"

	"github.com/osse101/IdleGather_Go/internal/metrics"
	"github.com/osse101/IdleGather_Go/internal/worker"
)

// Scheduler enqueues jobs onto a worker pool at fixed intervals
type Scheduler struct {
	workerPool *worker.Pool
	quit       chan struct{}
	wg         sync.WaitGroup
	stopOnce   sync.Once
}

// New creates a new scheduler
func New(pool *worker.Pool) *Scheduler {
	return &Scheduler{
		workerPool: pool,
		quit:       make(chan struct{}),
	}
}

// Schedule registers a job to run at a fixed interval, starting one interval from now.
//
// Firings are skipped while the pool queue is full rather than blocking the
// ticker; interval jobs that measure their own elapsed time lose nothing by it.
func (s *Scheduler) Schedule(interval time.Duration, job worker.Job) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				if !s.workerPool.TryEnqueue(job) {
					metrics.SchedulerSkippedFirings.Inc()
				}
			case <-s.quit:
				return
			}
		}
	}()
}

// Stop stops all scheduled jobs. It does not stop the worker pool.
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() {
		close(s.quit)
	})
	s.wg.Wait()
}
