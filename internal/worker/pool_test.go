package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/IdleGather_Go/internal/testing/leaktest"
)

type testJob struct {
	executed *int32
}

func (j *testJob) Process(ctx context.Context) error {
	atomic.AddInt32(j.executed, 1)
	return nil
}

func TestPool(t *testing.T) {
	var executed int32
	pool := NewPool(TestWorkerCount, TestQueueSize)
	pool.Start(context.Background())

	job := &testJob{executed: &executed}
	pool.Enqueue(job)
	pool.Enqueue(job)

	assert.Eventually(t, func() bool {
		return atomic.LoadInt32(&executed) == TestExpectedJobCount
	}, TestDrainTimeout*time.Millisecond, 5*time.Millisecond)

	pool.Stop()
}

func TestPool_FailingJobDoesNotStopWorker(t *testing.T) {
	var executed int32
	pool := NewPool(1, TestQueueSize)
	pool.Start(context.Background())
	defer pool.Stop()

	pool.Enqueue(JobFunc(func(ctx context.Context) error { return errors.New("boom") }))
	pool.Enqueue(&testJob{executed: &executed})

	assert.Eventually(t, func() bool { return atomic.LoadInt32(&executed) == 1 }, time.Second, 5*time.Millisecond)
}

func TestPool_TryEnqueueReportsFullQueue(t *testing.T) {
	pool := NewPool(1, 1) // not started: nothing drains the queue

	var executed int32
	assert.True(t, pool.TryEnqueue(&testJob{executed: &executed}))
	assert.False(t, pool.TryEnqueue(&testJob{executed: &executed}))

	pool.Stop()
}

func TestPool_StopIsIdempotentAndLeakFree(t *testing.T) {
	leaktest.CheckNoGoroutineLeak(t, func() {
		pool := NewPool(TestWorkerCount, TestQueueSize)
		pool.Start(context.Background())
		pool.Stop()
		pool.Stop()
	})
}

func TestPool_ContextCancellationStopsWorkers(t *testing.T) {
	leaktest.CheckNoGoroutineLeak(t, func() {
		ctx, cancel := context.WithCancel(context.Background())
		pool := NewPool(TestWorkerCount, TestQueueSize)
		pool.Start(ctx)
		cancel()
		pool.Stop()
	})
}
