package fetchqueue

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestExecutor_FIFOPerKey(t *testing.T) {
	t.Parallel()
	ex := New(Config{Shards: 2, QueueSize: 32})
	defer ex.Stop()

	var mu sync.Mutex
	var order []int
	for i := 0; i < 10; i++ {
		i := i
		j := JobFunc(func(context.Context) error {
			mu.Lock()
			order = append(order, i)
			mu.Unlock()
			return nil
		})
		if err := ex.Submit(context.Background(), "same-key", j); err != nil {
			t.Fatalf("submit %d: %v", i, err)
		}
	}
	if err := ex.Barrier(context.Background(), "same-key"); err != nil {
		t.Fatalf("barrier: %v", err)
	}

	mu.Lock()
	defer mu.Unlock()
	for i, got := range order {
		if got != i {
			t.Fatalf("FIFO violated at %d: %v", i, order)
		}
	}
}

func TestExecutor_SubmitAfterStop(t *testing.T) {
	t.Parallel()
	ex := New(Config{Shards: 1, QueueSize: 1})
	ex.Stop()
	err := ex.Submit(context.Background(), "k", JobFunc(func(context.Context) error { return nil }))
	if !errors.Is(err, ErrExecutorClosed) {
		t.Fatalf("expected ErrExecutorClosed, got %v", err)
	}
}

func TestExecutor_QueueFull(t *testing.T) {
	t.Parallel()
	ex := New(Config{Shards: 1, QueueSize: 1, EnqueueTimeout: 10 * time.Millisecond})
	defer ex.Stop()

	release := make(chan struct{})
	blocker := JobFunc(func(context.Context) error {
		<-release
		return nil
	})
	// First job occupies the worker, second fills the queue.
	if err := ex.Submit(context.Background(), "k", blocker); err != nil {
		t.Fatalf("submit blocker: %v", err)
	}
	// Give the worker a moment to pick up the blocker.
	time.Sleep(20 * time.Millisecond)
	if err := ex.Submit(context.Background(), "k", blocker); err != nil {
		t.Fatalf("submit filler: %v", err)
	}

	err := ex.Submit(context.Background(), "k", JobFunc(func(context.Context) error { return nil }))
	if !errors.Is(err, ErrQueueFull) {
		t.Fatalf("expected ErrQueueFull, got %v", err)
	}
	var qf *QueueFullError
	if !errors.As(err, &qf) {
		t.Fatalf("expected *QueueFullError, got %T", err)
	}
	close(release)
}

func TestExecutor_Retry(t *testing.T) {
	t.Parallel()
	ex := New(Config{Shards: 1, QueueSize: 10, MaxAttempts: 3, BaseBackoff: 10 * time.Millisecond})
	defer ex.Stop()

	var attempts int32
	j := JobFunc(func(ctx context.Context) error {
		n := atomic.AddInt32(&attempts, 1)
		if n < 3 {
			return context.DeadlineExceeded // arbitrary recoverable error
		}
		return nil
	})

	if err := ex.Submit(context.Background(), "k1", j); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if err := ex.Barrier(context.Background(), "k1"); err != nil {
		t.Fatalf("barrier: %v", err)
	}

	if atomic.LoadInt32(&attempts) != 3 {
		t.Fatalf("expected 3 attempts, got %d", attempts)
	}
}

func TestExecutor_ErrorHandlerOnBudgetSpent(t *testing.T) {
	t.Parallel()
	var handled int32
	cfg := Config{
		Shards: 1, QueueSize: 10, MaxAttempts: 2, BaseBackoff: time.Millisecond,
		ErrorHandler: func(error) { atomic.AddInt32(&handled, 1) },
	}
	ex := New(cfg)
	defer ex.Stop()

	boom := JobFunc(func(context.Context) error { return errors.New("boom") })
	if err := ex.Submit(context.Background(), "k", boom); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if err := ex.Barrier(context.Background(), "k"); err != nil {
		t.Fatalf("barrier: %v", err)
	}
	if atomic.LoadInt32(&handled) != 1 {
		t.Fatalf("expected 1 handled error, got %d", handled)
	}
}

func TestExecutor_CanceledJobSkipsRun(t *testing.T) {
	t.Parallel()
	ex := New(Config{Shards: 1, QueueSize: 10})
	defer ex.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var ran int32
	j := JobFunc(func(context.Context) error {
		atomic.AddInt32(&ran, 1)
		return nil
	})
	if err := ex.Submit(ctx, "k", j); err != nil {
		// Submit itself may observe the cancellation; that is fine too.
		return
	}
	if err := ex.Barrier(context.Background(), "k"); err != nil {
		t.Fatalf("barrier: %v", err)
	}
	if atomic.LoadInt32(&ran) != 0 {
		t.Fatal("canceled job should not run")
	}
}

func TestExecutor_StopDrainsQueue(t *testing.T) {
	t.Parallel()
	ex := New(Config{Shards: 1, QueueSize: 32})

	var ran int32
	for i := 0; i < 8; i++ {
		j := JobFunc(func(context.Context) error {
			atomic.AddInt32(&ran, 1)
			return nil
		})
		if err := ex.Submit(context.Background(), "k", j); err != nil {
			t.Fatalf("submit %d: %v", i, err)
		}
	}
	ex.Stop()

	if got := atomic.LoadInt32(&ran); got != 8 {
		t.Fatalf("expected all 8 jobs drained, got %d", got)
	}
}

func TestExecutor_StopIdempotent(t *testing.T) {
	t.Parallel()
	ex := New(Config{Shards: 1, QueueSize: 1})
	ex.Stop()
	ex.Stop()
	if err := ex.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
}
