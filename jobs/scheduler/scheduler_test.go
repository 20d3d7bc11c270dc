package scheduler

import (
	"context"
	"sync/atomic"
	"testing"
	"time"
)

func TestScheduler_RunsJobs(t *testing.T) {
	var ticks atomic.Int64

	s := New()
	s.Add("counter", 5*time.Millisecond, func() { ticks.Add(1) })

	ctx, cancel := context.WithCancel(context.Background())
	s.Start(ctx)

	deadline := time.After(2 * time.Second)
	for ticks.Load() < 3 {
		select {
		case <-deadline:
			t.Fatalf("job ran %d times, expected at least 3", ticks.Load())
		case <-time.After(5 * time.Millisecond):
		}
	}
	cancel()

	// After cancellation the loop must stop ticking.
	stopped := ticks.Load()
	time.Sleep(50 * time.Millisecond)
	if after := ticks.Load(); after > stopped+1 {
		t.Fatalf("job still running after cancel: %d -> %d", stopped, after)
	}
}

func TestScheduler_PanicIsContained(t *testing.T) {
	var ticks atomic.Int64

	s := New()
	s.Add("bad", 5*time.Millisecond, func() { panic("boom") })
	s.Add("good", 5*time.Millisecond, func() { ticks.Add(1) })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	s.Start(ctx)

	deadline := time.After(2 * time.Second)
	for ticks.Load() < 2 {
		select {
		case <-deadline:
			t.Fatal("surviving job stopped after sibling panic")
		case <-time.After(5 * time.Millisecond):
		}
	}
}
