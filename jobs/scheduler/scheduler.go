// Package scheduler runs the engine's periodic background jobs
// (checkpointing, journal truncation, outbox GC) on fixed tickers,
// decoupled from the request path.
package scheduler

import (
	"context"
	"log"
	"time"
)

type job struct {
	name  string
	every time.Duration
	run   func()
}

// Scheduler owns a set of ticker-driven jobs. Add jobs before Start;
// the set is fixed afterwards.
type Scheduler struct {
	jobs []job
}

func New() *Scheduler {
	return &Scheduler{}
}

// Add registers a named periodic job.
func (s *Scheduler) Add(name string, every time.Duration, run func()) {
	s.jobs = append(s.jobs, job{name: name, every: every, run: run})
}

// Start launches one goroutine per job; all stop when ctx is
// cancelled. A panicking job is logged and its loop exits; the other
// jobs keep running.
func (s *Scheduler) Start(ctx context.Context) {
	for _, j := range s.jobs {
		go s.loop(ctx, j)
	}
}

func (s *Scheduler) loop(ctx context.Context, j job) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[scheduler] job %s panicked: %v", j.name, r)
		}
	}()

	ticker := time.NewTicker(j.every)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			j.run()
		}
	}
}
