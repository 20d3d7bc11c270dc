package service

import (
	"log"
	"time"

	"heimdall/checkpoint"
	"heimdall/jobs/scheduler"
)

// RegisterCheckpointJob adds the periodic checkpoint to sched: write
// the current rules, then truncate the journal and garbage-collect
// the outbox behind the checkpoint.
func (s *StateService) RegisterCheckpointJob(
	sched *scheduler.Scheduler,
	dir string,
	interval time.Duration,
) {
	w := &checkpoint.Writer{Dir: dir}

	sched.Add("checkpoint", interval, func() {
		s.applyMu.Lock()
		seq := s.seqGen.Current()
		rules := s.lastRules
		s.applyMu.Unlock()

		if rules == nil {
			return // nothing applied yet
		}

		if err := w.Write(seq, rules); err != nil {
			log.Printf("[service] checkpoint seq=%d failed: %v", seq, err)
			return
		}

		if err := s.journal.TruncateBefore(seq); err != nil {
			log.Printf("[service] journal truncate seq=%d failed: %v", seq, err)
		}
		if s.outbox != nil {
			if err := s.outbox.TruncateAckedUpTo(seq); err != nil {
				log.Printf("[service] outbox gc seq=%d failed: %v", seq, err)
			}
		}
	})
}
