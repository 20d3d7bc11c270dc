package service

import (
	"fmt"
	"log"

	"heimdall/checkpoint"
	"heimdall/domain/routes"
	"heimdall/infra/journal"
)

// Bootstrap rebuilds in-memory state from the last checkpoint plus the
// journal. It MUST run before the service accepts traffic.
func (s *StateService) Bootstrap(checkpointDir, journalDir string) error {
	var baseSeq uint64

	cp, err := checkpoint.Load(checkpointDir)
	if err != nil {
		return fmt.Errorf("service: load checkpoint: %w", err)
	}
	if cp != nil {
		s.applyReplayed(cp.Rules)
		baseSeq = cp.Seq
		log.Printf("[service] checkpoint loaded seq=%d routes=%d", cp.Seq, len(cp.Rules))
	}

	lastSeq, err := journal.Replay(journalDir, func(rec *journal.Record) error {
		if rec.Type != journal.RecordApply || rec.Seq <= baseSeq {
			return nil
		}

		entry, err := journal.DecodeEntry(rec.Data)
		if err != nil {
			return err
		}
		rules, err := routes.Parse(entry.Rules)
		if err != nil {
			// A reload that was journaled had already passed
			// validation; a parse failure here means corruption.
			return fmt.Errorf("replayed rules at seq %d: %w", rec.Seq, err)
		}

		s.applyReplayed(rules)
		return nil
	})
	if err != nil {
		return fmt.Errorf("service: journal replay: %w", err)
	}

	if lastSeq > baseSeq {
		s.seqGen.Reset(lastSeq)
	} else {
		s.seqGen.Reset(baseSeq)
	}
	return nil
}
