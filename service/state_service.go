package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/hashicorp/go-uuid"

	"heimdall/domain/routes"
	"heimdall/infra/journal"
	"heimdall/infra/kafka"
	"heimdall/infra/outbox"
	"heimdall/infra/sequence"
	"heimdall/swap"
)

// StateService owns the published routing table and the reload
// pipeline around it.
type StateService struct {
	holder  *swap.Holder[routes.Table]
	journal *journal.Journal
	outbox  *outbox.Outbox
	seqGen  *sequence.Sequencer
	notify  *kafka.Producer // optional

	// applyMu serializes writers. The swap primitive assumes a single
	// logical writer; this is where that assumption is enforced.
	applyMu   sync.Mutex
	lastRules []routes.Rule
}

// New wires all dependencies. notify may be nil when no Kafka
// notification fan-out is configured.
func New(
	j *journal.Journal,
	ob *outbox.Outbox,
	seqGen *sequence.Sequencer,
	notify *kafka.Producer,
) *StateService {
	// The initial snapshot stays an empty table; readers simply get
	// no matches until the first reload lands.
	holder, _ := swap.New[routes.Table]()

	return &StateService{
		holder:  holder,
		journal: j,
		outbox:  ob,
		seqGen:  seqGen,
		notify:  notify,
	}
}

//
// ──────────────────────────────────────────────────────────
// Commands
// ──────────────────────────────────────────────────────────
//

// Apply validates a rules document, journals it, and publishes the new
// table in one swap. It returns the assigned sequence and reload ID.
func (s *StateService) Apply(ctx context.Context, source string, rulesDoc []byte) (uint64, string, error) {
	rules, err := routes.Parse(rulesDoc)
	if err != nil {
		return 0, "", err
	}

	id, err := uuid.GenerateUUID()
	if err != nil {
		return 0, "", fmt.Errorf("service: reload id: %w", err)
	}

	s.applyMu.Lock()
	defer s.applyMu.Unlock()

	// Build the replacement off to the side; readers are untouched.
	staged := s.holder.Stage()
	*staged.Value() = routes.Build(staged.Region(), rules)

	seq := s.seqGen.Next()
	entry := journal.EncodeEntry(&journal.ApplyEntry{
		ID:     id,
		Source: source,
		Rules:  rulesDoc,
	})

	// Journal before publish. On failure the staged snapshot was
	// never visible, so dropping our reference discards it cleanly.
	if err := s.journal.Append(journal.NewRecord(journal.RecordApply, seq, entry)); err != nil {
		staged.Release()
		return 0, "", fmt.Errorf("service: journal reload: %w", err)
	}

	s.holder.Swap(staged)
	s.lastRules = rules

	if s.outbox != nil {
		if err := s.outbox.Put(seq, entry); err != nil {
			log.Printf("[service] outbox put seq=%d failed: %v", seq, err)
		}
	}
	if s.notify != nil {
		if err := s.notify.Send(ctx, seq, entry); err != nil {
			log.Printf("[service] notify seq=%d failed: %v", seq, err)
		}
	}

	return seq, id, nil
}

//
// ──────────────────────────────────────────────────────────
// Queries
// ──────────────────────────────────────────────────────────
//

// Lookup resolves a path against the current table. The returned
// route is copied out of the snapshot, so it stays valid after the
// snapshot is released.
func (s *StateService) Lookup(path string) (routes.Route, bool) {
	snap := s.holder.Acquire()
	defer snap.Release()

	r, ok := snap.Value().Match(path)
	if !ok {
		return routes.Route{}, false
	}
	return cloneRoute(r), true
}

// TableSnapshot returns a copy of every route in the current table.
func (s *StateService) TableSnapshot() []routes.Route {
	snap := s.holder.Acquire()
	defer snap.Release()

	tbl := snap.Value()
	out := make([]routes.Route, 0, tbl.Len())
	for _, r := range tbl.Routes {
		out = append(out, cloneRoute(r))
	}
	return out
}

// Seq returns the last applied reload sequence.
func (s *StateService) Seq() uint64 {
	return s.seqGen.Current()
}

// Close releases the holder's reference to the final snapshot.
func (s *StateService) Close() {
	s.holder.Close()
}

// cloneRoute copies region-owned strings onto the heap so the result
// outlives the snapshot.
func cloneRoute(r routes.Route) routes.Route {
	return routes.Route{
		Prefix:  strings.Clone(r.Prefix),
		Backend: strings.Clone(r.Backend),
		Weight:  r.Weight,
	}
}

// applyReplayed rebuilds state from a journaled entry without
// re-journaling it. Used by bootstrap only.
func (s *StateService) applyReplayed(rules []routes.Rule) {
	s.applyMu.Lock()
	defer s.applyMu.Unlock()

	staged := s.holder.Stage()
	*staged.Value() = routes.Build(staged.Region(), rules)
	s.holder.Swap(staged)
	s.lastRules = rules
}
