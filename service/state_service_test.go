package service

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"heimdall/infra/journal"
	"heimdall/infra/sequence"
)

const testRules = `{
  "routes": [
    {"prefix": "/api", "backend": "10.0.0.1:8080", "weight": 100},
    {"prefix": "/", "backend": "10.0.0.9:8080", "weight": 1}
  ]
}`

func newTestService(t *testing.T) (*StateService, string) {
	t.Helper()

	dir := t.TempDir()
	j, err := journal.Open(journal.Config{Dir: dir})
	if err != nil {
		t.Fatalf("open journal: %v", err)
	}
	t.Cleanup(func() { _ = j.Close() })

	svc := New(j, nil, sequence.New(0), nil)
	t.Cleanup(svc.Close)
	return svc, dir
}

func TestApplyAndLookup(t *testing.T) {
	svc, _ := newTestService(t)

	if _, ok := svc.Lookup("/api/users"); ok {
		t.Fatal("empty table should not match")
	}

	seq, id, err := svc.Apply(context.Background(), "test", []byte(testRules))
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if seq != 1 {
		t.Fatalf("expected seq 1, got %d", seq)
	}
	if id == "" {
		t.Fatal("expected a reload id")
	}

	r, ok := svc.Lookup("/api/users")
	if !ok {
		t.Fatal("expected a match after apply")
	}
	if r.Backend != "10.0.0.1:8080" {
		t.Fatalf("wrong backend: %s", r.Backend)
	}
}

func TestApply_InvalidRulesLeaveTableUntouched(t *testing.T) {
	svc, _ := newTestService(t)

	if _, _, err := svc.Apply(context.Background(), "test", []byte(testRules)); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if _, _, err := svc.Apply(context.Background(), "test", []byte(`garbage`)); err == nil {
		t.Fatal("expected error for invalid rules")
	}

	// Failed reload has no side effects on the published table.
	r, ok := svc.Lookup("/api/users")
	if !ok || r.Backend != "10.0.0.1:8080" {
		t.Fatalf("table disturbed by failed reload: %v %v", r, ok)
	}
	if svc.Seq() != 1 {
		t.Fatalf("sequence advanced by failed reload: %d", svc.Seq())
	}
}

func TestBootstrap_ReplaysJournal(t *testing.T) {
	svc, dir := newTestService(t)

	for i := 0; i < 3; i++ {
		doc := fmt.Sprintf(`{"routes":[{"prefix":"/","backend":"gen-%d","weight":1}]}`, i)
		if _, _, err := svc.Apply(context.Background(), "test", []byte(doc)); err != nil {
			t.Fatalf("apply %d: %v", i, err)
		}
	}

	// A fresh service over the same journal converges to the last
	// applied table.
	j2, err := journal.Open(journal.Config{Dir: t.TempDir()})
	if err != nil {
		t.Fatalf("open second journal: %v", err)
	}
	defer j2.Close()

	svc2 := New(j2, nil, sequence.New(0), nil)
	defer svc2.Close()

	if err := svc2.Bootstrap(t.TempDir(), dir); err != nil {
		t.Fatalf("bootstrap: %v", err)
	}

	r, ok := svc2.Lookup("/anything")
	if !ok || r.Backend != "gen-2" {
		t.Fatalf("expected gen-2 after replay, got %v %v", r, ok)
	}
	if svc2.Seq() != 3 {
		t.Fatalf("expected seq 3 after replay, got %d", svc2.Seq())
	}
}

func TestLookup_ConcurrentWithReloads(t *testing.T) {
	svc, _ := newTestService(t)

	if _, _, err := svc.Apply(context.Background(), "test", []byte(testRules)); err != nil {
		t.Fatalf("seed apply: %v", err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 500; j++ {
				if r, ok := svc.Lookup("/api/users"); ok && r.Backend == "" {
					t.Error("lookup returned a torn route")
					return
				}
			}
		}()
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		for j := 0; j < 50; j++ {
			doc := fmt.Sprintf(`{"routes":[{"prefix":"/api","backend":"w-%d","weight":1}]}`, j)
			if _, _, err := svc.Apply(context.Background(), "writer", []byte(doc)); err != nil {
				t.Errorf("apply: %v", err)
				return
			}
		}
	}()

	wg.Wait()
}

func TestTableSnapshot(t *testing.T) {
	svc, _ := newTestService(t)

	if _, _, err := svc.Apply(context.Background(), "test", []byte(testRules)); err != nil {
		t.Fatalf("apply: %v", err)
	}

	snap := svc.TableSnapshot()
	if len(snap) != 2 {
		t.Fatalf("expected 2 routes, got %d", len(snap))
	}
	// Longest prefix sorts first.
	if snap[0].Prefix != "/api" {
		t.Fatalf("expected /api first, got %s", snap[0].Prefix)
	}
}
