package checkpoint

import (
	"testing"

	"heimdall/domain/routes"
)

func TestCheckpoint_WriteAndLoad(t *testing.T) {
	dir := t.TempDir()
	w := &Writer{Dir: dir}

	rules := []routes.Rule{
		{Prefix: "/api", Backend: "10.0.0.1:8080", Weight: 100},
		{Prefix: "/", Backend: "10.0.0.9:8080", Weight: 1},
	}
	if err := w.Write(42, rules); err != nil {
		t.Fatalf("write: %v", err)
	}

	cp, err := Load(dir)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cp == nil {
		t.Fatal("expected a checkpoint")
	}
	if cp.Seq != 42 {
		t.Fatalf("expected seq 42, got %d", cp.Seq)
	}
	if len(cp.Rules) != 2 || cp.Rules[0].Backend != "10.0.0.1:8080" {
		t.Fatalf("rules mismatch: %+v", cp.Rules)
	}
	if cp.Created.IsZero() {
		t.Fatal("created timestamp not set")
	}
}

func TestCheckpoint_MissingIsNotAnError(t *testing.T) {
	cp, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("missing checkpoint should not fail: %v", err)
	}
	if cp != nil {
		t.Fatal("expected nil checkpoint for empty dir")
	}
}

func TestCheckpoint_Overwrite(t *testing.T) {
	dir := t.TempDir()
	w := &Writer{Dir: dir}

	if err := w.Write(1, []routes.Rule{{Prefix: "/", Backend: "a", Weight: 1}}); err != nil {
		t.Fatalf("first write: %v", err)
	}
	if err := w.Write(2, []routes.Rule{{Prefix: "/", Backend: "b", Weight: 1}}); err != nil {
		t.Fatalf("second write: %v", err)
	}

	cp, err := Load(dir)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cp.Seq != 2 || cp.Rules[0].Backend != "b" {
		t.Fatalf("expected newest checkpoint, got %+v", cp)
	}
}
