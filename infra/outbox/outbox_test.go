package outbox

import (
	"bytes"
	"testing"
)

func TestOutbox_Lifecycle(t *testing.T) {
	o, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("open outbox: %v", err)
	}
	defer o.Close()

	if err := o.Put(1, []byte("payload-1")); err != nil {
		t.Fatalf("put: %v", err)
	}

	rec, err := o.Get(1)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if rec.State != StateNew {
		t.Fatalf("expected NEW, got %s", rec.State)
	}
	if !bytes.Equal(rec.Payload, []byte("payload-1")) {
		t.Fatalf("payload mismatch: %q", rec.Payload)
	}

	if err := o.UpdateState(1, StateSent, 0); err != nil {
		t.Fatalf("mark sent: %v", err)
	}
	if err := o.UpdateState(1, StateAcked, 0); err != nil {
		t.Fatalf("mark acked: %v", err)
	}

	rec, err = o.Get(1)
	if err != nil {
		t.Fatalf("get after ack: %v", err)
	}
	if rec.State != StateAcked {
		t.Fatalf("expected ACKED, got %s", rec.State)
	}
	if rec.LastAttempt == 0 {
		t.Fatal("last attempt not stamped")
	}
}

func TestOutbox_ScanByState(t *testing.T) {
	o, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("open outbox: %v", err)
	}
	defer o.Close()

	for seq := uint64(1); seq <= 5; seq++ {
		if err := o.Put(seq, []byte{byte(seq)}); err != nil {
			t.Fatalf("put %d: %v", seq, err)
		}
	}
	_ = o.UpdateState(2, StateAcked, 0)
	_ = o.UpdateState(4, StateAcked, 0)

	var pending []uint64
	err = o.ScanByState(StateNew, func(seq uint64, rec Record) error {
		pending = append(pending, seq)
		return nil
	})
	if err != nil {
		t.Fatalf("scan: %v", err)
	}

	want := []uint64{1, 3, 5}
	if len(pending) != len(want) {
		t.Fatalf("expected %v pending, got %v", want, pending)
	}
	for i := range want {
		if pending[i] != want[i] {
			t.Fatalf("expected %v pending, got %v", want, pending)
		}
	}
}

func TestOutbox_TruncateAckedUpTo(t *testing.T) {
	o, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("open outbox: %v", err)
	}
	defer o.Close()

	for seq := uint64(1); seq <= 4; seq++ {
		_ = o.Put(seq, nil)
		_ = o.UpdateState(seq, StateAcked, 0)
	}
	_ = o.Put(5, nil) // still NEW

	if err := o.TruncateAckedUpTo(3); err != nil {
		t.Fatalf("truncate: %v", err)
	}

	for _, seq := range []uint64{1, 2, 3} {
		if _, err := o.Get(seq); err == nil {
			t.Fatalf("seq %d should be gone", seq)
		}
	}
	if _, err := o.Get(4); err != nil {
		t.Fatal("seq 4 above the checkpoint should survive")
	}
	if _, err := o.Get(5); err != nil {
		t.Fatal("unacked seq 5 should survive")
	}
}
