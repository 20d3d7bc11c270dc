package arena

import (
	"bytes"
	"testing"
)

func TestRegion_AllocAndCopy(t *testing.T) {
	r := NewRegion()

	a := r.Alloc(16)
	if len(a) != 16 {
		t.Fatalf("expected 16 bytes, got %d", len(a))
	}
	for i := range a {
		a[i] = byte(i)
	}

	b := r.Copy([]byte("hello"))
	if !bytes.Equal(b, []byte("hello")) {
		t.Fatalf("copy mismatch: %q", b)
	}

	// The first allocation must be untouched by later ones.
	for i := range a {
		if a[i] != byte(i) {
			t.Fatalf("allocation overlap at byte %d", i)
		}
	}

	if r.Used() != 16+5 {
		t.Fatalf("expected 21 bytes used, got %d", r.Used())
	}
	r.Release()
}

func TestRegion_InternString(t *testing.T) {
	r := NewRegion()
	defer r.Release()

	s := r.InternString("routing-table")
	if s != "routing-table" {
		t.Fatalf("interned string mismatch: %q", s)
	}
	if got := r.InternString(""); got != "" {
		t.Fatalf("empty intern should stay empty, got %q", got)
	}
}

func TestRegion_Oversized(t *testing.T) {
	r := NewRegion()

	big := r.Alloc(ChunkSize + 1)
	if len(big) != ChunkSize+1 {
		t.Fatalf("oversized alloc returned %d bytes", len(big))
	}
	big[ChunkSize] = 0xFF

	small := r.Alloc(8)
	if len(small) != 8 {
		t.Fatalf("small alloc after oversized returned %d bytes", len(small))
	}
	r.Release()
}

func TestRegion_ReleaseResets(t *testing.T) {
	r := NewRegion()
	r.Alloc(100)
	r.Release()

	if r.Used() != 0 {
		t.Fatalf("used not reset after release: %d", r.Used())
	}
}

func TestRegion_ManyChunks(t *testing.T) {
	r := NewRegion()
	defer r.Release()

	// Force several chunk borrows.
	for i := 0; i < 64; i++ {
		b := r.Alloc(ChunkSize / 2)
		b[0] = byte(i)
	}
	if r.Used() != 64*(ChunkSize/2) {
		t.Fatalf("unexpected used total: %d", r.Used())
	}
}

func BenchmarkRegionAlloc(b *testing.B) {
	for i := 0; i < b.N; i++ {
		r := NewRegion()
		for j := 0; j < 128; j++ {
			_ = r.Alloc(48)
		}
		r.Release()
	}
}
