package buffer

import (
	"bytes"
	"encoding/binary"
	"testing"
)

func TestBuilder_Backpatch(t *testing.T) {
	b := NewBuilder(64)

	length := b.Skip(4)
	b.WriteString("payload-bytes")
	length.SetUint32(binary.BigEndian, uint32(b.Len()-4))

	frame := b.Bytes()
	if got := binary.BigEndian.Uint32(frame[:4]); got != 13 {
		t.Fatalf("expected backpatched length 13, got %d", got)
	}
	if !bytes.Equal(frame[4:], []byte("payload-bytes")) {
		t.Fatalf("payload disturbed by backpatch: %q", frame[4:])
	}
}

func TestBuilder_BackpatchSurvivesGrowth(t *testing.T) {
	b := NewBuilder(4)

	res := b.Skip(4)
	// Force several reallocations after the reservation was taken.
	for i := 0; i < 1024; i++ {
		_ = b.WriteByte(byte(i))
	}
	res.SetUint32(binary.BigEndian, 0xDEADBEEF)

	if got := binary.BigEndian.Uint32(b.Bytes()[:4]); got != 0xDEADBEEF {
		t.Fatalf("reservation lost after growth: %#x", got)
	}
	if b.Bytes()[4] != 0 || b.Bytes()[5] != 1 {
		t.Fatalf("payload disturbed: % x", b.Bytes()[4:6])
	}
}

func TestBuilder_Endianness(t *testing.T) {
	const v = uint64(11234567890123456789)

	le := NewBuilder(8)
	le.WriteUint64(binary.LittleEndian, v)
	wantLE := []byte{21, 129, 209, 7, 249, 51, 233, 155}
	if !bytes.Equal(le.Bytes(), wantLE) {
		t.Fatalf("little-endian mismatch: got % d", le.Bytes())
	}

	be := NewBuilder(8)
	be.WriteUint64(binary.BigEndian, v)
	wantBE := []byte{155, 233, 51, 249, 7, 209, 129, 21}
	if !bytes.Equal(be.Bytes(), wantBE) {
		t.Fatalf("big-endian mismatch: got % d", be.Bytes())
	}
}

func TestBuilder_FixedWidthWrites(t *testing.T) {
	b := NewBuilder(0)
	b.WriteUint16(binary.BigEndian, 0x0102)
	b.WriteInt32(binary.LittleEndian, -2)
	_ = b.WriteByte(0x7F)

	want := []byte{0x01, 0x02, 0xFE, 0xFF, 0xFF, 0xFF, 0x7F}
	if !bytes.Equal(b.Bytes(), want) {
		t.Fatalf("frame mismatch: % x", b.Bytes())
	}
	if b.Len() != 7 {
		t.Fatalf("expected length 7, got %d", b.Len())
	}
}

func TestBuilder_Reset(t *testing.T) {
	b := NewBuilder(16)
	b.WriteString("junk")
	b.Reset()
	if b.Len() != 0 {
		t.Fatalf("reset did not clear builder: %d bytes", b.Len())
	}
	b.WriteString("clean")
	if string(b.Bytes()) != "clean" {
		t.Fatalf("unexpected content after reset: %q", b.Bytes())
	}
}

func TestReservation_FillExact(t *testing.T) {
	b := NewBuilder(8)
	res := b.Skip(3)
	b.WriteString("tail")
	res.Fill([]byte{0xA, 0xB, 0xC})

	want := []byte{0xA, 0xB, 0xC, 't', 'a', 'i', 'l'}
	if !bytes.Equal(b.Bytes(), want) {
		t.Fatalf("fill mismatch: % x", b.Bytes())
	}
}
