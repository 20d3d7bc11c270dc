package buffer

import "encoding/binary"

// Builder accumulates a binary frame. The zero value is ready to use.
type Builder struct {
	buf []byte
}

// NewBuilder returns a builder with the given initial capacity.
func NewBuilder(capacity int) *Builder {
	return &Builder{buf: make([]byte, 0, capacity)}
}

// Write appends p. It implements io.Writer and never fails.
func (b *Builder) Write(p []byte) (int, error) {
	b.buf = append(b.buf, p...)
	return len(p), nil
}

// WriteByte appends a single byte. It implements io.ByteWriter.
func (b *Builder) WriteByte(c byte) error {
	b.buf = append(b.buf, c)
	return nil
}

// WriteString appends s without copying it through a []byte variable.
func (b *Builder) WriteString(s string) {
	b.buf = append(b.buf, s...)
}

// WriteUint16 appends v in the given byte order. Pass
// binary.LittleEndian, binary.BigEndian, or binary.NativeEndian.
func (b *Builder) WriteUint16(order binary.ByteOrder, v uint16) {
	b.buf = append(b.buf, 0, 0)
	order.PutUint16(b.buf[len(b.buf)-2:], v)
}

// WriteUint32 appends v in the given byte order.
func (b *Builder) WriteUint32(order binary.ByteOrder, v uint32) {
	b.buf = append(b.buf, 0, 0, 0, 0)
	order.PutUint32(b.buf[len(b.buf)-4:], v)
}

// WriteUint64 appends v in the given byte order.
func (b *Builder) WriteUint64(order binary.ByteOrder, v uint64) {
	b.buf = append(b.buf, 0, 0, 0, 0, 0, 0, 0, 0)
	order.PutUint64(b.buf[len(b.buf)-8:], v)
}

// WriteInt16 appends v in the given byte order.
func (b *Builder) WriteInt16(order binary.ByteOrder, v int16) {
	b.WriteUint16(order, uint16(v))
}

// WriteInt32 appends v in the given byte order.
func (b *Builder) WriteInt32(order binary.ByteOrder, v int32) {
	b.WriteUint32(order, uint32(v))
}

// WriteInt64 appends v in the given byte order.
func (b *Builder) WriteInt64(order binary.ByteOrder, v int64) {
	b.WriteUint64(order, uint64(v))
}

// Skip reserves n zero bytes at the current position and returns a
// reservation that backpatches exactly those bytes later. The
// reservation stays valid across builder growth.
func (b *Builder) Skip(n int) Reservation {
	off := len(b.buf)
	for i := 0; i < n; i++ {
		b.buf = append(b.buf, 0)
	}
	return Reservation{b: b, off: off, n: n}
}

// Bytes returns the frame built so far. The slice is only valid until
// the next write.
func (b *Builder) Bytes() []byte {
	return b.buf
}

// Len reports the number of bytes written.
func (b *Builder) Len() int {
	return len(b.buf)
}

// Reset discards the frame but keeps the underlying storage.
func (b *Builder) Reset() {
	b.buf = b.buf[:0]
}

// Reservation is a positioned view into a builder created by Skip.
// It addresses the builder by offset, not by slice, so filling works
// even if the builder reallocated in between.
type Reservation struct {
	b   *Builder
	off int
	n   int
}

// Len reports the reserved width.
func (r Reservation) Len() int {
	return r.n
}

// Fill writes p over the reserved bytes. p must be exactly the
// reserved width.
func (r Reservation) Fill(p []byte) {
	if len(p) != r.n {
		panic("buffer: reservation fill size mismatch")
	}
	copy(r.b.buf[r.off:r.off+r.n], p)
}

// SetUint16 backpatches the reservation with v. The reservation must
// be 2 bytes wide.
func (r Reservation) SetUint16(order binary.ByteOrder, v uint16) {
	if r.n != 2 {
		panic("buffer: reservation is not 2 bytes")
	}
	order.PutUint16(r.b.buf[r.off:r.off+2], v)
}

// SetUint32 backpatches the reservation with v. The reservation must
// be 4 bytes wide.
func (r Reservation) SetUint32(order binary.ByteOrder, v uint32) {
	if r.n != 4 {
		panic("buffer: reservation is not 4 bytes")
	}
	order.PutUint32(r.b.buf[r.off:r.off+4], v)
}

// SetUint64 backpatches the reservation with v. The reservation must
// be 8 bytes wide.
func (r Reservation) SetUint64(order binary.ByteOrder, v uint64) {
	if r.n != 8 {
		panic("buffer: reservation is not 8 bytes")
	}
	order.PutUint64(r.b.buf[r.off:r.off+8], v)
}
