package arena

import (
	"sync"
	"unsafe"
)

// ChunkSize is the size of every pooled chunk. Allocations larger
// than this get a dedicated buffer outside the pool.
const ChunkSize = 64 * 1024

var chunkPool = sync.Pool{
	New: func() any {
		b := make([]byte, ChunkSize)
		return &b
	},
}

// Region is a bump allocator over pooled chunks.
type Region struct {
	chunks []*[]byte // borrowed from chunkPool
	big    [][]byte  // oversized, left to the GC
	cur    []byte
	off    int
	used   int
}

// NewRegion creates an empty region. The first chunk is borrowed
// lazily on the first Alloc.
func NewRegion() *Region {
	return &Region{}
}

// Alloc returns a zeroed slice of exactly n bytes owned by the region.
// The slice must not be grown past its length.
func (r *Region) Alloc(n int) []byte {
	if n == 0 {
		return nil
	}
	r.used += n

	if n > ChunkSize {
		b := make([]byte, n)
		r.big = append(r.big, b)
		return b
	}

	if r.off+n > len(r.cur) {
		r.grow()
	}

	b := r.cur[r.off : r.off+n : r.off+n]
	r.off += n
	return b
}

func (r *Region) grow() {
	c := chunkPool.Get().(*[]byte)
	r.chunks = append(r.chunks, c)
	r.cur = *c
	r.off = 0
}

// Copy allocates region space for src and copies it.
func (r *Region) Copy(src []byte) []byte {
	if len(src) == 0 {
		return nil
	}
	b := r.Alloc(len(src))
	copy(b, src)
	return b
}

// InternString copies s into region memory and returns a string
// header aliasing that memory. The interned string is invalidated
// by Release, same as any Alloc'd slice.
func (r *Region) InternString(s string) string {
	if s == "" {
		return ""
	}
	b := r.Alloc(len(s))
	copy(b, s)
	return unsafe.String(unsafe.SliceData(b), len(b))
}

// Used reports the total bytes handed out so far.
func (r *Region) Used() int {
	return r.used
}

// Release returns every pooled chunk in one step and drops the
// oversized buffers. All slices previously returned by Alloc are
// invalid afterwards; the caller guarantees no reader still holds
// one. Release must be called exactly once.
func (r *Region) Release() {
	for _, c := range r.chunks {
		clear(*c)
		chunkPool.Put(c)
	}
	r.chunks = nil
	r.big = nil
	r.cur = nil
	r.off = 0
	r.used = 0
}
