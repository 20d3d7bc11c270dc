// Package arena provides region-scoped bulk memory allocation.
// A Region hands out byte slices from pooled chunks via bump
// allocation and returns every chunk to the shared pool in a
// single Release call.
//
// Regions are the unit of snapshot memory ownership: everything a
// published snapshot points at lives in its Region, and the whole
// Region is reclaimed at once when the snapshot's last reference
// is dropped. A Region is single-writer; only Release may be
// reached from another goroutine, and only once.
package arena
