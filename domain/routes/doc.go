// Package routes implements the routing table that the engine
// hot-swaps: an ordered set of path-prefix rules mapping to backends,
// with longest-prefix matching.
//
// A Table is built once into a snapshot region and never mutated
// afterwards; every string it holds is interned into that region, so
// the table is valid exactly as long as the snapshot that owns it.
package routes
