// Package buffer provides a growable frame builder with endian-aware
// fixed-width integer writes and reserve-now-fill-later backpatching,
// used to build length-prefixed binary frames for the journal and the
// wire serializers.
//
// A Builder is single-goroutine and owned by its creator; it has no
// concurrency semantics of its own.
package buffer
