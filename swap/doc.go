// Package swap implements the hot-swap primitive at the heart of the
// engine: a reference-counted, region-owned Snapshot and a
// mutex-guarded Holder that publishes it to readers.
//
// Readers call Acquire at any time and hold the returned snapshot for
// as long as they like; a writer stages a replacement off to the side,
// populates it from the snapshot's own region, and publishes it with
// Swap. The holder's mutex protects only the identity of the current
// snapshot and the paired read-then-retain, never snapshot contents or
// teardown, so reader latency is independent of writer cost.
//
// Swap assumes a single logical writer. Concurrent writers are not
// queued; the last Swap to take the mutex wins and losers must discard
// their staged snapshots themselves.
package swap
