// Package outbox implements the durable publish outbox. Every swap
// that goes live is recorded here before it is broadcast; the
// broadcaster walks pending entries, pushes them to Kafka, and
// advances each through NEW → SENT → ACKED. Acked entries are
// garbage-collected once a checkpoint covers them.
//
// Storage is a pebble keyspace ordered by reload sequence.
package outbox
