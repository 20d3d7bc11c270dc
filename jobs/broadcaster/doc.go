// Package broadcaster implements the background job that drains the
// publish outbox: it periodically scans for reloads that have not been
// acknowledged yet and pushes them to Kafka, advancing each record
// through NEW → SENT → ACKED.
package broadcaster
