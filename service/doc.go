// Package service orchestrates the core components of the engine —
// the snapshot holder, routing domain, journal, outbox, and
// checkpointing.
//
// StateService is the ONLY write entry point: every reload flows
// through Apply, which serializes writers, so the single-writer
// assumption of the swap primitive holds by construction. Reads go
// through Lookup and TableSnapshot, decoupled from network transports
// like gRPC.
package service
