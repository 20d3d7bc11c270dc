// Package checkpoint persists the current routing rules to disk so
// the engine can restart without replaying the whole journal. A
// checkpoint stores the external (pre-build) rule form; on load the
// table is rebuilt into a fresh snapshot region.
//
// Checkpointing is decoupled from the reload path: a background job
// writes checkpoints and truncates the journal and outbox behind them.
package checkpoint
