// Package journal implements the segmented append-only log of applied
// reloads. Every accepted rules document is recorded here before it is
// published, so the engine can rebuild the current table after a crash
// by replaying the journal on top of the last checkpoint.
//
// Frames are length-prefixed and CRC-validated; segments rotate by
// size and are truncated once a checkpoint covers them.
package journal
