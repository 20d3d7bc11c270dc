package journal

import "time"

type RecordType uint8

const (
	// RecordApply marks a reload that was published to readers.
	RecordApply RecordType = iota
	// RecordCheckpoint marks that a checkpoint covering all prior
	// sequences was written.
	RecordCheckpoint
)

// Record is one journal frame.
type Record struct {
	Type RecordType
	Seq  uint64
	Time int64
	Data []byte
}

// NewRecord stamps a record with the current time.
func NewRecord(t RecordType, seq uint64, data []byte) *Record {
	return &Record{
		Type: t,
		Seq:  seq,
		Time: time.Now().UnixNano(),
		Data: data,
	}
}
