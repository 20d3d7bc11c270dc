package journal

import (
	"errors"

	"google.golang.org/protobuf/encoding/protowire"
)

// ApplyEntry is the payload of a RecordApply frame: the reload's
// identity plus the raw rules document, enough to rebuild the table
// on replay.
type ApplyEntry struct {
	ID     string // reload UUID
	Source string // origin of the rules document
	Rules  []byte // raw JSON rules document
}

// ErrCorruptEntry reports an undecodable apply payload.
var ErrCorruptEntry = errors.New("journal: corrupted apply entry")

// Wire field numbers for ApplyEntry.
const (
	fieldID     = 1
	fieldSource = 2
	fieldRules  = 3
)

// EncodeEntry serializes e with protobuf wire encoding.
func EncodeEntry(e *ApplyEntry) []byte {
	var b []byte
	b = protowire.AppendTag(b, fieldID, protowire.BytesType)
	b = protowire.AppendString(b, e.ID)
	b = protowire.AppendTag(b, fieldSource, protowire.BytesType)
	b = protowire.AppendString(b, e.Source)
	b = protowire.AppendTag(b, fieldRules, protowire.BytesType)
	b = protowire.AppendBytes(b, e.Rules)
	return b
}

// DecodeEntry parses a protobuf wire payload. Unknown fields are
// skipped for forward compatibility.
func DecodeEntry(data []byte) (*ApplyEntry, error) {
	e := &ApplyEntry{}
	b := data

	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return nil, ErrCorruptEntry
		}
		b = b[n:]

		switch {
		case num == fieldID && typ == protowire.BytesType:
			v, n := protowire.ConsumeString(b)
			if n < 0 {
				return nil, ErrCorruptEntry
			}
			e.ID = v
			b = b[n:]
		case num == fieldSource && typ == protowire.BytesType:
			v, n := protowire.ConsumeString(b)
			if n < 0 {
				return nil, ErrCorruptEntry
			}
			e.Source = v
			b = b[n:]
		case num == fieldRules && typ == protowire.BytesType:
			v, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return nil, ErrCorruptEntry
			}
			e.Rules = append([]byte(nil), v...)
			b = b[n:]
		default:
			n := protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return nil, ErrCorruptEntry
			}
			b = b[n:]
		}
	}

	return e, nil
}
