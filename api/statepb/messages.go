package statepb

import (
	"errors"

	"google.golang.org/protobuf/encoding/protowire"
)

// ErrCorruptMessage reports an undecodable wire payload.
var ErrCorruptMessage = errors.New("statepb: corrupted message")

// Message is implemented by every wire message in this package.
type Message interface {
	AppendWire(b []byte) []byte
	UnmarshalWire(data []byte) error
}

// LookupRequest asks for the route matching Path.
type LookupRequest struct {
	Path string
}

func (m *LookupRequest) AppendWire(b []byte) []byte {
	b = protowire.AppendTag(b, 1, protowire.BytesType)
	b = protowire.AppendString(b, m.Path)
	return b
}

func (m *LookupRequest) UnmarshalWire(data []byte) error {
	*m = LookupRequest{}
	return walkFields(data, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if num == 1 && typ == protowire.BytesType {
			v, n := protowire.ConsumeString(b)
			m.Path = v
			return n, nil
		}
		return -1, nil
	})
}

// LookupResponse carries the matched route, if any.
type LookupResponse struct {
	Found bool
	Route RouteEntry
}

func (m *LookupResponse) AppendWire(b []byte) []byte {
	b = protowire.AppendTag(b, 1, protowire.VarintType)
	b = protowire.AppendVarint(b, boolToUint(m.Found))
	b = protowire.AppendTag(b, 2, protowire.BytesType)
	b = protowire.AppendBytes(b, m.Route.AppendWire(nil))
	return b
}

func (m *LookupResponse) UnmarshalWire(data []byte) error {
	*m = LookupResponse{}
	return walkFields(data, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch {
		case num == 1 && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(b)
			m.Found = v != 0
			return n, nil
		case num == 2 && typ == protowire.BytesType:
			v, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return n, nil
			}
			if err := m.Route.UnmarshalWire(v); err != nil {
				return 0, err
			}
			return n, nil
		}
		return -1, nil
	})
}

// RouteEntry mirrors one routing rule.
type RouteEntry struct {
	Prefix  string
	Backend string
	Weight  int32
}

func (m *RouteEntry) AppendWire(b []byte) []byte {
	b = protowire.AppendTag(b, 1, protowire.BytesType)
	b = protowire.AppendString(b, m.Prefix)
	b = protowire.AppendTag(b, 2, protowire.BytesType)
	b = protowire.AppendString(b, m.Backend)
	b = protowire.AppendTag(b, 3, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(uint32(m.Weight)))
	return b
}

func (m *RouteEntry) UnmarshalWire(data []byte) error {
	*m = RouteEntry{}
	return walkFields(data, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch {
		case num == 1 && typ == protowire.BytesType:
			v, n := protowire.ConsumeString(b)
			m.Prefix = v
			return n, nil
		case num == 2 && typ == protowire.BytesType:
			v, n := protowire.ConsumeString(b)
			m.Backend = v
			return n, nil
		case num == 3 && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(b)
			m.Weight = int32(uint32(v))
			return n, nil
		}
		return -1, nil
	})
}

// ReloadRequest submits a new rules document.
type ReloadRequest struct {
	Source string
	Rules  []byte
}

func (m *ReloadRequest) AppendWire(b []byte) []byte {
	b = protowire.AppendTag(b, 1, protowire.BytesType)
	b = protowire.AppendString(b, m.Source)
	b = protowire.AppendTag(b, 2, protowire.BytesType)
	b = protowire.AppendBytes(b, m.Rules)
	return b
}

func (m *ReloadRequest) UnmarshalWire(data []byte) error {
	*m = ReloadRequest{}
	return walkFields(data, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch {
		case num == 1 && typ == protowire.BytesType:
			v, n := protowire.ConsumeString(b)
			m.Source = v
			return n, nil
		case num == 2 && typ == protowire.BytesType:
			v, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return n, nil
			}
			m.Rules = append([]byte(nil), v...)
			return n, nil
		}
		return -1, nil
	})
}

// ReloadResponse reports the applied reload.
type ReloadResponse struct {
	Seq      uint64
	ReloadID string
}

func (m *ReloadResponse) AppendWire(b []byte) []byte {
	b = protowire.AppendTag(b, 1, protowire.VarintType)
	b = protowire.AppendVarint(b, m.Seq)
	b = protowire.AppendTag(b, 2, protowire.BytesType)
	b = protowire.AppendString(b, m.ReloadID)
	return b
}

func (m *ReloadResponse) UnmarshalWire(data []byte) error {
	*m = ReloadResponse{}
	return walkFields(data, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch {
		case num == 1 && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(b)
			m.Seq = v
			return n, nil
		case num == 2 && typ == protowire.BytesType:
			v, n := protowire.ConsumeString(b)
			m.ReloadID = v
			return n, nil
		}
		return -1, nil
	})
}

// TableRequest asks for the full current table.
type TableRequest struct{}

func (m *TableRequest) AppendWire(b []byte) []byte { return b }

func (m *TableRequest) UnmarshalWire(data []byte) error {
	return walkFields(data, func(protowire.Number, protowire.Type, []byte) (int, error) {
		return -1, nil
	})
}

// TableResponse carries every route of the current table.
type TableResponse struct {
	Seq    uint64
	Routes []RouteEntry
}

func (m *TableResponse) AppendWire(b []byte) []byte {
	b = protowire.AppendTag(b, 1, protowire.VarintType)
	b = protowire.AppendVarint(b, m.Seq)
	for i := range m.Routes {
		b = protowire.AppendTag(b, 2, protowire.BytesType)
		b = protowire.AppendBytes(b, m.Routes[i].AppendWire(nil))
	}
	return b
}

func (m *TableResponse) UnmarshalWire(data []byte) error {
	*m = TableResponse{}
	return walkFields(data, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch {
		case num == 1 && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(b)
			m.Seq = v
			return n, nil
		case num == 2 && typ == protowire.BytesType:
			v, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return n, nil
			}
			var r RouteEntry
			if err := r.UnmarshalWire(v); err != nil {
				return 0, err
			}
			m.Routes = append(m.Routes, r)
			return n, nil
		}
		return -1, nil
	})
}

// walkFields drives a field visitor over a wire payload. The visitor
// returns the bytes it consumed, or -1 to have the field skipped as
// unknown.
func walkFields(data []byte, visit func(protowire.Number, protowire.Type, []byte) (int, error)) error {
	b := data
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return ErrCorruptMessage
		}
		b = b[n:]

		consumed, err := visit(num, typ, b)
		if err != nil {
			return err
		}
		if consumed < 0 {
			consumed = protowire.ConsumeFieldValue(num, typ, b)
		}
		if consumed < 0 {
			return ErrCorruptMessage
		}
		b = b[consumed:]
	}
	return nil
}

func boolToUint(v bool) uint64 {
	if v {
		return 1
	}
	return 0
}
