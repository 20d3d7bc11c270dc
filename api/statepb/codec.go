package statepb

import "fmt"

// Codec plugs the wire messages into grpc-go. Install it on the
// server with grpc.ForceServerCodec and on clients with
// grpc.CallContentSubtype after registration.
type Codec struct{}

// Name identifies the codec in the grpc content subtype.
func (Codec) Name() string { return "heimdall-wire" }

func (Codec) Marshal(v any) ([]byte, error) {
	m, ok := v.(Message)
	if !ok {
		return nil, fmt.Errorf("statepb: cannot marshal %T", v)
	}
	return m.AppendWire(nil), nil
}

func (Codec) Unmarshal(data []byte, v any) error {
	m, ok := v.(Message)
	if !ok {
		return fmt.Errorf("statepb: cannot unmarshal into %T", v)
	}
	return m.UnmarshalWire(data)
}
