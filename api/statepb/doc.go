// Package statepb defines the wire messages of the state API. The
// messages are encoded with protobuf wire format via protowire and
// served through an explicit grpc.ServiceDesc, so no generated stubs
// are involved; Codec plugs the encoding into grpc-go.
package statepb
