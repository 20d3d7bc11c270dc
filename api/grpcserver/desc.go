package grpcserver

import (
	"context"

	"google.golang.org/grpc"

	"heimdall/api/statepb"
)

// StateServer is the server-side API contract.
type StateServer interface {
	Lookup(context.Context, *statepb.LookupRequest) (*statepb.LookupResponse, error)
	Table(context.Context, *statepb.TableRequest) (*statepb.TableResponse, error)
	Reload(context.Context, *statepb.ReloadRequest) (*statepb.ReloadResponse, error)
}

const serviceName = "heimdall.State"

// ServiceDesc wires the handlers the same way generated stubs would.
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: serviceName,
	HandlerType: (*StateServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Lookup", Handler: lookupHandler},
		{MethodName: "Table", Handler: tableHandler},
		{MethodName: "Reload", Handler: reloadHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "api/state_api.go",
}

// Register attaches srv to gs. The server must be constructed with
// grpc.ForceServerCodec(statepb.Codec{}).
func Register(gs *grpc.Server, srv StateServer) {
	gs.RegisterService(&ServiceDesc, srv)
}

func lookupHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(statepb.LookupRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(StateServer).Lookup(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + serviceName + "/Lookup"}
	return interceptor(ctx, in, info, func(ctx context.Context, req any) (any, error) {
		return srv.(StateServer).Lookup(ctx, req.(*statepb.LookupRequest))
	})
}

func tableHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(statepb.TableRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(StateServer).Table(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + serviceName + "/Table"}
	return interceptor(ctx, in, info, func(ctx context.Context, req any) (any, error) {
		return srv.(StateServer).Table(ctx, req.(*statepb.TableRequest))
	})
}

func reloadHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(statepb.ReloadRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(StateServer).Reload(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + serviceName + "/Reload"}
	return interceptor(ctx, in, info, func(ctx context.Context, req any) (any, error) {
		return srv.(StateServer).Reload(ctx, req.(*statepb.ReloadRequest))
	})
}
