// Package grpcserver adapts StateService to gRPC. The service is
// registered through an explicit ServiceDesc with the statepb codec;
// there are no generated stubs.
package grpcserver

import (
	"context"
	"log"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"heimdall/api/statepb"
	"heimdall/service"
)

// Server adapts StateService to the wire API.
type Server struct {
	svc *service.StateService
}

func NewServer(svc *service.StateService) *Server {
	return &Server{svc: svc}
}

// -------------------- Queries --------------------

func (s *Server) Lookup(
	ctx context.Context,
	req *statepb.LookupRequest,
) (*statepb.LookupResponse, error) {
	if req.Path == "" {
		return nil, status.Error(codes.InvalidArgument, "empty path")
	}

	r, ok := s.svc.Lookup(req.Path)
	if !ok {
		return &statepb.LookupResponse{Found: false}, nil
	}

	return &statepb.LookupResponse{
		Found: true,
		Route: statepb.RouteEntry{
			Prefix:  r.Prefix,
			Backend: r.Backend,
			Weight:  r.Weight,
		},
	}, nil
}

func (s *Server) Table(
	ctx context.Context,
	req *statepb.TableRequest,
) (*statepb.TableResponse, error) {
	rs := s.svc.TableSnapshot()

	resp := &statepb.TableResponse{
		Seq:    s.svc.Seq(),
		Routes: make([]statepb.RouteEntry, 0, len(rs)),
	}
	for _, r := range rs {
		resp.Routes = append(resp.Routes, statepb.RouteEntry{
			Prefix:  r.Prefix,
			Backend: r.Backend,
			Weight:  r.Weight,
		})
	}
	return resp, nil
}

// -------------------- Commands --------------------

func (s *Server) Reload(
	ctx context.Context,
	req *statepb.ReloadRequest,
) (*statepb.ReloadResponse, error) {
	source := req.Source
	if source == "" {
		source = "grpc"
	}

	seq, id, err := s.svc.Apply(ctx, source, req.Rules)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "reload rejected: %v", err)
	}

	log.Printf("[gRPC] Reload source=%s seq=%d id=%s", source, seq, id)

	return &statepb.ReloadResponse{
		Seq:      seq,
		ReloadID: id,
	}, nil
}
