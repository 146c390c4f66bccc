package rankrpc

//go:generate protoc -I proto --go_out=proto/generated --go_opt=paths=source_relative --go-grpc_out=proto/generated --go-grpc_opt=paths=source_relative,require_unimplemented_servers=false rankrpc.proto

import (
	"context"
	"time"

	"Page_Rank/pagerank"
	"Page_Rank/rankapis/rankrpc/proto/generated"

	"golang.org/x/xerrors"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/timestamppb"
)

var _ generated.PageRankServer = (*RankServer)(nil)

// RankAPI defines the rank service methods exposed over gRPC.
type RankAPI interface {
	GetRank(ctx context.Context, url string) (float64, error)
	RecordReference(ctx context.Context, from string, to []string) error
}

// RankServer provides a gRPC layer for looking up page ranks and recording
// page references.
type RankServer struct {
	api RankAPI
	now func() time.Time
}

// NewRankServer returns a new server instance that uses the provided rank
// API as its backing store.
func NewRankServer(api RankAPI) *RankServer {
	return &RankServer{api: api, now: time.Now}
}

// GetRank returns the rank of the requested page.
func (s *RankServer) GetRank(ctx context.Context, req *generated.GetRankRequest) (*generated.GetRankResponse, error) {
	if req.PageUrl == "" {
		return nil, status.Error(codes.InvalidArgument, "pageUrl is required")
	}

	rank, err := s.api.GetRank(ctx, req.PageUrl)
	if err != nil {
		return nil, toStatusError(err)
	}
	return &generated.GetRankResponse{
		PageUrl:   req.PageUrl,
		PageRank:  rank,
		Timestamp: timestamppb.New(s.now()),
	}, nil
}

// RecordReference records the embedded links of a page.
func (s *RankServer) RecordReference(ctx context.Context, req *generated.RecordReferenceRequest) (*emptypb.Empty, error) {
	if req.PageUrl == "" {
		return nil, status.Error(codes.InvalidArgument, "pageUrl is required")
	}

	if err := s.api.RecordReference(ctx, req.PageUrl, req.EmbeddedUrls); err != nil {
		return nil, toStatusError(err)
	}
	return new(emptypb.Empty), nil
}

func toStatusError(err error) error {
	switch {
	case xerrors.Is(err, pagerank.ErrPageNotFound):
		return status.Error(codes.NotFound, err.Error())
	case xerrors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case xerrors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
