package rankrpc

import (
	"context"

	"Page_Rank/pagerank"
	"Page_Rank/rankapis/rankrpc/proto/generated"

	"golang.org/x/xerrors"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// RankClient provides an API compatible with the rank service for accessing
// rank service instances exposed by a remote gRPC server.
type RankClient struct {
	cli generated.PageRankClient
}

// NewRankClient returns a new client that delegates rank lookups and
// reference updates to a remote gRPC server.
func NewRankClient(rpcClient generated.PageRankClient) *RankClient {
	return &RankClient{cli: rpcClient}
}

// GetRank returns the rank of the page identified by url. The error wraps
// pagerank.ErrPageNotFound if the remote server does not know the page.
func (c *RankClient) GetRank(ctx context.Context, url string) (float64, error) {
	res, err := c.cli.GetRank(ctx, &generated.GetRankRequest{PageUrl: url})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return 0, xerrors.Errorf("get rank for %q: %w", url, pagerank.ErrPageNotFound)
		}
		return 0, err
	}
	return res.PageRank, nil
}

// RecordReference records that the page at from links to every URL in to.
func (c *RankClient) RecordReference(ctx context.Context, from string, to []string) error {
	_, err := c.cli.RecordReference(ctx, &generated.RecordReferenceRequest{
		PageUrl:      from,
		EmbeddedUrls: to,
	})
	return err
}
