package rpcapi

import (
	"context"
	"testing"
	"time"

	gc "gopkg.in/check.v1"
)

var _ = gc.Suite(new(RPCAPITestSuite))

func Test(t *testing.T) { gc.TestingT(t) }

type RPCAPITestSuite struct{}

func (s *RPCAPITestSuite) TestRunUntilContextCancelled(c *gc.C) {
	svc, err := NewService(Config{
		RankAPI:    stubRankAPI{},
		ListenAddr: "127.0.0.1:0",
	})
	c.Assert(err, gc.IsNil)

	ctx, cancelFn := context.WithCancel(context.TODO())
	doneCh := make(chan error, 1)
	go func() { doneCh <- svc.Run(ctx) }()

	cancelFn()
	select {
	case err := <-doneCh:
		c.Assert(err, gc.IsNil)
	case <-time.After(10 * time.Second):
		c.Fatal("timeout waiting for service to exit")
	}
}

func (s *RPCAPITestSuite) TestConfigValidation(c *gc.C) {
	_, err := NewService(Config{})
	c.Assert(err, gc.ErrorMatches, "(?s)rpc API service: config validation failed:.*rank API has not been provided.*listen address.*")
}

type stubRankAPI struct{}

func (stubRankAPI) GetRank(context.Context, string) (float64, error) { return 0.15, nil }

func (stubRankAPI) RecordReference(context.Context, string, []string) error { return nil }
