package service

import (
	"context"
	"testing"
	"time"

	"golang.org/x/xerrors"
	gc "gopkg.in/check.v1"
)

var _ = gc.Suite(new(GroupTestSuite))

func Test(t *testing.T) { gc.TestingT(t) }

type GroupTestSuite struct{}

func (s *GroupTestSuite) TestRunUntilContextCancelled(c *gc.C) {
	ctx, cancelFn := context.WithCancel(context.TODO())
	started := make(chan struct{}, 2)

	grp := Group{
		&stubService{name: "a", started: started},
		&stubService{name: "b", started: started},
	}

	doneCh := make(chan error, 1)
	go func() { doneCh <- grp.Run(ctx) }()

	<-started
	<-started
	cancelFn()

	select {
	case err := <-doneCh:
		c.Assert(err, gc.IsNil)
	case <-time.After(10 * time.Second):
		c.Fatal("timeout waiting for group to exit")
	}
}

func (s *GroupTestSuite) TestServiceErrorStopsGroup(c *gc.C) {
	errBoom := xerrors.New("boom")
	grp := Group{
		&stubService{name: "healthy"},
		&stubService{name: "faulty", err: errBoom},
	}

	doneCh := make(chan error, 1)
	go func() { doneCh <- grp.Run(context.TODO()) }()

	select {
	case err := <-doneCh:
		c.Assert(err, gc.ErrorMatches, "(?s).*faulty: boom.*")
		c.Assert(xerrors.Is(err, errBoom), gc.Equals, true)
	case <-time.After(10 * time.Second):
		c.Fatal("timeout waiting for group to exit")
	}
}

func (s *GroupTestSuite) TestRunReturnsWhenAllServicesExit(c *gc.C) {
	grp := Group{
		&stubService{name: "a", oneShot: true},
		&stubService{name: "b", oneShot: true},
	}

	doneCh := make(chan error, 1)
	go func() { doneCh <- grp.Run(context.TODO()) }()

	select {
	case err := <-doneCh:
		c.Assert(err, gc.IsNil)
	case <-time.After(10 * time.Second):
		c.Fatal("group did not exit after all services returned")
	}
}

type stubService struct {
	name    string
	err     error
	oneShot bool
	started chan struct{}
}

func (s *stubService) Name() string { return s.name }

func (s *stubService) Run(ctx context.Context) error {
	if s.started != nil {
		s.started <- struct{}{}
	}
	if s.err != nil || s.oneShot {
		return s.err
	}
	<-ctx.Done()
	return nil
}
