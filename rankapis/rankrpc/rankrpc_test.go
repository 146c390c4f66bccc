package rankrpc

import (
	"context"
	"net"
	"testing"
	"time"

	"Page_Rank/pagegraph/store/memory"
	"Page_Rank/pagerank"
	"Page_Rank/rankapis/rankrpc/proto/generated"

	"golang.org/x/xerrors"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	gc "gopkg.in/check.v1"
)

var _ = gc.Suite(new(ServerTestSuite))

func Test(t *testing.T) { gc.TestingT(t) }

type ServerTestSuite struct {
	g *memory.InMemoryGraph

	netListener *bufconn.Listener
	grpcSrv     *grpc.Server

	clientConn *grpc.ClientConn
	cli        *RankClient
}

func (s *ServerTestSuite) SetUpTest(c *gc.C) {
	s.g = memory.NewInMemoryGraph()
	calc, err := pagerank.NewCalculator(pagerank.Config{Graph: s.g})
	c.Assert(err, gc.IsNil)
	s.startServer(c, calc)
}

func (s *ServerTestSuite) TearDownTest(c *gc.C) {
	_ = s.clientConn.Close()
	s.grpcSrv.Stop()
	_ = s.netListener.Close()
}

func (s *ServerTestSuite) startServer(c *gc.C, api RankAPI) {
	s.netListener = bufconn.Listen(1024)
	s.grpcSrv = grpc.NewServer()
	generated.RegisterPageRankServer(s.grpcSrv, NewRankServer(api))
	go func(l net.Listener, srv *grpc.Server) {
		_ = srv.Serve(l)
	}(s.netListener, s.grpcSrv)

	var err error
	s.clientConn, err = grpc.Dial(
		"bufnet",
		grpc.WithContextDialer(func(context.Context, string) (net.Conn, error) { return s.netListener.Dial() }),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	c.Assert(err, gc.IsNil)
	s.cli = NewRankClient(generated.NewPageRankClient(s.clientConn))
}

func (s *ServerTestSuite) TestRecordReferenceThenGetRank(c *gc.C) {
	ctx, cancelFn := context.WithTimeout(context.TODO(), 10*time.Second)
	defer cancelFn()

	c.Assert(s.cli.RecordReference(ctx, "https://r1.example", []string{"https://p.example", "https://a.example"}), gc.IsNil)
	c.Assert(s.cli.RecordReference(ctx, "https://r2.example", []string{"https://p.example"}), gc.IsNil)

	rank, err := s.cli.GetRank(ctx, "https://p.example")
	c.Assert(err, gc.IsNil)
	c.Assert(rank > 0, gc.Equals, true)

	page, err := s.g.FindPage("https://p.example")
	c.Assert(err, gc.IsNil)
	c.Assert(page.Rank, gc.Equals, rank)
	c.Assert(page.InLinks, gc.HasLen, 2)
}

func (s *ServerTestSuite) TestGetRankForUnknownPage(c *gc.C) {
	ctx, cancelFn := context.WithTimeout(context.TODO(), 10*time.Second)
	defer cancelFn()

	_, err := s.cli.GetRank(ctx, "https://nowhere.example")
	c.Assert(xerrors.Is(err, pagerank.ErrPageNotFound), gc.Equals, true, gc.Commentf("got %v", err))
}

func (s *ServerTestSuite) TestMissingPageURL(c *gc.C) {
	ctx, cancelFn := context.WithTimeout(context.TODO(), 10*time.Second)
	defer cancelFn()

	_, err := s.cli.GetRank(ctx, "")
	c.Assert(status.Code(err), gc.Equals, codes.InvalidArgument)

	err = s.cli.RecordReference(ctx, "", []string{"https://p.example"})
	c.Assert(status.Code(err), gc.Equals, codes.InvalidArgument)
}

func (s *ServerTestSuite) TestInternalErrors(c *gc.C) {
	_ = s.clientConn.Close()
	s.grpcSrv.Stop()
	_ = s.netListener.Close()
	s.startServer(c, failingRankAPI{err: xerrors.New("store unavailable")})

	ctx, cancelFn := context.WithTimeout(context.TODO(), 10*time.Second)
	defer cancelFn()

	_, err := s.cli.GetRank(ctx, "https://p.example")
	c.Assert(status.Code(err), gc.Equals, codes.Internal)
	c.Assert(status.Convert(err).Message(), gc.Equals, "store unavailable")
}

func (s *ServerTestSuite) TestServerTimestamp(c *gc.C) {
	now := time.Date(2021, 3, 14, 15, 9, 26, 0, time.UTC)
	srv := NewRankServer(failingRankAPI{})
	srv.now = func() time.Time { return now }

	res, err := srv.GetRank(context.TODO(), &generated.GetRankRequest{PageUrl: "https://p.example"})
	c.Assert(err, gc.IsNil)
	c.Assert(res.GetPageUrl(), gc.Equals, "https://p.example")
	c.Assert(res.GetTimestamp().AsTime().Equal(now), gc.Equals, true)
}

func (s *ServerTestSuite) TestTimestampOverTheWire(c *gc.C) {
	ctx, cancelFn := context.WithTimeout(context.TODO(), 10*time.Second)
	defer cancelFn()

	c.Assert(s.cli.RecordReference(ctx, "https://r1.example", []string{"https://p.example"}), gc.IsNil)

	before := time.Now().Add(-time.Second)
	res, err := generated.NewPageRankClient(s.clientConn).GetRank(ctx, &generated.GetRankRequest{PageUrl: "https://p.example"})
	c.Assert(err, gc.IsNil)
	c.Assert(res.GetPageRank() > 0, gc.Equals, true)
	c.Assert(res.GetTimestamp().AsTime().After(before), gc.Equals, true)
}

type failingRankAPI struct {
	err error
}

func (f failingRankAPI) GetRank(context.Context, string) (float64, error) { return 0, f.err }

func (f failingRankAPI) RecordReference(context.Context, string, []string) error { return f.err }
