package rpcapi

import (
	"context"
	"io/ioutil"
	"net"

	"Page_Rank/rankapis/rankrpc"
	"Page_Rank/rankapis/rankrpc/proto/generated"

	"github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"
	"golang.org/x/xerrors"
	"google.golang.org/grpc"
)

// Config encapsulates the settings for configuring the gRPC rank service.
type Config struct {
	// The rank service to expose.
	RankAPI rankrpc.RankAPI

	// The address to listen for incoming gRPC requests.
	ListenAddr string

	// The logger to use. If not defined an output-discarding logger will
	// be used instead.
	Logger *logrus.Entry
}

func (cfg *Config) validate() error {
	var err error
	if cfg.RankAPI == nil {
		err = multierror.Append(err, xerrors.New("rank API has not been provided"))
	}
	if cfg.ListenAddr == "" {
		err = multierror.Append(err, xerrors.New("listen address has not been specified"))
	}
	if cfg.Logger == nil {
		cfg.Logger = logrus.NewEntry(&logrus.Logger{Out: ioutil.Discard})
	}
	return err
}

// Service exposes the rank service over gRPC.
type Service struct {
	cfg Config
}

// NewService creates a new gRPC rank service instance with the specified config.
func NewService(cfg Config) (*Service, error) {
	if err := cfg.validate(); err != nil {
		return nil, xerrors.Errorf("rpc API service: config validation failed: %w", err)
	}
	return &Service{cfg: cfg}, nil
}

// Name implements service.Service
func (svc *Service) Name() string { return "rpcapi" }

// Run implements service.Service
func (svc *Service) Run(ctx context.Context) error {
	l, err := net.Listen("tcp", svc.cfg.ListenAddr)
	if err != nil {
		return err
	}
	defer func() { _ = l.Close() }()

	srv := grpc.NewServer()
	generated.RegisterPageRankServer(srv, rankrpc.NewRankServer(svc.cfg.RankAPI))

	go func() {
		<-ctx.Done()
		srv.GracefulStop()
	}()

	svc.cfg.Logger.WithField("addr", l.Addr().String()).Info("listening for incoming gRPC requests")
	if err = srv.Serve(l); err == grpc.ErrServerStopped {
		err = nil
	}
	return err
}
