package reranker

import (
	"context"
	"io/ioutil"
	"time"

	"Page_Rank/pagegraph/graph"
	"Page_Rank/pipeline"
	"Page_Rank/rankd/partition"

	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"
	"github.com/juju/clock"
	"github.com/sirupsen/logrus"
	"golang.org/x/xerrors"
)

// GraphAPI defines the set of API methods for iterating the pages of the
// link graph.
type GraphAPI interface {
	Pages(fromID, toID uuid.UUID) (graph.PageIterator, error)
}

// RankCalculator is implemented by types that can compute and cache the
// rank of a page.
type RankCalculator interface {
	GetRank(ctx context.Context, url string) (float64, error)
}

// Config encapsulates the settings for configuring the re-ranker service.
type Config struct {
	// An API for iterating the pages of the link graph.
	GraphAPI GraphAPI

	// The calculator used for ranking pages.
	Calculator RankCalculator

	// An API for detecting the partition assignments for this service.
	PartitionDetector partition.Detector

	// A clock instance for generating time-related events. If not specified,
	// the default wall-clock will be used instead.
	Clock clock.Clock

	// The number of pages ranked concurrently during a pass.
	ComputeWorkers int

	// The time between subsequent re-ranking passes.
	UpdateInterval time.Duration

	// The logger to use. If not defined an output-discarding logger will
	// be used instead.
	Logger *logrus.Entry
}

func (cfg *Config) validate() error {
	var err error
	if cfg.GraphAPI == nil {
		err = multierror.Append(err, xerrors.New("graph API has not been provided"))
	}
	if cfg.Calculator == nil {
		err = multierror.Append(err, xerrors.New("rank calculator has not been provided"))
	}
	if cfg.PartitionDetector == nil {
		err = multierror.Append(err, xerrors.New("partition detector has not been provided"))
	}
	if cfg.Clock == nil {
		cfg.Clock = clock.WallClock
	}
	if cfg.ComputeWorkers <= 0 {
		err = multierror.Append(err, xerrors.New("invalid value for compute workers"))
	}
	if cfg.UpdateInterval <= 0 {
		err = multierror.Append(err, xerrors.New("invalid value for update interval"))
	}
	if cfg.Logger == nil {
		cfg.Logger = logrus.NewEntry(&logrus.Logger{Out: ioutil.Discard})
	}
	return err
}

// Service periodically computes the rank of every page in its partition
// that has not been ranked yet.
type Service struct {
	cfg  Config
	pipe *pipeline.Pipeline
}

// NewService creates a new re-ranker service instance with the specified config.
func NewService(cfg Config) (*Service, error) {
	if err := cfg.validate(); err != nil {
		return nil, xerrors.Errorf("reranker service: config validation failed: %w", err)
	}

	return &Service{
		cfg: cfg,
		pipe: pipeline.New(
			pipeline.FixedWorkerPool(rankComputer{calc: cfg.Calculator}, cfg.ComputeWorkers),
		),
	}, nil
}

// Name implements service.Service
func (svc *Service) Name() string { return "reranker" }

// Run implements service.Service
func (svc *Service) Run(ctx context.Context) error {
	svc.cfg.Logger.WithField("update_interval", svc.cfg.UpdateInterval.String()).Info("starting service")
	defer svc.cfg.Logger.Info("stopped service")

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-svc.cfg.Clock.After(svc.cfg.UpdateInterval):
			curPartition, numPartitions, err := svc.cfg.PartitionDetector.PartitionInfo()
			if err != nil {
				if xerrors.Is(err, partition.ErrNoPartitionDataAvailableYet) {
					svc.cfg.Logger.Warn("deferring re-rank pass: partition data not yet available")
					continue
				}
				return err
			}

			if err := svc.rerankPartition(ctx, curPartition, numPartitions); err != nil {
				// A pass interrupted by shutdown is not a failure.
				if ctx.Err() != nil {
					return nil
				}
				return err
			}
		}
	}
}

func (svc *Service) rerankPartition(ctx context.Context, curPartition, numPartitions int) error {
	partRange, err := partition.NewFullRange(numPartitions)
	if err != nil {
		return xerrors.Errorf("reranker: unable to compute ID ranges for partition: %w", err)
	}

	fromID, toID, err := partRange.PartitionExtents(curPartition)
	if err != nil {
		return xerrors.Errorf("reranker: unable to compute ID ranges for partition: %w", err)
	}

	svc.cfg.Logger.WithFields(logrus.Fields{
		"partition":      curPartition,
		"num_partitions": numPartitions,
	}).Info("starting new re-rank pass")

	startAt := svc.cfg.Clock.Now()
	pageIt, err := svc.cfg.GraphAPI.Pages(fromID, toID)
	if err != nil {
		return xerrors.Errorf("reranker: unable to retrieve pages iterator: %w", err)
	}

	src := &unrankedPageSource{pageIt: pageIt}
	sink := new(countingSink)
	if err = svc.pipe.Process(ctx, src, sink); err != nil {
		_ = pageIt.Close()
		return xerrors.Errorf("reranker: unable to complete re-rank pass: %w", err)
	} else if err = pageIt.Close(); err != nil {
		return xerrors.Errorf("reranker: unable to complete re-rank pass: %w", err)
	}

	svc.cfg.Logger.WithFields(logrus.Fields{
		"ranked_page_count":  sink.getCount(),
		"skipped_page_count": src.skipped,
		"elapsed_time":       svc.cfg.Clock.Now().Sub(startAt).String(),
	}).Info("completed re-rank pass")
	return nil
}
