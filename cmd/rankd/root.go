package main

import (
	"context"
	"time"

	"Page_Rank/pagegraph/graph"
	"Page_Rank/pagegraph/store/cockroachdb"
	"Page_Rank/pagegraph/store/memory"
	"Page_Rank/pagegraph/store/mongodb"
	"Page_Rank/pagerank"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/xerrors"
)

// options holds the flag values shared by all sub-commands.
type options struct {
	remote string

	store           string
	cdbDSN          string
	mongoURI        string
	mongoDatabase   string
	mongoCollection string
	mongoOpTimeout  time.Duration

	dampingFactor  float64
	tolerance      float64
	maxIterations  int
	fetchWorkers   int
	computeWorkers int

	logLevel  string
	logFormat string
}

func newRootCmd(rootLogger *logrus.Logger) *cobra.Command {
	opts := new(options)

	cmd := &cobra.Command{
		Use:           appName,
		Short:         "Local page rank estimation service",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return configureLogger(rootLogger, opts.logLevel, opts.logFormat)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.remote, "remote", envString("RANKD_REMOTE", ""), "gRPC address of a remote rankd instance used by the rank and link commands")
	flags.StringVar(&opts.store, "store", envString("RANK_STORE", "memory"), "graph store backend: memory, cockroachdb or mongodb")
	flags.StringVar(&opts.cdbDSN, "cdb-dsn", envString("CDB_DSN", ""), "CockroachDB/PostgreSQL DSN for the cockroachdb store")
	flags.StringVar(&opts.mongoURI, "mongo-uri", envString("MONGO_URI", "mongodb://localhost:27017"), "connection URI for the mongodb store")
	flags.StringVar(&opts.mongoDatabase, "mongo-database", envString("MONGO_DATABASE", "pagerank"), "database for the mongodb store")
	flags.StringVar(&opts.mongoCollection, "mongo-collection", envString("MONGO_COLLECTION", "pages"), "collection for the mongodb store")
	flags.DurationVar(&opts.mongoOpTimeout, "mongo-op-timeout", envDuration("MONGO_OP_TIMEOUT", 10*time.Second), "timeout for each mongodb operation (0 disables it)")
	flags.Float64Var(&opts.dampingFactor, "damping-factor", envFloat("DAMPING_FACTOR", pagerank.DefaultDampingFactor), "page rank damping factor")
	flags.Float64Var(&opts.tolerance, "tolerance", envFloat("TOLERANCE", pagerank.DefaultTolerance), "convergence tolerance")
	flags.IntVar(&opts.maxIterations, "max-iterations", envInt("MAX_ITERATIONS", pagerank.DefaultMaxIterations), "maximum number of solver iterations")
	flags.IntVar(&opts.fetchWorkers, "fetch-workers", envInt("FETCH_WORKERS", 8), "number of referrer pages fetched concurrently")
	flags.IntVar(&opts.computeWorkers, "compute-workers", envInt("COMPUTE_WORKERS", 1), "number of solver workers")
	flags.StringVar(&opts.logLevel, "log-level", envString("LOG_LEVEL", "info"), "log level")
	flags.StringVar(&opts.logFormat, "log-format", envString("LOG_FORMAT", "text"), "log format: text or json")

	cmd.AddCommand(
		newServeCmd(opts),
		newRankCmd(opts),
		newLinkCmd(opts),
	)
	return cmd
}

func configureLogger(l *logrus.Logger, level, format string) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return xerrors.Errorf("invalid log level: %w", err)
	}
	l.SetLevel(lvl)

	switch format {
	case "text":
		l.SetFormatter(new(logrus.TextFormatter))
	case "json":
		l.SetFormatter(new(logrus.JSONFormatter))
	default:
		return xerrors.Errorf("unsupported log format %q", format)
	}
	return nil
}

// openGraph connects to the graph store selected by opts. The returned
// function releases the store.
func openGraph(ctx context.Context, opts *options) (graph.Graph, func() error, error) {
	switch opts.store {
	case "memory":
		logger.Warn("using in-memory graph store; ranks are lost on exit")
		return memory.NewInMemoryGraph(), func() error { return nil }, nil
	case "cockroachdb":
		g, err := cockroachdb.NewCockroachDBGraph(opts.cdbDSN)
		if err != nil {
			return nil, nil, err
		}
		return g, g.Close, nil
	case "mongodb":
		g, err := mongodb.NewMongoDBGraph(ctx, mongodb.Config{
			URI:        opts.mongoURI,
			Database:   opts.mongoDatabase,
			Collection: opts.mongoCollection,
			OpTimeout:  opts.mongoOpTimeout,
		})
		if err != nil {
			return nil, nil, err
		}
		return g, g.Close, nil
	default:
		return nil, nil, xerrors.Errorf("unsupported graph store %q", opts.store)
	}
}

func newCalculator(g pagerank.GraphAPI, opts *options) (*pagerank.Calculator, error) {
	return pagerank.NewCalculator(pagerank.Config{
		Graph: g,
		Params: pagerank.Params{
			DampingFactor: opts.dampingFactor,
			Tolerance:     opts.tolerance,
			MaxIterations: opts.maxIterations,
		},
		FetchWorkers:   opts.fetchWorkers,
		ComputeWorkers: opts.computeWorkers,
		Logger:         logger.WithField("component", "pagerank"),
	})
}
