package pagerank

import (
	"io/ioutil"

	"github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"
	"golang.org/x/xerrors"
)

// Default solver parameters.
const (
	DefaultDampingFactor = 0.85
	DefaultTolerance     = 0.0001
	DefaultMaxIterations = 100

	defaultFetchWorkers = 8
)

// Params controls a single run of the rank solver.
type Params struct {
	// DampingFactor is the probability of following a link. 1-DampingFactor
	// is the base rank assigned to pages that nobody links to.
	DampingFactor float64

	// Tolerance is the largest per-page rank change that still counts as
	// converged.
	Tolerance float64

	// MaxIterations caps the number of power iterations. Hitting the cap
	// is not an error; the last computed ranks are used.
	MaxIterations int
}

// DefaultParams returns the solver parameters used when none are provided.
func DefaultParams() Params {
	return Params{
		DampingFactor: DefaultDampingFactor,
		Tolerance:     DefaultTolerance,
		MaxIterations: DefaultMaxIterations,
	}
}

// BaseRank returns the rank assigned to pages without any known referrers.
func (p Params) BaseRank() float64 {
	return 1 - p.DampingFactor
}

func (p Params) validate() error {
	var err error
	if p.DampingFactor <= 0 || p.DampingFactor >= 1 {
		err = multierror.Append(err, xerrors.Errorf("damping factor must be in the (0, 1) range"))
	}
	if p.Tolerance < 0 {
		err = multierror.Append(err, xerrors.Errorf("invalid value for tolerance"))
	}
	if p.MaxIterations <= 0 {
		err = multierror.Append(err, xerrors.Errorf("invalid value for max iterations"))
	}
	return err
}

// Config encapsulates the settings for configuring a Calculator.
type Config struct {
	// The store that holds the link graph and the cached ranks.
	Graph GraphAPI

	// Solver parameters used by GetRank. Zero-valued fields are replaced
	// with their defaults.
	Params Params

	// The number of referrer pages that may be fetched concurrently while
	// loading a neighborhood. If not specified, a default value of 8 will
	// be used instead.
	FetchWorkers int

	// The number of workers used by the solver for each superstep. If not
	// specified, a single worker will be used.
	ComputeWorkers int

	// The logger to use. If not defined an output-discarding logger will
	// be used instead.
	Logger *logrus.Entry
}

func (cfg *Config) validate() error {
	var err error
	if cfg.Graph == nil {
		err = multierror.Append(err, xerrors.Errorf("graph API has not been provided"))
	}
	if cfg.Params.DampingFactor == 0 {
		cfg.Params.DampingFactor = DefaultDampingFactor
	}
	if cfg.Params.Tolerance == 0 {
		cfg.Params.Tolerance = DefaultTolerance
	}
	if cfg.Params.MaxIterations == 0 {
		cfg.Params.MaxIterations = DefaultMaxIterations
	}
	if pErr := cfg.Params.validate(); pErr != nil {
		err = multierror.Append(err, pErr)
	}
	if cfg.FetchWorkers < 0 {
		err = multierror.Append(err, xerrors.Errorf("invalid value for fetch workers"))
	} else if cfg.FetchWorkers == 0 {
		cfg.FetchWorkers = defaultFetchWorkers
	}
	if cfg.ComputeWorkers < 0 {
		err = multierror.Append(err, xerrors.Errorf("invalid value for compute workers"))
	} else if cfg.ComputeWorkers == 0 {
		cfg.ComputeWorkers = 1
	}
	if cfg.Logger == nil {
		cfg.Logger = logrus.NewEntry(&logrus.Logger{Out: ioutil.Discard})
	}
	return err
}
