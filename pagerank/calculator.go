package pagerank

import (
	"context"
	"fmt"
	"time"

	"Page_Rank/pagegraph/graph"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
	"golang.org/x/xerrors"
)

// GraphAPI defines the set of graph store methods used by the Calculator.
type GraphAPI interface {
	FindPage(url string) (*graph.Page, error)
	SetOutLinks(url string, outLinks []string) error
	AddInLink(url, referrer string) error
	UpdateRank(url string, rank float64) error
}

// Calculator serves page ranks. Cached ranks are returned as-is; missing
// ranks are estimated from the page's one-hop neighborhood and written back
// to the store.
type Calculator struct {
	cfg    Config
	solver Solver

	// Concurrent lookups for the same uncomputed page share a single
	// computation.
	flight singleflight.Group
}

// NewCalculator creates a new Calculator instance with the specified config.
func NewCalculator(cfg Config) (*Calculator, error) {
	if err := cfg.validate(); err != nil {
		return nil, xerrors.Errorf("pagerank calculator: config validation failed: %w", err)
	}
	return &Calculator{
		cfg:    cfg,
		solver: Solver{ComputeWorkers: cfg.ComputeWorkers},
	}, nil
}

// Params returns the default solver parameters of this calculator.
func (c *Calculator) Params() Params { return c.cfg.Params }

// GetRank returns the rank of the page identified by url using the
// calculator's default parameters. ErrPageNotFound is returned if the page
// is not known.
func (c *Calculator) GetRank(ctx context.Context, url string) (float64, error) {
	return c.GetRankWithParams(ctx, url, c.cfg.Params)
}

// GetRankWithParams works like GetRank but uses the provided solver
// parameters when the rank has to be computed.
func (c *Calculator) GetRankWithParams(ctx context.Context, url string, params Params) (float64, error) {
	if err := params.validate(); err != nil {
		return 0, xerrors.Errorf("get rank: invalid parameters: %w", err)
	}

	page, err := c.cfg.Graph.FindPage(url)
	if err != nil {
		if xerrors.Is(err, graph.ErrNotFound) {
			rankLookups.WithLabelValues(outcomeNotFound).Inc()
			return 0, xerrors.Errorf("get rank for %q: %w", url, ErrPageNotFound)
		}
		rankLookups.WithLabelValues(outcomeError).Inc()
		return 0, storeError("find page", url, err)
	}
	if page.Rank > 0 {
		rankLookups.WithLabelValues(outcomeCached).Inc()
		return page.Rank, nil
	}

	key := fmt.Sprintf("%s|%v|%v|%d", url, params.DampingFactor, params.Tolerance, params.MaxIterations)
	// The shared computation must outlive any single caller; callers that
	// give up stop waiting but leave it running for the others.
	resCh := c.flight.DoChan(key, func() (interface{}, error) {
		return c.computeRank(detachedContext{parent: ctx}, url, params)
	})

	select {
	case <-ctx.Done():
		rankLookups.WithLabelValues(outcomeError).Inc()
		return 0, xerrors.Errorf("get rank for %q: %w", url, ctx.Err())
	case res := <-resCh:
		if res.Err != nil {
			if xerrors.Is(res.Err, ErrPageNotFound) {
				rankLookups.WithLabelValues(outcomeNotFound).Inc()
			} else {
				rankLookups.WithLabelValues(outcomeError).Inc()
			}
			return 0, res.Err
		}
		return res.Val.(float64), nil
	}
}

// detachedContext keeps the values of its parent but is never cancelled and
// has no deadline.
type detachedContext struct {
	parent context.Context
}

func (detachedContext) Deadline() (time.Time, bool)         { return time.Time{}, false }
func (detachedContext) Done() <-chan struct{}               { return nil }
func (detachedContext) Err() error                          { return nil }
func (d detachedContext) Value(key interface{}) interface{} { return d.parent.Value(key) }

// computeRank runs the load, build, solve and store stages for url.
func (c *Calculator) computeRank(ctx context.Context, url string, params Params) (float64, error) {
	logger := c.cfg.Logger.WithField("url", url)

	nb, err := c.loadNeighborhood(ctx, url)
	if err != nil {
		return 0, err
	}

	// Another instance may have written the rank in the meantime.
	if nb.target.Rank > 0 {
		rankLookups.WithLabelValues(outcomeCached).Inc()
		return nb.target.Rank, nil
	}

	var res Result
	if len(nb.referrers) == 0 {
		res = Result{Rank: params.BaseRank(), Converged: true, RankMass: params.BaseRank()}
		rankLookups.WithLabelValues(outcomeBase).Inc()
	} else {
		model := BuildAdjacency(url, nb.referrers, nb.referrerOutLinks)
		if res, err = c.solver.Solve(ctx, model, url, params); err != nil {
			return 0, xerrors.Errorf("compute rank for %q: %w", url, err)
		}
		solverIterations.Observe(float64(res.Iterations))
		if !res.Converged {
			solverCapped.Inc()
		}
		rankLookups.WithLabelValues(outcomeComputed).Inc()
	}

	if err = c.storeRank(url, res.Rank); err != nil {
		return 0, err
	}

	logger.WithFields(logrus.Fields{
		"rank":       res.Rank,
		"referrers":  len(nb.referrers),
		"iterations": res.Iterations,
		"converged":  res.Converged,
		"rank_mass":  res.RankMass,
	}).Info("computed page rank")
	return res.Rank, nil
}

// storeRank writes a computed rank back to the store so that subsequent
// lookups are served from the cache. The write is unconditional.
func (c *Calculator) storeRank(url string, rank float64) error {
	if err := c.cfg.Graph.UpdateRank(url, rank); err != nil {
		return storeError("update rank", url, err)
	}
	return nil
}

// RecordReference records that the page at from links to each of the pages
// in to. The out-links of from are replaced with to and from is added to
// the referrer set of every page in to. Pages that do not exist yet are
// created with an uncomputed rank.
func (c *Calculator) RecordReference(ctx context.Context, from string, to []string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := c.cfg.Graph.SetOutLinks(from, to); err != nil {
		return storeError("set out-links", from, err)
	}
	for _, dst := range to {
		if err := c.cfg.Graph.AddInLink(dst, from); err != nil {
			return storeError("add in-link", dst, err)
		}
	}

	c.cfg.Logger.WithFields(logrus.Fields{
		"url":       from,
		"out_links": len(to),
	}).Debug("recorded page references")
	return nil
}
