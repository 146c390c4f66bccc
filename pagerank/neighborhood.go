package pagerank

import (
	"context"
	"sync"

	"Page_Rank/pagegraph/graph"

	"golang.org/x/sync/errgroup"
	"golang.org/x/xerrors"
)

// neighborhood holds the data needed for building the adjacency model of a
// target page.
type neighborhood struct {
	target           *graph.Page
	referrers        []string
	referrerOutLinks map[string][]string
}

// loadNeighborhood fetches the target page and the out-links of every page
// that refers to it. Referrers are fetched in parallel; a referrer without a
// record counts as a page without out-links. The first store error aborts
// the whole load.
//
// If the target has no referrers the returned neighborhood carries no
// referrer data and the caller is expected to use the base rank.
func (c *Calculator) loadNeighborhood(ctx context.Context, url string) (*neighborhood, error) {
	target, err := c.cfg.Graph.FindPage(url)
	if err != nil {
		if xerrors.Is(err, graph.ErrNotFound) {
			return nil, xerrors.Errorf("load neighborhood for %q: %w", url, ErrPageNotFound)
		}
		return nil, storeError("find page", url, err)
	}

	nb := &neighborhood{
		target:           target,
		referrers:        target.InLinks,
		referrerOutLinks: make(map[string][]string, len(target.InLinks)),
	}
	if len(nb.referrers) == 0 {
		return nb, nil
	}

	var (
		mu         sync.Mutex
		egrp, gctx = errgroup.WithContext(ctx)
	)
	egrp.SetLimit(c.cfg.FetchWorkers)
	for _, ref := range nb.referrers {
		ref := ref
		egrp.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			page, err := c.cfg.Graph.FindPage(ref)
			if err != nil && !xerrors.Is(err, graph.ErrNotFound) {
				return storeError("find page", ref, err)
			}

			var outLinks []string
			if page != nil {
				outLinks = page.OutLinks
			}
			mu.Lock()
			nb.referrerOutLinks[ref] = outLinks
			mu.Unlock()
			return nil
		})
	}
	if err := egrp.Wait(); err != nil {
		return nil, err
	}
	return nb, nil
}
