package reranker

import (
	"context"
	"sync"

	"Page_Rank/pagegraph/graph"
	"Page_Rank/pagerank"
	"Page_Rank/pipeline"

	"golang.org/x/xerrors"
)

var (
	_ pipeline.Payload = (*pagePayload)(nil)

	payloadPool = sync.Pool{
		New: func() interface{} { return new(pagePayload) },
	}
)

type pagePayload struct {
	URL  string
	Rank float64
}

// Clone implements pipeline.Payload.
func (p *pagePayload) Clone() pipeline.Payload {
	newP := payloadPool.Get().(*pagePayload)
	newP.URL = p.URL
	newP.Rank = p.Rank
	return newP
}

// MarkAsProcessed implements pipeline.Payload.
func (p *pagePayload) MarkAsProcessed() {
	p.URL = ""
	p.Rank = 0
	payloadPool.Put(p)
}

// unrankedPageSource emits the pages of a partition whose rank has not been
// computed yet.
type unrankedPageSource struct {
	pageIt  graph.PageIterator
	skipped int
}

func (s *unrankedPageSource) Next(context.Context) bool {
	for s.pageIt.Next() {
		if s.pageIt.Page().Rank == 0 {
			return true
		}
		s.skipped++
	}
	return false
}

func (s *unrankedPageSource) Error() error { return s.pageIt.Error() }

func (s *unrankedPageSource) Payload() pipeline.Payload {
	page := s.pageIt.Page()
	p := payloadPool.Get().(*pagePayload)
	p.URL = page.URL
	return p
}

// rankComputer runs a rank lookup for each incoming page. Pages that were
// removed from the store after being listed are dropped.
type rankComputer struct {
	calc RankCalculator
}

func (rc rankComputer) Process(ctx context.Context, p pipeline.Payload) (pipeline.Payload, error) {
	payload := p.(*pagePayload)

	rank, err := rc.calc.GetRank(ctx, payload.URL)
	if err != nil {
		if xerrors.Is(err, pagerank.ErrPageNotFound) {
			return nil, nil
		}
		return nil, err
	}

	payload.Rank = rank
	return payload, nil
}

type countingSink struct {
	mu    sync.Mutex
	count int
}

func (s *countingSink) Consume(context.Context, pipeline.Payload) error {
	s.mu.Lock()
	s.count++
	s.mu.Unlock()
	return nil
}

func (s *countingSink) getCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.count
}
