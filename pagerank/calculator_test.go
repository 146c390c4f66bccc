package pagerank

import (
	"context"
	"math"
	"sync"
	"time"

	"Page_Rank/pagegraph/graph"
	"Page_Rank/pagegraph/store/memory"

	"golang.org/x/xerrors"
	gc "gopkg.in/check.v1"
)

var _ = gc.Suite(new(CalculatorTestSuite))

type CalculatorTestSuite struct {
	g    *recordingGraph
	calc *Calculator
}

func (s *CalculatorTestSuite) SetUpTest(c *gc.C) {
	s.g = &recordingGraph{InMemoryGraph: memory.NewInMemoryGraph()}

	var err error
	s.calc, err = NewCalculator(Config{Graph: s.g})
	c.Assert(err, gc.IsNil)
}

func (s *CalculatorTestSuite) TestUnknownPage(c *gc.C) {
	_, err := s.calc.GetRank(context.TODO(), "unknown.example")
	c.Assert(xerrors.Is(err, ErrPageNotFound), gc.Equals, true, gc.Commentf("got %v", err))
	c.Assert(s.g.rankWrites(), gc.Equals, 0)
}

func (s *CalculatorTestSuite) TestPageWithoutReferrers(c *gc.C) {
	c.Assert(s.calc.RecordReference(context.TODO(), "lonely.example", []string{"a.example"}), gc.IsNil)

	rank, err := s.calc.GetRank(context.TODO(), "lonely.example")
	c.Assert(err, gc.IsNil)
	c.Assert(rank, gc.Equals, DefaultParams().BaseRank())

	page, err := s.g.FindPage("lonely.example")
	c.Assert(err, gc.IsNil)
	c.Assert(page.Rank, gc.Equals, rank, gc.Commentf("base rank was not written back"))
}

func (s *CalculatorTestSuite) TestCachedRankShortCircuits(c *gc.C) {
	c.Assert(s.calc.RecordReference(context.TODO(), "a.example", []string{"b.example"}), gc.IsNil)
	c.Assert(s.g.UpdateRank("b.example", 0.42), gc.IsNil)
	s.g.resetCounters()

	rank, err := s.calc.GetRank(context.TODO(), "b.example")
	c.Assert(err, gc.IsNil)
	c.Assert(rank, gc.Equals, 0.42)
	c.Assert(s.g.rankWrites(), gc.Equals, 0)
	c.Assert(s.g.lookups(), gc.Equals, 1, gc.Commentf("only the target should have been read"))
}

func (s *CalculatorTestSuite) TestComputeAndWriteBack(c *gc.C) {
	s.seedScenario(c, s.calc)

	rank, err := s.calc.GetRank(context.TODO(), "T")
	c.Assert(err, gc.IsNil)
	c.Assert(math.Abs(rank-0.11375) < epsilon, gc.Equals, true, gc.Commentf("got %v", rank))
	c.Assert(s.g.rankWrites(), gc.Equals, 1)

	stored, err := s.g.FindPage("T")
	c.Assert(err, gc.IsNil)
	c.Assert(stored.Rank, gc.Equals, rank)

	// The second lookup is served from the store.
	again, err := s.calc.GetRank(context.TODO(), "T")
	c.Assert(err, gc.IsNil)
	c.Assert(again, gc.Equals, rank)
	c.Assert(s.g.rankWrites(), gc.Equals, 1)
}

func (s *CalculatorTestSuite) TestRecomputationIsIdempotent(c *gc.C) {
	s.seedScenario(c, s.calc)
	first, err := s.calc.GetRank(context.TODO(), "T")
	c.Assert(err, gc.IsNil)
	before, err := s.g.FindPage("T")
	c.Assert(err, gc.IsNil)

	// Invalidate the cached value and compute again from the same inputs.
	c.Assert(s.g.UpdateRank("T", 0), gc.IsNil)
	second, err := s.calc.GetRank(context.TODO(), "T")
	c.Assert(err, gc.IsNil)
	c.Assert(second, gc.Equals, first)

	after, err := s.g.FindPage("T")
	c.Assert(err, gc.IsNil)
	c.Assert(after, gc.DeepEquals, before)
}

func (s *CalculatorTestSuite) TestPerCallParams(c *gc.C) {
	s.seedScenario(c, s.calc)

	params := DefaultParams()
	params.MaxIterations = 1
	rank, err := s.calc.GetRankWithParams(context.TODO(), "T", params)
	c.Assert(err, gc.IsNil)
	c.Assert(math.Abs(rank-0.475) < epsilon, gc.Equals, true, gc.Commentf("got %v", rank))

	_, err = s.calc.GetRankWithParams(context.TODO(), "T", Params{})
	c.Assert(err, gc.ErrorMatches, "(?s)get rank: invalid parameters: .*")
}

func (s *CalculatorTestSuite) TestRecordReferenceIsSetLike(c *gc.C) {
	for i := 0; i < 2; i++ {
		c.Assert(s.calc.RecordReference(context.TODO(), "A", []string{"B"}), gc.IsNil)
	}

	b, err := s.g.FindPage("B")
	c.Assert(err, gc.IsNil)
	c.Assert(b.InLinks, gc.DeepEquals, []string{"A"})
	c.Assert(b.OutLinks, gc.HasLen, 0)
	c.Assert(b.Rank, gc.Equals, 0.0)

	a, err := s.g.FindPage("A")
	c.Assert(err, gc.IsNil)
	c.Assert(a.OutLinks, gc.DeepEquals, []string{"B"})
	c.Assert(a.Rank, gc.Equals, 0.0)
}

func (s *CalculatorTestSuite) TestMissingReferrerRecord(c *gc.C) {
	// The referrer was recorded but its own page record is gone.
	c.Assert(s.g.AddInLink("T", "ghost"), gc.IsNil)

	rank, err := s.calc.GetRank(context.TODO(), "T")
	c.Assert(err, gc.IsNil)
	c.Assert(math.Abs(rank-0.15/2) < epsilon, gc.Equals, true, gc.Commentf("got %v", rank))
}

func (s *CalculatorTestSuite) TestStoreErrorAbortsLookup(c *gc.C) {
	s.seedScenario(c, s.calc)
	errBoom := xerrors.New("connection reset")
	s.g.setFindHook(func(url string) error {
		if url == "R2" {
			return errBoom
		}
		return nil
	})

	_, err := s.calc.GetRank(context.TODO(), "T")
	var storeErr *StoreError
	c.Assert(xerrors.As(err, &storeErr), gc.Equals, true, gc.Commentf("got %v", err))
	c.Assert(storeErr.URL, gc.Equals, "R2")
	c.Assert(xerrors.Is(err, errBoom), gc.Equals, true)
	c.Assert(s.g.rankWrites(), gc.Equals, 0, gc.Commentf("partial neighborhoods must not be ranked"))
}

func (s *CalculatorTestSuite) TestConcurrentLookupsShareComputation(c *gc.C) {
	s.seedScenario(c, s.calc)
	releaseCh := make(chan struct{})
	s.g.setFindHook(func(url string) error {
		if url == "R1" {
			<-releaseCh
		}
		return nil
	})

	var (
		wg         sync.WaitGroup
		numClients = 8
		ranks      = make([]float64, numClients)
	)
	wg.Add(numClients)
	for i := 0; i < numClients; i++ {
		go func(i int) {
			defer wg.Done()
			rank, err := s.calc.GetRank(context.TODO(), "T")
			c.Check(err, gc.IsNil)
			ranks[i] = rank
		}(i)
	}

	<-time.After(100 * time.Millisecond)
	close(releaseCh)
	wg.Wait()

	for i := 1; i < numClients; i++ {
		c.Assert(ranks[i], gc.Equals, ranks[0])
	}
	c.Assert(s.g.rankWrites(), gc.Equals, 1)
}

func (s *CalculatorTestSuite) TestCancelledCallerDoesNotAbortSharedComputation(c *gc.C) {
	s.seedScenario(c, s.calc)
	enteredCh := make(chan struct{}, 1)
	releaseCh := make(chan struct{})
	s.g.setFindHook(func(url string) error {
		if url == "R1" {
			enteredCh <- struct{}{}
			<-releaseCh
		}
		return nil
	})

	ctxA, cancelA := context.WithCancel(context.TODO())
	errA := make(chan error, 1)
	go func() {
		_, err := s.calc.GetRank(ctxA, "T")
		errA <- err
	}()
	<-enteredCh

	type result struct {
		rank float64
		err  error
	}
	resB := make(chan result, 1)
	go func() {
		rank, err := s.calc.GetRank(context.TODO(), "T")
		resB <- result{rank: rank, err: err}
	}()

	// Give the second caller time to join the in-flight computation.
	<-time.After(100 * time.Millisecond)
	cancelA()

	select {
	case err := <-errA:
		c.Assert(xerrors.Is(err, context.Canceled), gc.Equals, true, gc.Commentf("got %v", err))
	case <-time.After(10 * time.Second):
		c.Fatal("timeout waiting for the cancelled caller to return")
	}

	close(releaseCh)
	var res result
	select {
	case res = <-resB:
	case <-time.After(10 * time.Second):
		c.Fatal("timeout waiting for the live caller to return")
	}
	c.Assert(res.err, gc.IsNil)
	c.Assert(math.Abs(res.rank-0.11375) < epsilon, gc.Equals, true, gc.Commentf("got rank %v", res.rank))

	page, err := s.g.InMemoryGraph.FindPage("T")
	c.Assert(err, gc.IsNil)
	c.Assert(page.Rank, gc.Equals, res.rank)
	c.Assert(s.g.rankWrites(), gc.Equals, 1)
}

func (s *CalculatorTestSuite) TestConfigValidation(c *gc.C) {
	_, err := NewCalculator(Config{FetchWorkers: -1, ComputeWorkers: -1})
	c.Assert(err, gc.ErrorMatches, "(?s).*graph API has not been provided.*fetch workers.*compute workers.*")

	calc, err := NewCalculator(Config{Graph: s.g})
	c.Assert(err, gc.IsNil)
	c.Assert(calc.Params(), gc.DeepEquals, DefaultParams())
}

// seedScenario records T <- {R1, R2} with R1 -> [T] and R2 -> [T, X].
func (s *CalculatorTestSuite) seedScenario(c *gc.C, calc *Calculator) {
	c.Assert(calc.RecordReference(context.TODO(), "R1", []string{"T"}), gc.IsNil)
	c.Assert(calc.RecordReference(context.TODO(), "R2", []string{"T", "X"}), gc.IsNil)
	s.g.resetCounters()
}

// recordingGraph wraps an in-memory graph, counts store calls and allows
// tests to inject failures or delays into page lookups.
type recordingGraph struct {
	*memory.InMemoryGraph

	mu         sync.Mutex
	findCount  int
	writeCount int
	findHook   func(url string) error
}

func (g *recordingGraph) FindPage(url string) (*graph.Page, error) {
	g.mu.Lock()
	g.findCount++
	hook := g.findHook
	g.mu.Unlock()

	if hook != nil {
		if err := hook(url); err != nil {
			return nil, err
		}
	}
	return g.InMemoryGraph.FindPage(url)
}

func (g *recordingGraph) UpdateRank(url string, rank float64) error {
	g.mu.Lock()
	g.writeCount++
	g.mu.Unlock()
	return g.InMemoryGraph.UpdateRank(url, rank)
}

func (g *recordingGraph) setFindHook(hook func(url string) error) {
	g.mu.Lock()
	g.findHook = hook
	g.mu.Unlock()
}

func (g *recordingGraph) resetCounters() {
	g.mu.Lock()
	g.findCount, g.writeCount = 0, 0
	g.mu.Unlock()
}

func (g *recordingGraph) lookups() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.findCount
}

func (g *recordingGraph) rankWrites() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.writeCount
}
