package pagerank

import (
	"context"
	"fmt"
	"math"
	"testing"

	gc "gopkg.in/check.v1"
)

var _ = gc.Suite(new(SolverTestSuite))

func Test(t *testing.T) { gc.TestingT(t) }

type SolverTestSuite struct{}

const epsilon = 1e-9

func scenarioModel() *Adjacency {
	return BuildAdjacency("T", []string{"R1", "R2"}, map[string][]string{
		"R1": {"T"},
		"R2": {"T", "X"},
	})
}

func (s *SolverTestSuite) TestFirstIteration(c *gc.C) {
	params := DefaultParams()
	params.MaxIterations = 1

	res, err := Solver{}.Solve(context.TODO(), scenarioModel(), "T", params)
	c.Assert(err, gc.IsNil)
	c.Assert(math.Abs(res.Rank-0.475) < epsilon, gc.Equals, true, gc.Commentf("got %v", res.Rank))
	c.Assert(res.Iterations, gc.Equals, 1)
	c.Assert(res.Converged, gc.Equals, false, gc.Commentf("hitting the cap is reported, not treated as an error"))
	c.Assert(math.Abs(res.RankMass-0.575) < epsilon, gc.Equals, true, gc.Commentf("got %v", res.RankMass))
}

func (s *SolverTestSuite) TestConvergence(c *gc.C) {
	res, err := Solver{}.Solve(context.TODO(), scenarioModel(), "T", DefaultParams())
	c.Assert(err, gc.IsNil)

	// Referrers settle at the base share after one iteration, which pins
	// the target to 0.05 + 0.85 * (0.05/1 + 0.05/2).
	c.Assert(math.Abs(res.Rank-0.11375) < epsilon, gc.Equals, true, gc.Commentf("got %v", res.Rank))
	c.Assert(res.Converged, gc.Equals, true)
	c.Assert(res.Iterations, gc.Equals, 3)

	// R1 and R2 hold 0.05 each.
	c.Assert(math.Abs(res.RankMass-0.21375) < epsilon, gc.Equals, true, gc.Commentf("got %v", res.RankMass))
}

func (s *SolverTestSuite) TestSingleNodeNeighborhood(c *gc.C) {
	params := DefaultParams()
	model := BuildAdjacency("T", []string{"T"}, map[string][]string{"T": {"T"}})

	res, err := Solver{}.Solve(context.TODO(), model, "T", params)
	c.Assert(err, gc.IsNil)
	c.Assert(res.Rank, gc.Equals, params.BaseRank())
	c.Assert(res.Iterations, gc.Equals, 0)
	c.Assert(res.RankMass, gc.Equals, params.BaseRank())
}

func (s *SolverTestSuite) TestDanglingReferrerContributesNothing(c *gc.C) {
	model := BuildAdjacency("T", []string{"R"}, nil)

	res, err := Solver{}.Solve(context.TODO(), model, "T", DefaultParams())
	c.Assert(err, gc.IsNil)
	c.Assert(math.Abs(res.Rank-0.15/2) < epsilon, gc.Equals, true, gc.Commentf("got %v", res.Rank))
	c.Assert(res.Converged, gc.Equals, true)
}

func (s *SolverTestSuite) TestCyclesAreDamped(c *gc.C) {
	model := BuildAdjacency("T", []string{"A", "B", "C"}, map[string][]string{
		"A": {"B", "T"},
		"B": {"C", "T"},
		"C": {"A", "C", "T"},
	})

	res, err := Solver{}.Solve(context.TODO(), model, "T", DefaultParams())
	c.Assert(err, gc.IsNil)
	c.Assert(res.Converged, gc.Equals, true)
	c.Assert(res.Rank > 0.15/4, gc.Equals, true)
	c.Assert(res.Rank < 1.0, gc.Equals, true)
}

func (s *SolverTestSuite) TestDeterministicAcrossWorkerCounts(c *gc.C) {
	var (
		referrers = make([]string, 50)
		outLinks  = make(map[string][]string)
	)
	for i := range referrers {
		referrers[i] = fmt.Sprintf("R%02d", i)
	}
	for i, ref := range referrers {
		out := []string{"T"}
		for j := 1; j <= i%7; j++ {
			out = append(out, referrers[(i*j+3)%len(referrers)])
		}
		outLinks[ref] = out
	}
	model := BuildAdjacency("T", referrers, outLinks)

	exp, err := Solver{ComputeWorkers: 1}.Solve(context.TODO(), model, "T", DefaultParams())
	c.Assert(err, gc.IsNil)
	for _, workers := range []int{1, 4, 16} {
		for run := 0; run < 3; run++ {
			got, err := Solver{ComputeWorkers: workers}.Solve(context.TODO(), model, "T", DefaultParams())
			c.Assert(err, gc.IsNil)
			c.Assert(got, gc.Equals, exp, gc.Commentf("workers=%d run=%d", workers, run))
		}
	}
}

func (s *SolverTestSuite) TestInvalidParams(c *gc.C) {
	_, err := Solver{}.Solve(context.TODO(), scenarioModel(), "T", Params{DampingFactor: 1.5, Tolerance: -1})
	c.Assert(err, gc.ErrorMatches, "(?s).*damping factor.*tolerance.*max iterations.*")
}

func (s *SolverTestSuite) TestCancelledContext(c *gc.C) {
	ctx, cancelFn := context.WithCancel(context.TODO())
	cancelFn()

	_, err := Solver{}.Solve(ctx, scenarioModel(), "T", DefaultParams())
	c.Assert(err, gc.ErrorMatches, ".*context canceled")
}
