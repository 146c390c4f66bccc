package pagerank

import (
	"context"
	"math"
	"sort"

	"Page_Rank/graphprocessing/bspgraph"
	"Page_Rank/graphprocessing/bspgraph/aggregator"
	"Page_Rank/graphprocessing/bspgraph/message"

	"golang.org/x/xerrors"
)

const (
	maxDeltaAggr = "max_delta"
	rankMassAggr = "rank_mass"
)

// Result describes the outcome of a solver run.
type Result struct {
	// Rank is the estimated rank of the target page.
	Rank float64

	// Iterations is the number of power iterations that were executed.
	Iterations int

	// Converged is false when the iteration cap was reached before the
	// ranks settled.
	Converged bool

	// RankMass is the sum of the ranks of all neighborhood pages after the
	// last iteration.
	RankMass float64
}

// Solver estimates the rank of a page by running damped power iteration
// over the page's neighborhood. The estimate is local: only the target and
// its referrers take part, so ranks are not normalized against the full
// graph.
//
// Each iteration is a superstep of a bspgraph.Graph. Every vertex sends
// rank/outDegree to the vertices that list it as an in-link, so messages
// received in superstep k carry the ranks computed in superstep k-1.
type Solver struct {
	// ComputeWorkers is the number of workers used for each superstep.
	ComputeWorkers int
}

type vertexState struct {
	rank      float64
	outDegree int
}

// contribution is the share of a vertex's rank sent along one edge.
type contribution struct {
	from  string
	value float64
}

func (contribution) Type() string { return "contribution" }

// Solve runs the solver on model and returns the rank of target.
func (s Solver) Solve(ctx context.Context, model *Adjacency, target string, params Params) (Result, error) {
	if err := params.validate(); err != nil {
		return Result{}, xerrors.Errorf("solve: invalid parameters: %w", err)
	}

	// Graphs with a single node have nothing to iterate on.
	if model.Size() <= 1 {
		return Result{Rank: params.BaseRank(), Converged: true, RankMass: params.BaseRank()}, nil
	}

	numNodes := float64(model.Size())
	g, err := bspgraph.NewGraph(bspgraph.GraphConfig{
		ComputeWorkers: s.ComputeWorkers,
		ComputeFn:      makeComputeFunc(params.DampingFactor, (1-params.DampingFactor)/numNodes),
	})
	if err != nil {
		return Result{}, xerrors.Errorf("solve: %w", err)
	}
	defer func() { _ = g.Close() }()

	for _, node := range model.Nodes() {
		g.AddVertex(node, &vertexState{
			rank:      1 / numNodes,
			outDegree: len(model.OutLinks(node)),
		})
	}
	for _, dst := range model.Nodes() {
		for _, src := range model.InLinks(dst) {
			if err = g.AddEdge(src, dst, nil); err != nil {
				return Result{}, xerrors.Errorf("solve: %w", err)
			}
		}
	}
	g.RegisterAggregator(maxDeltaAggr, new(aggregator.Float64MaxAggregator))
	g.RegisterAggregator(rankMassAggr, new(aggregator.Float64Accumulator))

	var res Result
	ex := bspgraph.NewExecutor(g, bspgraph.ExecutorCallbacks{
		PreStep: func(_ context.Context, g *bspgraph.Graph) error {
			g.Aggregator(maxDeltaAggr).Set(0.0)
			g.Aggregator(rankMassAggr).Set(0.0)
			return nil
		},
		PostStepKeepRunning: func(_ context.Context, g *bspgraph.Graph, _ int) (bool, error) {
			// Superstep 0 only distributes the initial ranks.
			if g.Superstep() == 0 {
				return true, nil
			}
			res.Iterations = g.Superstep()
			if g.Aggregator(maxDeltaAggr).Get().(float64) <= params.Tolerance {
				res.Converged = true
				return false, nil
			}
			return true, nil
		},
	})
	if err = ex.RunSteps(ctx, params.MaxIterations+1); err != nil {
		return Result{}, xerrors.Errorf("solve: %w", err)
	}

	res.RankMass = g.Aggregator(rankMassAggr).Get().(float64)
	res.Rank = params.BaseRank()
	if v := g.Vertices()[target]; v != nil {
		res.Rank = v.Value().(*vertexState).rank
	}
	return res, nil
}

func makeComputeFunc(dampingFactor, baseShare float64) bspgraph.ComputeFunc {
	return func(g *bspgraph.Graph, v *bspgraph.Vertex, msgIt message.Iterator) error {
		state := v.Value().(*vertexState)

		if g.Superstep() > 0 {
			var contribs []contribution
			for msgIt.Next() {
				contribs = append(contribs, msgIt.Message().(contribution))
			}
			// Message arrival order depends on worker scheduling; sum in
			// a fixed order so that results are reproducible.
			sort.Slice(contribs, func(i, j int) bool {
				if contribs[i].from != contribs[j].from {
					return contribs[i].from < contribs[j].from
				}
				return contribs[i].value < contribs[j].value
			})

			newRank := baseShare
			for _, c := range contribs {
				newRank += dampingFactor * c.value
			}
			g.Aggregator(maxDeltaAggr).Aggregate(math.Abs(newRank - state.rank))
			g.Aggregator(rankMassAggr).Aggregate(newRank)
			state.rank = newRank
		}

		// Pages without out-links contribute nothing.
		if state.outDegree == 0 {
			return nil
		}
		return g.BroadcastToNeighbors(v, contribution{
			from:  v.ID(),
			value: state.rank / float64(state.outDegree),
		})
	}
}
