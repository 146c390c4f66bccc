package bspgraph

import (
	"context"
	"fmt"
	"testing"

	"Page_Rank/graphprocessing/bspgraph/message"

	"golang.org/x/xerrors"
	gc "gopkg.in/check.v1"
)

var _ = gc.Suite(new(GraphTestSuite))

func Test(t *testing.T) { gc.TestingT(t) }

type GraphTestSuite struct{}

type intMsg struct {
	value int
}

func (intMsg) Type() string { return "intMsg" }

// TestMaxValuePropagation runs the classic Pregel example where each vertex
// ends up holding the maximum value present in its connected component.
func (s *GraphTestSuite) TestMaxValuePropagation(c *gc.C) {
	g, err := NewGraph(GraphConfig{
		ComputeWorkers: 4,
		ComputeFn: func(g *Graph, v *Vertex, msgIt message.Iterator) error {
			cur := v.Value().(int)
			changed := g.Superstep() == 0
			for msgIt.Next() {
				if m := msgIt.Message().(intMsg); m.value > cur {
					cur = m.value
					changed = true
				}
			}
			v.SetValue(cur)
			if changed {
				return g.BroadcastToNeighbors(v, intMsg{value: cur})
			}
			v.Freeze()
			return nil
		},
	})
	c.Assert(err, gc.IsNil)
	defer func() { c.Assert(g.Close(), gc.IsNil) }()

	// A ring of 5 vertices.
	for i := 0; i < 5; i++ {
		g.AddVertex(fmt.Sprint(i), i*10)
	}
	for i := 0; i < 5; i++ {
		c.Assert(g.AddEdge(fmt.Sprint(i), fmt.Sprint((i+1)%5), nil), gc.IsNil)
	}

	ex := NewExecutor(g, ExecutorCallbacks{
		PostStepKeepRunning: func(_ context.Context, _ *Graph, activeInStep int) (bool, error) {
			return activeInStep != 0, nil
		},
	})
	c.Assert(ex.RunToCompletion(context.TODO()), gc.IsNil)

	for id, v := range g.Vertices() {
		c.Assert(v.Value(), gc.Equals, 40, gc.Commentf("vertex %s", id))
	}
}

func (s *GraphTestSuite) TestRunStepsHonorsLimit(c *gc.C) {
	var invocations int
	g, err := NewGraph(GraphConfig{
		ComputeFn: func(*Graph, *Vertex, message.Iterator) error {
			invocations++
			return nil
		},
	})
	c.Assert(err, gc.IsNil)
	defer func() { c.Assert(g.Close(), gc.IsNil) }()

	g.AddVertex("a", nil)
	ex := NewExecutor(g, ExecutorCallbacks{})
	c.Assert(ex.RunSteps(context.TODO(), 3), gc.IsNil)
	c.Assert(invocations, gc.Equals, 3)
	c.Assert(ex.Superstep(), gc.Equals, 3)
}

func (s *GraphTestSuite) TestComputeErrorIsPropagated(c *gc.C) {
	errBoom := xerrors.New("boom")
	g, err := NewGraph(GraphConfig{
		ComputeFn: func(*Graph, *Vertex, message.Iterator) error { return errBoom },
	})
	c.Assert(err, gc.IsNil)
	defer func() { c.Assert(g.Close(), gc.IsNil) }()

	g.AddVertex("a", nil)
	err = NewExecutor(g, ExecutorCallbacks{}).RunToCompletion(context.TODO())
	c.Assert(xerrors.Is(err, errBoom), gc.Equals, true)
}

func (s *GraphTestSuite) TestContextCancellation(c *gc.C) {
	g, err := NewGraph(GraphConfig{
		ComputeFn: func(*Graph, *Vertex, message.Iterator) error { return nil },
	})
	c.Assert(err, gc.IsNil)
	defer func() { c.Assert(g.Close(), gc.IsNil) }()

	ctx, cancelFn := context.WithCancel(context.TODO())
	cancelFn()
	err = NewExecutor(g, ExecutorCallbacks{}).RunToCompletion(ctx)
	c.Assert(xerrors.Is(err, context.Canceled), gc.Equals, true)
}

func (s *GraphTestSuite) TestSendToUnknownVertex(c *gc.C) {
	g, err := NewGraph(GraphConfig{
		ComputeFn: func(g *Graph, v *Vertex, _ message.Iterator) error {
			return g.SendMessage("missing", intMsg{})
		},
	})
	c.Assert(err, gc.IsNil)
	defer func() { c.Assert(g.Close(), gc.IsNil) }()

	g.AddVertex("a", nil)
	err = NewExecutor(g, ExecutorCallbacks{}).RunSteps(context.TODO(), 1)
	c.Assert(xerrors.Is(err, ErrInvalidMessageDestination), gc.Equals, true)

	c.Assert(g.AddEdge("missing", "a", nil), gc.ErrorMatches, ".*source vertex is not part of the graph")
}

func (s *GraphTestSuite) TestConfigValidation(c *gc.C) {
	_, err := NewGraph(GraphConfig{ComputeWorkers: -1})
	c.Assert(err, gc.ErrorMatches, "(?s).*invalid value for ComputeWorkers.*compute function not specified.*")
}
