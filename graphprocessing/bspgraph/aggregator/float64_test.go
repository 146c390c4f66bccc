package aggregator

import (
	"sync"
	"testing"

	"Page_Rank/graphprocessing/bspgraph"

	gc "gopkg.in/check.v1"
)

var _ = gc.Suite(new(AggregatorTestSuite))

var (
	_ bspgraph.Aggregator = (*Float64Accumulator)(nil)
	_ bspgraph.Aggregator = (*Float64MaxAggregator)(nil)
)

func Test(t *testing.T) { gc.TestingT(t) }

type AggregatorTestSuite struct{}

func (s *AggregatorTestSuite) TestFloat64Accumulator(c *gc.C) {
	numValues := 100
	values := make([]interface{}, numValues)
	var exp float64
	for i := 0; i < numValues; i++ {
		values[i] = float64(i)
		exp += float64(i)
	}

	acc := new(Float64Accumulator)
	acc.Set(1.0)
	s.aggregateConcurrently(acc, values)

	c.Assert(acc.Get(), gc.Equals, 1.0+exp)
	c.Assert(acc.Delta(), gc.Equals, exp)
	c.Assert(acc.Delta(), gc.Equals, 0.0, gc.Commentf("delta should be reset after each call"))
}

func (s *AggregatorTestSuite) TestFloat64MaxAggregator(c *gc.C) {
	values := []interface{}{0.25, 0.5, 0.125, 0.0, 0.375}

	max := new(Float64MaxAggregator)
	max.Set(0.0)
	s.aggregateConcurrently(max, values)

	c.Assert(max.Get(), gc.Equals, 0.5)
	c.Assert(max.Delta(), gc.Equals, 0.5)

	max.Set(0.0)
	c.Assert(max.Get(), gc.Equals, 0.0)
	c.Assert(max.Delta(), gc.Equals, 0.0)
}

func (s *AggregatorTestSuite) aggregateConcurrently(aggr bspgraph.Aggregator, values []interface{}) {
	var wg sync.WaitGroup
	wg.Add(len(values))
	for _, v := range values {
		go func(v interface{}) {
			defer wg.Done()
			aggr.Aggregate(v)
		}(v)
	}
	wg.Wait()
}
