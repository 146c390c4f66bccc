package pagerank

import (
	gc "gopkg.in/check.v1"
)

var _ = gc.Suite(new(AdjacencyTestSuite))

type AdjacencyTestSuite struct{}

func (s *AdjacencyTestSuite) TestNodeSet(c *gc.C) {
	model := BuildAdjacency("T", []string{"R1", "R2", "R1"}, map[string][]string{
		"R1": {"T"},
		"R2": {"T", "X"},
	})

	c.Assert(model.Nodes(), gc.DeepEquals, []string{"T", "R1", "R2"})
	c.Assert(model.Size(), gc.Equals, 3)
	c.Assert(model.Contains("X"), gc.Equals, false, gc.Commentf("out-link destinations are not part of the neighborhood"))
	c.Assert(model.InLinks("T"), gc.DeepEquals, []string{"R1", "R2"})
	c.Assert(model.OutLinks("R2"), gc.DeepEquals, []string{"T", "X"})
}

func (s *AdjacencyTestSuite) TestEveryNodeHasEntries(c *gc.C) {
	model := BuildAdjacency("T", []string{"R1", "R2"}, map[string][]string{
		"R1": {"T"},
	})

	for _, node := range model.Nodes() {
		c.Assert(model.OutLinks(node), gc.NotNil, gc.Commentf("node %s", node))
		c.Assert(model.InLinks(node), gc.NotNil, gc.Commentf("node %s", node))
	}
	c.Assert(model.OutLinks("R2"), gc.HasLen, 0, gc.Commentf("a missing referrer record counts as having no out-links"))
	c.Assert(model.OutLinks("T"), gc.HasLen, 0)
}

func (s *AdjacencyTestSuite) TestDerivedInLinks(c *gc.C) {
	model := BuildAdjacency("T", []string{"R1", "R2"}, map[string][]string{
		"R1": {"T", "R2"},
		"R2": {"T", "R1", "R2"},
	})

	c.Assert(model.InLinks("R1"), gc.DeepEquals, []string{"R2"})
	c.Assert(model.InLinks("R2"), gc.DeepEquals, []string{"R1", "R2"})
}

func (s *AdjacencyTestSuite) TestTargetHearsEveryReferrer(c *gc.C) {
	// R2 no longer links to T but is still recorded as a referrer.
	model := BuildAdjacency("T", []string{"R1", "R2"}, map[string][]string{
		"R1": {"T"},
		"R2": {"Y"},
	})

	c.Assert(model.InLinks("T"), gc.DeepEquals, []string{"R1", "R2"})
}

func (s *AdjacencyTestSuite) TestSelfReferenceCollapses(c *gc.C) {
	model := BuildAdjacency("T", []string{"T", "T"}, map[string][]string{
		"T": {"T"},
	})

	c.Assert(model.Size(), gc.Equals, 1)
	c.Assert(model.InLinks("T"), gc.DeepEquals, []string{"T"})
}
