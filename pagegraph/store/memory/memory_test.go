package memory

import (
	"testing"

	"Page_Rank/pagegraph/graph"

	gc "gopkg.in/check.v1"
)

var _ = gc.Suite(new(InMemoryGraphTestSuite))

// Register our test-suite with go test.
func Test(t *testing.T) { gc.TestingT(t) }

type InMemoryGraphTestSuite struct {
	graph.SuiteBase
}

func (s *InMemoryGraphTestSuite) SetUpTest(c *gc.C) {
	s.SetGraph(NewInMemoryGraph())
}
