package graph

import (
	"fmt"
	"math/big"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/xerrors"
	gc "gopkg.in/check.v1"
)

// SuiteBase defines a re-usable set of graph-related tests that can
// be executed against any type that implements graph.Graph.
type SuiteBase struct {
	g Graph
}

// SetGraph configures the test-suite to run all tests against g.
func (s *SuiteBase) SetGraph(g Graph) {
	s.g = g
}

// TestSetOutLinks verifies the out-link upsert logic.
func (s *SuiteBase) TestSetOutLinks(c *gc.C) {
	err := s.g.SetOutLinks("https://example.com", []string{"https://a.example", "https://b.example"})
	c.Assert(err, gc.IsNil)

	created, err := s.g.FindPage("https://example.com")
	c.Assert(err, gc.IsNil)
	c.Assert(created.ID, gc.Not(gc.Equals), uuid.Nil, gc.Commentf("expected an ID to be assigned to the new page"))
	c.Assert(created.URL, gc.Equals, "https://example.com")
	c.Assert(created.Rank, gc.Equals, 0.0, gc.Commentf("new pages must start with an uncomputed rank"))
	c.Assert(created.OutLinks, gc.DeepEquals, []string{"https://a.example", "https://b.example"})
	c.Assert(created.InLinks, gc.HasLen, 0)

	// Replace the out-links of an existing page that already has a rank.
	c.Assert(s.g.UpdateRank("https://example.com", 0.42), gc.IsNil)
	err = s.g.SetOutLinks("https://example.com", []string{"https://c.example"})
	c.Assert(err, gc.IsNil)

	updated, err := s.g.FindPage("https://example.com")
	c.Assert(err, gc.IsNil)
	c.Assert(updated.ID, gc.Equals, created.ID, gc.Commentf("page ID changed while upserting"))
	c.Assert(updated.Rank, gc.Equals, 0.42, gc.Commentf("rank was reset by an out-link update"))
	c.Assert(updated.OutLinks, gc.DeepEquals, []string{"https://c.example"})

	// Clearing the out-links leaves an empty list behind.
	c.Assert(s.g.SetOutLinks("https://example.com", nil), gc.IsNil)
	cleared, err := s.g.FindPage("https://example.com")
	c.Assert(err, gc.IsNil)
	c.Assert(cleared.OutLinks, gc.HasLen, 0)
}

// TestAddInLink verifies that in-links are accumulated with set semantics.
func (s *SuiteBase) TestAddInLink(c *gc.C) {
	c.Assert(s.g.AddInLink("https://target.example", "https://a.example"), gc.IsNil)

	created, err := s.g.FindPage("https://target.example")
	c.Assert(err, gc.IsNil)
	c.Assert(created.ID, gc.Not(gc.Equals), uuid.Nil, gc.Commentf("expected an ID to be assigned to the new page"))
	c.Assert(created.Rank, gc.Equals, 0.0)
	c.Assert(created.OutLinks, gc.HasLen, 0)
	c.Assert(created.InLinks, gc.DeepEquals, []string{"https://a.example"})

	// Adding the same referrer twice must not grow the set.
	c.Assert(s.g.AddInLink("https://target.example", "https://a.example"), gc.IsNil)
	c.Assert(s.g.AddInLink("https://target.example", "https://b.example"), gc.IsNil)

	updated, err := s.g.FindPage("https://target.example")
	c.Assert(err, gc.IsNil)
	c.Assert(updated.ID, gc.Equals, created.ID)
	got := append([]string(nil), updated.InLinks...)
	sort.Strings(got)
	c.Assert(got, gc.DeepEquals, []string{"https://a.example", "https://b.example"})
}

// TestAddInLinkKeepsExistingFields verifies that recording a referrer does
// not clobber the out-links or rank of an existing page.
func (s *SuiteBase) TestAddInLinkKeepsExistingFields(c *gc.C) {
	c.Assert(s.g.SetOutLinks("https://target.example", []string{"https://x.example"}), gc.IsNil)
	c.Assert(s.g.UpdateRank("https://target.example", 0.3), gc.IsNil)
	c.Assert(s.g.AddInLink("https://target.example", "https://a.example"), gc.IsNil)

	page, err := s.g.FindPage("https://target.example")
	c.Assert(err, gc.IsNil)
	c.Assert(page.Rank, gc.Equals, 0.3)
	c.Assert(page.OutLinks, gc.DeepEquals, []string{"https://x.example"})
	c.Assert(page.InLinks, gc.DeepEquals, []string{"https://a.example"})
}

// TestFindPage verifies the page lookup logic.
func (s *SuiteBase) TestFindPage(c *gc.C) {
	c.Assert(s.g.SetOutLinks("https://example.com", []string{"https://a.example"}), gc.IsNil)

	page, err := s.g.FindPage("https://example.com")
	c.Assert(err, gc.IsNil)
	c.Assert(page.URL, gc.Equals, "https://example.com")

	// Mutating the returned page must not affect the stored copy.
	page.OutLinks[0] = "mutated"
	page.Rank = 99
	other, err := s.g.FindPage("https://example.com")
	c.Assert(err, gc.IsNil)
	c.Assert(other.OutLinks, gc.DeepEquals, []string{"https://a.example"})
	c.Assert(other.Rank, gc.Equals, 0.0)

	// Lookup page by unknown URL
	_, err = s.g.FindPage("https://unknown.example")
	c.Assert(xerrors.Is(err, ErrNotFound), gc.Equals, true)
}

// TestUpdateRank verifies the rank write-back logic.
func (s *SuiteBase) TestUpdateRank(c *gc.C) {
	c.Assert(s.g.AddInLink("https://example.com", "https://a.example"), gc.IsNil)

	c.Assert(s.g.UpdateRank("https://example.com", 0.25), gc.IsNil)
	page, err := s.g.FindPage("https://example.com")
	c.Assert(err, gc.IsNil)
	c.Assert(page.Rank, gc.Equals, 0.25)

	// Writing the same value twice leaves the page unchanged.
	c.Assert(s.g.UpdateRank("https://example.com", 0.25), gc.IsNil)
	again, err := s.g.FindPage("https://example.com")
	c.Assert(err, gc.IsNil)
	c.Assert(again, gc.DeepEquals, page)

	err = s.g.UpdateRank("https://unknown.example", 0.5)
	c.Assert(xerrors.Is(err, ErrNotFound), gc.Equals, true)
}

// TestConcurrentAddInLink verifies that concurrent referrer updates for the
// same page neither lose entries nor introduce duplicates.
func (s *SuiteBase) TestConcurrentAddInLink(c *gc.C) {
	var (
		wg           sync.WaitGroup
		numWriters   = 10
		numReferrers = 20
	)

	wg.Add(numWriters)
	for i := 0; i < numWriters; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < numReferrers; j++ {
				c.Check(s.g.AddInLink("https://target.example", fmt.Sprintf("https://%d.example", j)), gc.IsNil)
			}
		}()
	}

	doneCh := make(chan struct{})
	go func() {
		wg.Wait()
		close(doneCh)
	}()

	select {
	case <-doneCh:
	// test completed successfully
	case <-time.After(10 * time.Second):
		c.Fatal("timed out waiting for test to complete")
	}

	page, err := s.g.FindPage("https://target.example")
	c.Assert(err, gc.IsNil)
	c.Assert(page.InLinks, gc.HasLen, numReferrers)
}

// TestPartitionedPageIterators verifies that the graph partitioning logic
// works as expected even when partitions contain an uneven number of items.
func (s *SuiteBase) TestPartitionedPageIterators(c *gc.C) {
	numPages := 100
	numPartitions := 10
	for i := 0; i < numPages; i++ {
		c.Assert(s.g.SetOutLinks(fmt.Sprint(i), nil), gc.IsNil)
	}

	// Check with both odd and even partition counts to check for rounding-related bugs.
	c.Assert(s.iteratePartitionedPages(c, numPartitions), gc.Equals, numPages)
	c.Assert(s.iteratePartitionedPages(c, numPartitions+1), gc.Equals, numPages)
}

func (s *SuiteBase) iteratePartitionedPages(c *gc.C, numPartitions int) int {
	seen := make(map[string]bool)
	for partition := 0; partition < numPartitions; partition++ {
		from, to := s.partitionRange(c, partition, numPartitions)
		it, err := s.g.Pages(from, to)
		c.Assert(err, gc.IsNil)

		for it.Next() {
			page := it.Page()
			pageID := page.ID.String()
			c.Assert(seen[pageID], gc.Equals, false, gc.Commentf("iterator returned same page in different partitions"))
			seen[pageID] = true
		}

		c.Assert(it.Error(), gc.IsNil)
		c.Assert(it.Close(), gc.IsNil)
	}

	return len(seen)
}

func (s *SuiteBase) partitionRange(c *gc.C, partition, numPartitions int) (from, to uuid.UUID) {
	if partition < 0 || partition >= numPartitions {
		c.Fatal("invalid partition")
	}

	var (
		minUUID = uuid.Nil
		maxUUID = uuid.MustParse("ffffffff-ffff-ffff-ffff-ffffffffffff")
		err     error
	)

	// Calculate the size of each partition as: (2^128 / numPartitions)
	tokenRange := big.NewInt(0)
	partSize := big.NewInt(0)
	partSize.SetBytes(maxUUID[:])
	partSize = partSize.Div(partSize, big.NewInt(int64(numPartitions)))

	if partition == 0 {
		from = minUUID
	} else {
		tokenRange.Mul(partSize, big.NewInt(int64(partition)))
		from, err = uuid.FromBytes(tokenRange.FillBytes(make([]byte, 16)))
		c.Assert(err, gc.IsNil)
	}

	if partition == numPartitions-1 {
		to = maxUUID
	} else {
		tokenRange.Mul(partSize, big.NewInt(int64(partition+1)))
		to, err = uuid.FromBytes(tokenRange.FillBytes(make([]byte, 16)))
		c.Assert(err, gc.IsNil)
	}

	return from, to
}
