package memory

import "Page_Rank/pagegraph/graph"

// pageIterator is a graph.PageIterator implementation for the in-memory graph.
type pageIterator struct {
	s *InMemoryGraph

	pages    []*graph.Page
	curIndex int
}

// Next implements graph.PageIterator.
func (i *pageIterator) Next() bool {
	if i.curIndex >= len(i.pages) {
		return false
	}
	i.curIndex++
	return true
}

// Page implements graph.PageIterator.
func (i *pageIterator) Page() *graph.Page {
	// The page pointer contents may be overwritten by a graph update; to
	// avoid data-races we acquire the read lock first and clone the page.
	i.s.mu.RLock()
	page := copyPage(i.pages[i.curIndex-1])
	i.s.mu.RUnlock()
	return page
}

// Error implements graph.PageIterator.
func (i *pageIterator) Error() error {
	return nil
}

// Close implements graph.PageIterator.
func (i *pageIterator) Close() error {
	return nil
}
