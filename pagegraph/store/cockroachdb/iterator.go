package cockroachdb

import (
	"database/sql"

	"Page_Rank/pagegraph/graph"

	"github.com/lib/pq"
	"golang.org/x/xerrors"
)

// pageIterator is a graph.PageIterator implementation for the cdb graph.
type pageIterator struct {
	rows        *sql.Rows
	lastErr     error
	latchedPage *graph.Page
}

// Next implements graph.PageIterator.
func (i *pageIterator) Next() bool {
	if i.lastErr != nil || !i.rows.Next() {
		return false
	}

	var outLinks, inLinks pq.StringArray
	p := new(graph.Page)
	i.lastErr = i.rows.Scan(&p.ID, &p.URL, &p.Rank, &outLinks, &inLinks)
	if i.lastErr != nil {
		return false
	}
	p.OutLinks = normalize(outLinks)
	p.InLinks = normalize(inLinks)
	i.latchedPage = p
	return true
}

// Error implements graph.PageIterator.
func (i *pageIterator) Error() error {
	if i.lastErr != nil {
		return i.lastErr
	}
	return i.rows.Err()
}

// Close implements graph.PageIterator.
func (i *pageIterator) Close() error {
	err := i.rows.Close()
	if err != nil {
		return xerrors.Errorf("page iterator: %w", err)
	}
	return nil
}

// Page implements graph.PageIterator.
func (i *pageIterator) Page() *graph.Page {
	return i.latchedPage
}
