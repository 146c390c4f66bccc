package graph

import "github.com/google/uuid"

type Iterator interface {
	// Next advances the iterator. If no more items are available or an
	// error occurs, calls to Next() returns false.
	Next() bool

	// Error returns the last error encountered by the iterator
	Error() error

	// Close releases any resources associated with an iterator.
	Close() error
}

// PageIterator is implemented by objects that can iterate the graph pages.
type PageIterator interface {
	Iterator

	// Page returns the currently fetched page object
	Page() *Page
}

// Page is a node of the link graph. A zero Rank means that the rank of the
// page has not been computed yet.
type Page struct {
	ID       uuid.UUID
	URL      string
	Rank     float64
	OutLinks []string
	InLinks  []string
}

// Graph is implemented by stores that persist the link graph.
type Graph interface {
	// FindPage looks up a page by its URL.
	FindPage(url string) (*Page, error)

	// SetOutLinks replaces the outgoing links of a page. If the page does
	// not exist it is created with an uncomputed rank.
	SetOutLinks(url string, outLinks []string) error

	// AddInLink adds referrer to the set of pages linking to url. If the
	// page does not exist it is created with an uncomputed rank and no
	// outgoing links.
	AddInLink(url, referrer string) error

	// UpdateRank overwrites the rank of an existing page.
	UpdateRank(url string, rank float64) error

	// Pages returns an iterator for the pages whose IDs are in the
	// [fromID, toID) range.
	Pages(fromID, toID uuid.UUID) (PageIterator, error)
}
