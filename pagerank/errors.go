package pagerank

import (
	"fmt"

	"golang.org/x/xerrors"
)

// ErrPageNotFound is returned when a rank is requested for a page that is
// not part of the link graph. It is distinct from a page whose rank has not
// been computed yet.
var ErrPageNotFound = xerrors.New("page not found")

// StoreError wraps a failure reported by the graph store.
type StoreError struct {
	// Op is the store operation that failed.
	Op string

	// URL is the page the operation was applied to.
	URL string

	// Err is the underlying store error.
	Err error
}

// Error implements error.
func (e *StoreError) Error() string {
	return fmt.Sprintf("store %s %q: %v", e.Op, e.URL, e.Err)
}

// Unwrap returns the underlying store error.
func (e *StoreError) Unwrap() error { return e.Err }

func storeError(op, url string, err error) error {
	return &StoreError{Op: op, URL: url, Err: err}
}
