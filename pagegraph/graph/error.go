package graph

import "golang.org/x/xerrors"

var (
	// ErrNotFound is returned when a page lookup fails
	ErrNotFound = xerrors.New("not found")
)
