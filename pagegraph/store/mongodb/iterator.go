package mongodb

import (
	"context"

	"Page_Rank/pagegraph/graph"

	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/xerrors"
)

// pageIterator is a graph.PageIterator implementation backed by a mongo cursor.
type pageIterator struct {
	ctx         context.Context
	cur         *mongo.Cursor
	lastErr     error
	latchedPage *graph.Page
}

// Next implements graph.PageIterator.
func (i *pageIterator) Next() bool {
	if i.lastErr != nil || !i.cur.Next(i.ctx) {
		return false
	}

	var doc pageDocument
	if i.lastErr = i.cur.Decode(&doc); i.lastErr != nil {
		return false
	}
	i.latchedPage = doc.toPage()
	return true
}

// Error implements graph.PageIterator.
func (i *pageIterator) Error() error {
	if i.lastErr != nil {
		return i.lastErr
	}
	return i.cur.Err()
}

// Close implements graph.PageIterator.
func (i *pageIterator) Close() error {
	if err := i.cur.Close(i.ctx); err != nil {
		return xerrors.Errorf("page iterator: %w", err)
	}
	return nil
}

// Page implements graph.PageIterator.
func (i *pageIterator) Page() *graph.Page {
	return i.latchedPage
}
