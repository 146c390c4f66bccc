package cockroachdb

import (
	"database/sql"

	"Page_Rank/pagegraph/graph"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"golang.org/x/xerrors"
)

var (
	findPageQuery = `SELECT id, rank, out_links, in_links FROM pages WHERE url=$1`

	setOutLinksQuery = `INSERT INTO pages (url, out_links) VALUES ($1, $2)
ON CONFLICT (url) DO UPDATE SET out_links = EXCLUDED.out_links`

	addInLinkQuery = `INSERT INTO pages (url, in_links) VALUES ($1, ARRAY[$2::TEXT])
ON CONFLICT (url) DO UPDATE SET in_links = CASE
	WHEN $2::TEXT = ANY(pages.in_links) THEN pages.in_links
	ELSE array_append(pages.in_links, $2::TEXT)
END`

	updateRankQuery = `UPDATE pages SET rank=$2 WHERE url=$1`

	pagesInPartitionQuery = `SELECT id, url, rank, out_links, in_links FROM pages WHERE id >= $1 AND id < $2`
)

// Compile-time check for ensuring CockroachDBGraph implements Graph.
var _ graph.Graph = (*CockroachDBGraph)(nil)

// CockroachDBGraph implements a graph that persists its pages to a
// CockroachDB (or any PostgreSQL-compatible) instance.
type CockroachDBGraph struct {
	db *sql.DB
}

// NewCockroachDBGraph returns a CockroachDBGraph instance that connects to
// the cockroachdb instance specified by dsn.
func NewCockroachDBGraph(dsn string) (*CockroachDBGraph, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, xerrors.Errorf("open db: %w", err)
	}
	if err = db.Ping(); err != nil {
		_ = db.Close()
		return nil, xerrors.Errorf("ping db: %w", err)
	}
	return &CockroachDBGraph{db: db}, nil
}

// Close terminates the connection to the backing cockroachdb instance.
func (c *CockroachDBGraph) Close() error {
	return c.db.Close()
}

// FindPage implements graph.Graph.
func (c *CockroachDBGraph) FindPage(url string) (*graph.Page, error) {
	row := c.db.QueryRow(findPageQuery, url)
	page := &graph.Page{URL: url}

	var outLinks, inLinks pq.StringArray
	if err := row.Scan(&page.ID, &page.Rank, &outLinks, &inLinks); err != nil {
		if err == sql.ErrNoRows {
			return nil, xerrors.Errorf("find page: %w", graph.ErrNotFound)
		}
		return nil, xerrors.Errorf("find page: %w", err)
	}
	page.OutLinks = normalize(outLinks)
	page.InLinks = normalize(inLinks)
	return page, nil
}

// SetOutLinks implements graph.Graph.
func (c *CockroachDBGraph) SetOutLinks(url string, outLinks []string) error {
	if _, err := c.db.Exec(setOutLinksQuery, url, pq.Array(normalize(outLinks))); err != nil {
		return xerrors.Errorf("set out-links: %w", err)
	}
	return nil
}

// AddInLink implements graph.Graph.
func (c *CockroachDBGraph) AddInLink(url, referrer string) error {
	if _, err := c.db.Exec(addInLinkQuery, url, referrer); err != nil {
		if isSerializationFailure(err) {
			// Concurrent upserts of the same row may be aborted by the
			// database; the set semantics make the operation safe to replay.
			if _, err = c.db.Exec(addInLinkQuery, url, referrer); err == nil {
				return nil
			}
		}
		return xerrors.Errorf("add in-link: %w", err)
	}
	return nil
}

// UpdateRank implements graph.Graph.
func (c *CockroachDBGraph) UpdateRank(url string, rank float64) error {
	res, err := c.db.Exec(updateRankQuery, url, rank)
	if err != nil {
		return xerrors.Errorf("update rank: %w", err)
	}
	if affected, err := res.RowsAffected(); err != nil {
		return xerrors.Errorf("update rank: %w", err)
	} else if affected == 0 {
		return xerrors.Errorf("update rank: %w", graph.ErrNotFound)
	}
	return nil
}

// Pages implements graph.Graph.
func (c *CockroachDBGraph) Pages(fromID, toID uuid.UUID) (graph.PageIterator, error) {
	rows, err := c.db.Query(pagesInPartitionQuery, fromID, toID)
	if err != nil {
		return nil, xerrors.Errorf("pages: %w", err)
	}
	return &pageIterator{rows: rows}, nil
}

func isSerializationFailure(err error) bool {
	pqErr, valid := err.(*pq.Error)
	if !valid {
		return false
	}
	return pqErr.Code.Name() == "serialization_failure"
}

func normalize(list []string) []string {
	if list == nil {
		return []string{}
	}
	return list
}
