package memory

import (
	"sync"

	"Page_Rank/pagegraph/graph"

	"github.com/google/uuid"
	"golang.org/x/xerrors"
)

// Compile-time check for ensuring InMemoryGraph implements Graph.
var _ graph.Graph = (*InMemoryGraph)(nil)

// InMemoryGraph implements an in-memory link graph that can be concurrently
// accessed by multiple clients.
type InMemoryGraph struct {
	mu sync.RWMutex

	pages map[uuid.UUID]*graph.Page

	pageURLIndex map[string]*graph.Page
	inLinkIndex  map[uuid.UUID]map[string]struct{}
}

// NewInMemoryGraph creates a new in-memory link graph.
func NewInMemoryGraph() *InMemoryGraph {
	return &InMemoryGraph{
		pages:        make(map[uuid.UUID]*graph.Page),
		pageURLIndex: make(map[string]*graph.Page),
		inLinkIndex:  make(map[uuid.UUID]map[string]struct{}),
	}
}

// FindPage implements graph.Graph.
func (s *InMemoryGraph) FindPage(url string) (*graph.Page, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	page := s.pageURLIndex[url]
	if page == nil {
		return nil, xerrors.Errorf("find page: %w", graph.ErrNotFound)
	}
	return copyPage(page), nil
}

// SetOutLinks implements graph.Graph.
func (s *InMemoryGraph) SetOutLinks(url string, outLinks []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	page := s.upsertPage(url)
	page.OutLinks = append(make([]string, 0, len(outLinks)), outLinks...)
	return nil
}

// AddInLink implements graph.Graph.
func (s *InMemoryGraph) AddInLink(url, referrer string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	page := s.upsertPage(url)
	set := s.inLinkIndex[page.ID]
	if _, exists := set[referrer]; exists {
		return nil
	}
	set[referrer] = struct{}{}
	page.InLinks = append(page.InLinks, referrer)
	return nil
}

// UpdateRank implements graph.Graph.
func (s *InMemoryGraph) UpdateRank(url string, rank float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	page := s.pageURLIndex[url]
	if page == nil {
		return xerrors.Errorf("update rank: %w", graph.ErrNotFound)
	}
	page.Rank = rank
	return nil
}

// Pages implements graph.Graph.
func (s *InMemoryGraph) Pages(fromID, toID uuid.UUID) (graph.PageIterator, error) {
	from, to := fromID.String(), toID.String()

	s.mu.RLock()
	var list []*graph.Page
	for pageID, page := range s.pages {
		if id := pageID.String(); id >= from && id < to {
			list = append(list, page)
		}
	}
	s.mu.RUnlock()

	return &pageIterator{s: s, pages: list}, nil
}

// upsertPage returns the page for url, inserting a page with the default
// field values if it does not exist yet. Callers must hold the write lock.
func (s *InMemoryGraph) upsertPage(url string) *graph.Page {
	if existing := s.pageURLIndex[url]; existing != nil {
		return existing
	}

	page := &graph.Page{
		URL:      url,
		OutLinks: []string{},
		InLinks:  []string{},
	}
	for {
		page.ID = uuid.New()
		if s.pages[page.ID] == nil {
			break
		}
	}
	s.pages[page.ID] = page
	s.pageURLIndex[url] = page
	s.inLinkIndex[page.ID] = make(map[string]struct{})
	return page
}

func copyPage(page *graph.Page) *graph.Page {
	pCopy := new(graph.Page)
	*pCopy = *page
	pCopy.OutLinks = append(make([]string, 0, len(page.OutLinks)), page.OutLinks...)
	pCopy.InLinks = append(make([]string, 0, len(page.InLinks)), page.InLinks...)
	return pCopy
}
