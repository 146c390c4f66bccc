package pagerank

// Adjacency is the in-memory link model of a neighborhood: the target page
// together with the pages that link to it. It is built for a single rank
// computation and discarded afterwards.
//
// The in-links of the target are exactly its recorded referrers. The in-links
// of every other node are reconstructed from the referrers' out-links and
// may therefore be a subset of what the store knows about that node.
type Adjacency struct {
	nodes    []string
	outLinks map[string][]string
	inLinks  map[string][]string
}

// BuildAdjacency assembles the adjacency model for target from its referrers
// and the out-links of each referrer. Referrers missing from
// referrerOutLinks are treated as pages without out-links.
func BuildAdjacency(target string, referrers []string, referrerOutLinks map[string][]string) *Adjacency {
	a := &Adjacency{
		outLinks: make(map[string][]string),
		inLinks:  make(map[string][]string),
	}

	// Referrers may contain duplicates or even the target itself.
	uniqueReferrers := make([]string, 0, len(referrers))
	seenRef := make(map[string]struct{}, len(referrers))
	a.nodes = append(a.nodes, target)
	for _, ref := range referrers {
		if _, dup := seenRef[ref]; dup {
			continue
		}
		seenRef[ref] = struct{}{}
		uniqueReferrers = append(uniqueReferrers, ref)
		if ref != target {
			a.nodes = append(a.nodes, ref)
		}
	}

	for _, node := range a.nodes {
		a.outLinks[node] = []string{}
		a.inLinks[node] = []string{}
	}

	for _, ref := range uniqueReferrers {
		out := referrerOutLinks[ref]
		if out == nil {
			out = []string{}
		}
		a.outLinks[ref] = out
		for _, dst := range out {
			if _, inModel := a.inLinks[dst]; inModel {
				a.inLinks[dst] = append(a.inLinks[dst], ref)
			}
		}
	}

	// The target hears from every referrer, even one whose out-links no
	// longer mention it.
	a.inLinks[target] = uniqueReferrers
	return a
}

// Nodes returns the nodes of the model. The target is always first.
func (a *Adjacency) Nodes() []string { return a.nodes }

// Size returns the number of nodes in the model.
func (a *Adjacency) Size() int { return len(a.nodes) }

// Contains returns true if node is part of the model.
func (a *Adjacency) Contains(node string) bool {
	_, exists := a.outLinks[node]
	return exists
}

// OutLinks returns the out-links of node.
func (a *Adjacency) OutLinks(node string) []string { return a.outLinks[node] }

// InLinks returns the in-links of node within the model.
func (a *Adjacency) InLinks(node string) []string { return a.inLinks[node] }
