package topology

// Digraph is an adjacency index from a switch to its outgoing links.
// It is read-only after NewDigraph returns and is safe for concurrent reads.
type Digraph struct {
	adj   map[SwitchID][]Link
	size  int
	nodes []SwitchID // every id seen on either end of a link, sorted
}

// NewDigraph indexes links by source switch, keeping the supplied order
// within each source. No link is rejected; self-loops and parallel links
// are indexed like any other link.
//
// Complexity: O(E log V) for the sorted vertex list, O(E) for the index.
func NewDigraph(links []Link) *Digraph {
	g := &Digraph{
		adj:  make(map[SwitchID][]Link),
		size: len(links),
	}
	seen := make(map[SwitchID]struct{})
	for _, l := range links {
		g.adj[l.Src] = append(g.adj[l.Src], l)
		if _, ok := seen[l.Src]; !ok {
			seen[l.Src] = struct{}{}
			g.nodes = append(g.nodes, l.Src)
		}
		if _, ok := seen[l.Dst]; !ok {
			seen[l.Dst] = struct{}{}
			g.nodes = append(g.nodes, l.Dst)
		}
	}
	SortIDs(g.nodes)

	return g
}

// Adj returns the outgoing links of v in supply order.
// An unknown v yields an empty slice. The caller must not modify the result.
//
// Complexity: O(1)
func (g *Digraph) Adj(v SwitchID) []Link {
	return g.adj[v]
}

// OutDegree returns the number of links leaving v.
func (g *Digraph) OutDegree(v SwitchID) int {
	return len(g.adj[v])
}

// Order returns the number of distinct switches that have at least one outgoing link.
func (g *Digraph) Order() int {
	return len(g.adj)
}

// Size returns the number of indexed links.
func (g *Digraph) Size() int {
	return g.size
}

// Vertices returns every switch referenced by a link, as either endpoint,
// sorted ascending. The returned slice is a copy.
func (g *Digraph) Vertices() []SwitchID {
	out := make([]SwitchID, len(g.nodes))
	copy(out, g.nodes)

	return out
}
