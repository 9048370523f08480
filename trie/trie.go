package trie

import (
	"sort"

	"github.com/skylath/skylath/core"
)

// node is one trie position within a single origin's destination index.
type node struct {
	children map[byte]*node
	// terminal holds the edges whose destination is exactly the string
	// spelled from the root to this node (parallel carriers stack up).
	terminal []core.Edge
}

// origin bundles the two per-origin structures: the flat neighbor slice
// satisfying the base contract and the trie root indexing destinations.
type origin struct {
	flat []core.Edge
	root *node
}

// Graph is the route-partitioned trie representation.
type Graph struct {
	origins   map[string]*origin // every known node has an entry
	edgeCount int
}

var (
	_ core.Mutable       = (*Graph)(nil)
	_ core.PrefixQuerier = (*Graph)(nil)
)

// New returns an empty route-partitioned trie graph.
func New() *Graph {
	return &Graph{origins: make(map[string]*origin)}
}

// AddNode registers id with an empty trie. Idempotent.
func (g *Graph) AddNode(id string) error {
	_, err := g.ensure(id)

	return err
}

// AddEdge inserts e into origin's flat slice and threads its
// destination through the trie. Both endpoints are created implicitly.
// Complexity: O(|destination|) for the trie walk.
func (g *Graph) AddEdge(from string, e core.Edge) error {
	if err := core.ValidateWeight(e.Weight); err != nil {
		return err
	}
	o, err := g.ensure(from)
	if err != nil {
		return err
	}
	e.To = core.CanonicalID(e.To)
	if _, err = g.ensure(e.To); err != nil {
		return err
	}

	o.flat = append(o.flat, e)

	cur := o.root
	for i := 0; i < len(e.To); i++ {
		c := e.To[i]
		next, ok := cur.children[c]
		if !ok {
			next = &node{children: make(map[byte]*node)}
			cur.children[c] = next
		}
		cur = next
	}
	cur.terminal = append(cur.terminal, e)
	g.edgeCount++

	return nil
}

// HasNode reports whether id exists.
func (g *Graph) HasNode(id string) bool {
	_, ok := g.origins[core.CanonicalID(id)]

	return ok
}

// Nodes returns all node IDs in lexicographic order.
func (g *Graph) Nodes() []string {
	out := make([]string, 0, len(g.origins))
	for id := range g.origins {
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}

// Neighbors returns a copy of origin's flat neighbor slice, in
// insertion order. Empty for unknown nodes.
func (g *Graph) Neighbors(from string) []core.Edge {
	o, ok := g.origins[core.CanonicalID(from)]
	if !ok || len(o.flat) == 0 {
		return nil
	}
	out := make([]core.Edge, len(o.flat))
	copy(out, o.flat)

	return out
}

// NeighborsByPrefix walks the trie path labelled by prefix and returns
// every edge stored at or below it: exactly the set of origin's edges
// whose destination starts with prefix. Empty when the path does not
// exist. Complexity: O(|prefix| + matches).
func (g *Graph) NeighborsByPrefix(from, prefix string) []core.Edge {
	o, ok := g.origins[core.CanonicalID(from)]
	if !ok {
		return nil
	}
	cur := o.root
	prefix = core.CanonicalID(prefix)
	for i := 0; i < len(prefix); i++ {
		next, ok := cur.children[prefix[i]]
		if !ok {
			return nil
		}
		cur = next
	}

	return collect(cur, nil)
}

// NodeCount returns the number of distinct nodes.
func (g *Graph) NodeCount() int { return len(g.origins) }

// EdgeCount returns the total number of edges.
func (g *Graph) EdgeCount() int { return g.edgeCount }

// EdgesTo returns every edge from → to (one per carrier) via a full-ID
// trie walk, or nil when none exists.
func (g *Graph) EdgesTo(from, to string) []core.Edge {
	o, ok := g.origins[core.CanonicalID(from)]
	if !ok {
		return nil
	}
	cur := o.root
	to = core.CanonicalID(to)
	for i := 0; i < len(to); i++ {
		next, ok := cur.children[to[i]]
		if !ok {
			return nil
		}
		cur = next
	}
	if len(cur.terminal) == 0 {
		return nil
	}
	out := make([]core.Edge, len(cur.terminal))
	copy(out, cur.terminal)

	return out
}

// Weight returns the weight of the first edge from → to, or (0, false).
func (g *Graph) Weight(from, to string) (float64, bool) {
	if edges := g.EdgesTo(from, to); len(edges) > 0 {
		return edges[0].Weight, true
	}

	return 0, false
}

// Carrier returns the carrier of the first edge from → to, or
// ("", false).
func (g *Graph) Carrier(from, to string) (string, bool) {
	if edges := g.EdgesTo(from, to); len(edges) > 0 {
		return edges[0].Carrier, true
	}

	return "", false
}

// ensure returns the origin bundle for id, creating it on first sight.
func (g *Graph) ensure(id string) (*origin, error) {
	canon := core.CanonicalID(id)
	if canon == "" {
		return nil, core.ErrEmptyNodeID
	}
	o, ok := g.origins[canon]
	if !ok {
		o = &origin{root: &node{children: make(map[byte]*node)}}
		g.origins[canon] = o
	}

	return o, nil
}

// collect gathers the terminal edges of n's entire subtree.
func collect(n *node, out []core.Edge) []core.Edge {
	out = append(out, n.terminal...)
	for _, child := range n.children {
		out = collect(child, out)
	}

	return out
}
