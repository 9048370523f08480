package adjacency

import (
	"sort"

	"github.com/skylath/skylath/core"
)

// List is the baseline adjacency-list representation: origin → growable
// slice of outgoing edges, kept in insertion order.
type List struct {
	adj       map[string][]core.Edge // node ID → outgoing edges; entry exists for every node
	edgeCount int
}

// compile-time contract check
var _ core.Mutable = (*List)(nil)

// NewList returns an empty adjacency-list graph.
func NewList() *List {
	return &List{adj: make(map[string][]core.Edge)}
}

// AddNode registers id, creating an empty adjacency row. Idempotent.
func (l *List) AddNode(id string) error {
	return addNode(l.adj, id)
}

// AddEdge appends e to origin's adjacency row. Both endpoints are
// created implicitly; the weight is validated at this boundary.
// Complexity: amortized O(1).
func (l *List) AddEdge(origin string, e core.Edge) error {
	canon, e, err := prepare(l.adj, origin, &e)
	if err != nil {
		return err
	}
	l.adj[canon] = append(l.adj[canon], e)
	l.edgeCount++

	return nil
}

// HasNode reports whether id exists.
func (l *List) HasNode(id string) bool {
	_, ok := l.adj[core.CanonicalID(id)]

	return ok
}

// Nodes returns all node IDs in lexicographic order.
func (l *List) Nodes() []string {
	return sortedKeys(l.adj)
}

// Neighbors returns a copy of origin's outgoing edges, in insertion
// order. Empty for unknown nodes.
func (l *List) Neighbors(origin string) []core.Edge {
	return copyEdges(l.adj[core.CanonicalID(origin)])
}

// NodeCount returns the number of distinct nodes.
func (l *List) NodeCount() int { return len(l.adj) }

// EdgeCount returns the total number of edges.
func (l *List) EdgeCount() int { return l.edgeCount }

// addNode inserts a canonical, non-empty row for id.
func addNode(adj map[string][]core.Edge, id string) error {
	canon := core.CanonicalID(id)
	if canon == "" {
		return core.ErrEmptyNodeID
	}
	if _, ok := adj[canon]; !ok {
		adj[canon] = nil
	}

	return nil
}

// prepare canonicalizes both endpoints, validates the weight and makes
// sure both rows exist. Returns the canonical origin and the edge with
// its destination canonicalized.
func prepare(adj map[string][]core.Edge, origin string, e *core.Edge) (string, core.Edge, error) {
	if err := core.ValidateWeight(e.Weight); err != nil {
		return "", *e, err
	}
	canon := core.CanonicalID(origin)
	if canon == "" {
		return "", *e, core.ErrEmptyNodeID
	}
	e.To = core.CanonicalID(e.To)
	if e.To == "" {
		return "", *e, core.ErrEmptyNodeID
	}
	if _, ok := adj[canon]; !ok {
		adj[canon] = nil
	}
	if _, ok := adj[e.To]; !ok {
		adj[e.To] = nil
	}

	return canon, *e, nil
}

func sortedKeys(adj map[string][]core.Edge) []string {
	out := make([]string, 0, len(adj))
	for id := range adj {
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}

func copyEdges(edges []core.Edge) []core.Edge {
	if len(edges) == 0 {
		return nil
	}
	out := make([]core.Edge, len(edges))
	copy(out, edges)

	return out
}
