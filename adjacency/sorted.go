package adjacency

import (
	"sort"

	"github.com/skylath/skylath/core"
)

// Sorted is the weight-ordered variant of List: each origin's edges are
// kept in non-decreasing weight order via ordered insertion. Equal
// weights preserve insertion order (stable tie-break).
type Sorted struct {
	adj       map[string][]core.Edge
	edgeCount int
}

var _ core.Mutable = (*Sorted)(nil)

// NewSorted returns an empty sorted-adjacency-list graph.
func NewSorted() *Sorted {
	return &Sorted{adj: make(map[string][]core.Edge)}
}

// AddNode registers id. Idempotent.
func (s *Sorted) AddNode(id string) error {
	return addNode(s.adj, id)
}

// AddEdge inserts e into origin's row at its weight-ordered position.
// Complexity: O(log k + k) per insert, k = current out-degree (the
// shift dominates).
func (s *Sorted) AddEdge(origin string, e core.Edge) error {
	canon, e, err := prepare(s.adj, origin, &e)
	if err != nil {
		return err
	}

	row := s.adj[canon]
	// Upper bound: first index whose weight exceeds e.Weight, so equal
	// weights keep arrival order.
	i := sort.Search(len(row), func(j int) bool { return row[j].Weight > e.Weight })
	row = append(row, core.Edge{})
	copy(row[i+1:], row[i:])
	row[i] = e
	s.adj[canon] = row
	s.edgeCount++

	return nil
}

// HasNode reports whether id exists.
func (s *Sorted) HasNode(id string) bool {
	_, ok := s.adj[core.CanonicalID(id)]

	return ok
}

// Nodes returns all node IDs in lexicographic order.
func (s *Sorted) Nodes() []string {
	return sortedKeys(s.adj)
}

// Neighbors returns a copy of origin's outgoing edges in non-decreasing
// weight order. Empty for unknown nodes.
func (s *Sorted) Neighbors(origin string) []core.Edge {
	return copyEdges(s.adj[core.CanonicalID(origin)])
}

// NodeCount returns the number of distinct nodes.
func (s *Sorted) NodeCount() int { return len(s.adj) }

// EdgeCount returns the total number of edges.
func (s *Sorted) EdgeCount() int { return s.edgeCount }
