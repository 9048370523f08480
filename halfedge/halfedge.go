package halfedge

import (
	"sort"

	"github.com/skylath/skylath/core"
)

// record is one half-edge in an origin's doubly-linked adjacency list.
type record struct {
	edge core.Edge
	next *record
	prev *record
}

// edgeList holds the head and tail of one origin's list.
type edgeList struct {
	head   *record
	tail   *record
	length int
}

// append links r at the tail.
func (l *edgeList) append(r *record) {
	if l.head == nil {
		l.head = r
		l.tail = r
	} else {
		l.tail.next = r
		r.prev = l.tail
		l.tail = r
	}
	l.length++
}

// Graph is the doubly-linked half-edge representation.
type Graph struct {
	adjacency map[string]*edgeList // every known node has an entry
	edgeCount int
}

var _ core.Mutable = (*Graph)(nil)

// New returns an empty half-edge graph.
func New() *Graph {
	return &Graph{adjacency: make(map[string]*edgeList)}
}

// AddNode registers id with an empty list. Idempotent.
func (g *Graph) AddNode(id string) error {
	_, err := g.ensure(id)

	return err
}

// AddEdge appends e at the tail of origin's list. Both endpoints are
// created implicitly. Complexity: O(1).
func (g *Graph) AddEdge(origin string, e core.Edge) error {
	if err := core.ValidateWeight(e.Weight); err != nil {
		return err
	}
	list, err := g.ensure(origin)
	if err != nil {
		return err
	}
	e.To = core.CanonicalID(e.To)
	if _, err = g.ensure(e.To); err != nil {
		return err
	}
	list.append(&record{edge: e})
	g.edgeCount++

	return nil
}

// HasNode reports whether id exists.
func (g *Graph) HasNode(id string) bool {
	_, ok := g.adjacency[core.CanonicalID(id)]

	return ok
}

// Nodes returns all node IDs in lexicographic order.
func (g *Graph) Nodes() []string {
	out := make([]string, 0, len(g.adjacency))
	for id := range g.adjacency {
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}

// Neighbors walks origin's list head to tail, materializing the edges
// in insertion order. Empty for unknown nodes.
func (g *Graph) Neighbors(origin string) []core.Edge {
	list, ok := g.adjacency[core.CanonicalID(origin)]
	if !ok || list.length == 0 {
		return nil
	}
	out := make([]core.Edge, 0, list.length)
	for cur := list.head; cur != nil; cur = cur.next {
		out = append(out, cur.edge)
	}

	return out
}

// NodeCount returns the number of distinct nodes.
func (g *Graph) NodeCount() int { return len(g.adjacency) }

// EdgeCount returns the total number of edges.
func (g *Graph) EdgeCount() int { return g.edgeCount }

// ensure returns id's list, creating it on first sight.
func (g *Graph) ensure(id string) (*edgeList, error) {
	canon := core.CanonicalID(id)
	if canon == "" {
		return nil, core.ErrEmptyNodeID
	}
	list, ok := g.adjacency[canon]
	if !ok {
		list = &edgeList{}
		g.adjacency[canon] = list
	}

	return list, nil
}
