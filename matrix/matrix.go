package matrix

import (
	"errors"
	"fmt"
	"sort"

	"github.com/skylath/skylath/core"
)

// Sentinel errors for the matrix representation.
var (
	// ErrCapacityExceeded indicates more distinct nodes appeared than the
	// grid was sized for. Fatal for the instance; rebuild with a larger
	// capacity.
	ErrCapacityExceeded = errors.New("matrix: node capacity exceeded")

	// ErrBadCapacity indicates a non-positive capacity was requested.
	ErrBadCapacity = errors.New("matrix: capacity must be positive")
)

// Graph is the fixed-capacity grid representation. Cells are buckets of
// edges keyed by (origin index, destination index).
type Graph struct {
	capacity  int
	index     map[string]int // node ID → permanent row/column index
	ids       []string       // index → node ID, in first-sight order
	cells     [][][]core.Edge
	edgeCount int
}

var _ core.Mutable = (*Graph)(nil)

// New allocates a capacity×capacity grid. Size capacity at or above the
// expected node count, oversized to tolerate unseen nodes discovered
// during loading.
func New(capacity int) (*Graph, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrBadCapacity, capacity)
	}
	cells := make([][][]core.Edge, capacity)
	for i := range cells {
		cells[i] = make([][]core.Edge, capacity)
	}

	return &Graph{
		capacity: capacity,
		index:    make(map[string]int, capacity),
		ids:      make([]string, 0, capacity),
		cells:    cells,
	}, nil
}

// AddNode assigns id a permanent grid index on first sight. Idempotent
// on repeats; returns ErrCapacityExceeded when the grid is full.
func (g *Graph) AddNode(id string) error {
	_, err := g.indexOf(id)

	return err
}

// AddEdge stores e in the (origin, destination) cell bucket. Both
// endpoints are created implicitly; the weight is validated before
// either endpoint can claim a grid slot.
func (g *Graph) AddEdge(origin string, e core.Edge) error {
	if err := core.ValidateWeight(e.Weight); err != nil {
		return err
	}
	from, err := g.indexOf(origin)
	if err != nil {
		return err
	}
	e.To = core.CanonicalID(e.To)
	to, err := g.indexOf(e.To)
	if err != nil {
		return err
	}
	g.cells[from][to] = append(g.cells[from][to], e)
	g.edgeCount++

	return nil
}

// HasNode reports whether id exists.
func (g *Graph) HasNode(id string) bool {
	_, ok := g.index[core.CanonicalID(id)]

	return ok
}

// Nodes returns all node IDs in lexicographic order.
func (g *Graph) Nodes() []string {
	out := make([]string, len(g.ids))
	copy(out, g.ids)
	sort.Strings(out)

	return out
}

// Neighbors scans origin's full row, skipping empty cells.
// Complexity: O(capacity) regardless of out-degree.
func (g *Graph) Neighbors(origin string) []core.Edge {
	row, ok := g.index[core.CanonicalID(origin)]
	if !ok {
		return nil
	}
	var out []core.Edge
	for col := 0; col < g.capacity; col++ {
		if bucket := g.cells[row][col]; len(bucket) > 0 {
			out = append(out, bucket...)
		}
	}

	return out
}

// NodeCount returns the number of distinct nodes.
func (g *Graph) NodeCount() int { return len(g.ids) }

// EdgeCount returns the total number of edges.
func (g *Graph) EdgeCount() int { return g.edgeCount }

// Capacity returns the fixed grid dimension.
func (g *Graph) Capacity() int { return g.capacity }

// indexOf returns id's permanent grid index, assigning one on first
// sight. Fails with ErrCapacityExceeded when the grid is full.
func (g *Graph) indexOf(id string) (int, error) {
	canon := core.CanonicalID(id)
	if canon == "" {
		return 0, core.ErrEmptyNodeID
	}
	if i, ok := g.index[canon]; ok {
		return i, nil
	}
	if len(g.ids) == g.capacity {
		return 0, fmt.Errorf("%w: capacity %d, rejected node %q", ErrCapacityExceeded, g.capacity, canon)
	}
	i := len(g.ids)
	g.index[canon] = i
	g.ids = append(g.ids, canon)

	return i, nil
}
