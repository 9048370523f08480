package csr

import (
	"errors"

	"github.com/skylath/skylath/core"
)

// Sentinel errors for the compressed representations.
var (
	// ErrNilSource indicates FromGraph was given a nil source graph.
	ErrNilSource = errors.New("csr: source graph is nil")

	// ErrFinalized indicates a mutation (or a second Finalize) was
	// attempted on an already-finalized OffsetArray.
	ErrFinalized = errors.New("csr: graph already finalized")
)

// Graph is the build-once compressed-row representation. Construct it
// with FromGraph; it cannot be mutated afterwards.
type Graph struct {
	index   map[string]int // node ID → index, lexicographic
	ids     []string       // index → node ID
	offsets []int          // len(ids)+1; edges of node i at [offsets[i], offsets[i+1])
	edges   []core.Edge
}

var _ core.Graph = (*Graph)(nil)

// FromGraph compresses an already-built source graph into CSR layout.
//
// Build protocol (the classic two-pass compressed-row construction):
//  1. Count the out-degree of every node and prefix-sum the counts into
//     the offset array.
//  2. Copy each edge into its slot using a per-node write cursor
//     initialized from the offsets.
//
// Complexity: O(V log V + E) time (the log is the ID sort), O(V + E)
// space.
func FromGraph(src core.Graph) (*Graph, error) {
	if src == nil {
		return nil, ErrNilSource
	}

	// 1) Snapshot node IDs; the contract returns them sorted, which
	//    fixes the index assignment deterministically.
	ids := src.Nodes()
	index := make(map[string]int, len(ids))
	for i, id := range ids {
		index[id] = i
	}

	// 2) First pass: out-degree per node, prefix-summed into offsets.
	offsets := make([]int, len(ids)+1)
	for i, id := range ids {
		offsets[i+1] = offsets[i] + len(src.Neighbors(id))
	}

	// 3) Second pass: copy edges through per-node write cursors. Each
	//    node's cursor starts at its own offset; sharing or reusing a
	//    cursor across nodes would land edges in the wrong node's range.
	edges := make([]core.Edge, offsets[len(ids)])
	cursor := make([]int, len(ids))
	copy(cursor, offsets[:len(ids)])
	for i, id := range ids {
		for _, e := range src.Neighbors(id) {
			edges[cursor[i]] = e
			cursor[i]++
		}
	}

	return &Graph{index: index, ids: ids, offsets: offsets, edges: edges}, nil
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

	return out
}

// Neighbors returns origin's outgoing edges as a slice view into the
// contiguous edge array - no allocation. Callers must not mutate the
// returned slice. Empty for unknown nodes.
func (g *Graph) Neighbors(origin string) []core.Edge {
	i, ok := g.index[core.CanonicalID(origin)]
	if !ok {
		return nil
	}

	return g.edges[g.offsets[i]:g.offsets[i+1]:g.offsets[i+1]]
}

// NodeCount returns the number of distinct nodes.
func (g *Graph) NodeCount() int { return len(g.ids) }

// EdgeCount returns the total number of edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Weight returns the weight of the first edge from → to, or (0, false)
// when no such edge exists.
func (g *Graph) Weight(from, to string) (float64, bool) {
	if e, ok := firstEdgeTo(g, from, to); ok {
		return e.Weight, true
	}

	return 0, false
}

// Carrier returns the carrier of the first edge from → to, or
// ("", false) when no such edge exists.
func (g *Graph) Carrier(from, to string) (string, bool) {
	if e, ok := firstEdgeTo(g, from, to); ok {
		return e.Carrier, true
	}

	return "", false
}

// firstEdgeTo scans from's compressed range for the first edge to to.
func firstEdgeTo(g core.Graph, from, to string) (core.Edge, bool) {
	to = core.CanonicalID(to)
	for _, e := range g.Neighbors(from) {
		if e.To == to {
			return e, true
		}
	}

	return core.Edge{}, false
}
