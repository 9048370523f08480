package csr

import (
	"fmt"
	"sort"

	"github.com/skylath/skylath/core"
)

// OffsetArray is the incrementally-built compressed representation. It
// accepts edges into per-origin buffers until Finalize compacts them
// into the same contiguous layout Graph uses.
//
// Lifecycle: build mode (AddNode/AddEdge permitted, Neighbors reads the
// buffers) → Finalize → read mode (zero-allocation slice views,
// mutation returns ErrFinalized).
type OffsetArray struct {
	index     map[string]int
	ids       []string // index → node ID, in first-sight order while building
	buffers   [][]core.Edge
	edgeCount int

	// populated by Finalize
	offsets   []int
	edges     []core.Edge
	finalized bool
}

var _ core.Mutable = (*OffsetArray)(nil)

// NewOffsetArray returns an empty offset-array graph in build mode.
func NewOffsetArray() *OffsetArray {
	return &OffsetArray{index: make(map[string]int)}
}

// AddNode registers id. Idempotent; ErrFinalized after Finalize.
func (o *OffsetArray) AddNode(id string) error {
	if o.finalized {
		return fmt.Errorf("%w: AddNode(%q)", ErrFinalized, id)
	}
	_, err := o.indexOf(id)

	return err
}

// AddEdge buffers e under origin. Both endpoints are created
// implicitly; ErrFinalized after Finalize.
func (o *OffsetArray) AddEdge(origin string, e core.Edge) error {
	if o.finalized {
		return fmt.Errorf("%w: AddEdge(%q)", ErrFinalized, origin)
	}
	if err := core.ValidateWeight(e.Weight); err != nil {
		return err
	}
	from, err := o.indexOf(origin)
	if err != nil {
		return err
	}
	e.To = core.CanonicalID(e.To)
	if _, err = o.indexOf(e.To); err != nil {
		return err
	}
	o.buffers[from] = append(o.buffers[from], e)
	o.edgeCount++

	return nil
}

// Finalize performs the one-time transition from build mode to
// compacted read mode, running the same count/prefix-sum/copy protocol
// as FromGraph over the buffers. Calling it twice is an error.
//
// Node indices are re-assigned in lexicographic ID order during
// compaction, so the finalized layout matches what FromGraph would
// produce for the same logical graph.
func (o *OffsetArray) Finalize() error {
	if o.finalized {
		return fmt.Errorf("%w: Finalize called twice", ErrFinalized)
	}

	// 1) Re-index nodes lexicographically, remembering where each
	//    node's buffer lives under the old first-sight indices.
	old := o.index
	sorted := make([]string, len(o.ids))
	copy(sorted, o.ids)
	sort.Strings(sorted)
	index := make(map[string]int, len(sorted))
	for i, id := range sorted {
		index[id] = i
	}

	// 2) Prefix-sum buffer lengths into offsets.
	offsets := make([]int, len(sorted)+1)
	for i, id := range sorted {
		offsets[i+1] = offsets[i] + len(o.buffers[old[id]])
	}

	// 3) Compact buffers into the contiguous edge array.
	edges := make([]core.Edge, offsets[len(sorted)])
	for i, id := range sorted {
		copy(edges[offsets[i]:offsets[i+1]], o.buffers[old[id]])
	}

	o.index = index
	o.ids = sorted
	o.offsets = offsets
	o.edges = edges
	o.buffers = nil
	o.finalized = true

	return nil
}

// Finalized reports whether Finalize has run.
func (o *OffsetArray) Finalized() bool { return o.finalized }

// HasNode reports whether id exists.
func (o *OffsetArray) HasNode(id string) bool {
	_, ok := o.index[core.CanonicalID(id)]

	return ok
}

// Nodes returns all node IDs in lexicographic order.
func (o *OffsetArray) Nodes() []string {
	out := make([]string, len(o.ids))
	copy(out, o.ids)
	sort.Strings(out) // already sorted post-finalize; cheap either way

	return out
}

// Neighbors returns origin's outgoing edges. Before Finalize it
// reflects the in-progress build buffer (copied, so callers cannot
// reach into the buffer); after Finalize it is a zero-allocation slice
// view that callers must not mutate. Empty for unknown nodes.
func (o *OffsetArray) Neighbors(origin string) []core.Edge {
	i, ok := o.index[core.CanonicalID(origin)]
	if !ok {
		return nil
	}
	if !o.finalized {
		buf := o.buffers[i]
		if len(buf) == 0 {
			return nil
		}
		out := make([]core.Edge, len(buf))
		copy(out, buf)

		return out
	}

	return o.edges[o.offsets[i]:o.offsets[i+1]:o.offsets[i+1]]
}

// NodeCount returns the number of distinct nodes.
func (o *OffsetArray) NodeCount() int { return len(o.ids) }

// EdgeCount returns the total number of edges.
func (o *OffsetArray) EdgeCount() int { return o.edgeCount }

// Weight returns the weight of the first edge from → to, or (0, false).
func (o *OffsetArray) Weight(from, to string) (float64, bool) {
	if e, ok := firstEdgeTo(o, from, to); ok {
		return e.Weight, true
	}

	return 0, false
}

// Carrier returns the carrier of the first edge from → to, or
// ("", false).
func (o *OffsetArray) Carrier(from, to string) (string, bool) {
	if e, ok := firstEdgeTo(o, from, to); ok {
		return e.Carrier, true
	}

	return "", false
}

// indexOf returns id's index, assigning one on first sight.
func (o *OffsetArray) indexOf(id string) (int, error) {
	canon := core.CanonicalID(id)
	if canon == "" {
		return 0, core.ErrEmptyNodeID
	}
	if i, ok := o.index[canon]; ok {
		return i, nil
	}
	i := len(o.ids)
	o.index[canon] = i
	o.ids = append(o.ids, canon)
	o.buffers = append(o.buffers, nil)

	return i, nil
}
