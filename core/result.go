// This file declares PathResult, the immutable answer to a single
// shortest-path query.

package core

import (
	"strings"
	"time"
)

// PathResult reports the outcome of one shortest-path query. It is
// created once per query and owns its own copies of the node and edge
// sequences, so it outlives the graph it was computed on.
//
// An unreachable destination is not an error: Found is false, Path and
// Edges are empty and TotalWeight is zero, while the diagnostic counters
// still reflect the work performed.
type PathResult struct {
	// Found reports whether a path satisfying the constraints exists.
	Found bool

	// Path is the node sequence from origin to destination inclusive.
	Path []string

	// Edges is the edge sequence along Path; len(Edges) == len(Path)-1
	// when Found.
	Edges []Edge

	// TotalWeight is the sum of edge weights along Path.
	TotalWeight float64

	// NodesVisited counts settle transitions: nodes popped from the
	// frontier with a final distance.
	NodesVisited int

	// EdgesRelaxed counts every outgoing edge examined from a settled
	// node, before constraint filtering and whether or not it improved a
	// distance. Both engines hold to this single definition.
	EdgesRelaxed int

	// Elapsed is the wall-clock duration of the query.
	Elapsed time.Duration
}

// Hops returns the number of edges on the path (0 when not found).
func (r PathResult) Hops() int {
	if len(r.Path) == 0 {
		return 0
	}

	return len(r.Path) - 1
}

// Carriers returns the carrier labels along the path, one per hop.
func (r PathResult) Carriers() []string {
	out := make([]string, len(r.Edges))
	for i, e := range r.Edges {
		out[i] = e.Carrier
	}

	return out
}

// PathString renders the path as "ams → fra → nrt", or "no path" when
// nothing was found.
func (r PathResult) PathString() string {
	if len(r.Path) == 0 {
		return "no path"
	}

	return strings.Join(r.Path, " → ")
}
