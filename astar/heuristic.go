package astar

import (
	"math"

	"github.com/skylath/skylath/core"
)

// Heuristic estimates the remaining cost from a node to the query's
// destination. The engine adds the estimate to the accumulated weight
// when ordering the frontier; it never contributes to the reported
// total weight.
//
// Optimality requires an admissible heuristic (never overestimating the
// true remaining cost). The engine does not check this.
type Heuristic func(node string) float64

// Zero is the zero heuristic: A* with Zero is exactly Dijkstra.
func Zero(string) float64 { return 0 }

// HopCount builds the hop-count heuristic for queries ending at
// destination on g: h(n) is the minimum number of edges from n to the
// destination, precomputed by a single unweighted breadth-first pass
// over the reversed graph.
//
// Nodes that cannot reach the destination at all estimate +Inf, which
// prunes them from the frontier; such nodes can never lie on a returned
// path, so the pruning is always safe.
//
// The precomputation ignores constraints, so under carrier filters the
// estimate may undershoot further (still safe for admissibility).
// Complexity: O(V + E) once, O(1) per estimate.
func HopCount(g core.Graph, destination string) Heuristic {
	hops := hopDistances(g, core.CanonicalID(destination))

	return func(node string) float64 {
		if h, ok := hops[core.CanonicalID(node)]; ok {
			return float64(h)
		}

		return math.Inf(1)
	}
}

// hopDistances runs BFS from goal over the reversed edge set, yielding
// each node's hop distance *to* goal along forward edges.
func hopDistances(g core.Graph, goal string) map[string]int {
	// Reverse adjacency: incoming[v] lists every u with an edge u→v.
	incoming := make(map[string][]string, g.NodeCount())
	for _, u := range g.Nodes() {
		for _, e := range g.Neighbors(u) {
			incoming[e.To] = append(incoming[e.To], u)
		}
	}

	hops := map[string]int{goal: 0}
	queue := []string{goal}
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		for _, u := range incoming[v] {
			if _, seen := hops[u]; seen {
				continue
			}
			hops[u] = hops[v] + 1
			queue = append(queue, u)
		}
	}

	return hops
}
