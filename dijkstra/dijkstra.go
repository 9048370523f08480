package dijkstra

import (
	"container/heap"
	"errors"
	"fmt"
	"time"

	"github.com/skylath/skylath/core"
)

// ErrNilGraph indicates a nil graph was passed to FindPath.
var ErrNilGraph = errors.New("dijkstra: graph is nil")

// FindPath computes the minimum-weight path from origin to destination
// under the given constraints.
//
// Returns:
//
//   - A PathResult owning its own node/edge sequences. Found=false with
//     an empty path and zero weight means no path satisfies the
//     constraints - that is not an error.
//   - An error wrapping core.ErrNotFound when origin or destination is
//     absent from the graph, core.ErrInvalidWeight when the graph holds
//     a negative or non-finite weight, or ErrNilGraph.
//
// Complexity: O((V + E) log V) time, O(V + E) space.
func FindPath(g core.Graph, origin, destination string, c core.Constraints) (core.PathResult, error) {
	start := time.Now()

	// 1) Validate inputs: graph, endpoints, weights.
	if g == nil {
		return core.PathResult{}, ErrNilGraph
	}
	origin = core.CanonicalID(origin)
	destination = core.CanonicalID(destination)
	if !g.HasNode(origin) {
		return core.PathResult{}, fmt.Errorf("%w: origin %q", core.ErrNotFound, origin)
	}
	if !g.HasNode(destination) {
		return core.PathResult{}, fmt.Errorf("%w: destination %q", core.ErrNotFound, destination)
	}
	if err := scanWeights(g); err != nil {
		return core.PathResult{}, err
	}

	// 2) Run the label-setting loop with the plain accumulated-weight
	//    priority (the zero heuristic).
	r := newRunner(g, c, destination)
	r.run(origin, func(string) float64 { return 0 })

	// 3) Assemble the caller-owned result.
	return r.result(origin, destination, start), nil
}

// scanWeights fails fast when any edge weight violates the
// non-negative, finite assumption. O(V+E).
func scanWeights(g core.Graph) error {
	for _, id := range g.Nodes() {
		for _, e := range g.Neighbors(id) {
			if err := core.ValidateWeight(e.Weight); err != nil {
				return fmt.Errorf("edge %s→%s: %w", id, e.To, err)
			}
		}
	}

	return nil
}

// runner holds the mutable state of a single search.
type runner struct {
	g           core.Graph
	constraints core.Constraints
	goal        string

	dist     map[string]float64   // best known accumulated weight
	prev     map[string]string    // predecessor on the best path
	prevEdge map[string]core.Edge // edge used to reach the node
	settled  map[string]bool
	frontier frontier
	seq      int // insertion counter for deterministic tie-breaks

	nodesVisited int
	edgesRelaxed int
}

func newRunner(g core.Graph, c core.Constraints, goal string) *runner {
	return &runner{
		g:           g,
		constraints: c,
		goal:        goal,
		dist:        make(map[string]float64),
		prev:        make(map[string]string),
		prevEdge:    make(map[string]core.Edge),
		settled:     make(map[string]bool),
	}
}

// run executes the label-setting loop from origin. bias is added to the
// accumulated weight when ordering the frontier (zero for Dijkstra, a
// heuristic estimate for A*); it never contributes to dist.
func (r *runner) run(origin string, bias func(node string) float64) {
	// 1) Seed the frontier with the origin at distance zero.
	heap.Init(&r.frontier)
	r.dist[origin] = 0
	r.push(origin, bias(origin), 0)

	for r.frontier.Len() > 0 {
		// 2) Pop the minimum-priority entry; skip stale duplicates left
		//    behind by the lazy decrease-key pattern.
		item := heap.Pop(&r.frontier).(*frontierItem)
		u := item.id
		if r.settled[u] {
			continue
		}

		// 3) Settle u: its distance is final and it is never revisited.
		r.settled[u] = true
		r.nodesVisited++
		if u == r.goal {
			return
		}

		// 4) Relax every outgoing edge of u.
		for _, e := range r.g.Neighbors(u) {
			r.edgesRelaxed++
			if !r.constraints.Allows(e, item.hops) {
				continue
			}
			nd := r.dist[u] + e.Weight
			if best, known := r.dist[e.To]; known && nd >= best {
				continue
			}
			r.dist[e.To] = nd
			r.prev[e.To] = u
			r.prevEdge[e.To] = e
			r.push(e.To, nd+bias(e.To), item.hops+1)
		}
	}
}

// push enqueues a frontier entry, stamping it with the next insertion
// sequence number so equal priorities resolve first-discovered-first.
func (r *runner) push(id string, priority float64, hops int) {
	heap.Push(&r.frontier, &frontierItem{id: id, priority: priority, hops: hops, seq: r.seq})
	r.seq++
}

// result reconstructs the path by walking the predecessor chain back
// from destination.
func (r *runner) result(origin, destination string, start time.Time) core.PathResult {
	res := core.PathResult{
		NodesVisited: r.nodesVisited,
		EdgesRelaxed: r.edgesRelaxed,
	}

	d, reached := r.dist[destination]
	if !reached || !r.settled[destination] {
		res.Elapsed = time.Since(start)

		return res
	}

	var path []string
	var edges []core.Edge
	for cur := destination; ; {
		path = append(path, cur)
		if cur == origin {
			break
		}
		edges = append(edges, r.prevEdge[cur])
		cur = r.prev[cur]
	}
	reverseStrings(path)
	reverseEdges(edges)

	res.Found = true
	res.Path = path
	res.Edges = edges
	res.TotalWeight = d
	res.Elapsed = time.Since(start)

	return res
}

func reverseStrings(s []string) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

func reverseEdges(s []core.Edge) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

// frontierItem is one (node, priority) entry in the min-heap. hops
// carries the edge count of the path that created the entry, which the
// hop-limit constraint is checked against.
type frontierItem struct {
	id       string
	priority float64
	hops     int
	seq      int
}

// frontier is a min-heap of *frontierItem ordered by (priority, seq).
// The seq tie-break makes equal-priority pops deterministic across
// representations: first discovered wins.
type frontier []*frontierItem

func (f frontier) Len() int { return len(f) }

func (f frontier) Less(i, j int) bool {
	if f[i].priority != f[j].priority {
		return f[i].priority < f[j].priority
	}

	return f[i].seq < f[j].seq
}

func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

func (f *frontier) Push(x interface{}) { *f = append(*f, x.(*frontierItem)) }

func (f *frontier) Pop() interface{} {
	old := *f
	n := len(old)
	item := old[n-1]
	*f = old[:n-1]

	return item
}
