package astar

import (
	"container/heap"
	"errors"
	"fmt"
	"time"

	"github.com/skylath/skylath/core"
)

// ErrNilGraph indicates a nil graph was passed to FindPath.
var ErrNilGraph = errors.New("astar: graph is nil")

// FindPath computes the minimum-weight path from origin to destination
// under the given constraints, ordering the frontier by accumulated
// weight plus h's estimate. A nil h is treated as Zero.
//
// Error taxonomy matches package dijkstra: core.ErrNotFound for a
// missing endpoint, core.ErrInvalidWeight for a bad weight in the
// graph, ErrNilGraph for a nil graph. An unreachable destination is
// Found=false, not an error.
//
// Complexity: O((V + E) log V) time plus the cost of h, O(V + E) space.
func FindPath(g core.Graph, origin, destination string, c core.Constraints, h Heuristic) (core.PathResult, error) {
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
	if h == nil {
		h = Zero
	}

	// 2) Label-setting loop; identical state machine to Dijkstra, with
	//    the f-score (g-score + heuristic) as the frontier key. The
	//    g-score alone is what dist and the final TotalWeight carry.
	s := &search{
		g:           g,
		constraints: c,
		dist:        make(map[string]float64),
		prev:        make(map[string]string),
		prevEdge:    make(map[string]core.Edge),
		settled:     make(map[string]bool),
	}
	heap.Init(&s.frontier)
	s.dist[origin] = 0
	s.push(origin, h(origin), 0)

	for s.frontier.Len() > 0 {
		item := heap.Pop(&s.frontier).(*frontierItem)
		u := item.id
		if s.settled[u] {
			continue // stale duplicate (lazy decrease-key)
		}
		s.settled[u] = true
		s.nodesVisited++
		if u == destination {
			break
		}

		for _, e := range g.Neighbors(u) {
			s.edgesRelaxed++
			if !c.Allows(e, item.hops) {
				continue
			}
			nd := s.dist[u] + e.Weight
			if best, known := s.dist[e.To]; known && nd >= best {
				continue
			}
			s.dist[e.To] = nd
			s.prev[e.To] = u
			s.prevEdge[e.To] = e
			s.push(e.To, nd+h(e.To), item.hops+1)
		}
	}

	// 3) Assemble the caller-owned result.
	return s.result(origin, destination, start), nil
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

// search holds the mutable state of one A* execution.
type search struct {
	g           core.Graph
	constraints core.Constraints

	dist     map[string]float64
	prev     map[string]string
	prevEdge map[string]core.Edge
	settled  map[string]bool
	frontier frontier
	seq      int

	nodesVisited int
	edgesRelaxed int
}

func (s *search) push(id string, priority float64, hops int) {
	heap.Push(&s.frontier, &frontierItem{id: id, priority: priority, hops: hops, seq: s.seq})
	s.seq++
}

func (s *search) result(origin, destination string, start time.Time) core.PathResult {
	res := core.PathResult{
		NodesVisited: s.nodesVisited,
		EdgesRelaxed: s.edgesRelaxed,
	}

	d, reached := s.dist[destination]
	if !reached || !s.settled[destination] {
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
		edges = append(edges, s.prevEdge[cur])
		cur = s.prev[cur]
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	for i, j := 0, len(edges)-1; i < j; i, j = i+1, j-1 {
		edges[i], edges[j] = edges[j], edges[i]
	}

	res.Found = true
	res.Path = path
	res.Edges = edges
	res.TotalWeight = d
	res.Elapsed = time.Since(start)

	return res
}

// frontierItem is one (node, f-score) entry in the min-heap.
type frontierItem struct {
	id       string
	priority float64
	hops     int
	seq      int
}

// frontier is a min-heap ordered by (priority, seq); the seq tie-break
// keeps equal-priority pops first-discovered-first, matching the
// Dijkstra engine.
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
