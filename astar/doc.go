// Package astar implements the A* shortest-path engine over the
// core.Graph contract.
//
// A* generalizes the label-setting state machine of package dijkstra by
// ordering the frontier on accumulated-weight + h(node) for a caller
// supplied heuristic h, instead of accumulated weight alone. With the
// Zero heuristic the ordering degenerates and A* is mathematically
// Dijkstra - the property the cross-engine equivalence tests lean on.
//
// Two heuristics ship with the package:
//
//   - Zero: always 0; reduces A* to Dijkstra.
//   - HopCount: hop distance to the destination, precomputed by one
//     unweighted breadth-first pass over the reversed graph.
//
// The engine does not enforce admissibility. Supplying a heuristic that
// never overestimates the true remaining cost is the caller's burden
// when optimality is required; HopCount is admissible only when every
// traversable edge weighs at least 1.
//
// Constraints, determinism, error taxonomy and the diagnostic counters
// (NodesVisited, EdgesRelaxed) follow package dijkstra exactly; a query
// answered by either engine reports the same Found flag and the same
// total weight.
package astar
