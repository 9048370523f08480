// Package dijkstra implements the constrained label-setting
// shortest-path engine over the core.Graph contract.
//
// FindPath computes the minimum-weight path between one origin and one
// destination, honoring the routing constraints of core.Constraints
// (hop limit, carrier allow/block lists). It is written once against
// the contract and produces identical routing decisions on every
// representation built from the same input stream.
//
// Algorithm:
//
//   - A min-priority frontier keyed by accumulated weight, with ties
//     broken by insertion order (first-discovered wins), keeps results
//     deterministic across representations with equal weights.
//   - Each node is in one of three states: unvisited, frontier, or
//     settled. A node enters the frontier the first time a traversable
//     edge reaches it, and is settled when popped as the current
//     minimum - the standard non-negative-weight invariant means it is
//     never revisited.
//   - The frontier uses the lazy decrease-key pattern: improvements push
//     duplicate entries and stale ones are skipped on pop.
//
// Constraint application: an edge is skipped during relaxation if it
// violates the carrier allow/block rule or if following it would exceed
// the hop limit.
//
// Termination: the destination is settled (success) or the frontier
// drains (unreachable - reported as Found=false, which is not an
// error). A missing origin or destination is an error, wrapped around
// core.ErrNotFound, and is never conflated with unreachability.
//
// The engine assumes non-negative weights and validates the assumption
// with an upfront O(V+E) scan; a negative or non-finite weight is a
// fatal configuration error wrapped around core.ErrInvalidWeight.
//
// Complexity: O((V + E) log V) time, O(V + E) space.
package dijkstra
