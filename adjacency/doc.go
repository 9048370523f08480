// Package adjacency provides the mutable list-backed representations:
// List, the append-ordered baseline, and Sorted, which keeps each
// origin's edges in non-decreasing weight order.
//
// List is the reference layout the other representations are measured
// against: insertion is amortized O(1) and Neighbors returns the edges
// in insertion order. Sorted pays O(log k + k) per insert (k = current
// out-degree, dominated by the shift) to answer the question whether
// pre-ordering by weight helps a priority-queue-driven search; equal
// weights keep insertion order, so the ordering is a stable tie-break.
//
// Neither engine may assume any particular edge order from either
// variant - the ordering is a property of the layout, not the contract.
//
// Both types implement core.Mutable and are mutable for life; edge
// deletion is not supported (rebuild instead). Not safe for concurrent
// mutation.
package adjacency
