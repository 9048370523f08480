// Package matrix provides the dense, fixed-capacity grid
// representation of a route graph.
//
// The grid is sized once at construction: node → row/column index is
// assigned on first sight and is permanent, and the representation
// fails with ErrCapacityExceeded when more distinct nodes appear than
// the grid supports - it never silently truncates or overwrites.
//
// Each (origin, destination) cell holds a bucket of edges rather than a
// single weight, so parallel edges with distinct carriers survive and
// enumeration yields the same edge multiset as every other
// representation.
//
// Neighbors scans the full row, skipping empty cells: O(capacity)
// regardless of actual out-degree. That is the deliberate worst case
// this layout exists to demonstrate, in contrast to the list-backed and
// compressed forms.
package matrix
