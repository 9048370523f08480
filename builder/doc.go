// Package builder constructs any route-graph representation from an
// ordered stream of (origin, destination, carrier, weight) records.
//
// Each representation is named by a Kind constant and resolved through
// an explicit Kind→constructor mapping - never a runtime type lookup by
// string. New returns an empty mutable instance of a Kind; Build
// replays a record stream into one and takes care of the per-Kind
// construction protocol (the CSR Kind is built by replaying into an
// adjacency list and converting, the offset-array Kind is finalized
// after the replay).
//
// The package also carries the loader-side RouteWeight helper that
// derives an edge weight from the raw rating 5-tuple. The core
// representations only ever consume the final scalar; they never
// recompute it.
package builder
