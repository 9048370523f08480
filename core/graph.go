// This file declares the representation contract: the read-only Graph
// capability set, the Mutable ingestion surface, and the optional
// PrefixQuerier capability.

package core

// Graph is the read-only capability set every representation provides.
// A search engine depends on this contract alone; it never knows which
// concrete layout it is given.
type Graph interface {
	// HasNode reports whether id (after canonicalization) exists.
	HasNode(id string) bool

	// Nodes returns a snapshot of all node IDs in lexicographic order.
	// The returned slice is owned by the caller and stays stable even if
	// the graph is mutated afterwards.
	Nodes() []string

	// Neighbors returns all outgoing edges of origin. It returns an
	// empty slice - never an error - both for a known node without
	// outgoing edges and for an unknown node.
	Neighbors(origin string) []Edge

	// NodeCount returns the number of distinct nodes.
	NodeCount() int

	// EdgeCount returns the total number of edges (parallel edges count
	// individually).
	EdgeCount() int
}

// Mutable is the ingestion surface of representations that accept an
// incremental edge stream. Compacted forms built from a finished source
// graph (csr.Graph) intentionally do not implement it.
type Mutable interface {
	Graph

	// AddNode registers a node. Idempotent on repeats; nodes are also
	// created implicitly the first time they appear as an edge endpoint.
	AddNode(id string) error

	// AddEdge appends a directed edge from origin. Both endpoints are
	// created implicitly. The edge weight is validated at this boundary
	// (ErrInvalidWeight on rejection).
	AddEdge(origin string, e Edge) error
}

// PrefixQuerier is the optional capability of representations that
// index destinations by prefix (the route-partitioned trie).
type PrefixQuerier interface {
	// NeighborsByPrefix returns every outgoing edge of origin whose
	// destination ID starts with prefix. The result is set-equal to
	// filtering Neighbors(origin) with a starts-with predicate.
	NeighborsByPrefix(origin, prefix string) []Edge
}
