// Package core defines the shared route-graph data model and the
// representation contract every concrete graph layout implements.
//
// Overview:
//
//   - Edge is the directed, carrier-labelled, weighted connection shared
//     by every representation; Ratings carries the optional raw 5-tuple
//     the external loader derived the weight from.
//   - Graph is the read-only capability set a search engine consumes:
//     node existence, sorted node snapshots, neighbor enumeration and
//     counts. Mutable adds the ingestion surface (AddNode/AddEdge), and
//     PrefixQuerier is the optional prefix-lookup capability of the
//     route-partitioned trie.
//   - Constraints restricts which edges a search may traverse (hop limit
//     plus carrier allow/block lists); PathResult is the immutable,
//     caller-owned answer to a single query.
//
// Node identity is an opaque string key, case-normalized at the storage
// boundary via CanonicalID so lookups are insensitive to input casing.
// Weights must be finite and non-negative; ValidateWeight is the single
// boundary check every representation's insertion path runs.
//
// The contract deliberately has no error return on Neighbors: asking for
// the neighbors of an unknown node yields an empty slice, exactly like a
// known node without outgoing edges. Absence only becomes an error at
// query time, when a search engine reports ErrNotFound for a missing
// origin or destination.
//
// Concurrency: representations are not safe for concurrent mutation.
// The intended pattern is build-once-then-read-many; only the compacted
// forms (csr.Graph, finalized csr.OffsetArray) are safe for concurrent
// readers.
package core
