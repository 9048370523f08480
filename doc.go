// Package skylath is an in-memory toolkit for building route graphs in
// interchangeable internal layouts and answering constrained
// shortest-path queries that behave identically on every one of them.
//
// What's inside:
//
//	core/      — Edge/Constraints/PathResult data model + the Graph contract
//	adjacency/ — adjacency-list baseline and its weight-sorted variant
//	matrix/    — fixed-capacity dense grid (the deliberate worst case)
//	csr/       — compressed-row layout: build-once CSR and incremental OffsetArray
//	trie/      — route-partitioned trie with prefix queries over destinations
//	halfedge/  — doubly-linked per-origin edge lists (pointer-chasing contrast)
//	dijkstra/  — constrained label-setting shortest-path engine
//	astar/     — A* generalization with pluggable heuristics
//	builder/   — Kind→constructor factory and record-stream replay
//
// Why interchangeable layouts?
//
// Each representation trades build cost, mutability, memory layout and
// neighbor-enumeration speed differently, yet all satisfy one
// contract - so a single search engine, written once against that
// contract, produces identical routing decisions regardless of which
// layout it is handed. The same logical graph, enumerated from any two
// representations built from the same input stream, yields the same
// edge multiset.
//
// Quick sketch:
//
//	g := adjacency.NewList()
//	g.AddEdge("AMS", core.Edge{To: "FRA", Carrier: "KL", Weight: 2})
//	g.AddEdge("FRA", core.Edge{To: "NRT", Carrier: "LH", Weight: 3})
//	res, err := dijkstra.FindPath(g, "AMS", "NRT", core.Constraints{})
//	// res.PathString() == "ams → fra → nrt", res.TotalWeight == 5
//
// Build once, then query: representations are single-threaded during
// construction; the compacted forms (csr.Graph, finalized OffsetArray)
// are safe for concurrent readers afterwards.
package skylath
