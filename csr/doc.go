// Package csr provides the two compressed representations that share
// one layout: a single contiguous edge array grouped by origin, with a
// parallel offset array such that the edges of node i occupy
// [offsets[i], offsets[i+1]).
//
// The two types differ only in construction protocol:
//
//   - Graph is built once, in a single call to FromGraph, from an
//     already-complete source graph: a first pass counts out-degrees and
//     prefix-sums them into offsets, a second pass copies every edge
//     into its slot through a per-node write cursor. Graph has no
//     mutating methods at all - invalid mutation is a compile error,
//     not a runtime check.
//   - OffsetArray accepts edges incrementally into per-origin buffers,
//     then a single explicit Finalize call performs the same compaction.
//     Before Finalize, Neighbors reads the in-progress buffers (that is
//     the one documented pre-finalize behavior); after Finalize it is a
//     zero-allocation slice view. Mutating after Finalize, or calling
//     Finalize twice, returns ErrFinalized.
//
// Both forms are immutable post-construction and therefore safe for
// concurrent readers. Node indices follow the lexicographic order of
// node IDs, which keeps the layout deterministic for a given logical
// graph regardless of the source representation.
package csr
