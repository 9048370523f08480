// Package trie provides the route-partitioned trie representation:
// each origin owns a flat neighbor slice (for ordinary full
// enumeration) and a prefix tree over the destination IDs reachable
// from that origin. Insertion feeds both structures.
//
// The trie buys one extra capability over the base contract:
// NeighborsByPrefix walks the path spelled by a prefix byte by byte and
// returns exactly the edges stored at or below that node - the same
// *set* a linear scan over Neighbors with a starts-with predicate would
// produce, in O(|prefix| + matches) instead of O(out-degree). That set
// equivalence is the representation's core correctness property and is
// what the package's tests pin down.
//
// The tree is keyed on bytes of the canonical (lower-cased) destination
// ID, so a prefix walk agrees exactly with strings.HasPrefix over
// canonical IDs.
//
// Mutable for life; no edge deletion (rebuild instead). Not safe for
// concurrent mutation.
package trie
