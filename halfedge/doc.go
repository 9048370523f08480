// Package halfedge provides the pointer-based contrast representation:
// each origin owns a doubly-linked list of edge records. Insertion
// appends at the tail; enumeration walks the list head to tail,
// chasing a pointer per edge.
//
// The layout exists to give the search engines a deliberately
// cache-unfriendly representation to compare against the contiguous
// forms - it adds no operations beyond the base contract.
//
// Mutable for life; no edge deletion (rebuild instead). Not safe for
// concurrent mutation.
package halfedge
