package builder

import (
	"errors"
	"fmt"

	"github.com/skylath/skylath/adjacency"
	"github.com/skylath/skylath/core"
	"github.com/skylath/skylath/csr"
	"github.com/skylath/skylath/halfedge"
	"github.com/skylath/skylath/matrix"
	"github.com/skylath/skylath/trie"
)

// Sentinel errors for representation construction.
var (
	// ErrUnknownKind indicates a Kind outside the declared enumeration.
	ErrUnknownKind = errors.New("builder: unknown representation kind")

	// ErrNotIncremental indicates New was asked for a Kind that cannot be
	// built incrementally (CSR is converted from a finished graph).
	ErrNotIncremental = errors.New("builder: kind does not support incremental construction")
)

// DefaultMatrixCapacity sizes the matrix grid when the caller does not
// override it. Oversized relative to typical route datasets so nodes
// discovered mid-stream do not overflow the grid.
const DefaultMatrixCapacity = 512

// Kind enumerates the concrete representations.
type Kind int

const (
	// KindAdjacencyList is the append-ordered baseline.
	KindAdjacencyList Kind = iota
	// KindSortedAdjacencyList keeps edges in non-decreasing weight order.
	KindSortedAdjacencyList
	// KindMatrix is the fixed-capacity grid.
	KindMatrix
	// KindCSR is the build-once compressed form (Build only).
	KindCSR
	// KindOffsetArray is the incrementally-built compressed form.
	KindOffsetArray
	// KindTrie is the route-partitioned trie.
	KindTrie
	// KindHalfEdge is the doubly-linked pointer-chasing form.
	KindHalfEdge
)

// String names the Kind for diagnostics.
func (k Kind) String() string {
	switch k {
	case KindAdjacencyList:
		return "adjacency-list"
	case KindSortedAdjacencyList:
		return "sorted-adjacency-list"
	case KindMatrix:
		return "matrix"
	case KindCSR:
		return "csr"
	case KindOffsetArray:
		return "offset-array"
	case KindTrie:
		return "trie"
	case KindHalfEdge:
		return "half-edge"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Kinds returns every declared Kind, in declaration order. Handy for
// exercising a property against all representations.
func Kinds() []Kind {
	return []Kind{
		KindAdjacencyList,
		KindSortedAdjacencyList,
		KindMatrix,
		KindCSR,
		KindOffsetArray,
		KindTrie,
		KindHalfEdge,
	}
}

// Record is one tuple of the construction input stream. Ratings is the
// optional raw 5-tuple Weight was derived from.
type Record struct {
	Origin      string
	Destination string
	Carrier     string
	Weight      float64
	Ratings     *core.Ratings
}

// Options tunes representation construction.
type Options struct {
	// MatrixCapacity sizes the KindMatrix grid.
	MatrixCapacity int
}

// Option is a functional option for New and Build.
type Option func(*Options)

// WithMatrixCapacity overrides the matrix grid capacity.
func WithMatrixCapacity(n int) Option {
	return func(o *Options) { o.MatrixCapacity = n }
}

// DefaultOptions returns the construction defaults.
func DefaultOptions() Options {
	return Options{MatrixCapacity: DefaultMatrixCapacity}
}

// New returns an empty mutable instance of kind. KindCSR has no
// incremental form and returns ErrNotIncremental - use Build, or
// csr.FromGraph on a finished graph.
func New(kind Kind, opts ...Option) (core.Mutable, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	switch kind {
	case KindAdjacencyList:
		return adjacency.NewList(), nil
	case KindSortedAdjacencyList:
		return adjacency.NewSorted(), nil
	case KindMatrix:
		return matrix.New(cfg.MatrixCapacity)
	case KindCSR:
		return nil, fmt.Errorf("%w: %s", ErrNotIncremental, kind)
	case KindOffsetArray:
		return csr.NewOffsetArray(), nil
	case KindTrie:
		return trie.New(), nil
	case KindHalfEdge:
		return halfedge.New(), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownKind, kind)
	}
}

// Replay feeds records into g in stream order, stopping at the first
// rejected record.
func Replay(g core.Mutable, records []Record) error {
	for i, rec := range records {
		e := core.Edge{
			To:      rec.Destination,
			Carrier: rec.Carrier,
			Weight:  rec.Weight,
			Ratings: rec.Ratings,
		}
		if err := g.AddEdge(rec.Origin, e); err != nil {
			return fmt.Errorf("builder: record %d (%s→%s): %w", i, rec.Origin, rec.Destination, err)
		}
	}

	return nil
}

// Build constructs a finished graph of kind from a record stream,
// applying the per-Kind construction protocol:
//
//   - KindCSR replays into an adjacency list and converts via
//     csr.FromGraph (the build-from-existing interface).
//   - KindOffsetArray replays and then finalizes, so the returned graph
//     is already in compacted read mode.
//   - Every other Kind is returned as replayed, still mutable.
func Build(kind Kind, records []Record, opts ...Option) (core.Graph, error) {
	if kind == KindCSR {
		src := adjacency.NewList()
		if err := Replay(src, records); err != nil {
			return nil, err
		}

		return csr.FromGraph(src)
	}

	g, err := New(kind, opts...)
	if err != nil {
		return nil, err
	}
	if err = Replay(g, records); err != nil {
		return nil, err
	}
	if oa, ok := g.(*csr.OffsetArray); ok {
		if err = oa.Finalize(); err != nil {
			return nil, err
		}
	}

	return g, nil
}
