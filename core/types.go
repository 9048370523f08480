// This file declares the Edge and Ratings value types, the shared
// sentinel errors, and the boundary helpers CanonicalID and
// ValidateWeight used by every representation's insertion path.
//
// Errors:
//
//	ErrNotFound      - origin or destination absent from the graph at query time.
//	ErrInvalidWeight - negative or non-finite weight presented at insertion.
//	ErrEmptyNodeID   - node ID canonicalizes to the empty string.

package core

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Sentinel errors shared across representations and search engines.
var (
	// ErrNotFound indicates an operation referenced a node that does not
	// exist in the graph. It is distinct from an unreachable destination,
	// which is not an error (PathResult.Found == false).
	ErrNotFound = errors.New("core: node not found")

	// ErrInvalidWeight indicates a negative, NaN or infinite edge weight
	// was presented to an insertion path. Weights are validated at the
	// storage boundary and never reach a search engine.
	ErrInvalidWeight = errors.New("core: invalid edge weight")

	// ErrEmptyNodeID indicates a node ID that canonicalizes to "".
	ErrEmptyNodeID = errors.New("core: node ID is empty")
)

// Ratings is the optional raw 5-tuple of rating dimensions an edge
// weight was derived from. The core only ever consumes the final scalar
// weight; Ratings is carried verbatim for callers that want to report it.
type Ratings struct {
	Overall       float64
	ValueForMoney float64
	Entertainment float64
	CabinStaff    float64
	SeatComfort   float64
}

// Edge represents a directed connection to a destination node.
//
// To is the canonical destination node ID, Carrier the label of the
// operator serving the connection, and Weight the final scalar cost
// (finite, non-negative). Ratings is optional and may be nil.
type Edge struct {
	// To is the destination node ID (canonical form).
	To string

	// Carrier labels the operator of this connection. Carrier names are
	// matched exactly by Constraints; they are not case-normalized.
	Carrier string

	// Weight is the traversal cost. Must be finite and >= 0.
	Weight float64

	// Ratings optionally carries the raw dimensions Weight was derived
	// from. Never consulted by the core.
	Ratings *Ratings
}

// String renders the edge for diagnostics, e.g. `ams (KL, 1.800)`.
func (e Edge) String() string {
	return fmt.Sprintf("%s (%s, %.3f)", e.To, e.Carrier, e.Weight)
}

// CanonicalID normalizes a node identifier at the storage boundary:
// surrounding whitespace is trimmed and the ID is lower-cased, so that
// lookups are insensitive to input casing. Every representation applies
// CanonicalID to node IDs on insertion and on lookup.
func CanonicalID(id string) string {
	return strings.ToLower(strings.TrimSpace(id))
}

// ValidateWeight reports whether w is admissible as an edge weight.
// Negative, NaN and infinite weights are rejected with ErrInvalidWeight;
// representations call this on every insertion so bad weights never
// reach a search engine.
func ValidateWeight(w float64) error {
	if math.IsNaN(w) || math.IsInf(w, 0) {
		return fmt.Errorf("%w: %v is not finite", ErrInvalidWeight, w)
	}
	if w < 0 {
		return fmt.Errorf("%w: %v is negative", ErrInvalidWeight, w)
	}

	return nil
}
