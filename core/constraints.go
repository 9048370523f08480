// This file declares Constraints, the routing restrictions a search
// engine applies while relaxing edges.

package core

// Constraints restricts which edges a search may traverse.
//
// An edge is traversable iff its carrier is absent from Block and
// (Allow is empty or the carrier is present in it), and following it
// would not exceed MaxStops edges on the path.
//
// The zero value is the unconstrained query: MaxStops <= 0 means
// unbounded, and empty lists impose no carrier restrictions.
type Constraints struct {
	// MaxStops caps the number of edges a returned path may contain.
	// Values <= 0 mean unbounded.
	MaxStops int

	// Allow, when non-empty, is the exclusive set of permitted carriers.
	Allow []string

	// Block lists carriers that must never be traversed. Block wins over
	// Allow when a carrier appears in both.
	Block []string
}

// Allows reports whether edge e may be traversed from a node reached in
// stops edges. Carrier names are matched exactly.
func (c Constraints) Allows(e Edge, stops int) bool {
	if c.MaxStops > 0 && stops+1 > c.MaxStops {
		return false
	}
	for _, b := range c.Block {
		if e.Carrier == b {
			return false
		}
	}
	if len(c.Allow) == 0 {
		return true
	}
	for _, a := range c.Allow {
		if e.Carrier == a {
			return true
		}
	}

	return false
}
