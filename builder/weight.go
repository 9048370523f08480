package builder

import "github.com/skylath/skylath/core"

// Rating-dimension coefficients of the fixed weighted average. A
// dimension reading 0 is treated as missing and its coefficient is
// renormalized away.
const (
	coeffOverall       = 0.4
	coeffValueForMoney = 0.2
	coeffEntertainment = 0.1
	coeffCabinStaff    = 0.1
	coeffSeatComfort   = 0.2

	// fallbackWeight is used when every dimension is missing: the
	// midpoint of the 1..5 weight range.
	fallbackWeight = 3.0

	// ratingCeiling converts a rating into a weight: higher-rated routes
	// get lower traversal cost.
	ratingCeiling = 6.0
)

// RouteWeight derives an edge weight from a raw rating 5-tuple:
// each present dimension contributes (6 − rating) scaled by its fixed
// coefficient, and the sum is renormalized over the coefficients of the
// dimensions actually present. Ratings of 0 count as missing; when all
// five are missing the midpoint fallback 3.0 is returned.
//
// This is loader-side derivation: representations store whatever scalar
// they are handed and never recompute it.
func RouteWeight(r core.Ratings) float64 {
	dims := [5]struct {
		rating float64
		coeff  float64
	}{
		{r.Overall, coeffOverall},
		{r.ValueForMoney, coeffValueForMoney},
		{r.Entertainment, coeffEntertainment},
		{r.CabinStaff, coeffCabinStaff},
		{r.SeatComfort, coeffSeatComfort},
	}

	var sum, present float64
	for _, d := range dims {
		if d.rating <= 0 {
			continue
		}
		sum += (ratingCeiling - d.rating) * d.coeff
		present += d.coeff
	}
	if present == 0 {
		return fallbackWeight
	}

	return sum / present
}
