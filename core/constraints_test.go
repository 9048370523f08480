package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/skylath/skylath/core"
)

func edgeOn(carrier string) core.Edge {
	return core.Edge{To: "x", Carrier: carrier, Weight: 1}
}

func TestConstraints_ZeroValueIsUnconstrained(t *testing.T) {
	var c core.Constraints
	assert.True(t, c.Allows(edgeOn("KL"), 0))
	assert.True(t, c.Allows(edgeOn("KL"), 1_000_000))
}

func TestConstraints_MaxStops(t *testing.T) {
	c := core.Constraints{MaxStops: 2}
	// Taking the edge from a node reached in `stops` edges yields stops+1.
	assert.True(t, c.Allows(edgeOn("KL"), 0))
	assert.True(t, c.Allows(edgeOn("KL"), 1))
	assert.False(t, c.Allows(edgeOn("KL"), 2))
}

func TestConstraints_Blocklist(t *testing.T) {
	c := core.Constraints{Block: []string{"KL", "LH"}}
	assert.False(t, c.Allows(edgeOn("KL"), 0))
	assert.False(t, c.Allows(edgeOn("LH"), 0))
	assert.True(t, c.Allows(edgeOn("AF"), 0))
}

func TestConstraints_Allowlist(t *testing.T) {
	c := core.Constraints{Allow: []string{"KL"}}
	assert.True(t, c.Allows(edgeOn("KL"), 0))
	assert.False(t, c.Allows(edgeOn("AF"), 0))
}

func TestConstraints_BlockWinsOverAllow(t *testing.T) {
	c := core.Constraints{Allow: []string{"KL"}, Block: []string{"KL"}}
	assert.False(t, c.Allows(edgeOn("KL"), 0))
}

func TestConstraints_CarrierMatchIsExact(t *testing.T) {
	c := core.Constraints{Block: []string{"kl"}}
	assert.True(t, c.Allows(edgeOn("KL"), 0), "carrier names are not case-normalized")
}

func TestPathResult_Helpers(t *testing.T) {
	r := core.PathResult{
		Found: true,
		Path:  []string{"ams", "fra", "nrt"},
		Edges: []core.Edge{
			{To: "fra", Carrier: "KL", Weight: 2},
			{To: "nrt", Carrier: "LH", Weight: 3},
		},
		TotalWeight: 5,
	}
	assert.Equal(t, 2, r.Hops())
	assert.Equal(t, []string{"KL", "LH"}, r.Carriers())
	assert.Equal(t, "ams → fra → nrt", r.PathString())

	var empty core.PathResult
	assert.Equal(t, 0, empty.Hops())
	assert.Equal(t, "no path", empty.PathString())
}
