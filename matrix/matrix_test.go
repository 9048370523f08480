package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skylath/skylath/core"
	"github.com/skylath/skylath/matrix"
)

func TestNew_RejectsBadCapacity(t *testing.T) {
	_, err := matrix.New(0)
	assert.ErrorIs(t, err, matrix.ErrBadCapacity)
	_, err = matrix.New(-3)
	assert.ErrorIs(t, err, matrix.ErrBadCapacity)
}

func TestGraph_ContractBasics(t *testing.T) {
	g, err := matrix.New(8)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge("AMS", core.Edge{To: "FRA", Carrier: "KL", Weight: 2}))
	require.NoError(t, g.AddEdge("fra", core.Edge{To: "nrt", Carrier: "LH", Weight: 3}))

	assert.True(t, g.HasNode("Ams"))
	assert.Equal(t, []string{"ams", "fra", "nrt"}, g.Nodes())
	assert.Equal(t, 3, g.NodeCount())
	assert.Equal(t, 2, g.EdgeCount())
	assert.Empty(t, g.Neighbors("nrt"))
	assert.Empty(t, g.Neighbors("unknown"))

	n := g.Neighbors("ams")
	require.Len(t, n, 1)
	assert.Equal(t, "fra", n[0].To)
}

func TestGraph_CapacityExceeded(t *testing.T) {
	g, err := matrix.New(2)
	require.NoError(t, err)
	require.NoError(t, g.AddNode("a"))
	require.NoError(t, g.AddNode("b"))
	require.NoError(t, g.AddNode("a"), "repeat of a known node never consumes capacity")

	err = g.AddNode("c")
	assert.ErrorIs(t, err, matrix.ErrCapacityExceeded)

	// The overflowing edge must be rejected, not truncated into the grid.
	err = g.AddEdge("a", core.Edge{To: "c", Carrier: "X", Weight: 1})
	assert.ErrorIs(t, err, matrix.ErrCapacityExceeded)
	assert.Equal(t, 0, g.EdgeCount())
	assert.Equal(t, 2, g.NodeCount())
}

func TestGraph_ParallelEdgesSurvive(t *testing.T) {
	g, err := matrix.New(4)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge("ams", core.Edge{To: "fra", Carrier: "KL", Weight: 2}))
	require.NoError(t, g.AddEdge("ams", core.Edge{To: "fra", Carrier: "LH", Weight: 4}))

	n := g.Neighbors("ams")
	require.Len(t, n, 2, "a second carrier on the same pair must not overwrite the first")
	assert.Equal(t, 2, g.EdgeCount())

	carriers := []string{n[0].Carrier, n[1].Carrier}
	assert.ElementsMatch(t, []string{"KL", "LH"}, carriers)
}

func TestGraph_RejectsInvalidWeight(t *testing.T) {
	g, err := matrix.New(4)
	require.NoError(t, err)
	assert.ErrorIs(t, g.AddEdge("ams", core.Edge{To: "fra", Weight: -1}), core.ErrInvalidWeight)
	assert.Equal(t, 0, g.EdgeCount())
	assert.Equal(t, 0, g.NodeCount())
}
