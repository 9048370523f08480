package adjacency_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skylath/skylath/adjacency"
	"github.com/skylath/skylath/core"
)

func TestList_ImplicitNodeCreation(t *testing.T) {
	g := adjacency.NewList()
	require.NoError(t, g.AddEdge("AMS", core.Edge{To: "FRA", Carrier: "KL", Weight: 2}))

	assert.True(t, g.HasNode("ams"))
	assert.True(t, g.HasNode("fra"))
	assert.Equal(t, 2, g.NodeCount())
	assert.Equal(t, 1, g.EdgeCount())
}

func TestList_AddNodeIdempotent(t *testing.T) {
	g := adjacency.NewList()
	require.NoError(t, g.AddNode("AMS"))
	require.NoError(t, g.AddNode("ams"))
	require.NoError(t, g.AddNode(" Ams "))

	assert.Equal(t, 1, g.NodeCount())
}

func TestList_EmptyNodeID(t *testing.T) {
	g := adjacency.NewList()
	assert.ErrorIs(t, g.AddNode("  "), core.ErrEmptyNodeID)
	assert.ErrorIs(t, g.AddEdge("", core.Edge{To: "fra", Weight: 1}), core.ErrEmptyNodeID)
	assert.ErrorIs(t, g.AddEdge("ams", core.Edge{To: "", Weight: 1}), core.ErrEmptyNodeID)
}

func TestList_LookupIsCaseInsensitive(t *testing.T) {
	g := adjacency.NewList()
	require.NoError(t, g.AddEdge("AMS", core.Edge{To: "Fra", Carrier: "KL", Weight: 2}))

	assert.True(t, g.HasNode("AMS"))
	assert.Len(t, g.Neighbors("aMs"), 1)
	assert.Equal(t, "fra", g.Neighbors("AMS")[0].To)
}

func TestList_NeighborsUnknownNodeIsEmpty(t *testing.T) {
	g := adjacency.NewList()
	require.NoError(t, g.AddNode("ams"))

	assert.Empty(t, g.Neighbors("ams"), "known node, no outgoing edges")
	assert.Empty(t, g.Neighbors("zzz"), "unknown node")
}

func TestList_RejectsInvalidWeight(t *testing.T) {
	g := adjacency.NewList()
	err := g.AddEdge("ams", core.Edge{To: "fra", Carrier: "KL", Weight: -1})
	assert.ErrorIs(t, err, core.ErrInvalidWeight)
	assert.Equal(t, 0, g.EdgeCount())
	assert.Equal(t, 0, g.NodeCount(), "rejected edge must not create nodes")
}

func TestList_NodesSorted(t *testing.T) {
	g := adjacency.NewList()
	for _, id := range []string{"nrt", "ams", "fra"} {
		require.NoError(t, g.AddNode(id))
	}

	assert.Equal(t, []string{"ams", "fra", "nrt"}, g.Nodes())
}

func TestList_ParallelEdgesKept(t *testing.T) {
	g := adjacency.NewList()
	require.NoError(t, g.AddEdge("ams", core.Edge{To: "fra", Carrier: "KL", Weight: 2}))
	require.NoError(t, g.AddEdge("ams", core.Edge{To: "fra", Carrier: "LH", Weight: 3}))

	assert.Equal(t, 2, g.EdgeCount())
	assert.Len(t, g.Neighbors("ams"), 2)
}

func TestList_NeighborsReturnsCopy(t *testing.T) {
	g := adjacency.NewList()
	require.NoError(t, g.AddEdge("ams", core.Edge{To: "fra", Carrier: "KL", Weight: 2}))

	n := g.Neighbors("ams")
	n[0].Weight = 99
	assert.InDelta(t, 2.0, g.Neighbors("ams")[0].Weight, 0, "internal state must be shielded from callers")
}

func TestList_InsertionOrderPreserved(t *testing.T) {
	g := adjacency.NewList()
	require.NoError(t, g.AddEdge("hub", core.Edge{To: "ccc", Carrier: "X", Weight: 3}))
	require.NoError(t, g.AddEdge("hub", core.Edge{To: "aaa", Carrier: "X", Weight: 1}))
	require.NoError(t, g.AddEdge("hub", core.Edge{To: "bbb", Carrier: "X", Weight: 2}))

	n := g.Neighbors("hub")
	require.Len(t, n, 3)
	assert.Equal(t, "ccc", n[0].To)
	assert.Equal(t, "aaa", n[1].To)
	assert.Equal(t, "bbb", n[2].To)
}
