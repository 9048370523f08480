package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skylath/skylath/builder"
	"github.com/skylath/skylath/core"
	"github.com/skylath/skylath/csr"
	"github.com/skylath/skylath/matrix"
)

func sampleRecords() []builder.Record {
	return []builder.Record{
		{Origin: "a", Destination: "b", Carrier: "airline1", Weight: 2},
		{Origin: "b", Destination: "c", Carrier: "airline2", Weight: 3},
		{Origin: "a", Destination: "c", Carrier: "airline1", Weight: 10},
	}
}

func TestNew_AllIncrementalKinds(t *testing.T) {
	for _, kind := range builder.Kinds() {
		if kind == builder.KindCSR {
			continue
		}
		g, err := builder.New(kind)
		require.NoError(t, err, kind.String())
		require.NotNil(t, g, kind.String())
		assert.Equal(t, 0, g.NodeCount(), kind.String())
	}
}

func TestNew_CSRNotIncremental(t *testing.T) {
	_, err := builder.New(builder.KindCSR)
	assert.ErrorIs(t, err, builder.ErrNotIncremental)
}

func TestNew_UnknownKind(t *testing.T) {
	_, err := builder.New(builder.Kind(99))
	assert.ErrorIs(t, err, builder.ErrUnknownKind)
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "adjacency-list", builder.KindAdjacencyList.String())
	assert.Equal(t, "csr", builder.KindCSR.String())
	assert.Equal(t, "kind(99)", builder.Kind(99).String())
}

func TestReplay_StopsAtFirstBadRecord(t *testing.T) {
	g, err := builder.New(builder.KindAdjacencyList)
	require.NoError(t, err)

	records := []builder.Record{
		{Origin: "a", Destination: "b", Carrier: "X", Weight: 1},
		{Origin: "b", Destination: "c", Carrier: "X", Weight: -1},
		{Origin: "c", Destination: "d", Carrier: "X", Weight: 1},
	}
	err = builder.Replay(g, records)
	require.ErrorIs(t, err, core.ErrInvalidWeight)
	assert.Contains(t, err.Error(), "record 1")

	// The first record landed, the rest did not.
	assert.True(t, g.HasNode("a"))
	assert.False(t, g.HasNode("d"))
	assert.Equal(t, 1, g.EdgeCount())
}

func TestBuild_EveryKind(t *testing.T) {
	for _, kind := range builder.Kinds() {
		g, err := builder.Build(kind, sampleRecords())
		require.NoError(t, err, kind.String())
		assert.Equal(t, 3, g.NodeCount(), kind.String())
		assert.Equal(t, 3, g.EdgeCount(), kind.String())
		assert.Len(t, g.Neighbors("a"), 2, kind.String())
	}
}

func TestBuild_CSRIsImmutableForm(t *testing.T) {
	g, err := builder.Build(builder.KindCSR, sampleRecords())
	require.NoError(t, err)

	_, ok := g.(*csr.Graph)
	assert.True(t, ok)
	_, ok = g.(core.Mutable)
	assert.False(t, ok, "csr must not expose mutation")
}

func TestBuild_OffsetArrayComesFinalized(t *testing.T) {
	g, err := builder.Build(builder.KindOffsetArray, sampleRecords())
	require.NoError(t, err)

	oa, ok := g.(*csr.OffsetArray)
	require.True(t, ok)
	assert.True(t, oa.Finalized())
	assert.ErrorIs(t, oa.AddNode("x"), csr.ErrFinalized)
}

func TestBuild_MatrixCapacityOption(t *testing.T) {
	_, err := builder.Build(builder.KindMatrix, sampleRecords(), builder.WithMatrixCapacity(2))
	assert.ErrorIs(t, err, matrix.ErrCapacityExceeded)

	g, err := builder.Build(builder.KindMatrix, sampleRecords(), builder.WithMatrixCapacity(3))
	require.NoError(t, err)
	assert.Equal(t, 3, g.NodeCount())
}

func TestRouteWeight(t *testing.T) {
	tests := []struct {
		name string
		in   core.Ratings
		want float64
	}{
		{"all fives", core.Ratings{Overall: 5, ValueForMoney: 5, Entertainment: 5, CabinStaff: 5, SeatComfort: 5}, 1.0},
		{"all ones", core.Ratings{Overall: 1, ValueForMoney: 1, Entertainment: 1, CabinStaff: 1, SeatComfort: 1}, 5.0},
		{"single dimension", core.Ratings{Overall: 4}, 2.0},
		{"renormalized pair", core.Ratings{Overall: 5, SeatComfort: 3}, 1.0 / 0.6},
		{"all missing", core.Ratings{}, 3.0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, builder.RouteWeight(tc.in), 1e-9)
		})
	}
}

func TestRouteWeight_HigherRatedIsCheaper(t *testing.T) {
	good := builder.RouteWeight(core.Ratings{Overall: 5, SeatComfort: 5})
	poor := builder.RouteWeight(core.Ratings{Overall: 2, SeatComfort: 2})
	assert.Less(t, good, poor)
}
