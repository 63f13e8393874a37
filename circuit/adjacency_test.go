package circuit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kirchhoff/circuit"
)

// TestAdjacency_ConnectMirrorsVoltage checks the two cells written by Connect.
func TestAdjacency_ConnectMirrorsVoltage(t *testing.T) {
	adj, err := circuit.NewAdjacency(2)
	require.NoError(t, err)
	require.NoError(t, adj.Connect(0, 1, 2, 5))

	assert.Equal(t, circuit.Branch{Resistance: 2, Voltage: 5}, adj.At(0, 1))
	assert.Equal(t, circuit.Branch{Resistance: 2, Voltage: -5}, adj.At(1, 0))
	assert.True(t, adj.Linked(1, 0))
	assert.False(t, adj.Linked(0, 0))
	assert.NoError(t, adj.Validate())
}

// TestAdjacency_SetGrows checks growth on write and the NoBranch fill.
func TestAdjacency_SetGrows(t *testing.T) {
	adj, err := circuit.NewAdjacency(2)
	require.NoError(t, err)
	require.NoError(t, adj.Connect(0, 1, 1, 0))

	require.NoError(t, adj.Set(3, 0, circuit.Branch{Resistance: 4, Voltage: 0}))
	assert.Equal(t, 4, adj.Order())
	assert.Equal(t, circuit.Branch{Resistance: 1, Voltage: 0}, adj.At(0, 1)) // preserved
	assert.Equal(t, circuit.NoBranch, adj.At(2, 2))
	assert.Equal(t, circuit.NoBranch, adj.At(7, 0)) // outside the table

	assert.ErrorIs(t, adj.Set(-1, 0, circuit.NoBranch), circuit.ErrBadVertex)
	_, err = circuit.NewAdjacency(-1)
	assert.ErrorIs(t, err, circuit.ErrBadVertex)
}

// TestAdjacency_ConnectErrors covers the rejected branches.
func TestAdjacency_ConnectErrors(t *testing.T) {
	adj, err := circuit.NewAdjacency(0)
	require.NoError(t, err)

	assert.ErrorIs(t, adj.Connect(1, 1, 1, 0), circuit.ErrInvalidEdge)
	assert.ErrorIs(t, adj.Connect(0, 1, -1, 0), circuit.ErrNegativeResistance)
	assert.ErrorIs(t, adj.Connect(-2, 1, 1, 0), circuit.ErrBadVertex)
}

// TestAdjacency_Validate covers asymmetric and negative cells.
func TestAdjacency_Validate(t *testing.T) {
	oneWay, _ := circuit.NewAdjacency(2)
	require.NoError(t, oneWay.Set(0, 1, circuit.Branch{Resistance: 1}))
	assert.ErrorIs(t, oneWay.Validate(), circuit.ErrAsymmetric)

	mismatch, _ := circuit.NewAdjacency(2)
	require.NoError(t, mismatch.Set(0, 1, circuit.Branch{Resistance: 1}))
	require.NoError(t, mismatch.Set(1, 0, circuit.Branch{Resistance: 2}))
	assert.ErrorIs(t, mismatch.Validate(), circuit.ErrAsymmetric)

	negative, _ := circuit.NewAdjacency(2)
	require.NoError(t, negative.Set(0, 1, circuit.Branch{Resistance: -3}))
	require.NoError(t, negative.Set(1, 0, circuit.Branch{Resistance: -3}))
	assert.ErrorIs(t, negative.Validate(), circuit.ErrNegativeResistance)
}

// TestAdjacency_EdgesAndClone checks the canonical edge list and copy independence.
func TestAdjacency_EdgesAndClone(t *testing.T) {
	adj, _ := circuit.NewAdjacency(3)
	require.NoError(t, adj.Connect(2, 0, 1, 0))
	require.NoError(t, adj.Connect(0, 1, 1, 0))

	assert.Equal(t, []circuit.Edge{{From: 0, To: 1}, {From: 0, To: 2}}, adj.Edges())

	cp := adj.Clone()
	require.NoError(t, cp.Connect(1, 2, 9, 9))
	assert.False(t, adj.Linked(1, 2))
	assert.True(t, cp.Linked(1, 2))
}

// TestBranch_String checks the "(2R, 0V)" rendering.
func TestBranch_String(t *testing.T) {
	assert.Equal(t, "(2R, 0V)", circuit.Branch{Resistance: 2}.String())
	assert.Equal(t, "(1.5R, -12V)", circuit.Branch{Resistance: 1.5, Voltage: -12}.String())
	assert.Equal(t, "(-)", circuit.NoBranch.String())
	assert.False(t, circuit.NoBranch.IsPresent())
	assert.True(t, circuit.Branch{Resistance: -1, Voltage: 0}.IsPresent())
}

// TestEdge_Ordering covers Less, Reversed and Canonical.
func TestEdge_Ordering(t *testing.T) {
	a, b := circuit.Edge{From: 0, To: 5}, circuit.Edge{From: 1, To: 0}
	assert.True(t, a.Less(b))
	assert.False(t, b.Less(a))
	assert.True(t, circuit.Edge{From: 1, To: 0}.Less(circuit.Edge{From: 1, To: 2}))
	assert.Equal(t, circuit.Edge{From: 0, To: 1}, b.Reversed())
	assert.Equal(t, circuit.Edge{From: 0, To: 1}, b.Canonical())
	assert.Equal(t, "1-0", b.String())
}
