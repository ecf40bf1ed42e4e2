package core_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/flownet/core"
)

// TestErrorKinds verifies that every typed error unwraps to its kind and
// carries the structured payload callers need for messaging.
func TestErrorKinds(t *testing.T) {
	nf := &core.NotFoundError{Entity: "edge", ID: "e7"}
	require.True(t, errors.Is(nf, core.ErrNotFound))
	require.Contains(t, nf.Error(), `edge "e7"`)

	ii := &core.InvalidInputError{Reason: "capacity must not be negative, got -3"}
	require.True(t, errors.Is(ii, core.ErrInvalidInput))
	require.Contains(t, ii.Error(), "invalid input")

	nv := &core.NetworkNotValidError{Reason: "network has no source"}
	require.True(t, errors.Is(nv, core.ErrNetworkNotValid))
	require.Contains(t, nv.Error(), "network not valid")

	// kinds are mutually exclusive
	require.False(t, errors.Is(nf, core.ErrInvalidInput))
	require.False(t, errors.Is(ii, core.ErrNetworkNotValid))
	require.False(t, errors.Is(nv, core.ErrNotFound))
}

// TestResidualCapacity covers the derived value on a mutated edge.
func TestResidualCapacity(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddNode("A", "", false, false)
	require.NoError(t, err)
	_, err = g.AddNode("B", "", false, false)
	require.NoError(t, err)

	e, err := g.AddEdge("e1", "A", "B", 10)
	require.NoError(t, err)
	require.Equal(t, 10.0, e.ResidualCapacity())

	require.NoError(t, g.SetEdgeFlow("e1", 3.5))
	require.Equal(t, 6.5, e.ResidualCapacity())

	// saturated edge has no residual capacity left
	require.NoError(t, g.SetEdgeFlow("e1", 10))
	require.Equal(t, 0.0, e.ResidualCapacity())
}
