package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGraph_LookupExactMatch(t *testing.T) {
	g := NewGraph()
	g.Add("shoulder", Euler{})

	n, ok := g.Lookup("shoulder")
	require.True(t, ok)
	assert.Equal(t, "shoulder", n.Name)

	// Lookup is case-sensitive - no normalization.
	_, ok = g.Lookup("Shoulder")
	assert.False(t, ok)
	_, ok = g.Lookup("shoulder ")
	assert.False(t, ok)
}

func TestGraph_AddReplacesExisting(t *testing.T) {
	g := NewGraph()
	g.Add("elbow", Euler{X: 0.1})
	g.Add("elbow", Euler{X: 0.2})

	require.Equal(t, 1, g.Len())
	n, ok := g.Lookup("elbow")
	require.True(t, ok)
	assert.Equal(t, 0.2, n.Rotation.X)
}

func TestGraph_NamesSorted(t *testing.T) {
	g := NewGraph()
	g.Add("wrist", Euler{})
	g.Add("elbow", Euler{})
	g.Add("shoulder", Euler{})

	assert.Equal(t, []string{"elbow", "shoulder", "wrist"}, g.Names())
}

func TestNode_RotationIsMutable(t *testing.T) {
	g := NewGraph()
	n := g.Add("j0", Euler{Z: 0.5})

	n.Rotation = Euler{Z: 1.5}

	got, ok := g.Lookup("j0")
	require.True(t, ok)
	assert.Equal(t, Euler{Z: 1.5}, got.Rotation)
}
