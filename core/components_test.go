package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsearch/core"
)

func TestComponents(t *testing.T) {
	g, err := core.NewGraph(6, []string{"A", "B", "C", "D", "E", "F"})
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 3, 1))
	require.NoError(t, g.AddEdge(4, 1, 1))
	require.NoError(t, g.AddEdge(3, 5, 1))

	assert.Equal(t, [][]int{{0, 3, 5}, {1, 4}, {2}}, g.Components())
}

func TestConnected(t *testing.T) {
	g, err := core.NewGraph(4, []string{"A", "B", "C", "D"})
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1, 2))
	require.NoError(t, g.AddEdge(2, 3, 2))

	ok, err := g.Connected(0, 1)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = g.Connected(1, 2)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = g.Connected(2, 2)
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = g.Connected(0, 4)
	assert.ErrorIs(t, err, core.ErrVertexOutOfRange)
}
