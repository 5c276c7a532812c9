// SPDX-License-Identifier: MIT

package dijkstra_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ftcenters/core"
	"github.com/katalvlaran/ftcenters/dijkstra"
)

func TestDijkstra_Validation(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	_, _, err := dijkstra.Dijkstra(g)
	require.ErrorIs(t, err, dijkstra.ErrEmptySource)

	_, _, err = dijkstra.Dijkstra(nil, dijkstra.Source("X"))
	require.ErrorIs(t, err, dijkstra.ErrNilGraph)

	_, _, err = dijkstra.Dijkstra(g, dijkstra.Source("X"))
	require.ErrorIs(t, err, dijkstra.ErrVertexNotFound)

	require.PanicsWithValue(t, dijkstra.ErrBadMaxDistance.Error(), func() {
		dijkstra.WithMaxDistance(-1)
	})
}

// TestDijkstra_UndirectedBothWays checks that an undirected edge is relaxed
// from either endpoint regardless of how it was inserted.
func TestDijkstra_UndirectedBothWays(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	_, _ = g.AddEdge("B", "A", 1.5)
	_, _ = g.AddEdge("C", "B", 2)
	_, _ = g.AddEdge("A", "C", 5)

	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithReturnPath())
	require.NoError(t, err)
	require.InDelta(t, 0, dist["A"], 1e-12)
	require.InDelta(t, 1.5, dist["B"], 1e-12)
	require.InDelta(t, 3.5, dist["C"], 1e-12)
	require.Equal(t, "B", prev["C"])
	require.Equal(t, "", prev["A"])
}

func TestDijkstra_DirectedAndUnreachable(t *testing.T) {
	g := core.NewGraph(core.WithWeighted(), core.WithDirected(true))
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("C", "A", 1)

	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source("A"))
	require.NoError(t, err)
	require.Nil(t, prev)
	require.Equal(t, 1.0, dist["B"])
	require.True(t, math.IsInf(dist["C"], 1))
}

func TestDijkstra_MaxDistance(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("B", "C", 1)
	_, _ = g.AddEdge("C", "D", 1)

	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithMaxDistance(2))
	require.NoError(t, err)
	require.Equal(t, 2.0, dist["C"])
	require.True(t, math.IsInf(dist["D"], 1))
}

func TestDijkstra_UnweightedZero(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", 0)
	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source("B"))
	require.NoError(t, err)
	require.Zero(t, dist["A"])
	require.False(t, errors.Is(err, dijkstra.ErrNegativeWeight))
}
