// SPDX-License-Identifier: MIT

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ftcenters/core"
)

func weightedPath(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithWeighted())
	for _, e := range []struct {
		from, to string
		w        float64
	}{{"A", "B", 1}, {"B", "C", 4}, {"C", "D", 2}} {
		_, err := g.AddEdge(e.from, e.to, e.w)
		require.NoError(t, err)
	}

	return g
}

func TestThresholdView(t *testing.T) {
	g := weightedPath(t)
	v := core.ThresholdView(g, 2)

	require.Equal(t, g.Vertices(), v.Vertices(), "all vertices survive")
	require.Equal(t, 2, v.EdgeCount())
	require.False(t, v.HasEdge("B", "C"))
	require.Equal(t, 3, g.EdgeCount(), "source untouched")

	empty := core.ThresholdView(g, 0)
	require.Equal(t, 4, empty.VertexCount())
	require.Zero(t, empty.EdgeCount())
}

func TestUnweightedView(t *testing.T) {
	g := weightedPath(t)
	u := core.UnweightedView(g)
	require.False(t, u.Weighted())
	for _, e := range u.Edges() {
		require.Zero(t, e.Weight)
	}

	// new edge IDs continue the source sequence
	eid, err := u.AddEdge("A", "D", 0)
	require.NoError(t, err)
	require.Equal(t, "e4", eid)
}

func TestInducedSubgraphAndClone(t *testing.T) {
	g := weightedPath(t)
	require.NoError(t, g.SetMetadata("A", "x", 3.0))

	sub := core.InducedSubgraph(g, map[string]bool{"A": true, "B": true, "D": true})
	require.Equal(t, []string{"A", "B", "D"}, sub.Vertices())
	require.Equal(t, 1, sub.EdgeCount())
	x, ok := sub.Metadata("A", "x")
	require.True(t, ok)
	require.Equal(t, 3.0, x)

	c := g.Clone()
	require.NoError(t, c.RemoveVertex("B"))
	require.True(t, g.HasVertex("B"))
	require.Equal(t, 3, g.EdgeCount())
	require.Equal(t, 1, c.EdgeCount())
}
