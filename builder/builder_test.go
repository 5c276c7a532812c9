// SPDX-License-Identifier: MIT

package builder_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ftcenters/builder"
	"github.com/katalvlaran/ftcenters/core"
)

var weighted = []core.GraphOption{core.WithWeighted()}

func TestDeterministicTopologies(t *testing.T) {
	cases := []struct {
		name     string
		cons     builder.Constructor
		vertices int
		edges    int
	}{
		{"isolated", builder.Isolated(4), 4, 0},
		{"path", builder.Path(5), 5, 4},
		{"cycle", builder.Cycle(6), 6, 6},
		{"star", builder.Star(10), 11, 10},
		{"complete", builder.Complete(5), 5, 10},
		{"barbell", builder.Barbell(3), 6, 7},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			g, err := builder.BuildGraph(weighted, nil, tc.cons)
			require.NoError(t, err)
			require.Equal(t, tc.vertices, g.VertexCount())
			require.Equal(t, tc.edges, g.EdgeCount())
			for _, e := range g.Edges() {
				require.Equal(t, 1.0, e.Weight)
			}
		})
	}
}

func TestBarbellBridge(t *testing.T) {
	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithPrefix("v")}, builder.Barbell(3))
	require.NoError(t, err)
	require.True(t, g.HasEdge("v2", "v3"))
	require.False(t, g.HasEdge("v0", "v3"))
	for _, e := range g.Edges() {
		require.Zero(t, e.Weight, "unweighted graphs get zero weights")
	}
}

func TestConstructorErrors(t *testing.T) {
	_, err := builder.BuildGraph(nil, nil, builder.Cycle(2))
	require.ErrorIs(t, err, builder.ErrTooFewVertices)
	_, err = builder.BuildGraph(nil, nil, nil)
	require.ErrorIs(t, err, builder.ErrConstructFailed)
	_, err = builder.BuildGraph(weighted, nil, builder.RandomGeometric(5, 10))
	require.ErrorIs(t, err, builder.ErrNeedRandSource)
	_, err = builder.BuildGraph(weighted, []builder.BuilderOption{builder.WithSeed(1)}, builder.RandomGeometric(5, 0))
	require.ErrorIs(t, err, builder.ErrBadRadius)

	require.Panics(t, func() { builder.WithConstWeight(-1) })
	require.Panics(t, func() { builder.WithRand(nil) })
}

func TestRandomGeometric(t *testing.T) {
	build := func() *core.Graph {
		g, err := builder.BuildGraph(weighted,
			[]builder.BuilderOption{builder.WithSeed(42), builder.WithSide(10)},
			builder.RandomGeometric(30, 3))
		require.NoError(t, err)
		return g
	}
	g1, g2 := build(), build()
	require.Equal(t, 30, g1.VertexCount())
	require.Equal(t, g1.EdgeCount(), g2.EdgeCount(), "same seed, same graph")

	for _, e := range g1.Edges() {
		x1, _ := g1.Metadata(e.From, builder.MetaX)
		y1, _ := g1.Metadata(e.From, builder.MetaY)
		x2, _ := g1.Metadata(e.To, builder.MetaX)
		y2, _ := g1.Metadata(e.To, builder.MetaY)
		d := builder.Point{X: x1.(float64), Y: y1.(float64)}.Dist(builder.Point{X: x2.(float64), Y: y2.(float64)})
		require.InDelta(t, d, e.Weight, 1e-12)
		require.LessOrEqual(t, e.Weight, 3.0)
	}
}
