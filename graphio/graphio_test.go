// SPDX-License-Identifier: MIT

package graphio_test

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ftcenters/builder"
	"github.com/katalvlaran/ftcenters/cluster"
	"github.com/katalvlaran/ftcenters/core"
	"github.com/katalvlaran/ftcenters/graphio"
)

const triangle = `
vertices:
  - {id: a, x: 0, y: 0}
  - {id: b, x: 3, y: 4}
  - {id: c, x: 3, y: 0}
edges:
  - {from: a, to: b}
  - {from: b, to: c, weight: 1.5}
  - {from: a, to: c}
`

func TestDecode_EuclideanDefault(t *testing.T) {
	g, err := graphio.Decode(strings.NewReader(triangle))
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b", "c"}, g.Vertices())
	require.Equal(t, []float64{1.5, 3, 5}, g.DistinctWeights())

	x, ok := g.Metadata("b", builder.MetaX)
	require.True(t, ok)
	require.Equal(t, 3.0, x)
}

func TestDecode_Errors(t *testing.T) {
	cases := map[string]struct {
		doc  string
		want error
	}{
		"missing position": {"edges: [{from: a, to: b}]", graphio.ErrMissingWeight},
		"duplicate":        {"vertices: [{id: a}, {id: a}]", graphio.ErrDuplicateVertex},
		"half position":    {"vertices: [{id: a, x: 1}]", graphio.ErrBadDocument},
		"unknown field":    {"vertexes: []", graphio.ErrBadDocument},
		"negative weight":  {"edges: [{from: a, to: b, weight: -1}]", core.ErrBadWeight},
	}
	for name, tc := range cases {
		_, err := graphio.Decode(strings.NewReader(tc.doc))
		require.True(t, errors.Is(err, tc.want), "%s: got %v", name, err)
	}
}

func TestDecode_Empty(t *testing.T) {
	g, err := graphio.Decode(strings.NewReader(""))
	require.NoError(t, err)
	require.Zero(t, g.VertexCount())
}

func TestFileRoundTrip(t *testing.T) {
	g, err := builder.BuildGraph([]core.GraphOption{core.WithWeighted()},
		[]builder.BuilderOption{builder.WithSeed(5)}, builder.RandomGeometric(15, 40))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "g.yaml")
	require.NoError(t, graphio.SaveFile(path, g))
	back, err := graphio.LoadFile(path)
	require.NoError(t, err)

	require.Equal(t, g.Vertices(), back.Vertices())
	require.Equal(t, g.EdgeCount(), back.EdgeCount())
	require.Equal(t, g.DistinctWeights(), back.DistinctWeights())
}

func TestEncodePlan(t *testing.T) {
	g, err := graphio.Decode(strings.NewReader(triangle))
	require.NoError(t, err)
	p := cluster.Params{MaxCenters: 2, MaxClientsPerCenter: 2}
	plan, err := cluster.Solve(context.Background(), g, p)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, graphio.EncodePlan(&buf, plan, nil))
	require.Contains(t, buf.String(), "feasible: true")
	require.Contains(t, buf.String(), "mode: standard")

	rep, err := graphio.DecodeReport(&buf)
	require.NoError(t, err)
	require.True(t, rep.Feasible)
	require.Equal(t, plan.Threshold, rep.Plan.Threshold)
	require.Equal(t, plan.Centers, rep.Plan.Centers)
	require.NoError(t, rep.Plan.Validate(g, p))

	buf.Reset()
	require.NoError(t, graphio.EncodePlan(&buf, nil, cluster.ErrInfeasible))
	rep, err = graphio.DecodeReport(&buf)
	require.NoError(t, err)
	require.False(t, rep.Feasible)
	require.Nil(t, rep.Plan)
	require.Equal(t, cluster.ErrInfeasible.Error(), rep.Error)
}
