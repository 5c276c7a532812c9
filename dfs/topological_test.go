// SPDX-License-Identifier: MIT

package dfs_test

import (
	"context"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ftcenters/core"
	"github.com/katalvlaran/ftcenters/dfs"
)

func directed(t *testing.T, edges ...[2]string) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithDirected(true))
	for _, e := range edges {
		_, err := g.AddEdge(e[0], e[1], 0)
		require.NoError(t, err)
	}

	return g
}

func TestTopologicalSort_Forest(t *testing.T) {
	g := directed(t, [2]string{"r", "a"}, [2]string{"r", "b"}, [2]string{"a", "c"}, [2]string{"s", "d"})
	order, err := dfs.TopologicalSort(g)
	require.NoError(t, err)
	require.Len(t, order, 6)

	pos := make(map[string]int, len(order))
	for i, id := range order {
		pos[id] = i
	}
	for _, e := range g.Edges() {
		require.Less(t, pos[e.From], pos[e.To], "%s must precede %s", e.From, e.To)
	}
	require.Equal(t, []string{"s", "r", "d", "b", "a", "c"}, order)
}

func TestTopologicalSort_Errors(t *testing.T) {
	_, err := dfs.TopologicalSort(nil)
	require.ErrorIs(t, err, dfs.ErrGraphNil)

	_, err = dfs.TopologicalSort(core.NewGraph())
	require.ErrorIs(t, err, dfs.ErrUndirectedGraph)

	cyc := directed(t, [2]string{"a", "b"}, [2]string{"b", "c"}, [2]string{"c", "a"})
	_, err = dfs.TopologicalSort(cyc)
	require.ErrorIs(t, err, dfs.ErrCycleDetected)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = dfs.TopologicalSort(directed(t, [2]string{"a", "b"}), dfs.WithCancelContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}

func TestTopologicalSort_DeepChain(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	prev := "v0"
	for i := 1; i < 5000; i++ {
		id := "v" + strconv.Itoa(i)
		_, err := g.AddEdge(prev, id, 0)
		require.NoError(t, err)
		prev = id
	}
	order, err := dfs.TopologicalSort(g)
	require.NoError(t, err)
	require.Equal(t, "v0", order[0])
	require.Equal(t, prev, order[len(order)-1])
}
