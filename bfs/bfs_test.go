// SPDX-License-Identifier: MIT

package bfs_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/ftcenters/bfs"
	"github.com/katalvlaran/ftcenters/core"
)

// pathGraph builds an undirected weighted path v0–v1–…–v(n-1) with unit weights.
func pathGraph(t *testing.T, ids ...string) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithWeighted())
	for i := 0; i+1 < len(ids); i++ {
		if _, err := g.AddEdge(ids[i], ids[i+1], 1); err != nil {
			t.Fatalf("AddEdge: %v", err)
		}
	}

	return g
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	if _, err := bfs.BFS(nil, "A"); !errors.Is(err, bfs.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
	g := core.NewGraph()
	if _, err := bfs.BFS(g, "missing"); !errors.Is(err, bfs.ErrStartVertexNotFound) {
		t.Errorf("missing start: want ErrStartVertexNotFound, got %v", err)
	}
	_ = g.AddVertex("A")
	if _, err := bfs.BFS(g, "A", bfs.WithMaxDepth(-1)); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("negative depth: want ErrOptionViolation, got %v", err)
	}
}

// TestBFS_WeightsIgnored checks hop distances on a weighted graph.
func TestBFS_WeightsIgnored(t *testing.T) {
	g := pathGraph(t, "A", "B", "C", "D")
	res, err := bfs.BFS(g, "A")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []string{"A", "B", "C", "D"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	if d := res.Depth["D"]; d != 3 {
		t.Errorf("Depth[D] = %d; want 3", d)
	}
	path, err := res.PathTo("D")
	if err != nil || !reflect.DeepEqual(path, []string{"A", "B", "C", "D"}) {
		t.Errorf("PathTo(D) = %v, %v", path, err)
	}
}

func TestBallAndFrontier(t *testing.T) {
	g := pathGraph(t, "A", "B", "C", "D", "E")
	ctx := context.Background()

	ball, err := bfs.Ball(ctx, g, "C", 1)
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"C", "B", "D"}; !reflect.DeepEqual(ball, want) {
		t.Errorf("Ball(C,1) = %v; want %v", ball, want)
	}

	ball, _ = bfs.Ball(ctx, g, "A", 0)
	if want := []string{"A"}; !reflect.DeepEqual(ball, want) {
		t.Errorf("Ball(A,0) = %v; want %v", ball, want)
	}

	front, err := bfs.Frontier(ctx, g, "A", 2)
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"C"}; !reflect.DeepEqual(front, want) {
		t.Errorf("Frontier(A,2) = %v; want %v", front, want)
	}

	front, _ = bfs.Frontier(ctx, g, "A", 9)
	if len(front) != 0 {
		t.Errorf("Frontier beyond diameter = %v; want empty", front)
	}
}

func TestBFS_FilterAndCancel(t *testing.T) {
	g := pathGraph(t, "A", "B", "C")
	res, err := bfs.BFS(g, "A", bfs.WithFilterNeighbor(func(_, n string) bool { return n != "B" }))
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Order) != 1 {
		t.Errorf("filtered Order = %v; want [A]", res.Order)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err = bfs.BFS(g, "A", bfs.WithContext(ctx)); !errors.Is(err, context.Canceled) {
		t.Errorf("cancelled: want context.Canceled, got %v", err)
	}

	stop := errors.New("stop")
	_, err = bfs.BFS(g, "A", bfs.WithOnVisit(func(id string, _ int) error {
		if id == "B" {
			return stop
		}
		return nil
	}))
	if !errors.Is(err, stop) {
		t.Errorf("OnVisit abort: want wrapped stop, got %v", err)
	}
}

func TestComponents(t *testing.T) {
	g := pathGraph(t, "c", "a", "b")
	_, _ = g.AddEdge("x", "y", 2)
	_ = g.AddVertex("lonely")

	comps, err := bfs.Components(context.Background(), g)
	if err != nil {
		t.Fatal(err)
	}
	want := [][]string{{"a", "b", "c"}, {"lonely"}, {"x", "y"}}
	if !reflect.DeepEqual(comps, want) {
		t.Errorf("Components = %v; want %v", comps, want)
	}

	if _, err = bfs.Components(context.Background(), nil); !errors.Is(err, bfs.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
}
