// SPDX-License-Identifier: MIT
// Package: ftcenters/builder
//
// impl_basic.go: deterministic topologies: Isolated, Path, Cycle, Star, Complete, Barbell.
//
// Contract:
//   • Vertices are added via cfg.idFn in ascending index order.
//   • Edges are emitted in a stable order.
//   • Weight policy: cfg.weightFn(cfg.rng) on weighted graphs, else 0.
//   • Errors are sentinels wrapped with the method name; never panics.

package builder

import (
	"fmt"

	"github.com/katalvlaran/ftcenters/core"
)

const (
	methodIsolated = "Isolated"
	methodPath     = "Path"
	methodCycle    = "Cycle"
	methodStar     = "Star"
	methodComplete = "Complete"
	methodBarbell  = "Barbell"

	minPathNodes   = 2
	minCycleNodes  = 3
	minStarLeaves  = 1
	minClique      = 1
	minBarbellSide = 2

	// StarHubID is the ID of the hub vertex created by Star.
	StarHubID = "Center"
)

// addVertices inserts ids idFn(from)..idFn(to-1).
func addVertices(g *core.Graph, cfg builderConfig, method string, from, to int) error {
	for i := from; i < to; i++ {
		if err := g.AddVertex(cfg.idFn(i)); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", method, cfg.idFn(i), err)
		}
	}

	return nil
}

func addEdge(g *core.Graph, cfg builderConfig, method, u, v string) error {
	w := cfg.weight(g.Weighted())
	if _, err := g.AddEdge(u, v, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%s→%s, w=%g): %w", method, u, v, w, err)
	}

	return nil
}

// Isolated returns a Constructor that adds n vertices and no edges.
func Isolated(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < 1 {
			return fmt.Errorf("%s: n=%d < min=1: %w", methodIsolated, n, ErrTooFewVertices)
		}

		return addVertices(g, cfg, methodIsolated, 0, n)
	}
}

// Path returns a Constructor that builds the path P_n: 0–1–…–(n-1).
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		if err := addVertices(g, cfg, methodPath, 0, n); err != nil {
			return err
		}
		for i := 0; i+1 < n; i++ {
			if err := addEdge(g, cfg, methodPath, cfg.idFn(i), cfg.idFn(i+1)); err != nil {
				return err
			}
		}

		return nil
	}
}

// Cycle returns a Constructor that builds an n-vertex simple cycle C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		if err := addVertices(g, cfg, methodCycle, 0, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err := addEdge(g, cfg, methodCycle, cfg.idFn(i), cfg.idFn((i+1)%n)); err != nil {
				return err
			}
		}

		return nil
	}
}

// Star returns a Constructor that builds a star with hub StarHubID and
// `leaves` leaves named idFn(0)…idFn(leaves-1).
func Star(leaves int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if leaves < minStarLeaves {
			return fmt.Errorf("%s: leaves=%d < min=%d: %w", methodStar, leaves, minStarLeaves, ErrTooFewVertices)
		}
		if err := g.AddVertex(StarHubID); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", methodStar, StarHubID, err)
		}
		if err := addVertices(g, cfg, methodStar, 0, leaves); err != nil {
			return err
		}
		for i := 0; i < leaves; i++ {
			if err := addEdge(g, cfg, methodStar, StarHubID, cfg.idFn(i)); err != nil {
				return err
			}
		}

		return nil
	}
}

// Complete returns a Constructor that builds the complete graph K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minClique {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minClique, ErrTooFewVertices)
		}

		return clique(g, cfg, methodComplete, 0, n)
	}
}

// Barbell returns a Constructor that builds two K_k cliques, 0..k-1 and
// k..2k-1, joined by the single bridge (k-1)–k.
func Barbell(k int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if k < minBarbellSide {
			return fmt.Errorf("%s: k=%d < min=%d: %w", methodBarbell, k, minBarbellSide, ErrTooFewVertices)
		}
		if err := clique(g, cfg, methodBarbell, 0, k); err != nil {
			return err
		}
		if err := clique(g, cfg, methodBarbell, k, 2*k); err != nil {
			return err
		}

		return addEdge(g, cfg, methodBarbell, cfg.idFn(k-1), cfg.idFn(k))
	}
}

// clique adds vertices from..to-1 and every edge among them in (i<j) order.
func clique(g *core.Graph, cfg builderConfig, method string, from, to int) error {
	if err := addVertices(g, cfg, method, from, to); err != nil {
		return err
	}
	for i := from; i < to; i++ {
		for j := i + 1; j < to; j++ {
			if err := addEdge(g, cfg, method, cfg.idFn(i), cfg.idFn(j)); err != nil {
				return err
			}
		}
	}

	return nil
}
