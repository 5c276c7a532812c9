// SPDX-License-Identifier: MIT
// Package: ftcenters/builder
//
// impl_geometric.go: RandomGeometric(n, radius): random points in a square,
// connected when closer than radius.
//
// Contract:
//   • Requires cfg.rng (ErrNeedRandSource), n ≥ 1, radius > 0.
//   • Positions are uniform in [0, side]² and stored as vertex metadata (MetaX, MetaY).
//   • Edge weight is the Euclidean distance on weighted graphs (weightFn is ignored).
//   • Pairs are emitted in (i<j) order, so a fixed seed yields a fixed graph.

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/ftcenters/core"
)

const methodRandomGeometric = "RandomGeometric"

// Point is a planar position.
type Point struct{ X, Y float64 }

// Dist returns the Euclidean distance between p and q.
func (p Point) Dist(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// RandomGeometric returns a Constructor for a random geometric graph.
func RandomGeometric(n int, radius float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < 1 {
			return fmt.Errorf("%s: n=%d < min=1: %w", methodRandomGeometric, n, ErrTooFewVertices)
		}
		if !(radius > 0) {
			return fmt.Errorf("%s: radius=%g: %w", methodRandomGeometric, radius, ErrBadRadius)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomGeometric, ErrNeedRandSource)
		}

		pts := make([]Point, n)
		for i := range pts {
			pts[i] = Point{X: cfg.rng.Float64() * cfg.side, Y: cfg.rng.Float64() * cfg.side}
			id := cfg.idFn(i)
			if err := g.AddVertex(id); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodRandomGeometric, id, err)
			}
			_ = g.SetMetadata(id, MetaX, pts[i].X)
			_ = g.SetMetadata(id, MetaY, pts[i].Y)
		}

		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				d := pts[i].Dist(pts[j])
				if d > radius {
					continue
				}
				w := 0.0
				if g.Weighted() {
					w = d
				}
				if _, err := g.AddEdge(cfg.idFn(i), cfg.idFn(j), w); err != nil {
					return fmt.Errorf("%s: AddEdge(%s→%s): %w", methodRandomGeometric, cfg.idFn(i), cfg.idFn(j), err)
				}
			}
		}

		return nil
	}
}
