// SPDX-License-Identifier: MIT
// Package: ftcenters/builder
//
// options.go: functional options for BuildGraph.

package builder

import (
	"fmt"
	"math"
	"math/rand"
)

// BuilderOption mutates builderConfig.
type BuilderOption func(*builderConfig)

// WithIDScheme overrides the index→ID mapping. Panics on nil.
func WithIDScheme(fn func(int) string) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}

	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithPrefix names vertices prefix+index ("v0", "v1", ...).
func WithPrefix(prefix string) BuilderOption {
	return WithIDScheme(func(i int) string { return fmt.Sprintf("%s%d", prefix, i) })
}

// WithRand sets the random source. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed seeds a fresh random source.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightFn sets the edge weight generator. Panics on nil.
func WithWeightFn(fn func(*rand.Rand) float64) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}

	return func(c *builderConfig) {
		c.weightFn = fn
	}
}

// WithConstWeight makes every generated edge weigh w. Panics on negative w.
func WithConstWeight(w float64) BuilderOption {
	if w < 0 || math.IsNaN(w) {
		panic("builder: WithConstWeight(w<0)")
	}

	return WithWeightFn(func(*rand.Rand) float64 { return w })
}

// WithSide sets the bounding square side for RandomGeometric. Panics if not positive.
func WithSide(side float64) BuilderOption {
	if !(side > 0) {
		panic("builder: WithSide(side<=0)")
	}

	return func(c *builderConfig) {
		c.side = side
	}
}
