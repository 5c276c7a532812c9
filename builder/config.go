// SPDX-License-Identifier: MIT
// Package: ftcenters/builder
//
// config.go: resolved configuration shared by all constructors.

package builder

import (
	"math/rand"
	"strconv"
)

// builderConfig holds resolved builder options.
type builderConfig struct {
	// idFn maps an index to a vertex ID.
	idFn func(int) string

	// rng is the random source for stochastic constructors; nil unless set.
	rng *rand.Rand

	// weightFn produces edge weights for weighted graphs.
	weightFn func(*rand.Rand) float64

	// side is the square [0, side]² used by RandomGeometric.
	side float64
}

const (
	defaultConstWeight = 1.0   // constant edge weight when weighted
	defaultSide        = 100.0 // RandomGeometric bounding square
)

// Metadata keys for planar positions written by RandomGeometric.
const (
	MetaX = "x"
	MetaY = "y"
)

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     decimalID,
		weightFn: func(*rand.Rand) float64 { return defaultConstWeight },
		side:     defaultSide,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// decimalID is the default ID scheme: "0", "1", "2", ...
func decimalID(i int) string {
	return strconv.Itoa(i)
}

// weight returns the edge weight for g under cfg: weightFn when g is
// weighted, zero otherwise.
func (c builderConfig) weight(weighted bool) float64 {
	if !weighted {
		return 0
	}

	return c.weightFn(c.rng)
}
