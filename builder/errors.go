// SPDX-License-Identifier: MIT
// Package: ftcenters/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context using %w.
//   • Constructors never panic at runtime; validation panics are confined to
//     option constructor functions (WithX...).

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter is smaller than the
// allowed minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrNeedRandSource indicates that a stochastic constructor requires a
// *rand.Rand in the resolved builderConfig (WithSeed/WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrBadRadius indicates a non-positive or NaN connection radius.
var ErrBadRadius = errors.New("builder: radius must be positive")

// ErrConstructFailed indicates that construction could not complete,
// for example because a nil constructor was supplied.
var ErrConstructFailed = errors.New("builder: construction failed")
