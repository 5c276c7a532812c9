// SPDX-License-Identifier: MIT

package flow

import (
	"errors"
	"fmt"
	"log/slog"
)

// Sentinel errors for flow networks and solvers.
var (
	// ErrNilNetwork is returned when a nil *Network is passed to a solver.
	ErrNilNetwork = errors.New("flow: network is nil")

	// ErrNodeNotFound is returned when an arc or terminal references a missing node.
	ErrNodeNotFound = errors.New("flow: node not found")

	// ErrSourceEqualSink is returned when max-flow terminals coincide.
	ErrSourceEqualSink = errors.New("flow: source equals sink")

	// ErrUnbalanced is returned when node supplies do not sum to zero.
	ErrUnbalanced = errors.New("flow: supplies do not sum to zero")

	// ErrInfeasible is returned when no flow satisfies every supply and bound.
	ErrInfeasible = errors.New("flow: no feasible flow")

	// ErrNegativeCycle is returned when the residual network has a negative-cost cycle.
	ErrNegativeCycle = errors.New("flow: negative-cost cycle")

	// ErrIterationLimit is returned when MaxIterations augmentations did not finish the flow.
	ErrIterationLimit = errors.New("flow: iteration limit reached")
)

// ArcError is returned when an arc has inconsistent bounds.
type ArcError struct {
	Index        int
	Lower, Upper int64
}

func (e ArcError) Error() string {
	return fmt.Sprintf("flow: arc %d has invalid bounds [%d, %d]", e.Index, e.Lower, e.Upper)
}

// FlowOptions configures the flow algorithms.
//   - Epsilon: reduced costs within Epsilon of zero are treated as zero (default 1e-9).
//   - MaxIterations: cap on augmenting paths; zero or negative means unlimited.
//   - LevelRebuildInterval: for Dinic, rebuild level graph every N augmentations.
//   - Logger: optional; receives one debug record per augmentation.
type FlowOptions struct {
	Epsilon              float64
	MaxIterations        int
	LevelRebuildInterval int
	Logger               *slog.Logger
}

// defaultEpsilon is the tolerance used when FlowOptions.Epsilon is unset.
const defaultEpsilon = 1e-9

// DefaultOptions returns FlowOptions with Epsilon 1e-9 and no limits.
func DefaultOptions() FlowOptions {
	return FlowOptions{Epsilon: defaultEpsilon}
}

// normalize fills zero values with defaults.
func (o *FlowOptions) normalize() {
	if o.Epsilon <= 0 {
		o.Epsilon = defaultEpsilon
	}
}

func (o *FlowOptions) debug(msg string, args ...any) {
	if o.Logger != nil {
		o.Logger.Debug(msg, args...)
	}
}
