// SPDX-License-Identifier: MIT

package cluster

import (
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/ftcenters/flow"
)

// Strategy selects how candidate thresholds are visited.
type Strategy int

const (
	// StrategyBinary checks the largest threshold, then bisects for the smallest feasible one.
	StrategyBinary Strategy = iota

	// StrategyLinear tries thresholds in ascending order and stops at the first success.
	StrategyLinear
)

func (s Strategy) String() string {
	switch s {
	case StrategyBinary:
		return "binary"
	case StrategyLinear:
		return "linear"
	}

	return fmt.Sprintf("Strategy(%d)", int(s))
}

// ParseStrategy accepts "binary" or "linear".
func ParseStrategy(s string) (Strategy, error) {
	switch s {
	case "", "binary":
		return StrategyBinary, nil
	case "linear":
		return StrategyLinear, nil
	}

	return 0, fmt.Errorf("%w: unknown strategy %q", ErrInvalidParameter, s)
}

// tracerName is the instrumentation scope of every span emitted by Solve.
const tracerName = "github.com/katalvlaran/ftcenters/cluster"

// Option configures Solve.
type Option func(*options)

type options struct {
	seed        int64
	strategy    Strategy
	maxAttempts int
	parallelism int
	logger      *slog.Logger
	metrics     *Metrics
	tracer      trace.Tracer
	solver      flow.Solver
	flowOpts    flow.FlowOptions

	err error
}

func defaultOptions() options {
	return options{
		seed:        defaultSeed,
		strategy:    StrategyBinary,
		parallelism: 1,
		logger:      slog.Default(),
		tracer:      otel.Tracer(tracerName),
		flowOpts:    flow.DefaultOptions(),
	}
}

// WithSeed fixes the base seed; equal seeds give equal plans.
func WithSeed(seed int64) Option {
	return func(o *options) { o.seed = seed }
}

// WithStrategy selects the threshold visiting order.
func WithStrategy(s Strategy) Option {
	return func(o *options) {
		if s != StrategyBinary && s != StrategyLinear {
			o.err = fmt.Errorf("%w: strategy %d", ErrInvalidParameter, int(s))
			return
		}
		o.strategy = s
	}
}

// WithMaxAttempts caps the number of threshold attempts; n ≤ 0 means unlimited.
func WithMaxAttempts(n int) Option {
	return func(o *options) { o.maxAttempts = n }
}

// WithParallelism bounds how many components of one attempt are processed concurrently.
func WithParallelism(n int) Option {
	return func(o *options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: parallelism %d", ErrInvalidParameter, n)
			return
		}
		o.parallelism = n
	}
}

// WithLogger sets the structured logger; nil keeps slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithMetrics records attempt outcomes and timings into m.
func WithMetrics(m *Metrics) Option {
	return func(o *options) { o.metrics = m }
}

// WithTracerProvider takes spans from tp instead of the global provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(o *options) {
		if tp != nil {
			o.tracer = tp.Tracer(tracerName)
		}
	}
}

// WithSolver replaces the min-cost flow solver used for domain assignment.
func WithSolver(s flow.Solver) Option {
	return func(o *options) { o.solver = s }
}

// WithFlowOptions configures the default solver and the max-flow pass.
func WithFlowOptions(fo flow.FlowOptions) Option {
	return func(o *options) { o.flowOpts = fo }
}
