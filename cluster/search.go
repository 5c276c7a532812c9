// SPDX-License-Identifier: MIT

// File: search.go
// Role: Threshold search. Finds the smallest edge-weight threshold whose
//       subgraph admits a plan, trying one attempt per candidate.
// Determinism:
//   - Each candidate index gets its own seed derived from the base seed,
//     so a threshold yields the same plan whichever strategy reached it.

package cluster

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/ftcenters/core"
	"github.com/katalvlaran/ftcenters/flow"
)

// Solve computes a fault-tolerant capacitated clustering of g.
//
// Candidate thresholds are 0 followed by the distinct edge weights of g in
// ascending order. For each visited threshold t, the subgraph holding every
// vertex of g and the edges of weight ≤ t is clustered component by
// component. The plan of the smallest threshold found feasible is returned.
//
// Errors:
//   - ErrGraphNil, ErrInvalidParameter before any traversal;
//   - ErrInfeasible when every candidate failed (binary search gives up
//     as soon as the largest threshold fails);
//   - ErrSearchTimeout when WithMaxAttempts or the ctx deadline stopped
//     the search first;
//   - ctx.Err() on cancellation.
func Solve(ctx context.Context, g *core.Graph, params Params, opts ...Option) (*Plan, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if o.solver == nil {
		fo := o.flowOpts
		if fo.Logger == nil {
			fo.Logger = o.logger
		}
		o.solver = flow.NewSuccessiveShortestPaths(fo)
	}

	runID := uuid.NewString()
	s := &searcher{
		g:          g,
		env:        attemptEnv{params: params, opts: &o},
		thresholds: candidateThresholds(g),
		runID:      runID,
		log:        o.logger.With(slog.String("run_id", runID)),
	}

	ctx, span := o.tracer.Start(ctx, "cluster.Solve",
		trace.WithAttributes(
			attribute.String("run_id", runID),
			attribute.Int("vertices", g.VertexCount()),
			attribute.Int("edges", g.EdgeCount()),
			attribute.Int("max_centers", params.MaxCenters),
			attribute.Int("max_clients_per_center", params.MaxClientsPerCenter),
			attribute.Int("max_failed_centers", params.MaxFailedCenters),
			attribute.String("mode", params.mode().String()),
			attribute.String("strategy", o.strategy.String()),
		),
	)
	defer span.End()

	start := time.Now()
	var plan *Plan
	var err error
	if o.strategy == StrategyLinear {
		plan, err = s.linear(ctx)
	} else {
		plan, err = s.binary(ctx)
	}
	span.SetAttributes(attribute.Int("attempts", s.attempts))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		s.log.Warn("solve_failed",
			slog.Int("attempts", s.attempts),
			slog.Duration("elapsed", time.Since(start)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	plan.RunID = runID
	plan.Attempts = s.attempts
	o.metrics.observePlan(plan)
	span.SetAttributes(
		attribute.Float64("threshold", plan.Threshold),
		attribute.Int("centers", len(plan.Centers)),
	)
	span.SetStatus(codes.Ok, "")
	s.log.Info("solve_complete",
		slog.Float64("threshold", plan.Threshold),
		slog.Int("centers", len(plan.Centers)),
		slog.Int("components", plan.Components),
		slog.Int("attempts", s.attempts),
		slog.Duration("elapsed", time.Since(start)),
	)

	return plan, nil
}

// candidateThresholds is 0 followed by the distinct positive weights of g.
func candidateThresholds(g *core.Graph) []float64 {
	ws := g.DistinctWeights()
	if len(ws) > 0 && ws[0] == 0 {
		return ws
	}

	return append([]float64{0}, ws...)
}

type searcher struct {
	g          *core.Graph
	env        attemptEnv
	thresholds []float64
	runID      string
	log        *slog.Logger
	attempts   int
}

// linear tries thresholds in ascending order.
func (s *searcher) linear(ctx context.Context) (*Plan, error) {
	for i := range s.thresholds {
		plan, err := s.try(ctx, i)
		if err != nil {
			return nil, err
		}
		if plan != nil {
			return plan, nil
		}
	}

	return nil, fmt.Errorf("%w: %d thresholds tried", ErrInfeasible, len(s.thresholds))
}

// binary checks the largest threshold, then bisects for the smallest
// feasible index.
func (s *searcher) binary(ctx context.Context) (*Plan, error) {
	hi := len(s.thresholds) - 1
	best, err := s.try(ctx, hi)
	if err != nil {
		return nil, err
	}
	if best == nil {
		return nil, fmt.Errorf("%w: largest threshold %g fails", ErrInfeasible, s.thresholds[hi])
	}
	lo := 0
	for lo < hi {
		mid := lo + (hi-lo)/2
		plan, err := s.try(ctx, mid)
		if err != nil {
			return nil, err
		}
		if plan != nil {
			best, hi = plan, mid
		} else {
			lo = mid + 1
		}
	}

	return best, nil
}

// try runs the attempt for candidate idx. A nil plan with a nil error means
// the threshold was rejected.
func (s *searcher) try(ctx context.Context, idx int) (*Plan, error) {
	if limit := s.env.opts.maxAttempts; limit > 0 && s.attempts >= limit {
		return nil, fmt.Errorf("%w: %d attempts", ErrSearchTimeout, s.attempts)
	}
	if err := ctx.Err(); err != nil {
		return nil, s.contextError(err)
	}
	s.attempts++
	t := s.thresholds[idx]

	ctx, span := s.env.opts.tracer.Start(ctx, "cluster.attempt",
		trace.WithAttributes(
			attribute.Int("index", idx),
			attribute.Float64("threshold", t),
		),
	)
	defer span.End()

	s.log.Debug("threshold_attempt", slog.Int("index", idx), slog.Float64("threshold", t))
	start := time.Now()
	plan, err := s.env.runAttempt(ctx, s.g, t, deriveSeed(s.env.opts.seed, uint64(idx)))
	elapsed := time.Since(start)
	result := outcome(err)
	s.env.opts.metrics.observeAttempt(result, elapsed)
	span.SetAttributes(attribute.String("result", result))

	switch {
	case err == nil:
		span.SetStatus(codes.Ok, "")
		s.log.Debug("attempt_feasible",
			slog.Float64("threshold", t),
			slog.Int("centers", len(plan.Centers)),
			slog.Duration("elapsed", elapsed),
		)
		return plan, nil
	case attemptLocal(err):
		s.log.Info("attempt_rejected",
			slog.Float64("threshold", t),
			slog.String("reason", result),
			slog.String("detail", err.Error()),
		)
		return nil, nil
	default:
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, s.contextError(ctxErr)
		}
		return nil, fmt.Errorf("threshold %g: %w", t, err)
	}
}

func (s *searcher) contextError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v after %d attempts", ErrSearchTimeout, err, s.attempts)
	}

	return err
}

func outcome(err error) string {
	switch {
	case err == nil:
		return resultFeasible
	case errors.Is(err, ErrComponentBound):
		return resultPruned
	case errors.Is(err, ErrSolverFailure):
		return resultSolverFailure
	case errors.Is(err, ErrBudgetExceeded):
		return resultOverBudget
	case errors.Is(err, ErrInvalidPlan):
		return resultInvalidPlan
	}

	return resultError
}
