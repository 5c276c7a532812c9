// SPDX-License-Identifier: MIT

package cluster

import "errors"

// Sentinel errors returned by Solve and Plan.Validate.
var (
	// ErrGraphNil is returned when Solve receives a nil graph.
	ErrGraphNil = errors.New("cluster: graph is nil")

	// ErrInvalidParameter is returned for out-of-range Params or options.
	ErrInvalidParameter = errors.New("cluster: invalid parameter")

	// ErrInfeasible is returned when every candidate threshold failed.
	ErrInfeasible = errors.New("cluster: no feasible threshold")

	// ErrSearchTimeout is returned when the attempt cap or the context deadline
	// stopped the search before a plan was found.
	ErrSearchTimeout = errors.New("cluster: search budget exhausted")

	// ErrComponentBound rejects an attempt whose components need more than K centers.
	ErrComponentBound = errors.New("cluster: component lower bound exceeds center budget")

	// ErrSolverFailure rejects an attempt whose min-cost flow could not be solved.
	ErrSolverFailure = errors.New("cluster: flow solver failed")

	// ErrBudgetExceeded rejects an attempt that activated more than K centers.
	ErrBudgetExceeded = errors.New("cluster: too many centers")

	// ErrInvalidPlan is returned by Plan.Validate.
	ErrInvalidPlan = errors.New("cluster: invalid plan")

	// errInternal marks a broken internal invariant (for example a cyclic monarch forest).
	errInternal = errors.New("cluster: internal invariant violated")
)

// attemptLocal reports whether err only rejects the current threshold.
func attemptLocal(err error) bool {
	return errors.Is(err, ErrComponentBound) ||
		errors.Is(err, ErrSolverFailure) ||
		errors.Is(err, ErrBudgetExceeded) ||
		errors.Is(err, ErrInvalidPlan)
}
