// SPDX-License-Identifier: MIT

package cluster

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Attempt outcome labels.
const (
	resultFeasible      = "feasible"
	resultPruned        = "pruned"
	resultSolverFailure = "solver_failure"
	resultOverBudget    = "over_budget"
	resultInvalidPlan   = "invalid_plan"
	resultError         = "error"
)

// Metrics holds the Prometheus collectors updated by Solve.
// A nil *Metrics records nothing.
type Metrics struct {
	attempts        *prometheus.CounterVec
	attemptDuration prometheus.Histogram
	flowDuration    prometheus.Histogram
	centers         prometheus.Gauge
	threshold       prometheus.Gauge
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		// Labels: result (feasible, pruned, solver_failure, over_budget, invalid_plan, error)
		attempts: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ftcenters",
			Name:      "attempts_total",
			Help:      "Threshold attempts by outcome",
		}, []string{"result"}),
		attemptDuration: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: "ftcenters",
			Name:      "attempt_duration_seconds",
			Help:      "Wall time of one threshold attempt",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 4, 10),
		}),
		flowDuration: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: "ftcenters",
			Name:      "flow_solve_duration_seconds",
			Help:      "Wall time of one component's assignment flow",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
		}),
		centers: f.NewGauge(prometheus.GaugeOpts{
			Namespace: "ftcenters",
			Name:      "centers",
			Help:      "Centers activated by the last successful plan",
		}),
		threshold: f.NewGauge(prometheus.GaugeOpts{
			Namespace: "ftcenters",
			Name:      "threshold",
			Help:      "Edge-weight threshold of the last successful plan",
		}),
	}
}

func (m *Metrics) observeAttempt(result string, d time.Duration) {
	if m == nil {
		return
	}
	m.attempts.WithLabelValues(result).Inc()
	m.attemptDuration.Observe(d.Seconds())
}

func (m *Metrics) observeFlow(d time.Duration) {
	if m == nil {
		return
	}
	m.flowDuration.Observe(d.Seconds())
}

func (m *Metrics) observePlan(p *Plan) {
	if m == nil {
		return
	}
	m.centers.Set(float64(len(p.Centers)))
	m.threshold.Set(p.Threshold)
}
