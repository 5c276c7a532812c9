// SPDX-License-Identifier: MIT

package cluster_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/katalvlaran/ftcenters/builder"
	"github.com/katalvlaran/ftcenters/cluster"
	"github.com/katalvlaran/ftcenters/core"
	"github.com/katalvlaran/ftcenters/flow"
)

type SolveSuite struct {
	suite.Suite
	ctx context.Context
}

func (s *SolveSuite) SetupTest() {
	s.ctx = context.Background()
}

func (s *SolveSuite) build(bopts []builder.BuilderOption, c builder.Constructor) *core.Graph {
	g, err := builder.BuildGraph([]core.GraphOption{core.WithWeighted()}, bopts, c)
	s.Require().NoError(err)

	return g
}

// weightedPath builds a–b (1), b–c (2), c–d (3).
func (s *SolveSuite) weightedPath() *core.Graph {
	g := core.NewGraph(core.WithWeighted())
	for _, e := range []struct {
		u, v string
		w    float64
	}{{"a", "b", 1}, {"b", "c", 2}, {"c", "d", 3}} {
		_, err := g.AddEdge(e.u, e.v, e.w)
		s.Require().NoError(err)
	}

	return g
}

// TestBarbellTwoCenters: two triangles joined by a bridge, K=2, L=3, α=1.
func (s *SolveSuite) TestBarbellTwoCenters() {
	g := s.build(nil, builder.Barbell(3))
	p := cluster.Params{MaxCenters: 2, MaxClientsPerCenter: 3, MaxFailedCenters: 1}
	for seed := int64(1); seed <= 12; seed++ {
		plan, err := cluster.Solve(s.ctx, g, p, cluster.WithSeed(seed))
		s.Require().NoError(err, "seed %d", seed)
		s.Require().NoError(plan.Validate(g, p))
		s.Equal(1.0, plan.Threshold)
		s.Equal(1, plan.Components)
		s.Require().Len(plan.Centers, 2)
		for _, c := range plan.Centers {
			s.Len(c.Clients, 3)
			s.Contains(c.Clients, c.ID)
		}
		s.Len(plan.Assignments, 6)
		s.NotEmpty(plan.RunID)
	}
}

// TestStarInfeasible: 11 vertices with L=5 need three centers, K=1.
func (s *SolveSuite) TestStarInfeasible() {
	g := s.build(nil, builder.Star(10))
	p := cluster.Params{MaxCenters: 1, MaxClientsPerCenter: 5, MaxFailedCenters: 0}
	for _, st := range []cluster.Strategy{cluster.StrategyBinary, cluster.StrategyLinear} {
		plan, err := cluster.Solve(s.ctx, g, p, cluster.WithStrategy(st))
		s.Nil(plan)
		s.ErrorIs(err, cluster.ErrInfeasible, st.String())
		s.False(errors.Is(err, cluster.ErrSearchTimeout))
	}
}

func (s *SolveSuite) TestInvalidParameters() {
	g := s.build(nil, builder.Path(4))
	cases := []struct {
		name string
		p    cluster.Params
		opts []cluster.Option
	}{
		{"zero K", cluster.Params{MaxCenters: 0, MaxClientsPerCenter: 2}, nil},
		{"zero L", cluster.Params{MaxCenters: 2, MaxClientsPerCenter: 0}, nil},
		{"negative alpha", cluster.Params{MaxCenters: 2, MaxClientsPerCenter: 2, MaxFailedCenters: -1}, nil},
		{"unknown mode", cluster.Params{MaxCenters: 2, MaxClientsPerCenter: 2, Mode: "eager"}, nil},
		{"zero parallelism", cluster.Params{MaxCenters: 2, MaxClientsPerCenter: 2}, []cluster.Option{cluster.WithParallelism(0)}},
		{"bad strategy", cluster.Params{MaxCenters: 2, MaxClientsPerCenter: 2}, []cluster.Option{cluster.WithStrategy(cluster.Strategy(9))}},
	}
	for _, tc := range cases {
		_, err := cluster.Solve(s.ctx, g, tc.p, tc.opts...)
		s.ErrorIs(err, cluster.ErrInvalidParameter, tc.name)
	}

	_, err := cluster.Solve(s.ctx, nil, cluster.Params{MaxCenters: 1, MaxClientsPerCenter: 1})
	s.ErrorIs(err, cluster.ErrGraphNil)
}

// TestIsolatedSelfServing: no edges, L=1, K=n, α=0.
func (s *SolveSuite) TestIsolatedSelfServing() {
	g := s.build(nil, builder.Isolated(5))
	p := cluster.Params{MaxCenters: 5, MaxClientsPerCenter: 1}
	plan, err := cluster.Solve(s.ctx, g, p)
	s.Require().NoError(err)
	s.Equal(0.0, plan.Threshold)
	s.Equal(5, plan.Components)
	s.Require().Len(plan.Centers, 5)
	for _, c := range plan.Centers {
		s.Equal([]string{c.ID}, c.Clients)
		s.True(plan.IsCenter(c.ID))
		s.False(c.Reserve)
	}
}

func (s *SolveSuite) TestStrategiesAgree() {
	g := s.weightedPath()
	p := cluster.Params{MaxCenters: 2, MaxClientsPerCenter: 4}

	lin, err := cluster.Solve(s.ctx, g, p, cluster.WithStrategy(cluster.StrategyLinear))
	s.Require().NoError(err)
	bin, err := cluster.Solve(s.ctx, g, p, cluster.WithStrategy(cluster.StrategyBinary))
	s.Require().NoError(err)

	s.Equal(2.0, lin.Threshold)
	s.Equal(lin.Threshold, bin.Threshold)
	s.Equal(3, lin.Attempts)
	s.Equal(3, bin.Attempts)
	c, ok := lin.CenterOf("d")
	s.True(ok)
	s.Equal("d", c, "d is isolated at threshold 2")
}

func (s *SolveSuite) TestSeedReproducible() {
	g := s.build([]builder.BuilderOption{builder.WithSeed(17)}, builder.RandomGeometric(80, 18))
	p := cluster.Params{MaxCenters: 60, MaxClientsPerCenter: 4, MaxFailedCenters: 1}

	first, err := cluster.Solve(s.ctx, g, p, cluster.WithSeed(99))
	s.Require().NoError(err)
	s.Require().NoError(first.Validate(g, p))
	for _, par := range []int{1, 4} {
		again, err := cluster.Solve(s.ctx, g, p, cluster.WithSeed(99), cluster.WithParallelism(par))
		s.Require().NoError(err)
		s.NotEqual(first.RunID, again.RunID)
		again.RunID = first.RunID
		s.Equal(first, again, "parallelism %d", par)
	}
}

// TestThresholdIndependentOfSeed: on dense geometric graphs the smallest
// feasible threshold is the same for every seed and both strategies, and
// every larger threshold stays feasible.
func (s *SolveSuite) TestThresholdIndependentOfSeed() {
	for _, gseed := range []int64{1, 2, 3} {
		g := s.build([]builder.BuilderOption{builder.WithSeed(gseed)}, builder.RandomGeometric(40, 50))
		weights := g.DistinctWeights()
		for _, p := range []cluster.Params{
			{MaxCenters: 12, MaxClientsPerCenter: 5, MaxFailedCenters: 1},
			{MaxCenters: 10, MaxClientsPerCenter: 6, MaxFailedCenters: 2},
			{MaxCenters: 12, MaxClientsPerCenter: 5, MaxFailedCenters: 1, Mode: cluster.ModeConservative},
		} {
			want, err := cluster.Solve(s.ctx, g, p, cluster.WithSeed(1), cluster.WithStrategy(cluster.StrategyLinear))
			s.Require().NoError(err, "graph %d %+v", gseed, p)
			s.Require().NoError(want.Validate(g, p))

			for seed := int64(2); seed <= 8; seed++ {
				for _, st := range []cluster.Strategy{cluster.StrategyLinear, cluster.StrategyBinary} {
					got, err := cluster.Solve(s.ctx, g, p, cluster.WithSeed(seed), cluster.WithStrategy(st))
					s.Require().NoError(err, "graph %d seed %d %s", gseed, seed, st)
					s.Equal(want.Threshold, got.Threshold, "graph %d seed %d %s %+v", gseed, seed, st, p)
				}
			}

			for i, w := range weights {
				if w < want.Threshold || i%20 != 0 {
					continue
				}
				plan, err := cluster.Solve(s.ctx, core.ThresholdView(g, w), p, cluster.WithSeed(int64(i)))
				s.Require().NoError(err, "graph %d threshold %g", gseed, w)
				s.Equal(want.Threshold, plan.Threshold, "graph %d threshold %g", gseed, w)
			}
		}
	}
}

// TestMonotoneInBudget: loosening K and L keeps a feasible instance feasible.
func (s *SolveSuite) TestMonotoneInBudget() {
	g := s.build(nil, builder.Barbell(3))
	for _, p := range []cluster.Params{
		{MaxCenters: 2, MaxClientsPerCenter: 3, MaxFailedCenters: 1},
		{MaxCenters: 3, MaxClientsPerCenter: 3, MaxFailedCenters: 1},
		{MaxCenters: 3, MaxClientsPerCenter: 4, MaxFailedCenters: 1},
		{MaxCenters: 6, MaxClientsPerCenter: 6, MaxFailedCenters: 1},
	} {
		plan, err := cluster.Solve(s.ctx, g, p, cluster.WithSeed(4))
		s.Require().NoError(err, "%+v", p)
		s.NoError(plan.Validate(g, p))
		s.LessOrEqual(len(plan.Centers), p.MaxCenters)
	}
}

// TestFailoverReserves: K6 with L=3 needs 2 centers, α=2 asks for 4.
func (s *SolveSuite) TestFailoverReserves() {
	g := s.build(nil, builder.Complete(6))
	p := cluster.Params{MaxCenters: 5, MaxClientsPerCenter: 3, MaxFailedCenters: 2}
	plan, err := cluster.Solve(s.ctx, g, p, cluster.WithSeed(2))
	s.Require().NoError(err)
	s.Require().NoError(plan.Validate(g, p))
	s.Len(plan.Centers, 4)

	reserves := 0
	var major, minor *cluster.Center
	for i := range plan.Centers {
		c := &plan.Centers[i]
		switch {
		case c.Reserve:
			reserves++
			s.Equal([]string{c.ID}, c.Clients)
		case c.Monarch == cluster.MonarchMajor:
			major = c
		case c.Monarch == cluster.MonarchMinor:
			minor = c
		}
	}
	s.Equal(2, reserves)
	s.Require().NotNil(major)
	s.Require().NotNil(minor)
	s.Equal([]string{minor.ID}, major.Backups)
	s.Equal(major.ID, minor.BackupOf)
}

func (s *SolveSuite) TestConservativeMode() {
	g := s.build(nil, builder.Path(12))
	p := cluster.Params{MaxCenters: 8, MaxClientsPerCenter: 3, MaxFailedCenters: 1, Mode: cluster.ModeConservative}
	for seed := int64(1); seed <= 6; seed++ {
		plan, err := cluster.Solve(s.ctx, g, p, cluster.WithSeed(seed))
		s.Require().NoError(err, "seed %d", seed)
		s.Require().NoError(plan.Validate(g, p))
		s.Equal(cluster.ModeConservative, plan.Mode)
		s.Equal(1.0, plan.Threshold)
		s.GreaterOrEqual(len(plan.Centers), 5, "⌈12/3⌉+α")
	}
}

func (s *SolveSuite) TestAttemptCap() {
	g := s.build(nil, builder.Star(10))
	p := cluster.Params{MaxCenters: 1, MaxClientsPerCenter: 5}
	_, err := cluster.Solve(s.ctx, g, p,
		cluster.WithStrategy(cluster.StrategyLinear),
		cluster.WithMaxAttempts(1),
	)
	s.ErrorIs(err, cluster.ErrSearchTimeout)
	s.False(errors.Is(err, cluster.ErrInfeasible))
}

func (s *SolveSuite) TestDeadline() {
	g := s.build(nil, builder.Path(5))
	ctx, cancel := context.WithDeadline(s.ctx, time.Now().Add(-time.Second))
	defer cancel()
	_, err := cluster.Solve(ctx, g, cluster.Params{MaxCenters: 5, MaxClientsPerCenter: 2})
	s.ErrorIs(err, cluster.ErrSearchTimeout)

	ctx, cancel = context.WithCancel(s.ctx)
	cancel()
	_, err = cluster.Solve(ctx, g, cluster.Params{MaxCenters: 5, MaxClientsPerCenter: 2})
	s.ErrorIs(err, context.Canceled)
}

// failingSolver rejects every network.
type failingSolver struct{}

func (failingSolver) MinCostFlow(context.Context, *flow.Network) (*flow.Solution, error) {
	return nil, flow.ErrInfeasible
}

func (s *SolveSuite) TestSolverFailureRejectsAttempts() {
	g := s.build(nil, builder.Path(4))
	p := cluster.Params{MaxCenters: 4, MaxClientsPerCenter: 2}
	_, err := cluster.Solve(s.ctx, g, p, cluster.WithSolver(failingSolver{}))
	s.ErrorIs(err, cluster.ErrInfeasible)
}

func (s *SolveSuite) TestObservability() {
	g := s.build(nil, builder.Barbell(3))
	p := cluster.Params{MaxCenters: 2, MaxClientsPerCenter: 3, MaxFailedCenters: 1}

	reg := prometheus.NewRegistry()
	rec := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec))
	defer func() { _ = tp.Shutdown(s.ctx) }()
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	plan, err := cluster.Solve(s.ctx, g, p,
		cluster.WithMetrics(cluster.NewMetrics(reg)),
		cluster.WithTracerProvider(tp),
		cluster.WithLogger(logger),
	)
	s.Require().NoError(err)

	families, err := reg.Gather()
	s.Require().NoError(err)
	byName := make(map[string]float64)
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			switch {
			case m.GetCounter() != nil:
				byName[mf.GetName()] += m.GetCounter().GetValue()
			case m.GetGauge() != nil:
				byName[mf.GetName()] = m.GetGauge().GetValue()
			}
		}
	}
	s.Equal(float64(plan.Attempts), byName["ftcenters_attempts_total"])
	s.Equal(2.0, byName["ftcenters_centers"])
	s.Equal(1.0, byName["ftcenters_threshold"])

	names := make(map[string]int)
	for _, sp := range rec.Ended() {
		names[sp.Name()]++
	}
	s.Equal(1, names["cluster.Solve"])
	s.Equal(plan.Attempts, names["cluster.attempt"])

	s.Contains(buf.String(), `"msg":"solve_complete"`)
	s.Contains(buf.String(), `"run_id":"`+plan.RunID+`"`)
}

func TestSolveSuite(t *testing.T) {
	suite.Run(t, new(SolveSuite))
}

func TestParseModeAndStrategy(t *testing.T) {
	m, err := cluster.ParseMode("Conservative")
	require.NoError(t, err)
	require.Equal(t, cluster.ModeConservative, m)
	m, err = cluster.ParseMode("")
	require.NoError(t, err)
	require.Equal(t, cluster.ModeStandard, m)
	_, err = cluster.ParseMode("x")
	require.ErrorIs(t, err, cluster.ErrInvalidParameter)

	st, err := cluster.ParseStrategy("linear")
	require.NoError(t, err)
	require.Equal(t, cluster.StrategyLinear, st)
	_, err = cluster.ParseStrategy("random")
	require.ErrorIs(t, err, cluster.ErrInvalidParameter)
}

func TestPlanValidateRejects(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	_, err := g.AddEdge("a", "b", 1)
	require.NoError(t, err)
	require.NoError(t, g.AddVertex("c"))
	p := cluster.Params{MaxCenters: 2, MaxClientsPerCenter: 2}

	good := &cluster.Plan{
		Threshold: 1,
		Centers: []cluster.Center{
			{ID: "a", Clients: []string{"a", "b"}},
			{ID: "c", Clients: []string{"c"}},
		},
		Assignments: []cluster.Assignment{{Vertex: "a", Center: "a"}, {Vertex: "b", Center: "a"}, {Vertex: "c", Center: "c"}},
	}
	require.NoError(t, good.Validate(g, p))

	crossing := &cluster.Plan{
		Threshold: 1,
		Centers: []cluster.Center{
			{ID: "a", Clients: []string{"a", "c"}},
			{ID: "b", Clients: []string{"b"}},
		},
		Assignments: []cluster.Assignment{{Vertex: "a", Center: "a"}, {Vertex: "b", Center: "b"}, {Vertex: "c", Center: "a"}},
	}
	require.ErrorIs(t, crossing.Validate(g, p), cluster.ErrInvalidPlan)

	selfless := &cluster.Plan{
		Threshold: 1,
		Centers: []cluster.Center{
			{ID: "a", Clients: []string{"b"}},
			{ID: "c", Clients: []string{"c", "a"}},
		},
		Assignments: []cluster.Assignment{{Vertex: "a", Center: "c"}, {Vertex: "b", Center: "a"}, {Vertex: "c", Center: "c"}},
	}
	require.ErrorIs(t, selfless.Validate(g, p), cluster.ErrInvalidPlan)

	foreign := &cluster.Plan{
		Threshold: 1,
		Centers: []cluster.Center{
			{ID: "a", Clients: []string{"a", "b"}},
			{ID: "c", Clients: []string{"c", "z"}},
		},
		Assignments: []cluster.Assignment{{Vertex: "a", Center: "a"}, {Vertex: "b", Center: "a"}, {Vertex: "c", Center: "c"}},
	}
	err = foreign.Validate(g, p)
	require.ErrorIs(t, err, cluster.ErrInvalidPlan)
	require.Contains(t, err.Error(), "unknown vertex")

	overfull := &cluster.Plan{
		Threshold: 1,
		Centers:   []cluster.Center{{ID: "a", Clients: []string{"a", "b", "c"}}},
	}
	require.ErrorIs(t, overfull.Validate(g, p), cluster.ErrInvalidPlan)
}
