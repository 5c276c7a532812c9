// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/MakeNowJust/heredoc"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/katalvlaran/ftcenters/cluster"
	"github.com/katalvlaran/ftcenters/config"
	"github.com/katalvlaran/ftcenters/graphio"
)

type solveFlags struct {
	graph, config, out string

	maxCenters, maxClients, alpha int
	mode, strategy                string
	seed                          int64
	parallel, maxAttempts         int
	timeout                       time.Duration
	logLevel, logFormat           string

	metrics, trace bool
}

func newSolveCmd() *cobra.Command {
	f := &solveFlags{}
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Compute a center plan for a graph document",
		Long: heredoc.Doc(`
			Solve searches the smallest edge-weight threshold whose subgraph admits
			a plan and writes the plan report as YAML.

			Settings come from --config (see package config) and are overridden by
			any flag given explicitly. The exit status is non-zero when no plan
			was found; the report is written either way.
		`),
		Example: heredoc.Doc(`
			ftcenters generate --vertices 50 --radius 20 --out g.yaml
			ftcenters solve --graph g.yaml -K 20 -L 4 --alpha 1 --mode conservative
		`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSolve(cmd, f)
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&f.graph, "graph", "", "graph document (YAML)")
	fl.StringVar(&f.config, "config", "", "run configuration (YAML)")
	fl.StringVarP(&f.out, "out", "o", "", "write the plan report here instead of stdout")
	fl.IntVarP(&f.maxCenters, "max-centers", "K", 0, "maximum number of centers")
	fl.IntVarP(&f.maxClients, "max-clients", "L", 0, "maximum clients per center, the center included")
	fl.IntVar(&f.alpha, "alpha", 0, "number of center failures to tolerate")
	fl.StringVar(&f.mode, "mode", "", "election protocol: standard or conservative")
	fl.StringVar(&f.strategy, "strategy", "", "threshold search: binary or linear")
	fl.Int64Var(&f.seed, "seed", 0, "random seed")
	fl.IntVar(&f.parallel, "parallel", 0, "components solved concurrently")
	fl.IntVar(&f.maxAttempts, "max-attempts", 0, "threshold attempt cap (0 = unlimited)")
	fl.DurationVar(&f.timeout, "timeout", 0, "search deadline (0 = none)")
	fl.StringVar(&f.logLevel, "log-level", "", "debug, info, warn or error")
	fl.StringVar(&f.logFormat, "log-format", "", "text or json")
	fl.BoolVar(&f.metrics, "metrics", false, "print Prometheus metrics to stderr after the run")
	fl.BoolVar(&f.trace, "trace", false, "print OpenTelemetry spans to stderr")
	_ = cmd.MarkFlagRequired("graph")

	return cmd
}

// resolveRun loads the configuration file and applies explicitly set flags.
func resolveRun(cmd *cobra.Command, f *solveFlags) (config.Run, error) {
	run := config.Default()
	if f.config != "" {
		var err error
		if run, err = config.Load(f.config); err != nil {
			return config.Run{}, err
		}
	}

	fl := cmd.Flags()
	if fl.Changed("max-centers") {
		run.Params.MaxCenters = f.maxCenters
	}
	if fl.Changed("max-clients") {
		run.Params.MaxClientsPerCenter = f.maxClients
	}
	if fl.Changed("alpha") {
		run.Params.MaxFailedCenters = f.alpha
	}
	if fl.Changed("mode") {
		m, err := cluster.ParseMode(f.mode)
		if err != nil {
			return config.Run{}, err
		}
		run.Params.Mode = m
	}
	if fl.Changed("strategy") {
		run.Search.Strategy = f.strategy
	}
	if fl.Changed("seed") {
		run.Search.Seed = f.seed
	}
	if fl.Changed("parallel") {
		run.Search.Parallelism = f.parallel
	}
	if fl.Changed("max-attempts") {
		run.Search.MaxAttempts = f.maxAttempts
	}
	if fl.Changed("timeout") {
		run.Search.Timeout = f.timeout
	}
	if fl.Changed("log-level") {
		run.Log.Level = f.logLevel
	}
	if fl.Changed("log-format") {
		run.Log.Format = f.logFormat
	}

	return run, run.Validate()
}

func runSolve(cmd *cobra.Command, f *solveFlags) error {
	run, err := resolveRun(cmd, f)
	if err != nil {
		return err
	}
	logger := slog.New(run.Log.Handler(cmd.ErrOrStderr()))

	g, err := graphio.LoadFile(f.graph)
	if err != nil {
		return err
	}
	logger.Debug("graph_loaded",
		slog.String("path", f.graph),
		slog.Int("vertices", g.VertexCount()),
		slog.Int("edges", g.EdgeCount()),
	)

	opts, err := run.Options()
	if err != nil {
		return err
	}
	opts = append(opts, cluster.WithLogger(logger))

	reg := prometheus.NewRegistry()
	if f.metrics {
		opts = append(opts, cluster.WithMetrics(cluster.NewMetrics(reg)))
	}
	if f.trace {
		tp, err := newTracerProvider(cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		defer func() { _ = tp.Shutdown(context.Background()) }()
		opts = append(opts, cluster.WithTracerProvider(tp))
	}

	ctx := cmd.Context()
	if run.Search.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, run.Search.Timeout)
		defer cancel()
	}
	plan, solveErr := cluster.Solve(ctx, g, run.Params, opts...)

	if err = writeReport(cmd.OutOrStdout(), f.out, plan, solveErr); err != nil {
		return err
	}
	if f.metrics {
		if err = dumpMetrics(cmd.ErrOrStderr(), reg); err != nil {
			return err
		}
	}

	return solveErr
}

func writeReport(stdout io.Writer, path string, plan *cluster.Plan, solveErr error) error {
	if path == "" {
		return graphio.EncodePlan(stdout, plan, solveErr)
	}
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = graphio.EncodePlan(out, plan, solveErr); err != nil {
		_ = out.Close()
		return err
	}

	return out.Close()
}

func newTracerProvider(w io.Writer) (*sdktrace.TracerProvider, error) {
	exp, err := stdouttrace.New(stdouttrace.WithWriter(w), stdouttrace.WithPrettyPrint())
	if err != nil {
		return nil, fmt.Errorf("create exporter: %w", err)
	}

	return sdktrace.NewTracerProvider(sdktrace.WithSyncer(exp)), nil
}

// dumpMetrics writes every gathered family in the Prometheus text format.
func dumpMetrics(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if _, err = expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}

	return nil
}
