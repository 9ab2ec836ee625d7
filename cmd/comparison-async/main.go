// Package main benchmarks the eagerly-completed asynchronous operation
// pattern: a reference-counted result holder allocated per request, against
// plain allocation and direct synchronous calls.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/exveria1015/combench/bench"
	"github.com/exveria1015/combench/comobj"
	"github.com/exveria1015/combench/report"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	root := newRootCmd(logger)
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(logger *slog.Logger) *cobra.Command {
	var cfg runConfig

	cmd := &cobra.Command{
		Use:   "comparison-async",
		Short: "Benchmark eagerly-completed async operations against direct calls",
		Long: `Comparison-async measures the nanosecond cost of allocating and
querying an already-completed asynchronous result holder, a reference-counted
object handed out by a provider, next to a plain allocation and a direct
synchronous call. The operation completes at construction; no concurrency is
involved.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runComparison(logger, os.Stdout, cfg)
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&cfg.iterations, "iterations", bench.DefaultIterations,
		"Measured calls per scenario")
	flags.IntVar(&cfg.warmup, "warmup", bench.DefaultWarmup,
		"Discarded calls before each timed region")
	flags.BoolVar(&cfg.outputJSON, "json", false,
		"Output results as JSON instead of lines")
	flags.BoolVar(&cfg.summary, "summary", false,
		"Append a markdown comparison table")
	flags.BoolVar(&cfg.cpuProfile, "cpuprofile", false,
		"Write a CPU profile of the run to the current directory")

	return cmd
}

type runConfig struct {
	iterations int
	warmup     int
	outputJSON bool
	summary    bool
	cpuProfile bool
}

func runComparison(logger *slog.Logger, out io.Writer, cfg runConfig) error {
	if cfg.iterations <= 0 {
		return fmt.Errorf("iterations must be positive, got %d", cfg.iterations)
	}

	if cfg.cpuProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	logger.Info("starting async benchmarks",
		slog.Int("iterations", cfg.iterations),
		slog.Int("warmup", cfg.warmup),
	)

	if !cfg.outputJSON {
		fmt.Fprintf(out, "Running Go Async Benchmarks (%d iterations)...\n", cfg.iterations)
		fmt.Fprintln(out, "-----------------------------------------------------")
	}

	baseline := bench.Run(cfg.warmup, cfg.iterations, func() {
		bench.TouchBaseline()
	})

	if !cfg.outputJSON {
		report.BaselineLine(out, "Go_Empty_Loop", baseline)
	}

	prov := comobj.NewProvider(1)

	// One operation held live for the dispatch scenarios.
	held := prov.GetStatusAsync()

	var native comobj.Native

	scenarios := []bench.Scenario{
		{Name: "Go_AsyncOp_New", Op: func() {
			op := prov.GetStatusAsync()
			op.Release()
		}},
		{Name: "Go_New_Ready", Op: func() {
			p := &comobj.ReadyValue{Value: 1}
			bench.Escape(p)
		}},
		{Name: "Go_AsyncOp_GetStatus", Op: func() {
			var status int32
			held.GetStatus(&status)
			bench.Touch(status)
		}},
		{Name: "Go_AsyncOp_GetResult", Op: func() {
			var result int32
			held.GetResult(&result)
			bench.Touch(result)
		}},
		{Name: "Go_Native_Call", Op: func() {
			var status int32
			native.GetStatus(&status)
			bench.Touch(status)
		}},
	}

	results := measure(out, cfg, baseline, scenarios)

	held.Release()
	prov.Release()

	if cfg.outputJSON {
		if err := report.GenerateJSON(out, results); err != nil {
			return fmt.Errorf("generate JSON report: %w", err)
		}
	} else if cfg.summary {
		fmt.Fprintln(out)

		if err := report.Generate(out, results); err != nil {
			return fmt.Errorf("generate summary: %w", err)
		}
	}

	logger.Info("async benchmarks complete")

	return nil
}

// measure runs every scenario through the harness, emitting one line per
// result unless JSON output is selected.
func measure(
	out io.Writer,
	cfg runConfig,
	baseline float64,
	scenarios []bench.Scenario,
) []bench.Result {
	results := make([]bench.Result, 0, len(scenarios)+1)
	results = append(results, bench.Result{
		Name:       "Go_Empty_Loop",
		Iterations: cfg.iterations,
		RawNs:      baseline,
	})

	for _, sc := range scenarios {
		rawNs := bench.Run(cfg.warmup, cfg.iterations, sc.Op)

		adjNs := report.Adjust(rawNs, baseline)
		if !cfg.outputJSON {
			adjNs = report.Line(out, sc.Name, rawNs, baseline)
		}

		results = append(results, bench.Result{
			Name:       sc.Name,
			Iterations: cfg.iterations,
			RawNs:      rawNs,
			AdjNs:      adjNs,
		})
	}

	return results
}
