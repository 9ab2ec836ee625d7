// Package main benchmarks the per-call cost of a manually reference-counted
// component object dispatched through an abstract interface against a plain
// value type with direct calls.
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
		Use:   "comparison",
		Short: "Benchmark refcounted interface dispatch against direct calls",
		Long: `Comparison measures the nanosecond cost of creating, releasing, and
calling a manually reference-counted component object behind an abstract
interface, next to the same operation on a plain value type. All scenarios
are baseline-adjusted against an empty measurement loop.`,
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

	logger.Info("starting benchmarks",
		slog.Int("iterations", cfg.iterations),
		slog.Int("warmup", cfg.warmup),
	)

	if !cfg.outputJSON {
		fmt.Fprintf(out, "Running Go Benchmarks (%d iterations)...\n", cfg.iterations)
		fmt.Fprintln(out, "-----------------------------------------------------")
	}

	baseline := bench.Run(cfg.warmup, cfg.iterations, func() {
		bench.TouchBaseline()
	})

	if !cfg.outputJSON {
		report.BaselineLine(out, "Go_Empty_Loop", baseline)
	}

	// Held subjects for the dispatch scenarios; the allocation scenarios
	// create and release their own objects every iteration.
	live := comobj.NewManualOp(0)
	raw := comobj.NewRawOp(0)

	var native comobj.Native

	scenarios := []bench.Scenario{
		{Name: "Go_Com_New", Op: func() {
			obj := comobj.NewManualOp(0)
			obj.Release()
		}},
		{Name: "Go_New_Ready", Op: func() {
			p := &comobj.ReadyValue{Value: 1}
			bench.Escape(p)
		}},
		{Name: "Go_Com_Call", Op: func() {
			var status int32
			live.GetStatus(&status)
			bench.Touch(status)
		}},
		{Name: "Go_Vtable_Call", Op: func() {
			var status int32
			raw.Vtbl.GetStatus(raw, &status)
			bench.Touch(status)
		}},
		{Name: "Go_Native_Call", Op: func() {
			var status int32
			native.GetStatus(&status)
			bench.Touch(status)
		}},
	}

	results := measure(out, cfg, baseline, scenarios)

	live.Release()
	raw.Vtbl.Release(raw)

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

	logger.Info("benchmarks complete")

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
