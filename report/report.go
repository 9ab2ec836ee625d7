// Package report formats benchmark measurements: the per-scenario output
// lines, an optional markdown comparison table, and JSON output.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"math"

	"github.com/exveria1015/combench/bench"
)

// Adjust subtracts the baseline noise floor from a raw average. The result
// is clamped at zero: a baseline is a floor, not a debt that can go
// negative.
func Adjust(rawNs, baselineNs float64) float64 {
	if rawNs > baselineNs {
		return rawNs - baselineNs
	}

	return 0
}

// Line writes one scenario's measurement in the fixed
// "[label] Average: <raw> ns (adj <adjusted> ns)" form and returns the
// baseline-adjusted average.
func Line(w io.Writer, label string, rawNs, baselineNs float64) float64 {
	adj := Adjust(rawNs, baselineNs)

	fmt.Fprintf(w, "[%s] Average: %.5f ns (adj %.5f ns)\n", label, rawNs, adj)

	return adj
}

// BaselineLine writes the baseline measurement itself, which carries no
// adjusted figure.
func BaselineLine(w io.Writer, label string, avgNs float64) {
	fmt.Fprintf(w, "[%s] Average: %.5f ns\n", label, avgNs)
}

// Generate writes a markdown comparison table for the given results.
// Relative cost is computed against the cheapest adjusted scenario.
func Generate(w io.Writer, results []bench.Result) error {
	if len(results) == 0 {
		return fmt.Errorf("no results to report")
	}

	cheapest := findCheapest(results)

	fmt.Fprintln(w, "## Benchmark Results")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "| Scenario | Raw | Adjusted | Relative |")
	fmt.Fprintln(w, "|----------|-----|----------|----------|")

	for _, r := range results {
		relative := 1.0
		if cheapest > 0 && r.AdjNs > 0 {
			relative = r.AdjNs / cheapest
		}

		fmt.Fprintf(w, "| %s | %s | %s | %.2fx |\n",
			r.Name,
			formatNs(r.RawNs),
			formatNs(r.AdjNs),
			relative,
		)
	}

	return nil
}

// GenerateJSON writes results as JSON to w.
func GenerateJSON(w io.Writer, results []bench.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(results)
}

func findCheapest(results []bench.Result) float64 {
	cheapest := math.MaxFloat64
	for _, r := range results {
		if r.AdjNs > 0 && r.AdjNs < cheapest {
			cheapest = r.AdjNs
		}
	}

	if cheapest == math.MaxFloat64 {
		return 0
	}

	return cheapest
}

func formatNs(ns float64) string {
	if ns >= 1000 {
		return fmt.Sprintf("%.3f µs", ns/1000)
	}

	return fmt.Sprintf("%.3f ns", ns)
}
