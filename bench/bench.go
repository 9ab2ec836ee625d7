// Package bench implements the measurement loop shared by the comparison
// executables: a warmup-then-measure wall-clock timer that reports average
// nanoseconds per call, plus the sinks that keep the compiler from
// optimizing the measured work away.
package bench

import "time"

// Compile-time defaults for the comparison executables.
const (
	// DefaultIterations is the measured call count per scenario.
	DefaultIterations = 10_000_000

	// DefaultWarmup is the number of discarded calls executed before the
	// timed region, letting branch predictors, caches, and the allocator
	// reach steady state.
	DefaultWarmup = 100_000
)

// Run executes op warmup times unmeasured, then exactly iterations times
// inside a timed region, and returns the average wall-clock nanoseconds per
// call. The timestamps come from time.Now, which is monotonic. A fence call
// follows every invocation so the compiler must treat each call's side
// effects as observed; without it a sufficiently clever optimizer could
// hoist or eliminate the loop body and the result would be meaningless.
//
// iterations must be > 0. op must not panic: any fault during measurement
// is fatal to the run, never recovered.
func Run(warmup, iterations int, op func()) float64 {
	for i := 0; i < warmup; i++ {
		op()
		fence()
	}

	start := time.Now()

	for i := 0; i < iterations; i++ {
		op()
		fence()
	}

	elapsed := time.Since(start)

	return float64(elapsed.Nanoseconds()) / float64(iterations)
}

// fence is the per-iteration optimizer barrier. The noinline directive
// keeps a real call in the loop body; gc neither eliminates nor reorders
// calls it cannot inline, so each iteration's side effects stay anchored
// in place.
//
//go:noinline
func fence() {}
