package bench

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunNonNegative(t *testing.T) {
	tests := []struct {
		name       string
		warmup     int
		iterations int
	}{
		{name: "single iteration", warmup: 0, iterations: 1},
		{name: "small loop", warmup: 10, iterations: 100},
		{name: "default warmup ratio", warmup: 100, iterations: 10_000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			avg := Run(tt.warmup, tt.iterations, func() { TouchBaseline() })
			require.GreaterOrEqual(t, avg, 0.0)
		})
	}
}

func TestRunCallsOperationExactly(t *testing.T) {
	var count int

	Run(0, 1000, func() { count++ })

	require.Equal(t, 1000, count, "timed region must call op exactly iterations times")
}

func TestRunWarmupCallsAreAdditional(t *testing.T) {
	var count int

	Run(100, 1000, func() { count++ })

	require.Equal(t, 1100, count, "warmup calls precede the timed region")
}

func TestBaselineStability(t *testing.T) {
	const iters = 100_000

	first := Run(1000, iters, func() { TouchBaseline() })
	second := Run(1000, iters, func() { TouchBaseline() })

	// Statistical property, not bit-exact: two baselines under identical
	// conditions should land within a loose tolerance of each other.
	diff := first - second
	if diff < 0 {
		diff = -diff
	}

	require.Less(t, diff, 1000.0, "baselines %f and %f diverge", first, second)
}

func TestRetainAcceptsValuesAndPointers(t *testing.T) {
	// Smoke only: Retain has no observable contract beyond not acting on
	// its argument.
	Retain(42)
	Retain("handle")

	v := 7
	Retain(&v)
	Escape(&v)
}
