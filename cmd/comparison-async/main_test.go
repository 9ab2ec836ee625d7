package main

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/exveria1015/combench/bench"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRunComparisonAsyncLineOutput(t *testing.T) {
	var buf bytes.Buffer

	err := runComparison(testLogger(), &buf, runConfig{
		iterations: 1000,
		warmup:     100,
	})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 8, "header, separator, baseline, five scenarios")

	require.Contains(t, lines[0], "Async")
	require.Contains(t, lines[2], "[Go_Empty_Loop] Average:")

	wantOrder := []string{
		"[Go_AsyncOp_New]",
		"[Go_New_Ready]",
		"[Go_AsyncOp_GetStatus]",
		"[Go_AsyncOp_GetResult]",
		"[Go_Native_Call]",
	}
	for i, label := range wantOrder {
		require.Contains(t, lines[3+i], label+" Average:")
		require.Contains(t, lines[3+i], "(adj")
	}
}

func TestRunComparisonAsyncJSONOutput(t *testing.T) {
	var buf bytes.Buffer

	err := runComparison(testLogger(), &buf, runConfig{
		iterations: 500,
		outputJSON: true,
	})
	require.NoError(t, err)

	var results []bench.Result
	require.NoError(t, json.Unmarshal(buf.Bytes(), &results))
	require.Len(t, results, 6)
	require.Equal(t, "Go_Empty_Loop", results[0].Name)
	require.Equal(t, "Go_AsyncOp_New", results[1].Name)
}

func TestRunComparisonAsyncRejectsBadIterations(t *testing.T) {
	err := runComparison(testLogger(), io.Discard, runConfig{iterations: -1})
	require.Error(t, err)
}
