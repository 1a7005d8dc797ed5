/* Copyright © 2025-2026 Gambit Pairing developers. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package comparison

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func smallSimConfig() SimulationConfig {
	cfg := DefaultSimulationConfig()
	cfg.Tournaments = 4
	cfg.Rounds = 3
	cfg.Players = 8
	cfg.Seed = 42
	cfg.Workers = 2
	return cfg
}

// TestSimulatorRun checks the batch shape and metric sanity.
func TestSimulatorRun(t *testing.T) {
	sim := NewSimulator(smallSimConfig(), nil)
	sum, results, err := sim.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 4*3, sum.Comparisons)
	assert.Len(t, results, 4*3)
	assert.Equal(t, "gambit", sum.A.Engine)
	assert.Equal(t, "bbp", sum.B.Engine)
	assert.Equal(t, 0, sum.A.Failures)
	assert.Equal(t, 0, sum.B.Failures)

	// Both engines always produce legal pairings here, so FIDE compliance
	// never drops to a hard violation.
	assert.Greater(t, sum.A.FIDE.Mean, 0.0)
	assert.Greater(t, sum.B.FIDE.Mean, 0.0)
	assert.GreaterOrEqual(t, sum.A.FIDE.Min, 0.0)
	for _, res := range results {
		assert.GreaterOrEqual(t, res.A.Overall, 0.0)
		assert.LessOrEqual(t, res.A.Overall, 1.0)
	}

	_, err = sum.A.Overall.RequireVariance()
	assert.NoError(t, err)
}

// TestSimulatorDeterminism verifies identical configs yield identical
// summaries regardless of worker scheduling.
func TestSimulatorDeterminism(t *testing.T) {
	cfg := smallSimConfig()

	first, firstResults, err := NewSimulator(cfg, nil).Run(context.Background())
	require.NoError(t, err)

	cfg.Workers = 1
	second, secondResults, err := NewSimulator(cfg, nil).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first, second)
	require.Len(t, secondResults, len(firstResults))
	for i := range firstResults {
		assert.Equal(t, firstResults[i].Round, secondResults[i].Round)
		assert.Equal(t, firstResults[i].Winner, secondResults[i].Winner)
		assert.Equal(t, firstResults[i].Divergence, secondResults[i].Divergence)
	}
}

// TestLoadSimulationConfig covers defaults, overrides, and validation.
func TestLoadSimulationConfig(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "sim.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"tournaments: 7\nseed: 99\noptions:\n  tieBand: 0.05\n"), 0644))

	cfg, err := LoadSimulationConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Tournaments)
	assert.Equal(t, int64(99), cfg.Seed)
	assert.Equal(t, 0.05, cfg.Options.TieBand)
	// Untouched fields keep their defaults.
	assert.Equal(t, DefaultSimulationConfig().Players, cfg.Players)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("players: 1\n"), 0644))
	_, err = LoadSimulationConfig(bad)
	assert.Error(t, err)

	_, err = LoadSimulationConfig(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

// TestReportRoundTrip exercises report serialization and the text builders.
func TestReportRoundTrip(t *testing.T) {
	sim := NewSimulator(smallSimConfig(), nil)
	sum, results, err := sim.Run(context.Background())
	require.NoError(t, err)

	report := &Report{Summary: sum, Results: results}
	buf, err := EncodeReport(report)
	require.NoError(t, err)

	decoded, err := DecodeReport(buf)
	require.NoError(t, err)
	assert.Equal(t, sum.Comparisons, decoded.Summary.Comparisons)
	assert.Equal(t, sum.A.Overall.Mean, decoded.Summary.A.Overall.Mean)

	out := BuildSummaryOutput(sum)
	for _, want := range []string{"gambit", "bbp", "Wins:", "Round"} {
		assert.Contains(t, out, want)
	}
	single := BuildComparisonOutput(results[0])
	assert.Contains(t, single, "Divergent pairs:")
}
