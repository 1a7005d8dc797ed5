/* Copyright © 2025-2026 Gambit Pairing developers. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package comparison

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gambit-devs/gambitpairing/tournament"
)

// TestAccumulator checks the canonical three-sample fixture.
func TestAccumulator(t *testing.T) {
	var acc Accumulator
	for _, x := range []float64{0.80, 0.90, 1.00} {
		acc.Add(x)
	}

	sum := acc.Summary()
	assert.Equal(t, 3, sum.Count)
	assert.InDelta(t, 0.90, sum.Mean, 1e-12)
	assert.Equal(t, 0.80, sum.Min)
	assert.Equal(t, 1.00, sum.Max)

	v, err := sum.RequireVariance()
	require.NoError(t, err)
	assert.InDelta(t, 0.01, v, 1e-12)
}

// TestAccumulatorInsufficientSamples verifies variance stays undefined below
// two samples rather than degrading to zero.
func TestAccumulatorInsufficientSamples(t *testing.T) {
	var acc Accumulator

	sum := acc.Summary()
	assert.Nil(t, sum.Variance)
	_, err := sum.RequireVariance()
	require.ErrorIs(t, err, ErrInsufficientSamples)

	acc.Add(0.5)
	sum = acc.Summary()
	assert.Equal(t, 1, sum.Count)
	assert.Equal(t, 0.5, sum.Mean)
	assert.Nil(t, sum.Variance)
	_, err = sum.RequireVariance()
	require.ErrorIs(t, err, ErrInsufficientSamples)
}

func okOutcome(engine string, overall float64) EngineOutcome {
	return EngineOutcome{
		Engine: engine, Quality: overall, FIDE: overall, Overall: overall,
	}
}

// TestSummarize covers win counting, failure exclusion, divergence rate, and
// the per-round breakdown.
func TestSummarize(t *testing.T) {
	results := []*Result{
		{
			Round:  1,
			A:      okOutcome("gambit", 0.80),
			B:      okOutcome("bbp", 0.60),
			Winner: "gambit",
		},
		{
			Round:  2,
			A:      okOutcome("gambit", 0.90),
			B:      okOutcome("bbp", 0.90),
			Winner: WinnerTie,
			Divergence: Divergence{
				OnlyA: []tournament.Pair{{WhiteID: "x", BlackID: "y"}},
				OnlyB: []tournament.Pair{{WhiteID: "x", BlackID: "z"}},
			},
		},
		{
			Round:  2,
			A:      EngineOutcome{Engine: "gambit", Err: "boom"},
			B:      okOutcome("bbp", 1.00),
			Winner: "bbp",
		},
	}

	sum := Summarize(results)
	assert.Equal(t, 3, sum.Comparisons)
	assert.Equal(t, 1, sum.WinsA)
	assert.Equal(t, 1, sum.WinsB)
	assert.Equal(t, 1, sum.Ties)
	assert.InDelta(t, 1.0/3.0, sum.WinRateA, 1e-12)

	// The failed gambit run is a failure, not a zero-score sample.
	assert.Equal(t, 1, sum.A.Failures)
	assert.Equal(t, 2, sum.A.Overall.Count)
	assert.InDelta(t, 0.85, sum.A.Overall.Mean, 1e-12)
	assert.Equal(t, 3, sum.B.Overall.Count)

	assert.InDelta(t, 1.0/3.0, sum.DivergenceRate, 1e-12)

	require.Len(t, sum.PerRound, 2)
	assert.Equal(t, 1, sum.PerRound[0].Round)
	assert.Equal(t, 1, sum.PerRound[0].Comparisons)
	assert.Equal(t, 2, sum.PerRound[1].Comparisons)
	assert.Equal(t, 1, sum.PerRound[1].Divergent)
}

// TestSummarizeByeDivergence counts a diverged bye as a divergent
// comparison even when every pair agrees.
func TestSummarizeByeDivergence(t *testing.T) {
	results := []*Result{
		{
			Round:      1,
			A:          okOutcome("gambit", 0.90),
			B:          okOutcome("bbp", 0.90),
			Winner:     WinnerTie,
			Divergence: Divergence{ByeDiverged: true},
		},
		{
			Round:  1,
			A:      okOutcome("gambit", 0.90),
			B:      okOutcome("bbp", 0.90),
			Winner: WinnerTie,
		},
	}

	sum := Summarize(results)
	assert.InDelta(t, 0.5, sum.DivergenceRate, 1e-12)
	require.Len(t, sum.PerRound, 1)
	assert.Equal(t, 1, sum.PerRound[0].Divergent)
}

// TestSummarizeEmpty keeps the zero case total.
func TestSummarizeEmpty(t *testing.T) {
	sum := Summarize(nil)
	assert.Equal(t, 0, sum.Comparisons)
	assert.Equal(t, 0.0, sum.DivergenceRate)
	assert.Nil(t, sum.A.Overall.Variance)
}
