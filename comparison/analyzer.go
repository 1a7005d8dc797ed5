/* Copyright © 2025-2026 Gambit Pairing developers. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package comparison

import (
	"errors"
	"fmt"
	"sort"
)

// ErrInsufficientSamples indicates a statistic needing at least two samples
// was requested from fewer.
var ErrInsufficientSamples = errors.New("not enough samples")

// Accumulator aggregates one metric with Welford's online algorithm, so a
// long simulation never has to retain individual samples.
type Accumulator struct {
	n        int
	mean, m2 float64
	min, max float64
}

// Add folds one sample into the accumulator.
func (a *Accumulator) Add(x float64) {
	a.n++
	if a.n == 1 {
		a.min, a.max = x, x
	} else {
		if x < a.min {
			a.min = x
		}
		if x > a.max {
			a.max = x
		}
	}
	delta := x - a.mean
	a.mean += delta / float64(a.n)
	a.m2 += delta * (x - a.mean)
}

// Summary freezes the accumulated state.
func (a *Accumulator) Summary() MetricSummary {
	s := MetricSummary{Count: a.n, Mean: a.mean, Min: a.min, Max: a.max}
	if a.n >= 2 {
		v := a.m2 / float64(a.n-1)
		s.Variance = &v
	}
	return s
}

// MetricSummary describes one metric's sample distribution. Variance is the
// sample variance and is nil when fewer than two samples were seen; it is
// undefined there, not zero.
type MetricSummary struct {
	Count    int      `json:"count"`
	Mean     float64  `json:"mean"`
	Min      float64  `json:"min"`
	Max      float64  `json:"max"`
	Variance *float64 `json:"variance,omitempty"`
}

// RequireVariance returns the variance or fails when it is undefined.
func (m MetricSummary) RequireVariance() (float64, error) {
	if m.Variance == nil {
		return 0, fmt.Errorf("variance needs 2 samples, have %v: %w",
			m.Count, ErrInsufficientSamples)
	}
	return *m.Variance, nil
}

// EngineStats aggregates one engine's metrics across successful comparisons.
type EngineStats struct {
	Engine   string        `json:"engine"`
	Failures int           `json:"failures"`
	Quality  MetricSummary `json:"quality"`
	FIDE     MetricSummary `json:"fide"`
	Overall  MetricSummary `json:"overall"`
}

// RoundStats is the per-round breakdown of a summary.
type RoundStats struct {
	Round       int `json:"round"`
	Comparisons int `json:"comparisons"`
	Divergent   int `json:"divergent"`
	WinsA       int `json:"winsA"`
	WinsB       int `json:"winsB"`
	Ties        int `json:"ties"`
}

// StatisticalSummary aggregates a batch of comparison results.
type StatisticalSummary struct {
	Comparisons int `json:"comparisons"`

	A EngineStats `json:"a"`
	B EngineStats `json:"b"`

	WinsA    int     `json:"winsA"`
	WinsB    int     `json:"winsB"`
	Ties     int     `json:"ties"`
	WinRateA float64 `json:"winRateA"`
	WinRateB float64 `json:"winRateB"`

	// DivergenceRate is the fraction of comparisons where the pairings
	// differ at all, counting a diverged bye even when every pair agrees.
	DivergenceRate float64 `json:"divergenceRate"`

	PerRound []RoundStats `json:"perRound,omitempty"`
}

// Summarize aggregates results into engine-level and round-level statistics.
// A failed engine outcome counts toward that engine's failure tally and is
// excluded from its metric accumulation; the comparison as a whole still
// counts for win and divergence rates.
func Summarize(results []*Result) *StatisticalSummary {
	sum := &StatisticalSummary{Comparisons: len(results)}
	if len(results) == 0 {
		return sum
	}
	sum.A.Engine = results[0].A.Engine
	sum.B.Engine = results[0].B.Engine

	var aQ, aF, aO, bQ, bF, bO Accumulator
	divergent := 0
	perRound := make(map[int]*RoundStats)
	for _, res := range results {
		if res.A.Failed() {
			sum.A.Failures++
		} else {
			aQ.Add(res.A.Quality)
			aF.Add(res.A.FIDE)
			aO.Add(res.A.Overall)
		}
		if res.B.Failed() {
			sum.B.Failures++
		} else {
			bQ.Add(res.B.Quality)
			bF.Add(res.B.FIDE)
			bO.Add(res.B.Overall)
		}

		rs := perRound[res.Round]
		if rs == nil {
			rs = &RoundStats{Round: res.Round}
			perRound[res.Round] = rs
		}
		rs.Comparisons++
		if res.Divergence.Any() {
			divergent++
			rs.Divergent++
		}
		switch res.Winner {
		case sum.A.Engine:
			sum.WinsA++
			rs.WinsA++
		case sum.B.Engine:
			sum.WinsB++
			rs.WinsB++
		default:
			sum.Ties++
			rs.Ties++
		}
	}

	sum.A.Quality, sum.A.FIDE, sum.A.Overall =
		aQ.Summary(), aF.Summary(), aO.Summary()
	sum.B.Quality, sum.B.FIDE, sum.B.Overall =
		bQ.Summary(), bF.Summary(), bO.Summary()

	n := float64(len(results))
	sum.WinRateA = float64(sum.WinsA) / n
	sum.WinRateB = float64(sum.WinsB) / n
	sum.DivergenceRate = float64(divergent) / n

	for _, rs := range perRound {
		sum.PerRound = append(sum.PerRound, *rs)
	}
	sort.Slice(sum.PerRound, func(i, j int) bool {
		return sum.PerRound[i].Round < sum.PerRound[j].Round
	})

	return sum
}
