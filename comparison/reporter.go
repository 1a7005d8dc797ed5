/* Copyright © 2025-2026 Gambit Pairing developers. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package comparison

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Report is the archivable form of a comparison run.
type Report struct {
	GeneratedAt time.Time           `json:"generatedAt"`
	Summary     *StatisticalSummary `json:"summary"`
	Results     []*Result           `json:"results,omitempty"`
}

// EncodeReport serializes a report for storage.
func EncodeReport(r *Report) ([]byte, error) {
	buf, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode report: %w", err)
	}
	return buf, nil
}

// DecodeReport deserializes a stored report.
func DecodeReport(buf []byte) (*Report, error) {
	var r Report
	if err := json.Unmarshal(buf, &r); err != nil {
		return nil, fmt.Errorf("failed to decode report: %w", err)
	}
	return &r, nil
}

func writeAligned(sb *strings.Builder, rows [][]string) {
	if len(rows) == 0 {
		return
	}
	widths := make([]int, len(rows[0]))
	for _, row := range rows {
		for i, cell := range row {
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}
	for _, row := range rows {
		for i, cell := range row {
			if i > 0 {
				sb.WriteString("  ")
			}
			sb.WriteString(fmt.Sprintf("%-*s", widths[i], cell))
		}
		sb.WriteString("\n")
	}
}

// BuildComparisonOutput formats one comparison result as aligned text.
func BuildComparisonOutput(res *Result) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Round %v comparison (winner: %v):\n\n",
		res.Round, res.Winner))

	rows := [][]string{{"Engine", "Quality", "FIDE", "Overall", "Status"}}
	for _, out := range []*EngineOutcome{&res.A, &res.B} {
		if out.Failed() {
			rows = append(rows, []string{out.Engine, "-", "-", "-", out.Err})
			continue
		}
		rows = append(rows, []string{
			out.Engine,
			fmt.Sprintf("%.3f", out.Quality),
			fmt.Sprintf("%.3f", out.FIDE),
			fmt.Sprintf("%.3f", out.Overall),
			"ok",
		})
	}
	writeAligned(&sb, rows)

	d := &res.Divergence
	sb.WriteString(fmt.Sprintf("\nDivergent pairs: %v\n", d.DivergentPairs()))
	for _, p := range d.OnlyA {
		sb.WriteString(fmt.Sprintf("  only %v: %v vs %v\n", res.A.Engine,
			p.WhiteID, p.BlackID))
	}
	for _, p := range d.OnlyB {
		sb.WriteString(fmt.Sprintf("  only %v: %v vs %v\n", res.B.Engine,
			p.WhiteID, p.BlackID))
	}
	for _, sw := range d.ColourSwaps {
		sb.WriteString(fmt.Sprintf("  colours swapped: %v vs %v\n",
			sw.A.WhiteID, sw.A.BlackID))
	}
	if d.ByeDiverged {
		sb.WriteString("  bye recipients differ\n")
	}

	return sb.String()
}

// BuildSummaryOutput formats an aggregate summary as aligned text.
func BuildSummaryOutput(sum *StatisticalSummary) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Comparison summary over %v rounds:\n\n",
		sum.Comparisons))
	if sum.Comparisons == 0 {
		return sb.String()
	}

	fmtVar := func(m MetricSummary) string {
		if m.Variance == nil {
			return "-"
		}
		return fmt.Sprintf("%.4f", *m.Variance)
	}
	rows := [][]string{{"Engine", "Mean", "Min", "Max", "Var", "Failures"}}
	for _, es := range []*EngineStats{&sum.A, &sum.B} {
		rows = append(rows, []string{
			es.Engine,
			fmt.Sprintf("%.3f", es.Overall.Mean),
			fmt.Sprintf("%.3f", es.Overall.Min),
			fmt.Sprintf("%.3f", es.Overall.Max),
			fmtVar(es.Overall),
			fmt.Sprintf("%v", es.Failures),
		})
	}
	writeAligned(&sb, rows)

	sb.WriteString(fmt.Sprintf(
		"\nWins: %v %v, %v %v, %v ties (divergence rate %.1f%%)\n",
		sum.A.Engine, sum.WinsA, sum.B.Engine, sum.WinsB, sum.Ties,
		sum.DivergenceRate*100))

	if len(sum.PerRound) > 0 {
		sb.WriteString("\n")
		rows = [][]string{{"Round", "Runs", "Divergent", "WinsA", "WinsB",
			"Ties"}}
		for _, rs := range sum.PerRound {
			rows = append(rows, []string{
				fmt.Sprintf("%v", rs.Round),
				fmt.Sprintf("%v", rs.Comparisons),
				fmt.Sprintf("%v", rs.Divergent),
				fmt.Sprintf("%v", rs.WinsA),
				fmt.Sprintf("%v", rs.WinsB),
				fmt.Sprintf("%v", rs.Ties),
			})
		}
		writeAligned(&sb, rows)
	}

	return sb.String()
}
