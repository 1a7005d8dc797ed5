/* Copyright © 2025-2026 Gambit Pairing developers. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package tournament

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gambit-devs/gambitpairing/internal"
)

// Standing is one ranked row: a player with their final tiebreak vector.
type Standing struct {
	Rank      int
	Player    *Player
	Tiebreaks []float64
}

// Rank orders all players into a total order: score descending, then each
// configured tiebreak descending, then rating descending, then id ascending.
// The id comparison guarantees the order is deterministic even for players
// identical on every sporting criterion. Tied players share a rank number.
func Rank(r *Registry, cfg *Config) []Standing {
	tbs := ComputeTiebreaks(r, cfg)
	players := r.Players()
	sort.Slice(players, func(i, j int) bool {
		a, b := players[i], players[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		va, vb := tbs[a.ID], tbs[b.ID]
		for k := range va {
			if va[k] != vb[k] {
				return va[k] > vb[k]
			}
		}
		if a.Rating != b.Rating {
			return a.Rating > b.Rating
		}
		return a.ID < b.ID
	})

	out := make([]Standing, len(players))
	for i, p := range players {
		rank := i + 1
		if i > 0 && sportinglyEqual(out[i-1], p, tbs[p.ID]) {
			rank = out[i-1].Rank
		}
		out[i] = Standing{Rank: rank, Player: p, Tiebreaks: tbs[p.ID]}
	}
	return out
}

func sportinglyEqual(prev Standing, p *Player, tb []float64) bool {
	if prev.Player.Score != p.Score {
		return false
	}
	for k := range tb {
		if prev.Tiebreaks[k] != tb[k] {
			return false
		}
	}
	return true
}

// BuildStandingsOutput formats the current standings as an aligned table,
// one column per configured tiebreak.
func BuildStandingsOutput(r *Registry, cfg *Config) string {
	standings := Rank(r, cfg)
	if len(standings) == 0 {
		return "No players registered"
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Standings after Round %v:\n\n",
		r.RoundsCompleted()))

	headers := []string{"Place", "Name", "Rtng", "Score"}
	for _, key := range cfg.TiebreakOrder {
		headers = append(headers, TiebreakNames[key])
	}

	var rows [][]string
	priorRank := -1
	for _, s := range standings {
		rank := ""
		if s.Rank != priorRank {
			rank = fmt.Sprintf("%v.", s.Rank)
			priorRank = s.Rank
		}
		row := []string{
			rank,
			s.Player.Name,
			fmt.Sprintf("%v", s.Player.Rating),
			internal.ScoreToString(s.Player.Score),
		}
		for _, v := range s.Tiebreaks {
			row = append(row, fmt.Sprintf("%.1f", v))
		}
		rows = append(rows, row)
	}

	// Compute column widths
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if l := len(cell); l > widths[i] {
				widths[i] = l
			}
		}
	}

	writeRow := func(cells []string) {
		for i, cell := range cells {
			if i > 0 {
				sb.WriteString("  ")
			}
			sb.WriteString(fmt.Sprintf("%-*s", widths[i], cell))
		}
		sb.WriteString("\n")
	}
	writeRow(headers)
	for _, row := range rows {
		writeRow(row)
	}

	return sb.String()
}
