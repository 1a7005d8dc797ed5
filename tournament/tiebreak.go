/* Copyright © 2025-2026 Gambit Pairing developers. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package tournament

import (
	"sort"
)

// TiebreakKey identifies one tiebreak criterion.
type TiebreakKey string

const (
	// TBMedian is the Modified Median (USCF rule 34E3).
	TBMedian TiebreakKey = "median"
	// TBSolkoff is the sum of all opponents' final scores.
	TBSolkoff TiebreakKey = "solkoff"
	// TBBuchholzCut1 is Solkoff with the single lowest opponent score
	// dropped.
	TBBuchholzCut1 TiebreakKey = "buchholz_cut1"
	// TBCumulative is the sum of the player's own running score after each
	// round.
	TBCumulative TiebreakKey = "cumulative"
	// TBCumulativeOpp is the sum of the opponents' cumulative scores.
	TBCumulativeOpp TiebreakKey = "cumulative_opp"
	// TBSonnebornBerger sums the full score of each defeated opponent and
	// half the score of each drawn opponent.
	TBSonnebornBerger TiebreakKey = "sb"
	// TBMostBlacks counts games played with the black pieces.
	TBMostBlacks TiebreakKey = "most_blacks"
)

// TiebreakNames maps keys to display names.
var TiebreakNames = map[TiebreakKey]string{
	TBMedian:          "Modified Median",
	TBSolkoff:         "Solkoff",
	TBBuchholzCut1:    "Buchholz Cut 1",
	TBCumulative:      "Cumulative",
	TBCumulativeOpp:   "Cumulative Opp",
	TBSonnebornBerger: "Sonneborn-Berger",
	TBMostBlacks:      "Most Blacks",
}

// DefaultUSCFTiebreakOrder is the USCF 34E recommended sequence.
var DefaultUSCFTiebreakOrder = []TiebreakKey{
	TBMedian, TBSolkoff, TBCumulative, TBCumulativeOpp,
}

// DefaultFIDETiebreakOrder is a common FIDE Swiss sequence.
var DefaultFIDETiebreakOrder = []TiebreakKey{
	TBBuchholzCut1, TBSolkoff, TBSonnebornBerger, TBMostBlacks,
}

// oppScore resolves the score an opponent entry contributes to opponent-based
// tiebreaks. Bye rounds have no opponent; cfg.ByePolicy controls whether they
// contribute a fixed placeholder or nothing at all. The second return is
// false when the entry must be skipped entirely.
func oppScore(r *Registry, cfg *Config, e RoundEntry) (float64, bool) {
	if e.Bye() {
		if cfg.ByePolicy == ByeExcluded {
			return 0, false
		}
		return cfg.ByePlaceholderScore, true
	}
	opp, ok := r.players[e.OpponentID]
	if !ok {
		return 0, false
	}
	return opp.Score, true
}

// modifiedMedian implements USCF 34E3. Players with more than half the
// maximum score drop their lowest opponent score, players with less than
// half drop their highest, and players with exactly half drop both.
func modifiedMedian(r *Registry, cfg *Config, p *Player) float64 {
	var scores []float64
	for _, e := range p.History {
		s, ok := oppScore(r, cfg, e)
		if !ok {
			continue
		}
		scores = append(scores, s)
	}
	if len(scores) == 0 {
		return 0
	}
	sort.Float64s(scores)

	half := float64(len(r.rounds)) * DrawScore
	switch {
	case p.Score > half:
		scores = scores[1:]
	case p.Score < half:
		scores = scores[:len(scores)-1]
	default:
		if len(scores) >= 2 {
			scores = scores[1 : len(scores)-1]
		} else {
			scores = nil
		}
	}
	sum := 0.0
	for _, s := range scores {
		sum += s
	}
	return sum
}

func solkoff(r *Registry, cfg *Config, p *Player) float64 {
	sum := 0.0
	for _, e := range p.History {
		s, ok := oppScore(r, cfg, e)
		if !ok {
			continue
		}
		sum += s
	}
	return sum
}

func buchholzCut1(r *Registry, cfg *Config, p *Player) float64 {
	var scores []float64
	for _, e := range p.History {
		s, ok := oppScore(r, cfg, e)
		if !ok {
			continue
		}
		scores = append(scores, s)
	}
	if len(scores) == 0 {
		return 0
	}
	sort.Float64s(scores)
	sum := 0.0
	for _, s := range scores[1:] {
		sum += s
	}
	return sum
}

func cumulative(p *Player) float64 {
	sum := 0.0
	for _, s := range p.RunningScores() {
		sum += s
	}
	return sum
}

func cumulativeOpp(r *Registry, p *Player) float64 {
	sum := 0.0
	for _, e := range p.History {
		if e.Bye() {
			continue
		}
		opp, ok := r.players[e.OpponentID]
		if !ok {
			continue
		}
		sum += cumulative(opp)
	}
	return sum
}

func sonnebornBerger(r *Registry, p *Player) float64 {
	sum := 0.0
	for _, e := range p.History {
		if e.Bye() {
			continue
		}
		opp, ok := r.players[e.OpponentID]
		if !ok {
			continue
		}
		switch e.Points {
		case WinScore:
			sum += opp.Score
		case DrawScore:
			sum += opp.Score / 2
		}
	}
	return sum
}

// ComputeTiebreaks evaluates cfg.TiebreakOrder for every player and returns
// each player's tiebreak vector, in criterion order, keyed by player id.
func ComputeTiebreaks(r *Registry, cfg *Config) map[string][]float64 {
	out := make(map[string][]float64, len(r.order))
	for _, id := range r.order {
		p := r.players[id]
		vec := make([]float64, 0, len(cfg.TiebreakOrder))
		for _, key := range cfg.TiebreakOrder {
			var v float64
			switch key {
			case TBMedian:
				v = modifiedMedian(r, cfg, p)
			case TBSolkoff:
				v = solkoff(r, cfg, p)
			case TBBuchholzCut1:
				v = buchholzCut1(r, cfg, p)
			case TBCumulative:
				v = cumulative(p)
			case TBCumulativeOpp:
				v = cumulativeOpp(r, p)
			case TBSonnebornBerger:
				v = sonnebornBerger(r, p)
			case TBMostBlacks:
				v = float64(p.BlackGames())
			}
			vec = append(vec, v)
		}
		out[id] = vec
	}
	return out
}
