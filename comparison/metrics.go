/* Copyright © 2025-2026 Gambit Pairing developers. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package comparison

import (
	"github.com/gambit-devs/gambitpairing/pairing"
	"github.com/gambit-devs/gambitpairing/tournament"
)

// ratingSpreadCeiling is the rating gap at which the spread component of
// QualityScore bottoms out.
const ratingSpreadCeiling = 1000.0

// colourCredit scores how well one player's colour assignment honours their
// preference.
func colourCredit(p *tournament.Player, got tournament.Colour) float64 {
	due, strength := pairing.DuePreference(p)
	if due == tournament.ColourNone || due == got {
		return 1.0
	}
	switch strength {
	case pairing.PrefAbsolute:
		return 0.0
	case pairing.PrefStrong:
		return 0.5
	default:
		return 0.75
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// QualityScore rates the sporting quality of a pairing in [0, 1] from three
// equally weighted components: score-group compliance, colour preference
// satisfaction, and rating spread. It is a total function; a round with no
// pairs scores 1.0 since nothing in it can be wrong. Pairs referencing
// unknown player ids contribute nothing.
func QualityScore(snap *tournament.Registry,
	pr *tournament.PairingResult) float64 {

	if pr == nil || len(pr.Pairs) == 0 {
		return 1.0
	}

	var bracket, colour, spread float64
	counted := 0
	for _, pair := range pr.Pairs {
		white, okW := snap.Player(pair.WhiteID)
		black, okB := snap.Player(pair.BlackID)
		if !okW || !okB {
			continue
		}
		counted++

		scoreGap := white.Score - black.Score
		if scoreGap < 0 {
			scoreGap = -scoreGap
		}
		bracket += 1.0 / (1.0 + scoreGap)

		colour += (colourCredit(white, tournament.ColourWhite) +
			colourCredit(black, tournament.ColourBlack)) / 2

		ratingGap := float64(white.Rating - black.Rating)
		if ratingGap < 0 {
			ratingGap = -ratingGap
		}
		if ratingGap > ratingSpreadCeiling {
			ratingGap = ratingSpreadCeiling
		}
		spread += 1.0 - ratingGap/ratingSpreadCeiling
	}
	if counted == 0 {
		return 1.0
	}

	n := float64(counted)
	return clamp01((bracket/n + colour/n + spread/n) / 3)
}

// FIDEScore rates rules compliance in [0, 1]. Any hard violation scores the
// whole pairing 0.0: a rematch, a self-pairing, a player appearing twice, an
// active player left out, a bye to an ineligible recipient, or a reference
// to a player the state does not know. Without hard violations the score is
// the fraction of soft checks passed: absolute colour preferences honoured
// and pairs drawn from the same score group.
func FIDEScore(snap *tournament.Registry,
	pr *tournament.PairingResult) float64 {

	if pr == nil {
		return 0.0
	}

	seen := make(map[string]bool)
	for _, id := range pr.PlayerIDs() {
		if seen[id] {
			return 0.0
		}
		seen[id] = true
		if _, ok := snap.Player(id); !ok {
			return 0.0
		}
	}
	for _, p := range snap.Players() {
		if p.Active && !seen[p.ID] {
			return 0.0
		}
	}
	for _, pair := range pr.Pairs {
		if pair.WhiteID == pair.BlackID {
			return 0.0
		}
		if snap.HavePlayed(pair.WhiteID, pair.BlackID) {
			return 0.0
		}
	}
	if pr.ByePlayerID != "" {
		bye, _ := snap.Player(pr.ByePlayerID)
		if bye.ByeCount > 0 || !bye.Active {
			return 0.0
		}
	}

	passed, total := 0, 0
	for _, pair := range pr.Pairs {
		white, _ := snap.Player(pair.WhiteID)
		black, _ := snap.Player(pair.BlackID)

		for _, side := range []struct {
			p   *tournament.Player
			got tournament.Colour
		}{{white, tournament.ColourWhite}, {black, tournament.ColourBlack}} {
			due, strength := pairing.DuePreference(side.p)
			if strength < pairing.PrefAbsolute {
				continue
			}
			total++
			if due == side.got {
				passed++
			}
		}

		total++
		if white.Score == black.Score {
			passed++
		}
	}
	if total == 0 {
		return 1.0
	}
	return float64(passed) / float64(total)
}

// OverallScore blends FIDE compliance and pairing quality with the given
// weights, normalizing so the result stays in [0, 1]. Non-positive weight
// sums fall back to equal weighting.
func OverallScore(fide, quality, fideWeight, qualityWeight float64) float64 {
	sum := fideWeight + qualityWeight
	if sum <= 0 {
		fideWeight, qualityWeight, sum = 1, 1, 2
	}
	return clamp01((fide*fideWeight + quality*qualityWeight) / sum)
}
