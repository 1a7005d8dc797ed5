/* Copyright © 2025-2026 Gambit Pairing developers. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package pairing

import (
	"github.com/gambit-devs/gambitpairing/tournament"
)

// Colour preference strengths, weakest to strongest.
const (
	PrefNone = iota
	PrefMild
	PrefStrong
	PrefAbsolute
)

func otherColour(c tournament.Colour) tournament.Colour {
	if c == tournament.ColourWhite {
		return tournament.ColourBlack
	}
	return tournament.ColourWhite
}

// DuePreference derives a player's colour preference from their history.
// Two identical colours in a row or a colour imbalance of two or more is an
// absolute preference for the other colour; an imbalance of one is a strong
// preference; with balanced colours the player mildly prefers alternating
// their last colour. Players with no played games have no preference.
func DuePreference(p *tournament.Player) (tournament.Colour, int) {
	cols := p.Colours()
	if n := len(cols); n >= 2 && cols[n-1] == cols[n-2] {
		return otherColour(cols[n-1]), PrefAbsolute
	}

	switch diff := p.ColourDiff(); {
	case diff <= -2:
		return tournament.ColourWhite, PrefAbsolute
	case diff >= 2:
		return tournament.ColourBlack, PrefAbsolute
	case diff == -1:
		return tournament.ColourWhite, PrefStrong
	case diff == 1:
		return tournament.ColourBlack, PrefStrong
	}

	if len(cols) > 0 {
		return otherColour(cols[len(cols)-1]), PrefMild
	}

	return tournament.ColourNone, PrefNone
}

// assignColours orients a pair. higher is the higher-ranked player of the
// two in seed order. When preferences point at different colours both are
// granted; when they collide the stronger preference wins and an equal
// collision resolves in favour of the higher-ranked player. With no
// preference on either side the higher-ranked player takes the configured
// initial colour.
func assignColours(higher, lower *tournament.Player,
	cfg *tournament.Config) (whiteID, blackID string) {

	hCol, hStr := DuePreference(higher)
	lCol, lStr := DuePreference(lower)

	grantHigher := func(c tournament.Colour) (string, string) {
		if c == tournament.ColourWhite {
			return higher.ID, lower.ID
		}
		return lower.ID, higher.ID
	}

	switch {
	case hStr == PrefNone && lStr == PrefNone:
		return grantHigher(cfg.InitialColour)
	case lStr == PrefNone:
		return grantHigher(hCol)
	case hStr == PrefNone:
		return grantHigher(otherColour(lCol))
	case hCol != lCol:
		return grantHigher(hCol)
	case hStr >= lStr:
		return grantHigher(hCol)
	default:
		return grantHigher(otherColour(lCol))
	}
}
