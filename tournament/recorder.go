/* Copyright © 2025-2026 Gambit Pairing developers. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package tournament

import (
	"fmt"
)

// ApplyRound validates a complete set of results against a pairing and, only
// if every check passes, commits the round to the registry. On any error the
// registry is left untouched.
//
// Every pair in the pairing must have exactly one result with matching
// white/black orientation, and no result may reference a pair that is not in
// the pairing. The bye recipient, if any, is awarded cfg.ByePoints when
// active and zero points when withdrawn.
func (r *Registry) ApplyRound(cfg *Config, pr *PairingResult,
	results []MatchResult) error {

	if pr.RoundNumber != len(r.rounds)+1 {
		return fmt.Errorf("pairing is for round %v but next round is %v: %w",
			pr.RoundNumber, len(r.rounds)+1, ErrResultMismatch)
	}

	// Validate everything before touching registry state.
	seen := make(map[string]struct{}, len(pr.Pairs)*2+1)
	for _, id := range pr.PlayerIDs() {
		if _, ok := seen[id]; ok {
			return fmt.Errorf("player %q appears more than once in round %v: %w",
				id, pr.RoundNumber, ErrResultMismatch)
		}
		seen[id] = struct{}{}
	}

	type pairSlot struct {
		pair   Pair
		result *MatchResult
	}
	slots := make(map[pairKey]*pairSlot, len(pr.Pairs))
	for _, pair := range pr.Pairs {
		if _, ok := r.players[pair.WhiteID]; !ok {
			return fmt.Errorf("pair %v white %q: %w", pair.ID, pair.WhiteID,
				ErrPlayerNotFound)
		}
		if _, ok := r.players[pair.BlackID]; !ok {
			return fmt.Errorf("pair %v black %q: %w", pair.ID, pair.BlackID,
				ErrPlayerNotFound)
		}
		slots[newPairKey(pair.WhiteID, pair.BlackID)] = &pairSlot{pair: pair}
	}
	if pr.ByePlayerID != "" {
		if _, ok := r.players[pr.ByePlayerID]; !ok {
			return fmt.Errorf("bye player %q: %w", pr.ByePlayerID,
				ErrPlayerNotFound)
		}
	}

	for i := range results {
		res := results[i]
		if err := res.Validate(); err != nil {
			return err
		}
		slot, ok := slots[newPairKey(res.WhiteID, res.BlackID)]
		if !ok {
			return fmt.Errorf("result %v vs %v matches no pair in round %v: %w",
				res.WhiteID, res.BlackID, pr.RoundNumber, ErrResultMismatch)
		}
		if slot.pair.WhiteID != res.WhiteID {
			return fmt.Errorf("result %v vs %v has colours reversed: %w",
				res.WhiteID, res.BlackID, ErrResultMismatch)
		}
		if slot.result != nil {
			return fmt.Errorf("duplicate result for %v vs %v: %w",
				res.WhiteID, res.BlackID, ErrResultMismatch)
		}
		slot.result = &results[i]
	}
	for _, slot := range slots {
		if slot.result == nil {
			return fmt.Errorf("no result for pair %v (%v vs %v): %w",
				slot.pair.ID, slot.pair.WhiteID, slot.pair.BlackID,
				ErrResultMismatch)
		}
	}

	// Commit.
	for _, pair := range pr.Pairs {
		slot := slots[newPairKey(pair.WhiteID, pair.BlackID)]
		white := r.players[pair.WhiteID]
		black := r.players[pair.BlackID]
		white.Score += slot.result.WhiteScore
		black.Score += slot.result.BlackScore()
		white.History = append(white.History, RoundEntry{
			OpponentID: black.ID,
			Colour:     ColourWhite,
			Points:     slot.result.WhiteScore,
		})
		black.History = append(black.History, RoundEntry{
			OpponentID: white.ID,
			Colour:     ColourBlack,
			Points:     slot.result.BlackScore(),
		})
		r.played[newPairKey(pair.WhiteID, pair.BlackID)] = struct{}{}
	}
	if pr.ByePlayerID != "" {
		bye := r.players[pr.ByePlayerID]
		pts := 0.0
		if bye.Active {
			pts = cfg.ByePoints
		}
		bye.Score += pts
		bye.ByeCount++
		bye.History = append(bye.History, RoundEntry{Points: pts})
	}
	r.rounds = append(r.rounds, RoundRecord{
		Pairing: pr.Clone(),
		Results: append([]MatchResult(nil), results...),
	})

	return nil
}

// UndoRound reverses the most recently applied round, restoring scores,
// histories, bye counts, and the played-pairs set.
func (r *Registry) UndoRound() error {
	if len(r.rounds) == 0 {
		return ErrNoRounds
	}
	rec := r.rounds[len(r.rounds)-1]
	for _, pair := range rec.Pairing.Pairs {
		white := r.players[pair.WhiteID]
		black := r.players[pair.BlackID]
		white.Score -= white.History[len(white.History)-1].Points
		black.Score -= black.History[len(black.History)-1].Points
		white.History = white.History[:len(white.History)-1]
		black.History = black.History[:len(black.History)-1]
		delete(r.played, newPairKey(pair.WhiteID, pair.BlackID))
	}
	if rec.Pairing.ByePlayerID != "" {
		bye := r.players[rec.Pairing.ByePlayerID]
		bye.Score -= bye.History[len(bye.History)-1].Points
		bye.History = bye.History[:len(bye.History)-1]
		bye.ByeCount--
	}
	r.rounds = r.rounds[:len(r.rounds)-1]

	return nil
}
