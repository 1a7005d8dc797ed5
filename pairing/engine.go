/* Copyright © 2025-2026 Gambit Pairing developers. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package pairing

import (
	"errors"
	"sort"

	"github.com/gambit-devs/gambitpairing/tournament"
)

// ErrInfeasible indicates no rule-compliant pairing exists for the round.
// Recovery means relaxing constraints, which is the caller's call, so the
// engines never degrade to an illegal pairing on their own.
var ErrInfeasible = errors.New("no legal pairing exists for this round")

// Engine produces one round's pairings from a tournament snapshot. PairRound
// must be a pure function of its inputs: identical snapshots and config
// yield identical output, and the snapshot is never mutated. Engines being
// compared each receive their own snapshot.
type Engine interface {
	Name() string
	PairRound(snap *tournament.Registry, cfg *tournament.Config,
		round int) (*tournament.PairingResult, error)
}

// activePlayers returns pairable players in seed order: score descending,
// rating descending, id ascending. Withdrawn players are skipped entirely.
func activePlayers(snap *tournament.Registry) []*tournament.Player {
	var players []*tournament.Player
	for _, p := range snap.Players() {
		if p.Active {
			players = append(players, p)
		}
	}
	sort.Slice(players, func(i, j int) bool {
		a, b := players[i], players[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		if a.Rating != b.Rating {
			return a.Rating > b.Rating
		}
		return a.ID < b.ID
	})
	return players
}

// selectBye picks the bye recipient from an odd field: the lowest-scored,
// then lowest-rated, eligible player. A player who already received a bye is
// never eligible again; an odd field with no eligible player is infeasible.
func selectBye(players []*tournament.Player) (*tournament.Player, error) {
	var eligible []*tournament.Player
	for _, p := range players {
		if p.ByeCount == 0 {
			eligible = append(eligible, p)
		}
	}
	if len(eligible) == 0 {
		return nil, ErrInfeasible
	}
	sort.Slice(eligible, func(i, j int) bool {
		a, b := eligible[i], eligible[j]
		if a.Score != b.Score {
			return a.Score < b.Score
		}
		if a.Rating != b.Rating {
			return a.Rating < b.Rating
		}
		return a.ID < b.ID
	})
	return eligible[0], nil
}

// withoutPlayer returns players minus the given id, preserving order.
func withoutPlayer(players []*tournament.Player,
	id string) []*tournament.Player {

	out := make([]*tournament.Player, 0, len(players))
	for _, p := range players {
		if p.ID != id {
			out = append(out, p)
		}
	}
	return out
}
