/* Copyright © 2025-2026 Gambit Pairing developers. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package tournament

import (
	"fmt"
)

// pairKey is an unordered player-id pair.
type pairKey struct {
	lo, hi string
}

func newPairKey(a, b string) pairKey {
	if a > b {
		a, b = b, a
	}
	return pairKey{lo: a, hi: b}
}

// RoundRecord is one applied round: the pairing it was played under and the
// validated results.
type RoundRecord struct {
	Pairing *PairingResult
	Results []MatchResult
}

// Registry is the single mutable source of truth for standings. Round
// managers and the tiebreak calculator read snapshots of it; only
// ApplyRound and UndoRound mutate it, each as one atomic transaction.
// Callers must not apply rounds to the same registry concurrently.
type Registry struct {
	players map[string]*Player
	order   []string // registration order, for deterministic iteration
	played  map[pairKey]struct{}
	rounds  []RoundRecord
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		players: make(map[string]*Player),
		played:  make(map[pairKey]struct{}),
	}
}

// AddPlayer registers a player. Adding a duplicate id fails with
// ErrDuplicatePlayer.
func (r *Registry) AddPlayer(p *Player) error {
	if p.ID == "" {
		return fmt.Errorf("player %q has no id: %w", p.Name, ErrPlayerNotFound)
	}
	if _, ok := r.players[p.ID]; ok {
		return fmt.Errorf("player %q (%s): %w", p.Name, p.ID,
			ErrDuplicatePlayer)
	}
	r.players[p.ID] = p
	r.order = append(r.order, p.ID)
	return nil
}

// Player looks up a player by id.
func (r *Registry) Player(id string) (*Player, bool) {
	p, ok := r.players[id]
	return p, ok
}

// Players returns all players in registration order. The returned slice is
// fresh but the pointers alias registry state; use Snapshot for isolation.
func (r *Registry) Players() []*Player {
	out := make([]*Player, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.players[id])
	}
	return out
}

// Len returns the number of registered players.
func (r *Registry) Len() int {
	return len(r.order)
}

// RoundsCompleted returns the number of applied rounds.
func (r *Registry) RoundsCompleted() int {
	return len(r.rounds)
}

// Round returns an applied round (1-indexed).
func (r *Registry) Round(number int) (RoundRecord, bool) {
	if number < 1 || number > len(r.rounds) {
		return RoundRecord{}, false
	}
	return r.rounds[number-1], true
}

// HavePlayed reports whether two players already met.
func (r *Registry) HavePlayed(a, b string) bool {
	_, ok := r.played[newPairKey(a, b)]
	return ok
}

// Snapshot returns a deep copy, fully isolated from the receiver. Pairing
// engines each receive their own snapshot so neither can see the other's
// state.
func (r *Registry) Snapshot() *Registry {
	cp := NewRegistry()
	cp.order = append([]string(nil), r.order...)
	for id, p := range r.players {
		cp.players[id] = p.Clone()
	}
	for k := range r.played {
		cp.played[k] = struct{}{}
	}
	cp.rounds = make([]RoundRecord, len(r.rounds))
	for i, rec := range r.rounds {
		cp.rounds[i] = RoundRecord{
			Pairing: rec.Pairing.Clone(),
			Results: append([]MatchResult(nil), rec.Results...),
		}
	}
	return cp
}
