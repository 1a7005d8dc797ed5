/* Copyright © 2025-2026 Gambit Pairing developers. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package pairing

import (
	"fmt"

	"github.com/gambit-devs/gambitpairing/tournament"
)

// Gambit is the primary Swiss-system engine. Round one pairs the top half
// of the seed order against the bottom half; later rounds pair within score
// groups, resolving stuck groups by floating players down and backtracking
// through alternative pairings until a rematch-free round exists.
type Gambit struct{}

// NewGambit returns the primary Swiss engine.
func NewGambit() *Gambit {
	return &Gambit{}
}

func (g *Gambit) Name() string {
	return "gambit"
}

// board is a pairing before colour assignment. higher precedes lower in
// seed order.
type board struct {
	higher, lower *tournament.Player
}

func (g *Gambit) PairRound(snap *tournament.Registry,
	cfg *tournament.Config, round int) (*tournament.PairingResult, error) {

	players := activePlayers(snap)
	if round == 1 && !cfg.SeedByRating {
		players = registrationOrder(snap)
	}
	if len(players) == 0 {
		return nil, fmt.Errorf("round %v has no active players: %w", round,
			ErrInfeasible)
	}

	pr := &tournament.PairingResult{RoundNumber: round}
	if len(players)%2 == 1 {
		bye, err := selectBye(players)
		if err != nil {
			return nil, fmt.Errorf("round %v: %w", round, err)
		}
		pr.ByePlayerID = bye.ID
		players = withoutPlayer(players, bye.ID)
	}

	if round == 1 {
		pr.Pairs = g.pairFirstRound(players, cfg, round)
		return pr, nil
	}

	boards, ok := g.solve(snap, groupByScore(players), 0, nil)
	if !ok {
		return nil, fmt.Errorf("round %v: %w", round, ErrInfeasible)
	}
	for i, b := range boards {
		whiteID, blackID := assignColours(b.higher, b.lower, cfg)
		pr.Pairs = append(pr.Pairs, tournament.Pair{
			ID:      pairID(round, i),
			WhiteID: whiteID,
			BlackID: blackID,
		})
	}

	return pr, nil
}

// pairID builds a deterministic board identifier so identical inputs yield
// identical output records.
func pairID(round, boardIdx int) string {
	return fmt.Sprintf("r%v-b%v", round, boardIdx+1)
}

// pairFirstRound pairs seed i against seed i+half. The higher seed on board
// one takes the configured initial colour and boards below alternate it.
func (g *Gambit) pairFirstRound(players []*tournament.Player,
	cfg *tournament.Config, round int) []tournament.Pair {

	half := len(players) / 2
	pairs := make([]tournament.Pair, 0, half)
	for i := 0; i < half; i++ {
		higher, lower := players[i], players[half+i]
		colour := cfg.InitialColour
		if i%2 == 1 {
			colour = otherColour(colour)
		}
		whiteID, blackID := higher.ID, lower.ID
		if colour == tournament.ColourBlack {
			whiteID, blackID = lower.ID, higher.ID
		}
		pairs = append(pairs, tournament.Pair{
			ID:      pairID(round, i),
			WhiteID: whiteID,
			BlackID: blackID,
		})
	}
	return pairs
}

// registrationOrder returns active players in registration order.
func registrationOrder(snap *tournament.Registry) []*tournament.Player {
	var players []*tournament.Player
	for _, p := range snap.Players() {
		if p.Active {
			players = append(players, p)
		}
	}
	return players
}

// groupByScore splits seed-ordered players into maximal runs of equal score.
func groupByScore(players []*tournament.Player) [][]*tournament.Player {
	var groups [][]*tournament.Player
	for _, p := range players {
		n := len(groups)
		if n == 0 || groups[n-1][0].Score != p.Score {
			groups = append(groups, []*tournament.Player{p})
			continue
		}
		groups[n-1] = append(groups[n-1], p)
	}
	return groups
}

// solve pairs score group gi and everything below it, with carried holding
// the downfloaters inherited from the groups above. It succeeds only when
// every group down to the last can be paired with no floater left over.
func (g *Gambit) solve(snap *tournament.Registry,
	groups [][]*tournament.Player, gi int,
	carried []*tournament.Player) ([]board, bool) {

	if gi == len(groups) {
		return nil, len(carried) == 0
	}

	bracket := make([]*tournament.Player, 0, len(groups[gi])+len(carried))
	bracket = append(bracket, groups[gi]...)
	bracket = append(bracket, carried...)

	return g.matchBracket(snap, bracket, nil, nil,
		func(pairs []board, floats []*tournament.Player) ([]board, bool) {
			rest, ok := g.solve(snap, groups, gi+1, floats)
			if !ok {
				return nil, false
			}
			return append(append([]board(nil), pairs...), rest...), true
		})
}

// candidateOrder yields opponent indices for the top remaining player of a
// bracket of size n: the middle first, walking to the bottom, then back up
// toward the top. This keeps the top-half versus bottom-half shape when the
// bracket is clean and degrades gracefully under rematch pressure.
func candidateOrder(n int) []int {
	order := make([]int, 0, n-1)
	for i := n / 2; i < n; i++ {
		order = append(order, i)
	}
	for i := n/2 - 1; i >= 1; i-- {
		order = append(order, i)
	}
	return order
}

// matchBracket exhaustively pairs the remaining bracket members. The top
// remaining player tries every opponent in candidateOrder before being
// floated down, and cont decides whether the groups below can live with the
// resulting floaters; a false return backtracks into the next alternative.
func (g *Gambit) matchBracket(snap *tournament.Registry,
	rem []*tournament.Player, pairs []board, floats []*tournament.Player,
	cont func([]board, []*tournament.Player) ([]board, bool)) ([]board, bool) {

	if len(rem) == 0 {
		return cont(pairs, floats)
	}
	if len(rem) == 1 {
		return cont(pairs, appendFloat(floats, rem[0]))
	}

	p := rem[0]
	for _, ci := range candidateOrder(len(rem)) {
		q := rem[ci]
		if snap.HavePlayed(p.ID, q.ID) {
			continue
		}
		next := make([]*tournament.Player, 0, len(rem)-2)
		for i, r := range rem {
			if i != 0 && i != ci {
				next = append(next, r)
			}
		}
		res, ok := g.matchBracket(snap, next,
			append(append([]board(nil), pairs...), board{higher: p, lower: q}),
			floats, cont)
		if ok {
			return res, true
		}
	}

	// Every candidate failed; float the top player down instead.
	return g.matchBracket(snap, rem[1:], pairs, appendFloat(floats, p), cont)
}

func appendFloat(floats []*tournament.Player,
	p *tournament.Player) []*tournament.Player {

	return append(append([]*tournament.Player(nil), floats...), p)
}
