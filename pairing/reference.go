/* Copyright © 2025-2026 Gambit Pairing developers. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package pairing

import (
	"fmt"

	"github.com/gambit-devs/gambitpairing/tournament"
)

// BBP is the reference engine the comparison layer holds Gambit against. It
// pairs adjacent players in the overall seed order rather than splitting
// halves within score groups, backtracking only as far as needed to avoid
// rematches, and orients colours by preference alone with no board
// alternation in round one. Deliberately simpler than Gambit; the two
// disagreeing is signal, not failure.
type BBP struct{}

// NewBBP returns the reference engine.
func NewBBP() *BBP {
	return &BBP{}
}

func (b *BBP) Name() string {
	return "bbp"
}

func (b *BBP) PairRound(snap *tournament.Registry,
	cfg *tournament.Config, round int) (*tournament.PairingResult, error) {

	players := activePlayers(snap)
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

	boards, ok := b.pairAdjacent(snap, players, nil)
	if !ok {
		return nil, fmt.Errorf("round %v: %w", round, ErrInfeasible)
	}
	for i, bd := range boards {
		whiteID, blackID := assignColours(bd.higher, bd.lower, cfg)
		pr.Pairs = append(pr.Pairs, tournament.Pair{
			ID:      pairID(round, i),
			WhiteID: whiteID,
			BlackID: blackID,
		})
	}

	return pr, nil
}

// pairAdjacent pairs the top remaining player with the nearest player below
// them that they have not yet faced, backtracking on dead ends.
func (b *BBP) pairAdjacent(snap *tournament.Registry,
	rem []*tournament.Player, pairs []board) ([]board, bool) {

	if len(rem) == 0 {
		return pairs, true
	}

	p := rem[0]
	for ci := 1; ci < len(rem); ci++ {
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
		res, ok := b.pairAdjacent(snap, next,
			append(append([]board(nil), pairs...), board{higher: p, lower: q}))
		if ok {
			return res, true
		}
	}

	return nil, false
}
