/* Copyright © 2025-2026 Gambit Pairing developers. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package tournament

import "fmt"

// Game outcome scores.
const (
	WinScore  = 1.0
	DrawScore = 0.5
	LossScore = 0.0
)

// MatchResult records the outcome of one game as white's score. Black's
// score is always derived as 1 - white's and is never stored independently.
type MatchResult struct {
	WhiteID    string  `json:"whiteId" yaml:"whiteId"`
	BlackID    string  `json:"blackId" yaml:"blackId"`
	WhiteScore float64 `json:"whiteScore" yaml:"whiteScore"`
}

// BlackScore derives black's score from white's.
func (m MatchResult) BlackScore() float64 {
	return WinScore - m.WhiteScore
}

// Validate checks score granularity and player distinctness.
func (m MatchResult) Validate() error {
	if m.WhiteID == "" || m.BlackID == "" {
		return fmt.Errorf("match result with empty player id: %w",
			ErrResultMismatch)
	}
	if m.WhiteID == m.BlackID {
		return fmt.Errorf("match result pairs %q with itself: %w", m.WhiteID,
			ErrResultMismatch)
	}
	switch m.WhiteScore {
	case WinScore, DrawScore, LossScore:
		return nil
	}
	return fmt.Errorf("invalid white score %v: %w", m.WhiteScore,
		ErrResultMismatch)
}

// Pair is one board of a round. ID is a traceability identifier carried
// through comparison reports; it has no pairing semantics.
type Pair struct {
	ID      string `json:"id" yaml:"id"`
	WhiteID string `json:"whiteId" yaml:"whiteId"`
	BlackID string `json:"blackId" yaml:"blackId"`
}

// PairingResult is one round's pairings in board order plus at most one
// bye. Board order is stable for display but carries no scoring meaning.
// PairingResults are immutable once produced; consumers clone before
// modifying.
type PairingResult struct {
	RoundNumber int    `json:"roundNumber" yaml:"roundNumber"`
	Pairs       []Pair `json:"pairs" yaml:"pairs"`
	ByePlayerID string `json:"byePlayerId,omitempty" yaml:"byePlayerId,omitempty"`
}

// Clone returns a deep copy.
func (pr *PairingResult) Clone() *PairingResult {
	cp := *pr
	cp.Pairs = append([]Pair(nil), pr.Pairs...)
	return &cp
}

// PlayerIDs returns every player id appearing in the result, bye included.
func (pr *PairingResult) PlayerIDs() []string {
	ids := make([]string, 0, len(pr.Pairs)*2+1)
	for _, pair := range pr.Pairs {
		ids = append(ids, pair.WhiteID, pair.BlackID)
	}
	if pr.ByePlayerID != "" {
		ids = append(ids, pr.ByePlayerID)
	}
	return ids
}
