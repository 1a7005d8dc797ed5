/* Copyright © 2025-2026 Gambit Pairing developers. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package tournament

import (
	"strings"
	"testing"
)

// fourPlayerTwoRounds builds a completed two-round event:
//
//	round 1: Alice beats Carol, Bob beats Dan
//	round 2: Alice draws Bob, Carol beats Dan
//
// Final scores: Alice 1.5, Bob 1.5, Carol 1.0, Dan 0.0.
func fourPlayerTwoRounds(t *testing.T, cfg *Config) *Registry {
	t.Helper()
	reg := testRegistry(t,
		fixedPlayer("a", "Alice", 1800),
		fixedPlayer("b", "Bob", 1600),
		fixedPlayer("c", "Carol", 1400),
		fixedPlayer("d", "Dan", 1200),
	)
	r1 := &PairingResult{
		RoundNumber: 1,
		Pairs: []Pair{
			{ID: "r1b1", WhiteID: "a", BlackID: "c"},
			{ID: "r1b2", WhiteID: "b", BlackID: "d"},
		},
	}
	err := reg.ApplyRound(cfg, r1, []MatchResult{
		{WhiteID: "a", BlackID: "c", WhiteScore: WinScore},
		{WhiteID: "b", BlackID: "d", WhiteScore: WinScore},
	})
	if err != nil {
		t.Fatalf("ApplyRound 1: %v", err)
	}
	r2 := &PairingResult{
		RoundNumber: 2,
		Pairs: []Pair{
			{ID: "r2b1", WhiteID: "b", BlackID: "a"},
			{ID: "r2b2", WhiteID: "d", BlackID: "c"},
		},
	}
	err = reg.ApplyRound(cfg, r2, []MatchResult{
		{WhiteID: "b", BlackID: "a", WhiteScore: DrawScore},
		{WhiteID: "d", BlackID: "c", WhiteScore: LossScore},
	})
	if err != nil {
		t.Fatalf("ApplyRound 2: %v", err)
	}
	return reg
}

// TestComputeTiebreaks checks every criterion against hand-computed values
// for the four-player fixture.
func TestComputeTiebreaks(t *testing.T) {
	cfg := DefaultConfig("test", 2)
	cfg.TiebreakOrder = []TiebreakKey{
		TBMedian, TBSolkoff, TBBuchholzCut1, TBCumulative,
		TBCumulativeOpp, TBSonnebornBerger, TBMostBlacks,
	}
	reg := fourPlayerTwoRounds(t, &cfg)
	tbs := ComputeTiebreaks(reg, &cfg)

	// Cumulative opp: Alice faced Carol (cum 1.0) and Bob (cum 2.5).
	want := map[string][]float64{
		"a": {1.5, 2.5, 1.5, 2.5, 3.5, 1.75, 1},
		"b": {1.5, 1.5, 1.5, 2.5, 2.5, 0.75, 0},
		"c": {0.0, 1.5, 1.5, 1.0, 2.5, 0.0, 2},
		"d": {1.0, 2.5, 1.5, 0.0, 3.5, 0.0, 1},
	}
	for id, wantVec := range want {
		got := tbs[id]
		if len(got) != len(wantVec) {
			t.Fatalf("player %v: %v tiebreaks; want %v", id, len(got),
				len(wantVec))
		}
		for i, w := range wantVec {
			if got[i] != w {
				t.Errorf("player %v %v = %v; want %v", id,
					cfg.TiebreakOrder[i], got[i], w)
			}
		}
	}
}

// TestTiebreakByePolicy verifies the two bye treatments in opponent-score
// sums.
func TestTiebreakByePolicy(t *testing.T) {
	cases := []struct {
		name        string
		policy      ByeTiebreakPolicy
		wantSolkoff float64
	}{
		{name: "placeholder", policy: ByePlaceholder, wantSolkoff: 0.5},
		{name: "excluded", policy: ByeExcluded, wantSolkoff: 0.0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig("test", 1)
			cfg.ByePolicy = tc.policy
			cfg.TiebreakOrder = []TiebreakKey{TBSolkoff}
			reg := testRegistry(t,
				fixedPlayer("a", "Alice", 1800),
				fixedPlayer("b", "Bob", 1600),
				fixedPlayer("c", "Carol", 1400),
			)
			pr := &PairingResult{
				RoundNumber: 1,
				Pairs:       []Pair{{ID: "p1", WhiteID: "a", BlackID: "b"}},
				ByePlayerID: "c",
			}
			err := reg.ApplyRound(&cfg, pr, []MatchResult{
				{WhiteID: "a", BlackID: "b", WhiteScore: WinScore}})
			if err != nil {
				t.Fatalf("ApplyRound: %v", err)
			}

			got := ComputeTiebreaks(reg, &cfg)["c"][0]
			if got != tc.wantSolkoff {
				t.Errorf("Solkoff for bye player = %v; want %v", got,
					tc.wantSolkoff)
			}
		})
	}
}

// TestRankTotalOrder verifies the full ranking of the fixture and that tied
// players resolve on rating then id, deterministically.
func TestRankTotalOrder(t *testing.T) {
	cfg := DefaultConfig("test", 2)
	reg := fourPlayerTwoRounds(t, &cfg)

	standings := Rank(reg, &cfg)
	wantOrder := []string{"a", "b", "c", "d"}
	for i, id := range wantOrder {
		if standings[i].Player.ID != id {
			t.Errorf("standings[%v] = %v; want %v", i, standings[i].Player.ID,
				id)
		}
	}
	// Alice and Bob share 1.5 but split on Solkoff (2.5 vs 1.5).
	if standings[0].Rank == standings[1].Rank {
		t.Error("Alice and Bob share a rank despite differing tiebreaks")
	}

	// Repeated ranking of the same state must be byte-stable.
	again := Rank(reg, &cfg)
	for i := range standings {
		if standings[i].Player.ID != again[i].Player.ID {
			t.Fatalf("ranking not deterministic at index %v", i)
		}
	}
}

// TestRankSharedRank verifies sportingly identical players share a rank and
// order on rating then id.
func TestRankSharedRank(t *testing.T) {
	cfg := DefaultConfig("test", 2)
	reg := testRegistry(t,
		fixedPlayer("z", "Zoe", 1500),
		fixedPlayer("m", "Mia", 1700),
		fixedPlayer("k", "Kim", 1500),
	)

	standings := Rank(reg, &cfg)
	wantOrder := []string{"m", "k", "z"}
	for i, id := range wantOrder {
		if standings[i].Player.ID != id {
			t.Errorf("standings[%v] = %v; want %v", i, standings[i].Player.ID,
				id)
		}
	}
	for _, s := range standings {
		if s.Rank != 1 {
			t.Errorf("player %v rank = %v; want shared rank 1", s.Player.ID,
				s.Rank)
		}
	}
}

// TestBuildStandingsOutput sanity-checks the formatted table.
func TestBuildStandingsOutput(t *testing.T) {
	cfg := DefaultConfig("test", 2)
	reg := fourPlayerTwoRounds(t, &cfg)

	out := BuildStandingsOutput(reg, &cfg)
	for _, want := range []string{"Standings after Round 2", "Place", "Alice",
		"Modified Median", "Solkoff"} {
		if !strings.Contains(out, want) {
			t.Errorf("standings output missing %q:\n%s", want, out)
		}
	}
}
