/* Copyright © 2025-2026 Gambit Pairing developers. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package tournament

import (
	"testing"
)

// TestPlayerColourAccounting exercises the colour-derived accessors.
func TestPlayerColourAccounting(t *testing.T) {
	p := fixedPlayer("a", "Alice", 1800)
	p.History = []RoundEntry{
		{OpponentID: "b", Colour: ColourWhite, Points: WinScore},
		{Points: WinScore}, // bye
		{OpponentID: "c", Colour: ColourBlack, Points: DrawScore},
		{OpponentID: "d", Colour: ColourWhite, Points: LossScore},
	}

	if diff := p.ColourDiff(); diff != 1 {
		t.Errorf("ColourDiff = %v; want 1", diff)
	}
	if n := p.BlackGames(); n != 1 {
		t.Errorf("BlackGames = %v; want 1", n)
	}
	if opps := p.OpponentIDs(); len(opps) != 3 || opps[0] != "b" {
		t.Errorf("OpponentIDs = %v; want [b c d]", opps)
	}
	if cols := p.Colours(); len(cols) != 3 || cols[1] != ColourBlack {
		t.Errorf("Colours = %v", cols)
	}

	running := p.RunningScores()
	want := []float64{1.0, 2.0, 2.5, 2.5}
	for i, w := range want {
		if running[i] != w {
			t.Errorf("RunningScores[%v] = %v; want %v", i, running[i], w)
		}
	}
}

// TestPlayerClone verifies clones are fully detached.
func TestPlayerClone(t *testing.T) {
	p := fixedPlayer("a", "Alice", 1800)
	p.History = []RoundEntry{{OpponentID: "b", Colour: ColourWhite,
		Points: WinScore}}
	p.Federation = &FederationProfile{Code: "USCF", FideID: 12345}

	cp := p.Clone()
	cp.History[0].Points = LossScore
	cp.History = append(cp.History, RoundEntry{Points: WinScore})
	cp.Federation.Code = "FIDE"
	cp.Score = 9

	if p.History[0].Points != WinScore {
		t.Error("clone history mutation reached original")
	}
	if len(p.History) != 1 {
		t.Error("clone history append reached original")
	}
	if p.Federation.Code != "USCF" {
		t.Error("clone federation mutation reached original")
	}
	if p.Score != 0 {
		t.Error("clone score mutation reached original")
	}
}

// TestNewPlayerIDs verifies generated ids are unique and players start
// active.
func TestNewPlayerIDs(t *testing.T) {
	a := NewPlayer("Alice", 1800)
	b := NewPlayer("Bob", 1600)
	if a.ID == "" || a.ID == b.ID {
		t.Errorf("NewPlayer ids = %q, %q; want distinct non-empty", a.ID, b.ID)
	}
	if !a.Active {
		t.Error("new player not active")
	}
}
