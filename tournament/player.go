/* Copyright © 2025-2026 Gambit Pairing developers. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package tournament

import (
	"github.com/google/uuid"
)

// Colour of the pieces a player held in one round.
type Colour int

const (
	ColourNone Colour = iota // bye rounds carry no colour
	ColourWhite
	ColourBlack
)

func (c Colour) String() string {
	switch c {
	case ColourWhite:
		return "white"
	case ColourBlack:
		return "black"
	default:
		return "none"
	}
}

// RoundEntry records one completed round from a single player's perspective.
// OpponentID is empty and Colour is ColourNone for a bye round.
type RoundEntry struct {
	OpponentID string  `json:"opponentId,omitempty" yaml:"opponentId,omitempty"`
	Colour     Colour  `json:"colour" yaml:"colour"`
	Points     float64 `json:"points" yaml:"points"`
}

// Bye reports whether this entry was a pairing-allocated bye.
func (e RoundEntry) Bye() bool {
	return e.OpponentID == ""
}

// FederationProfile is the optional federation attachment for a player.
// Pairing and tiebreak logic never read it; it exists for eligibility
// checks and display.
type FederationProfile struct {
	Code   string `json:"code" yaml:"code"`
	Title  string `json:"title,omitempty" yaml:"title,omitempty"`
	FideID int    `json:"fideId,omitempty" yaml:"fideId,omitempty"`
}

// Player holds one competitor's identity and cumulative tournament state.
//
// Invariants maintained by the Registry: Score equals the sum of History
// points, and len(History) equals the number of rounds applied while the
// player was registered.
type Player struct {
	ID     string `json:"id" yaml:"id"`
	Name   string `json:"name" yaml:"name"`
	Rating int    `json:"rating" yaml:"rating"` // 0 means unrated

	Score    float64      `json:"score" yaml:"score"`
	History  []RoundEntry `json:"history" yaml:"history"`
	ByeCount int          `json:"byeCount" yaml:"byeCount"`
	Active   bool         `json:"active" yaml:"active"`

	Federation *FederationProfile `json:"federation,omitempty" yaml:"federation,omitempty"`
}

// NewPlayer returns an active player with a generated id.
func NewPlayer(name string, rating int) *Player {
	return &Player{
		ID:     uuid.NewString(),
		Name:   name,
		Rating: rating,
		Active: true,
	}
}

// OpponentIDs returns the ids of all opponents faced, skipping byes.
func (p *Player) OpponentIDs() []string {
	ids := make([]string, 0, len(p.History))
	for _, e := range p.History {
		if !e.Bye() {
			ids = append(ids, e.OpponentID)
		}
	}
	return ids
}

// Colours returns the colour sequence of played games, skipping byes.
func (p *Player) Colours() []Colour {
	colours := make([]Colour, 0, len(p.History))
	for _, e := range p.History {
		if e.Colour != ColourNone {
			colours = append(colours, e.Colour)
		}
	}
	return colours
}

// ColourDiff returns whites minus blacks over all played games. A positive
// value means the player owes black.
func (p *Player) ColourDiff() int {
	diff := 0
	for _, e := range p.History {
		switch e.Colour {
		case ColourWhite:
			diff++
		case ColourBlack:
			diff--
		}
	}
	return diff
}

// BlackGames returns the number of games played with the black pieces.
func (p *Player) BlackGames() int {
	n := 0
	for _, e := range p.History {
		if e.Colour == ColourBlack {
			n++
		}
	}
	return n
}

// RunningScores returns the cumulative score after each round, used by the
// cumulative (progressive) tiebreak.
func (p *Player) RunningScores() []float64 {
	running := make([]float64, len(p.History))
	sum := 0.0
	for i, e := range p.History {
		sum += e.Points
		running[i] = sum
	}
	return running
}

// Clone returns a deep copy.
func (p *Player) Clone() *Player {
	cp := *p
	cp.History = append([]RoundEntry(nil), p.History...)
	if p.Federation != nil {
		fed := *p.Federation
		cp.Federation = &fed
	}
	return &cp
}

func (p *Player) String() string {
	return p.Name
}
