/* Copyright © 2025-2026 Gambit Pairing developers. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package tournament

// ByeTiebreakPolicy controls what a bye round contributes to tiebreaks that
// sum opponent scores. Implementations of these tiebreaks diverge on this
// point, so the policy is explicit rather than a silent default.
type ByeTiebreakPolicy int

const (
	// ByePlaceholder counts each bye round as an opponent with the
	// configured placeholder score. This is the default.
	ByePlaceholder ByeTiebreakPolicy = iota
	// ByeExcluded contributes nothing for bye rounds.
	ByeExcluded
)

func (p ByeTiebreakPolicy) String() string {
	if p == ByeExcluded {
		return "excluded"
	}
	return "placeholder"
}

// Config holds one tournament's settings. It is immutable for the duration
// of a tournament run.
type Config struct {
	Name      string `json:"name" yaml:"name"`
	NumRounds int    `json:"numRounds" yaml:"numRounds"`

	// TiebreakOrder lists tiebreak criteria in priority order.
	TiebreakOrder []TiebreakKey `json:"tiebreakOrder" yaml:"tiebreakOrder"`

	// ByePolicy and ByePlaceholderScore control bye handling in tiebreak
	// sums; see ByeTiebreakPolicy.
	ByePolicy           ByeTiebreakPolicy `json:"byePolicy" yaml:"byePolicy"`
	ByePlaceholderScore float64           `json:"byePlaceholderScore" yaml:"byePlaceholderScore"`

	// ByePoints is awarded to the bye player when a round is applied.
	ByePoints float64 `json:"byePoints" yaml:"byePoints"`

	// InitialColour is the colour granted to the higher seed on board one
	// of round one; subsequent boards alternate.
	InitialColour Colour `json:"initialColour" yaml:"initialColour"`

	// SeedByRating orders players by rating for round-one seeding. When
	// false, registration order is the seed order.
	SeedByRating bool `json:"seedByRating" yaml:"seedByRating"`
}

// DefaultConfig returns a USCF-style configuration: full-point byes,
// placeholder of a draw per bye round, rating seeding, white on board one.
func DefaultConfig(name string, rounds int) Config {
	return Config{
		Name:                name,
		NumRounds:           rounds,
		TiebreakOrder:       append([]TiebreakKey(nil), DefaultUSCFTiebreakOrder...),
		ByePolicy:           ByePlaceholder,
		ByePlaceholderScore: DrawScore,
		ByePoints:           WinScore,
		InitialColour:       ColourWhite,
		SeedByRating:        true,
	}
}
