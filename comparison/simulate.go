/* Copyright © 2025-2026 Gambit Pairing developers. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package comparison

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"os"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/gambit-devs/gambitpairing/pairing"
	"github.com/gambit-devs/gambitpairing/tournament"
)

// SimulationConfig drives a deterministic batch of simulated tournaments.
type SimulationConfig struct {
	Tournaments int   `yaml:"tournaments"`
	Rounds      int   `yaml:"rounds"`
	Players     int   `yaml:"players"`
	Seed        int64 `yaml:"seed"`

	// BaseRating and RatingSpread shape the generated field: ratings are
	// drawn uniformly from [BaseRating, BaseRating+RatingSpread).
	BaseRating   int `yaml:"baseRating"`
	RatingSpread int `yaml:"ratingSpread"`

	// Workers caps concurrent tournament simulations; zero or negative
	// means one.
	Workers int `yaml:"workers"`

	Options Options `yaml:"options"`
}

// DefaultSimulationConfig returns a small deterministic batch.
func DefaultSimulationConfig() SimulationConfig {
	return SimulationConfig{
		Tournaments:  20,
		Rounds:       5,
		Players:      16,
		Seed:         1,
		BaseRating:   1200,
		RatingSpread: 800,
		Workers:      4,
		Options:      DefaultOptions(),
	}
}

// LoadSimulationConfig reads a YAML simulation config, filling unset fields
// from the defaults.
func LoadSimulationConfig(path string) (*SimulationConfig, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read simulation config: %w", err)
	}
	cfg := DefaultSimulationConfig()
	if err := yaml.Unmarshal(buf, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse simulation config %v: %w",
			path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *SimulationConfig) validate() error {
	if c.Tournaments < 1 {
		return fmt.Errorf("tournaments must be positive, have %v",
			c.Tournaments)
	}
	if c.Rounds < 1 {
		return fmt.Errorf("rounds must be positive, have %v", c.Rounds)
	}
	if c.Players < 2 {
		return fmt.Errorf("players must be at least 2, have %v", c.Players)
	}
	return nil
}

// Simulator runs both engines side by side over generated tournaments and
// feeds every round's comparison to the analyzer. Identical configs produce
// identical summaries: each tournament derives its random stream from the
// base seed and its own index, so worker scheduling cannot reorder results.
type Simulator struct {
	cfg SimulationConfig
	log *zap.Logger
}

// NewSimulator returns a simulator. A nil logger disables logging.
func NewSimulator(cfg SimulationConfig, log *zap.Logger) *Simulator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Simulator{cfg: cfg, log: log}
}

// Run executes the configured batch and returns the aggregate summary plus
// every individual comparison, ordered by tournament then round.
func (s *Simulator) Run(ctx context.Context) (*StatisticalSummary,
	[]*Result, error) {

	perTournament := make([][]*Result, s.cfg.Tournaments)

	g, gctx := errgroup.WithContext(ctx)
	workers := s.cfg.Workers
	if workers < 1 {
		workers = 1
	}
	g.SetLimit(workers)

	for t := 0; t < s.cfg.Tournaments; t++ {
		t := t
		g.Go(func() error {
			results, err := s.runTournament(gctx, t)
			if err != nil {
				return fmt.Errorf("tournament %v: %w", t, err)
			}
			perTournament[t] = results
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	var all []*Result
	for _, results := range perTournament {
		all = append(all, results...)
	}
	sum := Summarize(all)
	s.log.Info("simulation complete",
		zap.Int("tournaments", s.cfg.Tournaments),
		zap.Int("comparisons", sum.Comparisons),
		zap.Float64("divergenceRate", sum.DivergenceRate))

	return sum, all, nil
}

// runTournament plays one simulated event to completion. Engine A's pairing
// advances the canonical state; when A fails, B's pairing is used, and the
// tournament stops early when neither engine can pair.
func (s *Simulator) runTournament(ctx context.Context,
	idx int) ([]*Result, error) {

	rng := rand.New(rand.NewSource(s.cfg.Seed + int64(idx)))

	cfg := tournament.DefaultConfig(fmt.Sprintf("sim-%v", idx), s.cfg.Rounds)
	reg := tournament.NewRegistry()
	for i := 0; i < s.cfg.Players; i++ {
		rating := s.cfg.BaseRating
		if s.cfg.RatingSpread > 0 {
			rating += rng.Intn(s.cfg.RatingSpread)
		}
		p := &tournament.Player{
			ID:     fmt.Sprintf("sim-%v-p%03d", idx, i),
			Name:   fmt.Sprintf("Player %v", i+1),
			Rating: rating,
			Active: true,
		}
		if err := reg.AddPlayer(p); err != nil {
			return nil, err
		}
	}

	cmp := New(pairing.NewGambit(), pairing.NewBBP(), s.cfg.Options, s.log)

	var results []*Result
	for round := 1; round <= s.cfg.Rounds; round++ {
		res, err := cmp.Compare(ctx, reg, &cfg, round)
		if err != nil {
			return nil, err
		}
		results = append(results, res)

		canonical := res.A.Pairing
		if canonical == nil {
			canonical = res.B.Pairing
		}
		if canonical == nil {
			s.log.Warn("both engines failed, stopping tournament early",
				zap.Int("tournament", idx), zap.Int("round", round))
			break
		}

		matchResults := s.simulateResults(reg, canonical, rng)
		if err := reg.ApplyRound(&cfg, canonical, matchResults); err != nil {
			return nil, err
		}
	}

	return results, nil
}

// simulateResults rolls each game from an Elo expectation with a fixed draw
// band.
func (s *Simulator) simulateResults(reg *tournament.Registry,
	pr *tournament.PairingResult, rng *rand.Rand) []tournament.MatchResult {

	results := make([]tournament.MatchResult, 0, len(pr.Pairs))
	for _, pair := range pr.Pairs {
		white, _ := reg.Player(pair.WhiteID)
		black, _ := reg.Player(pair.BlackID)
		expected := 1.0 /
			(1.0 + math.Pow(10, float64(black.Rating-white.Rating)/400))

		roll := rng.Float64()
		score := tournament.LossScore
		switch {
		case roll < 0.1:
			score = tournament.DrawScore
		case (roll-0.1)/0.9 < expected:
			score = tournament.WinScore
		}
		results = append(results, tournament.MatchResult{
			WhiteID:    pair.WhiteID,
			BlackID:    pair.BlackID,
			WhiteScore: score,
		})
	}
	return results
}
