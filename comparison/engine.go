/* Copyright © 2025-2026 Gambit Pairing developers. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package comparison

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/gambit-devs/gambitpairing/pairing"
	"github.com/gambit-devs/gambitpairing/tournament"
)

// Options tunes a comparison engine.
type Options struct {
	// FIDEWeight and QualityWeight blend the two metric families into the
	// overall score.
	FIDEWeight    float64 `json:"fideWeight" yaml:"fideWeight"`
	QualityWeight float64 `json:"qualityWeight" yaml:"qualityWeight"`

	// TieBand is the overall-score margin inside which a comparison is
	// declared a tie.
	TieBand float64 `json:"tieBand" yaml:"tieBand"`

	// Parallel runs the two engines concurrently.
	Parallel bool `json:"parallel" yaml:"parallel"`
}

// DefaultOptions weights compliance over quality and calls scores within
// 0.01 of each other a tie.
func DefaultOptions() Options {
	return Options{
		FIDEWeight:    0.7,
		QualityWeight: 0.3,
		TieBand:       0.01,
	}
}

// WinnerTie marks a comparison neither engine won.
const WinnerTie = "tie"

// EngineOutcome is one engine's side of a comparison: its pairing, its
// metric scores, and its failure if it produced none. A failed outcome
// carries no scores and is excluded from aggregation.
type EngineOutcome struct {
	Engine  string                    `json:"engine"`
	Pairing *tournament.PairingResult `json:"pairing,omitempty"`
	Quality float64                   `json:"quality"`
	FIDE    float64                   `json:"fide"`
	Overall float64                   `json:"overall"`
	Err     string                    `json:"error,omitempty"`
}

// Failed reports whether the engine produced no pairing.
func (o *EngineOutcome) Failed() bool {
	return o.Err != ""
}

// ColourSwap is a pair both engines produced with opposite orientations.
type ColourSwap struct {
	A tournament.Pair `json:"a"`
	B tournament.Pair `json:"b"`
}

// Divergence is the structural difference between two pairings: the
// unordered-pair symmetric difference plus colour swaps on agreed pairs.
type Divergence struct {
	OnlyA       []tournament.Pair `json:"onlyA,omitempty"`
	OnlyB       []tournament.Pair `json:"onlyB,omitempty"`
	ColourSwaps []ColourSwap      `json:"colourSwaps,omitempty"`
	ByeDiverged bool              `json:"byeDiverged,omitempty"`
}

// DivergentPairs counts the symmetric difference.
func (d *Divergence) DivergentPairs() int {
	return len(d.OnlyA) + len(d.OnlyB)
}

// Any reports whether the pairings differ at all, including a bye awarded
// to different players.
func (d *Divergence) Any() bool {
	return d.DivergentPairs() > 0 || d.ByeDiverged
}

// Result is one full comparison of two engines over one tournament state.
type Result struct {
	ID         string        `json:"id"`
	Round      int           `json:"round"`
	A          EngineOutcome `json:"a"`
	B          EngineOutcome `json:"b"`
	Divergence Divergence    `json:"divergence"`

	// Winner is the name of the engine with the higher overall score,
	// WinnerTie inside the tie band. An engine that failed loses outright;
	// two failures tie.
	Winner string `json:"winner"`
}

// Engine compares two pairing engines over identical tournament states.
type Engine struct {
	a, b pairing.Engine
	opts Options
	log  *zap.Logger
}

// New returns a comparison engine. A nil logger disables logging.
func New(a, b pairing.Engine, opts Options, log *zap.Logger) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	return &Engine{a: a, b: b, opts: opts, log: log}
}

// Compare runs both engines for the given round over isolated clones of reg
// and diffs the outcomes. Neither engine can observe the other or mutate
// reg. An individual engine failure is recorded on its outcome, not
// returned; Compare itself fails only on context cancellation.
func (e *Engine) Compare(ctx context.Context, reg *tournament.Registry,
	cfg *tournament.Config, round int) (*Result, error) {

	res := &Result{
		ID:    uuid.NewString(),
		Round: round,
		A:     EngineOutcome{Engine: e.a.Name()},
		B:     EngineOutcome{Engine: e.b.Name()},
	}

	run := func(eng pairing.Engine, out *EngineOutcome) func() error {
		snap := reg.Snapshot()
		return func() error {
			pr, err := eng.PairRound(snap, cfg, round)
			if err != nil {
				e.log.Warn("engine failed to pair",
					zap.String("engine", eng.Name()),
					zap.Int("round", round),
					zap.Error(err))
				out.Err = err.Error()
				return nil
			}
			out.Pairing = pr
			out.Quality = QualityScore(snap, pr)
			out.FIDE = FIDEScore(snap, pr)
			out.Overall = OverallScore(out.FIDE, out.Quality,
				e.opts.FIDEWeight, e.opts.QualityWeight)
			return nil
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if e.opts.Parallel {
		var g errgroup.Group
		g.Go(run(e.a, &res.A))
		g.Go(run(e.b, &res.B))
		if err := g.Wait(); err != nil {
			return nil, err
		}
	} else {
		if err := run(e.a, &res.A)(); err != nil {
			return nil, err
		}
		if err := run(e.b, &res.B)(); err != nil {
			return nil, err
		}
	}

	res.Divergence = diff(res.A.Pairing, res.B.Pairing)
	res.Winner = e.winner(res)

	e.log.Debug("comparison complete",
		zap.Int("round", round),
		zap.Int("divergentPairs", res.Divergence.DivergentPairs()),
		zap.String("winner", res.Winner))

	return res, nil
}

func (e *Engine) winner(res *Result) string {
	switch {
	case res.A.Failed() && res.B.Failed():
		return WinnerTie
	case res.A.Failed():
		return res.B.Engine
	case res.B.Failed():
		return res.A.Engine
	}
	delta := res.A.Overall - res.B.Overall
	if delta < 0 {
		delta = -delta
	}
	if delta <= e.opts.TieBand {
		return WinnerTie
	}
	if res.A.Overall > res.B.Overall {
		return res.A.Engine
	}
	return res.B.Engine
}

func unorderedKey(p tournament.Pair) string {
	if p.WhiteID > p.BlackID {
		return p.BlackID + "|" + p.WhiteID
	}
	return p.WhiteID + "|" + p.BlackID
}

// diff computes the divergence between two pairings. Either side may be nil
// when its engine failed; a nil side contributes no pairs of its own and
// turns the other side's pairs into one-sided divergences.
func diff(a, b *tournament.PairingResult) Divergence {
	var d Divergence

	aPairs := make(map[string]tournament.Pair)
	if a != nil {
		for _, p := range a.Pairs {
			aPairs[unorderedKey(p)] = p
		}
	}
	bPairs := make(map[string]tournament.Pair)
	if b != nil {
		for _, p := range b.Pairs {
			bPairs[unorderedKey(p)] = p
		}
	}

	keys := make([]string, 0, len(aPairs))
	for k := range aPairs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		pa := aPairs[k]
		pb, ok := bPairs[k]
		if !ok {
			d.OnlyA = append(d.OnlyA, pa)
			continue
		}
		if pa.WhiteID != pb.WhiteID {
			d.ColourSwaps = append(d.ColourSwaps, ColourSwap{A: pa, B: pb})
		}
	}

	keys = keys[:0]
	for k := range bPairs {
		if _, ok := aPairs[k]; !ok {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	for _, k := range keys {
		d.OnlyB = append(d.OnlyB, bPairs[k])
	}

	var aBye, bBye string
	if a != nil {
		aBye = a.ByePlayerID
	}
	if b != nil {
		bBye = b.ByePlayerID
	}
	d.ByeDiverged = aBye != bBye

	return d
}

// String summarizes a result for logs.
func (r *Result) String() string {
	return fmt.Sprintf("round %v: %v %.3f vs %v %.3f, %v divergent, winner %v",
		r.Round, r.A.Engine, r.A.Overall, r.B.Engine, r.B.Overall,
		r.Divergence.DivergentPairs(), r.Winner)
}
