/* Copyright © 2025-2026 Gambit Pairing developers. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package main

import (
	"context"
	_ "embed"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/gambit-devs/gambitpairing/comparison"
	"github.com/gambit-devs/gambitpairing/internal"
	"github.com/gambit-devs/gambitpairing/pairing"
	"github.com/gambit-devs/gambitpairing/reportstore"
	"github.com/gambit-devs/gambitpairing/tournament"
)

//go:embed help.txt
var helpText string

// cmdHandler defines the signature for command handler functions.
type cmdHandler func(ctx context.Context, args []string)

// commands maps command names to their respective handler functions.
var commands = map[string]cmdHandler{
	"help":     handleHelp,
	"version":  handleVersion,
	"run":      handleRun,
	"simulate": handleSimulate,
	"reports":  handleReports,
}

func main() {
	ctx := context.Background()

	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}
	cmd := os.Args[1]
	if handler, ok := commands[cmd]; ok {
		handler(ctx, os.Args[2:])
	} else {
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Printf("%v", helpText)
}

func handleHelp(ctx context.Context, args []string) {
	usage()
}

func handleVersion(ctx context.Context, args []string) {
	fmt.Printf("%v %v\n", internal.ProjectName, internal.Version)
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

// handleRun plays one simulated tournament with the gambit engine, printing
// each round's pairings and the final standings.
func handleRun(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("run", flag.ExitOnError)
	players := fs.Int("players", 8, "Number of players")
	rounds := fs.Int("rounds", 5, "Number of rounds")
	seed := fs.Int64("seed", 1, "Random seed for simulated results")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	if *players < 2 || *rounds < 1 {
		fatalf("run requires at least 2 players and 1 round")
	}

	rng := rand.New(rand.NewSource(*seed))
	cfg := tournament.DefaultConfig("gambitcmp run", *rounds)
	reg := tournament.NewRegistry()
	for i := 0; i < *players; i++ {
		p := tournament.NewPlayer(fmt.Sprintf("Player %v", i+1),
			1200+rng.Intn(800))
		if err := reg.AddPlayer(p); err != nil {
			fatalf("Error adding player: %v", err)
		}
	}

	eng := pairing.NewGambit()
	for round := 1; round <= *rounds; round++ {
		pr, err := eng.PairRound(reg.Snapshot(), &cfg, round)
		if err != nil {
			fatalf("Error pairing round %v: %v", round, err)
		}

		fmt.Printf("Round %v:\n", round)
		var results []tournament.MatchResult
		for board, pair := range pr.Pairs {
			white, _ := reg.Player(pair.WhiteID)
			black, _ := reg.Player(pair.BlackID)
			score := tournament.WinScore
			if rng.Float64() < 0.5 {
				score = tournament.LossScore
			}
			results = append(results, tournament.MatchResult{
				WhiteID: pair.WhiteID, BlackID: pair.BlackID,
				WhiteScore: score,
			})
			fmt.Printf("  %v. %v (%v) vs %v (%v): %v-%v\n", board+1,
				white.Name, white.Rating, black.Name, black.Rating,
				internal.ScoreToString(score),
				internal.ScoreToString(tournament.WinScore-score))
		}
		if pr.ByePlayerID != "" {
			bye, _ := reg.Player(pr.ByePlayerID)
			fmt.Printf("  bye: %v\n", bye.Name)
		}
		fmt.Printf("\n")

		if err := reg.ApplyRound(&cfg, pr, results); err != nil {
			fatalf("Error recording round %v: %v", round, err)
		}
	}

	fmt.Printf("%v", tournament.BuildStandingsOutput(reg, &cfg))
}

// handleSimulate runs the engine comparison batch.
func handleSimulate(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("simulate", flag.ExitOnError)
	configPath := fs.String("config", "", "YAML simulation config file")
	tournaments := fs.Int("tournaments", 0, "Override: number of tournaments")
	rounds := fs.Int("rounds", 0, "Override: rounds per tournament")
	players := fs.Int("players", 0, "Override: players per tournament")
	seed := fs.Int64("seed", 0, "Override: base random seed")
	verbose := fs.Bool("verbose", false, "Print every divergent comparison")
	outPath := fs.String("out", "", "Write the full JSON report to this file")
	archive := fs.Bool("archive", false, "Archive the JSON report to S3")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	logger := internal.NewLogger()
	defer logger.Sync()

	simCfg := comparison.DefaultSimulationConfig()
	if *configPath != "" {
		loaded, err := comparison.LoadSimulationConfig(*configPath)
		if err != nil {
			fatalf("Error loading config: %v", err)
		}
		simCfg = *loaded
	}
	if *tournaments > 0 {
		simCfg.Tournaments = *tournaments
	}
	if *rounds > 0 {
		simCfg.Rounds = *rounds
	}
	if *players > 0 {
		simCfg.Players = *players
	}
	if *seed != 0 {
		simCfg.Seed = *seed
	}

	sim := comparison.NewSimulator(simCfg, logger)
	sum, results, err := sim.Run(ctx)
	if err != nil {
		fatalf("Simulation failed: %v", err)
	}

	fmt.Printf("%v", comparison.BuildSummaryOutput(sum))
	if *verbose {
		for _, res := range results {
			if !res.Divergence.Any() {
				continue
			}
			fmt.Printf("\n%v", comparison.BuildComparisonOutput(res))
		}
	}

	if *outPath == "" && !*archive {
		return
	}
	report := &comparison.Report{
		GeneratedAt: time.Now().UTC(),
		Summary:     sum,
		Results:     results,
	}
	buf, err := comparison.EncodeReport(report)
	if err != nil {
		fatalf("Error encoding report: %v", err)
	}
	if *outPath != "" {
		if err := os.WriteFile(*outPath, buf, 0644); err != nil {
			fatalf("Error writing report: %v", err)
		}
		fmt.Printf("\nWrote report to %v\n", *outPath)
	}
	if *archive {
		store := reportstore.New(internal.ReportArchiveBucket, logger)
		if err := store.Init(ctx); err != nil {
			fatalf("Error initializing report store: %v", err)
		}
		name := report.GeneratedAt.Format("2006-01-02T150405Z")
		if err := store.Put(ctx, name, buf); err != nil {
			fatalf("Error archiving report: %v", err)
		}
		fmt.Printf("Archived report as %v\n", name)
	}
}

// handleReports lists or fetches archived reports.
func handleReports(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("reports", flag.ExitOnError)
	since := fs.String("since", "",
		"Only list reports newer than this date (most common formats accepted)")
	get := fs.String("get", "", "Print the summary of one archived report")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	logger := internal.NewLogger()
	defer logger.Sync()

	store := reportstore.New(internal.ReportArchiveBucket, logger)
	if err := store.Init(ctx); err != nil {
		fatalf("Error initializing report store: %v", err)
	}

	if *get != "" {
		buf, err := store.Get(ctx, *get)
		if err != nil {
			fatalf("Error fetching report %v: %v", *get, err)
		}
		report, err := comparison.DecodeReport(buf)
		if err != nil {
			fatalf("Error decoding report %v: %v", *get, err)
		}
		fmt.Printf("Report %v (generated %v):\n\n", *get,
			report.GeneratedAt.Format(time.RFC3339))
		fmt.Printf("%v", comparison.BuildSummaryOutput(report.Summary))
		return
	}

	cutoff, err := internal.ParseDateOrZero(*since)
	if err != nil {
		fatalf("Error parsing -since date %q: %v", *since, err)
	}
	entries, err := store.List(ctx)
	if err != nil {
		fatalf("Error listing reports: %v", err)
	}

	count := 0
	for _, e := range entries {
		if !cutoff.IsZero() && e.LastModified.Before(cutoff) {
			continue
		}
		fmt.Printf("%v  %8v bytes  %v\n",
			e.LastModified.Format("2006-01-02 15:04:05"), e.Size, e.Name)
		count++
	}
	if count == 0 {
		fmt.Printf("No reports found.\n")
	}
}
