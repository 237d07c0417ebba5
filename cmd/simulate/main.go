// Command simulate is the tournament runner described in §6.3: it
// reads decks from JSON files, drives either a single matchup or a
// round robin, and prints the result. Structured the way the teacher's
// cmd/server/main.go wires flag parsing, config loading, and logger
// construction together, trimmed to a one-shot CLI instead of a
// long-running server.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/PropterMalone/3cblue/internal/card"
	"github.com/PropterMalone/3cblue/internal/cblog"
	"github.com/PropterMalone/3cblue/internal/config"
	"github.com/PropterMalone/3cblue/internal/matchup"
	"github.com/PropterMalone/3cblue/internal/oracle"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	configPath = flag.String("config", "config/simulate.yaml", "path to configuration file")
	roundRobin = flag.Bool("round-robin", false, "run every deck file as a round robin instead of a single matchup")
)

func main() {
	flag.Parse()
	deckPaths := flag.Args()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger, err := cblog.New(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	decks := make([][]card.Card, 0, len(deckPaths))
	for _, path := range deckPaths {
		deck, err := loadDeck(path)
		if err != nil {
			logger.Error("failed to load deck", zap.String("path", path), zap.Error(err))
			os.Exit(1)
		}
		decks = append(decks, deck)
	}

	if *roundRobin {
		runRoundRobin(decks, cfg, logger)
		return
	}
	runSingleMatchup(decks, cfg, logger)
}

func runSingleMatchup(decks [][]card.Card, cfg config.Config, logger *zap.Logger) {
	if len(decks) != 2 {
		fmt.Fprintln(os.Stderr, "simulate: exactly two deck files are required without -round-robin")
		os.Exit(1)
	}

	outcome, stats := matchup.Simulate(decks[0], decks[1], cfg.MaxDepth, logger)
	fmt.Printf("outcome: %s\n", outcome.Kind)
	if outcome.Kind == matchup.Unresolved {
		fmt.Printf("reason: %s\n", outcome.Reason)
	}
	fmt.Printf("nodes explored: %d\n", stats.NodesExplored)
	fmt.Printf("max depth reached: %d\n", stats.MaxDepthReached)
	fmt.Printf("terminated by depth limit: %t\n", stats.TerminatedByDepthLimit)
}

func runRoundRobin(decks [][]card.Card, cfg config.Config, logger *zap.Logger) {
	if len(decks) < 2 {
		fmt.Fprintln(os.Stderr, "simulate: -round-robin requires at least two deck files")
		os.Exit(1)
	}

	results, matches := matchup.RunRoundRobin(decks, cfg.MaxDepth, logger)
	for _, m := range matches {
		fmt.Printf("deck %d vs deck %d: %s\n", m.Deck0, m.Deck1, m.Outcome.Kind)
	}
	fmt.Println("standings:")
	for _, r := range results {
		fmt.Printf("  deck %d: %d points\n", r.DeckIndex, r.Points)
	}
}

// cardFile is the JSON shape of one card in a deck file (§6.1: the
// engine has no opinion on where card text comes from; this is the
// CLI's own choice of format, not an engine concern).
type cardFile struct {
	Name       string `json:"name"`
	ManaCost   string `json:"mana_cost"`
	Types      []string `json:"types"`
	Power      *int   `json:"power"`
	Toughness  *int   `json:"toughness"`
	OracleText string `json:"oracle_text"`
}

func loadDeck(path string) ([]card.Card, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var files []cardFile
	if err := json.Unmarshal(raw, &files); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	deck := make([]card.Card, 0, len(files))
	for _, f := range files {
		types := make([]card.CardType, 0, len(f.Types))
		for _, t := range f.Types {
			types = append(types, card.CardType(t))
		}
		manaCost := card.ParseManaCost(f.ManaCost)
		deck = append(deck, card.Card{
			ID:            uuid.New(),
			Name:          f.Name,
			ManaCostText:  f.ManaCost,
			ConvertedCost: manaCost.ConvertedCost(),
			Types:         types,
			OracleText:    f.OracleText,
			Power:         f.Power,
			Toughness:     f.Toughness,
			Abilities:     oracle.Parse(f.OracleText),
		})
	}
	return deck, nil
}
