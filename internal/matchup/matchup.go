// Package matchup implements C7, the top-level evaluator: given two
// decks it runs the §4.1 preflight check, builds the initial state
// (C3), drives the search (C6), and translates the result into an
// Outcome the caller can act on. Grounded on the teacher's higher-level
// game-lifecycle orchestration (mage_engine.go composes parser, state,
// and combat the same way a live game does; this just does it once,
// to a terminal verdict, instead of turn by turn against a human).
package matchup

import (
	"fmt"
	"sort"
	"strings"

	"github.com/PropterMalone/3cblue/internal/card"
	"github.com/PropterMalone/3cblue/internal/search"
	"github.com/PropterMalone/3cblue/internal/state"
	"go.uber.org/zap"
)

// OutcomeKind discriminates the closed Outcome sum (§4.7).
type OutcomeKind int

const (
	Player0Wins OutcomeKind = iota
	Player1Wins
	Draw
	Unresolved
)

func (k OutcomeKind) String() string {
	switch k {
	case Player0Wins:
		return "player0_wins"
	case Player1Wins:
		return "player1_wins"
	case Draw:
		return "draw"
	case Unresolved:
		return "unresolved"
	default:
		return fmt.Sprintf("outcome(%d)", int(k))
	}
}

// Outcome is the result of one matchup. Reason is populated only for
// Unresolved.
type Outcome struct {
	Kind   OutcomeKind
	Reason string
}

// Stats mirrors search.Stats at the matchup boundary (§4.7); it is the
// zero value for a matchup that short-circuited at preflight.
type Stats = search.Stats

// Simulate runs the preflight check, then (if it passes) drives the
// full search and translates the result into an Outcome (§4.7).
func Simulate(deck0, deck1 []card.Card, maxDepth int, logger *zap.Logger) (Outcome, Stats) {
	if reason, poisoned := preflight(deck0, deck1); poisoned {
		return Outcome{Kind: Unresolved, Reason: reason}, Stats{}
	}

	gs := state.Initial(deck0, deck1)
	engine := search.NewEngine(maxDepth, logger)
	value := engine.Evaluate(gs)

	return translateOutcome(value), engine.Stats()
}

func translateOutcome(value int) Outcome {
	switch {
	case value > 0:
		return Outcome{Kind: Player0Wins}
	case value < 0:
		return Outcome{Kind: Player1Wins}
	default:
		return Outcome{Kind: Draw}
	}
}

// preflight implements §4.7's precondition: any card anywhere in either
// deck with an Unresolved ability poisons the whole matchup before any
// state is built or any search runs.
func preflight(deck0, deck1 []card.Card) (reason string, poisoned bool) {
	var offending []string
	for _, c := range append(append([]card.Card{}, deck0...), deck1...) {
		if len(c.UnresolvedAbilities()) > 0 {
			offending = append(offending, c.Name)
		}
	}
	if len(offending) == 0 {
		return "", false
	}
	return "cards with unresolved abilities: " + strings.Join(offending, ", "), true
}

// DeckResult is one deck's standing after a round robin (§4.7).
type DeckResult struct {
	DeckIndex int
	Points    int
}

// MatchResult is one played game within a round robin.
type MatchResult struct {
	Deck0, Deck1 int
	Outcome      Outcome
}

// RunRoundRobin plays every unordered pair of decks twice — once with
// each deck as player 0, to offset first-player advantage — and scores
// 3 for a win, 1 for a draw, 0 for a loss or an unresolved matchup
// (§4.7: unresolved matchups are left for external adjudication).
func RunRoundRobin(decks [][]card.Card, maxDepth int, logger *zap.Logger) ([]DeckResult, []MatchResult) {
	points := make([]int, len(decks))
	var matches []MatchResult

	for i := 0; i < len(decks); i++ {
		for j := i + 1; j < len(decks); j++ {
			outcome, _ := Simulate(decks[i], decks[j], maxDepth, logger)
			matches = append(matches, MatchResult{Deck0: i, Deck1: j, Outcome: outcome})
			awardPoints(points, i, j, outcome)

			reversed, _ := Simulate(decks[j], decks[i], maxDepth, logger)
			matches = append(matches, MatchResult{Deck0: j, Deck1: i, Outcome: reversed})
			awardPoints(points, j, i, reversed)
		}
	}

	results := make([]DeckResult, len(decks))
	for i := range decks {
		results[i] = DeckResult{DeckIndex: i, Points: points[i]}
	}
	sort.SliceStable(results, func(a, b int) bool { return results[a].Points > results[b].Points })
	return results, matches
}

func awardPoints(points []int, deck0, deck1 int, outcome Outcome) {
	switch outcome.Kind {
	case Player0Wins:
		points[deck0] += 3
	case Player1Wins:
		points[deck1] += 3
	case Draw:
		points[deck0]++
		points[deck1]++
	case Unresolved:
		// No points until a judge adjudicates; out of scope here.
	}
}
