package matchup

import (
	"testing"

	"github.com/PropterMalone/3cblue/internal/card"
	"github.com/PropterMalone/3cblue/internal/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(n int) *int { return &n }

func creature(name string, power, toughness int, keywords ...card.Keyword) card.Card {
	c := card.Card{Name: name, Types: []card.CardType{card.TypeCreature}, Power: intPtr(power), Toughness: intPtr(toughness)}
	for _, k := range keywords {
		c.Abilities = append(c.Abilities, card.Ability{Kind: card.KindKeyword, Keyword: k})
	}
	return c
}

func TestPreflightDominanceShortCircuits(t *testing.T) {
	poisoned := card.Card{Name: "Mystery", Abilities: []card.Ability{
		{Kind: card.KindUnresolved, UnresolvedText: "do something weird", UnresolvedReason: "no matching parser rule"},
	}}
	clean := creature("Bear", 2, 2)

	outcome, stats := Simulate([]card.Card{poisoned}, []card.Card{clean}, search.DefaultMaxDepth, nil)
	require.Equal(t, Unresolved, outcome.Kind)
	assert.Contains(t, outcome.Reason, "cards with unresolved abilities: Mystery")
	assert.Equal(t, search.Stats{}, stats)
}

func TestPreflightPassesWithNoUnresolvedCards(t *testing.T) {
	outcome, _ := Simulate([]card.Card{creature("Bear", 2, 2)}, []card.Card{creature("Bear", 2, 2)}, search.DefaultMaxDepth, nil)
	assert.Equal(t, Draw, outcome.Kind)
}

func TestSimulateBiggerStatsWinUnopposed(t *testing.T) {
	outcome, _ := Simulate([]card.Card{creature("Elephant", 5, 5)}, []card.Card{creature("Bear", 2, 2)}, search.DefaultMaxDepth, nil)
	assert.Equal(t, Player0Wins, outcome.Kind)
}

func TestSimulateFirstStrikeLosesToughnessRace(t *testing.T) {
	fs := creature("FS", 2, 2, card.FirstStrike)
	tough := creature("Tough", 2, 3)
	outcome, _ := Simulate([]card.Card{fs}, []card.Card{tough}, search.DefaultMaxDepth, nil)
	assert.Equal(t, Player1Wins, outcome.Kind, "the 2/3 survives first strike and kills the 2/2 back every combat")
}

func TestSimulateReachAnswersFlyingIsDraw(t *testing.T) {
	eagle := creature("Eagle", 2, 2, card.Flying)
	spider := creature("Spider", 2, 2, card.Reach)
	outcome, _ := Simulate([]card.Card{eagle}, []card.Card{spider}, search.DefaultMaxDepth, nil)
	assert.Equal(t, Draw, outcome.Kind)
}

func TestRunRoundRobinFlyerIsUniqueMaximum(t *testing.T) {
	flyer := []card.Card{creature("Flyer", 3, 3, card.Flying)}
	bear := []card.Card{creature("Bear", 2, 2)}
	wall := []card.Card{creature("Wall", 0, 7, card.Defender)}

	results, matches := RunRoundRobin([][]card.Card{flyer, bear, wall}, search.DefaultMaxDepth, nil)
	require.Len(t, matches, 6, "2 * C(3,2) games")

	require.Equal(t, 0, results[0].DeckIndex, "Flyer (index 0) must be the unique maximum")
	assert.Greater(t, results[0].Points, results[1].Points)
	assert.Equal(t, results[1].Points, results[2].Points, "Bear and Wall draw out their head-to-head")

	total := 0
	for _, r := range results {
		total += r.Points
	}
	assert.Equal(t, 16, total)
}
