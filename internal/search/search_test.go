package search

import (
	"testing"

	"github.com/PropterMalone/3cblue/internal/card"
	"github.com/PropterMalone/3cblue/internal/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(n int) *int { return &n }

func creature(name string, power, toughness int) card.Card {
	return card.Card{Name: name, Types: []card.CardType{card.TypeCreature}, Power: intPtr(power), Toughness: intPtr(toughness)}
}

func TestTerminalValue(t *testing.T) {
	gs := state.Initial(nil, nil)

	gs.Players[0].Life, gs.Players[1].Life = 0, 0
	v, terminal := terminalValue(gs)
	require.True(t, terminal)
	assert.Equal(t, 0, v)

	gs.Players[0].Life, gs.Players[1].Life = 10, 0
	v, terminal = terminalValue(gs)
	require.True(t, terminal)
	assert.Equal(t, 1, v)

	gs.Players[0].Life, gs.Players[1].Life = 0, 10
	v, terminal = terminalValue(gs)
	require.True(t, terminal)
	assert.Equal(t, -1, v)

	gs.Players[0].Life, gs.Players[1].Life = 10, 10
	_, terminal = terminalValue(gs)
	assert.False(t, terminal)
}

func TestEvaluateAlreadyDecidedState(t *testing.T) {
	gs := state.Initial(nil, nil)
	gs.Players[1].Life = 0

	engine := NewEngine(DefaultMaxDepth, nil)
	assert.Equal(t, 1, engine.Evaluate(gs))
}

func TestEvaluateEmptyDecksIsDraw(t *testing.T) {
	gs := state.Initial(nil, nil)
	engine := NewEngine(DefaultMaxDepth, nil)

	assert.Equal(t, 0, engine.Evaluate(gs))
	assert.False(t, engine.Stats().TerminatedByDepthLimit, "two empty hands should hit the stalemate checkpoint, not the depth cap")
}

func TestEvaluateDepthZeroIsDrawAndFlagsCap(t *testing.T) {
	gs := state.Initial([]card.Card{creature("Bear", 2, 2)}, nil)
	engine := NewEngine(0, nil)

	assert.Equal(t, 0, engine.Evaluate(gs))
	assert.True(t, engine.Stats().TerminatedByDepthLimit)
}

func TestEvaluateBiggerStatsWinUnopposed(t *testing.T) {
	deck0 := []card.Card{creature("Elephant", 5, 5)}
	deck1 := []card.Card{creature("Bear", 2, 2)}
	gs := state.Initial(deck0, deck1)

	engine := NewEngine(DefaultMaxDepth, nil)
	assert.Equal(t, 1, engine.Evaluate(gs))
}

func TestEvaluateMirrorBearsIsDraw(t *testing.T) {
	gs := state.Initial([]card.Card{creature("Bear", 2, 2)}, []card.Card{creature("Bear", 2, 2)})

	engine := NewEngine(DefaultMaxDepth, nil)
	assert.Equal(t, 0, engine.Evaluate(gs))
}

func TestEvaluateFlyingEvadesGround(t *testing.T) {
	eagle := creature("Eagle", 3, 3)
	eagle.Abilities = []card.Ability{{Kind: card.KindKeyword, Keyword: card.Flying}}
	bear := creature("Bear", 2, 2)
	gs := state.Initial([]card.Card{eagle}, []card.Card{bear})

	engine := NewEngine(DefaultMaxDepth, nil)
	assert.Equal(t, 1, engine.Evaluate(gs))
}

func TestEngineIsDeterministic(t *testing.T) {
	deck0 := []card.Card{creature("Elephant", 5, 5)}
	deck1 := []card.Card{creature("Bear", 2, 2)}

	first := NewEngine(DefaultMaxDepth, nil).Evaluate(state.Initial(deck0, deck1))
	second := NewEngine(DefaultMaxDepth, nil).Evaluate(state.Initial(deck0, deck1))
	assert.Equal(t, first, second)
}
