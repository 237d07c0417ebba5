package state

import (
	"testing"

	"github.com/PropterMalone/3cblue/internal/card"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(n int) *int { return &n }

func bear() card.Card {
	return card.Card{Name: "Bear", Types: []card.CardType{card.TypeCreature}, Power: intPtr(2), Toughness: intPtr(2)}
}

func TestInitialState(t *testing.T) {
	gs := Initial([]card.Card{bear()}, []card.Card{bear()})
	assert.Equal(t, 0, gs.ActivePlayer)
	assert.Equal(t, 1, gs.Turn)
	assert.Equal(t, PhaseMainPrecombat, gs.Phase)
	assert.Equal(t, 20, gs.Players[0].Life)
	assert.Equal(t, 20, gs.Players[1].Life)
	assert.Len(t, gs.Players[0].Hand, 1)
}

func TestCloneIsIndependent(t *testing.T) {
	gs := Initial([]card.Card{bear()}, []card.Card{bear()})
	id, gs2 := gs.NextPermanentID()
	gs2.Players[0].Battlefield = append(gs2.Players[0].Battlefield, Permanent{ID: id, Card: bear()})

	assert.Len(t, gs.Players[0].Battlefield, 0, "original state must not see the mutation")
	assert.Len(t, gs2.Players[0].Battlefield, 1)
}

func TestWithHistoryEntryDoesNotMutateOriginal(t *testing.T) {
	gs := Initial([]card.Card{bear()}, []card.Card{bear()})
	gs2 := gs.WithHistoryEntry("abc")
	assert.False(t, gs.HasSeenHash("abc"))
	assert.True(t, gs2.HasSeenHash("abc"))
}

func TestCanAttack(t *testing.T) {
	p := Permanent{Card: bear()}
	assert.True(t, CanAttack(p))

	tapped := p
	tapped.Tapped = true
	assert.False(t, CanAttack(tapped))

	sick := p
	sick.SummoningSick = true
	assert.False(t, CanAttack(sick))

	hasty := sick
	hasty.Card.Abilities = []card.Ability{{Kind: card.KindKeyword, Keyword: card.Haste}}
	assert.True(t, CanAttack(hasty))

	defenderCard := bear()
	defenderCard.Abilities = []card.Ability{{Kind: card.KindKeyword, Keyword: card.Defender}}
	defender := Permanent{Card: defenderCard}
	assert.False(t, CanAttack(defender))
}

func TestCanBlockFlying(t *testing.T) {
	flyerCard := bear()
	flyerCard.Abilities = []card.Ability{{Kind: card.KindKeyword, Keyword: card.Flying}}
	flyer := Permanent{Card: flyerCard}

	ground := Permanent{Card: bear()}
	assert.False(t, CanBlock(ground, flyer))

	reachCard := bear()
	reachCard.Abilities = []card.Ability{{Kind: card.KindKeyword, Keyword: card.Reach}}
	reacher := Permanent{Card: reachCard}
	assert.True(t, CanBlock(reacher, flyer))

	assert.True(t, CanBlock(flyer, flyer))
}

func TestHashStateStableUnderOrdering(t *testing.T) {
	gs1 := Initial([]card.Card{bear(), card.Card{Name: "Eagle"}}, []card.Card{bear()})
	gs2 := Initial([]card.Card{card.Card{Name: "Eagle"}, bear()}, []card.Card{bear()})
	assert.Equal(t, HashState(gs1), HashState(gs2), "hand order must not affect the hash")
}

func TestHashStateDiffersOnLife(t *testing.T) {
	gs1 := Initial([]card.Card{bear()}, []card.Card{bear()})
	gs2 := gs1.Clone()
	gs2.Players[0].Life = 19
	assert.NotEqual(t, HashState(gs1), HashState(gs2))
}

func TestEffectivePowerWithAnthem(t *testing.T) {
	gs := Initial(nil, nil)
	anthemCard := card.Card{Name: "Anthem", Abilities: []card.Ability{
		{Kind: card.KindStaticPTModifier, PTPower: 1, PTToughness: 1, PTTarget: card.PTTargetOtherCreaturesYouControl},
	}}
	anthem := Permanent{ID: 1, Card: anthemCard}
	b := Permanent{ID: 2, Card: bear()}
	gs.Players[0].Battlefield = []Permanent{anthem, b}

	assert.Equal(t, 3, EffectivePower(gs, 0, b))
	assert.Equal(t, 3, EffectiveToughness(gs, 0, b))
	// The anthem itself is not "other creatures", and isn't a creature anyway.
	assert.Equal(t, 0, EffectivePower(gs, 0, anthem))
}

func TestFindPermanentMissing(t *testing.T) {
	gs := Initial(nil, nil)
	_, _, ok := gs.FindPermanent(999)
	assert.False(t, ok)
}

func TestBreachPanics(t *testing.T) {
	defer func() {
		r := recover()
		require.NotNil(t, r)
		breach, ok := r.(InvariantBreach)
		require.True(t, ok)
		assert.Contains(t, breach.Error(), "missing permanent")
	}()
	Breach("missing permanent %d", 42)
}
