package card

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(n int) *int { return &n }

func TestCardIsCreature(t *testing.T) {
	withType := Card{Types: []CardType{TypeCreature}}
	assert.True(t, withType.IsCreature())

	withPT := Card{Power: intPtr(2), Toughness: intPtr(2)}
	assert.True(t, withPT.IsCreature())

	land := Card{Types: []CardType{TypeLand}}
	assert.False(t, land.IsCreature())
}

func TestCardHasKeyword(t *testing.T) {
	c := Card{Abilities: []Ability{{Kind: KindKeyword, Keyword: Flying}}}
	assert.True(t, c.HasKeyword(Flying))
	assert.False(t, c.HasKeyword(Trample))
}

func TestUnresolvedAbilities(t *testing.T) {
	c := Card{Abilities: []Ability{
		{Kind: KindKeyword, Keyword: Flying},
		{Kind: KindUnresolved, UnresolvedText: "Whenever a creature dies, draw a card.", UnresolvedReason: "no matching parser rule"},
	}}
	unresolved := c.UnresolvedAbilities()
	require.Len(t, unresolved, 1)
	assert.Equal(t, "no matching parser rule", unresolved[0].UnresolvedReason)
}

func TestParseManaCost(t *testing.T) {
	cases := []struct {
		cost string
		want int
	}{
		{"{1}{G}", 2},
		{"{2}{R}{R}", 4},
		{"{X}{R}", 1},
		{"", 0},
		{"{W/U}", 1},
	}
	for _, tc := range cases {
		mc := ParseManaCost(tc.cost)
		assert.Equal(t, tc.want, mc.ConvertedCost(), "cost=%s", tc.cost)
	}
}

func TestKeywordFromText(t *testing.T) {
	k, ok := KeywordFromText("first strike")
	require.True(t, ok)
	assert.Equal(t, FirstStrike, k)

	_, ok = KeywordFromText("not a keyword")
	assert.False(t, ok)
}
