// Package card defines the immutable Card and Ability value types (C1)
// that the oracle parser (internal/oracle) produces and every other
// component consumes. Cards are identity-free: the same Card value can
// back any number of Permanents (internal/state) within or across games.
package card

import "github.com/google/uuid"

// CardType is one of the printed card types. A card can carry more than
// one (e.g. "artifact creature"), so Card.Types is a slice, not a single
// value.
type CardType string

const (
	TypeCreature    CardType = "creature"
	TypeInstant     CardType = "instant"
	TypeSorcery     CardType = "sorcery"
	TypeEnchantment CardType = "enchantment"
	TypeArtifact    CardType = "artifact"
	TypePlaneswalker CardType = "planeswalker"
	TypeLand        CardType = "land"
	TypeBattle      CardType = "battle"
)

// Color is one of the five Magic colors.
type Color string

const (
	White Color = "W"
	Blue  Color = "U"
	Black Color = "B"
	Red   Color = "R"
	Green Color = "G"
)

// Card is the immutable, identity-free value described in §3. Any card
// with Power/Toughness set is intended as a creature; Types may still
// carry additional roles (a creature-land keeps TypeLand too).
type Card struct {
	ID uuid.UUID

	Name          string
	ManaCostText  string // printed cost string, display only (§1 Non-goals: no mana accounting)
	ConvertedCost int

	Colors     []Color
	Types      []CardType
	Supertypes []string
	Subtypes   []string

	OracleText string

	Power     *int
	Toughness *int
	Loyalty   *int

	Abilities []Ability
}

// HasType reports whether the card carries the given printed type.
func (c Card) HasType(t CardType) bool {
	for _, ct := range c.Types {
		if ct == t {
			return true
		}
	}
	return false
}

// IsCreature reports whether the card is a creature — either by printed
// type or (per §3's invariant) because it has power/toughness set.
func (c Card) IsCreature() bool {
	return c.HasType(TypeCreature) || (c.Power != nil && c.Toughness != nil)
}

// HasKeyword reports whether any ability on the card grants the given
// keyword.
func (c Card) HasKeyword(k Keyword) bool {
	for _, a := range c.Abilities {
		if a.IsKeyword(k) {
			return true
		}
	}
	return false
}

// UnresolvedAbilities returns every Unresolved ability on the card, in
// the order the parser emitted them (i.e. line order in the oracle
// text). A non-empty result poisons any matchup the card takes part in
// (§4.7).
func (c Card) UnresolvedAbilities() []Ability {
	var out []Ability
	for _, a := range c.Abilities {
		if a.Kind == KindUnresolved {
			out = append(out, a)
		}
	}
	return out
}

// BasePower returns the printed power, or 0 for non-creatures and for
// variable printings normalized to 0 per §3.
func (c Card) BasePower() int {
	if c.Power == nil {
		return 0
	}
	return *c.Power
}

// BaseToughness returns the printed toughness, or 0 per §3.
func (c Card) BaseToughness() int {
	if c.Toughness == nil {
		return 0
	}
	return *c.Toughness
}
