// Package state defines the immutable per-turn game model (C3): phases,
// permanents, player state, combat state, and the game state itself,
// plus the helpers (canAttack, canBlock, hashState) that the action
// model and combat resolver build on. Every value here is copy-on-write:
// mutating helpers in this package always return a new value and never
// touch the receiver, so a branch of the search tree can never observe
// a sibling branch's state (§3 invariant (e)).
package state

import "github.com/PropterMalone/3cblue/internal/card"

// Phase is one of the turn phases enumerated in §3. Modeled after the
// teacher's rules.Phase/Step const-block-plus-String() pattern, trimmed
// to the phases this engine actually drives (no untap/upkeep/draw/
// begin-combat/end-combat/main-as-separate-steps — §1 Non-goals exclude
// the parts of a Magic turn this core doesn't simulate).
type Phase int

const (
	PhaseMainPrecombat Phase = iota
	PhaseDeclareAttackers
	PhaseDeclareBlockers
	PhaseFirstStrikeDamage
	PhaseCombatDamage
	PhaseMainPostcombat
	PhaseCleanup
)

var phaseNames = [...]string{
	"main_precombat",
	"declare_attackers",
	"declare_blockers",
	"first_strike_damage",
	"combat_damage",
	"main_postcombat",
	"cleanup",
}

func (p Phase) String() string {
	if int(p) >= 0 && int(p) < len(phaseNames) {
		return phaseNames[p]
	}
	return "unknown_phase"
}

// Permanent is a battlefield instance wrapping a Card (§3). Permanents
// carry the identity (ID) their underlying Card value doesn't.
type Permanent struct {
	ID            int
	Card          card.Card
	Tapped        bool
	SummoningSick bool
	DamageMarked  int
	IsToken       bool
}

// clone returns a copy of the Permanent — Permanent has no reference
// fields that need deep copying (Card is itself immutable), so this is
// only a documentation aid at call sites that want an explicit "new
// value" rather than relying on Go's by-value struct semantics.
func (p Permanent) clone() Permanent { return p }

// PlayerState is one player's life, hand, battlefield, and graveyard.
type PlayerState struct {
	Life        int
	Hand        []card.Card
	Battlefield []Permanent
	Graveyard   []card.Card
}

// CombatState records the current combat: the active player's declared
// attackers in declaration order, and for each attacker the ordered
// list of blocker permanent ids — that order is the attacker's
// damage-assignment order and must survive every copy (§4.3, §9).
type CombatState struct {
	Attackers []int
	Blockers  map[int][]int
}

// clone deep-copies a CombatState so mutating the copy never touches
// the original (needed because Blockers is a map of slices).
func (c *CombatState) clone() *CombatState {
	if c == nil {
		return nil
	}
	attackers := make([]int, len(c.Attackers))
	copy(attackers, c.Attackers)
	blockers := make(map[int][]int, len(c.Blockers))
	for id, bs := range c.Blockers {
		copied := make([]int, len(bs))
		copy(copied, bs)
		blockers[id] = copied
	}
	return &CombatState{Attackers: attackers, Blockers: blockers}
}
