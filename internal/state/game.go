package state

import "github.com/PropterMalone/3cblue/internal/card"

// GameState is the immutable per-turn state described in §3. Clone
// deep-copies the player slices and the Combat pointer; StateHistory is
// the one field Clone shares by reference, and it is only ever replaced
// (via WithHistoryEntry), never written in place.
type GameState struct {
	ActivePlayer int
	Players      [2]PlayerState
	Turn         int
	Phase        Phase
	Combat       *CombatState

	// StateHistory holds the canonical hashes observed at main-precombat
	// checkpoints in this branch of the search (§4.6's stalemate check
	// reads it; applyAction carries it forward unchanged per §4.5).
	StateHistory map[string]struct{}

	nextPermanentID int
}

// Opponent returns the other player index.
func Opponent(p int) int { return 1 - p }

// Initial builds the starting GameState for a 3CB match: each deck
// becomes its owner's hand, life starts at 20, battlefields and
// graveyards are empty, player 0 is active, and the turn begins in
// main_precombat on turn 1 (§4.2).
func Initial(deck0, deck1 []card.Card) *GameState {
	return &GameState{
		ActivePlayer: 0,
		Players: [2]PlayerState{
			{Life: 20, Hand: append([]card.Card{}, deck0...)},
			{Life: 20, Hand: append([]card.Card{}, deck1...)},
		},
		Turn:            1,
		Phase:           PhaseMainPrecombat,
		StateHistory:    map[string]struct{}{},
		nextPermanentID: 1,
	}
}

// NextPermanentID returns the id the next new Permanent must use, and
// the GameState to continue from with the counter advanced. Permanent
// ids are monotonic and never reused within a game (§3 invariant (b)).
func (gs *GameState) NextPermanentID() (int, *GameState) {
	next := gs.Clone()
	id := next.nextPermanentID
	next.nextPermanentID++
	return id, next
}

// Clone returns a deep copy of gs: a new Players array, new
// battlefield/hand/graveyard slices, a cloned Combat, and the same
// StateHistory map reference (readers of StateHistory only ever get a
// fresh map via WithHistoryEntry, never mutate in place, so sharing the
// reference here is safe until the next write).
func (gs *GameState) Clone() *GameState {
	clone := &GameState{
		ActivePlayer:    gs.ActivePlayer,
		Turn:            gs.Turn,
		Phase:           gs.Phase,
		StateHistory:    gs.StateHistory,
		nextPermanentID: gs.nextPermanentID,
	}
	for i := range gs.Players {
		clone.Players[i] = clonePlayer(gs.Players[i])
	}
	clone.Combat = gs.Combat.clone()
	return clone
}

func clonePlayer(p PlayerState) PlayerState {
	hand := make([]card.Card, len(p.Hand))
	copy(hand, p.Hand)
	battlefield := make([]Permanent, len(p.Battlefield))
	copy(battlefield, p.Battlefield)
	graveyard := make([]card.Card, len(p.Graveyard))
	copy(graveyard, p.Graveyard)
	return PlayerState{Life: p.Life, Hand: hand, Battlefield: battlefield, Graveyard: graveyard}
}

// WithHistoryEntry returns a GameState identical to gs but with hash
// folded into a brand-new StateHistory set — the original gs.StateHistory
// is left untouched, satisfying invariant (e) for the one field Clone
// shares by reference.
func (gs *GameState) WithHistoryEntry(hash string) *GameState {
	next := gs.Clone()
	history := make(map[string]struct{}, len(gs.StateHistory)+1)
	for h := range gs.StateHistory {
		history[h] = struct{}{}
	}
	history[hash] = struct{}{}
	next.StateHistory = history
	return next
}

// HasSeenHash reports whether hash is already in gs.StateHistory.
func (gs *GameState) HasSeenHash(hash string) bool {
	_, ok := gs.StateHistory[hash]
	return ok
}

// FindPermanent locates a permanent by id across both battlefields.
// Returns the owning player index, the permanent, and whether it was
// found. A combat reference to a missing id is an InvariantBreach
// (§7) — callers that expect the permanent to exist should panic via
// Breach when ok is false, not silently continue.
func (gs *GameState) FindPermanent(id int) (owner int, perm Permanent, ok bool) {
	for p := 0; p < 2; p++ {
		for _, perm := range gs.Players[p].Battlefield {
			if perm.ID == id {
				return p, perm, true
			}
		}
	}
	return 0, Permanent{}, false
}

// CanAttack reports whether perm may be declared as an attacker (§4.2):
// not tapped, not a defender, must be a creature, and — unless it has
// haste — not summoning sick. Vigilance has no bearing on whether a
// creature can attack, only on whether attacking taps it (§9 design
// note: ignore the teacher's "vigilance also exempts sickness"
// redundancy).
func CanAttack(perm Permanent) bool {
	if perm.Tapped {
		return false
	}
	if perm.Card.HasKeyword(card.Defender) {
		return false
	}
	if !perm.Card.IsCreature() {
		return false
	}
	if perm.SummoningSick && !perm.Card.HasKeyword(card.Haste) {
		return false
	}
	return true
}

// CanBlock reports whether blocker may legally be assigned to block
// attacker (§4.2). Menace (needing 2+ blockers) is enforced at
// assignment-enumeration time, not here, since it isn't a property of
// a single blocker/attacker pair.
func CanBlock(blocker, attacker Permanent) bool {
	if blocker.Tapped {
		return false
	}
	if !blocker.Card.IsCreature() {
		return false
	}
	if attacker.Card.HasKeyword(card.Flying) {
		if !blocker.Card.HasKeyword(card.Flying) && !blocker.Card.HasKeyword(card.Reach) {
			return false
		}
	}
	return true
}
