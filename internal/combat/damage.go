package combat

import (
	"github.com/PropterMalone/3cblue/internal/card"
	"github.com/PropterMalone/3cblue/internal/state"
)

// DamageResult is the outcome of resolving one combat-damage step
// (§4.3): which permanents died, how each player's life total moved,
// and the new damage-marked totals for every permanent touched this
// step. The caller is responsible for actually removing destroyed
// permanents and applying LifeDelta/MarkedDamage to the game state —
// the resolver itself never mutates a state.GameState.
type DamageResult struct {
	Destroyed    map[int]bool
	LifeDelta    [2]int
	MarkedDamage map[int]int
}

type damageAcc struct {
	total      int
	deathtouch bool
}

// ResolveCombatDamage assigns one step of combat damage — first strike
// or regular — for the given attackers and block assignment, and
// reports the resulting deaths and life change (§4.3). It reads each
// participant's existing damage-marked total from gs so that damage
// dealt in an earlier first-strike step still counts toward lethal and
// destruction in the regular step that follows; it never writes to gs.
func ResolveCombatDamage(gs *state.GameState, activePlayer int, attackerIDs []int, assignment Assignment, isFirstStrike bool) DamageResult {
	defendingPlayer := state.Opponent(activePlayer)
	acc := make(map[int]*damageAcc)
	var lifeDelta [2]int

	getAcc := func(id int) *damageAcc {
		if a, ok := acc[id]; ok {
			return a
		}
		_, perm, ok := gs.FindPermanent(id)
		if !ok {
			state.Breach("combat: unknown permanent %d", id)
		}
		a := &damageAcc{total: perm.DamageMarked}
		acc[id] = a
		return a
	}

	for _, attackerID := range attackerIDs {
		owner, attacker, ok := gs.FindPermanent(attackerID)
		if !ok {
			state.Breach("combat: unknown attacker %d", attackerID)
		}
		if owner != activePlayer {
			state.Breach("combat: permanent %d is not controlled by the active player", attackerID)
		}
		if !dealsDamageThisStep(attacker, isFirstStrike) {
			continue
		}
		power := state.EffectivePower(gs, activePlayer, attacker)
		if power <= 0 {
			continue
		}

		deathtouch := attacker.Card.HasKeyword(card.Deathtouch)
		lifelink := attacker.Card.HasKeyword(card.Lifelink)
		trample := attacker.Card.HasKeyword(card.Trample)
		blockerIDs := assignment.Blockers[attackerID]

		if len(blockerIDs) == 0 {
			lifeDelta[defendingPlayer] -= power
			if lifelink {
				lifeDelta[activePlayer] += power
			}
			continue
		}

		remaining := power
		dealt := 0
		for _, blockerID := range blockerIDs {
			if remaining <= 0 {
				break
			}
			_, blocker, ok := gs.FindPermanent(blockerID)
			if !ok {
				state.Breach("combat: unknown blocker %d", blockerID)
			}
			bAcc := getAcc(blockerID)
			toughness := state.EffectiveToughness(gs, defendingPlayer, blocker)
			lethal := toughness - bAcc.total
			if deathtouch {
				lethal = 1
			}
			if lethal < 0 {
				lethal = 0
			}
			assign := min(remaining, lethal)
			bAcc.total += assign
			if deathtouch && assign > 0 {
				bAcc.deathtouch = true
			}
			remaining -= assign
			dealt += assign
		}
		if remaining > 0 {
			if trample {
				lifeDelta[defendingPlayer] -= remaining
				dealt += remaining
			} else {
				lastID := blockerIDs[len(blockerIDs)-1]
				lastAcc := getAcc(lastID)
				lastAcc.total += remaining
				if deathtouch {
					lastAcc.deathtouch = true
				}
				dealt += remaining
			}
		}
		if lifelink {
			lifeDelta[activePlayer] += dealt
		}
	}

	for _, attackerID := range attackerIDs {
		for _, blockerID := range assignment.Blockers[attackerID] {
			_, blocker, ok := gs.FindPermanent(blockerID)
			if !ok {
				state.Breach("combat: unknown blocker %d", blockerID)
			}
			if !dealsDamageThisStep(blocker, isFirstStrike) {
				continue
			}
			power := state.EffectivePower(gs, defendingPlayer, blocker)
			if power <= 0 {
				continue
			}
			aAcc := getAcc(attackerID)
			aAcc.total += power
			if blocker.Card.HasKeyword(card.Deathtouch) {
				aAcc.deathtouch = true
			}
			if blocker.Card.HasKeyword(card.Lifelink) {
				lifeDelta[defendingPlayer] += power
			}
		}
	}

	destroyed := make(map[int]bool)
	marked := make(map[int]int)
	for id, a := range acc {
		marked[id] = a.total
		owner, perm, ok := gs.FindPermanent(id)
		if !ok {
			state.Breach("combat: unknown permanent %d", id)
		}
		if perm.Card.HasKeyword(card.Indestructible) {
			continue
		}
		toughness := state.EffectiveToughness(gs, owner, perm)
		if a.total >= toughness || (a.deathtouch && a.total > 0) {
			destroyed[id] = true
		}
	}

	return DamageResult{Destroyed: destroyed, LifeDelta: lifeDelta, MarkedDamage: marked}
}

// dealsDamageThisStep implements the first-strike/double-strike step
// eligibility rule (§4.3): a creature deals damage in the first-strike
// step iff it has first strike or double strike, and in the regular
// step iff it lacks first strike or has double strike.
func dealsDamageThisStep(perm state.Permanent, isFirstStrike bool) bool {
	hasFirstStrike := perm.Card.HasKeyword(card.FirstStrike)
	hasDoubleStrike := perm.Card.HasKeyword(card.DoubleStrike)
	if isFirstStrike {
		return hasFirstStrike || hasDoubleStrike
	}
	return !hasFirstStrike || hasDoubleStrike
}
