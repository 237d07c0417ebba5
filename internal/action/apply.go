package action

import (
	"github.com/PropterMalone/3cblue/internal/card"
	"github.com/PropterMalone/3cblue/internal/combat"
	"github.com/PropterMalone/3cblue/internal/state"
)

// ApplyAction returns the state that follows from applying action to
// gs (§4.5). Pure: gs is never mutated, only cloned from.
func ApplyAction(gs *state.GameState, a Action) *state.GameState {
	switch a.Kind {
	case KindCast:
		return applyCast(gs, a.CastIndices)
	case KindDeclareAttackers:
		return applyDeclareAttackers(gs, a.AttackerIDs)
	case KindDeclareBlockers:
		return applyDeclareBlockers(gs, a.Blockers)
	case KindPass:
		return applyPass(gs)
	default:
		state.Breach("action: unknown action kind %d", a.Kind)
		return nil
	}
}

func applyCast(gs *state.GameState, indices []int) *state.GameState {
	active := gs.ActivePlayer
	hand := gs.Players[active].Hand

	casted := make([]card.Card, 0, len(indices))
	skip := make(map[int]bool, len(indices))
	for _, idx := range indices {
		casted = append(casted, hand[idx])
		skip[idx] = true
	}
	newHand := make([]card.Card, 0, len(hand)-len(indices))
	for i, c := range hand {
		if !skip[i] {
			newHand = append(newHand, c)
		}
	}

	next := gs.Clone()
	ids := make([]int, len(casted))
	for i := range casted {
		id, n2 := next.NextPermanentID()
		ids[i] = id
		next = n2
	}

	next.Players[active].Hand = newHand
	for i, c := range casted {
		next.Players[active].Battlefield = append(next.Players[active].Battlefield, state.Permanent{
			ID:            ids[i],
			Card:          c,
			SummoningSick: true,
		})
	}
	next.Phase = state.PhaseDeclareAttackers
	return next
}

func applyDeclareAttackers(gs *state.GameState, ids []int) *state.GameState {
	next := gs.Clone()
	active := next.ActivePlayer
	for _, id := range ids {
		updatePermanent(next, active, id, func(p *state.Permanent) {
			if !p.Card.HasKeyword(card.Vigilance) {
				p.Tapped = true
			}
			p.SummoningSick = false
		})
	}

	if len(ids) == 0 {
		next.Combat = nil
		return advanceTurn(next)
	}

	next.Combat = &state.CombatState{Attackers: append([]int{}, ids...), Blockers: map[int][]int{}}
	next.Phase = state.PhaseDeclareBlockers
	return next
}

func applyDeclareBlockers(gs *state.GameState, assignment combat.Assignment) *state.GameState {
	next := gs.Clone()
	blockers := make(map[int][]int, len(assignment.Blockers))
	for id, bs := range assignment.Blockers {
		blockers[id] = append([]int{}, bs...)
	}
	next.Combat.Blockers = blockers

	if combatHasFirstOrDoubleStrike(next) {
		next.Phase = state.PhaseFirstStrikeDamage
	} else {
		next.Phase = state.PhaseCombatDamage
	}
	return next
}

func combatHasFirstOrDoubleStrike(gs *state.GameState) bool {
	check := func(id int) bool {
		_, perm, ok := gs.FindPermanent(id)
		if !ok {
			state.Breach("action: combat references unknown permanent %d", id)
		}
		return perm.Card.HasKeyword(card.FirstStrike) || perm.Card.HasKeyword(card.DoubleStrike)
	}
	for _, attackerID := range gs.Combat.Attackers {
		if check(attackerID) {
			return true
		}
		for _, blockerID := range gs.Combat.Blockers[attackerID] {
			if check(blockerID) {
				return true
			}
		}
	}
	return false
}

func applyPass(gs *state.GameState) *state.GameState {
	switch gs.Phase {
	case state.PhaseFirstStrikeDamage:
		assignment := combat.Assignment{Blockers: gs.Combat.Blockers}
		result := combat.ResolveCombatDamage(gs, gs.ActivePlayer, gs.Combat.Attackers, assignment, true)
		next := applyDamageResult(gs, result)
		next.Combat = pruneSurvivors(next.Combat, result.Destroyed)
		next.Phase = state.PhaseCombatDamage
		return next
	case state.PhaseCombatDamage:
		assignment := combat.Assignment{Blockers: gs.Combat.Blockers}
		result := combat.ResolveCombatDamage(gs, gs.ActivePlayer, gs.Combat.Attackers, assignment, false)
		next := applyDamageResult(gs, result)
		next.Combat = nil
		return advanceTurn(next)
	case state.PhaseMainPostcombat, state.PhaseCleanup:
		return advanceTurn(gs)
	default:
		state.Breach("action: Pass is not legal in phase %s", gs.Phase)
		return nil
	}
}

// applyDamageResult clones gs, removes destroyed permanents (routing
// their cards to the graveyard), applies the life delta, and writes
// back each survivor's new damage-marked total so that a later regular
// step still sees damage dealt during an earlier first-strike step.
func applyDamageResult(gs *state.GameState, result combat.DamageResult) *state.GameState {
	next := gs.Clone()
	next.Players[0].Life += result.LifeDelta[0]
	next.Players[1].Life += result.LifeDelta[1]

	for id, total := range result.MarkedDamage {
		updatePermanent(next, 0, id, func(p *state.Permanent) { p.DamageMarked = total })
		updatePermanent(next, 1, id, func(p *state.Permanent) { p.DamageMarked = total })
	}

	for p := 0; p < 2; p++ {
		survivors := make([]state.Permanent, 0, len(next.Players[p].Battlefield))
		for _, perm := range next.Players[p].Battlefield {
			if result.Destroyed[perm.ID] {
				next.Players[p].Graveyard = append(next.Players[p].Graveyard, perm.Card)
				continue
			}
			survivors = append(survivors, perm)
		}
		next.Players[p].Battlefield = survivors
	}
	return next
}

// pruneSurvivors drops destroyed permanents from a CombatState so the
// next resolveCombatDamage call operates on the surviving set only
// (§4.3's "Step ordering at the phase level").
func pruneSurvivors(combatState *state.CombatState, destroyed map[int]bool) *state.CombatState {
	if combatState == nil {
		return nil
	}
	attackers := make([]int, 0, len(combatState.Attackers))
	for _, id := range combatState.Attackers {
		if !destroyed[id] {
			attackers = append(attackers, id)
		}
	}
	blockers := make(map[int][]int, len(combatState.Blockers))
	for attackerID, blockerIDs := range combatState.Blockers {
		if destroyed[attackerID] {
			continue
		}
		survivors := make([]int, 0, len(blockerIDs))
		for _, id := range blockerIDs {
			if !destroyed[id] {
				survivors = append(survivors, id)
			}
		}
		blockers[attackerID] = survivors
	}
	return &state.CombatState{Attackers: attackers, Blockers: blockers}
}

// advanceTurn implements the end-of-turn transition (§4.5): active
// player toggles, turn increments on wrap to player 0, the new active
// player's permanents untap and lose summoning sickness, every
// permanent's damage clears, phase resets to main_precombat, and combat
// is cleared. stateHistory carries forward unchanged.
func advanceTurn(gs *state.GameState) *state.GameState {
	next := gs.Clone()
	next.ActivePlayer = state.Opponent(gs.ActivePlayer)
	if next.ActivePlayer == 0 {
		next.Turn++
	}

	for i := range next.Players[next.ActivePlayer].Battlefield {
		next.Players[next.ActivePlayer].Battlefield[i].Tapped = false
		next.Players[next.ActivePlayer].Battlefield[i].SummoningSick = false
	}
	for p := 0; p < 2; p++ {
		for i := range next.Players[p].Battlefield {
			next.Players[p].Battlefield[i].DamageMarked = 0
		}
	}

	next.Phase = state.PhaseMainPrecombat
	next.Combat = nil
	return next
}

func updatePermanent(gs *state.GameState, player, id int, fn func(*state.Permanent)) {
	for i := range gs.Players[player].Battlefield {
		if gs.Players[player].Battlefield[i].ID == id {
			fn(&gs.Players[player].Battlefield[i])
			return
		}
	}
}
