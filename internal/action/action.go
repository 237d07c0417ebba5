// Package action implements C5: enumerating the legal actions available
// at the current phase and applying one action to produce the next
// immutable state. Grounded on the teacher's rules/turn.go phase-driven
// structure, but rebuilt around a closed Action sum instead of the
// teacher's stack-and-priority model, since mana payment, the stack,
// and triggered-ability ordering are all out of scope (§1 Non-goals).
package action

import (
	"github.com/PropterMalone/3cblue/internal/combat"
	"github.com/PropterMalone/3cblue/internal/state"
)

// Kind discriminates the closed Action sum (§9 Design Notes: one closed
// tagged sum per variant set, exhaustively switched everywhere).
type Kind int

const (
	KindCast Kind = iota
	KindDeclareAttackers
	KindDeclareBlockers
	KindPass
)

// Action is the tagged sum of every move enumerateLegalActions can
// produce. Only the fields relevant to Kind are meaningful.
type Action struct {
	Kind Kind

	// KindCast: ascending hand indices to put onto the battlefield.
	CastIndices []int

	// KindDeclareAttackers: permanent ids to declare as attackers.
	AttackerIDs []int

	// KindDeclareBlockers: the chosen block assignment.
	Blockers combat.Assignment
}

// EnumerateLegalActions yields every legal successor action for the
// current phase (§4.4). The active player acts in every phase except
// declare_blockers, where the defender chooses — see internal/search
// for decision-maker selection; this function itself is agnostic to
// whose turn it is to decide, it just enumerates what the phase allows.
func EnumerateLegalActions(gs *state.GameState) []Action {
	switch gs.Phase {
	case state.PhaseMainPrecombat, state.PhaseMainPostcombat:
		return enumerateCastActions(gs)
	case state.PhaseDeclareAttackers:
		return enumerateDeclareAttackersActions(gs)
	case state.PhaseDeclareBlockers:
		return enumerateDeclareBlockersActions(gs)
	case state.PhaseFirstStrikeDamage, state.PhaseCombatDamage, state.PhaseCleanup:
		return []Action{{Kind: KindPass}}
	default:
		state.Breach("action: unknown phase %s", gs.Phase)
		return nil
	}
}

func enumerateCastActions(gs *state.GameState) []Action {
	handSize := len(gs.Players[gs.ActivePlayer].Hand)
	var actions []Action
	for _, subset := range enumerateSubsets(handSize) {
		actions = append(actions, Action{Kind: KindCast, CastIndices: subset})
	}
	return actions
}

func enumerateDeclareAttackersActions(gs *state.GameState) []Action {
	var eligible []int
	for _, perm := range gs.Players[gs.ActivePlayer].Battlefield {
		if state.CanAttack(perm) {
			eligible = append(eligible, perm.ID)
		}
	}
	var actions []Action
	for _, subset := range enumerateIDSubsets(eligible) {
		actions = append(actions, Action{Kind: KindDeclareAttackers, AttackerIDs: subset})
	}
	return actions
}

func enumerateDeclareBlockersActions(gs *state.GameState) []Action {
	defender := state.Opponent(gs.ActivePlayer)
	attackers := make([]state.Permanent, 0, len(gs.Combat.Attackers))
	for _, id := range gs.Combat.Attackers {
		_, perm, ok := gs.FindPermanent(id)
		if !ok {
			state.Breach("action: declare_blockers references unknown attacker %d", id)
		}
		attackers = append(attackers, perm)
	}

	assignments := combat.EnumerateBlockAssignments(attackers, gs.Players[defender].Battlefield)
	actions := make([]Action, 0, len(assignments))
	for _, a := range assignments {
		actions = append(actions, Action{Kind: KindDeclareBlockers, Blockers: a})
	}
	return actions
}

// enumerateSubsets returns every subset of {0, ..., n-1}, each sorted
// ascending, in ascending bitmask order — a deterministic function of
// n (§4.6 determinism requirement).
func enumerateSubsets(n int) [][]int {
	total := 1 << n
	subsets := make([][]int, 0, total)
	for mask := 0; mask < total; mask++ {
		var subset []int
		for i := 0; i < n; i++ {
			if mask&(1<<i) != 0 {
				subset = append(subset, i)
			}
		}
		subsets = append(subsets, subset)
	}
	return subsets
}

// enumerateIDSubsets is enumerateSubsets specialized to a slice of ids
// rather than a count, preserving the input order within each subset.
func enumerateIDSubsets(ids []int) [][]int {
	index := enumerateSubsets(len(ids))
	out := make([][]int, len(index))
	for i, idxSubset := range index {
		subset := make([]int, len(idxSubset))
		for j, idx := range idxSubset {
			subset[j] = ids[idx]
		}
		out[i] = subset
	}
	return out
}
