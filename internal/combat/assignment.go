// Package combat implements the two pure operations of C4: enumerating
// legal block assignments and resolving one combat-damage step,
// including the keyword interactions in §4.3 (first strike, double
// strike, trample, deathtouch, lifelink, indestructible, menace).
//
// Grounded on the teacher's mage_engine.go combat-damage assignment
// (AssignCombatDamage/assignDamageToBlockers/assignDamageToAttackers):
// that code mutates a live, string-keyed game registry under a mutex;
// this package reimplements the same trample/deathtouch/lethal-damage
// algorithm as pure functions over the immutable internal/state model.
package combat

import (
	"github.com/PropterMalone/3cblue/internal/card"
	"github.com/PropterMalone/3cblue/internal/state"
)

// Assignment is one legal way to pair defending creatures against
// attackers: for each attacker id that is blocked, the ordered list of
// blocker ids assigned to it (that order is the attacker's
// damage-assignment order, §4.3/§9). An attacker absent from Blockers,
// or mapped to an empty slice, is unblocked.
type Assignment struct {
	Blockers map[int][]int
}

// EnumerateBlockAssignments generates every legal way potentialBlockers
// can be assigned against attackers (§4.2/§4.3): each blocker either
// sits out or blocks exactly one attacker it is legally able to block,
// and any menace attacker that ends up blocked has at least two
// blockers. Both input slices must be in a stable, deterministic order
// (e.g. battlefield order) — search determinism (§4.6) depends on
// enumeration order being a pure function of the input order.
func EnumerateBlockAssignments(attackers, potentialBlockers []state.Permanent) []Assignment {
	legalTargets := make([][]int, len(potentialBlockers))
	for i, blocker := range potentialBlockers {
		for _, attacker := range attackers {
			if state.CanBlock(blocker, attacker) {
				legalTargets[i] = append(legalTargets[i], attacker.ID)
			}
		}
	}

	var results []Assignment
	choice := make([]int, len(potentialBlockers)) // index into legalTargets[i]+1; 0 means "doesn't block"
	var build func(i int)
	build = func(i int) {
		if i == len(potentialBlockers) {
			results = append(results, materialize(potentialBlockers, legalTargets, choice, attackers))
			return
		}
		// Option 0: this blocker doesn't block.
		choice[i] = 0
		build(i + 1)
		// One option per legal attacker.
		for optionIdx := range legalTargets[i] {
			choice[i] = optionIdx + 1
			build(i + 1)
		}
		choice[i] = 0
	}
	build(0)

	filtered := make([]Assignment, 0, len(results))
	for _, a := range results {
		if respectsMenace(a, attackers) {
			filtered = append(filtered, a)
		}
	}
	return filtered
}

func materialize(blockers []state.Permanent, legalTargets [][]int, choice []int, attackers []state.Permanent) Assignment {
	blockerMap := make(map[int][]int)
	for i, blocker := range blockers {
		if choice[i] == 0 {
			continue
		}
		attackerID := legalTargets[i][choice[i]-1]
		blockerMap[attackerID] = append(blockerMap[attackerID], blocker.ID)
	}
	return Assignment{Blockers: blockerMap}
}

func respectsMenace(a Assignment, attackers []state.Permanent) bool {
	for _, attacker := range attackers {
		if !attacker.Card.HasKeyword(card.Menace) {
			continue
		}
		blockers := a.Blockers[attacker.ID]
		if len(blockers) == 1 {
			return false
		}
	}
	return true
}
