package state

import "github.com/PropterMalone/3cblue/internal/card"

// EffectivePower and EffectiveToughness fold a permanent's StaticPTModifier
// abilities into its printed power/toughness. This is a flat sum, not a
// dependency-ordered layer system — §1 Non-goals excludes continuous
// layer effects, so every applicable modifier on the controller's
// battlefield is simply added once, with no timestamps or dependency
// resolution.
//
// enchanted_creature and equipped_creature targets never apply: the
// data model (§3) has no Aura/Equipment attachment relationship between
// Permanents, so nothing can ever be "the enchanted/equipped creature"
// for a modifier to reach. Those two target kinds are accepted by the
// parser (so the text classifies rather than going Unresolved) but are
// inert in play — see DESIGN.md.
func EffectivePower(gs *GameState, controller int, perm Permanent) int {
	return perm.Card.BasePower() + sumStaticModifiers(gs, controller, perm, true)
}

func EffectiveToughness(gs *GameState, controller int, perm Permanent) int {
	return perm.Card.BaseToughness() + sumStaticModifiers(gs, controller, perm, false)
}

func sumStaticModifiers(gs *GameState, controller int, perm Permanent, power bool) int {
	total := 0
	for _, source := range gs.Players[controller].Battlefield {
		for _, a := range source.Card.Abilities {
			if a.Kind != card.KindStaticPTModifier {
				continue
			}
			if !modifierApplies(a.PTTarget, source, perm) {
				continue
			}
			if power {
				total += a.PTPower
			} else {
				total += a.PTToughness
			}
		}
	}
	return total
}

func modifierApplies(target card.PTTarget, source, perm Permanent) bool {
	switch target {
	case card.PTTargetSelf:
		return source.ID == perm.ID
	case card.PTTargetCreaturesYouControl:
		return perm.Card.IsCreature()
	case card.PTTargetOtherCreaturesYouControl:
		return perm.Card.IsCreature() && source.ID != perm.ID
	case card.PTTargetEnchantedCreature, card.PTTargetEquippedCreature:
		return false
	default:
		return false
	}
}
