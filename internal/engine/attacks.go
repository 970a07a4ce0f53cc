package engine

import "github.com/ericogr/lingjing-idle/internal/game"

// resolveAbility resolves one ability use of actor against target, mutating
// hp on a hit. Draws from src in a fixed order: hit, variance, crit. A miss
// draws once and changes nothing.
func resolveAbility(actor, target *fighter, ab game.AbilityDefinition, src Source) game.AttackEvent {
	ev := game.AttackEvent{
		ActorID:     actor.id,
		TargetID:    target.id,
		AbilityID:   ab.ID,
		AbilityName: ab.Name,
	}

	ev.Rolls.HitChance = hitChance(actor.stats, target.stats)
	ev.Rolls.HitRoll = src.Float64()
	if ev.Rolls.HitRoll > ev.Rolls.HitChance {
		ev.Outcome = game.OutcomeMiss
		ev.TargetHP = target.hp
		ev.ActorHP = actor.hp
		return ev
	}
	ev.Outcome = game.OutcomeHit

	base := baseDamage(actor.stats, ab)
	width := varianceWidth(actor.stats, ab)
	ev.Rolls.BaseDamage = base
	ev.Rolls.VarianceRoll = src.Float64()
	ev.Rolls.VarianceFactor = 1 - width/2 + ev.Rolls.VarianceRoll*width
	rolled := base * ev.Rolls.VarianceFactor

	ev.Rolls.EffectiveDefense = effectiveDefense(target.stats, ab)
	ev.Rolls.Mitigated = rolled - float64(ev.Rolls.EffectiveDefense)

	ev.Rolls.CritChance = critChance(actor.stats, ab)
	ev.Rolls.CritRoll = src.Float64()
	final := ev.Rolls.Mitigated
	if ev.Rolls.CritRoll < ev.Rolls.CritChance {
		ev.Critical = true
		final *= critMultiplier(actor.stats)
	}

	dmg := roundToInt(final)
	if dmg < 1 {
		dmg = 1
	}
	target.damage(dmg)
	ev.Damage = dmg

	if ab.HealFactor > 0 {
		if amount := roundToInt(ab.HealFactor * rolled); amount > 0 {
			ev.Heal = actor.heal(amount)
		}
	}
	ev.TargetHP = target.hp
	ev.ActorHP = actor.hp
	return ev
}
