package engine

import "github.com/ericogr/lingjing-idle/internal/game"

// Tuning of the damage model.
const (
	MinHitChance          = 0.20
	MaxHitChance          = 0.95
	HitAgilityFactor      = 0.01
	MaxCritChance         = 0.75
	DefaultCritMultiplier = 1.5
	LevelDamageScaling    = 0.02
	DefaultMaxRounds      = 20
)

// Bounds accepted by validation. They keep every intermediate value of a
// resolution finite and every hp update inside int range.
const (
	MaxStatValue      = 1_000_000_000
	MaxLevel          = 1000
	MaxCritMultiplier = 100
	MaxAbilityValue   = 1e6
)

// maxRollMagnitude caps a rolled amount before it becomes an int. Anything
// larger already exceeds every hp pool validation allows.
const maxRollMagnitude = 1 << 53

const BasicAttackID = "basic-attack"

// BasicAttack is the implicit ability every combatant falls back to. It never
// goes on cooldown.
var BasicAttack = game.AbilityDefinition{
	ID:     BasicAttackID,
	Name:   "Basic Attack",
	Ratios: game.Ratios{Attack: 1},
}

// --- Modifier helpers --------------------------------------------------
func hitChance(actor, target game.Stats) float64 {
	diff := float64(actor.Agility - target.Agility)
	return clampFloat(actor.HitChance+HitAgilityFactor*diff, MinHitChance, MaxHitChance)
}

func critChance(actor game.Stats, ab game.AbilityDefinition) float64 {
	return clampFloat(actor.CritChance+ab.CritBonus, 0, MaxCritChance)
}

func critMultiplier(actor game.Stats) float64 {
	if actor.CritMultiplier == 0 {
		return DefaultCritMultiplier
	}
	return actor.CritMultiplier
}

func varianceWidth(actor game.Stats, ab game.AbilityDefinition) float64 {
	return clampFloat(actor.Variance+ab.Variance, 0, 1)
}

func baseDamage(actor game.Stats, ab game.AbilityDefinition) float64 {
	dmg := ab.Base +
		ab.Ratios.Attack*float64(actor.Attack) +
		ab.Ratios.Defense*float64(actor.Defense) +
		ab.Ratios.Agility*float64(actor.Agility) +
		ab.Ratios.MaxHP*float64(actor.MaxHP)
	if actor.Level > 1 {
		dmg *= 1 + LevelDamageScaling*float64(actor.Level-1)
	}
	return dmg
}

func effectiveDefense(target game.Stats, ab game.AbilityDefinition) int {
	d := target.Defense - ab.DefensePierce
	if d < 0 {
		d = 0
	}
	return d
}
