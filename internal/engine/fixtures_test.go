package engine

import "github.com/ericogr/lingjing-idle/internal/game"

func heavyStrike() game.AbilityDefinition {
	return game.AbilityDefinition{ID: "heavy-strike", Name: "Heavy Strike", Cooldown: 2, Base: 3, Ratios: game.Ratios{Attack: 1}}
}

func regenAura() game.AbilityDefinition {
	return game.AbilityDefinition{ID: "regen-aura", Name: "Regen Aura", Cooldown: 1, Ratios: game.Ratios{Attack: 1}, HealFactor: 0.25}
}

func attackerDef() game.CombatantDefinition {
	return game.CombatantDefinition{
		ID:   "attacker",
		Name: "Attacker",
		Stats: game.Stats{
			MaxHP: 30, Attack: 10, Defense: 2, Agility: 10,
			CritChance: 0.25, CritMultiplier: 2, HitChance: 0.7, Variance: 0.2,
		},
		Abilities: []game.AbilityDefinition{heavyStrike()},
	}
}

func defenderDef() game.CombatantDefinition {
	return game.CombatantDefinition{
		ID:   "defender",
		Name: "Defender",
		Stats: game.Stats{
			MaxHP: 28, Attack: 8, Defense: 3, Agility: 10,
			CritChance: 0.15, CritMultiplier: 1.5, HitChance: 0.75, Variance: 0.2,
		},
		Abilities: []game.AbilityDefinition{regenAura()},
	}
}

func hp(n int) *int { return &n }

// scripted replays a fixed sequence of rolls and counts draws.
type scripted struct {
	rolls []float64
	drawn int
}

func (s *scripted) Float64() float64 {
	v := s.rolls[s.drawn]
	s.drawn++
	return v
}
