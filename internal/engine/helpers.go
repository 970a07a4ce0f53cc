package engine

import (
	"math"

	"github.com/ericogr/lingjing-idle/internal/game"
)

// abilitySlot is the runtime cooldown entry of one ability.
type abilitySlot struct {
	def       game.AbilityDefinition
	remaining int
	basic     bool
}

func (s *abilitySlot) ready() bool { return s.remaining == 0 }

// fighter is the mutable per-battle state of a combatant. It lives only for
// the duration of one Simulate call.
type fighter struct {
	index     int
	id        string
	name      string
	stats     game.Stats
	hp        int
	abilities []*abilitySlot
	basic     *abilitySlot
}

func newFighter(def game.CombatantDefinition, index int) *fighter {
	hp := def.Stats.MaxHP
	if def.CurrentHP != nil {
		hp = clampInt(*def.CurrentHP, 0, def.Stats.MaxHP)
	}
	slots := make([]*abilitySlot, 0, len(def.Abilities))
	for _, a := range def.Abilities {
		slots = append(slots, &abilitySlot{def: a})
	}
	return &fighter{
		index:     index,
		id:        def.ID,
		name:      def.Name,
		stats:     def.Stats,
		hp:        hp,
		abilities: slots,
		basic:     &abilitySlot{def: BasicAttack, basic: true},
	}
}

func (f *fighter) damage(n int) {
	f.hp = clampInt(f.hp-n, 0, f.stats.MaxHP)
}

// heal restores up to n hp and returns the amount actually restored.
func (f *fighter) heal(n int) int {
	before := f.hp
	f.hp = clampInt(f.hp+n, 0, f.stats.MaxHP)
	return f.hp - before
}

func (f *fighter) snapshot() game.CombatantSnapshot {
	cds := make([]game.CooldownState, 0, len(f.abilities)+1)
	for _, s := range f.abilities {
		cds = append(cds, game.CooldownState{AbilityID: s.def.ID, Remaining: s.remaining})
	}
	cds = append(cds, game.CooldownState{AbilityID: f.basic.def.ID, Remaining: f.basic.remaining})
	return game.CombatantSnapshot{ID: f.id, Name: f.name, HP: f.hp, Stats: f.stats, Cooldowns: cds}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// roundToInt rounds half away from zero after clamping v to
// ±maxRollMagnitude. NaN maps to 0.
func roundToInt(v float64) int {
	if v != v {
		return 0
	}
	return int(math.Round(clampFloat(v, -maxRollMagnitude, maxRollMagnitude)))
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
