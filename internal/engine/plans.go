package engine

import (
	"sort"

	"github.com/ericogr/lingjing-idle/internal/game"
)

// initiative returns the acting order for a round: higher agility first,
// ties go to the first-declared combatant. It is recomputed every round.
func initiative(fighters [2]*fighter) []*fighter {
	order := []*fighter{fighters[0], fighters[1]}
	sort.SliceStable(order, func(i, j int) bool {
		if order[i].stats.Agility == order[j].stats.Agility {
			return order[i].index < order[j].index
		}
		return order[i].stats.Agility > order[j].stats.Agility
	})
	return order
}

// selectAbility picks the acting ability: the ready declared ability with the
// largest declared cooldown, ties broken by declaration order, falling back
// to the basic attack.
func selectAbility(f *fighter) *abilitySlot {
	var chosen *abilitySlot
	for _, s := range f.abilities {
		if !s.ready() {
			continue
		}
		if chosen == nil || s.def.Cooldown > chosen.def.Cooldown {
			chosen = s
		}
	}
	if chosen == nil {
		return f.basic
	}
	return chosen
}

func sortAbilities(abs []game.AbilityDefinition) {
	sort.Slice(abs, func(i, j int) bool { return abs[i].ID < abs[j].ID })
}
