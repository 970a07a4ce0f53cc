package engine

import "github.com/ericogr/lingjing-idle/internal/game"

// executeTurn runs one combatant's action: select, resolve, apply cooldown.
// It reports whether the target was knocked out.
func (bc *battleContext) executeTurn(turn int, actor, target *fighter) bool {
	slot := selectAbility(actor)
	if !slot.basic {
		slot.remaining = slot.def.Cooldown
		bc.add(game.Entry{
			Kind:  game.EntrySkillUse,
			Round: bc.round,
			Turn:  turn,
			SkillUse: &game.SkillUseEvent{
				ActorID:     actor.id,
				AbilityID:   slot.def.ID,
				AbilityName: slot.def.Name,
				Description: slot.def.Description,
				Cooldown:    slot.remaining,
			},
		})
	}

	ev := resolveAbility(actor, target, slot.def, bc.rng)
	bc.add(game.Entry{Kind: game.EntryAttack, Round: bc.round, Turn: turn, Attack: &ev})
	return target.hp == 0
}

// tickCooldowns decrements every pending cooldown once, in declaration order.
func (bc *battleContext) tickCooldowns() {
	for _, f := range bc.fighters {
		for _, s := range f.abilities {
			if s.remaining == 0 {
				continue
			}
			s.remaining--
			bc.add(game.Entry{
				Kind:  game.EntryCooldownTick,
				Round: bc.round,
				Cooldown: &game.CooldownEvent{
					ActorID:     f.id,
					AbilityID:   s.def.ID,
					AbilityName: s.def.Name,
					Remaining:   s.remaining,
				},
			})
		}
	}
}
