package engine

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ericogr/lingjing-idle/internal/game"
)

// ErrInvalidDefinition is wrapped by every ValidationError.
var ErrInvalidDefinition = errors.New("invalid combatant definition")

// ValidationError reports a structurally invalid definition. It is returned
// before any simulation step runs.
type ValidationError struct {
	Combatant string
	Field     string
	Reason    string
}

func (e *ValidationError) Error() string {
	if e.Combatant == "" {
		return fmt.Sprintf("%s: %s %s", ErrInvalidDefinition, e.Field, e.Reason)
	}
	return fmt.Sprintf("%s: combatant %q: %s %s", ErrInvalidDefinition, e.Combatant, e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error { return ErrInvalidDefinition }

func invalid(combatant, field, reason string) *ValidationError {
	return &ValidationError{Combatant: combatant, Field: field, Reason: reason}
}

// Validate checks both definitions and the options of a simulation.
func Validate(left, right game.CombatantDefinition, opts Options) error {
	if opts.MaxRounds < 0 {
		return invalid("", "max_rounds", "must not be negative")
	}
	if err := ValidateCombatant(left); err != nil {
		return err
	}
	if err := ValidateCombatant(right); err != nil {
		return err
	}
	if left.ID == right.ID {
		return invalid(left.ID, "id", "is used by both combatants")
	}
	if startsDown(left) && startsDown(right) {
		return invalid("", "current_hp", "both combatants start knocked out")
	}
	return nil
}

func startsDown(def game.CombatantDefinition) bool {
	return def.CurrentHP != nil && *def.CurrentHP <= 0
}

// ValidateCombatant checks a single definition.
func ValidateCombatant(def game.CombatantDefinition) error {
	id := def.ID
	if strings.TrimSpace(id) == "" {
		return invalid("", "id", "is required")
	}
	s := def.Stats
	switch {
	case s.MaxHP <= 0:
		return invalid(id, "max_hp", "must be positive")
	case s.MaxHP > MaxStatValue:
		return invalid(id, "max_hp", fmt.Sprintf("must not exceed %d", MaxStatValue))
	case s.Attack < 0 || s.Attack > MaxStatValue:
		return invalid(id, "attack", statRange)
	case s.Defense < 0 || s.Defense > MaxStatValue:
		return invalid(id, "defense", statRange)
	case s.Agility < 0 || s.Agility > MaxStatValue:
		return invalid(id, "agility", statRange)
	case s.Level < 0 || s.Level > MaxLevel:
		return invalid(id, "level", fmt.Sprintf("must be within [0,%d]", MaxLevel))
	case !isFraction(s.HitChance):
		return invalid(id, "hit_chance", "must be within [0,1]")
	case !isFraction(s.CritChance):
		return invalid(id, "crit_chance", "must be within [0,1]")
	case s.CritMultiplier != 0 && !within(s.CritMultiplier, 1, MaxCritMultiplier):
		return invalid(id, "crit_multiplier", fmt.Sprintf("must be within [1,%d]", MaxCritMultiplier))
	case !within(s.Variance, 0, MaxAbilityValue):
		return invalid(id, "variance", abilityRange)
	}

	seen := make(map[string]struct{}, len(def.Abilities))
	for i, ab := range def.Abilities {
		field := fmt.Sprintf("abilities[%d]", i)
		if strings.TrimSpace(ab.ID) == "" {
			return invalid(id, field+".id", "is required")
		}
		if ab.ID == BasicAttackID {
			return invalid(id, field+".id", "is reserved for the basic attack")
		}
		if _, dup := seen[ab.ID]; dup {
			return invalid(id, field+".id", fmt.Sprintf("duplicates ability %q", ab.ID))
		}
		seen[ab.ID] = struct{}{}
		if err := validateAbility(id, field, ab); err != nil {
			return err
		}
	}
	return nil
}

func validateAbility(combatant, field string, ab game.AbilityDefinition) error {
	r := ab.Ratios
	switch {
	case ab.Cooldown < 0:
		return invalid(combatant, field+".cooldown", "must not be negative")
	case !within(ab.Base, 0, MaxAbilityValue):
		return invalid(combatant, field+".base", abilityRange)
	case !within(r.Attack, 0, MaxAbilityValue) || !within(r.Defense, 0, MaxAbilityValue) ||
		!within(r.Agility, 0, MaxAbilityValue) || !within(r.MaxHP, 0, MaxAbilityValue):
		return invalid(combatant, field+".ratios", abilityRange)
	case ab.DefensePierce < 0 || ab.DefensePierce > MaxStatValue:
		return invalid(combatant, field+".defense_pierce", statRange)
	case !within(ab.CritBonus, -1, 1):
		return invalid(combatant, field+".crit_bonus", "must be within [-1,1]")
	case !within(ab.HealFactor, 0, MaxAbilityValue):
		return invalid(combatant, field+".heal_factor", abilityRange)
	case !within(ab.Variance, 0, MaxAbilityValue):
		return invalid(combatant, field+".variance", abilityRange)
	}
	return nil
}

var (
	statRange    = fmt.Sprintf("must be within [0,%d]", MaxStatValue)
	abilityRange = fmt.Sprintf("must be within [0,%g]", MaxAbilityValue)
)

// within reports lo <= v <= hi. NaN is never within.
func within(v, lo, hi float64) bool { return v >= lo && v <= hi }

func isFraction(v float64) bool { return within(v, 0, 1) }

// AbilityCatalog indexes ability definitions by id.
type AbilityCatalog map[string]game.AbilityDefinition

// NewAbilityCatalog indexes the given abilities. Duplicate ids are rejected.
func NewAbilityCatalog(abilities []game.AbilityDefinition) (AbilityCatalog, error) {
	c := make(AbilityCatalog, len(abilities))
	for i, ab := range abilities {
		field := fmt.Sprintf("abilities[%d]", i)
		if strings.TrimSpace(ab.ID) == "" {
			return nil, invalid("", field+".id", "is required")
		}
		if ab.ID == BasicAttackID {
			return nil, invalid("", field+".id", "is reserved for the basic attack")
		}
		if _, dup := c[ab.ID]; dup {
			return nil, invalid("", field+".id", fmt.Sprintf("duplicates ability %q", ab.ID))
		}
		if err := validateAbility("", field, ab); err != nil {
			return nil, err
		}
		c[ab.ID] = ab
	}
	return c, nil
}

// Resolve returns the definitions for ids in the given order. An id missing
// from the catalog is a validation error attributed to owner.
func (c AbilityCatalog) Resolve(owner string, ids []string) ([]game.AbilityDefinition, error) {
	out := make([]game.AbilityDefinition, 0, len(ids))
	for i, aid := range ids {
		ab, ok := c[aid]
		if !ok {
			return nil, invalid(owner, fmt.Sprintf("abilities[%d]", i), fmt.Sprintf("references unknown ability %q", aid))
		}
		out = append(out, ab)
	}
	return out, nil
}

// List returns the catalog sorted by id.
func (c AbilityCatalog) List() []game.AbilityDefinition {
	out := make([]game.AbilityDefinition, 0, len(c))
	for _, ab := range c {
		out = append(out, ab)
	}
	sortAbilities(out)
	return out
}
