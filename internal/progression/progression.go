// Package progression holds the idle-game rules around the battle engine:
// experience and level-ups, stage rewards and the mapping from hero
// attributes to battle stats.
package progression

import (
	"fmt"

	"github.com/ericogr/lingjing-idle/internal/game"
)

// Derived stat tuning.
const (
	BaseMaxHP        = 60
	MaxHPPerVit      = 10
	BaseAttack       = 8
	AttackPerStr     = 2
	BaseDefense      = 2
	VitPerDefense    = 3
	BaseCritChance   = 0.05
	CritPerWis       = 0.01
	MaxDerivedCrit   = 0.5
	HeroCritMult     = 1.5
	HeroHitChance    = 0.85
	HeroVariance     = 0.2
	StarterAttribute = 5
)

// State is the part of a hero that experience changes.
type State struct {
	Level      int             `json:"level"`
	Exp        int             `json:"exp"`
	Attributes game.Attributes `json:"attributes"`
}

// LevelUpSummary describes what ApplyExperience changed.
type LevelUpSummary struct {
	LevelsGained  int             `json:"levels_gained"`
	ExpRemaining  int             `json:"exp_remaining"`
	NewLevel      int             `json:"new_level"`
	AttributeGain game.Attributes `json:"attribute_gain"`
}

// ExpToNext returns the experience needed to leave level, false at the cap.
func ExpToNext(level int) (int, bool) {
	if level < 1 || level >= LevelCap {
		return 0, false
	}
	return expToNext[level-1], true
}

// GrowthForLevel returns the attributes gained on reaching level.
func GrowthForLevel(level int) game.Attributes {
	i := level - 2
	if i < 0 || i >= len(strGrowth) {
		return game.Attributes{}
	}
	return game.Attributes{
		Strength: strGrowth[i],
		Vitality: vitGrowth[i],
		Agility:  agiGrowth[i],
		Wisdom:   wisGrowth[i],
	}
}

// ApplyExperience adds gained experience and applies every level-up it pays
// for. Negative gains are ignored. At the cap experience keeps accumulating.
func ApplyExperience(s State, gained int) (State, LevelUpSummary) {
	if gained > 0 {
		s.Exp += gained
	}
	var sum LevelUpSummary
	for {
		need, ok := ExpToNext(s.Level)
		if !ok || s.Exp < need {
			break
		}
		s.Exp -= need
		s.Level++
		sum.LevelsGained++
		sum.AttributeGain = sum.AttributeGain.Add(GrowthForLevel(s.Level))
	}
	s.Attributes = s.Attributes.Add(sum.AttributeGain)
	sum.ExpRemaining = s.Exp
	sum.NewLevel = s.Level
	return s, sum
}

// TotalExpForLevel is the experience needed to reach level from level 1.
func TotalExpForLevel(level int) int {
	if level > LevelCap {
		level = LevelCap
	}
	total := 0
	for l := 1; l < level; l++ {
		total += expToNext[l-1]
	}
	return total
}

// Rewards is what a won stage pays.
type Rewards struct {
	Exp    int `json:"exp"`
	Silver int `json:"silver"`
}

// StageRewards scales a stage's reward rule by the hero level.
func StageRewards(rule game.RewardRule, heroLevel int) Rewards {
	l := heroLevel
	if l < 1 {
		l = 1
	}
	return Rewards{
		Exp:    rule.BaseExp + rule.ExpPerLevel*l,
		Silver: rule.BaseSilver + rule.SilverPerLevel*l,
	}
}

// StatsFor derives battle stats from a level and attributes.
func StatsFor(level int, a game.Attributes) game.Stats {
	crit := BaseCritChance + CritPerWis*float64(a.Wisdom)
	if crit > MaxDerivedCrit {
		crit = MaxDerivedCrit
	}
	return game.Stats{
		MaxHP:          BaseMaxHP + MaxHPPerVit*a.Vitality,
		Attack:         BaseAttack + AttackPerStr*a.Strength + level,
		Defense:        BaseDefense + a.Vitality/VitPerDefense,
		Agility:        a.Agility,
		CritChance:     crit,
		CritMultiplier: HeroCritMult,
		HitChance:      HeroHitChance,
		Variance:       HeroVariance,
		Level:          level,
	}
}

// AbilityResolver turns ability ids into definitions.
type AbilityResolver interface {
	Resolve(owner string, ids []string) ([]game.AbilityDefinition, error)
}

// CombatantFor builds the engine definition of a hero.
func CombatantFor(h *game.Hero, abilities AbilityResolver) (game.CombatantDefinition, error) {
	abs, err := abilities.Resolve(h.HeroUUID, h.AbilityIDs)
	if err != nil {
		return game.CombatantDefinition{}, err
	}
	return game.CombatantDefinition{
		ID:        h.HeroUUID,
		Name:      h.Name,
		Stats:     StatsFor(h.Level, h.Attributes),
		Abilities: abs,
	}, nil
}

// EnemyFor builds the engine definition of a stage opponent.
func EnemyFor(e game.EnemyTemplate, abilities AbilityResolver) (game.CombatantDefinition, error) {
	abs, err := abilities.Resolve(e.ID, e.AbilityIDs)
	if err != nil {
		return game.CombatantDefinition{}, fmt.Errorf("enemy %s: %w", e.ID, err)
	}
	return game.CombatantDefinition{
		ID:        e.ID,
		Name:      e.Name,
		Stats:     StatsFor(e.Level, e.Attributes),
		Abilities: abs,
	}, nil
}

// NewHero returns a level 1 hero with the starter kit. The caller assigns
// the public id.
func NewHero(name string, starter []string) *game.Hero {
	return &game.Hero{
		Name:  name,
		Level: 1,
		Attributes: game.Attributes{
			Strength: StarterAttribute,
			Vitality: StarterAttribute,
			Agility:  StarterAttribute,
			Wisdom:   StarterAttribute,
		},
		AbilityIDs: append([]string(nil), starter...),
	}
}
