package game

import (
	"gorm.io/gorm"
)

// Attributes are the four progression attributes a hero levels up. Battle
// stats are derived from them (see the progression package).
type Attributes struct {
	Strength int `json:"str" yaml:"str"`
	Vitality int `json:"vit" yaml:"vit"`
	Agility  int `json:"agi" yaml:"agi"`
	Wisdom   int `json:"wis" yaml:"wis"`
}

// Add returns the sum of both attribute sets.
func (a Attributes) Add(o Attributes) Attributes {
	return Attributes{
		Strength: a.Strength + o.Strength,
		Vitality: a.Vitality + o.Vitality,
		Agility:  a.Agility + o.Agility,
		Wisdom:   a.Wisdom + o.Wisdom,
	}
}

// RewardRule configures what a stage pays out for a win. Amounts grow with
// the hero's level.
type RewardRule struct {
	BaseExp        int `json:"base_exp" yaml:"base_exp"`
	ExpPerLevel    int `json:"exp_per_level" yaml:"exp_per_level"`
	BaseSilver     int `json:"base_silver" yaml:"base_silver"`
	SilverPerLevel int `json:"silver_per_level" yaml:"silver_per_level"`
}

// EnemyTemplate is the opponent of a stage. It references abilities of the
// catalog by id.
type EnemyTemplate struct {
	ID         string     `json:"id" yaml:"id"`
	Name       string     `json:"name" yaml:"name"`
	Level      int        `json:"level" yaml:"level"`
	Attributes Attributes `json:"attributes" yaml:"attributes"`
	AbilityIDs []string   `json:"ability_ids" yaml:"abilities"`
}

// Stage is a configured encounter. Stages come from the catalog file and are
// never persisted.
type Stage struct {
	ID     int           `json:"id" yaml:"id"`
	Name   string        `json:"name" yaml:"name"`
	Enemy  EnemyTemplate `json:"enemy" yaml:"enemy"`
	Reward RewardRule    `json:"reward" yaml:"reward"`
}

// Hero is the persisted progression record of the player character.
type Hero struct {
	gorm.Model
	// HeroUUID is the public identifier used by the API and as combatant id.
	HeroUUID   string     `json:"hero_id" gorm:"uniqueIndex"`
	Name       string     `json:"name" gorm:"size:32"`
	Level      int        `json:"level"`
	Exp        int        `json:"exp"`
	Silver     int        `json:"silver"`
	Attributes Attributes `json:"attributes" gorm:"embedded;embeddedPrefix:attr_"`
	AbilityIDs []string   `json:"ability_ids" gorm:"serializer:json;type:text"`
	// BattleCount feeds the incrementing seed used when a caller gives none.
	BattleCount int `json:"battle_count"`
	Wins        int `json:"wins"`
}

// Persist heroes in a dedicated table
func (Hero) TableName() string { return "hero_profiles" }

// BattleRecord is one entry of a hero's bounded battle history. The full
// result is stored as JSON so it can be replayed later.
type BattleRecord struct {
	gorm.Model
	HeroID       uint         `json:"-" gorm:"index"`
	StageID      int          `json:"stage_id"`
	Seed         uint32       `json:"seed"`
	Won          bool         `json:"won"`
	Reason       EndReason    `json:"reason"`
	Rounds       int          `json:"rounds"`
	ExpGained    int          `json:"exp_gained"`
	SilverGained int          `json:"silver_gained"`
	LevelsGained int          `json:"levels_gained"`
	Result       BattleResult `json:"result" gorm:"serializer:json;type:text"`
}

func (BattleRecord) TableName() string { return "battle_history" }
