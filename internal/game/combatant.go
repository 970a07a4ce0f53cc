package game

// Stats are the immutable battle statistics of a combatant. Probabilities are
// fractions in [0,1].
type Stats struct {
	MaxHP   int `json:"max_hp" yaml:"max_hp"`
	Attack  int `json:"attack" yaml:"attack"`
	Defense int `json:"defense" yaml:"defense"`
	// Agility decides initiative and shifts hit chance in the attacker's favour.
	Agility    int     `json:"agility" yaml:"agility"`
	CritChance float64 `json:"crit_chance" yaml:"crit_chance"`
	// CritMultiplier scales critical damage. Zero selects the engine default.
	CritMultiplier float64 `json:"crit_multiplier" yaml:"crit_multiplier"`
	HitChance      float64 `json:"hit_chance" yaml:"hit_chance"`
	// Variance is the width of the symmetric damage roll (0.2 = ±10%).
	Variance float64 `json:"variance" yaml:"variance"`
	// Level scales outgoing damage; 0 and 1 mean no scaling.
	Level int `json:"level,omitempty" yaml:"level"`
}

// Ratios weight combatant stats into ability base damage.
type Ratios struct {
	Attack  float64 `json:"attack,omitempty" yaml:"attack"`
	Defense float64 `json:"defense,omitempty" yaml:"defense"`
	Agility float64 `json:"agility,omitempty" yaml:"agility"`
	MaxHP   float64 `json:"max_hp,omitempty" yaml:"max_hp"`
}

// AbilityDefinition describes an action a combatant may take on its turn.
type AbilityDefinition struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description"`
	// Cooldown is the spacing in rounds between two uses. An ability used in
	// round r is selectable again from round r+Cooldown, so 0 and 1 both
	// allow use every round.
	Cooldown      int     `json:"cooldown" yaml:"cooldown"`
	Base          float64 `json:"base" yaml:"base"`
	Ratios        Ratios  `json:"ratios" yaml:"ratios"`
	DefensePierce int     `json:"defense_pierce,omitempty" yaml:"defense_pierce"`
	CritBonus     float64 `json:"crit_bonus,omitempty" yaml:"crit_bonus"`
	// HealFactor heals the user by this fraction of the rolled base damage.
	HealFactor float64 `json:"heal_factor,omitempty" yaml:"heal_factor"`
	Variance   float64 `json:"variance,omitempty" yaml:"variance"`
}

// CombatantDefinition is the caller-owned, read-only description of a battle
// participant.
type CombatantDefinition struct {
	ID    string `json:"id" yaml:"id"`
	Name  string `json:"name" yaml:"name"`
	Stats Stats  `json:"stats" yaml:"stats"`
	// CurrentHP starts the battle below full health when set.
	CurrentHP *int                `json:"current_hp,omitempty" yaml:"current_hp"`
	Abilities []AbilityDefinition `json:"abilities" yaml:"abilities"`
}
