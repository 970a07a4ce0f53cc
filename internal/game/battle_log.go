package game

// EntryKind tags a battle log entry.
type EntryKind string

const (
	EntryRound        EntryKind = "round"
	EntryAttack       EntryKind = "attack"
	EntrySkillUse     EntryKind = "skill_use"
	EntryCooldownTick EntryKind = "cooldown_tick"
	EntryBattleEnd    EntryKind = "battle_end"
)

type Outcome string

const (
	OutcomeHit  Outcome = "hit"
	OutcomeMiss Outcome = "miss"
)

// EndReason explains why a battle stopped.
type EndReason string

const (
	ReasonKnockout  EndReason = "knockout"
	ReasonMaxRounds EndReason = "max_rounds"
)

// Entry is one element of the ordered battle log. Exactly one of the event
// pointers is set, matching Kind (round entries carry none).
type Entry struct {
	Seq   int       `json:"seq"`
	Kind  EntryKind `json:"kind"`
	Round int       `json:"round"`
	// Turn is the 1-based position of the acting combatant within the round.
	Turn     int             `json:"turn,omitempty"`
	Attack   *AttackEvent    `json:"attack,omitempty"`
	SkillUse *SkillUseEvent  `json:"skill_use,omitempty"`
	Cooldown *CooldownEvent  `json:"cooldown,omitempty"`
	End      *BattleEndEvent `json:"end,omitempty"`
}

// AttackEvent is the full usage record of one ability resolution. It carries
// every intermediate value so a consumer can animate it without rerunning the
// random stream.
type AttackEvent struct {
	ActorID     string      `json:"actor_id"`
	TargetID    string      `json:"target_id"`
	AbilityID   string      `json:"ability_id"`
	AbilityName string      `json:"ability_name"`
	Outcome     Outcome     `json:"outcome"`
	Critical    bool        `json:"critical"`
	Damage      int         `json:"damage"`
	Heal        int         `json:"heal,omitempty"`
	TargetHP    int         `json:"target_hp"`
	ActorHP     int         `json:"actor_hp"`
	Rolls       AttackRolls `json:"rolls"`
}

// AttackRolls are the intermediate values of a resolution. Fields after
// HitRoll stay zero on a miss.
type AttackRolls struct {
	HitChance        float64 `json:"hit_chance"`
	HitRoll          float64 `json:"hit_roll"`
	BaseDamage       float64 `json:"base_damage,omitempty"`
	VarianceRoll     float64 `json:"variance_roll,omitempty"`
	VarianceFactor   float64 `json:"variance_factor,omitempty"`
	EffectiveDefense int     `json:"effective_defense,omitempty"`
	Mitigated        float64 `json:"mitigated,omitempty"`
	CritChance       float64 `json:"crit_chance,omitempty"`
	CritRoll         float64 `json:"crit_roll,omitempty"`
}

// SkillUseEvent records a declared ability being triggered. The attack entry
// that resolves it follows immediately.
type SkillUseEvent struct {
	ActorID     string `json:"actor_id"`
	AbilityID   string `json:"ability_id"`
	AbilityName string `json:"ability_name"`
	Description string `json:"description,omitempty"`
	// Cooldown is the remaining cooldown right after use.
	Cooldown int `json:"cooldown"`
}

type CooldownEvent struct {
	ActorID     string `json:"actor_id"`
	AbilityID   string `json:"ability_id"`
	AbilityName string `json:"ability_name"`
	Remaining   int    `json:"remaining"`
}

type BattleEndEvent struct {
	WinnerID string    `json:"winner_id"`
	LoserID  string    `json:"loser_id"`
	Reason   EndReason `json:"reason"`
	Round    int       `json:"round"`
}

// CooldownState is the remaining cooldown of one ability.
type CooldownState struct {
	AbilityID string `json:"ability_id"`
	Remaining int    `json:"remaining"`
}

// CombatantSnapshot is the state of a combatant when the battle ended.
type CombatantSnapshot struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	HP        int             `json:"hp"`
	Stats     Stats           `json:"stats"`
	Cooldowns []CooldownState `json:"cooldowns"`
}

// BattleResult is the complete, replayable outcome of one simulation.
type BattleResult struct {
	Seed       uint32               `json:"seed"`
	WinnerID   string               `json:"winner_id"`
	LoserID    string               `json:"loser_id"`
	Reason     EndReason            `json:"reason"`
	Rounds     int                  `json:"rounds"`
	MaxRounds  int                  `json:"max_rounds"`
	Combatants [2]CombatantSnapshot `json:"combatants"`
	Log        []Entry              `json:"log"`
}

// Snapshot returns the final state of the combatant with the given id.
func (r *BattleResult) Snapshot(id string) (CombatantSnapshot, bool) {
	for _, c := range r.Combatants {
		if c.ID == id {
			return c, true
		}
	}
	return CombatantSnapshot{}, false
}

// Entries returns the log entries of the given kind in log order.
func (r *BattleResult) Entries(kind EntryKind) []Entry {
	out := make([]Entry, 0, len(r.Log))
	for _, e := range r.Log {
		if e.Kind == kind {
			out = append(out, e)
		}
	}
	return out
}

// EndEvent returns the terminal event, or nil for an empty log.
func (r *BattleResult) EndEvent() *BattleEndEvent {
	if len(r.Log) == 0 {
		return nil
	}
	return r.Log[len(r.Log)-1].End
}
