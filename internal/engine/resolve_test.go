package engine

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericogr/lingjing-idle/internal/game"
)

type attackStep struct {
	round   int
	actor   string
	ability string
	outcome game.Outcome
	damage  int
	heal    int
	target  int
}

func attackSteps(res *game.BattleResult) []attackStep {
	var out []attackStep
	for _, e := range res.Entries(game.EntryAttack) {
		a := e.Attack
		out = append(out, attackStep{e.Round, a.ActorID, a.AbilityID, a.Outcome, a.Damage, a.Heal, a.TargetHP})
	}
	return out
}

func TestSimulate_EqualSpeedFixedSequence(t *testing.T) {
	res, err := Simulate(attackerDef(), defenderDef(), SeedFromString("seed-hit"), Options{})
	require.NoError(t, err)

	hit, miss := game.OutcomeHit, game.OutcomeMiss
	want := []attackStep{
		{1, "attacker", "heavy-strike", hit, 10, 0, 18},
		{1, "defender", "regen-aura", miss, 0, 0, 30},
		{2, "attacker", BasicAttackID, miss, 0, 0, 18},
		{2, "defender", "regen-aura", hit, 6, 2, 24},
		{3, "attacker", "heavy-strike", miss, 0, 0, 20},
		{3, "defender", "regen-aura", miss, 0, 0, 24},
		{4, "attacker", BasicAttackID, hit, 8, 0, 12},
		{4, "defender", "regen-aura", hit, 6, 2, 18},
		{5, "attacker", "heavy-strike", miss, 0, 0, 14},
		{5, "defender", "regen-aura", hit, 6, 2, 12},
		{6, "attacker", BasicAttackID, hit, 7, 0, 9},
		{6, "defender", "regen-aura", miss, 0, 0, 12},
		{7, "attacker", "heavy-strike", hit, 9, 0, 0},
	}
	assert.Equal(t, want, attackSteps(res))

	assert.Equal(t, "attacker", res.WinnerID)
	assert.Equal(t, "defender", res.LoserID)
	assert.Equal(t, game.ReasonKnockout, res.Reason)
	assert.Equal(t, 7, res.Rounds)
	assert.Len(t, res.Log, 43)

	att, _ := res.Snapshot("attacker")
	def, _ := res.Snapshot("defender")
	assert.Equal(t, 12, att.HP)
	assert.Equal(t, 0, def.HP)
	// The knockout cuts round 7 short, so heavy-strike keeps its fresh cooldown.
	assert.Equal(t, []game.CooldownState{{AbilityID: "heavy-strike", Remaining: 2}, {AbilityID: BasicAttackID}}, att.Cooldowns)
}

func TestSimulate_DefaultSeedCrits(t *testing.T) {
	res, err := Simulate(attackerDef(), defenderDef(), DefaultSeed("attacker", "defender"), Options{})
	require.NoError(t, err)

	assert.Equal(t, uint32(1064228822), res.Seed)
	assert.Equal(t, "attacker", res.WinnerID)
	assert.Equal(t, 3, res.Rounds)
	assert.Len(t, res.Log, 17)

	var crits []int
	for _, e := range res.Entries(game.EntryAttack) {
		if e.Attack.Critical {
			crits = append(crits, e.Attack.Damage)
		}
	}
	assert.Equal(t, []int{15, 20}, crits)
}

func TestSimulate_FastCombatantActsFirstAndSlowOneStruggles(t *testing.T) {
	slow := attackerDef()
	slow.Stats.Agility = 0
	fast := defenderDef()
	fast.Stats.Agility = 80

	res, err := Simulate(slow, fast, SeedFromString("speed-gap"), Options{MaxRounds: 5})
	require.NoError(t, err)

	misses := 0
	for _, e := range res.Entries(game.EntryAttack) {
		a := e.Attack
		if a.ActorID == "defender" {
			assert.Equal(t, 1, e.Turn, "round %d", e.Round)
			assert.Equal(t, MaxHitChance, a.Rolls.HitChance)
		} else {
			assert.Equal(t, 2, e.Turn, "round %d", e.Round)
			assert.Equal(t, MinHitChance, a.Rolls.HitChance)
		}
		if a.ActorID == "attacker" && a.Outcome == game.OutcomeMiss {
			misses++
		}
	}
	assert.Equal(t, 2, misses)
	assert.Equal(t, game.ReasonMaxRounds, res.Reason)
	assert.Equal(t, "defender", res.WinnerID)
	assert.Equal(t, 5, res.Rounds)
}

func TestSimulate_MaxRoundsDecidesByHP(t *testing.T) {
	left := game.CombatantDefinition{ID: "left", Stats: game.Stats{MaxHP: 500, Attack: 10, Defense: 2, Agility: 10, CritChance: 0.25, CritMultiplier: 2, HitChance: 0.7, Variance: 0.2}}
	right := game.CombatantDefinition{ID: "right", Stats: game.Stats{MaxHP: 500, Attack: 8, Defense: 3, Agility: 5, CritChance: 0.15, CritMultiplier: 1.5, HitChance: 0.75, Variance: 0.2}}

	res, err := Simulate(left, right, SeedFromString("one-round"), Options{MaxRounds: 1})
	require.NoError(t, err)

	assert.Equal(t, game.ReasonMaxRounds, res.Reason)
	assert.Equal(t, "left", res.WinnerID)
	assert.Equal(t, 1, res.Rounds)
	require.Len(t, res.Log, 4)
	assert.Equal(t, []game.EntryKind{game.EntryRound, game.EntryAttack, game.EntryAttack, game.EntryBattleEnd},
		[]game.EntryKind{res.Log[0].Kind, res.Log[1].Kind, res.Log[2].Kind, res.Log[3].Kind})
	end := res.EndEvent()
	require.NotNil(t, end)
	assert.Equal(t, 1, end.Round)
}

func TestSimulate_CooldownSpacing(t *testing.T) {
	meteor := game.AbilityDefinition{ID: "meteor", Name: "Meteor", Cooldown: 3, Base: 5, Ratios: game.Ratios{Attack: 1}}
	caster := game.CombatantDefinition{ID: "caster", Stats: game.Stats{MaxHP: 400, Attack: 10, Defense: 2, Agility: 10, CritChance: 0.1, HitChance: 0.9, Variance: 0.1}, Abilities: []game.AbilityDefinition{meteor}}
	dummy := game.CombatantDefinition{ID: "dummy", Stats: game.Stats{MaxHP: 400, Attack: 5, Defense: 2, Agility: 5, HitChance: 0.5}}

	res, err := Simulate(caster, dummy, SeedFromString("cooldown"), Options{MaxRounds: 10})
	require.NoError(t, err)

	var uses []int
	for _, e := range res.Entries(game.EntrySkillUse) {
		uses = append(uses, e.Round)
		assert.Equal(t, 3, e.SkillUse.Cooldown)
	}
	assert.Equal(t, []int{1, 4, 7, 10}, uses)

	var remaining []int
	for _, e := range res.Entries(game.EntryCooldownTick) {
		if e.Round <= 3 {
			remaining = append(remaining, e.Cooldown.Remaining)
		}
	}
	assert.Equal(t, []int{2, 1, 0}, remaining)
}

func TestSimulate_CooldownZeroAndOneReuseEveryRound(t *testing.T) {
	for _, cd := range []int{0, 1} {
		jab := game.AbilityDefinition{ID: "jab", Name: "Jab", Cooldown: cd, Base: 2, Ratios: game.Ratios{Attack: 1}}
		caster := game.CombatantDefinition{ID: "caster", Stats: game.Stats{MaxHP: 400, Attack: 10, Agility: 10, HitChance: 0.9}, Abilities: []game.AbilityDefinition{jab}}
		dummy := game.CombatantDefinition{ID: "dummy", Stats: game.Stats{MaxHP: 400, Attack: 5, Agility: 5, HitChance: 0.5}}

		res, err := Simulate(caster, dummy, SeedFromString("jab"), Options{MaxRounds: 5})
		require.NoError(t, err)

		var uses []int
		for _, e := range res.Entries(game.EntrySkillUse) {
			uses = append(uses, e.Round)
		}
		assert.Equal(t, []int{1, 2, 3, 4, 5}, uses, "cooldown %d", cd)
	}
}

func TestSimulate_OpeningKnockout(t *testing.T) {
	left := attackerDef()
	left.CurrentHP = hp(0)

	res, err := Simulate(left, defenderDef(), 1, Options{})
	require.NoError(t, err)

	assert.Equal(t, "defender", res.WinnerID)
	assert.Equal(t, game.ReasonKnockout, res.Reason)
	assert.Equal(t, 0, res.Rounds)
	require.Len(t, res.Log, 1)
	assert.Equal(t, game.EntryBattleEnd, res.Log[0].Kind)
}

func TestSimulate_BothStartDownIsInvalid(t *testing.T) {
	left, right := attackerDef(), defenderDef()
	left.CurrentHP = hp(0)
	right.CurrentHP = hp(0)

	_, err := Simulate(left, right, 1, Options{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidDefinition))
}

func TestSimulate_DefaultMaxRounds(t *testing.T) {
	res, err := Simulate(attackerDef(), defenderDef(), 99, Options{})
	require.NoError(t, err)
	assert.Equal(t, DefaultMaxRounds, res.MaxRounds)
}

func TestSimulate_CurrentHPClampedToMax(t *testing.T) {
	def := attackerDef()
	def.CurrentHP = hp(1000)
	f := newFighter(def, 0)
	assert.Equal(t, 30, f.hp)
}

func TestDecideByHP_TieGoesToLeft(t *testing.T) {
	l := newFighter(attackerDef(), 0)
	r := newFighter(defenderDef(), 1)
	l.hp, r.hp = 12, 12
	bc := newBattleContext(NewRand(1), l, r)

	end := bc.decideByHP(20)
	assert.Equal(t, "attacker", end.WinnerID)
	assert.Equal(t, 20, end.Round)

	r.hp = 13
	end = bc.decideByHP(20)
	assert.Equal(t, "defender", end.WinnerID)
}

func TestInitiative(t *testing.T) {
	l := newFighter(attackerDef(), 0)
	r := newFighter(defenderDef(), 1)

	order := initiative([2]*fighter{l, r})
	assert.Equal(t, []*fighter{l, r}, order, "ties go to the first-declared combatant")

	l.stats.Agility = 3
	order = initiative([2]*fighter{l, r})
	assert.Equal(t, []*fighter{r, l}, order)
}

func TestSelectAbility(t *testing.T) {
	def := attackerDef()
	def.Abilities = []game.AbilityDefinition{
		{ID: "jab", Cooldown: 1},
		{ID: "smash", Cooldown: 3},
		{ID: "slam", Cooldown: 3},
	}
	f := newFighter(def, 0)

	assert.Equal(t, "smash", selectAbility(f).def.ID, "largest cooldown, earliest declared")
	f.abilities[1].remaining = 2
	assert.Equal(t, "slam", selectAbility(f).def.ID)
	f.abilities[2].remaining = 1
	assert.Equal(t, "jab", selectAbility(f).def.ID)
	f.abilities[0].remaining = 1
	assert.True(t, selectAbility(f).basic)
}

func TestSelectAbility_ZeroCooldownIsAlwaysReady(t *testing.T) {
	ab := game.AbilityDefinition{ID: "flurry", Name: "Flurry", Ratios: game.Ratios{Attack: 1}}
	def := attackerDef()
	def.Abilities = []game.AbilityDefinition{ab}

	res, err := Simulate(def, defenderDef(), 5, Options{MaxRounds: 3})
	require.NoError(t, err)
	for _, e := range res.Entries(game.EntryAttack) {
		if e.Attack.ActorID == "attacker" {
			assert.Equal(t, "flurry", e.Attack.AbilityID)
		}
	}
	for _, e := range res.Entries(game.EntryCooldownTick) {
		assert.NotEqual(t, "flurry", e.Cooldown.AbilityID)
	}
}
