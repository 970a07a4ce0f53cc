package engine

import "github.com/ericogr/lingjing-idle/internal/game"

// Options bound a simulation.
type Options struct {
	// MaxRounds caps the battle length. Zero selects DefaultMaxRounds.
	MaxRounds int
}

// Simulate resolves a full battle between left and right. It is a pure
// function of its inputs: the same definitions, seed and options always
// produce an identical result. Definitions are validated first and an invalid
// pair returns a *ValidationError without simulating anything.
//
// Simulate keeps no shared state, so independent battles may run
// concurrently.
func Simulate(left, right game.CombatantDefinition, seed Seed, opts Options) (*game.BattleResult, error) {
	if err := Validate(left, right, opts); err != nil {
		return nil, err
	}
	maxRounds := opts.MaxRounds
	if maxRounds == 0 {
		maxRounds = DefaultMaxRounds
	}

	bc := newBattleContext(NewRand(seed), newFighter(left, 0), newFighter(right, 1))
	end := bc.openingKnockout()
	for round := 1; end == nil && round <= maxRounds; round++ {
		end = bc.runRound(round)
	}
	if end == nil {
		end = bc.decideByHP(maxRounds)
	}
	bc.add(game.Entry{Kind: game.EntryBattleEnd, Round: end.Round, End: end})
	return bc.result(seed, maxRounds, end), nil
}

// runRound plays one round and returns the end event on a knockout.
func (bc *battleContext) runRound(round int) *game.BattleEndEvent {
	bc.round = round
	bc.add(game.Entry{Kind: game.EntryRound, Round: round})
	for i, actor := range initiative(bc.fighters) {
		target := bc.opponentOf(actor)
		if bc.executeTurn(i+1, actor, target) {
			return &game.BattleEndEvent{WinnerID: actor.id, LoserID: target.id, Reason: game.ReasonKnockout, Round: round}
		}
	}
	bc.tickCooldowns()
	return nil
}

// openingKnockout ends the battle before round 1 when a combatant starts at
// 0 hp. Validation guarantees at most one does.
func (bc *battleContext) openingKnockout() *game.BattleEndEvent {
	for _, f := range bc.fighters {
		if f.hp == 0 {
			winner := bc.opponentOf(f)
			return &game.BattleEndEvent{WinnerID: winner.id, LoserID: f.id, Reason: game.ReasonKnockout}
		}
	}
	return nil
}

// decideByHP picks the winner after the round limit: strictly higher hp
// wins, ties go to the first-declared combatant.
func (bc *battleContext) decideByHP(maxRounds int) *game.BattleEndEvent {
	winner, loser := bc.fighters[0], bc.fighters[1]
	if loser.hp > winner.hp {
		winner, loser = loser, winner
	}
	return &game.BattleEndEvent{WinnerID: winner.id, LoserID: loser.id, Reason: game.ReasonMaxRounds, Round: maxRounds}
}
