package engine

import "github.com/ericogr/lingjing-idle/internal/game"

// --- Battle context and helpers ---------------------------------------
type battleContext struct {
	rng      Source
	fighters [2]*fighter
	round    int
	log      []game.Entry
}

func newBattleContext(rng Source, left, right *fighter) *battleContext {
	return &battleContext{rng: rng, fighters: [2]*fighter{left, right}, log: make([]game.Entry, 0, 64)}
}

// add appends an entry, numbering it in log order.
func (bc *battleContext) add(e game.Entry) {
	e.Seq = len(bc.log) + 1
	bc.log = append(bc.log, e)
}

func (bc *battleContext) opponentOf(f *fighter) *fighter {
	if f == bc.fighters[0] {
		return bc.fighters[1]
	}
	return bc.fighters[0]
}

func (bc *battleContext) result(seed Seed, maxRounds int, end *game.BattleEndEvent) *game.BattleResult {
	return &game.BattleResult{
		Seed:       uint32(seed),
		WinnerID:   end.WinnerID,
		LoserID:    end.LoserID,
		Reason:     end.Reason,
		Rounds:     end.Round,
		MaxRounds:  maxRounds,
		Combatants: [2]game.CombatantSnapshot{bc.fighters[0].snapshot(), bc.fighters[1].snapshot()},
		Log:        bc.log,
	}
}
