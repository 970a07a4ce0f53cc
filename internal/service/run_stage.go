package service

import (
	"fmt"

	"github.com/ericogr/lingjing-idle/internal/config"
	"github.com/ericogr/lingjing-idle/internal/constants"
	"github.com/ericogr/lingjing-idle/internal/dedupe"
	"github.com/ericogr/lingjing-idle/internal/engine"
	"github.com/ericogr/lingjing-idle/internal/game"
	"github.com/ericogr/lingjing-idle/internal/keys"
	"github.com/ericogr/lingjing-idle/internal/logging"
	"github.com/ericogr/lingjing-idle/internal/progression"
)

type RunStageRequest struct {
	HeroID  string
	StageID int
	// Seed fixes the battle. Nil uses the hero's incrementing seed.
	Seed *engine.Seed
}

type RunStageOptions struct {
	MaxRounds    int
	HistoryLimit int
}

// StageOutcome is the result of one stage run.
type StageOutcome struct {
	Hero    *game.Hero                 `json:"hero"`
	Battle  *game.BattleRecord         `json:"battle"`
	Rewards progression.Rewards        `json:"rewards"`
	LevelUp progression.LevelUpSummary `json:"level_up"`
}

// RunStage fights the stage enemy with the hero, grants rewards on a win and
// stores the battle in the hero's bounded history. Identical concurrent
// requests share one run; different requests for the same hero are
// serialized.
func RunStage(repo HeroRepo, cat *config.Catalog, req RunStageRequest, opts RunStageOptions) (*StageOutcome, error) {
	var seedKey *uint32
	if req.Seed != nil {
		s := uint32(*req.Seed)
		seedKey = &s
	}
	key := keys.BattleKey(req.HeroID, req.StageID, seedKey)
	v, err, _ := dedupe.StageGroup.Do(key, func() (interface{}, error) {
		unlock := dedupe.HeroLocks.Lock(req.HeroID)
		defer unlock()
		return runStage(repo, cat, req, opts)
	})
	if err != nil {
		return nil, err
	}
	return v.(*StageOutcome), nil
}

func runStage(repo HeroRepo, cat *config.Catalog, req RunStageRequest, opts RunStageOptions) (*StageOutcome, error) {
	hero, err := GetHero(repo, req.HeroID)
	if err != nil {
		return nil, err
	}
	stage, ok := cat.Stage(req.StageID)
	if !ok {
		return nil, ErrStageNotFound
	}

	heroDef, err := progression.CombatantFor(hero, cat.Abilities)
	if err != nil {
		return nil, err
	}
	enemyDef, err := progression.EnemyFor(stage.Enemy, cat.Abilities)
	if err != nil {
		return nil, err
	}

	seed := engine.SeedFromInt(int64(hero.BattleCount + 1))
	if req.Seed != nil {
		seed = *req.Seed
	}
	res, err := engine.Simulate(heroDef, enemyDef, seed, engine.Options{MaxRounds: opts.MaxRounds})
	if err != nil {
		return nil, err
	}

	out := &StageOutcome{Hero: hero}
	hero.BattleCount++
	won := res.WinnerID == hero.HeroUUID
	if won {
		out.Rewards = progression.StageRewards(stage.Reward, hero.Level)
		state, summary := progression.ApplyExperience(progression.State{
			Level:      hero.Level,
			Exp:        hero.Exp,
			Attributes: hero.Attributes,
		}, out.Rewards.Exp)
		hero.Level, hero.Exp, hero.Attributes = state.Level, state.Exp, state.Attributes
		hero.Silver += out.Rewards.Silver
		hero.Wins++
		out.LevelUp = summary
	} else {
		out.LevelUp = progression.LevelUpSummary{ExpRemaining: hero.Exp, NewLevel: hero.Level}
	}

	rec := &game.BattleRecord{
		StageID:      stage.ID,
		Seed:         res.Seed,
		Won:          won,
		Reason:       res.Reason,
		Rounds:       res.Rounds,
		ExpGained:    out.Rewards.Exp,
		SilverGained: out.Rewards.Silver,
		LevelsGained: out.LevelUp.LevelsGained,
		Result:       *res,
	}
	if err := repo.RecordBattle(hero, rec, opts.HistoryLimit); err != nil {
		return nil, fmt.Errorf("record battle: %w", err)
	}
	out.Battle = rec

	logging.Info("stage battle finished", logging.Fields{
		constants.LogFieldHeroID:   hero.HeroUUID,
		constants.LogFieldStageID:  stage.ID,
		constants.LogFieldBattleID: rec.ID,
		constants.LogFieldSeed:     res.Seed,
		constants.LogFieldWinner:   res.WinnerID,
		constants.LogFieldReason:   string(res.Reason),
		constants.LogFieldRounds:   res.Rounds,
	})
	return out, nil
}
