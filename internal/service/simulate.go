package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/ericogr/lingjing-idle/internal/engine"
	"github.com/ericogr/lingjing-idle/internal/game"
)

var ErrBatchSize = errors.New("batch count out of range")

// Simulate runs one ad-hoc battle. A nil seed selects the default seed
// derived from the combatant ids.
func Simulate(left, right game.CombatantDefinition, seed *engine.Seed, maxRounds int) (*game.BattleResult, error) {
	s := engine.DefaultSeed(left.ID, right.ID)
	if seed != nil {
		s = *seed
	}
	return engine.Simulate(left, right, s, engine.Options{MaxRounds: maxRounds})
}

type BatchRequest struct {
	Left, Right game.CombatantDefinition
	// StartSeed is the integer seed of the first battle; battle i uses
	// StartSeed+i.
	StartSeed int64
	Count     int
	MaxRounds int
}

type BatchOptions struct {
	// Limit caps concurrently running simulations.
	Limit int
	// MaxCount rejects larger batches.
	MaxCount int
}

// BatchSummary aggregates a batch of battles.
type BatchSummary struct {
	Count         int     `json:"count"`
	StartSeed     int64   `json:"start_seed"`
	LeftWins      int     `json:"left_wins"`
	RightWins     int     `json:"right_wins"`
	Knockouts     int     `json:"knockouts"`
	MaxRoundsEnds int     `json:"max_rounds_ends"`
	AverageRounds float64 `json:"average_rounds"`
	LeftWinRate   float64 `json:"left_win_rate"`
}

// SimulateBatch runs Count battles with consecutive integer seeds across a
// bounded pool of goroutines. The summary does not depend on scheduling.
func SimulateBatch(ctx context.Context, req BatchRequest, opts BatchOptions) (*BatchSummary, error) {
	if req.Count < 1 || (opts.MaxCount > 0 && req.Count > opts.MaxCount) {
		return nil, fmt.Errorf("%w: %d", ErrBatchSize, req.Count)
	}
	if err := engine.Validate(req.Left, req.Right, engine.Options{MaxRounds: req.MaxRounds}); err != nil {
		return nil, err
	}

	results := make([]*game.BattleResult, req.Count)
	g, ctx := errgroup.WithContext(ctx)
	if opts.Limit > 0 {
		g.SetLimit(opts.Limit)
	}
	for i := 0; i < req.Count; i++ {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			seed := engine.SeedFromInt(req.StartSeed + int64(i))
			res, err := engine.Simulate(req.Left, req.Right, seed, engine.Options{MaxRounds: req.MaxRounds})
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sum := &BatchSummary{Count: req.Count, StartSeed: req.StartSeed}
	totalRounds := 0
	for _, res := range results {
		if res.WinnerID == req.Left.ID {
			sum.LeftWins++
		} else {
			sum.RightWins++
		}
		if res.Reason == game.ReasonKnockout {
			sum.Knockouts++
		} else {
			sum.MaxRoundsEnds++
		}
		totalRounds += res.Rounds
	}
	sum.AverageRounds = float64(totalRounds) / float64(req.Count)
	sum.LeftWinRate = float64(sum.LeftWins) / float64(req.Count)
	return sum, nil
}
