package service

import (
	"errors"
	"sync"
	"testing"

	"github.com/ericogr/lingjing-idle/internal/engine"
)

var testOpts = RunStageOptions{MaxRounds: 20, HistoryLimit: 3}

func TestRunStage_WinGrantsRewardsAndLevels(t *testing.T) {
	repo := newFakeRepo()
	cat := testCatalog(t)
	h, _ := CreateHero(repo, cat, "Lin")

	out, err := RunStage(repo, cat, RunStageRequest{HeroID: h.HeroUUID, StageID: 1}, testOpts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.Battle.Won || out.Battle.Result.WinnerID != h.HeroUUID {
		t.Fatalf("expected the hero to beat the dummy: %+v", out.Battle)
	}
	if out.Battle.Seed != 1 {
		t.Fatalf("first incrementing seed must be 1, got %d", out.Battle.Seed)
	}
	if out.Battle.Rounds != 4 {
		t.Fatalf("expected knockout in round 4, got %d", out.Battle.Rounds)
	}
	// 100 + 20*1 exp is exactly the level 1 requirement.
	if out.Rewards.Exp != 120 || out.Rewards.Silver != 15 {
		t.Fatalf("unexpected rewards %+v", out.Rewards)
	}
	if out.LevelUp.LevelsGained != 1 || out.Hero.Level != 2 || out.Hero.Exp != 0 {
		t.Fatalf("expected one level-up, got %+v hero level %d exp %d", out.LevelUp, out.Hero.Level, out.Hero.Exp)
	}
	stored, _ := GetHero(repo, h.HeroUUID)
	if stored.Silver != 15 || stored.Wins != 1 || stored.BattleCount != 1 || stored.Level != 2 {
		t.Fatalf("hero not persisted: %+v", stored)
	}
	if stored.Attributes.Strength != 7 || stored.Attributes.Vitality != 8 {
		t.Fatalf("level 2 growth not applied: %+v", stored.Attributes)
	}
}

func TestRunStage_LossGrantsNothing(t *testing.T) {
	repo := newFakeRepo()
	cat := testCatalog(t)
	h, _ := CreateHero(repo, cat, "Lin")

	out, err := RunStage(repo, cat, RunStageRequest{HeroID: h.HeroUUID, StageID: 2}, testOpts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Battle.Won || out.Battle.Result.WinnerID != "boss" {
		t.Fatalf("expected the boss to win: %+v", out.Battle)
	}
	if out.Rewards.Exp != 0 || out.Hero.Exp != 0 || out.Hero.Silver != 0 || out.Hero.Level != 1 {
		t.Fatalf("a loss must not pay out: %+v %+v", out.Rewards, out.Hero)
	}
	if out.Hero.BattleCount != 1 || out.Hero.Wins != 0 {
		t.Fatalf("expected counters 1/0, got %d/%d", out.Hero.BattleCount, out.Hero.Wins)
	}
}

func TestRunStage_IncrementingSeedAndHistoryLimit(t *testing.T) {
	repo := newFakeRepo()
	cat := testCatalog(t)
	h, _ := CreateHero(repo, cat, "Lin")

	for i := 1; i <= 5; i++ {
		out, err := RunStage(repo, cat, RunStageRequest{HeroID: h.HeroUUID, StageID: 2}, testOpts)
		if err != nil {
			t.Fatalf("run %d: %v", i, err)
		}
		if out.Battle.Seed != uint32(i) {
			t.Fatalf("run %d: expected seed %d, got %d", i, i, out.Battle.Seed)
		}
	}
	list, err := ListBattles(repo, h.HeroUUID, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(list) != testOpts.HistoryLimit {
		t.Fatalf("expected %d stored battles, got %d", testOpts.HistoryLimit, len(list))
	}
	if list[0].Seed != 5 || list[2].Seed != 3 {
		t.Fatalf("expected newest first, got seeds %d..%d", list[0].Seed, list[2].Seed)
	}

	rec, err := GetBattle(repo, h.HeroUUID, list[0].ID)
	if err != nil || rec.Result.Seed != 5 {
		t.Fatalf("expected stored result, got %+v %v", rec, err)
	}
}

func TestRunStage_ExplicitSeedIsReproducible(t *testing.T) {
	cat := testCatalog(t)
	seed := engine.SeedFromString("fixed")

	var rounds []int
	for i := 0; i < 2; i++ {
		repo := newFakeRepo()
		h, _ := CreateHero(repo, cat, "Lin")
		out, err := RunStage(repo, cat, RunStageRequest{HeroID: h.HeroUUID, StageID: 1, Seed: &seed}, testOpts)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Battle.Seed != uint32(seed) {
			t.Fatalf("expected explicit seed, got %d", out.Battle.Seed)
		}
		rounds = append(rounds, out.Battle.Rounds)
	}
	if rounds[0] != 3 || rounds[1] != 3 {
		t.Fatalf("expected the same 3-round battle twice, got %v", rounds)
	}
}

func TestRunStage_Errors(t *testing.T) {
	repo := newFakeRepo()
	cat := testCatalog(t)
	h, _ := CreateHero(repo, cat, "Lin")

	if _, err := RunStage(repo, cat, RunStageRequest{HeroID: "nobody", StageID: 1}, testOpts); !errors.Is(err, ErrHeroNotFound) {
		t.Fatalf("expected ErrHeroNotFound, got %v", err)
	}
	if _, err := RunStage(repo, cat, RunStageRequest{HeroID: h.HeroUUID, StageID: 42}, testOpts); !errors.Is(err, ErrStageNotFound) {
		t.Fatalf("expected ErrStageNotFound, got %v", err)
	}

	repo.recordErr = errors.New("disk full")
	if _, err := RunStage(repo, cat, RunStageRequest{HeroID: h.HeroUUID, StageID: 1}, testOpts); err == nil {
		t.Fatalf("expected the storage error to surface")
	}
	stored, _ := GetHero(repo, h.HeroUUID)
	if stored.BattleCount != 0 {
		t.Fatalf("failed run must not be persisted, got count %d", stored.BattleCount)
	}
}

func TestRunStage_ConcurrentRunsAreSerialized(t *testing.T) {
	repo := newFakeRepo()
	cat := testCatalog(t)
	h, _ := CreateHero(repo, cat, "Lin")

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := RunStage(repo, cat, RunStageRequest{HeroID: h.HeroUUID, StageID: 2}, testOpts); err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	stored, _ := GetHero(repo, h.HeroUUID)
	if stored.BattleCount != repo.records {
		t.Fatalf("lost update: battle count %d but %d battles recorded", stored.BattleCount, repo.records)
	}
	if repo.records < 1 || repo.records > 8 {
		t.Fatalf("unexpected number of runs %d", repo.records)
	}
}
