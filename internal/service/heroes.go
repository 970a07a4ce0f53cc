package service

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/ericogr/lingjing-idle/internal/config"
	"github.com/ericogr/lingjing-idle/internal/constants"
	"github.com/ericogr/lingjing-idle/internal/game"
	"github.com/ericogr/lingjing-idle/internal/keys"
	"github.com/ericogr/lingjing-idle/internal/logging"
	"github.com/ericogr/lingjing-idle/internal/progression"
	"github.com/ericogr/lingjing-idle/internal/storage"
)

// HeroRepo is the minimal repository interface required by the hero
// operations. Using a small interface simplifies testing.
type HeroRepo interface {
	CreateHero(h *game.Hero) error
	GetHeroByUUID(uuid string) (*game.Hero, error)
	RecordBattle(h *game.Hero, rec *game.BattleRecord, limit int) error
	ListBattles(heroID uint, limit int) ([]game.BattleRecord, error)
	GetBattle(heroID, battleID uint) (*game.BattleRecord, error)
}

const MaxHeroNameLength = 32

var (
	ErrHeroNotFound   = errors.New("hero not found")
	ErrStageNotFound  = errors.New("stage not found")
	ErrBattleNotFound = errors.New("battle not found")
	ErrInvalidName    = errors.New("hero name must be 1 to 32 characters")
)

// CreateHero stores a new level 1 hero carrying the catalog's starter kit.
func CreateHero(repo HeroRepo, cat *config.Catalog, name string) (*game.Hero, error) {
	name = keys.NormalizeName(name)
	if name == "" || utf8.RuneCountInString(name) > MaxHeroNameLength {
		return nil, ErrInvalidName
	}
	h := progression.NewHero(name, cat.StarterAbilities)
	h.HeroUUID = uuid.NewString()
	if err := repo.CreateHero(h); err != nil {
		return nil, fmt.Errorf("create hero: %w", err)
	}
	logging.Info("hero created", logging.Fields{constants.LogFieldHeroID: h.HeroUUID})
	return h, nil
}

// GetHero loads a hero by its public id.
func GetHero(repo HeroRepo, heroID string) (*game.Hero, error) {
	h, err := repo.GetHeroByUUID(heroID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrHeroNotFound
		}
		return nil, err
	}
	return h, nil
}

// ListBattles returns the hero's stored history, newest first.
func ListBattles(repo HeroRepo, heroID string, limit int) ([]game.BattleRecord, error) {
	h, err := GetHero(repo, heroID)
	if err != nil {
		return nil, err
	}
	return repo.ListBattles(h.ID, limit)
}

// GetBattle returns one stored battle including its full result.
func GetBattle(repo HeroRepo, heroID string, battleID uint) (*game.BattleRecord, error) {
	h, err := GetHero(repo, heroID)
	if err != nil {
		return nil, err
	}
	rec, err := repo.GetBattle(h.ID, battleID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrBattleNotFound
		}
		return nil, err
	}
	return rec, nil
}

// HeroStats returns the hero's derived battle stats and the experience it
// still needs for the next level (0 at the cap).
func HeroStats(h *game.Hero) (game.Stats, int) {
	need, ok := progression.ExpToNext(h.Level)
	if ok {
		need -= h.Exp
	}
	return progression.StatsFor(h.Level, h.Attributes), need
}
