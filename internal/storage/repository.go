package storage

import (
	"errors"

	"github.com/ericogr/lingjing-idle/internal/game"
)

// ErrNotFound is returned when a hero or battle does not exist.
var ErrNotFound = errors.New("record not found")

type Repository interface {
	CreateHero(h *game.Hero) error
	GetHeroByUUID(uuid string) (*game.Hero, error)
	UpdateHero(h *game.Hero) error

	// AppendBattle stores rec and drops the hero's oldest records so at
	// most limit remain.
	AppendBattle(rec *game.BattleRecord, limit int) error
	// RecordBattle saves the hero and appends rec in one transaction.
	RecordBattle(h *game.Hero, rec *game.BattleRecord, limit int) error
	// ListBattles returns the most recent battles, newest first, without
	// their full result.
	ListBattles(heroID uint, limit int) ([]game.BattleRecord, error)
	GetBattle(heroID, battleID uint) (*game.BattleRecord, error)
}
