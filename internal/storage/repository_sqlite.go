package storage

import (
	"errors"

	"gorm.io/gorm"

	"github.com/ericogr/lingjing-idle/internal/game"
)

type sqliteRepository struct {
	db *gorm.DB
}

func NewSQLiteRepository(db *gorm.DB) Repository {
	return &sqliteRepository{db: db}
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

func (r *sqliteRepository) CreateHero(h *game.Hero) error {
	return r.db.Create(h).Error
}

func (r *sqliteRepository) GetHeroByUUID(uuid string) (*game.Hero, error) {
	var h game.Hero
	if err := r.db.Where("hero_uuid = ?", uuid).First(&h).Error; err != nil {
		return nil, notFound(err)
	}
	return &h, nil
}

func (r *sqliteRepository) UpdateHero(h *game.Hero) error {
	return r.db.Save(h).Error
}

func (r *sqliteRepository) AppendBattle(rec *game.BattleRecord, limit int) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return appendBattle(tx, rec, limit)
	})
}

func (r *sqliteRepository) RecordBattle(h *game.Hero, rec *game.BattleRecord, limit int) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(h).Error; err != nil {
			return err
		}
		rec.HeroID = h.ID
		return appendBattle(tx, rec, limit)
	})
}

func appendBattle(tx *gorm.DB, rec *game.BattleRecord, limit int) error {
	if err := tx.Create(rec).Error; err != nil {
		return err
	}
	if limit <= 0 {
		return nil
	}
	var ids []uint
	if err := tx.Model(&game.BattleRecord{}).
		Where("hero_id = ?", rec.HeroID).
		Order("id DESC").
		Pluck("id", &ids).Error; err != nil {
		return err
	}
	if len(ids) <= limit {
		return nil
	}
	return tx.Unscoped().Delete(&game.BattleRecord{}, ids[limit:]).Error
}

func (r *sqliteRepository) ListBattles(heroID uint, limit int) ([]game.BattleRecord, error) {
	q := r.db.Omit("result").Where("hero_id = ?", heroID).Order("id DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	var out []game.BattleRecord
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *sqliteRepository) GetBattle(heroID, battleID uint) (*game.BattleRecord, error) {
	var rec game.BattleRecord
	if err := r.db.Where("hero_id = ?", heroID).First(&rec, battleID).Error; err != nil {
		return nil, notFound(err)
	}
	return &rec, nil
}
