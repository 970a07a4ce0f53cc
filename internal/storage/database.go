package storage

import (
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/ericogr/lingjing-idle/internal/game"
	"github.com/ericogr/lingjing-idle/internal/logging"
)

// OpenAndMigrate opens the sqlite database and brings the schema up to date.
func OpenAndMigrate(dataSourceName string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dataSourceName), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&game.Hero{}, &game.BattleRecord{}); err != nil {
		return nil, err
	}
	// History is always read newest first per hero.
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_battle_history_hero_recent ON battle_history(hero_id, id DESC);").Error; err != nil {
		return nil, err
	}
	logging.Info("database ready", logging.Fields{"dsn": dataSourceName})
	return db, nil
}
