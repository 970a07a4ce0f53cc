package main

import (
	"github.com/ericogr/lingjing-idle/internal/config"
	"github.com/ericogr/lingjing-idle/internal/constants"
	"github.com/ericogr/lingjing-idle/internal/logging"
	"github.com/ericogr/lingjing-idle/internal/storage"
)

func loadConfigOrExit(path string) *config.Config {
	cfg, err := config.Resolve(path)
	if err != nil {
		logging.Fatal("Missing or invalid configuration", err, logging.Fields{"config_path": path})
	}
	return cfg
}

func loadCatalogOrExit(path string) *config.Catalog {
	cat, err := config.LoadCatalog(path)
	if err != nil {
		logging.Fatal("Missing or invalid content catalog", err, logging.Fields{constants.LogFieldSource: path})
	}
	logging.Info("Catalog loaded", logging.Fields{
		"abilities": len(cat.Abilities),
		"stages":    len(cat.Stages),
	})
	return cat
}

func createRepositoryOrExit(dbPath string) storage.Repository {
	db, err := storage.OpenAndMigrate(dbPath)
	if err != nil {
		logging.Fatal("Failed to initialize database", err, logging.Fields{"db_path": dbPath})
	}
	return storage.NewSQLiteRepository(db)
}
