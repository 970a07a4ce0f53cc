package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/ericogr/lingjing-idle/internal/api"
	"github.com/ericogr/lingjing-idle/internal/constants"
	"github.com/ericogr/lingjing-idle/internal/logging"
	"github.com/ericogr/lingjing-idle/internal/version"
)

func main() {
	configPath := flag.String("config", "", "path to a TOML config file (default: LINGJING_CONFIG or built-in defaults)")
	flag.Parse()

	cfg := loadConfigOrExit(*configPath)
	if err := logging.Init(cfg.Logging.Level, cfg.Logging.Format); err != nil {
		logging.Fatal("Invalid logging configuration", err, nil)
	}
	defer logging.Sync()
	logging.Info("Starting lingjing-idle", logging.Fields{"version": version.Get().String()})

	catalog := loadCatalogOrExit(cfg.CatalogPath)
	repo := createRepositoryOrExit(cfg.Database.Path)
	handler := api.NewHandler(repo, catalog, cfg.Battle, cfg.Playback)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := serve(ctx, cfg.Server.Address, api.NewRouter(handler)); err != nil {
		logging.Fatal("Failed to start server", err, logging.Fields{constants.LogFieldAddr: cfg.Server.Address})
	}
	logging.Info("Server stopped", nil)
}
