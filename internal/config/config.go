package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
)

type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Battle   BattleConfig   `toml:"battle"`
	Playback PlaybackConfig `toml:"playback"`
	Logging  LoggingConfig  `toml:"logging"`
	// CatalogPath points at the YAML content catalog. Empty selects the
	// built-in catalog.
	CatalogPath string `toml:"catalog_path"`
}

type ServerConfig struct {
	Address string `toml:"address"`
}

type DatabaseConfig struct {
	Path string `toml:"path"` // sqlite file, ":memory:" for tests
}

type BattleConfig struct {
	MaxRounds      int `toml:"max_rounds"`
	MaxRoundsLimit int `toml:"max_rounds_limit"` // highest max_rounds a request may ask for
	HistoryLimit   int `toml:"history_limit"`    // battles kept per hero
	BatchLimit     int `toml:"batch_limit"`      // concurrent simulations per batch request
	MaxBatchSize   int `toml:"max_batch_size"`
}

type PlaybackConfig struct {
	TurnDelay  time.Duration `toml:"turn_delay"`  // attack entries at 1x
	SkillDelay time.Duration `toml:"skill_delay"` // skill callouts at 1x
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

// envOverrides are applied on top of the file.
type envOverrides struct {
	ConfigPath  string `env:"LINGJING_CONFIG"`
	Database    string `env:"LINGJING_DB"`
	Address     string `env:"LINGJING_ADDR"`
	LogLevel    string `env:"LINGJING_LOG_LEVEL"`
	CatalogPath string `env:"LINGJING_CATALOG"`
}

// Load reads a TOML file on top of the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := Defaults()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Resolve builds the effective configuration: path (or LINGJING_CONFIG when
// path is empty) is loaded if set, then environment overrides are applied.
func Resolve(path string) (*Config, error) {
	var ov envOverrides
	if err := env.Parse(&ov); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if path == "" {
		path = ov.ConfigPath
	}

	cfg := Defaults()
	if path != "" {
		loaded, err := Load(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if ov.Database != "" {
		cfg.Database.Path = ov.Database
	}
	if ov.Address != "" {
		cfg.Server.Address = ov.Address
	}
	if ov.LogLevel != "" {
		cfg.Logging.Level = ov.LogLevel
	}
	if ov.CatalogPath != "" {
		cfg.CatalogPath = ov.CatalogPath
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects values the server cannot run with.
func (c *Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.Server.Address) == "" {
		errs = append(errs, errors.New("server.address is required"))
	}
	if strings.TrimSpace(c.Database.Path) == "" {
		errs = append(errs, errors.New("database.path is required"))
	}
	if c.Battle.MaxRounds <= 0 {
		errs = append(errs, errors.New("battle.max_rounds must be positive"))
	}
	if c.Battle.MaxRoundsLimit < c.Battle.MaxRounds {
		errs = append(errs, errors.New("battle.max_rounds_limit must be at least battle.max_rounds"))
	}
	if c.Battle.HistoryLimit <= 0 {
		errs = append(errs, errors.New("battle.history_limit must be positive"))
	}
	if c.Battle.BatchLimit <= 0 {
		errs = append(errs, errors.New("battle.batch_limit must be positive"))
	}
	if c.Battle.MaxBatchSize <= 0 {
		errs = append(errs, errors.New("battle.max_batch_size must be positive"))
	}
	if c.Playback.TurnDelay < 0 || c.Playback.SkillDelay < 0 {
		errs = append(errs, errors.New("playback delays must not be negative"))
	}
	return errors.Join(errs...)
}

func Defaults() *Config {
	return &Config{
		Server:   ServerConfig{Address: ":8080"},
		Database: DatabaseConfig{Path: "lingjing.db"},
		Battle: BattleConfig{
			MaxRounds:      20,
			MaxRoundsLimit: 200,
			HistoryLimit:   20,
			BatchLimit:     8,
			MaxBatchSize:   1000,
		},
		Playback: PlaybackConfig{
			TurnDelay:  2 * time.Second,
			SkillDelay: 300 * time.Millisecond,
		},
		Logging: LoggingConfig{Level: "info", Format: "json"},
	}
}
