package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ericogr/lingjing-idle/internal/engine"
	"github.com/ericogr/lingjing-idle/internal/game"
)

//go:embed default_catalog.yaml
var defaultCatalog []byte

type rawCatalog struct {
	StarterAbilities []string                 `yaml:"starter_abilities"`
	Abilities        []game.AbilityDefinition `yaml:"abilities"`
	Stages           []game.Stage             `yaml:"stages"`
}

// Catalog is the game content: abilities, the hero starter kit and stages.
type Catalog struct {
	Abilities        engine.AbilityCatalog
	StarterAbilities []string
	Stages           []game.Stage
}

// Stage looks a stage up by id.
func (c *Catalog) Stage(id int) (game.Stage, bool) {
	for _, s := range c.Stages {
		if s.ID == id {
			return s, true
		}
	}
	return game.Stage{}, false
}

// LoadCatalog reads the YAML catalog at path. An empty path returns the
// built-in catalog.
func LoadCatalog(path string) (*Catalog, error) {
	if path == "" {
		return DefaultCatalog()
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file %s: %w", path, err)
	}
	return ParseCatalog(b, path)
}

func DefaultCatalog() (*Catalog, error) {
	return ParseCatalog(defaultCatalog, "default_catalog.yaml")
}

// ParseCatalog decodes and cross-validates a catalog. source only labels
// error messages.
func ParseCatalog(data []byte, source string) (*Catalog, error) {
	var rc rawCatalog
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&rc); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file %s: %w", source, err)
	}
	if len(rc.Abilities) == 0 {
		return nil, fmt.Errorf("catalog file %s: abilities is empty", source)
	}
	if len(rc.Stages) == 0 {
		return nil, fmt.Errorf("catalog file %s: stages is empty", source)
	}

	abilities, err := engine.NewAbilityCatalog(rc.Abilities)
	if err != nil {
		return nil, fmt.Errorf("catalog file %s: %w", source, err)
	}
	if _, err := abilities.Resolve("starter_abilities", rc.StarterAbilities); err != nil {
		return nil, fmt.Errorf("catalog file %s: %w", source, err)
	}

	stageIDs := make(map[int]struct{}, len(rc.Stages))
	for _, s := range rc.Stages {
		if err := validateStage(s, abilities); err != nil {
			return nil, fmt.Errorf("catalog file %s: stage %d: %w", source, s.ID, err)
		}
		if _, dup := stageIDs[s.ID]; dup {
			return nil, fmt.Errorf("catalog file %s: duplicate stage id %d", source, s.ID)
		}
		stageIDs[s.ID] = struct{}{}
	}

	stages := append([]game.Stage(nil), rc.Stages...)
	sort.SliceStable(stages, func(i, j int) bool { return stages[i].ID < stages[j].ID })
	return &Catalog{
		Abilities:        abilities,
		StarterAbilities: rc.StarterAbilities,
		Stages:           stages,
	}, nil
}

func validateStage(s game.Stage, abilities engine.AbilityCatalog) error {
	switch {
	case s.ID <= 0:
		return errors.New("id must be positive")
	case strings.TrimSpace(s.Name) == "":
		return errors.New("missing 'name'")
	case strings.TrimSpace(s.Enemy.ID) == "":
		return errors.New("enemy missing 'id'")
	case s.Enemy.Level < 1:
		return errors.New("enemy level must be at least 1")
	}
	a := s.Enemy.Attributes
	if a.Strength < 0 || a.Vitality < 0 || a.Agility < 0 || a.Wisdom < 0 {
		return errors.New("enemy attributes must not be negative")
	}
	r := s.Reward
	if r.BaseExp < 0 || r.ExpPerLevel < 0 || r.BaseSilver < 0 || r.SilverPerLevel < 0 {
		return errors.New("reward values must not be negative")
	}
	if _, err := abilities.Resolve(s.Enemy.ID, s.Enemy.AbilityIDs); err != nil {
		return err
	}
	return nil
}
