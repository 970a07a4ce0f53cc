package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericogr/lingjing-idle/internal/engine"
)

func TestDefaultCatalog(t *testing.T) {
	c, err := DefaultCatalog()
	require.NoError(t, err)

	assert.Equal(t, []string{"lingyan-slash", "spring-breeze", "piercing-palm"}, c.StarterAbilities)
	require.Len(t, c.Stages, 3)
	s, ok := c.Stage(2)
	require.True(t, ok)
	assert.Equal(t, "stage-2-enemy", s.Enemy.ID)
	assert.Equal(t, 110, s.Reward.BaseExp)
	assert.Equal(t, []string{"staff-spin"}, s.Enemy.AbilityIDs)

	_, ok = c.Stage(99)
	assert.False(t, ok)

	heal := c.Abilities["spring-breeze"]
	assert.Equal(t, 0.5, heal.HealFactor)
	assert.Equal(t, 3, heal.Cooldown)
}

func TestLoadCatalog_EmptyPathIsDefault(t *testing.T) {
	c, err := LoadCatalog("")
	require.NoError(t, err)
	assert.Len(t, c.Abilities, 6)
}

const minimalStage = `
stages:
  - id: 1
    name: Yard
    enemy: {id: dummy, name: Dummy, level: 1, attributes: {str: 1, vit: 1, agi: 1, wis: 1}, abilities: [jab]}
    reward: {base_exp: 1, exp_per_level: 1, base_silver: 1, silver_per_level: 1}
`

func TestParseCatalog_CrossValidation(t *testing.T) {
	cases := []struct {
		name string
		body string
		want string
	}{
		{"no abilities", "abilities: []\n" + minimalStage, "abilities is empty"},
		{"no stages", "abilities:\n  - {id: jab, name: Jab}\nstages: []\n", "stages is empty"},
		{"unknown field", "abilities:\n  - {id: jab, name: Jab, power: 3}\n" + minimalStage, "power"},
		{"duplicate ability", "abilities:\n  - {id: jab, name: Jab}\n  - {id: jab, name: Jab}\n" + minimalStage, "duplicates ability"},
		{"unknown starter", "starter_abilities: [kick]\nabilities:\n  - {id: jab, name: Jab}\n" + minimalStage, `unknown ability "kick"`},
		{"unknown enemy ability", "abilities:\n  - {id: kick, name: Kick}\n" + minimalStage, `unknown ability "jab"`},
		{"duplicate stage", "abilities:\n  - {id: jab, name: Jab}\n" + minimalStage + minimalStage[len("\nstages:\n"):], "duplicate stage id 1"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseCatalog([]byte(tc.body), "test.yaml")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
			assert.Contains(t, err.Error(), "test.yaml")
		})
	}
}

func TestParseCatalog_ValidationErrorsUnwrap(t *testing.T) {
	_, err := ParseCatalog([]byte("abilities:\n  - {id: jab, name: Jab, cooldown: -1}\n"+minimalStage), "x")
	assert.True(t, errors.Is(err, engine.ErrInvalidDefinition))
}
