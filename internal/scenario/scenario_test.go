package scenario

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"planets-core/internal/shared/errors"
	"planets-core/internal/spatial"
)

func writeScenario(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultScenario(t *testing.T) {
	s := Default()

	assert.Equal(t, "classic", s.Name)
	assert.Equal(t, 150, s.Map.Width)
	assert.Equal(t, 150, s.Map.Height)
	require.Len(t, s.Players, 2)
	assert.Equal(t, "Aaron", s.Players[0].Name)
	assert.Equal(t, "Peter", s.Players[1].Name)
	assert.Equal(t, 10, s.Rules.PlanetCount)
	assert.Equal(t, 10, s.Rules.MinDistance)
	require.NoError(t, s.Validate())
}

func TestLoad(t *testing.T) {
	path := writeScenario(t, `
name: skirmish
map:
  width: 200
  height: 120
players:
  - name: Aaron
  - name: Peter
  - name: Mary
rules:
  planet_count: 7
  min_distance: 14
  size_aware_distance: true
seed: 99
`)

	s, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "skirmish", s.Name)
	assert.Equal(t, MapSpec{Width: 200, Height: 120}, s.Map)
	assert.Len(t, s.Players, 3)
	assert.Equal(t, RulesSpec{PlanetCount: 7, MinDistance: 14, SizeAwareDistance: true}, s.Rules)
	assert.Equal(t, int64(99), s.Seed)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read scenario file")
}

func TestLoadMalformedYAML(t *testing.T) {
	path := writeScenario(t, "map: [not a mapping")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse scenario file")
}

func TestLoadInvalidScenario(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name: "zero size map",
			content: `
map:
  width: 0
  height: 100
`,
		},
		{
			name: "negative planet count",
			content: `
map:
  width: 100
  height: 100
rules:
  planet_count: -2
`,
		},
		{
			name: "negative min distance",
			content: `
map:
  width: 100
  height: 100
rules:
  min_distance: -1
`,
		},
		{
			name: "unnamed player",
			content: `
map:
  width: 100
  height: 100
players:
  - name: Aaron
  - name: ""
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeScenario(t, tt.content))
			require.Error(t, err)
			assert.Equal(t, errors.ErrorTypeValidation, errors.GetType(err))
		})
	}
}

func TestUniverseConfig(t *testing.T) {
	s := &Scenario{
		Name: "duel",
		Map:  MapSpec{Width: 80, Height: 60},
		Players: []PlayerSpec{
			{Name: "Aaron"},
			{Name: "Peter"},
		},
		Rules: RulesSpec{PlanetCount: 4, MinDistance: 9, SizeAwareDistance: true},
		Seed:  31,
	}

	cfg := s.UniverseConfig()

	assert.Equal(t, spatial.NewTableau(spatial.Coordinate{X: 80, Y: 60}), cfg.Tableau)
	require.Len(t, cfg.Players, 2)
	assert.Equal(t, "Aaron", cfg.Players[0].Name())
	assert.Equal(t, "Peter", cfg.Players[1].Name())
	assert.Equal(t, 4, cfg.PlanetCount)
	assert.Equal(t, 9, cfg.MinDistance)
	assert.True(t, cfg.SizeAwareDistance)
	assert.Equal(t, int64(31), cfg.Seed)
}

func TestUniverseConfigCreatesFreshPlayers(t *testing.T) {
	s := Default()

	a := s.UniverseConfig()
	b := s.UniverseConfig()

	assert.NotSame(t, a.Players[0], b.Players[0],
		"each build gets its own players so one scenario can seed many universes")
}
