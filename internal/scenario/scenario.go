// Package scenario loads declarative game setups: the map, the roster and
// the generation rules, in a file format a designer can edit and replay.
package scenario

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"planets-core/internal/player"
	"planets-core/internal/shared/errors"
	"planets-core/internal/spatial"
	"planets-core/internal/universe"
)

// Scenario is one complete game setup. With a fixed seed a scenario file
// reproduces the exact same universe every time it is loaded.
type Scenario struct {
	Name    string       `yaml:"name"`
	Map     MapSpec      `yaml:"map"`
	Players []PlayerSpec `yaml:"players"`
	Rules   RulesSpec    `yaml:"rules"`
	Seed    int64        `yaml:"seed"`
}

// MapSpec is the playable area of the scenario.
type MapSpec struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// PlayerSpec is one roster entry.
type PlayerSpec struct {
	Name string `yaml:"name"`
}

// RulesSpec tunes planet generation.
type RulesSpec struct {
	PlanetCount       int  `yaml:"planet_count"`
	MinDistance       int  `yaml:"min_distance"`
	SizeAwareDistance bool `yaml:"size_aware_distance"`
}

// Default returns the classic two player setup on a 150x150 tableau with
// ten free planets.
func Default() *Scenario {
	return &Scenario{
		Name: "classic",
		Map:  MapSpec{Width: 150, Height: 150},
		Players: []PlayerSpec{
			{Name: "Aaron"},
			{Name: "Peter"},
		},
		Rules: RulesSpec{
			PlanetCount: 10,
			MinDistance: 10,
		},
	}
}

// Load reads and validates a scenario from a YAML file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse scenario file %s: %w", path, err)
	}

	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scenario %s: %w", path, err)
	}

	return &s, nil
}

// Validate rejects scenarios that cannot produce a universe.
func (s *Scenario) Validate() error {
	if s.Map.Width <= 0 || s.Map.Height <= 0 {
		return errors.Validationf("map must span a positive area, got %dx%d", s.Map.Width, s.Map.Height)
	}
	if s.Rules.PlanetCount < 0 {
		return errors.Validationf("planet count must not be negative, got %d", s.Rules.PlanetCount)
	}
	if s.Rules.MinDistance < 0 {
		return errors.Validationf("min distance must not be negative, got %d", s.Rules.MinDistance)
	}
	for i, p := range s.Players {
		if p.Name == "" {
			return errors.Validationf("player %d has an empty name", i+1)
		}
	}
	return nil
}

// UniverseConfig builds the universe configuration the scenario describes,
// creating one fresh player per roster entry.
func (s *Scenario) UniverseConfig() universe.Config {
	players := make([]*player.Player, 0, len(s.Players))
	for _, spec := range s.Players {
		players = append(players, player.New(spec.Name))
	}

	return universe.Config{
		Tableau:           spatial.NewTableau(spatial.Coordinate{X: s.Map.Width, Y: s.Map.Height}),
		Players:           players,
		PlanetCount:       s.Rules.PlanetCount,
		MinDistance:       s.Rules.MinDistance,
		SizeAwareDistance: s.Rules.SizeAwareDistance,
		Seed:              s.Seed,
	}
}
