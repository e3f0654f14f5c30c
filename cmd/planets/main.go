package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"

	"planets-core/internal/planet"
	"planets-core/internal/scenario"
	"planets-core/internal/shared/config"
	"planets-core/internal/shared/logger"
	"planets-core/internal/universe"
)

func main() {
	if err := config.Init(); err != nil {
		log.Fatal("Failed to initialize configuration:", err)
	}
	logger.Init()

	s, err := resolveScenario(config.GlobalConfig)
	if err != nil {
		slog.Error("Failed to load scenario", "error", err)
		os.Exit(1)
	}
	fmt.Printf("Scenario: %s (%d players, %d free planets)\n", s.Name, len(s.Players), s.Rules.PlanetCount)

	u, err := universe.New(s.UniverseConfig(), slog.Default())
	if err != nil {
		slog.Error("Failed to generate universe", "error", err)
		os.Exit(1)
	}
	fmt.Printf("Universe ready, seed %d\n\n", u.Seed())

	fmt.Println("Player planets:")
	for _, p := range u.HomePlanets() {
		fmt.Println(" ", p)
	}

	fmt.Println("Non-player planets:")
	for _, p := range u.FreePlanets() {
		fmt.Println(" ", p)
	}

	players := u.Players()
	if len(players) < 2 {
		return
	}

	// A tiny conquest: watch the first player's home change hands.
	first, second := players[0], players[1]
	home := first.HomePlanet()

	fmt.Printf("\n%s's home planet: %s\n", first.Name(), home)

	cancel := home.Subscribe(func(s planet.Snapshot) {
		owner := "nobody"
		if s.Owner != nil {
			owner = s.Owner.Name()
		}
		fmt.Printf("  [watch] %s is owned by %s\n", s.Name, owner)
	})
	defer cancel()

	fmt.Printf("%s conquers %s:\n", second.Name(), home.Name())
	home.SetOwner(second)
}

func resolveScenario(cfg *config.Config) (*scenario.Scenario, error) {
	if cfg.Scenario.Path != "" {
		return scenario.Load(cfg.Scenario.Path)
	}
	return scenarioFromEnv(cfg.Universe), nil
}

// scenarioFromEnv assembles a scenario from the env-driven universe settings
// used when no scenario file is configured.
func scenarioFromEnv(uc config.UniverseConfig) *scenario.Scenario {
	players := make([]scenario.PlayerSpec, 0, len(uc.Players))
	for _, name := range uc.Players {
		players = append(players, scenario.PlayerSpec{Name: name})
	}

	return &scenario.Scenario{
		Name:    "environment",
		Map:     scenario.MapSpec{Width: uc.Width, Height: uc.Height},
		Players: players,
		Rules: scenario.RulesSpec{
			PlanetCount:       uc.PlanetCount,
			MinDistance:       uc.MinDistance,
			SizeAwareDistance: uc.SizeAwareDistance,
		},
		Seed: uc.Seed,
	}
}
