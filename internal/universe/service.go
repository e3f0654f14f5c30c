package universe

import (
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/google/uuid"

	"planets-core/internal/planet"
	"planets-core/internal/player"
	"planets-core/internal/shared/errors"
	"planets-core/internal/spatial"
)

// Universe owns every planet of one game: a home planet per player placed
// first, then the requested number of free planets, all separated by the
// configured distance rule. Generation either completes fully or fails; a
// universe with only part of its planets is never handed out.
type Universe struct {
	tableau     spatial.Region
	rule        planet.DistanceRule
	sizes       []planet.Size
	players     []*player.Player
	homePlanets []*planet.Planet
	freePlanets []*planet.Planet
	byID        map[uuid.UUID]*planet.Planet
	rng         *rand.Rand
	seed        int64
	status      Status
	logger      *slog.Logger
}

// New generates a universe from the given configuration.
func New(config Config, logger *slog.Logger) (*Universe, error) {
	config = config.normalized()
	if err := config.validate(); err != nil {
		return nil, fmt.Errorf("invalid universe config: %w", err)
	}

	genLogger := logger.With(
		"component", "universe",
		"operation", "generate",
		"players", len(config.Players),
		"planet_count", config.PlanetCount,
		"min_distance", config.MinDistance,
		"seed", config.Seed,
	)
	genLogger.Debug("Starting universe generation")

	u := &Universe{
		tableau: config.Tableau,
		rule:    config.rule(),
		sizes:   config.Sizes,
		byID:    make(map[uuid.UUID]*planet.Planet),
		rng:     rand.New(rand.NewSource(config.Seed)),
		seed:    config.Seed,
		status:  StatusUninitialized,
		logger:  logger,
	}

	// Shuffle a copy so home-planet placement order is part of the seeded
	// outcome while the caller's slice stays untouched.
	u.players = make([]*player.Player, len(config.Players))
	copy(u.players, config.Players)
	u.rng.Shuffle(len(u.players), func(i, j int) {
		u.players[i], u.players[j] = u.players[j], u.players[i]
	})

	u.status = StatusPlacingHomePlanets
	for _, pl := range u.players {
		p, err := u.place([]planet.Size{config.HomeSize}, pl)
		if err != nil {
			return nil, fmt.Errorf("failed to place home planet for player %s: %w", pl.Name(), err)
		}
		u.homePlanets = append(u.homePlanets, p)
		u.byID[p.ID()] = p
	}

	u.status = StatusPlacingFreePlanets
	for i := 0; i < config.PlanetCount; i++ {
		p, err := u.place(u.sizes, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to place free planet %d of %d: %w", i+1, config.PlanetCount, err)
		}
		u.freePlanets = append(u.freePlanets, p)
		u.byID[p.ID()] = p
	}

	// Back-references go in only after every placement succeeded, so a
	// failed construction leaves the caller's players untouched and they
	// remain usable for another attempt.
	for i, pl := range u.players {
		if err := pl.AssignHomePlanet(u.homePlanets[i]); err != nil {
			return nil, fmt.Errorf("failed to assign home planet: %w", err)
		}
	}

	u.status = StatusReady
	genLogger.Info("Universe generated",
		"home_planets", len(u.homePlanets),
		"free_planets", len(u.freePlanets),
	)
	return u, nil
}

// place runs one collision-checked placement against every planet so far.
func (u *Universe) place(sizes []planet.Size, home planet.Owner) (*planet.Planet, error) {
	name := planet.NameFor(len(u.byID))
	return planet.Generate(u.rng, u.tableau, u.rule, sizes, u.AllPlanets(), name, home)
}

// CreatePlanet places one more planet after generation, collision-checked
// against every planet in the universe and indexed immediately. A nil or
// empty size set draws from the configured catalog. A non-nil owner takes
// ownership of the new planet without it becoming anyone's home.
func (u *Universe) CreatePlanet(sizes []planet.Size, owner *player.Player) (*planet.Planet, error) {
	opLogger := u.logger.With("component", "universe", "operation", "create_planet")

	if len(sizes) == 0 {
		sizes = u.sizes
	}

	p, err := u.place(sizes, nil)
	if err != nil {
		opLogger.Error("Failed to place planet", "error", err)
		return nil, fmt.Errorf("failed to create planet: %w", err)
	}

	if owner != nil {
		p.SetOwner(owner)
	}

	u.freePlanets = append(u.freePlanets, p)
	u.byID[p.ID()] = p

	opLogger.Info("Planet created", "planet_id", p.ID(), "planet_name", p.Name(), "size", p.Size())
	return p, nil
}

// AllPlanets returns every planet: home planets first in placement order,
// then free planets in placement order. The slice is a fresh copy.
func (u *Universe) AllPlanets() []*planet.Planet {
	all := make([]*planet.Planet, 0, len(u.homePlanets)+len(u.freePlanets))
	all = append(all, u.homePlanets...)
	all = append(all, u.freePlanets...)
	return all
}

// HomePlanets returns the players' starting planets in placement order.
func (u *Universe) HomePlanets() []*planet.Planet {
	return append([]*planet.Planet(nil), u.homePlanets...)
}

// FreePlanets returns the unowned-at-generation planets in placement order.
func (u *Universe) FreePlanets() []*planet.Planet {
	return append([]*planet.Planet(nil), u.freePlanets...)
}

// Players returns the players in home-planet placement order.
func (u *Universe) Players() []*player.Player {
	return append([]*player.Player(nil), u.players...)
}

// PlanetByID retrieves a planet by identity.
func (u *Universe) PlanetByID(id uuid.UUID) (*planet.Planet, error) {
	p, ok := u.byID[id]
	if !ok {
		return nil, errors.NotFoundf("planet %s not found", id)
	}
	return p, nil
}

// Tableau returns the playable region.
func (u *Universe) Tableau() spatial.Region {
	return u.tableau
}

// Rule returns the distance rule planets were placed under.
func (u *Universe) Rule() planet.DistanceRule {
	return u.rule
}

// MinDistance returns the minimum center-to-center separation.
func (u *Universe) MinDistance() int {
	return u.rule.MinDistance
}

// PlanetCount returns the total number of planets, home and free.
func (u *Universe) PlanetCount() int {
	return len(u.byID)
}

// Seed returns the seed the layout was generated from.
func (u *Universe) Seed() int64 {
	return u.seed
}

// Status returns the generation state.
func (u *Universe) Status() Status {
	return u.status
}
