package universe

import (
	"time"

	"planets-core/internal/planet"
	"planets-core/internal/player"
	"planets-core/internal/shared/errors"
	"planets-core/internal/spatial"
)

// Status tracks the universe generation state machine. A universe is
// structurally frozen once ready; only planet ownership changes afterward,
// plus any planets added explicitly through CreatePlanet.
type Status string

const (
	StatusUninitialized      Status = "uninitialized"
	StatusPlacingHomePlanets Status = "placing_home_planets"
	StatusPlacingFreePlanets Status = "placing_free_planets"
	StatusReady              Status = "ready"
)

func (s Status) String() string {
	return string(s)
}

const (
	DefaultMinDistance = 10
	DefaultHomeSize    = planet.SizeMedium
)

// Config describes one universe to generate.
type Config struct {
	// Tableau is the playable region, anchored at the origin when built
	// with spatial.NewTableau.
	Tableau spatial.Region
	// Players each receive one home planet. Placement order is shuffled
	// once at generation; the caller's slice is never reordered.
	Players []*player.Player
	// PlanetCount is the number of additional unowned planets.
	PlanetCount int
	// MinDistance is the minimum center-to-center separation between any
	// two planets. Zero means DefaultMinDistance.
	MinDistance int
	// SizeAwareDistance adds both planets' radii on top of MinDistance when
	// checking separation, so bigger planets claim more clearance.
	SizeAwareDistance bool
	// HomeSize is the size class of every home planet. Empty means
	// DefaultHomeSize.
	HomeSize planet.Size
	// Sizes is the catalog free planets draw from. Empty means the full
	// catalog.
	Sizes []planet.Size
	// Seed fixes the random source so one configuration always reproduces
	// the same layout. Zero picks a time-derived seed; the chosen value is
	// always logged.
	Seed int64
}

// normalized returns a copy of the config with defaults applied.
func (c Config) normalized() Config {
	if c.MinDistance == 0 {
		c.MinDistance = DefaultMinDistance
	}
	if c.HomeSize == "" {
		c.HomeSize = DefaultHomeSize
	}
	if len(c.Sizes) == 0 {
		c.Sizes = planet.Sizes()
	}
	if c.Seed == 0 {
		c.Seed = time.Now().UnixNano()
	}
	return c
}

// validate rejects configurations that cannot describe a universe. It runs
// after normalization, before any randomness is consumed.
func (c Config) validate() error {
	if c.Tableau.Width() <= 0 || c.Tableau.Height() <= 0 {
		return errors.Validationf("tableau must span a positive area, got %dx%d", c.Tableau.Width(), c.Tableau.Height())
	}
	if c.MinDistance < 0 {
		return errors.Validationf("min distance must not be negative, got %d", c.MinDistance)
	}
	if c.PlanetCount < 0 {
		return errors.Validationf("planet count must not be negative, got %d", c.PlanetCount)
	}
	if !c.HomeSize.IsValid() {
		return errors.Validationf("invalid home planet size %q", c.HomeSize)
	}
	if err := planet.ValidateSizes(c.Sizes); err != nil {
		return err
	}
	for _, p := range c.Players {
		if p == nil {
			return errors.Validationf("player list contains a nil player")
		}
		if p.HomePlanet() != nil {
			return errors.Validationf("player %s already has a home planet", p.Name())
		}
	}
	return nil
}

// rule returns the distance rule the config describes.
func (c Config) rule() planet.DistanceRule {
	return planet.DistanceRule{
		MinDistance: c.MinDistance,
		SizeAware:   c.SizeAwareDistance,
	}
}
