package player

import (
	"fmt"

	"planets-core/internal/planet"
)

// Player is a participant in a game. The name is fixed at construction; the
// home planet is assigned exactly once, during universe generation.
type Player struct {
	name string
	home *planet.Planet
}

// New creates a player with the given name.
func New(name string) *Player {
	return &Player{name: name}
}

// Name returns the player name.
func (p *Player) Name() string {
	return p.name
}

// HomePlanet returns the player's starting planet, nil until assigned.
func (p *Player) HomePlanet() *planet.Planet {
	return p.home
}

// AssignHomePlanet records the player's starting planet. A player has at
// most one home; a second assignment is rejected.
func (p *Player) AssignHomePlanet(pl *planet.Planet) error {
	if p.home != nil {
		return fmt.Errorf("player %s: %w", p.name, ErrHomePlanetAlreadySet)
	}
	p.home = pl
	return nil
}

func (p *Player) String() string {
	return fmt.Sprintf("Player %s", p.name)
}
