package planet

import (
	"fmt"

	"github.com/google/uuid"

	"planets-core/internal/shared/errors"
	"planets-core/internal/spatial"
	"planets-core/internal/watch"
)

// Owner is anything a planet can belong to. The concrete type lives with the
// player code; the planet side only ever needs a display name.
type Owner interface {
	Name() string
}

// Snapshot is the observable state of a planet, delivered to subscribers on
// every ownership change.
type Snapshot struct {
	ID         uuid.UUID
	Name       string
	Coordinate spatial.Coordinate
	Size       Size
	Owner      Owner
}

// Planet is a placed entity on the tableau. Identity, position, size and the
// home player are fixed at construction. Ownership is the only mutable
// field, and it changes only through SetOwner.
type Planet struct {
	id         uuid.UUID
	name       string
	coordinate spatial.Coordinate
	size       Size
	owner      Owner
	homePlayer Owner
	feed       *watch.Feed[Snapshot]
}

// New creates a planet at the given coordinate. A non-nil home player marks
// the planet as that player's starting position and becomes its initial
// owner; the back-reference on the player is the caller's job.
func New(name string, coordinate spatial.Coordinate, size Size, home Owner) (*Planet, error) {
	if !size.IsValid() {
		return nil, errors.Validationf("invalid planet size %q", size)
	}

	p := &Planet{
		id:         uuid.New(),
		name:       name,
		coordinate: coordinate,
		size:       size,
		homePlayer: home,
	}
	if home != nil {
		p.owner = home
	}
	p.feed = watch.New(p.snapshot())

	return p, nil
}

// ID returns the planet identity.
func (p *Planet) ID() uuid.UUID {
	return p.id
}

// Name returns the planet display name.
func (p *Planet) Name() string {
	return p.name
}

// Coordinate returns the placed center of the planet.
func (p *Planet) Coordinate() spatial.Coordinate {
	return p.coordinate
}

// Size returns the size class of the planet.
func (p *Planet) Size() Size {
	return p.size
}

// Owner returns the current owner, nil while unowned.
func (p *Planet) Owner() Owner {
	return p.owner
}

// HomePlayer returns the player this planet was generated for, nil for free
// planets. Unlike the owner, it never changes.
func (p *Planet) HomePlayer() Owner {
	return p.homePlayer
}

// Snapshot returns the current observable state of the planet.
func (p *Planet) Snapshot() Snapshot {
	return p.feed.Latest()
}

// Subscribe hands fn the current snapshot immediately, then delivers every
// future ownership change in subscription order on the goroutine that calls
// SetOwner. The returned cancel function removes the subscription.
func (p *Planet) Subscribe(fn func(Snapshot)) (cancel func()) {
	return p.feed.Subscribe(fn)
}

// SetOwner reassigns the planet and publishes the new snapshot to every
// subscriber before returning.
func (p *Planet) SetOwner(owner Owner) {
	p.owner = owner
	p.feed.Publish(p.snapshot())
}

func (p *Planet) snapshot() Snapshot {
	return Snapshot{
		ID:         p.id,
		Name:       p.name,
		Coordinate: p.coordinate,
		Size:       p.size,
		Owner:      p.owner,
	}
}

func (p *Planet) String() string {
	if p.homePlayer != nil {
		return fmt.Sprintf("%s %s %s home of %s", p.name, p.size, p.coordinate, p.homePlayer.Name())
	}
	return fmt.Sprintf("%s %s %s", p.name, p.size, p.coordinate)
}
