package player

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"planets-core/internal/planet"
	"planets-core/internal/spatial"
)

func TestNewPlayer(t *testing.T) {
	p := New("Aaron")

	assert.Equal(t, "Aaron", p.Name())
	assert.Nil(t, p.HomePlanet())
	assert.Equal(t, "Player Aaron", p.String())
}

func TestAssignHomePlanet(t *testing.T) {
	p := New("Aaron")
	home, err := planet.New("Planet I", spatial.Coordinate{X: 10, Y: 10}, planet.SizeMedium, p)
	require.NoError(t, err)

	require.NoError(t, p.AssignHomePlanet(home))
	assert.Equal(t, home, p.HomePlanet())
}

func TestAssignHomePlanetTwiceFails(t *testing.T) {
	p := New("Peter")
	first, err := planet.New("Planet I", spatial.Coordinate{X: 10, Y: 10}, planet.SizeMedium, p)
	require.NoError(t, err)
	second, err := planet.New("Planet II", spatial.Coordinate{X: 90, Y: 90}, planet.SizeMedium, p)
	require.NoError(t, err)

	require.NoError(t, p.AssignHomePlanet(first))

	err = p.AssignHomePlanet(second)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrHomePlanetAlreadySet))
	assert.Equal(t, first, p.HomePlanet(), "the original assignment must survive")
}

func TestPlayerSatisfiesOwner(t *testing.T) {
	var owner planet.Owner = New("Aaron")

	assert.Equal(t, "Aaron", owner.Name())
}
