package player

import "errors"

var (
	ErrHomePlanetAlreadySet = errors.New("home planet already set")
)
