package spatial

import "math/rand"

// Region is an axis-aligned rectangle spanning Min to Max, bounds inclusive.
type Region struct {
	Min Coordinate `json:"min"`
	Max Coordinate `json:"max"`
}

// NewRegion creates a region between two corners.
func NewRegion(min, max Coordinate) Region {
	return Region{Min: min, Max: max}
}

// NewTableau creates the playable region of a game: the near corner is
// always the origin, only the far corner varies.
func NewTableau(far Coordinate) Region {
	return Region{Min: Coordinate{X: 0, Y: 0}, Max: far}
}

// Width returns the horizontal span of the region.
func (r Region) Width() int {
	return r.Max.X - r.Min.X
}

// Height returns the vertical span of the region.
func (r Region) Height() int {
	return r.Max.Y - r.Min.Y
}

// Area returns the surface of the region.
func (r Region) Area() int {
	return r.Width() * r.Height()
}

// Size returns the region dimensions as a (width, height) pair, the shape a
// display layer expects when sizing a window.
func (r Region) Size() (int, int) {
	return r.Width(), r.Height()
}

// Inset returns the region shrunk by the given amount on every side. The
// result is empty when the inset exceeds half the span; callers must check
// before drawing coordinates from it.
func (r Region) Inset(by int) Region {
	return Region{
		Min: Coordinate{X: r.Min.X + by, Y: r.Min.Y + by},
		Max: Coordinate{X: r.Max.X - by, Y: r.Max.Y - by},
	}
}

// Empty reports whether the region contains no coordinates.
func (r Region) Empty() bool {
	return r.Max.X < r.Min.X || r.Max.Y < r.Min.Y
}

// Contains reports whether c lies within the region, bounds inclusive.
func (r Region) Contains(c Coordinate) bool {
	return c.X >= r.Min.X && c.X <= r.Max.X && c.Y >= r.Min.Y && c.Y <= r.Max.Y
}

// RandomCoordinate draws a uniform random coordinate within r, bounds
// inclusive. The region must not be empty.
func RandomCoordinate(rng *rand.Rand, r Region) Coordinate {
	return Coordinate{
		X: r.Min.X + rng.Intn(r.Width()+1),
		Y: r.Min.Y + rng.Intn(r.Height()+1),
	}
}
