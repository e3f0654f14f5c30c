package spatial

import "fmt"

// Coordinate is a point on the game plane.
type Coordinate struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// DistanceSquared returns the squared Euclidean distance to other. Callers
// compare against squared thresholds, so no square root is ever taken.
func (c Coordinate) DistanceSquared(other Coordinate) int {
	dx := c.X - other.X
	dy := c.Y - other.Y
	return dx*dx + dy*dy
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%d, %d)", c.X, c.Y)
}
