package planet

import "planets-core/internal/spatial"

// DistanceRule decides how far apart two planet centers must sit. The flat
// rule holds every pair to MinDistance regardless of size, so two large
// planets may visually crowd each other more than two small ones. SizeAware
// adds both planets' radii on top of MinDistance.
type DistanceRule struct {
	MinDistance int
	SizeAware   bool
}

// Threshold returns the required center-to-center distance between planets
// of the given sizes.
func (r DistanceRule) Threshold(a, b Size) int {
	if r.SizeAware {
		return r.MinDistance + a.Radius() + b.Radius()
	}
	return r.MinDistance
}

// Collides reports whether a candidate center of the given size sits
// strictly closer than the rule's threshold to any existing planet. The scan
// is linear over squared distances, which is plenty for the planet counts a
// game runs at, and the check is a pure function of its arguments so a
// spatial index can replace it without touching callers.
func Collides(candidate spatial.Coordinate, size Size, existing []*Planet, rule DistanceRule) bool {
	for _, other := range existing {
		threshold := rule.Threshold(size, other.size)
		if candidate.DistanceSquared(other.coordinate) < threshold*threshold {
			return true
		}
	}
	return false
}
