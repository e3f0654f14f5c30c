package planet

// Size is the class of a planet, drawn from a closed catalog.
type Size string

const (
	SizeSmall  Size = "small"
	SizeMedium Size = "medium"
	SizeLarge  Size = "large"
)

// Scale returns the numeric footprint of the size class. It drives how far
// placement stays from the region boundary and, under a size-aware distance
// rule, how much clearance the planet claims.
func (s Size) Scale() int {
	switch s {
	case SizeSmall:
		return 5
	case SizeMedium:
		return 10
	case SizeLarge:
		return 15
	default:
		return 0
	}
}

// Radius returns half the scale, rounded up. A planet center inset by its
// radius keeps the whole footprint inside the region.
func (s Size) Radius() int {
	return (s.Scale() + 1) / 2
}

// IsValid checks if the size is a member of the catalog.
func (s Size) IsValid() bool {
	switch s {
	case SizeSmall, SizeMedium, SizeLarge:
		return true
	}
	return false
}

// String returns the string representation of the size.
func (s Size) String() string {
	return string(s)
}

// Sizes returns the full catalog in ascending scale order.
func Sizes() []Size {
	return []Size{SizeSmall, SizeMedium, SizeLarge}
}
