package planet

import (
	"math/rand"

	"planets-core/internal/shared/errors"
	"planets-core/internal/spatial"
)

const (
	attemptsFloor   = 32
	attemptsPerCell = 8
)

// attemptBudget bounds the rejection sampling loop. It scales with how many
// min-distance cells fit in the region, with a floor so small regions still
// get a fair number of draws before the request is declared infeasible.
func attemptBudget(region spatial.Region, minDistance int) int {
	return attemptsFloor + attemptsPerCell*region.Area()/(minDistance*minDistance)
}

// Generate places one new planet by rejection sampling: pick a size from the
// offered set, draw a random coordinate inset from the region boundary by
// that size's radius, and keep the first draw that clears the distance rule
// against every existing planet. When the attempt budget runs out the
// request is infeasible and an exhausted error comes back instead of an
// endless loop.
//
// The size set is validated before any randomness is consumed, so a rejected
// call leaves the rng stream untouched. When only one size is offered the
// per-attempt size draw is skipped. The returned planet is not registered
// anywhere; indexing is the caller's job.
func Generate(rng *rand.Rand, region spatial.Region, rule DistanceRule, sizes []Size, existing []*Planet, name string, home Owner) (*Planet, error) {
	if err := ValidateSizes(sizes); err != nil {
		return nil, err
	}
	if rule.MinDistance <= 0 {
		return nil, errors.Validationf("min distance must be positive, got %d", rule.MinDistance)
	}

	budget := attemptBudget(region, rule.MinDistance)
	for attempt := 0; attempt < budget; attempt++ {
		size := sizes[0]
		if len(sizes) > 1 {
			size = sizes[rng.Intn(len(sizes))]
		}

		bounds := region.Inset(size.Radius())
		if bounds.Empty() {
			// No room for this size; the attempt is still spent.
			continue
		}

		candidate := spatial.RandomCoordinate(rng, bounds)
		if Collides(candidate, size, existing, rule) {
			continue
		}

		return New(name, candidate, size, home)
	}

	return nil, errors.Exhaustedf("no valid placement after %d attempts (min distance %d, %d existing planets)",
		budget, rule.MinDistance, len(existing))
}

// ValidateSizes rejects an empty size set or any size outside the catalog.
func ValidateSizes(sizes []Size) error {
	if len(sizes) == 0 {
		return errors.Validationf("at least one planet size is required")
	}
	for _, s := range sizes {
		if !s.IsValid() {
			return errors.Validationf("invalid planet size %q", s)
		}
	}
	return nil
}
