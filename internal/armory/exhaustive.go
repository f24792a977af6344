package armory

type exhaustiveSolver struct{}

// NewExhaustive returns the exact solver. It enumerates every subset of the
// input and keeps the feasible one with the greatest total defense, so its
// running time is exponential in the item count. Callers are expected to
// filter the collection down to a small size first; Select refuses more
// than MaxExhaustiveItems items.
func NewExhaustive() Solver {
	return &exhaustiveSolver{}
}

func (s *exhaustiveSolver) Select(items Items, budget float64) (Items, error) {
	n := len(items)
	if n > MaxExhaustiveItems {
		return nil, ErrTooManyItems
	}

	// Mask 0 is the empty subset: always feasible, the fallback result.
	best := Items{}
	bestDefense := 0.0
	found := false

	candidate := make(Items, 0, n)
	for mask := uint64(0); mask < uint64(1)<<n; mask++ {
		candidate = candidate[:0]
		for j := 0; j < n; j++ {
			if mask>>uint(j)&1 == 1 {
				candidate = append(candidate, items[j])
			}
		}

		cost, defense := Sum(candidate)
		if cost > budget {
			continue
		}
		// First feasible candidate in mask order wins ties; a later subset
		// with equal defense never replaces it.
		if !found || defense > bestDefense {
			best = append(Items{}, candidate...)
			bestDefense = defense
			found = true
		}
	}

	return best, nil
}
