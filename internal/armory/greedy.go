package armory

type greedySolver struct{}

// NewGreedy returns the greedy heuristic solver. Each round it picks the
// remaining affordable item with the highest defense-per-gold efficiency
// until nothing else fits the budget. It is fast but makes no optimality
// guarantee. Select never returns an error.
func NewGreedy() Solver {
	return &greedySolver{}
}

func (s *greedySolver) Select(items Items, budget float64) (Items, error) {
	result := Items{}
	pool := make(Items, len(items))
	copy(pool, items)

	spent := 0.0
	for len(pool) > 0 {
		// Strict > against a zero seed: equal efficiencies resolve to the
		// lowest index, and zero-defense items are never chosen.
		bestIndex := -1
		bestEfficiency := 0.0
		for i, item := range pool {
			if spent+item.cost > budget {
				continue
			}
			if efficiency := item.defense / item.cost; efficiency > bestEfficiency {
				bestIndex = i
				bestEfficiency = efficiency
			}
		}
		if bestIndex == -1 {
			break
		}

		chosen := pool[bestIndex]
		result = append(result, chosen)
		spent += chosen.cost
		pool = append(pool[:bestIndex], pool[bestIndex+1:]...)
	}

	return result, nil
}
