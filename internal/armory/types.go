package armory

// MaxExhaustiveItems is the largest collection the exhaustive solver
// accepts. Subsets are enumerated through a 64-bit mask counter, so the
// item count must stay below the counter's bit width.
const MaxExhaustiveItems = 63

// Solver selects a feasible subset of items: a collection whose total cost
// stays within the gold budget. Implementations are stateless, never modify
// the input collection, and are safe for concurrent use on independent
// inputs. The returned collection is freshly allocated on every call.
type Solver interface {
	Select(items Items, budget float64) (Items, error)
}
