package armory

import "fmt"

// Item is a single piece of armor: a human-readable description, a cost in
// gold, and the defense points it grants. Items are immutable after
// construction and are shared by pointer between collections; solvers only
// select references into new collections and never modify an item.
type Item struct {
	description string
	cost        float64
	defense     float64
}

// NewItem validates and constructs an Item. The description must be
// non-empty, the cost strictly positive, and the defense non-negative.
func NewItem(description string, cost, defense float64) (*Item, error) {
	if description == "" {
		return nil, fmt.Errorf("%w: description must not be empty", ErrInvalidItem)
	}
	if cost <= 0 {
		return nil, fmt.Errorf("%w: cost must be positive, got %v", ErrInvalidItem, cost)
	}
	if defense < 0 {
		return nil, fmt.Errorf("%w: defense must be non-negative, got %v", ErrInvalidItem, defense)
	}
	return &Item{description: description, cost: cost, defense: defense}, nil
}

// Description returns the human-readable description of the item.
func (i *Item) Description() string { return i.description }

// Cost returns the item's cost in gold.
func (i *Item) Cost() float64 { return i.cost }

// Defense returns the defense points the item grants.
func (i *Item) Defense() float64 { return i.defense }

// Items is an ordered collection of shared item references. Duplicate
// references are permitted.
type Items []*Item

// Sum returns the total cost and total defense of the collection. An empty
// collection sums to (0, 0).
func Sum(items Items) (totalCost, totalDefense float64) {
	for _, item := range items {
		totalCost += item.cost
		totalDefense += item.defense
	}
	return totalCost, totalDefense
}

// Filter returns the items of source whose defense lies within
// [minDefense, maxDefense] (inclusive on both ends), in source order,
// truncated once limit items have been accepted. This is a truncation, not
// a best-N selection: once the limit is reached the rest of the source is
// not examined. A limit <= 0 yields an empty collection. The source is
// never modified.
func Filter(source Items, minDefense, maxDefense float64, limit int) Items {
	filtered := Items{}
	if limit <= 0 {
		return filtered
	}
	for _, item := range source {
		if item.defense >= minDefense && item.defense <= maxDefense {
			filtered = append(filtered, item)
			if len(filtered) >= limit {
				break
			}
		}
	}
	return filtered
}
