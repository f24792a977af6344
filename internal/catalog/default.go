package catalog

import "github.com/avelsher/armory/internal/armory"

// DefaultItems returns the built-in starter catalog, used when no catalog
// file is configured.
func DefaultItems() armory.Items {
	defaults := []struct {
		description string
		cost        float64
		defense     float64
	}{
		{"leather cap", 10, 60},
		{"chain coif", 20, 100},
		{"iron helmet", 30, 120},
		{"enchanted gauntlets", 45, 150},
		{"tower shield", 75, 240},
		{"dragonscale boots", 90, 310},
		{"steel cuirass", 120, 380},
	}

	items := make(armory.Items, 0, len(defaults))
	for _, d := range defaults {
		item, err := armory.NewItem(d.description, d.cost, d.defense)
		if err != nil {
			// static data, construction cannot fail
			panic(err)
		}
		items = append(items, item)
	}
	return items
}
