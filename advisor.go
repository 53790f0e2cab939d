package footprint

import (
	"fmt"
	"slices"
)

// The recommendation engine is one pass of threshold comparisons over a
// static catalog: no learning, no adaptation. Ranking is fully deterministic,
// ties follow declaration order.

// ecoTips is the static tip catalog, keyed by activity category. Within a
// category, tips are listed in priority order.
var ecoTips = map[Category][]string{
	CatTransportation: {
		"Consider carpooling to reduce emissions",
		"Try using public transportation once a week",
		"Combine errands to reduce total driving distance",
		"Consider an electric vehicle for your next car purchase",
		"Keep your tires properly inflated to improve fuel efficiency",
	},
	CatEnergy: {
		"Switch to LED light bulbs to reduce energy consumption",
		"Unplug electronics when not in use to avoid phantom energy",
		"Use a smart thermostat to optimize heating and cooling",
		"Air dry clothes instead of using a dryer when possible",
		"Consider adding insulation to your home to reduce energy needs",
	},
	CatFood: {
		"Try incorporating one meatless meal per week",
		"Buy local produce to reduce transportation emissions",
		"Plan meals to reduce food waste",
		"Compost food scraps instead of sending to landfill",
		"Choose seasonal fruits and vegetables",
	},
	CatPurchase: {
		"Consider secondhand items before buying new",
		"Look for products with minimal packaging",
		"Invest in quality items that last longer",
		"Repair items when possible instead of replacing",
		"Choose products made from recycled materials",
	},
}

// Product is a sustainable product suggestion from the static catalog.
type Product struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// productCategories lists the catalog sections in declaration order.
var productCategories = []string{"home", "kitchen", "personal"}

var sustainableProducts = map[string][]Product{
	"home": {
		{Name: "Smart thermostat", Description: "Reduces energy usage by 10-15%"},
		{Name: "Low-flow showerhead", Description: "Reduces water usage while maintaining pressure"},
		{Name: "Wool dryer balls", Description: "Reduces drying time and eliminates need for dryer sheets"},
	},
	"kitchen": {
		{Name: "Beeswax food wraps", Description: "Reusable alternative to plastic wrap"},
		{Name: "Silicone food storage bags", Description: "Durable alternative to disposable plastic bags"},
		{Name: "Compost bin", Description: "Convenient way to collect food scraps for composting"},
	},
	"personal": {
		{Name: "Bamboo toothbrush", Description: "Biodegradable alternative to plastic toothbrushes"},
		{Name: "Shampoo bar", Description: "Zero-waste alternative to bottled shampoo"},
		{Name: "Reusable water bottle", Description: "Reduces plastic waste from disposable bottles"},
	},
}

// Tips returns up to count improvement tips, personalized by the user's
// monthly footprint ending on the given day: the highest-emitting categories
// surface their tips first.
//
// The first round takes one tip per category in rank order so every problem
// area is represented, then the walk continues round-robin through the
// remaining tips. Declared interests only break ties between categories with
// equal emissions.
func (l *Ledger) Tips(count int, on Date) []string {
	if count <= 0 {
		count = 3
	}
	summary := l.NewSummary(Monthly.Range(on))

	ranked := summary.RankedCategories()
	// Interests nudge a category before its equal-total peers.
	interests := l.prefs.Interests
	slices.SortStableFunc(ranked, func(a, b Category) int {
		if !summary.CategoryTotal(a).Equal(summary.CategoryTotal(b)) {
			return 0 // keep the emissions order
		}
		ia := slices.Contains(interests, string(a))
		ib := slices.Contains(interests, string(b))
		switch {
		case ia && !ib:
			return -1
		case ib && !ia:
			return 1
		default:
			return 0
		}
	})

	var selected []string
	for round := 0; len(selected) < count; round++ {
		progressed := false
		for _, c := range ranked {
			tips := ecoTips[c]
			if round >= len(tips) {
				continue
			}
			progressed = true
			selected = append(selected, tips[round])
			if len(selected) == count {
				return selected
			}
		}
		if !progressed {
			break // catalog exhausted
		}
	}
	return selected
}

// CategoryTips returns the static tips of a single category, truncated to
// count.
func CategoryTips(c Category, count int) ([]string, error) {
	tips, ok := ecoTips[c]
	if !ok {
		return nil, fmt.Errorf("%w: no tips for category %q", ErrUnknownCategory, c)
	}
	if count <= 0 || count > len(tips) {
		count = len(tips)
	}
	return slices.Clone(tips[:count]), nil
}

// RecommendProducts returns up to count sustainable products. With an empty
// category the whole catalog is walked in declaration order; otherwise only
// the named section is used.
func RecommendProducts(category string, count int) ([]Product, error) {
	if count <= 0 {
		count = 3
	}

	sections := productCategories
	if category != "" {
		if _, ok := sustainableProducts[category]; !ok {
			return nil, fmt.Errorf("%w: no product recommendations for category %q", ErrUnknownCategory, category)
		}
		sections = []string{category}
	}

	var recommendations []Product
	for _, section := range sections {
		for _, p := range sustainableProducts[section] {
			recommendations = append(recommendations, p)
			if len(recommendations) == count {
				return recommendations, nil
			}
		}
	}
	return recommendations, nil
}
