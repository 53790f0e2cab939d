package footprint

import (
	"slices"
	"strings"
)

// Summary is the aggregation of a ledger over a date range: emissions summed
// by category and by sub-type within each category.
//
// A Summary is a plain value derived from the store; it is recomputed on
// every call and never cached.
type Summary struct {
	Range       Range
	Total       Co2e
	PerCategory map[Category]Co2e
	PerSubtype  map[Category]map[string]Co2e
}

// NewSummary aggregates the activities whose date falls within the range.
// Categories with no activity in the window do not appear in the maps.
func (l *Ledger) NewSummary(rng Range) *Summary {
	s := &Summary{
		Range:       rng,
		PerCategory: make(map[Category]Co2e),
		PerSubtype:  make(map[Category]map[string]Co2e),
	}
	for _, a := range l.Activities(Within(rng)) {
		s.add(a.What(), SubType(a), a.Emissions())
		if meal, ok := a.(Meal); ok {
			for _, item := range meal.Items {
				s.addSubtype(CatFood, item.Type, item.Co2e)
			}
		}
	}
	return s
}

func (s *Summary) add(cat Category, subtype string, co2e Co2e) {
	s.Total = s.Total.Add(co2e)
	s.PerCategory[cat] = s.PerCategory[cat].Add(co2e)
	if subtype != "" {
		s.addSubtype(cat, subtype, co2e)
	}
}

func (s *Summary) addSubtype(cat Category, subtype string, co2e Co2e) {
	m, ok := s.PerSubtype[cat]
	if !ok {
		m = make(map[string]Co2e)
		s.PerSubtype[cat] = m
	}
	m[subtype] = m[subtype].Add(co2e)
}

// CategoryTotal returns the emissions of one category in the window; zero
// when the category has no activity.
func (s *Summary) CategoryTotal(c Category) Co2e { return s.PerCategory[c] }

// RankedCategories returns every activity category ordered by decreasing
// emissions in the window. Ties keep the declaration order of categories.
func (s *Summary) RankedCategories() []Category {
	ranked := Categories()
	slices.SortStableFunc(ranked, func(a, b Category) int {
		switch {
		case s.CategoryTotal(a).GreaterThan(s.CategoryTotal(b)):
			return -1
		case s.CategoryTotal(b).GreaterThan(s.CategoryTotal(a)):
			return 1
		default:
			return 0
		}
	})
	return ranked
}

// Subtypes returns the sub-type keys of a category in the window, sorted for
// stable rendering.
func (s *Summary) Subtypes(c Category) []string {
	keys := make([]string, 0, len(s.PerSubtype[c]))
	for k := range s.PerSubtype[c] {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, strings.Compare)
	return keys
}
