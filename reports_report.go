package footprint

import "github.com/shopspring/decimal"

// averageFootprints are typical per-category footprints, in kg CO2e, for each
// reporting period. They are indicative figures used for the comparison
// section of reports, not measurements.
var averageFootprints = map[Period]map[Category]Co2e{
	Weekly: {
		CatTransportation: Kg(23),
		CatEnergy:         Kg(58),
		CatFood:           Kg(35),
		CatPurchase:       Kg(18),
	},
	Monthly: {
		CatTransportation: Kg(92),
		CatEnergy:         Kg(232),
		CatFood:           Kg(140),
		CatPurchase:       Kg(72),
	},
	Yearly: {
		CatTransportation: Kg(1104),
		CatEnergy:         Kg(2784),
		CatFood:           Kg(1680),
		CatPurchase:       Kg(864),
	},
}

// AverageFootprint returns the typical footprint of one category for a
// period.
func AverageFootprint(p Period, c Category) Co2e { return averageFootprints[p][c] }

// AverageTotal returns the typical total footprint for a period.
func AverageTotal(p Period) Co2e {
	var total Co2e
	for _, c := range Categories() {
		total = total.Add(averageFootprints[p][c])
	}
	return total
}

// Comparison relates the user's emissions to the typical footprint for one
// category. DiffPercent is (user-average)/average in percent, one decimal.
type Comparison struct {
	Category    Category
	User        Co2e
	Average     Co2e
	DiffPercent decimal.Decimal
}

// Report is the full environmental impact report for one period: the window
// aggregation, the same aggregation over the previous window for the trend,
// the comparison against typical footprints, and improvement tips.
type Report struct {
	Period      Period
	Date        Date // report generation day, end of the window
	Summary     *Summary
	Previous    *Summary
	Comparisons []Comparison
	Total       Comparison // comparison of the total footprint
	Tips        []string
}

// NewReport builds the impact report for the window of the period ending on
// the given day.
func (l *Ledger) NewReport(p Period, on Date) *Report {
	summary := l.NewSummary(p.Range(on))
	previous := l.NewSummary(p.Previous(on))

	comparisons := make([]Comparison, 0, len(Categories()))
	for _, c := range Categories() {
		avg := AverageFootprint(p, c)
		user := summary.CategoryTotal(c)
		comparisons = append(comparisons, Comparison{
			Category:    c,
			User:        user,
			Average:     avg,
			DiffPercent: user.PercentOf(avg),
		})
	}
	avgTotal := AverageTotal(p)

	return &Report{
		Period:      p,
		Date:        on,
		Summary:     summary,
		Previous:    previous,
		Comparisons: comparisons,
		Total: Comparison{
			User:        summary.Total,
			Average:     avgTotal,
			DiffPercent: summary.Total.PercentOf(avgTotal),
		},
		Tips: l.Tips(5, on),
	}
}

// Trend returns the percent change of the window total against the previous
// window, and whether a previous window carries any data to compare with.
func (r *Report) Trend() (decimal.Decimal, bool) {
	if r.Previous == nil || r.Previous.Total.IsZero() {
		return decimal.Zero, false
	}
	return r.Summary.Total.PercentOf(r.Previous.Total), true
}
