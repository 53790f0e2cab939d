package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/footprint"
)

// Report is the view of a footprint.Report prepared for the templates: every
// value is already formatted.
type Report struct {
	Period      string
	GeneratedOn string
	Rows        []SummaryRow
	Total       string
	Verdict     string
	Comparisons []ComparisonRow
	HasTrend    bool
	Trend       string
	Tips        []string
}

// SummaryRow is one category line of the summary table.
type SummaryRow struct {
	Label string
	Value string
}

// ComparisonRow is one category line of the comparison table.
type ComparisonRow struct {
	Label   string
	User    string
	Average string
	Diff    string
}

// categoryLabels maps a category to its report wording.
var categoryLabels = map[footprint.Category]string{
	footprint.CatTransportation: "Transportation",
	footprint.CatEnergy:         "Home Energy",
	footprint.CatFood:           "Food Choices",
	footprint.CatPurchase:       "Purchases",
}

func label(c footprint.Category) string {
	if l, ok := categoryLabels[c]; ok {
		return l
	}
	return string(c)
}

// NewReport prepares the report view.
func NewReport(r *footprint.Report) *Report {
	view := &Report{
		Period:      strings.ToUpper(r.Period.String()),
		GeneratedOn: r.Date.Format("January 2, 2006"),
		Total:       r.Summary.Total.String() + " CO2e",
		Tips:        r.Tips,
	}

	for _, c := range footprint.Categories() {
		view.Rows = append(view.Rows, SummaryRow{
			Label: label(c),
			Value: r.Summary.CategoryTotal(c).String(),
		})
	}

	for _, cmp := range r.Comparisons {
		view.Comparisons = append(view.Comparisons, ComparisonRow{
			Label:   label(cmp.Category),
			User:    cmp.User.String(),
			Average: cmp.Average.String(),
			Diff:    fmt.Sprintf("%+v%%", cmp.DiffPercent),
		})
	}

	diff := r.Total.DiffPercent
	switch {
	case diff.IsNegative():
		view.Verdict = fmt.Sprintf("Your footprint is %v%% LOWER than average. Great job!", diff.Neg())
	case diff.IsPositive():
		view.Verdict = fmt.Sprintf("Your footprint is %v%% HIGHER than average. There's room for improvement.", diff)
	default:
		view.Verdict = "Your footprint is about AVERAGE."
	}

	if trend, ok := r.Trend(); ok {
		view.HasTrend = true
		switch {
		case trend.IsNegative():
			view.Trend = fmt.Sprintf("down %v%% from the previous %s", trend.Neg(), r.Period)
		case trend.IsPositive():
			view.Trend = fmt.Sprintf("up %v%% from the previous %s", trend, r.Period)
		default:
			view.Trend = fmt.Sprintf("flat against the previous %s", r.Period)
		}
	}
	return view
}
