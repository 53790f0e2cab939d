package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/footprint"
)

// SummaryMarkdown renders a period aggregation as a markdown document: the
// window total, then one breakdown table per category with activity.
func SummaryMarkdown(s *footprint.Summary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Carbon Footprint %s to %s\n\n", s.Range.From, s.Range.To)
	fmt.Fprintf(&b, "Total: **%s CO2e**\n", s.Total)

	for _, c := range footprint.Categories() {
		total := s.CategoryTotal(c)
		if total.IsZero() && len(s.Subtypes(c)) == 0 {
			continue
		}
		fmt.Fprintf(&b, "\n## %s: %s\n\n", label(c), total)
		subtypes := s.Subtypes(c)
		if len(subtypes) == 0 {
			continue
		}
		fmt.Fprintf(&b, "| Sub-type | Emissions |\n|---|---:|\n")
		for _, sub := range subtypes {
			fmt.Fprintf(&b, "| %s | %s |\n", sub, s.PerSubtype[c][sub])
		}
	}
	return b.String()
}

// ActivitiesMarkdown renders a chronological listing of activity records.
func ActivitiesMarkdown(activities []footprint.Activity) string {
	if len(activities) == 0 {
		return "No tracked activities.\n"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "| Date | Activity | Emissions |\n|---|---|---:|\n")
	for _, a := range activities {
		fmt.Fprintf(&b, "| %s | %s | %s |\n", a.When(), Activity(a), a.Emissions())
	}
	return b.String()
}

// Activity renders one activity record to a short string.
func Activity(a footprint.Activity) string {
	switch v := a.(type) {
	case footprint.Transport:
		if v.Passengers > 1 {
			return fmt.Sprintf("%s km by %s with %d passengers", v.Distance, v.Mode, v.Passengers)
		}
		return fmt.Sprintf("%s km by %s", v.Distance, v.Mode)
	case footprint.EnergyUse:
		return fmt.Sprintf("%s %s of %s", v.Amount, v.Unit, v.Type)
	case footprint.Meal:
		kinds := make([]string, 0, len(v.Items))
		for _, item := range v.Items {
			kinds = append(kinds, fmt.Sprintf("%s kg %s", item.Amount, item.Type))
		}
		return "meal of " + strings.Join(kinds, ", ")
	case footprint.Purchase:
		detail := v.Product
		if v.Item != "" {
			detail = fmt.Sprintf("%s (%s)", v.Item, v.Product)
		}
		if v.Eco {
			detail += ", eco-friendly"
		}
		return fmt.Sprintf("bought %s for %s", detail, v.Price)
	default:
		return string(a.What())
	}
}
