package renderer

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/etnz/footprint"
)

// Terminal bar charts for the footprint breakdown. This is render-only
// output: nothing is persisted.

const chartWidth = 40

var (
	chartTitle = lipgloss.NewStyle().Bold(true)
	chartLabel = lipgloss.NewStyle().Width(16)
	userBar    = lipgloss.NewStyle().Foreground(lipgloss.Color("2")) // green
	avgBar     = lipgloss.NewStyle().Foreground(lipgloss.Color("8")) // grey
)

// Chart renders the category breakdown of a summary and, side by side, the
// user bars against the typical footprint for the period.
func Chart(s *footprint.Summary, p footprint.Period) string {
	if s.Total.IsZero() {
		return "Not enough data to draw a chart.\n"
	}

	// One common scale for every bar in the chart.
	max := s.Total.AsFloat()
	for _, c := range footprint.Categories() {
		if avg := footprint.AverageFootprint(p, c).AsFloat(); avg > max {
			max = avg
		}
	}

	var b strings.Builder
	b.WriteString(chartTitle.Render(fmt.Sprintf("Carbon Footprint Breakdown (%s)", p)))
	b.WriteString("\n\n")
	for _, c := range footprint.Categories() {
		value := s.CategoryTotal(c)
		fmt.Fprintf(&b, "%s %s %s\n",
			chartLabel.Render(label(c)),
			userBar.Render(bar(value.AsFloat(), max)),
			value)
	}

	b.WriteString("\n")
	b.WriteString(chartTitle.Render("Your Footprint vs. Average"))
	b.WriteString("\n\n")
	for _, c := range footprint.Categories() {
		value := s.CategoryTotal(c)
		avg := footprint.AverageFootprint(p, c)
		fmt.Fprintf(&b, "%s %s %s\n",
			chartLabel.Render(label(c)),
			userBar.Render(bar(value.AsFloat(), max)),
			value)
		fmt.Fprintf(&b, "%s %s %s\n",
			chartLabel.Render(""),
			avgBar.Render(bar(avg.AsFloat(), max)),
			avg)
	}
	return b.String()
}

// bar scales a value to the chart width. A non-zero value always gets at
// least one cell so small categories stay visible.
func bar(value, max float64) string {
	if max <= 0 || value <= 0 {
		return ""
	}
	n := int(value/max*chartWidth + 0.5)
	if n < 1 {
		n = 1
	}
	return strings.Repeat("█", n)
}
