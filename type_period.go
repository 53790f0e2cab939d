package footprint

import (
	"fmt"
	"strings"
)

// Period is a rolling reporting window used to filter activities.
type Period int

const (
	Weekly Period = iota
	Monthly
	Yearly
)

func (p Period) String() string {
	switch p {
	case Weekly:
		return "week"
	case Monthly:
		return "month"
	case Yearly:
		return "year"
	default:
		panic(fmt.Sprintf("unknown period %d", p))
	}
}

// Days returns the length of the rolling window in calendar days.
func (p Period) Days() int {
	switch p {
	case Weekly:
		return 7
	case Monthly:
		return 30
	case Yearly:
		return 365
	default:
		panic(fmt.Sprintf("unknown period %d", p))
	}
}

// Range returns the rolling window of p.Days() days ending on 'end', inclusive.
func (p Period) Range(end Date) Range {
	return NewRange(end.Add(-p.Days()+1), end)
}

// Previous returns the window of the same length immediately before p.Range(end).
func (p Period) Previous(end Date) Range {
	return p.Range(end.Add(-p.Days()))
}

// ParsePeriod parses a period name ("week", "month", "year").
func ParsePeriod(s string) (Period, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "week", "weekly":
		return Weekly, nil
	case "month", "monthly":
		return Monthly, nil
	case "year", "yearly":
		return Yearly, nil
	default:
		return Weekly, fmt.Errorf("%w: %q (want week, month or year)", ErrPeriod, s)
	}
}
