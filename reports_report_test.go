package footprint

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestNewReport(t *testing.T) {
	f := DefaultFactors()
	l := NewLedger()
	on := NewDate(2025, 6, 15)
	l.Append(mustValidate(t, NewTransport(on, "car", 10, 1), f)) // 1.92

	r := l.NewReport(Weekly, on)

	if r.Period != Weekly || r.Date != on {
		t.Fatalf("report header = (%v, %v), want (week, %v)", r.Period, r.Date, on)
	}
	if len(r.Comparisons) != len(Categories()) {
		t.Fatalf("got %d comparisons, want one per category", len(r.Comparisons))
	}
	for _, cmp := range r.Comparisons {
		if !cmp.Average.Equal(AverageFootprint(Weekly, cmp.Category)) {
			t.Errorf("comparison average for %s = %v, want %v", cmp.Category, cmp.Average, AverageFootprint(Weekly, cmp.Category))
		}
	}

	// Categories with no activity compare at -100%.
	for _, cmp := range r.Comparisons {
		if cmp.Category == CatTransportation {
			continue
		}
		if !cmp.DiffPercent.Equal(decimal.NewFromInt(-100)) {
			t.Errorf("empty category %s diff = %v%%, want -100%%", cmp.Category, cmp.DiffPercent)
		}
	}

	if !r.Total.Average.Equal(AverageTotal(Weekly)) {
		t.Errorf("total average = %v, want %v", r.Total.Average, AverageTotal(Weekly))
	}
	if len(r.Tips) == 0 {
		t.Error("report carries no tips")
	}
}

func TestComparisonDiffPercent(t *testing.T) {
	f := DefaultFactors()
	l := NewLedger()
	on := NewDate(2025, 6, 15)
	l.Append(mustValidate(t, NewTransport(on, "car", 10, 1), f)) // 1.92

	r := l.NewReport(Weekly, on)
	var transport Comparison
	for _, cmp := range r.Comparisons {
		if cmp.Category == CatTransportation {
			transport = cmp
		}
	}
	// (1.92-23)/23×100 rounded to one decimal.
	want := Kg(1.92).PercentOf(Kg(23))
	if !transport.DiffPercent.Equal(want) {
		t.Errorf("transportation diff = %v%%, want %v%%", transport.DiffPercent, want)
	}
}

func TestReportTrend(t *testing.T) {
	f := DefaultFactors()
	on := NewDate(2025, 6, 15)

	t.Run("no previous data", func(t *testing.T) {
		l := NewLedger()
		l.Append(mustValidate(t, NewTransport(on, "car", 10, 1), f))
		if _, ok := l.NewReport(Weekly, on).Trend(); ok {
			t.Error("Trend() reported a trend with an empty previous window")
		}
	})

	t.Run("halved footprint", func(t *testing.T) {
		l := NewLedger()
		l.Append(mustValidate(t, NewTransport(on, "car", 10, 1), f))          // 1.92 this week
		l.Append(mustValidate(t, NewTransport(on.Add(-7), "car", 20, 1), f))  // 3.84 last week
		trend, ok := l.NewReport(Weekly, on).Trend()
		if !ok {
			t.Fatal("Trend() reported no trend")
		}
		if !trend.Equal(decimal.NewFromInt(-50)) {
			t.Errorf("Trend() = %v%%, want -50%%", trend)
		}
	})
}

func TestAverageTotal(t *testing.T) {
	// week: 23+58+35+18
	if got := AverageTotal(Weekly); !got.Equal(Kg(134)) {
		t.Errorf("AverageTotal(week) = %v, want 134", got)
	}
	if got := AverageTotal(Monthly); !got.Equal(Kg(536)) {
		t.Errorf("AverageTotal(month) = %v, want 536", got)
	}
	if got := AverageTotal(Yearly); !got.Equal(Kg(6432)) {
		t.Errorf("AverageTotal(year) = %v, want 6432", got)
	}
}
