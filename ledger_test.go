package footprint

import (
	"testing"
)

// mustValidate is a test helper returning the validated record or failing.
func mustValidate(t *testing.T, a Activity, f *Factors) Activity {
	t.Helper()
	v, err := a.Validate(f)
	if err != nil {
		t.Fatalf("Validate(%v) error: %v", a, err)
	}
	return v
}

func TestLedgerAppendKeepsChronologicalOrder(t *testing.T) {
	f := DefaultFactors()
	l := NewLedger()

	// Appended out of order on purpose.
	l.Append(mustValidate(t, NewTransport(NewDate(2025, 6, 15), "car", 10, 1), f))
	l.Append(mustValidate(t, NewTransport(NewDate(2025, 6, 10), "bus", 10, 1), f))
	l.Append(mustValidate(t, NewTransport(NewDate(2025, 6, 12), "train", 10, 1), f))

	var dates []Date
	for _, a := range l.Activities(AcceptAll) {
		dates = append(dates, a.When())
	}
	for i := 1; i < len(dates); i++ {
		if dates[i].Before(dates[i-1]) {
			t.Fatalf("activities out of order: %v", dates)
		}
	}
	if l.OldestActivityDate() != NewDate(2025, 6, 10) {
		t.Errorf("OldestActivityDate() = %v, want 2025-06-10", l.OldestActivityDate())
	}
	if l.NewestActivityDate() != NewDate(2025, 6, 15) {
		t.Errorf("NewestActivityDate() = %v, want 2025-06-15", l.NewestActivityDate())
	}
}

func TestLedgerStableSameDayOrder(t *testing.T) {
	f := DefaultFactors()
	l := NewLedger()
	day := NewDate(2025, 6, 15)

	first := mustValidate(t, NewTransport(day, "car", 1, 1), f)
	second := mustValidate(t, NewTransport(day, "bus", 2, 1), f)
	l.Append(first, second)

	var got []Activity
	for _, a := range l.Activities(AcceptAll) {
		got = append(got, a)
	}
	if len(got) != 2 || !got[0].Equal(first) || !got[1].Equal(second) {
		t.Errorf("same-day records lost their insertion order")
	}
}

func TestLedgerFilters(t *testing.T) {
	f := DefaultFactors()
	l := NewLedger()
	l.Append(
		mustValidate(t, NewTransport(NewDate(2025, 6, 10), "car", 10, 1), f),
		mustValidate(t, NewEnergyUse(NewDate(2025, 6, 11), "electricity", 10, "kWh"), f),
		mustValidate(t, NewMeal(NewDate(2025, 6, 12), Item("rice", 0.2, false, false)), f),
	)

	count := func(filters ...func(Activity) bool) int {
		n := 0
		for range l.Activities(filters...) {
			n++
		}
		return n
	}

	if got := count(ByCategory(CatTransportation)); got != 1 {
		t.Errorf("ByCategory(transportation) matched %d records, want 1", got)
	}
	if got := count(ByCategory(CatPurchase)); got != 0 {
		t.Errorf("ByCategory(purchase) matched %d records, want 0", got)
	}
	if got := count(Within(NewRange(NewDate(2025, 6, 11), NewDate(2025, 6, 12)))); got != 2 {
		t.Errorf("Within() matched %d records, want 2", got)
	}
	// A record is yielded when at least one filter accepts it.
	if got := count(ByCategory(CatTransportation), ByCategory(CatFood)); got != 2 {
		t.Errorf("two filters matched %d records, want 2", got)
	}
}

func TestValidateGeneratesIDAndDate(t *testing.T) {
	f := DefaultFactors()

	a := mustValidate(t, NewTransport(Date{}, "car", 10, 1), f)
	if a.ID() == "" {
		t.Error("Validate() left an empty id")
	}
	if !a.When().IsToday() {
		t.Errorf("Validate() on a zero day dated the record %v, want today", a.When())
	}

	// A second record gets a distinct id.
	b := mustValidate(t, NewTransport(Date{}, "car", 10, 1), f)
	if a.ID() == b.ID() {
		t.Errorf("two records share id %q", a.ID())
	}

	// An explicit date survives validation.
	day := NewDate(2025, 1, 2)
	c := mustValidate(t, NewTransport(day, "car", 10, 1), f)
	if c.When() != day {
		t.Errorf("Validate() changed the date to %v, want %v", c.When(), day)
	}
}

func TestMealValidate(t *testing.T) {
	f := DefaultFactors()

	meal := mustValidate(t, NewMeal(NewDate(2025, 6, 15),
		Item("beef", 0.25, false, false),
		Item("rice", 0.2, false, false),
	), f).(Meal)

	// 27.0×0.25 + 2.7×0.2 = 6.75 + 0.54
	if !meal.Items[0].Co2e.Equal(Kg(6.75)) {
		t.Errorf("beef item co2e = %v, want 6.75", meal.Items[0].Co2e)
	}
	if !meal.Items[1].Co2e.Equal(Kg(0.54)) {
		t.Errorf("rice item co2e = %v, want 0.54", meal.Items[1].Co2e)
	}
	if !meal.Emissions().Equal(Kg(7.29)) {
		t.Errorf("meal total = %v, want 7.29", meal.Emissions())
	}
}

func TestMealValidate_rejectsWholeMeal(t *testing.T) {
	f := DefaultFactors()

	// One bad item rejects the whole meal.
	if _, err := NewMeal(Date{}, Item("beef", 0.25, false, false), Item("unobtainium", 1, false, false)).Validate(f); err == nil {
		t.Error("Validate() accepted a meal with an unknown food type")
	}
	// An empty meal is invalid.
	if _, err := NewMeal(Date{}).Validate(f); err == nil {
		t.Error("Validate() accepted an empty meal")
	}
}
