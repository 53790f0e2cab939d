package footprint

import (
	"errors"
	"log"
)

// Tracker is the programmatic surface of the footprint ledger for one user:
// it owns the loaded store, runs every new record through the calculator and
// rewrites the store document after each tracked activity.
//
// A Tracker assumes one user, one process: the store file is exclusively
// owned for the lifetime of the session.
type Tracker struct {
	path    string
	factors *Factors
	ledger  *Ledger
}

// NewTracker loads (or creates) the store of a user under the data path.
// A nil factors table means the built-in defaults.
//
// A corrupt store document is logged and replaced by an empty store rather
// than aborting the session; the damaged file stays on disk until the next
// tracked activity rewrites it.
func NewTracker(path, user string, factors *Factors) (*Tracker, error) {
	if factors == nil {
		factors = DefaultFactors()
	}
	ledger, err := FindLedger(path, user)
	switch {
	case errors.Is(err, ErrStorage):
		log.Printf("warning: %v, starting from an empty store", err)
		ledger = NewLedger()
		ledger.name = user
	case err != nil:
		return nil, err
	}
	return &Tracker{path: path, factors: factors, ledger: ledger}, nil
}

// Ledger exposes the underlying store, mainly for reporting.
func (t *Tracker) Ledger() *Ledger { return t.ledger }

// Factors exposes the injected factor table.
func (t *Tracker) Factors() *Factors { return t.factors }

// track validates a record, appends it and persists the whole store.
func (t *Tracker) track(a Activity) (Activity, error) {
	validated, err := a.Validate(t.factors)
	if err != nil {
		return nil, err
	}
	t.ledger.Append(validated)
	if err := SaveLedger(t.path, t.ledger); err != nil {
		return nil, err
	}
	return validated, nil
}

// Track validates an arbitrary record (with its own date), appends it and
// persists the store. The Track* helpers below cover the common case of
// recording for today.
func (t *Tracker) Track(a Activity) (Activity, error) { return t.track(a) }

// TrackTransportation records a trip of the given distance in km. A
// passenger count of zero or less counts as a single passenger.
func (t *Tracker) TrackTransportation(mode string, distance float64, passengers int) (Activity, error) {
	return t.track(NewTransport(Date{}, mode, distance, passengers))
}

// TrackEnergyUsage records a home energy consumption in kWh (or therms for
// natural gas).
func (t *Tracker) TrackEnergyUsage(energyType string, amount float64, unit string) (Activity, error) {
	return t.track(NewEnergyUse(Date{}, energyType, amount, unit))
}

// TrackFood records a meal made of the given food items.
func (t *Tracker) TrackFood(items ...FoodItem) (Activity, error) {
	return t.track(NewMeal(Date{}, items...))
}

// TrackPurchase records a purchase in a product category.
func (t *Tracker) TrackPurchase(product, item string, price Money, eco bool) (Activity, error) {
	return t.track(NewPurchase(Date{}, product, item, price, eco))
}

// Summary aggregates the store over the period ending today.
func (t *Tracker) Summary(period string) (*Summary, error) {
	p, err := ParsePeriod(period)
	if err != nil {
		return nil, err
	}
	return t.ledger.NewSummary(p.Range(Today())), nil
}

// Report builds the impact report for the period ending today.
func (t *Tracker) Report(period string) (*Report, error) {
	p, err := ParsePeriod(period)
	if err != nil {
		return nil, err
	}
	return t.ledger.NewReport(p, Today()), nil
}

// Tips returns personalized improvement tips.
func (t *Tracker) Tips(count int) []string {
	return t.ledger.Tips(count, Today())
}

// SetPreferences merges the given updates into the user preferences and
// persists them.
func (t *Tracker) SetPreferences(updates map[string]any) error {
	if err := t.ledger.Preferences().Merge(updates); err != nil {
		return err
	}
	return SavePreferences(t.path, t.ledger)
}
