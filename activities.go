package footprint

import (
	"encoding/json"
	"fmt"

	"github.com/oklog/ulid/v2"
)

// Category is a typed string identifying the kind of an activity record.
type Category string

// Categories of tracked activities.
const (
	CatTransportation Category = "transportation"
	CatEnergy         Category = "energy"
	CatFood           Category = "food"
	CatPurchase       Category = "purchase"
)

// Categories returns all activity categories in declaration order.
func Categories() []Category {
	return []Category{CatTransportation, CatEnergy, CatFood, CatPurchase}
}

// ParseCategory parses an activity category name.
func ParseCategory(s string) (Category, error) {
	for _, c := range Categories() {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: activity category %q", ErrUnknownCategory, s)
}

// NewID returns a fresh unique activity id. ULIDs sort by creation time,
// which keeps ids aligned with the chronological order of the ledger.
func NewID() string { return ulid.Make().String() }

// Activity defines the common interface for all activity records in the
// ledger. Records are immutable once appended.
type Activity interface {
	What() Category  // What returns the category of the activity (e.g. "food").
	When() Date      // When returns the date on which the activity occurred.
	ID() string      // ID returns the unique id of the record.
	Emissions() Co2e // Emissions returns the CO2e computed at write time.
	Equal(Activity) bool
	// Validate checks the record shape and computes its emissions with the
	// given factor table. It returns the validated (and completed) record.
	Validate(f *Factors) (Activity, error)
}

type baseEntry struct {
	Activity Category `json:"activity"` // Activity is the category discriminator.
	Ref      string   `json:"id"`       // Ref is the unique record id.
	Date     Date     `json:"date"`     // Date is the day the activity took place.
	Co2e     Co2e     `json:"co2e"`     // Co2e is the emissions computed at write time.
}

func (t baseEntry) What() Category  { return t.Activity }
func (t baseEntry) When() Date      { return t.Date }
func (t baseEntry) ID() string      { return t.Ref }
func (t baseEntry) Emissions() Co2e { return t.Co2e }

// validate fills the generated fields: the date defaults to today, the id to
// a fresh ULID. It's meant to be embedded in record validation methods.
func (t *baseEntry) validate() {
	if t.Date == (Date{}) {
		t.Date = Today()
	}
	if t.Ref == "" {
		t.Ref = NewID()
	}
}

func (t baseEntry) equal(o baseEntry) bool {
	return t.Activity == o.Activity && t.Ref == o.Ref && t.Date == o.Date && t.Co2e.Equal(o.Co2e)
}

// MarshalJSON implements the json.Marshaler interface for baseEntry.
func (t baseEntry) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("activity", t.Activity)
	w.Append("id", t.Ref)
	w.Append("date", t.Date)
	return w.MarshalJSON()
}

// Transport records a trip: a distance travelled with a given mode, shared
// between passengers.
type Transport struct {
	baseEntry
	Mode       string   `json:"mode"`
	Distance   Quantity `json:"distance"` // km
	Passengers int      `json:"passengers"`
}

// NewTransport creates a new Transport record. A zero day means today.
func NewTransport(day Date, mode string, distance float64, passengers int) Transport {
	return Transport{
		baseEntry:  baseEntry{Activity: CatTransportation, Date: day},
		Mode:       mode,
		Distance:   Q(distance),
		Passengers: passengers,
	}
}

// Validate checks the trip and computes its emissions.
func (t Transport) Validate(f *Factors) (Activity, error) {
	t.baseEntry.validate()
	co2e, err := f.Transportation(t.Mode, t.Distance, t.Passengers)
	if err != nil {
		return t, err
	}
	t.Co2e = co2e
	return t, nil
}

func (t Transport) Equal(other Activity) bool {
	o, ok := other.(Transport)
	return ok && t.baseEntry.equal(o.baseEntry) && t.Mode == o.Mode &&
		t.Distance.Equal(o.Distance) && t.Passengers == o.Passengers
}

// MarshalJSON implements the json.Marshaler interface for Transport.
func (t Transport) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(t.baseEntry)
	w.Append("mode", t.Mode)
	w.Append("distance", t.Distance)
	w.Append("passengers", t.Passengers)
	w.Append("co2e", t.Co2e)
	return w.MarshalJSON()
}

// EnergyUse records a home energy consumption. The amount is normalized to
// kWh during validation (therms are converted for natural gas).
type EnergyUse struct {
	baseEntry
	Type   string   `json:"type"`
	Amount Quantity `json:"amount"`
	Unit   string   `json:"unit"`
}

// NewEnergyUse creates a new EnergyUse record. A zero day means today.
func NewEnergyUse(day Date, energyType string, amount float64, unit string) EnergyUse {
	return EnergyUse{
		baseEntry: baseEntry{Activity: CatEnergy, Date: day},
		Type:      energyType,
		Amount:    Q(amount),
		Unit:      unit,
	}
}

// Validate checks the consumption, normalizes the unit to kWh and computes
// the emissions.
func (t EnergyUse) Validate(f *Factors) (Activity, error) {
	t.baseEntry.validate()
	amount, co2e, err := f.EnergyUsage(t.Type, t.Amount, t.Unit)
	if err != nil {
		return t, err
	}
	t.Amount = amount
	t.Unit = "kWh"
	t.Co2e = co2e
	return t, nil
}

func (t EnergyUse) Equal(other Activity) bool {
	o, ok := other.(EnergyUse)
	return ok && t.baseEntry.equal(o.baseEntry) && t.Type == o.Type &&
		t.Amount.Equal(o.Amount) && t.Unit == o.Unit
}

// MarshalJSON implements the json.Marshaler interface for EnergyUse.
func (t EnergyUse) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(t.baseEntry)
	w.Append("type", t.Type)
	w.Append("amount", t.Amount)
	w.Append("unit", t.Unit)
	w.Append("co2e", t.Co2e)
	return w.MarshalJSON()
}

// FoodItem is one food line of a meal: a weight of a food type, with produce
// flags that scale its emissions down.
type FoodItem struct {
	Type    string   `json:"type"`
	Amount  Quantity `json:"amount"` // kg
	Local   bool     `json:"local,omitempty"`
	Organic bool     `json:"organic,omitempty"`
	Co2e    Co2e     `json:"co2e"` // computed at write time
}

// Item builds a FoodItem from its attributes, emissions not yet computed.
func Item(foodType string, amount float64, local, organic bool) FoodItem {
	return FoodItem{Type: foodType, Amount: Q(amount), Local: local, Organic: organic}
}

func (i FoodItem) equal(o FoodItem) bool {
	return i.Type == o.Type && i.Amount.Equal(o.Amount) && i.Local == o.Local &&
		i.Organic == o.Organic && i.Co2e.Equal(o.Co2e)
}

// Meal records the consumption of a list of food items.
type Meal struct {
	baseEntry
	Items []FoodItem `json:"items"`
}

// NewMeal creates a new Meal record. A zero day means today.
func NewMeal(day Date, items ...FoodItem) Meal {
	return Meal{
		baseEntry: baseEntry{Activity: CatFood, Date: day},
		Items:     items,
	}
}

// Validate checks every item and computes per-item and total emissions.
// A meal with an unknown food type is rejected as a whole.
func (t Meal) Validate(f *Factors) (Activity, error) {
	t.baseEntry.validate()
	if len(t.Items) == 0 {
		return t, fmt.Errorf("%w: meal without items", ErrInvalidInput)
	}
	total := Kg(0)
	items := make([]FoodItem, len(t.Items))
	for i, item := range t.Items {
		co2e, err := f.FoodEmissions(item)
		if err != nil {
			return t, err
		}
		item.Co2e = co2e
		items[i] = item
		total = total.Add(co2e)
	}
	t.Items = items
	t.Co2e = total
	return t, nil
}

func (t Meal) Equal(other Activity) bool {
	o, ok := other.(Meal)
	if !ok || !t.baseEntry.equal(o.baseEntry) || len(t.Items) != len(o.Items) {
		return false
	}
	for i := range t.Items {
		if !t.Items[i].equal(o.Items[i]) {
			return false
		}
	}
	return true
}

// MarshalJSON implements the json.Marshaler interface for Meal.
func (t Meal) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(t.baseEntry)
	w.Append("items", t.Items)
	w.Append("co2e", t.Co2e)
	return w.MarshalJSON()
}

// Purchase records a purchase: a spend in a product category, with an
// eco-friendly flag that halves the estimated emissions.
type Purchase struct {
	baseEntry
	Product string `json:"product"` // product category (clothing, electronics, ...)
	Item    string `json:"item"`    // free-text description
	Price   Money  `json:"price"`
	Eco     bool   `json:"ecoFriendly,omitempty"`
}

// NewPurchase creates a new Purchase record. A zero day means today.
func NewPurchase(day Date, product, item string, price Money, eco bool) Purchase {
	return Purchase{
		baseEntry: baseEntry{Activity: CatPurchase, Date: day},
		Product:   product,
		Item:      item,
		Price:     price,
		Eco:       eco,
	}
}

// Validate checks the purchase and computes its estimated emissions.
func (t Purchase) Validate(f *Factors) (Activity, error) {
	t.baseEntry.validate()
	co2e, err := f.PurchaseEmissions(t.Product, t.Price, t.Eco)
	if err != nil {
		return t, err
	}
	t.Co2e = co2e
	return t, nil
}

func (t Purchase) Equal(other Activity) bool {
	o, ok := other.(Purchase)
	return ok && t.baseEntry.equal(o.baseEntry) && t.Product == o.Product &&
		t.Item == o.Item && t.Price.Equal(o.Price) && t.Eco == o.Eco
}

// MarshalJSON implements the json.Marshaler interface for Purchase.
func (t Purchase) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(t.baseEntry)
	w.Append("product", t.Product)
	w.Append("item", t.Item)
	w.Append("price", t.Price)
	w.Optional("ecoFriendly", t.Eco)
	w.Append("co2e", t.Co2e)
	return w.MarshalJSON()
}

// SubType returns the grouping key of an activity inside its category: the
// transport mode, energy type or product category. Food activities group by
// item type and report one key per item, so they are handled separately.
func SubType(a Activity) string {
	switch v := a.(type) {
	case Transport:
		return v.Mode
	case EnergyUse:
		return v.Type
	case Purchase:
		return v.Product
	default:
		return ""
	}
}

var _ json.Marshaler = Transport{}
var _ json.Marshaler = EnergyUse{}
var _ json.Marshaler = Meal{}
var _ json.Marshaler = Purchase{}
