package footprint

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Co2e is a mass of carbon-dioxide-equivalent, in kilograms.
//
// It is kept as an exact decimal so that stored emissions remain equal to
// factor × quantity × modifiers, whatever the display rounding.
type Co2e struct {
	value decimal.Decimal
}

func Kg[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) Co2e {
	return Co2e{value: newDecimal(value)}
}

func (c Co2e) Equal(n Co2e) bool       { return c.value.Equal(n.value) }
func (c Co2e) IsZero() bool            { return c.value.IsZero() }
func (c Co2e) IsNegative() bool        { return c.value.IsNegative() }
func (c Co2e) LessThan(n Co2e) bool    { return c.value.LessThan(n.value) }
func (c Co2e) GreaterThan(n Co2e) bool { return c.value.GreaterThan(n.value) }
func (c Co2e) Add(n Co2e) Co2e         { return Co2e{value: c.value.Add(n.value)} }
func (c Co2e) Sub(n Co2e) Co2e         { return Co2e{value: c.value.Sub(n.value)} }

// Mul scales the mass by a quantity (distance, weight, spend ratio).
func (c Co2e) Mul(q Quantity) Co2e { return Co2e{value: c.value.Mul(q.value)} }

// Div divides the mass by a quantity (e.g. passengers).
func (c Co2e) Div(q Quantity) Co2e { return Co2e{value: c.value.Div(q.value)} }

// String renders the mass rounded to the gram-free precision used in reports.
func (c Co2e) String() string {
	return fmt.Sprintf("%s kg", c.value.StringFixed(2))
}

// AsFloat returns the mass as a float64 for chart scaling only; all
// accounting stays in decimal.
func (c Co2e) AsFloat() float64 { return c.value.InexactFloat64() }

// PercentOf returns (c-n)/n in percent, rounded to one decimal.
// Returns 0 when n is zero.
func (c Co2e) PercentOf(n Co2e) decimal.Decimal {
	if n.IsZero() {
		return decimal.Zero
	}
	return c.value.Sub(n.value).Div(n.value).Mul(newDecimal(100)).Round(1)
}

func (c Co2e) MarshalJSON() ([]byte, error) {
	return c.value.MarshalJSON()
}

func (c *Co2e) UnmarshalJSON(b []byte) error {
	return c.value.UnmarshalJSON(b)
}
