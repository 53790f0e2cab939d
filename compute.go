package footprint

import "fmt"

// This file is the emissions calculator: pure functions from activity
// attributes to a CO2e mass, driven only by the injected factor table.

// Transportation computes the emissions of a trip: factor[mode] × distance,
// shared between passengers.
//
// A passenger count of zero or less is treated as a single passenger. A
// negative distance is rejected.
func (f *Factors) Transportation(mode string, distance Quantity, passengers int) (Co2e, error) {
	factor, ok := f.Transport[mode]
	if !ok {
		return Co2e{}, fmt.Errorf("%w: transport mode %q", ErrUnknownCategory, mode)
	}
	if distance.IsNegative() {
		return Co2e{}, fmt.Errorf("%w: negative distance %s km", ErrInvalidInput, distance)
	}
	if passengers <= 0 {
		passengers = 1
	}
	return factor.Mul(distance).Div(Q(passengers)), nil
}

// EnergyUsage computes the emissions of a home energy consumption:
// factor[type] × amount in kWh. It returns the amount normalized to kWh
// alongside the emissions; therms are accepted for natural gas only.
func (f *Factors) EnergyUsage(energyType string, amount Quantity, unit string) (Quantity, Co2e, error) {
	factor, ok := f.Energy[energyType]
	if !ok {
		return Quantity{}, Co2e{}, fmt.Errorf("%w: energy type %q", ErrUnknownCategory, energyType)
	}
	if amount.IsNegative() {
		return Quantity{}, Co2e{}, fmt.Errorf("%w: negative amount %s %s", ErrInvalidInput, amount, unit)
	}
	switch unit {
	case "kWh":
	case "therms":
		if energyType != "natural_gas" {
			return Quantity{}, Co2e{}, fmt.Errorf("%w: therms are only supported for natural_gas, not %q", ErrInvalidInput, energyType)
		}
		amount = amount.Mul(Q(thermsToKWh))
	default:
		return Quantity{}, Co2e{}, fmt.Errorf("%w: unsupported energy unit %q (want kWh or therms)", ErrInvalidInput, unit)
	}
	return amount, factor.Mul(amount), nil
}

// FoodEmissions computes the emissions of a single food item:
// factor[type] × amount, scaled down for local and organic produce.
// The two modifiers multiply, they do not stack additively.
func (f *Factors) FoodEmissions(item FoodItem) (Co2e, error) {
	if item.Type == "" {
		return Co2e{}, fmt.Errorf("%w: food item without a type", ErrInvalidInput)
	}
	factor, ok := f.Food[item.Type]
	if !ok {
		return Co2e{}, fmt.Errorf("%w: food type %q", ErrUnknownCategory, item.Type)
	}
	if item.Amount.IsNegative() {
		return Co2e{}, fmt.Errorf("%w: negative amount %s kg of %s", ErrInvalidInput, item.Amount, item.Type)
	}
	co2e := factor.Mul(item.Amount)
	if item.Local {
		co2e = co2e.Mul(f.Local)
	}
	if item.Organic {
		co2e = co2e.Mul(f.Organic)
	}
	return co2e, nil
}

// PurchaseEmissions computes the emissions of a purchase from its price:
// factor[category] × (price / reference price), halved for eco-friendly
// products. The spend-based factor is a rough proxy, not a lifecycle figure.
func (f *Factors) PurchaseEmissions(category string, price Money, eco bool) (Co2e, error) {
	factor, ok := f.Purchase[category]
	if !ok {
		return Co2e{}, fmt.Errorf("%w: product category %q", ErrUnknownCategory, category)
	}
	if price.IsNegative() {
		return Co2e{}, fmt.Errorf("%w: negative price %s", ErrInvalidInput, price)
	}
	co2e := factor.Mul(price.DivPrice(f.ReferencePrice))
	if eco {
		co2e = co2e.Mul(f.Eco)
	}
	return co2e, nil
}
