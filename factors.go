package footprint

import (
	"encoding/json"
	"fmt"
	"io"
	"maps"
)

// Factors is the emissions factor table used by the calculator: a static
// mapping from (category, sub-type) to kg of CO2e per unit.
//
// A Factors value is treated as immutable once built. The calculator takes it
// as an injected configuration so tests and regional variants can swap the
// whole table without touching the ledger.
type Factors struct {
	// Transport maps a transport mode to kg CO2e per km (per vehicle; the
	// calculator divides by the passenger count).
	Transport map[string]Co2e
	// Energy maps an energy type to kg CO2e per kWh.
	Energy map[string]Co2e
	// Food maps a food type to kg CO2e per kg.
	Food map[string]Co2e
	// Purchase maps a product category to kg CO2e per reference price spent.
	Purchase map[string]Co2e

	// ReferencePrice normalizes purchase spends; factors above are per one
	// reference price of spend.
	ReferencePrice Money

	// Multiplicative modifiers. They multiply, they never stack additively.
	Local   Quantity // applied to food items flagged local
	Organic Quantity // applied to food items flagged organic
	Eco     Quantity // applied to purchases flagged eco-friendly
}

// thermsToKWh converts US therms into kWh, supported for natural gas only.
const thermsToKWh = 29.3001

// DefaultFactors returns the built-in factor table.
//
// Transport and energy factors are lifecycle averages per km and kWh; food
// factors are farm-to-fork per kg; purchase factors are rough spend-based
// proxies per unit of currency and should be read as estimates.
func DefaultFactors() *Factors {
	return &Factors{
		Transport: map[string]Co2e{
			"car":     Kg(0.192),
			"bus":     Kg(0.105),
			"train":   Kg(0.041),
			"bicycle": Kg(0),
			"walk":    Kg(0),
			"plane":   Kg(0.255),
		},
		Energy: map[string]Co2e{
			"electricity": Kg(0.233),
			"natural_gas": Kg(0.181),
			"heating_oil": Kg(0.249),
			"propane":     Kg(0.215),
			"renewable":   Kg(0.015),
		},
		Food: map[string]Co2e{
			"beef":       Kg(27.0),
			"lamb":       Kg(39.2),
			"pork":       Kg(12.1),
			"chicken":    Kg(6.9),
			"fish":       Kg(6.1),
			"eggs":       Kg(4.8),
			"rice":       Kg(2.7),
			"milk":       Kg(1.9),
			"cheese":     Kg(13.5),
			"vegetables": Kg(2.0),
			"fruits":     Kg(1.1),
			"beans":      Kg(2.0),
			"nuts":       Kg(2.3),
		},
		Purchase: map[string]Co2e{
			"clothing":    Kg(0.5),
			"electronics": Kg(0.7),
			"furniture":   Kg(0.8),
			"household":   Kg(0.4),
			"hobby":       Kg(0.3),
		},
		ReferencePrice: M(1, "USD"),
		Local:          Q(0.9),
		Organic:        Q(0.85),
		Eco:            Q(0.5),
	}
}

// factorsDoc is the on-disk shape of a regional override file. Every section
// is optional; present entries replace the defaults key by key.
type factorsDoc struct {
	Transport map[string]float64 `json:"transport,omitempty"`
	Energy    map[string]float64 `json:"energy,omitempty"`
	Food      map[string]float64 `json:"food,omitempty"`
	Purchase  map[string]float64 `json:"purchase,omitempty"`

	Local   *float64 `json:"local,omitempty"`
	Organic *float64 `json:"organic,omitempty"`
	Eco     *float64 `json:"eco,omitempty"`
}

// DecodeFactors reads a regional override document and returns a new table:
// the defaults with the overridden entries replaced.
func DecodeFactors(r io.Reader) (*Factors, error) {
	var doc factorsDoc
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("could not decode factors override: %w", err)
	}

	f := DefaultFactors()
	f.Transport = overlay(f.Transport, doc.Transport)
	f.Energy = overlay(f.Energy, doc.Energy)
	f.Food = overlay(f.Food, doc.Food)
	f.Purchase = overlay(f.Purchase, doc.Purchase)
	if doc.Local != nil {
		f.Local = Q(*doc.Local)
	}
	if doc.Organic != nil {
		f.Organic = Q(*doc.Organic)
	}
	if doc.Eco != nil {
		f.Eco = Q(*doc.Eco)
	}
	return f, nil
}

// WithElectricity returns a copy of the table with the electricity factor
// replaced, e.g. by a live grid intensity reading.
func (f *Factors) WithElectricity(c Co2e) *Factors {
	g := *f
	g.Energy = maps.Clone(f.Energy)
	g.Energy["electricity"] = c
	return &g
}

func overlay(base map[string]Co2e, over map[string]float64) map[string]Co2e {
	if len(over) == 0 {
		return base
	}
	merged := maps.Clone(base)
	for k, v := range over {
		merged[k] = Kg(v)
	}
	return merged
}
