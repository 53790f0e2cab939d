package footprint

import (
	"errors"
	"strings"
	"testing"
)

func TestTransportation(t *testing.T) {
	f := DefaultFactors()

	tests := []struct {
		name       string
		mode       string
		distance   float64
		passengers int
		want       Co2e
	}{
		{"car commute", "car", 15.5, 1, Kg(2.976)},
		{"shared car", "car", 15.5, 2, Kg(1.488)},
		{"zero passengers counts as one", "car", 15.5, 0, Kg(2.976)},
		{"negative passengers counts as one", "car", 15.5, -3, Kg(2.976)},
		{"bus", "bus", 10, 1, Kg(1.05)},
		{"train", "train", 100, 1, Kg(4.1)},
		{"bicycle is free", "bicycle", 42, 1, Kg(0)},
		{"zero distance", "plane", 0, 1, Kg(0)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := f.Transportation(tc.mode, Q(tc.distance), tc.passengers)
			if err != nil {
				t.Fatalf("Transportation() error: %v", err)
			}
			if !got.Equal(tc.want) {
				t.Errorf("Transportation(%q, %v, %d) = %v, want %v", tc.mode, tc.distance, tc.passengers, got, tc.want)
			}
		})
	}
}

func TestTransportation_errors(t *testing.T) {
	f := DefaultFactors()

	if _, err := f.Transportation("rocket", Q(10.0), 1); !errors.Is(err, ErrUnknownCategory) {
		t.Errorf("Transportation(rocket) error = %v, want ErrUnknownCategory", err)
	}
	if _, err := f.Transportation("car", Q(-1.0), 1); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Transportation(-1km) error = %v, want ErrInvalidInput", err)
	}
}

func TestEnergyUsage(t *testing.T) {
	f := DefaultFactors()

	tests := []struct {
		name       string
		energyType string
		amount     float64
		unit       string
		wantAmount Quantity
		want       Co2e
	}{
		{"electricity", "electricity", 100, "kWh", Q(100), Kg(23.3)},
		{"renewable", "renewable", 100, "kWh", Q(100), Kg(1.5)},
		{"gas in kWh", "natural_gas", 10, "kWh", Q(10), Kg(1.81)},
		{"gas in therms", "natural_gas", 2, "therms", Q(58.6002), Kg(10.6066362)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			amount, got, err := f.EnergyUsage(tc.energyType, Q(tc.amount), tc.unit)
			if err != nil {
				t.Fatalf("EnergyUsage() error: %v", err)
			}
			if !amount.Equal(tc.wantAmount) {
				t.Errorf("EnergyUsage(%q) normalized amount = %v, want %v", tc.energyType, amount, tc.wantAmount)
			}
			if !got.Equal(tc.want) {
				t.Errorf("EnergyUsage(%q, %v, %q) = %v, want %v", tc.energyType, tc.amount, tc.unit, got, tc.want)
			}
		})
	}
}

func TestEnergyUsage_errors(t *testing.T) {
	f := DefaultFactors()

	if _, _, err := f.EnergyUsage("plutonium", Q(1.0), "kWh"); !errors.Is(err, ErrUnknownCategory) {
		t.Errorf("EnergyUsage(plutonium) error = %v, want ErrUnknownCategory", err)
	}
	if _, _, err := f.EnergyUsage("electricity", Q(-1.0), "kWh"); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("EnergyUsage(-1kWh) error = %v, want ErrInvalidInput", err)
	}
	// therms are a natural gas unit only.
	if _, _, err := f.EnergyUsage("electricity", Q(1.0), "therms"); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("EnergyUsage(electricity, therms) error = %v, want ErrInvalidInput", err)
	}
	if _, _, err := f.EnergyUsage("electricity", Q(1.0), "joules"); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("EnergyUsage(joules) error = %v, want ErrInvalidInput", err)
	}
}

func TestFoodEmissions(t *testing.T) {
	// 1.2 kg/kg for vegetables to exercise a custom table.
	f, err := DecodeFactors(strings.NewReader(`{"food": {"vegetables": 1.2}}`))
	if err != nil {
		t.Fatalf("DecodeFactors() error: %v", err)
	}

	tests := []struct {
		name string
		item FoodItem
		want Co2e
	}{
		{"plain", Item("vegetables", 0.4, false, false), Kg(0.48)},
		{"local", Item("vegetables", 0.4, true, false), Kg(0.432)},
		{"organic", Item("vegetables", 0.4, false, true), Kg(0.408)},
		{"local and organic multiply", Item("vegetables", 0.4, true, true), Kg(0.3672)},
		{"default factor untouched", Item("beef", 0.25, false, false), Kg(6.75)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := f.FoodEmissions(tc.item)
			if err != nil {
				t.Fatalf("FoodEmissions() error: %v", err)
			}
			if !got.Equal(tc.want) {
				t.Errorf("FoodEmissions(%+v) = %v, want %v", tc.item, got, tc.want)
			}
		})
	}
}

func TestFoodEmissions_errors(t *testing.T) {
	f := DefaultFactors()

	if _, err := f.FoodEmissions(Item("unobtainium", 1, false, false)); !errors.Is(err, ErrUnknownCategory) {
		t.Errorf("FoodEmissions(unobtainium) error = %v, want ErrUnknownCategory", err)
	}
	if _, err := f.FoodEmissions(Item("", 1, false, false)); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("FoodEmissions(no type) error = %v, want ErrInvalidInput", err)
	}
	if _, err := f.FoodEmissions(Item("beef", -1, false, false)); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("FoodEmissions(-1kg) error = %v, want ErrInvalidInput", err)
	}
}

func TestPurchaseEmissions(t *testing.T) {
	f := DefaultFactors()

	tests := []struct {
		name     string
		category string
		price    Money
		eco      bool
		want     Co2e
	}{
		{"clothing", "clothing", M(80, "USD"), false, Kg(40)},
		{"eco-friendly counts half", "clothing", M(80, "USD"), true, Kg(20)},
		{"electronics", "electronics", M(1000, "USD"), false, Kg(700)},
		{"free", "household", M(0, "USD"), false, Kg(0)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := f.PurchaseEmissions(tc.category, tc.price, tc.eco)
			if err != nil {
				t.Fatalf("PurchaseEmissions() error: %v", err)
			}
			if !got.Equal(tc.want) {
				t.Errorf("PurchaseEmissions(%q, %v, %t) = %v, want %v", tc.category, tc.price, tc.eco, got, tc.want)
			}
		})
	}
}

func TestPurchaseEmissions_errors(t *testing.T) {
	f := DefaultFactors()

	// Unknown product categories are rejected, never silently defaulted.
	if _, err := f.PurchaseEmissions("yacht", M(1, "USD"), false); !errors.Is(err, ErrUnknownCategory) {
		t.Errorf("PurchaseEmissions(yacht) error = %v, want ErrUnknownCategory", err)
	}
	if _, err := f.PurchaseEmissions("clothing", M(-1, "USD"), false); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("PurchaseEmissions(-1) error = %v, want ErrInvalidInput", err)
	}
}
