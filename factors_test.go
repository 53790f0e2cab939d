package footprint

import (
	"strings"
	"testing"
)

func TestDecodeFactors(t *testing.T) {
	doc := `{
		"transport": {"car": 0.12, "scooter": 0.02},
		"energy": {"electricity": 0.05},
		"local": 0.95,
		"eco": 0.6
	}`
	f, err := DecodeFactors(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("DecodeFactors() error: %v", err)
	}

	// Overridden entries replace the defaults.
	if got := f.Transport["car"]; !got.Equal(Kg(0.12)) {
		t.Errorf("car factor = %v, want 0.12", got)
	}
	// New entries extend the table.
	if got, ok := f.Transport["scooter"]; !ok || !got.Equal(Kg(0.02)) {
		t.Errorf("scooter factor = %v (present %t), want 0.02", got, ok)
	}
	// Untouched entries keep the defaults.
	if got := f.Transport["bus"]; !got.Equal(Kg(0.105)) {
		t.Errorf("bus factor = %v, want default 0.105", got)
	}
	if got := f.Energy["electricity"]; !got.Equal(Kg(0.05)) {
		t.Errorf("electricity factor = %v, want 0.05", got)
	}
	if got := f.Food["beef"]; !got.Equal(Kg(27.0)) {
		t.Errorf("beef factor = %v, want default 27.0", got)
	}

	// Modifier overrides.
	if !f.Local.Equal(Q(0.95)) {
		t.Errorf("local modifier = %v, want 0.95", f.Local)
	}
	if !f.Organic.Equal(Q(0.85)) {
		t.Errorf("organic modifier = %v, want default 0.85", f.Organic)
	}
	if !f.Eco.Equal(Q(0.6)) {
		t.Errorf("eco modifier = %v, want 0.6", f.Eco)
	}
}

func TestDecodeFactors_invalid(t *testing.T) {
	if _, err := DecodeFactors(strings.NewReader("not json")); err == nil {
		t.Error("DecodeFactors() on garbage succeeded, want error")
	}
}

func TestWithElectricity(t *testing.T) {
	f := DefaultFactors()
	g := f.WithElectricity(Kg(0.042))

	if got := g.Energy["electricity"]; !got.Equal(Kg(0.042)) {
		t.Errorf("electricity factor = %v, want 0.042", got)
	}
	// The original table is untouched.
	if got := f.Energy["electricity"]; !got.Equal(Kg(0.233)) {
		t.Errorf("original electricity factor = %v, want 0.233", got)
	}
}
