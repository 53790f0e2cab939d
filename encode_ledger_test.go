package footprint

import (
	"bytes"
	"strings"
	"testing"
)

func TestEncodeDecodeLedger(t *testing.T) {
	f := DefaultFactors()
	l := NewLedger()
	l.Append(
		mustValidate(t, NewTransport(NewDate(2025, 6, 15), "car", 15.5, 2), f),
		mustValidate(t, NewEnergyUse(NewDate(2025, 6, 14), "natural_gas", 2, "therms"), f),
		mustValidate(t, NewMeal(NewDate(2025, 6, 13),
			Item("vegetables", 0.4, true, true),
			Item("rice", 0.2, false, false),
		), f),
		mustValidate(t, NewPurchase(NewDate(2025, 6, 12), "clothing", "jacket", M(79.99, "USD"), true), f),
	)

	var buf bytes.Buffer
	if err := EncodeLedger(&buf, l); err != nil {
		t.Fatalf("EncodeLedger() error: %v", err)
	}

	back, err := DecodeLedger(&buf)
	if err != nil {
		t.Fatalf("DecodeLedger() error: %v", err)
	}
	if back.Len() != l.Len() {
		t.Fatalf("round trip kept %d records, want %d", back.Len(), l.Len())
	}
	var decoded []Activity
	for _, a := range back.Activities(AcceptAll) {
		decoded = append(decoded, a)
	}
	for i, a := range l.Activities(AcceptAll) {
		if !a.Equal(decoded[i]) {
			t.Errorf("record %d changed over the round trip:\n got %+v\nwant %+v", i, decoded[i], a)
		}
	}
}

func TestEncodeLedgerLayout(t *testing.T) {
	f := DefaultFactors()
	l := NewLedger()
	l.Append(mustValidate(t, NewTransport(NewDate(2025, 6, 15), "car", 10, 1), f))

	var buf bytes.Buffer
	if err := EncodeLedger(&buf, l); err != nil {
		t.Fatalf("EncodeLedger() error: %v", err)
	}
	doc := buf.String()

	// One record per line between the brackets.
	lines := strings.Split(strings.TrimSpace(doc), "\n")
	if len(lines) != 3 || lines[0] != "[" || lines[len(lines)-1] != "]" {
		t.Fatalf("unexpected document layout:\n%s", doc)
	}
	// The discriminator leads every record.
	if !strings.HasPrefix(strings.TrimSpace(lines[1]), `{"activity":"transportation"`) {
		t.Errorf("record does not lead with its discriminator: %s", lines[1])
	}
	// Emissions are stored as a bare number.
	if !strings.Contains(lines[1], `"co2e":1.92`) {
		t.Errorf("co2e not stored as a number: %s", lines[1])
	}
}

func TestDecodeLedgerSortsRecords(t *testing.T) {
	doc := `[
  {"activity":"transportation","id":"B","date":"2025-06-15","mode":"car","distance":10,"passengers":1,"co2e":1.92},
  {"activity":"transportation","id":"A","date":"2025-06-10","mode":"bus","distance":10,"passengers":1,"co2e":1.05}
]`
	l, err := DecodeLedger(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("DecodeLedger() error: %v", err)
	}
	if l.OldestActivityDate() != NewDate(2025, 6, 10) {
		t.Errorf("hand-edited document was not re-sorted")
	}
}

func TestDecodeLedger_errors(t *testing.T) {
	if _, err := DecodeLedger(strings.NewReader("{}")); err == nil {
		t.Error("DecodeLedger() accepted a non-array document")
	}
	if _, err := DecodeLedger(strings.NewReader(`[{"activity":"teleport","id":"A","date":"2025-06-10"}]`)); err == nil {
		t.Error("DecodeLedger() accepted an unknown activity discriminator")
	}
}
