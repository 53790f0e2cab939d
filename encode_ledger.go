package footprint

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// DecodeLedger decodes a store document: a JSON array of activity records,
// each carrying an "activity" discriminator field. It returns a sorted Ledger.
func DecodeLedger(r io.Reader) (*Ledger, error) {
	var raws []json.RawMessage
	if err := json.NewDecoder(r).Decode(&raws); err != nil {
		return nil, fmt.Errorf("could not decode store document: %w", err)
	}

	ledger := NewLedger()
	for _, raw := range raws {
		a, err := decodeActivity(raw)
		if err != nil {
			return nil, err
		}
		ledger.activities = append(ledger.activities, a)
	}
	// Trust but verify: documents are written sorted, hand edits may not be.
	ledger.stableSort()
	return ledger, nil
}

// decodeActivity decodes a single record into the struct matching its
// discriminator.
func decodeActivity(data []byte) (Activity, error) {
	var identifier struct {
		Activity Category `json:"activity"`
	}
	if err := json.Unmarshal(data, &identifier); err != nil {
		return nil, fmt.Errorf("could not identify activity in record %q: %w", string(data), err)
	}

	switch identifier.Activity {
	case CatTransportation:
		var t Transport
		if err := json.Unmarshal(data, &t); err != nil {
			return nil, err
		}
		return t, nil
	case CatEnergy:
		var t EnergyUse
		if err := json.Unmarshal(data, &t); err != nil {
			return nil, err
		}
		return t, nil
	case CatFood:
		var t Meal
		if err := json.Unmarshal(data, &t); err != nil {
			return nil, err
		}
		return t, nil
	case CatPurchase:
		var t Purchase
		if err := json.Unmarshal(data, &t); err != nil {
			return nil, err
		}
		return t, nil
	default:
		return nil, fmt.Errorf("%w: activity %q in store document", ErrUnknownCategory, identifier.Activity)
	}
}

// EncodeLedger writes the ledger as a JSON array, one record per line so the
// document stays readable and diffable.
func EncodeLedger(w io.Writer, ledger *Ledger) error {
	if _, err := fmt.Fprintln(w, "["); err != nil {
		return err
	}
	n := ledger.Len()
	for i, a := range ledger.Activities(AcceptAll) {
		b, err := json.Marshal(a)
		if err != nil {
			return fmt.Errorf("could not encode activity %s: %w", a.ID(), err)
		}
		sep := ","
		if i == n-1 {
			sep = ""
		}
		if _, err := fmt.Fprintf(w, "  %s%s\n", b, sep); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "]")
	return err
}
