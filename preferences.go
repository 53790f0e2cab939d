package footprint

import "fmt"

// Preferences are the user's behavior flags, used to pick which tips and
// products to surface. They are persisted next to the activity records.
type Preferences struct {
	DietType         string   `json:"diet_type,omitempty"`
	HomeType         string   `json:"home_type,omitempty"`
	PrimaryTransport string   `json:"transportation_primary,omitempty"`
	Interests        []string `json:"interests,omitempty"`
}

// DefaultPreferences returns the preferences of a fresh user store.
func DefaultPreferences() Preferences {
	return Preferences{
		DietType:         "omnivore",
		HomeType:         "apartment",
		PrimaryTransport: "car",
	}
}

// Merge applies the given key-value updates. Only known keys are accepted;
// an unknown key or a badly typed value is rejected without touching p.
func (p *Preferences) Merge(updates map[string]any) error {
	merged := *p
	for key, value := range updates {
		switch key {
		case "diet_type", "home_type", "transportation_primary":
			s, ok := value.(string)
			if !ok {
				return fmt.Errorf("%w: preference %q wants a string, got %T", ErrInvalidInput, key, value)
			}
			switch key {
			case "diet_type":
				merged.DietType = s
			case "home_type":
				merged.HomeType = s
			case "transportation_primary":
				merged.PrimaryTransport = s
			}
		case "interests":
			interests, err := toStrings(value)
			if err != nil {
				return fmt.Errorf("%w: preference %q: %v", ErrInvalidInput, key, err)
			}
			merged.Interests = interests
		default:
			return fmt.Errorf("%w: unknown preference %q", ErrInvalidInput, key)
		}
	}
	*p = merged
	return nil
}

// toStrings accepts []string directly or []any as decoded from JSON.
func toStrings(value any) ([]string, error) {
	switch v := value.(type) {
	case []string:
		return v, nil
	case []any:
		out := make([]string, 0, len(v))
		for _, e := range v {
			s, ok := e.(string)
			if !ok {
				return nil, fmt.Errorf("wants strings, got %T", e)
			}
			out = append(out, s)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("wants a list of strings, got %T", value)
	}
}
