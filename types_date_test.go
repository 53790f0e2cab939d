package footprint

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		in   string
		want Date
	}{
		{"2025-06-15", NewDate(2025, 6, 15)},
		{"2025-6-15", NewDate(2025, 6, 15)},
		{" 2025-06-15 ", NewDate(2025, 6, 15)},
		{"0d", Today()},
		{"-1d", Today().Add(-1)},
		{"+2d", Today().Add(2)},
		{"-1w", Today().Add(-7)},
		{"-1y", NewDate(Today().Year()-1, Today().Month(), Today().Day())},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseDate(tc.in)
			if err != nil {
				t.Fatalf("ParseDate(%q) error: %v", tc.in, err)
			}
			if got != tc.want {
				t.Errorf("ParseDate(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestParseDate_invalid(t *testing.T) {
	for _, in := range []string{"", "tomorrow", "15/06/2025", "1d", "-1x"} {
		if _, err := ParseDate(in); err == nil {
			t.Errorf("ParseDate(%q) succeeded, want error", in)
		}
	}
}

func TestDateAdd(t *testing.T) {
	tests := []struct {
		in   Date
		days int
		want Date
	}{
		{NewDate(2025, 6, 15), 1, NewDate(2025, 6, 16)},
		{NewDate(2025, 6, 30), 1, NewDate(2025, 7, 1)},
		{NewDate(2025, 1, 1), -1, NewDate(2024, 12, 31)},
		{NewDate(2024, 2, 28), 1, NewDate(2024, 2, 29)}, // leap year
		{NewDate(2025, 6, 15), 0, NewDate(2025, 6, 15)},
	}
	for _, tc := range tests {
		if got := tc.in.Add(tc.days); got != tc.want {
			t.Errorf("%v.Add(%d) = %v, want %v", tc.in, tc.days, got, tc.want)
		}
	}
}

func TestDateOrdering(t *testing.T) {
	a := NewDate(2025, 6, 15)
	b := NewDate(2025, 6, 16)
	if !a.Before(b) || b.Before(a) {
		t.Errorf("Before() inconsistent for %v and %v", a, b)
	}
	if !b.After(a) || a.After(b) {
		t.Errorf("After() inconsistent for %v and %v", a, b)
	}
	if a.Before(a) || a.After(a) {
		t.Errorf("a date compares against itself")
	}
}

func TestDateJSON(t *testing.T) {
	d := NewDate(2025, 6, 15)
	b, err := d.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON() error: %v", err)
	}
	if string(b) != `"2025-06-15"` {
		t.Errorf("MarshalJSON() = %s, want %q", b, `"2025-06-15"`)
	}
	var back Date
	if err := back.UnmarshalJSON(b); err != nil {
		t.Fatalf("UnmarshalJSON() error: %v", err)
	}
	if back != d {
		t.Errorf("round trip = %v, want %v", back, d)
	}
}

func TestDateNormalization(t *testing.T) {
	// NewDate normalizes out-of-range components like time.Date does.
	if got, want := NewDate(2025, 6, 31), NewDate(2025, 7, 1); got != want {
		t.Errorf("NewDate(2025, 6, 31) = %v, want %v", got, want)
	}
	if got, want := NewDate(2025, time.Month(13), 1), NewDate(2026, 1, 1); got != want {
		t.Errorf("NewDate(2025, 13, 1) = %v, want %v", got, want)
	}
}
