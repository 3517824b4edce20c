package date

import (
	"testing"
	"time"
)

// TestTime assert that the time() is cannonical and gives comparable times.
func TestTime(t *testing.T) {
	d1 := New(2025, 7, 31)
	d2 := New(2025, 7, 31)

	if d1.time() != d2.time() {
		// Note that usually time.Time are not comparable (there is a pointer for the timezone) this
		// tests also checks that the property remain true
		t.Errorf("invalid time() function same day gives two different time")
	}
}

func TestNewNormalizes(t *testing.T) {
	// Day 32 of January must roll over into February.
	d := New(2024, time.January, 32)
	if got, want := d.String(), "2024-02-01"; got != want {
		t.Errorf("New(2024, 1, 32) = %s, want %s", got, want)
	}
}

func TestParse(t *testing.T) {
	testCases := []struct {
		name      string
		in        string
		want      string
		expectErr bool
	}{
		{"Canonical", "2020-01-01", "2020-01-01", false},
		{"Permissive single digits", "2025-7-1", "2025-07-01", false},
		{"Garbage", "not-a-date", "", true},
		{"Empty", "", "", true},
		{"US format", "01/02/2020", "", true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d, err := Parse(tc.in)
			hasErr := err != nil
			if hasErr != tc.expectErr {
				t.Fatalf("Parse(%q) returned error: %v, want error: %v", tc.in, err, tc.expectErr)
			}
			if !hasErr && d.String() != tc.want {
				t.Errorf("Parse(%q) = %s, want %s", tc.in, d, tc.want)
			}
		})
	}
}

func TestSub(t *testing.T) {
	testCases := []struct {
		name string
		a, b string
		want int
	}{
		{"Same day", "2024-02-04", "2024-02-04", 0},
		{"One day", "2024-02-05", "2024-02-04", 1},
		{"Across leap day", "2024-03-01", "2024-02-28", 2},
		{"One year", "2021-01-01", "2020-01-01", 366}, // 2020 is a leap year
		{"Negative", "2020-01-01", "2020-01-10", -9},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := MustParse(tc.a).Sub(MustParse(tc.b))
			if got != tc.want {
				t.Errorf("%s.Sub(%s) = %d, want %d", tc.a, tc.b, got, tc.want)
			}
		})
	}
}

func TestAddMonths(t *testing.T) {
	d := MustParse("2020-01-31").AddMonths(1)
	// time.Date normalization: Feb 31 rolls over to Mar 2 (leap year).
	if got, want := d.String(), "2020-03-02"; got != want {
		t.Errorf("AddMonths(1) = %s, want %s", got, want)
	}
}

func TestJSONRoundTrip(t *testing.T) {
	d := MustParse("2024-02-04")
	b, err := d.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON() unexpected error = %v", err)
	}
	var back Date
	if err := back.UnmarshalJSON(b); err != nil {
		t.Fatalf("UnmarshalJSON(%s) unexpected error = %v", b, err)
	}
	if back != d {
		t.Errorf("round trip = %s, want %s", back, d)
	}
}
