package date

import "testing"

func TestHistoryAppendSorts(t *testing.T) {
	h := &History[float64]{}
	h.Append(MustParse("2024-01-03"), 3)
	h.Append(MustParse("2024-01-01"), 1)
	h.Append(MustParse("2024-01-02"), 2)

	var got []float64
	for _, v := range h.Values() {
		got = append(got, v)
	}
	want := []float64{1, 2, 3}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Values() = %v, want %v", got, want)
		}
	}
}

func TestHistoryAppendOverwrites(t *testing.T) {
	h := &History[float64]{}
	on := MustParse("2024-01-01")
	h.Append(on, 1).Append(on, 2)
	if h.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", h.Len())
	}
	if v, _ := h.Get(on); v != 2 {
		t.Errorf("Get() = %v, want 2 (last write wins)", v)
	}
}

func TestHistoryAsOf(t *testing.T) {
	h := &History[float64]{}
	h.Append(MustParse("2024-01-05"), 105) // Friday
	h.Append(MustParse("2024-01-08"), 108) // Monday

	testCases := []struct {
		name    string
		on      string
		wantDay string
		wantVal float64
		ok      bool
	}{
		{"Exact observation", "2024-01-05", "2024-01-05", 105, true},
		{"Saturday snaps to Friday", "2024-01-06", "2024-01-05", 105, true},
		{"Sunday snaps to Friday", "2024-01-07", "2024-01-05", 105, true},
		{"After last observation", "2024-01-20", "2024-01-08", 108, true},
		{"Before first observation", "2024-01-01", "", 0, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			day, val, ok := h.AsOf(MustParse(tc.on))
			if ok != tc.ok {
				t.Fatalf("AsOf(%s) ok = %v, want %v", tc.on, ok, tc.ok)
			}
			if !ok {
				return
			}
			if day != MustParse(tc.wantDay) || val != tc.wantVal {
				t.Errorf("AsOf(%s) = (%s, %v), want (%s, %v)", tc.on, day, val, tc.wantDay, tc.wantVal)
			}
		})
	}
}

func TestHistoryLatest(t *testing.T) {
	h := &History[float64]{}
	if day, _ := h.Latest(); !day.IsZero() {
		t.Errorf("Latest() on empty history = %s, want zero date", day)
	}
	h.Append(MustParse("2024-01-01"), 1)
	h.Append(MustParse("2024-01-09"), 9)
	day, v := h.Latest()
	if day != MustParse("2024-01-09") || v != 9 {
		t.Errorf("Latest() = (%s, %v), want (2024-01-09, 9)", day, v)
	}
}
