package date

import (
	"encoding/json"
	"testing"
	"time"
)

// TestStart assert that Start() is canonical and gives comparable times.
func TestStart(t *testing.T) {
	d1 := New(2025, 7, 31)
	d2 := New(2025, 7, 31)

	if d1.Start() != d2.Start() {
		t.Errorf("invalid Start() function same day gives two different time")
	}
}

func TestNewNormalizes(t *testing.T) {
	got := New(2024, time.December, 32)
	if want := New(2025, time.January, 1); got != want {
		t.Errorf("New(2024, 12, 32) = %v, want %v", got, want)
	}
	if got.Year() != 2025 || got.Month() != time.January || got.Day() != 1 {
		t.Errorf("New(2024, 12, 32) parts = %d, %v, %d, want 2025, January, 1", got.Year(), got.Month(), got.Day())
	}
}

func TestEnd(t *testing.T) {
	d := New(2025, time.March, 9)
	end := d.End()
	if !d.Contains(end) {
		t.Errorf("End() = %v is not within %v", end, d)
	}
	if d.Contains(end.Add(time.Nanosecond)) {
		t.Errorf("End()+1ns = %v should be on the next day", end.Add(time.Nanosecond))
	}
}

func TestOf(t *testing.T) {
	warsaw := time.FixedZone("CET", 3600)
	testCases := []struct {
		name string
		t    time.Time
		want Date
	}{
		{"utc midday", time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC), New(2025, 5, 1)},
		{"local just after midnight", time.Date(2025, 5, 1, 0, 30, 0, 0, warsaw), New(2025, 4, 30)},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Of(tc.t); got != tc.want {
				t.Errorf("Of(%v) = %v, want %v", tc.t, got, tc.want)
			}
		})
	}
}

func TestParse(t *testing.T) {
	testCases := []struct {
		in      string
		want    Date
		wantErr bool
	}{
		{"2025-07-01", New(2025, 7, 1), false},
		{"2025-7-1", New(2025, 7, 1), false},
		{"01/07/2025", Date{}, true},
		{"", Date{}, true},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := Parse(tc.in)
			if (err != nil) != tc.wantErr {
				t.Fatalf("Parse(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			}
			if got != tc.want {
				t.Errorf("Parse(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestJSON(t *testing.T) {
	d := New(2024, time.February, 29)
	b, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(b) != `"2024-02-29"` {
		t.Errorf("Marshal() = %s, want %q", b, "2024-02-29")
	}
	var back Date
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if back != d {
		t.Errorf("Unmarshal() = %v, want %v", back, d)
	}
}
