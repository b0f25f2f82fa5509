package service

import (
	"testing"
	"time"

	"github.com/parkwell/parkwell-go/internal/model"
)

func TestParseRange(t *testing.T) {
	rng, err := ParseRange("2025-06-01T00:00:00Z", "2025-06-30T23:59:59Z")
	if err != nil {
		t.Fatalf("ParseRange: %v", err)
	}
	if !rng.From.Before(rng.To) {
		t.Error("expected from < to")
	}
}

func TestParseRange_Invalid(t *testing.T) {
	cases := []struct{ from, to string }{
		{"", ""},
		{"2025-06-01", "2025-06-30T00:00:00Z"},
		{"2025-06-01T00:00:00Z", "yesterday"},
		{"2025-06-30T00:00:00Z", "2025-06-01T00:00:00Z"}, // from after to
	}
	for _, c := range cases {
		if _, err := ParseRange(c.from, c.to); err != ErrInvalidRange {
			t.Errorf("ParseRange(%q, %q): expected ErrInvalidRange, got %v", c.from, c.to, err)
		}
	}
}

func TestParseRange_EqualBoundsAllowed(t *testing.T) {
	if _, err := ParseRange("2025-06-01T00:00:00Z", "2025-06-01T00:00:00Z"); err != nil {
		t.Errorf("from == to should be accepted, got %v", err)
	}
}

func recordAt(entry time.Time) model.ActiveRecord {
	return model.ActiveRecord{ParkingRecord: model.ParkingRecord{EntryTime: entry}}
}

func TestPeakHour_TieBreaksOnLowestHour(t *testing.T) {
	day := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	records := []model.ActiveRecord{
		recordAt(day.Add(14 * time.Hour)),
		recordAt(day.Add(14*time.Hour + 30*time.Minute)),
		recordAt(day.Add(9 * time.Hour)),
		recordAt(day.Add(9*time.Hour + 15*time.Minute)),
		recordAt(day.Add(11 * time.Hour)),
	}

	peak := peakHour(hourlyDistribution(records))
	if peak == nil {
		t.Fatal("expected a peak hour")
	}
	// Hours 9 and 14 both have two entries; the lower hour wins.
	if peak.Hour != 9 || peak.Count != 2 {
		t.Errorf("peak = %+v, want hour 9 count 2", peak)
	}
}

func TestPeakHour_Empty(t *testing.T) {
	if peak := peakHour(hourlyDistribution(nil)); peak != nil {
		t.Errorf("expected nil peak for no records, got %+v", peak)
	}
}

func TestAverageStayHours(t *testing.T) {
	entry := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	oneHour := entry.Add(time.Hour)
	threeHours := entry.Add(3 * time.Hour)

	records := []model.ActiveRecord{
		{ParkingRecord: model.ParkingRecord{EntryTime: entry, ExitTime: &oneHour}},
		{ParkingRecord: model.ParkingRecord{EntryTime: entry, ExitTime: &threeHours}},
	}

	if got := averageStayHours(records); got != 2 {
		t.Errorf("averageStayHours = %v, want 2", got)
	}
}

func TestAverageStayHours_EmptySet(t *testing.T) {
	if got := averageStayHours(nil); got != 0 {
		t.Errorf("averageStayHours(nil) = %v, want 0", got)
	}
}

func TestTotalCharged_SkipsOpenRecords(t *testing.T) {
	ten := 10.0
	five := 5.0
	records := []model.ActiveRecord{
		{ParkingRecord: model.ParkingRecord{ChargedAmount: &ten}},
		{ParkingRecord: model.ParkingRecord{ChargedAmount: &five}},
		{ParkingRecord: model.ParkingRecord{}}, // still open, no charge
	}

	if got := totalCharged(records); got != 15 {
		t.Errorf("totalCharged = %v, want 15", got)
	}
}
