package model

import (
	"testing"
	"time"
)

func TestBillableHours_MinimumOneHour(t *testing.T) {
	entry := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	if got := BillableHours(entry, entry.Add(59*time.Second)); got != 1 {
		t.Errorf("59s stay billed %d hours, want 1", got)
	}
	if got := BillableHours(entry, entry); got != 1 {
		t.Errorf("zero-duration stay billed %d hours, want 1", got)
	}
}

func TestBillableHours_RoundsUp(t *testing.T) {
	entry := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	if got := BillableHours(entry, entry.Add(61*time.Minute)); got != 2 {
		t.Errorf("61m stay billed %d hours, want 2", got)
	}
	if got := BillableHours(entry, entry.Add(3*time.Hour+10*time.Minute)); got != 4 {
		t.Errorf("3h10m stay billed %d hours, want 4", got)
	}
}

func TestBillableHours_ExactHours(t *testing.T) {
	entry := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	if got := BillableHours(entry, entry.Add(2*time.Hour)); got != 2 {
		t.Errorf("exact 2h stay billed %d hours, want 2", got)
	}
}
