package model

import "testing"

func TestOccupancyRate(t *testing.T) {
	lot := ParkingLot{NumberOfSpaces: 100, AvailableSpaces: 25}
	if got := lot.OccupancyRate(); got != 75 {
		t.Errorf("OccupancyRate = %v, want 75", got)
	}

	full := ParkingLot{NumberOfSpaces: 10, AvailableSpaces: 0}
	if got := full.OccupancyRate(); got != 100 {
		t.Errorf("OccupancyRate = %v, want 100", got)
	}

	empty := ParkingLot{NumberOfSpaces: 10, AvailableSpaces: 10}
	if got := empty.OccupancyRate(); got != 0 {
		t.Errorf("OccupancyRate = %v, want 0", got)
	}
}

func TestOccupancyRate_ZeroCapacity(t *testing.T) {
	lot := ParkingLot{NumberOfSpaces: 0, AvailableSpaces: 0}
	if got := lot.OccupancyRate(); got != 0 {
		t.Errorf("zero-capacity lot OccupancyRate = %v, want 0", got)
	}
}
