package model

import (
	"math"
	"time"
)

// ParkingRecord is one vehicle's stay, from entry to exit. A record with a nil
// ExitTime is active; at most one active record exists per plate number across
// all lots. Once ExitTime and ChargedAmount are set the record is immutable.
type ParkingRecord struct {
	ID            string     `db:"id" json:"id"`
	PlateNumber   string     `db:"plate_number" json:"plateNumber"`
	ParkingCode   string     `db:"parking_code" json:"parkingCode"`
	EntryTime     time.Time  `db:"entry_time" json:"entryTime"`
	ExitTime      *time.Time `db:"exit_time" json:"exitTime"`
	ChargedAmount *float64   `db:"charged_amount" json:"chargedAmount"`
}

// ActiveRecord is a ParkingRecord joined with its lot's display fields for the
// attendant dashboard.
type ActiveRecord struct {
	ParkingRecord
	ParkingName     string  `db:"parking_name" json:"parkingName"`
	ParkingLocation string  `db:"parking_location" json:"parkingLocation"`
	FeePerHour      float64 `db:"fee_per_hour" json:"chargingFeePerHour"`
}

// CarEntryRequest represents an attendant's car-entry request.
type CarEntryRequest struct {
	PlateNumber string `json:"plateNumber"`
	ParkingCode string `json:"parkingCode"`
}

// CarExitRequest represents an attendant's car-exit request.
type CarExitRequest struct {
	RecordID string `json:"recordId"`
}

// ExitReceipt is the billing summary returned when a car exits.
type ExitReceipt struct {
	RecordID      string    `json:"recordId"`
	PlateNumber   string    `json:"plateNumber"`
	TotalHours    int       `json:"totalHours"`
	ChargedAmount float64   `json:"chargedAmount"`
	ExitTime      time.Time `json:"exitTime"`
}

// BillableHours computes the number of hours charged for a stay: fractional
// hours round up and every stay is billed at least one hour.
func BillableHours(entry, exit time.Time) int {
	hours := int(math.Ceil(exit.Sub(entry).Hours()))
	if hours < 1 {
		return 1
	}
	return hours
}
