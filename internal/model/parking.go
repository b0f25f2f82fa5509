package model

import "time"

// ParkingLot represents a parking facility with a fixed capacity and hourly fee.
// Invariant: 0 <= AvailableSpaces <= NumberOfSpaces.
type ParkingLot struct {
	ID              string    `db:"id" json:"id"`
	Code            string    `db:"code" json:"code"`
	Name            string    `db:"name" json:"name"`
	Location        string    `db:"location" json:"location"`
	NumberOfSpaces  int       `db:"number_of_spaces" json:"numberOfSpaces"`
	AvailableSpaces int       `db:"available_spaces" json:"availableSpaces"`
	FeePerHour      float64   `db:"fee_per_hour" json:"chargingFeePerHour"`
	CreatedAt       time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt       time.Time `db:"updated_at" json:"updatedAt"`
}

// CreateParkingRequest represents the admin request to register a new lot.
type CreateParkingRequest struct {
	Code           string  `json:"code"`
	Name           string  `json:"name"`
	Location       string  `json:"location"`
	NumberOfSpaces int     `json:"numberOfSpaces"`
	FeePerHour     float64 `json:"chargingFeePerHour"`
}

// UpdateParkingRequest represents the admin request to change lot metadata.
// Nil fields are left untouched.
type UpdateParkingRequest struct {
	Name           *string  `json:"name"`
	Location       *string  `json:"location"`
	NumberOfSpaces *int     `json:"numberOfSpaces"`
	FeePerHour     *float64 `json:"chargingFeePerHour"`
}

// ParkingStat is one row of the stats overview: lot capacity plus the total
// number of parking records ever written against it.
type ParkingStat struct {
	Code            string `db:"code" json:"code"`
	Name            string `db:"name" json:"name"`
	NumberOfSpaces  int    `db:"number_of_spaces" json:"numberOfSpaces"`
	AvailableSpaces int    `db:"available_spaces" json:"availableSpaces"`
	TotalRecords    int    `db:"total_records" json:"totalRecords"`
}

// ParkingUtilization is the live occupancy view of a single lot.
type ParkingUtilization struct {
	Code               string  `json:"code"`
	Name               string  `json:"name"`
	TotalSpaces        int     `json:"totalSpaces"`
	AvailableSpaces    int     `json:"availableSpaces"`
	CurrentUtilization float64 `json:"currentUtilization"`
	ActiveCars         int     `json:"activeCars"`
}

// OccupancyRate returns the occupancy percentage of the lot. A zero-capacity
// lot reports 0, never a division error.
func (l *ParkingLot) OccupancyRate() float64 {
	if l.NumberOfSpaces == 0 {
		return 0
	}
	return float64(l.NumberOfSpaces-l.AvailableSpaces) / float64(l.NumberOfSpaces) * 100
}
