package model

import "time"

// ReportRange is the inclusive [From, To] window a report is computed over.
type ReportRange struct {
	From time.Time
	To   time.Time
}

// PeakHour names the hour of day (0-23) with the highest entry count in an
// entered-cars report.
type PeakHour struct {
	Hour  int `json:"hour"`
	Count int `json:"count"`
}

// EnteredCarsReport summarizes records whose entry time fell inside the range.
type EnteredCarsReport struct {
	TotalCount         int            `json:"totalCount"`
	HourlyDistribution map[int]int    `json:"hourlyDistribution"`
	PeakHour           *PeakHour      `json:"peakHour"`
	Records            []ActiveRecord `json:"records"`
}

// OutgoingCarsReport summarizes records whose exit time fell inside the range.
type OutgoingCarsReport struct {
	TotalCount           int            `json:"totalCount"`
	TotalCharged         float64        `json:"totalCharged"`
	AverageStayTimeHours float64        `json:"averageStayTimeHours"`
	Records              []ActiveRecord `json:"records"`
}

// LotUtilizationReport is the per-lot slice of a utilization report: live
// occupancy at query time combined with activity inside the range.
type LotUtilizationReport struct {
	ParkingID       string  `json:"parkingId"`
	ParkingName     string  `json:"parkingName"`
	TotalSpaces     int     `json:"totalSpaces"`
	AvailableSpaces int     `json:"availableSpaces"`
	UtilizationRate float64 `json:"utilizationRate"`
	TotalEntries    int     `json:"totalEntries"`
	TotalRevenue    float64 `json:"totalRevenue"`
}

// UtilizationReport aggregates LotUtilizationReport rows across all lots.
type UtilizationReport struct {
	TotalParkings          int                    `json:"totalParkings"`
	AverageUtilizationRate float64                `json:"averageUtilizationRate"`
	Parkings               []LotUtilizationReport `json:"parkings"`
}
