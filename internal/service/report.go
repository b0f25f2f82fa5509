package service

import (
	"context"
	"errors"
	"time"

	"github.com/parkwell/parkwell-go/internal/model"
	"github.com/parkwell/parkwell-go/internal/repository"
)

var ErrInvalidRange = errors.New("from date must be before or equal to to date")

// ReportService computes read-only reports over historical parking records.
type ReportService struct {
	reports *repository.ReportRepository
}

// NewReportService creates a new ReportService.
func NewReportService(reports *repository.ReportRepository) *ReportService {
	return &ReportService{reports: reports}
}

// ParseRange validates a [from, to] query pair of RFC 3339 instants.
func ParseRange(from, to string) (model.ReportRange, error) {
	f, err := time.Parse(time.RFC3339, from)
	if err != nil {
		return model.ReportRange{}, ErrInvalidRange
	}
	t, err := time.Parse(time.RFC3339, to)
	if err != nil {
		return model.ReportRange{}, ErrInvalidRange
	}
	if f.After(t) {
		return model.ReportRange{}, ErrInvalidRange
	}
	return model.ReportRange{From: f.UTC(), To: t.UTC()}, nil
}

// EnteredCars reports records entered within the range, with the hour-of-day
// distribution and the peak hour.
func (s *ReportService) EnteredCars(ctx context.Context, rng model.ReportRange) (*model.EnteredCarsReport, error) {
	records, err := s.reports.EnteredBetween(ctx, rng.From, rng.To)
	if err != nil {
		return nil, err
	}

	distribution := hourlyDistribution(records)
	return &model.EnteredCarsReport{
		TotalCount:         len(records),
		HourlyDistribution: distribution,
		PeakHour:           peakHour(distribution),
		Records:            records,
	}, nil
}

// OutgoingCars reports records exited within the range, with the summed
// charges and the mean stay duration.
func (s *ReportService) OutgoingCars(ctx context.Context, rng model.ReportRange) (*model.OutgoingCarsReport, error) {
	records, err := s.reports.ExitedBetween(ctx, rng.From, rng.To)
	if err != nil {
		return nil, err
	}

	return &model.OutgoingCarsReport{
		TotalCount:           len(records),
		TotalCharged:         totalCharged(records),
		AverageStayTimeHours: averageStayHours(records),
		Records:              records,
	}, nil
}

// Utilization reports per-lot occupancy at query time combined with activity
// inside the range. The overall rate is the mean of per-lot rates, 0 when no
// lots exist.
func (s *ReportService) Utilization(ctx context.Context, rng model.ReportRange) (*model.UtilizationReport, error) {
	parkings, err := s.reports.LotActivity(ctx, rng.From, rng.To)
	if err != nil {
		return nil, err
	}

	var sum float64
	for _, p := range parkings {
		sum += p.UtilizationRate
	}
	average := 0.0
	if len(parkings) > 0 {
		average = sum / float64(len(parkings))
	}

	return &model.UtilizationReport{
		TotalParkings:          len(parkings),
		AverageUtilizationRate: average,
		Parkings:               parkings,
	}, nil
}

// hourlyDistribution counts entries per UTC hour of day.
func hourlyDistribution(records []model.ActiveRecord) map[int]int {
	distribution := make(map[int]int)
	for _, r := range records {
		distribution[r.EntryTime.UTC().Hour()]++
	}
	return distribution
}

// peakHour returns the hour with the highest count, ties broken by the lowest
// hour, or nil when there are no entries.
func peakHour(distribution map[int]int) *model.PeakHour {
	var peak *model.PeakHour
	for hour := 0; hour < 24; hour++ {
		count, ok := distribution[hour]
		if !ok {
			continue
		}
		if peak == nil || count > peak.Count {
			peak = &model.PeakHour{Hour: hour, Count: count}
		}
	}
	return peak
}

func totalCharged(records []model.ActiveRecord) float64 {
	var total float64
	for _, r := range records {
		if r.ChargedAmount != nil {
			total += *r.ChargedAmount
		}
	}
	return total
}

// averageStayHours is the mean of (exit - entry) across closed records, 0 for
// an empty set.
func averageStayHours(records []model.ActiveRecord) float64 {
	if len(records) == 0 {
		return 0
	}
	var total time.Duration
	for _, r := range records {
		if r.ExitTime != nil {
			total += r.ExitTime.Sub(r.EntryTime)
		}
	}
	return total.Hours() / float64(len(records))
}
