package repository

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/parkwell/parkwell-go/internal/model"
)

// ReportRepository serves the read-only report queries over historical records.
type ReportRepository struct {
	db *sqlx.DB
}

// NewReportRepository creates a new ReportRepository.
func NewReportRepository(db *sqlx.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

const recordWithLot = `SELECT r.id, r.plate_number, r.parking_code, r.entry_time, r.exit_time, r.charged_amount,
		l.name AS parking_name, l.location AS parking_location, l.fee_per_hour
	FROM parking_records r
	JOIN parking_lots l ON l.code = r.parking_code`

// EnteredBetween returns records whose entry time falls in [from, to], newest
// entry first.
func (r *ReportRepository) EnteredBetween(ctx context.Context, from, to time.Time) ([]model.ActiveRecord, error) {
	records := []model.ActiveRecord{}
	query := recordWithLot + `
		WHERE r.entry_time >= $1 AND r.entry_time <= $2
		ORDER BY r.entry_time DESC`

	if err := r.db.SelectContext(ctx, &records, query, from, to); err != nil {
		return nil, err
	}
	return records, nil
}

// ExitedBetween returns records whose exit time falls in [from, to], newest
// exit first.
func (r *ReportRepository) ExitedBetween(ctx context.Context, from, to time.Time) ([]model.ActiveRecord, error) {
	records := []model.ActiveRecord{}
	query := recordWithLot + `
		WHERE r.exit_time >= $1 AND r.exit_time <= $2
		ORDER BY r.exit_time DESC`

	if err := r.db.SelectContext(ctx, &records, query, from, to); err != nil {
		return nil, err
	}
	return records, nil
}

// lotActivityRow is the grouped per-lot activity used by the utilization report.
type lotActivityRow struct {
	ID              string  `db:"id"`
	Name            string  `db:"name"`
	NumberOfSpaces  int     `db:"number_of_spaces"`
	AvailableSpaces int     `db:"available_spaces"`
	TotalEntries    int     `db:"total_entries"`
	TotalRevenue    float64 `db:"total_revenue"`
}

// LotActivity returns, for every lot, the number of records touching the range
// (entry or exit inside it) and the revenue those records produced, alongside
// the lot's live capacity figures.
func (r *ReportRepository) LotActivity(ctx context.Context, from, to time.Time) ([]model.LotUtilizationReport, error) {
	rows := []lotActivityRow{}
	query := `SELECT l.id, l.name, l.number_of_spaces, l.available_spaces,
			COUNT(r.id) AS total_entries,
			COALESCE(SUM(r.charged_amount), 0) AS total_revenue
		FROM parking_lots l
		LEFT JOIN parking_records r ON r.parking_code = l.code
			AND ((r.entry_time >= $1 AND r.entry_time <= $2)
				OR (r.exit_time >= $1 AND r.exit_time <= $2))
		GROUP BY l.id
		ORDER BY l.created_at DESC`

	if err := r.db.SelectContext(ctx, &rows, query, from, to); err != nil {
		return nil, err
	}

	reports := make([]model.LotUtilizationReport, 0, len(rows))
	for _, row := range rows {
		lot := model.ParkingLot{NumberOfSpaces: row.NumberOfSpaces, AvailableSpaces: row.AvailableSpaces}
		reports = append(reports, model.LotUtilizationReport{
			ParkingID:       row.ID,
			ParkingName:     row.Name,
			TotalSpaces:     row.NumberOfSpaces,
			AvailableSpaces: row.AvailableSpaces,
			UtilizationRate: lot.OccupancyRate(),
			TotalEntries:    row.TotalEntries,
			TotalRevenue:    row.TotalRevenue,
		})
	}
	return reports, nil
}
