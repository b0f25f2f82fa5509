package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/parkwell/parkwell-go/internal/model"
)

var (
	ErrRecordNotFound = errors.New("parking record not found")
	ErrNoSpaces       = errors.New("no available spaces in this parking")
	ErrAlreadyParked  = errors.New("car is already parked")
	ErrAlreadyExited  = errors.New("car has already exited")
)

// CarRepository owns the vehicle entry/exit state machine. Entry and exit each
// run as a single transaction so the capacity count and the single-active-stay
// invariant hold under concurrent requests.
type CarRepository struct {
	db *sqlx.DB
}

// NewCarRepository creates a new CarRepository.
func NewCarRepository(db *sqlx.DB) *CarRepository {
	return &CarRepository{db: db}
}

// RegisterEntry records a car entering a lot. The capacity decrement is a
// conditional update (available_spaces > 0), so concurrent entries against the
// same lot serialize on the lot row and can never oversell it. The partial
// unique index on active plates rejects a double entry across all lots; the
// rollback then restores the decrement.
func (r *CarRepository) RegisterEntry(ctx context.Context, plateNumber, parkingCode string, now time.Time) (*model.ParkingRecord, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var exists bool
	err = tx.GetContext(ctx, &exists,
		`SELECT EXISTS (SELECT 1 FROM parking_lots WHERE code = $1)`, parkingCode)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrLotNotFound
	}

	result, err := tx.ExecContext(ctx,
		`UPDATE parking_lots SET available_spaces = available_spaces - 1, updated_at = CURRENT_TIMESTAMP
			WHERE code = $1 AND available_spaces > 0`, parkingCode)
	if err != nil {
		return nil, err
	}
	if err := requireRow(result, ErrNoSpaces); err != nil {
		return nil, err
	}

	record := &model.ParkingRecord{
		ID:          uuid.NewString(),
		PlateNumber: plateNumber,
		ParkingCode: parkingCode,
		EntryTime:   now,
	}
	_, err = tx.ExecContext(ctx,
		`INSERT INTO parking_records (id, plate_number, parking_code, entry_time) VALUES ($1, $2, $3, $4)`,
		record.ID, record.PlateNumber, record.ParkingCode, record.EntryTime)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrAlreadyParked
		}
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return record, nil
}

// exitRow is the locked view of a record and its lot's current fee.
type exitRow struct {
	ID          string     `db:"id"`
	PlateNumber string     `db:"plate_number"`
	ParkingCode string     `db:"parking_code"`
	EntryTime   time.Time  `db:"entry_time"`
	ExitTime    *time.Time `db:"exit_time"`
	FeePerHour  float64    `db:"fee_per_hour"`
}

// RegisterExit closes a record and charges for the stay. The record and lot
// rows are locked for the duration of the transaction, so a second exit for
// the same record or a concurrent entry against the same lot cannot interleave
// with the charge computation and the capacity increment.
func (r *CarRepository) RegisterExit(ctx context.Context, recordID string, now time.Time) (*model.ExitReceipt, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var row exitRow
	query := `SELECT r.id, r.plate_number, r.parking_code, r.entry_time, r.exit_time, l.fee_per_hour
		FROM parking_records r
		JOIN parking_lots l ON l.code = r.parking_code
		WHERE r.id = $1
		FOR UPDATE OF r, l`

	err = tx.GetContext(ctx, &row, query, recordID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}
	if row.ExitTime != nil {
		return nil, ErrAlreadyExited
	}

	// Fee is read inside the transaction: the charge always uses the lot's
	// fee at exit time, not a value cached at entry.
	hours := model.BillableHours(row.EntryTime, now)
	charged := float64(hours) * row.FeePerHour

	_, err = tx.ExecContext(ctx,
		`UPDATE parking_records SET exit_time = $1, charged_amount = $2 WHERE id = $3`,
		now, charged, recordID)
	if err != nil {
		return nil, err
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE parking_lots SET available_spaces = available_spaces + 1, updated_at = CURRENT_TIMESTAMP
			WHERE code = $1 AND available_spaces < number_of_spaces`, row.ParkingCode)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return &model.ExitReceipt{
		RecordID:      row.ID,
		PlateNumber:   row.PlateNumber,
		TotalHours:    hours,
		ChargedAmount: charged,
		ExitTime:      now,
	}, nil
}

// ListActive returns all open records, newest entry first, joined with lot
// display fields.
func (r *CarRepository) ListActive(ctx context.Context) ([]model.ActiveRecord, error) {
	records := []model.ActiveRecord{}
	query := `SELECT r.id, r.plate_number, r.parking_code, r.entry_time, r.exit_time, r.charged_amount,
			l.name AS parking_name, l.location AS parking_location, l.fee_per_hour
		FROM parking_records r
		JOIN parking_lots l ON l.code = r.parking_code
		WHERE r.exit_time IS NULL
		ORDER BY r.entry_time DESC`

	if err := r.db.SelectContext(ctx, &records, query); err != nil {
		return nil, err
	}
	return records, nil
}
