package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/parkwell/parkwell-go/internal/model"
)

var (
	ErrLotNotFound      = errors.New("parking not found")
	ErrDuplicateCode    = errors.New("parking code already exists")
	ErrLotHasActiveCars = errors.New("parking has active cars")
)

// ParkingRepository handles parking-lot persistence operations.
type ParkingRepository struct {
	db *sqlx.DB
}

// NewParkingRepository creates a new ParkingRepository.
func NewParkingRepository(db *sqlx.DB) *ParkingRepository {
	return &ParkingRepository{db: db}
}

// Create inserts a new lot and fills in the generated id and timestamps.
func (r *ParkingRepository) Create(ctx context.Context, lot *model.ParkingLot) error {
	lot.ID = uuid.NewString()

	query := `INSERT INTO parking_lots (id, code, name, location, number_of_spaces, available_spaces, fee_per_hour)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at`

	err := r.db.QueryRowxContext(ctx, query,
		lot.ID, lot.Code, lot.Name, lot.Location, lot.NumberOfSpaces, lot.AvailableSpaces, lot.FeePerHour,
	).Scan(&lot.CreatedAt, &lot.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateCode
		}
		return err
	}

	return nil
}

// List returns all lots, most recently created first.
func (r *ParkingRepository) List(ctx context.Context) ([]model.ParkingLot, error) {
	lots := []model.ParkingLot{}
	err := r.db.SelectContext(ctx, &lots, `SELECT * FROM parking_lots ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	return lots, nil
}

// GetByID retrieves a lot by its id.
func (r *ParkingRepository) GetByID(ctx context.Context, id string) (*model.ParkingLot, error) {
	lot := &model.ParkingLot{}
	err := r.db.GetContext(ctx, lot, `SELECT * FROM parking_lots WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrLotNotFound
		}
		return nil, err
	}
	return lot, nil
}

// Update rewrites the mutable lot fields. available_spaces is clamped to the
// new capacity in the same statement so the lot invariant cannot be broken by
// a capacity shrink racing an exit.
func (r *ParkingRepository) Update(ctx context.Context, lot *model.ParkingLot) error {
	query := `UPDATE parking_lots
		SET name = $1, location = $2, number_of_spaces = $3, fee_per_hour = $4,
			available_spaces = LEAST(available_spaces, $3),
			updated_at = CURRENT_TIMESTAMP
		WHERE id = $5
		RETURNING available_spaces, updated_at`

	err := r.db.QueryRowxContext(ctx, query,
		lot.Name, lot.Location, lot.NumberOfSpaces, lot.FeePerHour, lot.ID,
	).Scan(&lot.AvailableSpaces, &lot.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrLotNotFound
		}
		return err
	}

	return nil
}

// Delete removes a lot and its historical records as one transaction. It fails
// with ErrLotHasActiveCars while any record for the lot's code is still open,
// in which case nothing is mutated.
func (r *ParkingRepository) Delete(ctx context.Context, id string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var code string
	err = tx.GetContext(ctx, &code, `SELECT code FROM parking_lots WHERE id = $1 FOR UPDATE`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrLotNotFound
		}
		return err
	}

	var active int
	err = tx.GetContext(ctx, &active,
		`SELECT COUNT(*) FROM parking_records WHERE parking_code = $1 AND exit_time IS NULL`, code)
	if err != nil {
		return err
	}
	if active > 0 {
		return ErrLotHasActiveCars
	}

	// Only closed records can remain at this point.
	if _, err := tx.ExecContext(ctx, `DELETE FROM parking_records WHERE parking_code = $1`, code); err != nil {
		return fmt.Errorf("deleting records for lot %s: %w", code, err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM parking_lots WHERE id = $1`, id); err != nil {
		return fmt.Errorf("deleting lot %s: %w", code, err)
	}

	return tx.Commit()
}

// Stats returns per-lot capacity figures plus the all-time record count.
func (r *ParkingRepository) Stats(ctx context.Context) ([]model.ParkingStat, error) {
	stats := []model.ParkingStat{}
	query := `SELECT l.code, l.name, l.number_of_spaces, l.available_spaces,
			COUNT(r.id) AS total_records
		FROM parking_lots l
		LEFT JOIN parking_records r ON r.parking_code = l.code
		GROUP BY l.id
		ORDER BY l.created_at DESC`

	if err := r.db.SelectContext(ctx, &stats, query); err != nil {
		return nil, err
	}
	return stats, nil
}

// ActiveCarCounts returns the number of open records per lot code. Lots with
// no active cars are absent from the map.
func (r *ParkingRepository) ActiveCarCounts(ctx context.Context) (map[string]int, error) {
	rows := []struct {
		Code  string `db:"parking_code"`
		Count int    `db:"count"`
	}{}
	query := `SELECT parking_code, COUNT(*) AS count FROM parking_records
		WHERE exit_time IS NULL GROUP BY parking_code`

	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, err
	}

	counts := make(map[string]int, len(rows))
	for _, row := range rows {
		counts[row.Code] = row.Count
	}
	return counts, nil
}
