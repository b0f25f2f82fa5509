package service

import (
	"context"
	"errors"
	"regexp"
	"time"

	"github.com/google/uuid"

	"github.com/parkwell/parkwell-go/internal/model"
	"github.com/parkwell/parkwell-go/internal/repository"
)

var (
	ErrInvalidPlate    = errors.New("plate number must be in the format RA[A-Z]123[A-Z] (e.g., RAA123B)")
	ErrInvalidRecordID = errors.New("recordId must be a valid UUID")
	ErrNoSpaces        = errors.New("no available spaces in this parking")
	ErrAlreadyParked   = errors.New("car is already parked")
	ErrRecordNotFound  = errors.New("parking record not found")
	ErrAlreadyExited   = errors.New("car has already exited")
)

var platePattern = regexp.MustCompile(`^RA[A-Z][0-9]{3}[A-Z]$`)

// CarService handles the vehicle entry/exit lifecycle. All state lives in the
// store; the service never caches space counts or session state.
type CarService struct {
	cars *repository.CarRepository
	now  func() time.Time
}

// NewCarService creates a new CarService.
func NewCarService(cars *repository.CarRepository) *CarService {
	return &CarService{cars: cars, now: time.Now}
}

// RegisterEntry records a car entering a lot. It fails when the lot is
// unknown, full, or the plate already has an open stay in any lot.
func (s *CarService) RegisterEntry(ctx context.Context, req model.CarEntryRequest) (*model.ParkingRecord, error) {
	if !platePattern.MatchString(req.PlateNumber) {
		return nil, ErrInvalidPlate
	}
	if req.ParkingCode == "" {
		return nil, ErrParkingNotFound
	}

	record, err := s.cars.RegisterEntry(ctx, req.PlateNumber, req.ParkingCode, s.now().UTC())
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrLotNotFound):
			return nil, ErrParkingNotFound
		case errors.Is(err, repository.ErrNoSpaces):
			return nil, ErrNoSpaces
		case errors.Is(err, repository.ErrAlreadyParked):
			return nil, ErrAlreadyParked
		}
		return nil, err
	}
	return record, nil
}

// RegisterExit closes a stay and returns the billing receipt. A second exit
// attempt for the same record fails without touching the space count.
func (s *CarService) RegisterExit(ctx context.Context, req model.CarExitRequest) (*model.ExitReceipt, error) {
	if _, err := uuid.Parse(req.RecordID); err != nil {
		return nil, ErrInvalidRecordID
	}

	receipt, err := s.cars.RegisterExit(ctx, req.RecordID, s.now().UTC())
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return nil, ErrRecordNotFound
		case errors.Is(err, repository.ErrAlreadyExited):
			return nil, ErrAlreadyExited
		}
		return nil, err
	}
	return receipt, nil
}

// ListActive returns all open stays, newest entry first.
func (s *CarService) ListActive(ctx context.Context) ([]model.ActiveRecord, error) {
	return s.cars.ListActive(ctx)
}
