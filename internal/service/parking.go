package service

import (
	"context"
	"errors"

	"github.com/parkwell/parkwell-go/internal/model"
	"github.com/parkwell/parkwell-go/internal/repository"
)

var (
	ErrParkingNotFound     = errors.New("parking not found")
	ErrParkingCodeTaken    = errors.New("parking code already exists")
	ErrParkingHasCars      = errors.New("cannot delete parking with active cars")
	ErrInvalidParkingInput = errors.New("code, name and location are required; spaces must be positive and fee non-negative")
)

// ParkingService handles parking-lot registry business logic.
type ParkingService struct {
	lots *repository.ParkingRepository
}

// NewParkingService creates a new ParkingService.
func NewParkingService(lots *repository.ParkingRepository) *ParkingService {
	return &ParkingService{lots: lots}
}

// Create registers a new lot with all spaces available.
func (s *ParkingService) Create(ctx context.Context, req model.CreateParkingRequest) (*model.ParkingLot, error) {
	if req.Code == "" || req.Name == "" || req.Location == "" || req.NumberOfSpaces <= 0 || req.FeePerHour < 0 {
		return nil, ErrInvalidParkingInput
	}

	lot := &model.ParkingLot{
		Code:            req.Code,
		Name:            req.Name,
		Location:        req.Location,
		NumberOfSpaces:  req.NumberOfSpaces,
		AvailableSpaces: req.NumberOfSpaces,
		FeePerHour:      req.FeePerHour,
	}

	if err := s.lots.Create(ctx, lot); err != nil {
		if errors.Is(err, repository.ErrDuplicateCode) {
			return nil, ErrParkingCodeTaken
		}
		return nil, err
	}
	return lot, nil
}

// List returns all lots, most recently created first.
func (s *ParkingService) List(ctx context.Context) ([]model.ParkingLot, error) {
	return s.lots.List(ctx)
}

// Get retrieves a single lot by id.
func (s *ParkingService) Get(ctx context.Context, id string) (*model.ParkingLot, error) {
	lot, err := s.lots.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrLotNotFound) {
			return nil, ErrParkingNotFound
		}
		return nil, err
	}
	return lot, nil
}

// Update applies the provided fields to a lot. Unset fields keep their value;
// a capacity change clamps available spaces into the new range.
func (s *ParkingService) Update(ctx context.Context, id string, req model.UpdateParkingRequest) (*model.ParkingLot, error) {
	lot, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		lot.Name = *req.Name
	}
	if req.Location != nil {
		lot.Location = *req.Location
	}
	if req.NumberOfSpaces != nil {
		lot.NumberOfSpaces = *req.NumberOfSpaces
	}
	if req.FeePerHour != nil {
		lot.FeePerHour = *req.FeePerHour
	}
	if lot.Name == "" || lot.Location == "" || lot.NumberOfSpaces <= 0 || lot.FeePerHour < 0 {
		return nil, ErrInvalidParkingInput
	}

	if err := s.lots.Update(ctx, lot); err != nil {
		if errors.Is(err, repository.ErrLotNotFound) {
			return nil, ErrParkingNotFound
		}
		return nil, err
	}
	return lot, nil
}

// Delete removes a lot and its closed records; it refuses while cars are
// still parked there.
func (s *ParkingService) Delete(ctx context.Context, id string) error {
	err := s.lots.Delete(ctx, id)
	switch {
	case errors.Is(err, repository.ErrLotNotFound):
		return ErrParkingNotFound
	case errors.Is(err, repository.ErrLotHasActiveCars):
		return ErrParkingHasCars
	default:
		return err
	}
}

// Stats returns the per-lot capacity and record-count overview.
func (s *ParkingService) Stats(ctx context.Context) ([]model.ParkingStat, error) {
	return s.lots.Stats(ctx)
}

// Utilization returns the live occupancy of every lot. Zero-capacity lots
// report 0% occupancy.
func (s *ParkingService) Utilization(ctx context.Context) ([]model.ParkingUtilization, error) {
	lots, err := s.lots.List(ctx)
	if err != nil {
		return nil, err
	}
	active, err := s.lots.ActiveCarCounts(ctx)
	if err != nil {
		return nil, err
	}

	utilization := make([]model.ParkingUtilization, 0, len(lots))
	for i := range lots {
		lot := &lots[i]
		utilization = append(utilization, model.ParkingUtilization{
			Code:               lot.Code,
			Name:               lot.Name,
			TotalSpaces:        lot.NumberOfSpaces,
			AvailableSpaces:    lot.AvailableSpaces,
			CurrentUtilization: lot.OccupancyRate(),
			ActiveCars:         active[lot.Code],
		})
	}
	return utilization, nil
}
