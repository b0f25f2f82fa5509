package service

import (
	"context"
	"testing"

	"github.com/parkwell/parkwell-go/internal/model"
	"github.com/parkwell/parkwell-go/internal/repository"
)

func newTestCarService() *CarService {
	return NewCarService(repository.NewCarRepository(nil))
}

func TestRegisterEntry_InvalidPlate(t *testing.T) {
	svc := newTestCarService()

	plates := []string{"", "RAA12B", "XAA123B", "raa123b", "RA1123B", "RAA1234", "RAA123BB"}
	for _, plate := range plates {
		_, err := svc.RegisterEntry(context.Background(), model.CarEntryRequest{
			PlateNumber: plate,
			ParkingCode: "PARK001",
		})
		if err != ErrInvalidPlate {
			t.Errorf("plate %q: expected ErrInvalidPlate, got %v", plate, err)
		}
	}
}

func TestPlatePattern_Valid(t *testing.T) {
	for _, plate := range []string{"RAA123B", "RAZ999Z", "RAB456C"} {
		if !platePattern.MatchString(plate) {
			t.Errorf("plate %q should match the expected format", plate)
		}
	}
}

func TestRegisterEntry_MissingParkingCode(t *testing.T) {
	svc := newTestCarService()

	_, err := svc.RegisterEntry(context.Background(), model.CarEntryRequest{
		PlateNumber: "RAA123B",
		ParkingCode: "",
	})
	if err != ErrParkingNotFound {
		t.Errorf("expected ErrParkingNotFound, got %v", err)
	}
}

func TestRegisterExit_InvalidRecordID(t *testing.T) {
	svc := newTestCarService()

	for _, id := range []string{"", "not-a-uuid", "1234"} {
		_, err := svc.RegisterExit(context.Background(), model.CarExitRequest{RecordID: id})
		if err != ErrInvalidRecordID {
			t.Errorf("recordId %q: expected ErrInvalidRecordID, got %v", id, err)
		}
	}
}
