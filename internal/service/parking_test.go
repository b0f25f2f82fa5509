package service

import (
	"context"
	"errors"
	"testing"

	"github.com/parkwell/parkwell-go/internal/model"
)

func TestCreateParking_InvalidInput(t *testing.T) {
	svc := NewParkingService(nil)

	valid := model.CreateParkingRequest{
		Code:           "PARK001",
		Name:           "Downtown Garage",
		Location:       "Kigali",
		NumberOfSpaces: 50,
		FeePerHour:     2.5,
	}

	cases := []struct {
		name   string
		mutate func(*model.CreateParkingRequest)
	}{
		{"missing code", func(r *model.CreateParkingRequest) { r.Code = "" }},
		{"missing name", func(r *model.CreateParkingRequest) { r.Name = "" }},
		{"missing location", func(r *model.CreateParkingRequest) { r.Location = "" }},
		{"zero spaces", func(r *model.CreateParkingRequest) { r.NumberOfSpaces = 0 }},
		{"negative spaces", func(r *model.CreateParkingRequest) { r.NumberOfSpaces = -3 }},
		{"negative fee", func(r *model.CreateParkingRequest) { r.FeePerHour = -1 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := valid
			tc.mutate(&req)
			if _, err := svc.Create(context.Background(), req); !errors.Is(err, ErrInvalidParkingInput) {
				t.Errorf("expected ErrInvalidParkingInput, got %v", err)
			}
		})
	}
}
