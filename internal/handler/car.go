package handler

import (
	"errors"
	"net/http"

	"github.com/parkwell/parkwell-go/internal/model"
	"github.com/parkwell/parkwell-go/internal/service"
)

// CarHandler handles HTTP requests for vehicle entries and exits.
type CarHandler struct {
	service *service.CarService
}

// NewCarHandler creates a new CarHandler.
func NewCarHandler(svc *service.CarService) *CarHandler {
	return &CarHandler{service: svc}
}

// HandleEntry handles POST /cars/entry requests.
func (h *CarHandler) HandleEntry(w http.ResponseWriter, r *http.Request) {
	var req model.CarEntryRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	record, err := h.service.RegisterEntry(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrParkingNotFound):
			writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
		case errors.Is(err, service.ErrInvalidPlate),
			errors.Is(err, service.ErrNoSpaces),
			errors.Is(err, service.ErrAlreadyParked):
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		default:
			writeInternalError(w, r, err)
		}
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"message": "Car entry recorded",
		"data":    record,
	})
}

// HandleExit handles POST /cars/exit requests.
func (h *CarHandler) HandleExit(w http.ResponseWriter, r *http.Request) {
	var req model.CarExitRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	receipt, err := h.service.RegisterExit(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRecordNotFound):
			writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
		case errors.Is(err, service.ErrInvalidRecordID), errors.Is(err, service.ErrAlreadyExited):
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		default:
			writeInternalError(w, r, err)
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Car exit recorded",
		"data":    receipt,
	})
}

// HandleListActive handles GET /cars/active requests.
func (h *CarHandler) HandleListActive(w http.ResponseWriter, r *http.Request) {
	records, err := h.service.ListActive(r.Context())
	if err != nil {
		writeInternalError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": records})
}
