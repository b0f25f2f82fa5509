package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/parkwell/parkwell-go/internal/model"
	"github.com/parkwell/parkwell-go/internal/service"
)

// ParkingHandler handles HTTP requests for the parking-lot registry.
type ParkingHandler struct {
	service *service.ParkingService
}

// NewParkingHandler creates a new ParkingHandler.
func NewParkingHandler(svc *service.ParkingService) *ParkingHandler {
	return &ParkingHandler{service: svc}
}

// HandleCreate handles POST /parking requests (admin only).
func (h *ParkingHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req model.CreateParkingRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	lot, err := h.service.Create(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidParkingInput), errors.Is(err, service.ErrParkingCodeTaken):
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		default:
			writeInternalError(w, r, err)
		}
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{"data": lot})
}

// HandleList handles GET /parking requests.
func (h *ParkingHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	lots, err := h.service.List(r.Context())
	if err != nil {
		writeInternalError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": lots})
}

// HandleGet handles GET /parking/{id} requests.
func (h *ParkingHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	lot, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, service.ErrParkingNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
			return
		}
		writeInternalError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": lot})
}

// HandleUpdate handles PUT /parking/{id} requests (admin only).
func (h *ParkingHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req model.UpdateParkingRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	lot, err := h.service.Update(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrParkingNotFound):
			writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
		case errors.Is(err, service.ErrInvalidParkingInput):
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		default:
			writeInternalError(w, r, err)
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"data": lot})
}

// HandleDelete handles DELETE /parking/{id} requests (admin only).
func (h *ParkingHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	err := h.service.Delete(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrParkingNotFound):
			writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
		case errors.Is(err, service.ErrParkingHasCars):
			writeJSON(w, http.StatusBadRequest, errorResponse("Cannot delete parking with active cars. Please wait until all cars have exited."))
		default:
			writeInternalError(w, r, err)
		}
		return
	}

	writeJSON(w, http.StatusOK, messageResponse("Parking deleted successfully"))
}

// HandleStats handles GET /parking/stats/overview requests (admin only).
func (h *ParkingHandler) HandleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.Stats(r.Context())
	if err != nil {
		writeInternalError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "data": stats})
}

// HandleUtilization handles GET /parking/stats/utilization requests (admin only).
func (h *ParkingHandler) HandleUtilization(w http.ResponseWriter, r *http.Request) {
	utilization, err := h.service.Utilization(r.Context())
	if err != nil {
		writeInternalError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "data": utilization})
}
