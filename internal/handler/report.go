package handler

import (
	"net/http"

	"github.com/parkwell/parkwell-go/internal/service"
)

// ReportHandler handles HTTP requests for admin reports.
type ReportHandler struct {
	service *service.ReportService
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(svc *service.ReportService) *ReportHandler {
	return &ReportHandler{service: svc}
}

// parseRange reads and validates the from/to query parameters.
func parseRange(w http.ResponseWriter, r *http.Request) (from, to string, ok bool) {
	from = r.URL.Query().Get("from")
	to = r.URL.Query().Get("to")
	if from == "" || to == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse("from and to query parameters are required"))
		return "", "", false
	}
	return from, to, true
}

// HandleEnteredCars handles GET /reports/entered requests (admin only).
func (h *ReportHandler) HandleEnteredCars(w http.ResponseWriter, r *http.Request) {
	from, to, ok := parseRange(w, r)
	if !ok {
		return
	}

	rng, err := service.ParseRange(from, to)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	report, err := h.service.EnteredCars(r.Context(), rng)
	if err != nil {
		writeInternalError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

// HandleOutgoingCars handles GET /reports/outgoing requests (admin only).
func (h *ReportHandler) HandleOutgoingCars(w http.ResponseWriter, r *http.Request) {
	from, to, ok := parseRange(w, r)
	if !ok {
		return
	}

	rng, err := service.ParseRange(from, to)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	report, err := h.service.OutgoingCars(r.Context(), rng)
	if err != nil {
		writeInternalError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

// HandleUtilization handles GET /reports/utilization requests (admin only).
func (h *ReportHandler) HandleUtilization(w http.ResponseWriter, r *http.Request) {
	from, to, ok := parseRange(w, r)
	if !ok {
		return
	}

	rng, err := service.ParseRange(from, to)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	report, err := h.service.Utilization(r.Context(), rng)
	if err != nil {
		writeInternalError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}
