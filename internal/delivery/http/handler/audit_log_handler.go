package handler

import (
	"errors"
	"net/http"

	"facility-booking/internal/delivery/http/middleware"
	"facility-booking/internal/usecase"
	"facility-booking/pkg/response"

	"github.com/gorilla/mux"
)

type AuditLogHandler struct {
	auditLogUsecase usecase.AuditLogUsecase
}

func NewAuditLogHandler(auditLogUsecase usecase.AuditLogUsecase) *AuditLogHandler {
	return &AuditLogHandler{
		auditLogUsecase: auditLogUsecase,
	}
}

func (h *AuditLogHandler) GetBookingHistory(w http.ResponseWriter, r *http.Request) {
	viewer, _ := middleware.GetViewerFromContext(r.Context())

	history, err := h.auditLogUsecase.GetBookingHistory(r.Context(), viewer, mux.Vars(r)["id"])
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrBookingNotFound):
			response.NotFound(w, "Booking not found")
		case errors.Is(err, usecase.ErrAuditTrailDisabled):
			response.Error(w, http.StatusServiceUnavailable, "Booking history is not enabled", nil)
		default:
			response.InternalServerError(w, "Failed to get booking history")
		}
		return
	}

	response.Success(w, http.StatusOK, "Booking history retrieved successfully", history)
}
