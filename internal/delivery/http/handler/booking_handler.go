package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"facility-booking/internal/delivery/dto"
	"facility-booking/internal/delivery/http/middleware"
	"facility-booking/internal/domain/entity"
	"facility-booking/internal/domain/rules"
	"facility-booking/internal/usecase"
	"facility-booking/pkg/pagination"
	"facility-booking/pkg/response"
	"facility-booking/pkg/validator"

	"github.com/gorilla/mux"
)

type BookingHandler struct {
	bookingUsecase usecase.BookingUsecase
	validator      *validator.CustomValidator
}

func NewBookingHandler(bookingUsecase usecase.BookingUsecase, validator *validator.CustomValidator) *BookingHandler {
	return &BookingHandler{
		bookingUsecase: bookingUsecase,
		validator:      validator,
	}
}

func (h *BookingHandler) GetCatalog(w http.ResponseWriter, r *http.Request) {
	response.Success(w, http.StatusOK, "Catalog retrieved successfully", h.bookingUsecase.GetCatalog(r.Context()))
}

func (h *BookingHandler) ListBookings(w http.ResponseWriter, r *http.Request) {
	query, ok := parseListQuery(r)
	if !ok {
		response.Error(w, http.StatusBadRequest, "Invalid pagination parameters", nil)
		return
	}
	if err := h.validator.Validate(&query); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	viewer, _ := middleware.GetViewerFromContext(r.Context())

	page, err := h.bookingUsecase.ListPage(r.Context(), viewer, query.Page, query.PageSize)
	if err != nil {
		if errors.Is(err, pagination.ErrInvalidPage) || errors.Is(err, pagination.ErrInvalidPageSize) {
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
			return
		}
		response.InternalServerError(w, "Failed to get bookings")
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Bookings retrieved successfully", page, &response.Meta{
		Page:       page.Page,
		Limit:      page.PageSize,
		Total:      page.Total,
		TotalPages: page.TotalPages,
	})
}

func (h *BookingHandler) GetBooking(w http.ResponseWriter, r *http.Request) {
	viewer, _ := middleware.GetViewerFromContext(r.Context())

	booking, err := h.bookingUsecase.GetBooking(r.Context(), viewer, mux.Vars(r)["id"])
	if err != nil {
		writeBookingError(w, err, "Failed to get booking")
		return
	}

	response.Success(w, http.StatusOK, "Booking retrieved successfully", booking)
}

func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	viewer, ok := middleware.GetViewerFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Please sign in from the host app to book a facility")
		return
	}

	var req dto.CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	booking, err := h.bookingUsecase.SubmitBooking(r.Context(), viewer, &req)
	if err != nil {
		writeBookingError(w, err, "Something went wrong. Please try again.")
		return
	}

	response.Success(w, http.StatusCreated, "Your booking has been submitted successfully", booking)
}

func (h *BookingHandler) CancelBooking(w http.ResponseWriter, r *http.Request) {
	viewer, _ := middleware.GetViewerFromContext(r.Context())

	booking, err := h.bookingUsecase.CancelBooking(r.Context(), viewer, mux.Vars(r)["id"])
	if err != nil {
		writeBookingError(w, err, "Failed to cancel booking")
		return
	}

	response.Success(w, http.StatusOK, "Booking cancelled successfully", booking)
}

func (h *BookingHandler) UpdateBookingStatus(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateBookingStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	viewer, _ := middleware.GetViewerFromContext(r.Context())

	booking, err := h.bookingUsecase.SetBookingStatus(r.Context(), viewer, mux.Vars(r)["id"], req.Status)
	if err != nil {
		writeBookingError(w, err, "Failed to update booking status")
		return
	}

	response.Success(w, http.StatusOK, "Booking status updated successfully", booking)
}

func writeBookingError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, usecase.ErrNotAuthenticated):
		response.Unauthorized(w, "Please sign in from the host app to book a facility")
	case errors.Is(err, usecase.ErrPastSlot):
		response.UnprocessableEntity(w, "Please choose a future time slot for today")
	case errors.Is(err, usecase.ErrSlotConflict):
		response.Conflict(w, "A booking already exists for this date and time slot")
	case errors.Is(err, usecase.ErrBookingNotFound):
		response.NotFound(w, "Booking not found")
	case errors.Is(err, usecase.ErrUnknownFacility),
		errors.Is(err, usecase.ErrUnknownSlot),
		errors.Is(err, rules.ErrInvalidDate),
		errors.Is(err, rules.ErrInvalidSlot):
		response.Error(w, http.StatusBadRequest, err.Error(), nil)
	case errors.Is(err, entity.ErrInvalidStatus):
		response.Error(w, http.StatusBadRequest, "Status must be one of Pending, Approved, Cancelled", nil)
	case errors.Is(err, entity.ErrInvalidTransition):
		response.Conflict(w, "Booking status transition not allowed")
	default:
		response.InternalServerError(w, fallback)
	}
}

// parseListQuery reads ?page= and ?page_size=; missing values stay at their defaults
func parseListQuery(r *http.Request) (dto.ListBookingsQuery, bool) {
	query := dto.ListBookingsQuery{Page: 1}
	values := r.URL.Query()

	if raw := values.Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil {
			return query, false
		}
		query.Page = page
	}
	if raw := values.Get("page_size"); raw != "" {
		size, err := strconv.Atoi(raw)
		if err != nil {
			return query, false
		}
		query.PageSize = size
	}
	return query, true
}
