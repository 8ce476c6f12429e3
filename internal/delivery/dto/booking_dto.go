package dto

import "time"

// Request DTOs

type CreateBookingRequest struct {
	Facility string `json:"facility" validate:"required,facility"`
	Date     string `json:"date" validate:"required,datetime=2006-01-02"` // Format: YYYY-MM-DD
	Slot     string `json:"slot" validate:"required,slot"`
	Notes    string `json:"notes" validate:"omitempty,max=1000"`
}

// UpdateBookingStatusRequest carries the raw status; the usecase rejects
// anything outside Pending, Approved and Cancelled.
type UpdateBookingStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type ListBookingsQuery struct {
	Page     int `validate:"gte=1,lte=100000"`
	PageSize int `validate:"omitempty,gte=1,lte=100"`
}

// Response DTOs

type BookingUserResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type BookingResponse struct {
	ID        string              `json:"id"`
	Facility  string              `json:"facility"`
	Date      string              `json:"date"`
	Slot      string              `json:"slot"`
	Notes     string              `json:"notes,omitempty"`
	Status    string              `json:"status"`
	User      BookingUserResponse `json:"user"`
	CreatedAt time.Time           `json:"created_at"`
}

type BookingPageResponse struct {
	Bookings     []BookingResponse `json:"bookings"`
	Page         int               `json:"page"`
	PageSize     int               `json:"page_size"`
	Total        int               `json:"total"`
	TotalPages   int               `json:"total_pages"`
	Range        string            `json:"range"`
	Pages        []int             `json:"pages"`
	ResetToFirst bool              `json:"reset_to_first"`
}

type CatalogResponse struct {
	Facilities []string `json:"facilities"`
	Slots      []string `json:"slots"`
	MinDate    string   `json:"min_date"`
}
