package entity

import (
	"errors"
	"time"
)

var (
	ErrInvalidStatus     = errors.New("invalid booking status")
	ErrInvalidTransition = errors.New("booking status transition not allowed")
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "Pending"
	BookingStatusApproved  BookingStatus = "Approved"
	BookingStatusCancelled BookingStatus = "Cancelled"
)

// BookingStatuses lists every status in display order
var BookingStatuses = []BookingStatus{BookingStatusPending, BookingStatusApproved, BookingStatusCancelled}

// ParseBookingStatus maps a raw value onto the closed set of statuses.
func ParseBookingStatus(raw string) (BookingStatus, error) {
	for _, s := range BookingStatuses {
		if string(s) == raw {
			return s, nil
		}
	}
	return "", ErrInvalidStatus
}

// IsActive reports whether a booking with this status still occupies its slot.
func (s BookingStatus) IsActive() bool {
	return s != BookingStatusCancelled
}

// CanTransitionTo reports whether moving from s to next is allowed.
// Cancelled is terminal; Pending may be approved; anything may be cancelled.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	switch {
	case s == next:
		return true
	case s == BookingStatusCancelled:
		return false
	case next == BookingStatusCancelled:
		return true
	case s == BookingStatusPending && next == BookingStatusApproved:
		return true
	}
	return false
}

// UserSnapshot is the creator's identity copied at booking time
type UserSnapshot struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Booking represents a facility reservation
type Booking struct {
	ID        string        `json:"id"`
	Facility  string        `json:"facility"`
	Date      string        `json:"date"` // Format: YYYY-MM-DD
	Slot      string        `json:"slot"`
	Notes     string        `json:"notes,omitempty"`
	Status    BookingStatus `json:"status"`
	User      UserSnapshot  `json:"user"`
	CreatedAt time.Time     `json:"created_at"`
}

// SlotKey identifies the (facility, date, slot) triple a booking occupies
type SlotKey struct {
	Facility string
	Date     string
	Slot     string
}

// Key returns the slot the booking occupies
func (b *Booking) Key() SlotKey {
	return SlotKey{Facility: b.Facility, Date: b.Date, Slot: b.Slot}
}

// IsPending checks if booking is in pending status
func (b *Booking) IsPending() bool {
	return b.Status == BookingStatusPending
}

// IsApproved checks if booking is approved
func (b *Booking) IsApproved() bool {
	return b.Status == BookingStatusApproved
}

// IsCancelled checks if booking is cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == BookingStatusCancelled
}

// Approve changes booking status to approved
func (b *Booking) Approve() {
	b.Status = BookingStatusApproved
}

// Cancel changes booking status to cancelled
func (b *Booking) Cancel() {
	b.Status = BookingStatusCancelled
}
