package repository

import (
	"errors"

	"facility-booking/internal/domain/entity"
)

var (
	ErrDuplicateBookingID = errors.New("booking id already exists")
	ErrSlotConflict       = errors.New("an active booking already holds this slot")
	ErrBookingNotFound    = errors.New("booking not found")
)

// BookingRepository is the canonical ordered collection of bookings, most recent first.
type BookingRepository interface {
	Insert(booking *entity.Booking) error
	// InsertIfAvailable checks the slot and inserts under a single critical section.
	InsertIfAvailable(booking *entity.Booking) error
	FindByID(id string) (*entity.Booking, bool)
	FindAll() []entity.Booking
	// UpdateStatus and Cancel go through the same guard as TransitionStatus;
	// false means the id is unknown or the transition is not allowed.
	UpdateStatus(id string, status entity.BookingStatus) (*entity.Booking, bool)
	Cancel(id string) (*entity.Booking, bool)
	// TransitionStatus applies next only if the current status allows it and
	// returns the updated booking together with the status it replaced.
	TransitionStatus(id string, next entity.BookingStatus) (*entity.Booking, entity.BookingStatus, error)
	Count() int
}
