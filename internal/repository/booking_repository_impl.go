package repository

import (
	"sync"

	"facility-booking/internal/domain/entity"
	domainRepo "facility-booking/internal/domain/repository"
	"facility-booking/internal/domain/rules"
)

// bookingRepository keeps bookings in process memory, most recent first.
// Records are copied in and out so callers never alias the stored values.
type bookingRepository struct {
	mu       sync.RWMutex
	bookings []entity.Booking
}

func NewBookingRepository() domainRepo.BookingRepository {
	return &bookingRepository{}
}

func (r *bookingRepository) Insert(booking *entity.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.insertLocked(booking)
}

// InsertIfAvailable runs the conflict check and the insert while holding the
// write lock, so two submissions for the same slot cannot both succeed.
func (r *bookingRepository) InsertIfAvailable(booking *entity.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if rules.HasConflict(booking.Key(), r.bookings) {
		return domainRepo.ErrSlotConflict
	}
	return r.insertLocked(booking)
}

func (r *bookingRepository) insertLocked(booking *entity.Booking) error {
	if r.indexLocked(booking.ID) >= 0 {
		return domainRepo.ErrDuplicateBookingID
	}
	r.bookings = append([]entity.Booking{*booking}, r.bookings...)
	return nil
}

func (r *bookingRepository) FindByID(id string) (*entity.Booking, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexLocked(id)
	if i < 0 {
		return nil, false
	}
	booking := r.bookings[i]
	return &booking, true
}

func (r *bookingRepository) FindAll() []entity.Booking {
	r.mu.RLock()
	defer r.mu.RUnlock()

	snapshot := make([]entity.Booking, len(r.bookings))
	copy(snapshot, r.bookings)
	return snapshot
}

// UpdateStatus is TransitionStatus without the error detail. Unknown ids
// leave the store untouched and report nil, false; a transition the current
// status forbids reports the unchanged booking and false.
func (r *bookingRepository) UpdateStatus(id string, status entity.BookingStatus) (*entity.Booking, bool) {
	updated, _, err := r.TransitionStatus(id, status)
	if err != nil {
		current, _ := r.FindByID(id)
		return current, false
	}
	return updated, true
}

func (r *bookingRepository) Cancel(id string) (*entity.Booking, bool) {
	return r.UpdateStatus(id, entity.BookingStatusCancelled)
}

func (r *bookingRepository) TransitionStatus(id string, next entity.BookingStatus) (*entity.Booking, entity.BookingStatus, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexLocked(id)
	if i < 0 {
		return nil, "", domainRepo.ErrBookingNotFound
	}

	previous := r.bookings[i].Status
	if !previous.CanTransitionTo(next) {
		return nil, previous, entity.ErrInvalidTransition
	}
	r.bookings[i].Status = next
	booking := r.bookings[i]
	return &booking, previous, nil
}

func (r *bookingRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.bookings)
}

func (r *bookingRepository) indexLocked(id string) int {
	for i := range r.bookings {
		if r.bookings[i].ID == id {
			return i
		}
	}
	return -1
}
