package rules

import "facility-booking/internal/domain/entity"

// HasConflict reports whether an active booking already occupies the slot.
// Cancelled bookings never block.
func HasConflict(candidate entity.SlotKey, bookings []entity.Booking) bool {
	for i := range bookings {
		if bookings[i].Status.IsActive() && bookings[i].Key() == candidate {
			return true
		}
	}
	return false
}
