// Package rules holds the side-effect-free booking policies: who may see a
// booking, whether a slot is taken, and whether a slot has already started.
package rules

import (
	"strings"

	"facility-booking/internal/domain/entity"
)

// VisibleTo returns the bookings the viewer may see, preserving order.
// Anonymous viewers see nothing; admins see everything; everyone else sees
// the bookings whose creator email matches their own, ignoring case.
func VisibleTo(viewer *entity.Viewer, bookings []entity.Booking, adminEmail string) []entity.Booking {
	if viewer == nil {
		return []entity.Booking{}
	}
	if viewer.IsAdmin(adminEmail) {
		return bookings
	}

	visible := make([]entity.Booking, 0)
	for _, b := range bookings {
		if IsOwner(viewer, &b) {
			visible = append(visible, b)
		}
	}
	return visible
}

// IsOwner reports whether the booking was created by the viewer's email.
// An empty email never matches.
func IsOwner(viewer *entity.Viewer, booking *entity.Booking) bool {
	if viewer == nil || booking == nil {
		return false
	}
	if viewer.Email == "" || booking.User.Email == "" {
		return false
	}
	return strings.EqualFold(viewer.Email, booking.User.Email)
}

// CanView combines the admin and owner checks for a single booking
func CanView(viewer *entity.Viewer, booking *entity.Booking, adminEmail string) bool {
	if viewer == nil {
		return false
	}
	return viewer.IsAdmin(adminEmail) || IsOwner(viewer, booking)
}
