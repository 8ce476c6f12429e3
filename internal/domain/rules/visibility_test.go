package rules

import (
	"strings"
	"testing"

	"facility-booking/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

const adminEmail = "admin@example.com"

func sampleBookings() []entity.Booking {
	return []entity.Booking{
		{ID: "b3", Facility: "Auditorium", Date: "2025-06-02", Slot: "10:00–11:00", Status: entity.BookingStatusPending, User: entity.UserSnapshot{ID: "2", Email: "User@Example.com"}},
		{ID: "b2", Facility: "Cafeteria", Date: "2025-06-01", Slot: "09:00–10:00", Status: entity.BookingStatusApproved, User: entity.UserSnapshot{ID: "3", Email: "other@example.com"}},
		{ID: "b1", Facility: "Conference Room A", Date: "2025-06-01", Slot: "09:00–10:00", Status: entity.BookingStatusCancelled, User: entity.UserSnapshot{ID: "2", Email: "user@example.com"}},
		{ID: "b0", Facility: "Conference Room B", Date: "2025-06-01", Slot: "11:00–12:00", Status: entity.BookingStatusPending, User: entity.UserSnapshot{ID: "4"}},
	}
}

func TestVisibleTo_AnonymousSeesNothing(t *testing.T) {
	got := VisibleTo(nil, sampleBookings(), adminEmail)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestVisibleTo_AdminRoleSeesEverythingInOrder(t *testing.T) {
	bookings := sampleBookings()
	viewer := &entity.Viewer{ID: "9", Email: "boss@example.com", Role: entity.RoleAdmin}

	assert.Equal(t, bookings, VisibleTo(viewer, bookings, adminEmail))
}

func TestVisibleTo_AdminEmailSeesEverything(t *testing.T) {
	bookings := sampleBookings()
	viewer := &entity.Viewer{ID: "1", Email: "admin@example.com", Role: "User"}

	assert.Equal(t, bookings, VisibleTo(viewer, bookings, adminEmail))
}

func TestVisibleTo_UserSeesOwnBookingsCaseInsensitive(t *testing.T) {
	bookings := sampleBookings()
	viewer := &entity.Viewer{ID: "2", Email: "USER@example.COM", Role: "User"}

	got := VisibleTo(viewer, bookings, adminEmail)

	var ids []string
	for _, b := range got {
		ids = append(ids, b.ID)
		assert.True(t, strings.EqualFold(b.User.Email, viewer.Email))
	}
	assert.Equal(t, []string{"b3", "b1"}, ids)
}

func TestVisibleTo_NoOmissionsNoExtras(t *testing.T) {
	bookings := sampleBookings()
	viewer := &entity.Viewer{ID: "3", Email: "other@example.com"}

	got := VisibleTo(viewer, bookings, adminEmail)

	expected := 0
	for _, b := range bookings {
		if strings.EqualFold(b.User.Email, viewer.Email) {
			expected++
		}
	}
	assert.Len(t, got, expected)
}

func TestVisibleTo_EmptyEmailNeverMatches(t *testing.T) {
	viewer := &entity.Viewer{ID: "4", Role: "User"}

	assert.Empty(t, VisibleTo(viewer, sampleBookings(), adminEmail))
}

func TestCanView(t *testing.T) {
	b := sampleBookings()[1]

	assert.False(t, CanView(nil, &b, adminEmail))
	assert.True(t, CanView(&entity.Viewer{Email: "other@example.com"}, &b, adminEmail))
	assert.False(t, CanView(&entity.Viewer{Email: "user@example.com"}, &b, adminEmail))
	assert.True(t, CanView(&entity.Viewer{Email: "admin@example.com"}, &b, adminEmail))
	// Only ownership ignores case; the admin email must match exactly
	assert.False(t, CanView(&entity.Viewer{Email: "Admin@Example.com"}, &b, adminEmail))
}
