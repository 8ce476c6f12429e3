package rules

import (
	"testing"

	"facility-booking/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestHasConflict(t *testing.T) {
	bookings := sampleBookings()

	tests := []struct {
		name      string
		candidate entity.SlotKey
		want      bool
	}{
		{"active pending booking blocks", entity.SlotKey{Facility: "Auditorium", Date: "2025-06-02", Slot: "10:00–11:00"}, true},
		{"active approved booking blocks", entity.SlotKey{Facility: "Cafeteria", Date: "2025-06-01", Slot: "09:00–10:00"}, true},
		{"cancelled booking does not block", entity.SlotKey{Facility: "Conference Room A", Date: "2025-06-01", Slot: "09:00–10:00"}, false},
		{"different facility same time", entity.SlotKey{Facility: "Auditorium", Date: "2025-06-01", Slot: "09:00–10:00"}, false},
		{"different date", entity.SlotKey{Facility: "Cafeteria", Date: "2025-06-03", Slot: "09:00–10:00"}, false},
		{"different slot", entity.SlotKey{Facility: "Cafeteria", Date: "2025-06-01", Slot: "10:00–11:00"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HasConflict(tt.candidate, bookings))
		})
	}
}

func TestHasConflict_EmptyCollection(t *testing.T) {
	assert.False(t, HasConflict(entity.SlotKey{Facility: "Auditorium", Date: "2025-06-01", Slot: "09:00–10:00"}, nil))
}
