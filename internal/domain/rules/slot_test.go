package rules

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlotStartMinutes(t *testing.T) {
	tests := []struct {
		slot string
		want int
	}{
		{"09:00–10:00", 540},
		{"14:30-15:30", 870},
		{"9:05 - 10:00", 545},
		{"15", 900},
	}
	for _, tt := range tests {
		t.Run(tt.slot, func(t *testing.T) {
			got, err := SlotStartMinutes(tt.slot)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSlotStartMinutes_Invalid(t *testing.T) {
	for _, slot := range []string{"", "noon–1pm", "25:00–26:00", "10:75-11:00"} {
		_, err := SlotStartMinutes(slot)
		assert.ErrorIs(t, err, ErrInvalidSlot, slot)
	}
}

func TestIsPastSlot(t *testing.T) {
	now := time.Date(2025, 6, 1, 10, 30, 0, 0, time.Local)

	tests := []struct {
		name string
		date string
		slot string
		want bool
	}{
		{"earlier slot today", "2025-06-01", "09:00–10:00", true},
		{"slot starting now-ish today", "2025-06-01", "10:00–11:00", true},
		{"later slot today", "2025-06-01", "11:00–12:00", false},
		{"tomorrow", "2025-06-02", "09:00–10:00", false},
		{"yesterday is not past by this rule", "2025-05-31", "09:00–10:00", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := IsPastSlot(tt.date, tt.slot, now)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsPastSlot_StartEqualsNow(t *testing.T) {
	now := time.Date(2025, 6, 1, 14, 0, 0, 0, time.Local)

	past, err := IsPastSlot("2025-06-01", "14:00-15:00", now)
	require.NoError(t, err)
	assert.True(t, past)
}

func TestClampDate(t *testing.T) {
	now := time.Date(2025, 6, 1, 8, 0, 0, 0, time.Local)

	got, err := ClampDate("2025-05-20", now)
	require.NoError(t, err)
	assert.Equal(t, "2025-06-01", got)

	got, err = ClampDate("2025-06-10", now)
	require.NoError(t, err)
	assert.Equal(t, "2025-06-10", got)

	_, err = ClampDate("06/10/2025", now)
	assert.ErrorIs(t, err, ErrInvalidDate)
}
