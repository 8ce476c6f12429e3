package rules

import (
	"errors"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the plain calendar date format used for bookings
const DateLayout = "2006-01-02"

var (
	ErrInvalidSlot = errors.New("invalid slot label")
	ErrInvalidDate = errors.New("invalid date format, use YYYY-MM-DD")
)

// SlotStartMinutes parses the start of a label such as "09:00–10:00" into
// minutes since midnight. Both "-" and "–" are accepted as separators.
func SlotStartMinutes(slot string) (int, error) {
	start := slot
	if i := strings.IndexAny(slot, "-–"); i >= 0 {
		start = slot[:i]
	}
	start = strings.TrimSpace(start)

	hh, mm, found := strings.Cut(start, ":")
	h, err := strconv.Atoi(hh)
	if err != nil || h < 0 || h > 23 {
		return 0, ErrInvalidSlot
	}
	m := 0
	if found && mm != "" {
		m, err = strconv.Atoi(mm)
		if err != nil || m < 0 || m > 59 {
			return 0, ErrInvalidSlot
		}
	}
	return h*60 + m, nil
}

// Today formats now's calendar date in its own location
func Today(now time.Time) string {
	return now.Format(DateLayout)
}

// IsPastSlot reports whether the slot on the given date has already started.
// Only today's slots can be past; any other date, earlier ones included, is false.
func IsPastSlot(date, slot string, now time.Time) (bool, error) {
	start, err := SlotStartMinutes(slot)
	if err != nil {
		return false, err
	}
	if date != Today(now) {
		return false, nil
	}
	nowMin := now.Hour()*60 + now.Minute()
	return start <= nowMin, nil
}

// ClampDate raises a date earlier than today up to today.
func ClampDate(date string, now time.Time) (string, error) {
	if _, err := time.Parse(DateLayout, date); err != nil {
		return "", ErrInvalidDate
	}
	today := Today(now)
	if date < today {
		return today, nil
	}
	return date, nil
}
