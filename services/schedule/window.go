package schedule

import (
	"time"

	"clinicbook/utils"
)

// Default booking window applied when a doctor profile does not
// configure its own buffer days.
const (
	DefaultStartBufferDays = 0
	DefaultEndBufferDays   = 365
)

// BufferWindow is the inclusive range of calendar dates a booking may
// target, anchored to "today". Both bounds are date-only values.
type BufferWindow struct {
	Min time.Time
	Max time.Time
}

// Contains reports whether the given date falls inside the window.
// Time-of-day components are ignored on both sides.
func (w BufferWindow) Contains(date time.Time) bool {
	d := utils.DateOnly(date)
	return !d.Before(w.Min) && !d.After(w.Max)
}

// ComputeBufferWindow turns a doctor's start/end buffer-day
// configuration into concrete minimum and maximum bookable dates.
// Nil buffers take the defaults (0 and 365 days).
func ComputeBufferWindow(today time.Time, startBufferDays, endBufferDays *int) BufferWindow {
	start := DefaultStartBufferDays
	if startBufferDays != nil {
		start = *startBufferDays
	}
	end := DefaultEndBufferDays
	if endBufferDays != nil {
		end = *endBufferDays
	}

	base := utils.DateOnly(today)
	return BufferWindow{
		Min: base.AddDate(0, 0, start),
		Max: base.AddDate(0, 0, end),
	}
}
