package schedule

import (
	"sort"
	"time"

	"clinicbook/models"
	"clinicbook/utils"
)

// GetAvailableSlots computes the ordered slot list for one doctor,
// date and mode against a snapshot of existing appointments. The
// result is correct as of that snapshot only; a slot can be taken by a
// concurrent booking before a later submission lands, so callers must
// recompute right before committing, not trust a stale list.
//
// The full list is returned, fully-booked slots included (marked
// unavailable). The one exception is past times on the current day,
// which are dropped entirely. Dates outside the doctor's buffer window
// or on non-working days yield an empty list, not an error; only a
// missing profile, zero date or unknown mode is an InvalidInputError.
func GetAvailableSlots(
	profile *models.Doctor,
	date time.Time,
	mode models.Mode,
	appointments []models.Appointment,
	now time.Time,
	excludeAppointmentID string,
) ([]models.Slot, error) {
	if profile == nil || profile.ID == "" {
		return nil, invalidInput("profile", "doctor profile is required")
	}
	if date.IsZero() {
		return nil, invalidInput("date", "target date is required")
	}
	if !mode.Valid() {
		return nil, invalidInput("mode", "mode must be clinic or video")
	}

	window := ComputeBufferWindow(now, profile.StartBufferDays, profile.EndBufferDays)
	if !window.Contains(date) {
		return []models.Slot{}, nil
	}

	intervals := ResolveDayAvailability(profile, date, mode)
	if len(intervals) == 0 {
		return []models.Slot{}, nil
	}

	// Merge candidate times across intervals; a time covered by two
	// split sessions counts once.
	seen := make(map[int]bool)
	var candidates []int
	for _, iv := range intervals {
		for _, t := range EnumerateSlots(iv) {
			if !seen[t] {
				seen[t] = true
				candidates = append(candidates, t)
			}
		}
	}
	sort.Ints(candidates)

	capacity := profile.SlotsPerPerson
	if capacity <= 0 {
		capacity = 1
	}

	slots := make([]models.Slot, 0, len(candidates))
	for _, minute := range candidates {
		if isPast(date, minute, now) {
			continue
		}

		booked := CountBooked(appointments, profile.ID, date, minute, mode, excludeAppointmentID)
		remaining := capacity - booked
		slots = append(slots, models.Slot{
			Start:     minute,
			Label:     utils.FormatClock(minute),
			Mode:      mode,
			Booked:    booked,
			Capacity:  capacity,
			Remaining: remaining,
			Available: remaining > 0,
		})
	}

	return slots, nil
}

// IsDateSelectable reports whether a calendar day should be offered at
// all: inside the buffer window and with at least one available slot.
func IsDateSelectable(
	profile *models.Doctor,
	date time.Time,
	mode models.Mode,
	appointments []models.Appointment,
	now time.Time,
) (bool, error) {
	slots, err := GetAvailableSlots(profile, date, mode, appointments, now, "")
	if err != nil {
		return false, err
	}
	for _, slot := range slots {
		if slot.Available {
			return true, nil
		}
	}
	return false, nil
}

// isPast reports whether a candidate time has already passed. Only
// meaningful when the target date is now's calendar date; any future
// date is never past. Comparison is at minute precision, and a slot
// starting exactly now is treated as past.
func isPast(date time.Time, minute int, now time.Time) bool {
	if !utils.DateOnly(date).Equal(utils.DateOnly(now)) {
		return false
	}
	return minute <= utils.MinuteOfDay(now)
}
