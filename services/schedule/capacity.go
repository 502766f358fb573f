package schedule

import (
	"time"

	"clinicbook/models"
	"clinicbook/utils"
)

// CountBooked counts the appointments already holding capacity at the
// given (doctor, date, minute, mode). Cancelled and rejected bookings
// never count, and excludeID removes one appointment from its own
// count so that an appointment under edit keeps its slot selectable.
//
// Dates and times on appointment records are normalized before
// comparison; a record that cannot be normalized is excluded from the
// count rather than failing the computation.
func CountBooked(appointments []models.Appointment, doctorID string, date time.Time, minute int, mode models.Mode, excludeID string) int {
	day := utils.DateOnly(date)
	count := 0

	for _, appt := range appointments {
		if appt.DoctorID != doctorID || appt.Mode != mode {
			continue
		}
		if !models.StatusHoldsCapacity(appt.Status) {
			continue
		}
		if excludeID != "" && appt.ID == excludeID {
			continue
		}

		apptDate, err := utils.ParseDate(appt.Date)
		if err != nil || !apptDate.Equal(day) {
			continue
		}
		apptMinute, err := utils.ParseClock(appt.Time)
		if err != nil || apptMinute != minute {
			continue
		}

		count++
	}

	return count
}
