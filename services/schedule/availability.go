package schedule

import (
	"strings"
	"time"

	"clinicbook/models"
	"clinicbook/utils"

	"go.uber.org/zap"
)

// DefaultSlotDurationMinutes is the step between candidate times when
// an availability entry does not set its own duration.
const DefaultSlotDurationMinutes = 30

// Interval is one working-hours block applicable to a specific date
// and mode, with times in minutes from midnight.
type Interval struct {
	Start        int
	End          int
	SlotDuration int
}

// ResolveDayAvailability selects the working-hour intervals a doctor
// offers on the given date in the given mode. A weekday may yield
// several intervals (split sessions). Entries that are closed, miss
// the mode, or carry unparseable or reversed times contribute nothing;
// an empty result is a normal "not working that day" outcome, never an
// error.
func ResolveDayAvailability(profile *models.Doctor, date time.Time, mode models.Mode) []Interval {
	if profile == nil {
		return nil
	}

	weekday := date.Weekday().String()
	var intervals []Interval

	for _, entry := range profile.WeeklyAvailability {
		if !strings.EqualFold(entry.Weekday, weekday) {
			continue
		}
		if entry.Closed || !entry.AppliesTo(mode) {
			continue
		}

		start, err := utils.ParseClock(entry.Start)
		if err != nil {
			utils.GetLogger().Debug("skipping availability entry with bad start time",
				zap.String("doctorID", profile.ID), zap.String("start", entry.Start))
			continue
		}
		end, err := utils.ParseClock(entry.End)
		if err != nil {
			utils.GetLogger().Debug("skipping availability entry with bad end time",
				zap.String("doctorID", profile.ID), zap.String("end", entry.End))
			continue
		}
		if start >= end {
			continue
		}

		duration := entry.SlotDurationMinutes
		if duration <= 0 {
			duration = DefaultSlotDurationMinutes
		}

		intervals = append(intervals, Interval{Start: start, End: end, SlotDuration: duration})
	}

	return intervals
}
