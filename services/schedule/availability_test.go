package schedule

import (
	"testing"
	"time"

	"clinicbook/models"

	"github.com/stretchr/testify/assert"
)

func testDoctor(entries ...models.AvailabilityEntry) *models.Doctor {
	return &models.Doctor{ID: "doc-1", Name: "Dr. Mensah", WeeklyAvailability: entries}
}

func TestResolveDayAvailabilityMatchesWeekday(t *testing.T) {
	doc := testDoctor(
		models.AvailabilityEntry{Weekday: "monday", Start: "09:00", End: "12:00", SlotDurationMinutes: 30, InClinic: true},
		models.AvailabilityEntry{Weekday: "tuesday", Start: "14:00", End: "17:00", SlotDurationMinutes: 30, InClinic: true},
	)

	monday := day(2025, time.June, 2)
	intervals := ResolveDayAvailability(doc, monday, models.ModeClinic)

	assert.Len(t, intervals, 1)
	assert.Equal(t, Interval{Start: 540, End: 720, SlotDuration: 30}, intervals[0])
}

func TestResolveDayAvailabilitySplitSessions(t *testing.T) {
	// Morning and evening sessions on the same weekday both apply.
	doc := testDoctor(
		models.AvailabilityEntry{Weekday: "Monday", Start: "09:00", End: "12:00", SlotDurationMinutes: 30, InClinic: true},
		models.AvailabilityEntry{Weekday: "monday", Start: "16:00", End: "19:00", SlotDurationMinutes: 20, InClinic: true},
	)

	intervals := ResolveDayAvailability(doc, day(2025, time.June, 2), models.ModeClinic)

	assert.Len(t, intervals, 2)
	assert.Equal(t, 540, intervals[0].Start)
	assert.Equal(t, 960, intervals[1].Start)
	assert.Equal(t, 20, intervals[1].SlotDuration)
}

func TestResolveDayAvailabilityModeIsolation(t *testing.T) {
	doc := testDoctor(
		models.AvailabilityEntry{Weekday: "monday", Start: "09:00", End: "12:00", SlotDurationMinutes: 30, Video: true},
	)

	monday := day(2025, time.June, 2)
	assert.Empty(t, ResolveDayAvailability(doc, monday, models.ModeClinic),
		"video-only entry must not contribute clinic intervals")
	assert.Len(t, ResolveDayAvailability(doc, monday, models.ModeVideo), 1)
}

func TestResolveDayAvailabilitySkipsBadEntries(t *testing.T) {
	doc := testDoctor(
		models.AvailabilityEntry{Weekday: "monday", Start: "", End: "12:00", SlotDurationMinutes: 30, InClinic: true},
		models.AvailabilityEntry{Weekday: "monday", Start: "14:00", End: "13:00", SlotDurationMinutes: 30, InClinic: true},
		models.AvailabilityEntry{Weekday: "monday", Start: "nope", End: "12:00", SlotDurationMinutes: 30, InClinic: true},
		models.AvailabilityEntry{Weekday: "monday", Start: "09:00", End: "11:00", Closed: true, SlotDurationMinutes: 30, InClinic: true},
		models.AvailabilityEntry{Weekday: "monday", Start: "10:00", End: "11:00", SlotDurationMinutes: 30, InClinic: true},
	)

	intervals := ResolveDayAvailability(doc, day(2025, time.June, 2), models.ModeClinic)

	// Only the one well-formed, open entry survives.
	assert.Equal(t, []Interval{{Start: 600, End: 660, SlotDuration: 30}}, intervals)
}

func TestResolveDayAvailabilityDefaultsSlotDuration(t *testing.T) {
	doc := testDoctor(
		models.AvailabilityEntry{Weekday: "monday", Start: "09:00", End: "10:00", InClinic: true},
	)

	intervals := ResolveDayAvailability(doc, day(2025, time.June, 2), models.ModeClinic)

	assert.Len(t, intervals, 1)
	assert.Equal(t, DefaultSlotDurationMinutes, intervals[0].SlotDuration)
}

func TestResolveDayAvailabilityNoMatchIsEmpty(t *testing.T) {
	doc := testDoctor(
		models.AvailabilityEntry{Weekday: "friday", Start: "09:00", End: "12:00", SlotDurationMinutes: 30, InClinic: true},
	)

	assert.Empty(t, ResolveDayAvailability(doc, day(2025, time.June, 2), models.ModeClinic))
	assert.Empty(t, ResolveDayAvailability(nil, day(2025, time.June, 2), models.ModeClinic))
}
