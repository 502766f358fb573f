package schedule

import (
	"errors"
	"testing"
	"time"

	"clinicbook/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mondayDoctor mirrors the reference scenario: one Monday entry
// 09:00-10:00, 30-minute slots, clinic only, capacity 1, bookable up
// to 30 days out.
func mondayDoctor() *models.Doctor {
	return &models.Doctor{
		ID:   "doc-1",
		Name: "Dr. Mensah",
		WeeklyAvailability: []models.AvailabilityEntry{
			{Weekday: "monday", Start: "09:00", End: "10:00", SlotDurationMinutes: 30, InClinic: true},
		},
		StartBufferDays: intPtr(0),
		EndBufferDays:   intPtr(30),
		SlotsPerPerson:  1,
	}
}

func TestGetAvailableSlotsReferenceScenario(t *testing.T) {
	monday := day(2025, time.June, 2)
	now := time.Date(2025, time.June, 2, 8, 0, 0, 0, time.UTC)

	slots, err := GetAvailableSlots(mondayDoctor(), monday, models.ModeClinic, nil, now, "")
	require.NoError(t, err)

	require.Len(t, slots, 2)
	assert.Equal(t, "09:00", slots[0].Label)
	assert.Equal(t, "09:30", slots[1].Label)
	for _, s := range slots {
		assert.True(t, s.Available)
		assert.Equal(t, 1, s.Remaining)
		assert.Equal(t, models.ModeClinic, s.Mode)
	}

	// One non-cancelled booking at 09:00 fills that slot; 09:30 stays open.
	booked := []models.Appointment{
		appt("a1", "doc-1", "2025-06-02", "09:00", models.ModeClinic, models.StatusPending),
	}
	slots, err = GetAvailableSlots(mondayDoctor(), monday, models.ModeClinic, booked, now, "")
	require.NoError(t, err)
	require.Len(t, slots, 2)
	assert.False(t, slots[0].Available)
	assert.Equal(t, 0, slots[0].Remaining)
	assert.Equal(t, 1, slots[0].Booked)
	assert.True(t, slots[1].Available)
}

func TestGetAvailableSlotsInvalidInput(t *testing.T) {
	monday := day(2025, time.June, 2)
	now := time.Date(2025, time.June, 2, 8, 0, 0, 0, time.UTC)

	var invalid *InvalidInputError

	_, err := GetAvailableSlots(nil, monday, models.ModeClinic, nil, now, "")
	require.True(t, errors.As(err, &invalid))
	assert.Equal(t, "profile", invalid.Field)

	_, err = GetAvailableSlots(mondayDoctor(), time.Time{}, models.ModeClinic, nil, now, "")
	require.True(t, errors.As(err, &invalid))
	assert.Equal(t, "date", invalid.Field)

	_, err = GetAvailableSlots(mondayDoctor(), monday, models.Mode("walk-in"), nil, now, "")
	require.True(t, errors.As(err, &invalid))
	assert.Equal(t, "mode", invalid.Field)
}

func TestGetAvailableSlotsBufferExclusion(t *testing.T) {
	doc := mondayDoctor()
	doc.StartBufferDays = intPtr(1)
	doc.EndBufferDays = intPtr(7)
	now := time.Date(2025, time.June, 2, 8, 0, 0, 0, time.UTC)

	// Today itself is below the 1-day start buffer.
	slots, err := GetAvailableSlots(doc, day(2025, time.June, 2), models.ModeClinic, nil, now, "")
	require.NoError(t, err)
	assert.Empty(t, slots)

	// The Monday after the 7-day end buffer is out too.
	slots, err = GetAvailableSlots(doc, day(2025, time.June, 16), models.ModeClinic, nil, now, "")
	require.NoError(t, err)
	assert.Empty(t, slots)

	// The Monday inside the window works.
	slots, err = GetAvailableSlots(doc, day(2025, time.June, 9), models.ModeClinic, nil, now, "")
	require.NoError(t, err)
	assert.Len(t, slots, 2)
}

func TestGetAvailableSlotsWeekdayGating(t *testing.T) {
	now := time.Date(2025, time.June, 2, 8, 0, 0, 0, time.UTC)
	tuesday := day(2025, time.June, 3)

	slots, err := GetAvailableSlots(mondayDoctor(), tuesday, models.ModeClinic, nil, now, "")
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestGetAvailableSlotsModeIsolation(t *testing.T) {
	now := time.Date(2025, time.June, 2, 8, 0, 0, 0, time.UTC)
	monday := day(2025, time.June, 2)

	slots, err := GetAvailableSlots(mondayDoctor(), monday, models.ModeVideo, nil, now, "")
	require.NoError(t, err)
	assert.Empty(t, slots, "clinic-only entry must not yield video slots")
}

func TestGetAvailableSlotsPastTimeDrop(t *testing.T) {
	monday := day(2025, time.June, 2)

	// 09:10 on the target day: 09:00 already started, 09:30 remains.
	now := time.Date(2025, time.June, 2, 9, 10, 0, 0, time.UTC)
	slots, err := GetAvailableSlots(mondayDoctor(), monday, models.ModeClinic, nil, now, "")
	require.NoError(t, err)
	require.Len(t, slots, 1)
	assert.Equal(t, "09:30", slots[0].Label)

	// A slot starting exactly now is past as well.
	now = time.Date(2025, time.June, 2, 9, 30, 0, 0, time.UTC)
	slots, err = GetAvailableSlots(mondayDoctor(), monday, models.ModeClinic, nil, now, "")
	require.NoError(t, err)
	assert.Empty(t, slots)

	// On a future date the clock is irrelevant.
	nextMonday := day(2025, time.June, 9)
	now = time.Date(2025, time.June, 2, 23, 59, 0, 0, time.UTC)
	slots, err = GetAvailableSlots(mondayDoctor(), nextMonday, models.ModeClinic, nil, now, "")
	require.NoError(t, err)
	assert.Len(t, slots, 2)
}

func TestGetAvailableSlotsExclusionOfSelf(t *testing.T) {
	monday := day(2025, time.June, 2)
	now := time.Date(2025, time.June, 2, 8, 0, 0, 0, time.UTC)
	booked := []models.Appointment{
		appt("a1", "doc-1", "2025-06-02", "09:00", models.ModeClinic, models.StatusApproved),
	}

	without, err := GetAvailableSlots(mondayDoctor(), monday, models.ModeClinic, booked, now, "")
	require.NoError(t, err)
	withExclusion, err := GetAvailableSlots(mondayDoctor(), monday, models.ModeClinic, booked, now, "a1")
	require.NoError(t, err)

	assert.Equal(t, 0, without[0].Remaining)
	assert.Equal(t, 1, withExclusion[0].Remaining)
	assert.True(t, withExclusion[0].Available,
		"the edited appointment's own slot must stay selectable")
}

func TestGetAvailableSlotsDeduplicatesOverlap(t *testing.T) {
	doc := mondayDoctor()
	// Second session overlaps the first; 09:30 appears in both.
	doc.WeeklyAvailability = append(doc.WeeklyAvailability,
		models.AvailabilityEntry{Weekday: "monday", Start: "09:30", End: "11:00", SlotDurationMinutes: 30, InClinic: true})

	now := time.Date(2025, time.June, 2, 8, 0, 0, 0, time.UTC)
	slots, err := GetAvailableSlots(doc, day(2025, time.June, 2), models.ModeClinic, nil, now, "")
	require.NoError(t, err)

	labels := make([]string, len(slots))
	for i, s := range slots {
		labels[i] = s.Label
	}
	assert.Equal(t, []string{"09:00", "09:30", "10:00", "10:30"}, labels)
}

func TestGetAvailableSlotsDeterministic(t *testing.T) {
	monday := day(2025, time.June, 2)
	now := time.Date(2025, time.June, 2, 8, 0, 0, 0, time.UTC)
	booked := []models.Appointment{
		appt("a1", "doc-1", "2025-06-02", "09:30", models.ModeClinic, models.StatusPending),
	}

	first, err := GetAvailableSlots(mondayDoctor(), monday, models.ModeClinic, booked, now, "")
	require.NoError(t, err)
	second, err := GetAvailableSlots(mondayDoctor(), monday, models.ModeClinic, booked, now, "")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestGetAvailableSlotsCapacityConservation(t *testing.T) {
	doc := mondayDoctor()
	doc.SlotsPerPerson = 3
	monday := day(2025, time.June, 2)
	now := time.Date(2025, time.June, 2, 8, 0, 0, 0, time.UTC)

	booked := []models.Appointment{
		appt("a1", "doc-1", "2025-06-02", "09:00", models.ModeClinic, models.StatusPending),
		appt("a2", "doc-1", "2025-06-02", "09:00", models.ModeClinic, models.StatusApproved),
	}

	slots, err := GetAvailableSlots(doc, monday, models.ModeClinic, booked, now, "")
	require.NoError(t, err)
	require.Len(t, slots, 2)

	assert.Equal(t, 3, slots[0].Capacity)
	assert.Equal(t, 2, slots[0].Booked)
	assert.Equal(t, 1, slots[0].Remaining)
	assert.True(t, slots[0].Available)
}

func TestIsDateSelectable(t *testing.T) {
	now := time.Date(2025, time.June, 2, 8, 0, 0, 0, time.UTC)
	monday := day(2025, time.June, 2)

	ok, err := IsDateSelectable(mondayDoctor(), monday, models.ModeClinic, nil, now)
	require.NoError(t, err)
	assert.True(t, ok)

	// Non-working weekday.
	ok, err = IsDateSelectable(mondayDoctor(), day(2025, time.June, 3), models.ModeClinic, nil, now)
	require.NoError(t, err)
	assert.False(t, ok)

	// Outside the buffer window.
	ok, err = IsDateSelectable(mondayDoctor(), day(2025, time.July, 7), models.ModeClinic, nil, now)
	require.NoError(t, err)
	assert.False(t, ok)

	// Every slot fully booked.
	booked := []models.Appointment{
		appt("a1", "doc-1", "2025-06-02", "09:00", models.ModeClinic, models.StatusPending),
		appt("a2", "doc-1", "2025-06-02", "09:30", models.ModeClinic, models.StatusPending),
	}
	ok, err = IsDateSelectable(mondayDoctor(), monday, models.ModeClinic, booked, now)
	require.NoError(t, err)
	assert.False(t, ok)

	// Invalid calls surface the typed error.
	_, err = IsDateSelectable(nil, monday, models.ModeClinic, nil, now)
	var invalid *InvalidInputError
	assert.True(t, errors.As(err, &invalid))
}
