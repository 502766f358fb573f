package schedule

import (
	"testing"
	"time"

	"clinicbook/models"

	"github.com/stretchr/testify/assert"
)

func appt(id, doctorID, date, clock string, mode models.Mode, status string) models.Appointment {
	return models.Appointment{
		ID:       id,
		DoctorID: doctorID,
		Date:     date,
		Time:     clock,
		Mode:     mode,
		Status:   status,
	}
}

func TestCountBooked(t *testing.T) {
	monday := day(2025, time.June, 2)
	appointments := []models.Appointment{
		appt("a1", "doc-1", "2025-06-02", "09:00", models.ModeClinic, models.StatusPending),
		appt("a2", "doc-1", "2025-06-02", "09:00", models.ModeClinic, models.StatusApproved),
		appt("a3", "doc-1", "2025-06-02", "09:00", models.ModeClinic, models.StatusCancelled),
		appt("a4", "doc-1", "2025-06-02", "09:00", models.ModeClinic, models.StatusRejected),
		appt("a5", "doc-1", "2025-06-02", "09:30", models.ModeClinic, models.StatusPending),
		appt("a6", "doc-1", "2025-06-02", "09:00", models.ModeVideo, models.StatusPending),
		appt("a7", "doc-2", "2025-06-02", "09:00", models.ModeClinic, models.StatusPending),
		appt("a8", "doc-1", "2025-06-03", "09:00", models.ModeClinic, models.StatusPending),
	}

	count := CountBooked(appointments, "doc-1", monday, 540, models.ModeClinic, "")

	// Only a1 and a2: cancelled/rejected, other times, other modes,
	// other doctors and other dates are all out.
	assert.Equal(t, 2, count)
}

func TestCountBookedNormalizesFormats(t *testing.T) {
	// Legacy records carry DD-MM-YYYY dates and 12-hour times; they
	// still count against the same slot.
	monday := day(2025, time.June, 2)
	appointments := []models.Appointment{
		appt("a1", "doc-1", "02-06-2025", "9:00 AM", models.ModeClinic, models.StatusPending),
		appt("a2", "doc-1", "2025-06-02", "09:00", models.ModeClinic, models.StatusPending),
		appt("a3", "doc-1", "02-06-2025", "2:30 PM", models.ModeClinic, models.StatusPending),
	}

	assert.Equal(t, 2, CountBooked(appointments, "doc-1", monday, 540, models.ModeClinic, ""))
	assert.Equal(t, 1, CountBooked(appointments, "doc-1", monday, 870, models.ModeClinic, ""))
}

func TestCountBookedExcludesSelf(t *testing.T) {
	monday := day(2025, time.June, 2)
	appointments := []models.Appointment{
		appt("a1", "doc-1", "2025-06-02", "09:00", models.ModeClinic, models.StatusApproved),
		appt("a2", "doc-1", "2025-06-02", "09:00", models.ModeClinic, models.StatusApproved),
	}

	assert.Equal(t, 2, CountBooked(appointments, "doc-1", monday, 540, models.ModeClinic, ""))
	assert.Equal(t, 1, CountBooked(appointments, "doc-1", monday, 540, models.ModeClinic, "a1"))
}

func TestCountBookedSkipsMalformedRecords(t *testing.T) {
	monday := day(2025, time.June, 2)
	appointments := []models.Appointment{
		appt("a1", "doc-1", "not-a-date", "09:00", models.ModeClinic, models.StatusPending),
		appt("a2", "doc-1", "2025-06-02", "whenever", models.ModeClinic, models.StatusPending),
		appt("a3", "doc-1", "2025-06-02", "09:00", models.ModeClinic, models.StatusPending),
	}

	assert.Equal(t, 1, CountBooked(appointments, "doc-1", monday, 540, models.ModeClinic, ""))
}

func TestCountBookedEmptyList(t *testing.T) {
	assert.Equal(t, 0, CountBooked(nil, "doc-1", day(2025, time.June, 2), 540, models.ModeClinic, ""))
}
