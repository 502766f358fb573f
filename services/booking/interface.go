package booking

import (
	"context"
	"time"

	appointmentRepo "clinicbook/database/repository/appointment"
	doctorRepo "clinicbook/database/repository/doctor"
	"clinicbook/models"

	"github.com/go-redis/redis/v8"
)

// BookingService exposes slot lookup and the appointment lifecycle.
// Every scheduling decision delegates to the schedule engine; this
// layer only assembles its inputs and persists its outcomes.
type BookingService interface {
	GetDaySlots(ctx context.Context, doctorID, date string, mode models.Mode, excludeAppointmentID string) (*models.DaySlots, error)
	GetSelectableDates(ctx context.Context, doctorID string, mode models.Mode, from string, days int) ([]models.SelectableDate, error)
	BookAppointment(ctx context.Context, req models.BookingRequest) (*models.Appointment, error)
	RescheduleAppointment(ctx context.Context, appointmentID string, req models.RescheduleRequest) (*models.Appointment, error)
	CancelAppointment(ctx context.Context, appointmentID, patientID, reason string) error
	SetStatus(ctx context.Context, appointmentID, status string) error
	GetAppointment(ctx context.Context, appointmentID string) (*models.Appointment, error)
	ListDoctorAppointments(ctx context.Context, doctorID, date string) ([]models.Appointment, error)
	ListPatientAppointments(ctx context.Context, patientID string) ([]models.Appointment, error)
}

// ReminderScheduler enqueues an appointment reminder; nil disables
// reminders (tests, or deployments without the worker).
type ReminderScheduler interface {
	ScheduleReminder(ctx context.Context, appt *models.Appointment) error
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	DoctorRepo doctorRepo.DoctorRepository
	ApptRepo   appointmentRepo.AppointmentRepository

	// Cache is optional; nil skips slot-response caching.
	Cache *redis.Client
	// Reminders is optional; nil skips reminder scheduling.
	Reminders ReminderScheduler

	// Now is the injected clock; nil falls back to time.Now. Slot
	// computations never read the wall clock directly, which keeps
	// them deterministic under test.
	Now func() time.Time
}

func (s *DefaultBookingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
