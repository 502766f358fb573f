// File: database/repository/appointment/interface.go
package appointmentRepo

import (
	"context"
	"time"

	"clinicbook/database"
	"clinicbook/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// AppointmentRepository is the persistence boundary for bookings.
type AppointmentRepository interface {
	Create(ctx context.Context, appt *models.Appointment) error
	GetByID(ctx context.Context, id string) (*models.Appointment, error)
	ListByDoctor(ctx context.Context, doctorID string) ([]models.Appointment, error)
	ListByDoctorAndDate(ctx context.Context, doctorID string, date time.Time) ([]models.Appointment, error)
	ListByPatient(ctx context.Context, patientID string) ([]models.Appointment, error)
	UpdateSlot(ctx context.Context, id, date, clock string, mode models.Mode) error
	UpdateStatus(ctx context.Context, id, status, note string) error
	MarkReminderSet(ctx context.Context, id string) error
}

type mongoAppointmentRepo struct {
	coll *mongo.Collection
}

// NewMongoAppointmentRepo constructs a MongoDB-backed AppointmentRepository.
func NewMongoAppointmentRepo() AppointmentRepository {
	return &mongoAppointmentRepo{
		coll: database.DB().Collection("appointments"),
	}
}
