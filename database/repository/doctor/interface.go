// File: database/repository/doctor/interface.go
package doctorRepo

import (
	"context"

	"clinicbook/database"
	"clinicbook/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// DoctorRepository is the persistence boundary for doctor profiles.
type DoctorRepository interface {
	Create(ctx context.Context, doctor *models.Doctor) error
	GetByID(ctx context.Context, id string) (*models.Doctor, error)
	GetByEmail(ctx context.Context, email string) (*models.Doctor, error)
	List(ctx context.Context) ([]models.Doctor, error)
	UpdateProfile(ctx context.Context, id string, name, specialty string) error
	SetWeeklyAvailability(ctx context.Context, id string, entries []models.AvailabilityEntry) error
	SetBookingPolicy(ctx context.Context, id string, startBufferDays, endBufferDays *int, slotsPerPerson int) error
	SetTokenHash(ctx context.Context, id, tokenHash string) error
	Delete(ctx context.Context, id string) error
}

type mongoDoctorRepo struct {
	coll *mongo.Collection
}

// NewMongoDoctorRepo constructs a MongoDB-backed DoctorRepository.
func NewMongoDoctorRepo() DoctorRepository {
	return &mongoDoctorRepo{
		coll: database.DB().Collection("doctors"),
	}
}
