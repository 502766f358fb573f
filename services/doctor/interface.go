package doctor

import (
	"context"

	doctorRepo "clinicbook/database/repository/doctor"
	"clinicbook/models"

	"github.com/go-redis/redis/v8"
)

// AuthResponse contains the doctor's ID, token, and profile basics.
type AuthResponse struct {
	ID        string `json:"id"`
	Token     string `json:"token"`
	Name      string `json:"name,omitempty"`
	Email     string `json:"email,omitempty"`
	Specialty string `json:"specialty,omitempty"`
}

// DoctorService manages doctor accounts and their scheduling setup.
type DoctorService interface {
	Register(ctx context.Context, doc models.Doctor) (*AuthResponse, error)
	Authenticate(ctx context.Context, email, password string) (*AuthResponse, error)
	RevokeToken(ctx context.Context, doctorID string) error

	GetProfile(ctx context.Context, doctorID string) (*models.Doctor, error)
	ListDoctors(ctx context.Context) ([]models.Doctor, error)
	UpdateProfile(ctx context.Context, doctorID, name, specialty string) error
	SetWeeklyAvailability(ctx context.Context, doctorID string, entries []models.AvailabilityEntry) error
	SetBookingPolicy(ctx context.Context, doctorID string, startBufferDays, endBufferDays *int, slotsPerPerson int) error
}

// DefaultDoctorService is the production DoctorService. AuthCache may
// be nil, in which case middleware falls back to database lookups.
type DefaultDoctorService struct {
	Repo      doctorRepo.DoctorRepository
	AuthCache *redis.Client
}
