package doctor

import (
	"context"
	"testing"

	"clinicbook/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
)

type recordingRepo struct {
	saved   []models.AvailabilityEntry
	doctors map[string]*models.Doctor
}

func (r *recordingRepo) Create(_ context.Context, d *models.Doctor) error {
	r.doctors[d.ID] = d
	return nil
}

func (r *recordingRepo) GetByID(_ context.Context, id string) (*models.Doctor, error) {
	d, ok := r.doctors[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return d, nil
}

func (r *recordingRepo) GetByEmail(_ context.Context, email string) (*models.Doctor, error) {
	for _, d := range r.doctors {
		if d.Email == email {
			return d, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (r *recordingRepo) List(_ context.Context) ([]models.Doctor, error) { return nil, nil }
func (r *recordingRepo) UpdateProfile(_ context.Context, _, _, _ string) error {
	return nil
}

func (r *recordingRepo) SetWeeklyAvailability(_ context.Context, _ string, entries []models.AvailabilityEntry) error {
	r.saved = entries
	return nil
}

func (r *recordingRepo) SetBookingPolicy(_ context.Context, _ string, _, _ *int, _ int) error {
	return nil
}
func (r *recordingRepo) SetTokenHash(_ context.Context, _, _ string) error { return nil }
func (r *recordingRepo) Delete(_ context.Context, _ string) error          { return nil }

func newCrudService() (*DefaultDoctorService, *recordingRepo) {
	repo := &recordingRepo{doctors: map[string]*models.Doctor{}}
	return &DefaultDoctorService{Repo: repo}, repo
}

func TestSetWeeklyAvailabilityNormalizes(t *testing.T) {
	svc, repo := newCrudService()

	err := svc.SetWeeklyAvailability(context.Background(), "doc-1", []models.AvailabilityEntry{
		{Weekday: " Monday ", Start: "9:00", End: "5:30 PM", InClinic: true},
		{Weekday: "sunday", Closed: true},
	})
	require.NoError(t, err)
	require.Len(t, repo.saved, 2)

	assert.Equal(t, "monday", repo.saved[0].Weekday)
	assert.Equal(t, "09:00", repo.saved[0].Start)
	assert.Equal(t, "17:30", repo.saved[0].End)
	// Closed entries keep their raw times; they are never enumerated.
	assert.Equal(t, "sunday", repo.saved[1].Weekday)
	assert.True(t, repo.saved[1].Closed)
}

func TestSetWeeklyAvailabilityRejects(t *testing.T) {
	svc, _ := newCrudService()
	ctx := context.Background()

	cases := []struct {
		name    string
		entries []models.AvailabilityEntry
	}{
		{"unknown weekday", []models.AvailabilityEntry{
			{Weekday: "someday", Start: "09:00", End: "17:00", InClinic: true},
		}},
		{"bad start time", []models.AvailabilityEntry{
			{Weekday: "monday", Start: "whenever", End: "17:00", InClinic: true},
		}},
		{"reversed range", []models.AvailabilityEntry{
			{Weekday: "monday", Start: "17:00", End: "09:00", InClinic: true},
		}},
		{"negative slot duration", []models.AvailabilityEntry{
			{Weekday: "monday", Start: "09:00", End: "17:00", SlotDurationMinutes: -15, InClinic: true},
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := svc.SetWeeklyAvailability(ctx, "doc-1", tc.entries)
			assert.Error(t, err)
		})
	}
}

func TestSetBookingPolicyValidates(t *testing.T) {
	svc, _ := newCrudService()
	ctx := context.Background()

	start, end := 7, 2
	err := svc.SetBookingPolicy(ctx, "doc-1", &start, &end, 1)
	assert.Error(t, err)

	neg := -1
	assert.Error(t, svc.SetBookingPolicy(ctx, "doc-1", &neg, nil, 1))
	assert.Error(t, svc.SetBookingPolicy(ctx, "doc-1", nil, nil, -2))
	assert.NoError(t, svc.SetBookingPolicy(ctx, "doc-1", nil, nil, 3))
}

func TestRegisterRejectsWeakPassword(t *testing.T) {
	svc, _ := newCrudService()

	_, err := svc.Register(context.Background(), models.Doctor{
		Name:     "Dr. Mensah",
		Email:    "mensah@example.com",
		Password: "short",
	})
	assert.Error(t, err)
}
