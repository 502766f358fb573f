// File: database/repository/doctor/crud.go
package doctorRepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"clinicbook/models"
)

const opTimeout = 5 * time.Second

func (r *mongoDoctorRepo) Create(ctx context.Context, doctor *models.Doctor) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	if doctor.ID == "" {
		doctor.ID = uuid.New().String()
	}
	now := time.Now()
	doctor.CreatedAt = now
	doctor.UpdatedAt = now
	doctor.IsActive = true

	_, err := r.coll.InsertOne(ctx, doctor)
	return err
}

func (r *mongoDoctorRepo) GetByID(ctx context.Context, id string) (*models.Doctor, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var doctor models.Doctor
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&doctor); err != nil {
		return nil, err
	}
	return &doctor, nil
}

func (r *mongoDoctorRepo) GetByEmail(ctx context.Context, email string) (*models.Doctor, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var doctor models.Doctor
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&doctor); err != nil {
		return nil, err
	}
	return &doctor, nil
}

func (r *mongoDoctorRepo) List(ctx context.Context) ([]models.Doctor, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"isActive": true})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var doctors []models.Doctor
	if err := cursor.All(ctx, &doctors); err != nil {
		return nil, err
	}
	return doctors, nil
}

func (r *mongoDoctorRepo) UpdateProfile(ctx context.Context, id string, name, specialty string) error {
	update := bson.M{"updatedAt": time.Now()}
	if name != "" {
		update["name"] = name
	}
	if specialty != "" {
		update["specialty"] = specialty
	}
	return r.updateByID(ctx, id, update)
}

func (r *mongoDoctorRepo) SetWeeklyAvailability(ctx context.Context, id string, entries []models.AvailabilityEntry) error {
	return r.updateByID(ctx, id, bson.M{
		"weeklyAvailability": entries,
		"updatedAt":          time.Now(),
	})
}

func (r *mongoDoctorRepo) SetBookingPolicy(ctx context.Context, id string, startBufferDays, endBufferDays *int, slotsPerPerson int) error {
	return r.updateByID(ctx, id, bson.M{
		"startBufferDays": startBufferDays,
		"endBufferDays":   endBufferDays,
		"slotsPerPerson":  slotsPerPerson,
		"updatedAt":       time.Now(),
	})
}

func (r *mongoDoctorRepo) SetTokenHash(ctx context.Context, id, tokenHash string) error {
	return r.updateByID(ctx, id, bson.M{"tokenHash": tokenHash, "updatedAt": time.Now()})
}

func (r *mongoDoctorRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoDoctorRepo) updateByID(ctx context.Context, id string, set bson.M) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
