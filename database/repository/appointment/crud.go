// File: database/repository/appointment/crud.go
package appointmentRepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"clinicbook/models"
)

const opTimeout = 5 * time.Second

func (r *mongoAppointmentRepo) Create(ctx context.Context, appt *models.Appointment) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	if appt.ID == "" {
		appt.ID = uuid.New().String()
	}
	now := time.Now()
	appt.CreatedAt = now
	appt.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, appt)
	return err
}

func (r *mongoAppointmentRepo) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var appt models.Appointment
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&appt); err != nil {
		return nil, err
	}
	return &appt, nil
}

func (r *mongoAppointmentRepo) UpdateSlot(ctx context.Context, id, date, clock string, mode models.Mode) error {
	return r.updateByID(ctx, id, bson.M{
		"date":      date,
		"time":      clock,
		"mode":      mode,
		"updatedAt": time.Now(),
	})
}

func (r *mongoAppointmentRepo) UpdateStatus(ctx context.Context, id, status, note string) error {
	set := bson.M{"status": status, "updatedAt": time.Now()}
	if note != "" {
		set["cancelNote"] = note
	}
	return r.updateByID(ctx, id, set)
}

func (r *mongoAppointmentRepo) MarkReminderSet(ctx context.Context, id string) error {
	return r.updateByID(ctx, id, bson.M{"reminderSet": true, "updatedAt": time.Now()})
}

func (r *mongoAppointmentRepo) updateByID(ctx context.Context, id string, set bson.M) error {
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
