// File: database/repository/appointment/queries.go
package appointmentRepo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"clinicbook/models"
	"clinicbook/utils"
)

func (r *mongoAppointmentRepo) ListByDoctor(ctx context.Context, doctorID string) ([]models.Appointment, error) {
	return r.find(ctx, bson.M{"doctorId": doctorID})
}

// ListByDoctorAndDate fetches the appointment snapshot for one doctor
// and calendar date. Records written by older systems store the date
// as "DD-MM-YYYY", so both textual forms of the same day are matched;
// minute-level normalization stays with the scheduling engine.
func (r *mongoAppointmentRepo) ListByDoctorAndDate(ctx context.Context, doctorID string, date time.Time) ([]models.Appointment, error) {
	day := utils.DateOnly(date)
	return r.find(ctx, bson.M{
		"doctorId": doctorID,
		"date": bson.M{"$in": []string{
			day.Format("2006-01-02"),
			day.Format("02-01-2006"),
		}},
	})
}

func (r *mongoAppointmentRepo) ListByPatient(ctx context.Context, patientID string) ([]models.Appointment, error) {
	return r.find(ctx, bson.M{"patientId": patientID})
}

func (r *mongoAppointmentRepo) find(ctx context.Context, filter bson.M) ([]models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "time", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var appts []models.Appointment
	if err := cursor.All(ctx, &appts); err != nil {
		return nil, err
	}
	return appts, nil
}
