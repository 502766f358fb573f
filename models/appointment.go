package models

import "time"

// Appointment statuses. Cancelled and rejected appointments release
// their slot capacity; every other status holds it.
const (
	StatusPending   = "pending"
	StatusApproved  = "approved"
	StatusDone      = "done"
	StatusCancelled = "cancelled"
	StatusRejected  = "rejected"
)

// StatusHoldsCapacity reports whether an appointment in the given
// status counts against its slot's capacity.
func StatusHoldsCapacity(status string) bool {
	return status != StatusCancelled && status != StatusRejected
}

// Appointment is a booked (or previously booked) visit.
//
// Date and Time are stored canonically as "YYYY-MM-DD" and 24-hour
// "HH:MM", but records imported from older systems may still carry
// "DD-MM-YYYY" dates or "h:mm AM/PM" times; readers normalize before
// comparing, never by string equality.
type Appointment struct {
	ID          string    `bson:"id" json:"id"`
	DoctorID    string    `bson:"doctorId" json:"doctorId"`
	PatientID   string    `bson:"patientId" json:"patientId"`
	PatientName string    `bson:"patientName,omitempty" json:"patientName,omitempty"`
	Date        string    `bson:"date" json:"date"`
	Time        string    `bson:"time" json:"time"`
	Mode        Mode      `bson:"mode" json:"mode"`
	Status      string    `bson:"status" json:"status"`
	Reason      string    `bson:"reason,omitempty" json:"reason,omitempty"`
	CancelNote  string    `bson:"cancelNote,omitempty" json:"cancelNote,omitempty"`
	ReminderSet bool      `bson:"reminderSet,omitempty" json:"reminderSet,omitempty"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt"`
}

// BookingRequest is the payload for creating a new appointment.
type BookingRequest struct {
	DoctorID    string `json:"doctorId" binding:"required"`
	PatientID   string `json:"patientId" binding:"required"`
	PatientName string `json:"patientName,omitempty"`
	Date        string `json:"date" binding:"required"`
	Time        string `json:"time" binding:"required"`
	Mode        Mode   `json:"mode" binding:"required"`
	Reason      string `json:"reason,omitempty"`
}

// ReminderPayload is the queued task body for an appointment reminder.
type ReminderPayload struct {
	AppointmentID string `json:"appointmentId"`
	DoctorID      string `json:"doctorId"`
	PatientID     string `json:"patientId"`
	Date          string `json:"date"`
	Time          string `json:"time"`
	Mode          Mode   `json:"mode"`
}

// RescheduleRequest moves an existing appointment to a new slot. The
// appointment's own capacity is excluded while validating, so keeping
// the current slot is always allowed.
type RescheduleRequest struct {
	PatientID string `json:"patientId" binding:"required"`
	Date      string `json:"date" binding:"required"`
	Time      string `json:"time" binding:"required"`
	Mode      Mode   `json:"mode" binding:"required"`
}
