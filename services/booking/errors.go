package booking

import "errors"

// Errors surfaced to HTTP handlers.
var (
	ErrDoctorNotFound      = errors.New("doctor not found")
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrWrongPatient        = errors.New("patient is not authorized to access this appointment")
	ErrSlotUnavailable     = errors.New("the requested slot is not available")
	ErrAlreadyCancelled    = errors.New("appointment is already cancelled")
	ErrUnknownStatus       = errors.New("unknown appointment status")
)
