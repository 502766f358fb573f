// File: clinicbook/handlers/bundle.go
package handlers

import (
	doctorRepoPkg "clinicbook/database/repository/doctor"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	DoctorRepo doctorRepoPkg.DoctorRepository

	// Schedule endpoints
	GetDaySlotsHandler        gin.HandlerFunc
	GetSelectableDatesHandler gin.HandlerFunc

	// Appointment endpoints
	BookAppointmentHandler         gin.HandlerFunc
	RescheduleAppointmentHandler   gin.HandlerFunc
	CancelAppointmentHandler       gin.HandlerFunc
	SetStatusHandler               gin.HandlerFunc
	GetAppointmentHandler          gin.HandlerFunc
	ListDoctorAppointmentsHandler  gin.HandlerFunc
	ListPatientAppointmentsHandler gin.HandlerFunc

	// Doctor endpoints
	RegisterDoctorHandler     gin.HandlerFunc
	AuthenticateDoctorHandler gin.HandlerFunc
	RevokeDoctorTokenHandler  gin.HandlerFunc
	GetDoctorsHandler         gin.HandlerFunc
	GetDoctorHandler          gin.HandlerFunc
	UpdateDoctorHandler       gin.HandlerFunc
	SetAvailabilityHandler    gin.HandlerFunc
	SetBookingPolicyHandler   gin.HandlerFunc
}
