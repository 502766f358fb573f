package handlers

import (
	"errors"
	"net/http"

	"clinicbook/services/booking"
	"clinicbook/services/schedule"
	"clinicbook/utils"

	"github.com/gin-gonic/gin"
)

// respondError translates service errors into HTTP responses. Invalid
// input is the caller's fault and carries the offending field; domain
// conflicts map to 404/409; anything else is a 500 with a generic body.
func respondError(c *gin.Context, err error) {
	var invalid *schedule.InvalidInputError
	switch {
	case errors.As(err, &invalid):
		c.JSON(http.StatusBadRequest, gin.H{"error": invalid.Message, "field": invalid.Field})
	case errors.Is(err, booking.ErrDoctorNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Doctor not found"})
	case errors.Is(err, booking.ErrAppointmentNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Appointment not found"})
	case errors.Is(err, booking.ErrWrongPatient):
		c.JSON(http.StatusForbidden, gin.H{"error": "Appointment does not belong to this patient"})
	case errors.Is(err, booking.ErrSlotUnavailable):
		c.JSON(http.StatusConflict, gin.H{"error": "The requested slot is no longer available"})
	case errors.Is(err, booking.ErrAlreadyCancelled):
		c.JSON(http.StatusConflict, gin.H{"error": "Appointment is already cancelled"})
	case errors.Is(err, booking.ErrUnknownStatus):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown appointment status"})
	default:
		utils.JSONError(c, http.StatusInternalServerError, "Something went wrong, please try again", err.Error())
	}
}
