package handlers

import (
	"net/http"

	"clinicbook/models"
	"clinicbook/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AppointmentHandler serves booking lifecycle endpoints.
type AppointmentHandler struct {
	Svc booking.BookingService
}

func NewAppointmentHandler(svc booking.BookingService) *AppointmentHandler {
	return &AppointmentHandler{Svc: svc}
}

// BookAppointmentHandler creates a new appointment in a validated slot.
func (h *AppointmentHandler) BookAppointmentHandler(c *gin.Context) {
	logger := getLogger(c)

	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	appt, err := h.Svc.BookAppointment(c.Request.Context(), req)
	if err != nil {
		logger.Debug("Booking rejected",
			zap.String("doctorID", req.DoctorID), zap.String("date", req.Date), zap.Error(err))
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, appt)
}

// RescheduleAppointmentHandler moves an appointment to another slot.
func (h *AppointmentHandler) RescheduleAppointmentHandler(c *gin.Context) {
	logger := getLogger(c)
	appointmentID := c.Param("id")

	var req models.RescheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	appt, err := h.Svc.RescheduleAppointment(c.Request.Context(), appointmentID, req)
	if err != nil {
		logger.Debug("Reschedule rejected",
			zap.String("appointmentID", appointmentID), zap.Error(err))
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, appt)
}

// CancelAppointmentHandler cancels an appointment on the patient's behalf.
func (h *AppointmentHandler) CancelAppointmentHandler(c *gin.Context) {
	appointmentID := c.Param("id")

	var req struct {
		PatientID string `json:"patientId"`
		Reason    string `json:"reason"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	if err := h.Svc.CancelAppointment(c.Request.Context(), appointmentID, req.PatientID, req.Reason); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": models.StatusCancelled})
}

// SetStatusHandler lets the authenticated doctor move an appointment
// through its lifecycle (approve, complete, reject).
func (h *AppointmentHandler) SetStatusHandler(c *gin.Context) {
	appointmentID := c.Param("id")

	var req struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	if err := h.Svc.SetStatus(c.Request.Context(), appointmentID, req.Status); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": req.Status})
}

// GetAppointmentHandler returns a single appointment.
func (h *AppointmentHandler) GetAppointmentHandler(c *gin.Context) {
	appt, err := h.Svc.GetAppointment(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, appt)
}

// ListDoctorAppointmentsHandler lists the authenticated doctor's
// appointments, optionally filtered to a single date.
func (h *AppointmentHandler) ListDoctorAppointmentsHandler(c *gin.Context) {
	doctorID := c.GetString("doctorID")
	appts, err := h.Svc.ListDoctorAppointments(c.Request.Context(), doctorID, c.Query("date"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointments": appts})
}

// ListPatientAppointmentsHandler lists a patient's appointments.
func (h *AppointmentHandler) ListPatientAppointmentsHandler(c *gin.Context) {
	appts, err := h.Svc.ListPatientAppointments(c.Request.Context(), c.Param("patientID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointments": appts})
}
