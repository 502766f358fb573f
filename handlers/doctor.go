package handlers

import (
	"net/http"

	"clinicbook/models"
	"clinicbook/services/doctor"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DoctorHandler serves doctor account and schedule-setup endpoints.
type DoctorHandler struct {
	Svc doctor.DoctorService
}

func NewDoctorHandler(svc doctor.DoctorService) *DoctorHandler {
	return &DoctorHandler{Svc: svc}
}

// RegisterDoctorHandler creates a new doctor account.
func (h *DoctorHandler) RegisterDoctorHandler(c *gin.Context) {
	logger := getLogger(c)

	var doc models.Doctor
	if err := c.ShouldBindJSON(&doc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	resp, err := h.Svc.Register(c.Request.Context(), doc)
	if err != nil {
		logger.Debug("Doctor registration rejected", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// AuthenticateDoctorHandler signs a doctor in and returns a fresh token.
func (h *DoctorHandler) AuthenticateDoctorHandler(c *gin.Context) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	resp, err := h.Svc.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// RevokeDoctorTokenHandler signs the authenticated doctor out everywhere.
func (h *DoctorHandler) RevokeDoctorTokenHandler(c *gin.Context) {
	doctorID := c.GetString("doctorID")
	if err := h.Svc.RevokeToken(c.Request.Context(), doctorID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to revoke token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Signed out"})
}

// GetDoctorsHandler lists doctors for the patient-facing directory.
func (h *DoctorHandler) GetDoctorsHandler(c *gin.Context) {
	logger := getLogger(c)
	doctors, err := h.Svc.ListDoctors(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list doctors", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get doctors"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"doctors": doctors})
}

// GetDoctorHandler returns one doctor's public profile.
func (h *DoctorHandler) GetDoctorHandler(c *gin.Context) {
	doc, err := h.Svc.GetProfile(c.Request.Context(), c.Param("doctorID"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Doctor not found"})
		return
	}
	c.JSON(http.StatusOK, doc)
}

// UpdateDoctorHandler updates the authenticated doctor's profile.
func (h *DoctorHandler) UpdateDoctorHandler(c *gin.Context) {
	doctorID := c.GetString("doctorID")

	var req struct {
		Name      string `json:"name"`
		Specialty string `json:"specialty"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	if err := h.Svc.UpdateProfile(c.Request.Context(), doctorID, req.Name, req.Specialty); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Profile updated"})
}

// SetAvailabilityHandler replaces the authenticated doctor's weekly
// working-hours table.
func (h *DoctorHandler) SetAvailabilityHandler(c *gin.Context) {
	logger := getLogger(c)
	doctorID := c.GetString("doctorID")

	var req struct {
		WeeklyAvailability []models.AvailabilityEntry `json:"weeklyAvailability"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	if err := h.Svc.SetWeeklyAvailability(c.Request.Context(), doctorID, req.WeeklyAvailability); err != nil {
		logger.Debug("Availability update rejected",
			zap.String("doctorID", doctorID), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Availability updated"})
}

// SetBookingPolicyHandler updates the authenticated doctor's booking
// window and per-slot capacity.
func (h *DoctorHandler) SetBookingPolicyHandler(c *gin.Context) {
	doctorID := c.GetString("doctorID")

	var req struct {
		StartBufferDays *int `json:"startBufferDays"`
		EndBufferDays   *int `json:"endBufferDays"`
		SlotsPerPerson  int  `json:"slotsPerPerson"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	if err := h.Svc.SetBookingPolicy(c.Request.Context(), doctorID, req.StartBufferDays, req.EndBufferDays, req.SlotsPerPerson); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking policy updated"})
}
