package handlers

import (
	"net/http"
	"strconv"

	"clinicbook/models"
	"clinicbook/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ScheduleHandler serves the slot-picker endpoints.
type ScheduleHandler struct {
	Svc booking.BookingService
}

func NewScheduleHandler(svc booking.BookingService) *ScheduleHandler {
	return &ScheduleHandler{Svc: svc}
}

// GetDaySlotsHandler returns every candidate slot for a doctor, date
// and mode, including fully booked ones, so the picker can render
// unavailable times greyed out.
func (h *ScheduleHandler) GetDaySlotsHandler(c *gin.Context) {
	logger := getLogger(c)

	doctorID := c.Param("doctorID")
	date := c.Query("date")
	mode := models.Mode(c.DefaultQuery("mode", string(models.ModeClinic)))
	excludeID := c.Query("excludeAppointmentId")

	out, err := h.Svc.GetDaySlots(c.Request.Context(), doctorID, date, mode, excludeID)
	if err != nil {
		logger.Debug("Slot listing rejected",
			zap.String("doctorID", doctorID), zap.String("date", date), zap.Error(err))
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// GetSelectableDatesHandler reports which upcoming dates have at least
// one open slot, for calendar-picker enablement.
func (h *ScheduleHandler) GetSelectableDatesHandler(c *gin.Context) {
	logger := getLogger(c)

	doctorID := c.Param("doctorID")
	mode := models.Mode(c.DefaultQuery("mode", string(models.ModeClinic)))
	from := c.Query("from")

	days := 0
	if raw := c.Query("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "days must be a number"})
			return
		}
		days = parsed
	}

	dates, err := h.Svc.GetSelectableDates(c.Request.Context(), doctorID, mode, from, days)
	if err != nil {
		logger.Debug("Selectable-date listing rejected",
			zap.String("doctorID", doctorID), zap.Error(err))
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"doctorId": doctorID, "mode": mode, "dates": dates})
}
