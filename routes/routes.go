package routes

import (
	"net/http"
	"time"

	"clinicbook/handlers"
	"clinicbook/middleware"
	"clinicbook/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterScheduleRoutes registers the patient-facing slot-picker
// endpoints. These are public: patients browse availability before any
// account exists.
func RegisterScheduleRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/schedule")
	{
		api.GET("/:doctorID/slots", hb.GetDaySlotsHandler)
		api.GET("/:doctorID/selectable-dates", hb.GetSelectableDatesHandler)
	}
}

// RegisterAppointmentRoutes registers the booking lifecycle endpoints.
func RegisterAppointmentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/appointments")
	{
		// Patient-facing endpoints.
		api.POST("", hb.BookAppointmentHandler)
		api.GET("/:id", hb.GetAppointmentHandler)
		api.PUT("/:id/reschedule", hb.RescheduleAppointmentHandler)
		api.POST("/:id/cancel", hb.CancelAppointmentHandler)
		api.GET("/patient/:patientID", hb.ListPatientAppointmentsHandler)

		// Doctor-only endpoints.
		protected := api.Group("")
		protected.Use(middleware.JWTAuthDoctorMiddleware(hb.DoctorRepo))
		protected.PUT("/:id/status", hb.SetStatusHandler)
		protected.GET("", hb.ListDoctorAppointmentsHandler)
	}
}

// RegisterDoctorRoutes registers doctor account management endpoints.
func RegisterDoctorRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/doctors")
	{
		api.POST("/register", hb.RegisterDoctorHandler)
		api.POST("/login", hb.AuthenticateDoctorHandler)
		api.GET("", hb.GetDoctorsHandler)
		api.GET("/:doctorID", hb.GetDoctorHandler)

		// Endpoints that modify doctor data require authentication.
		protected := api.Group("")
		protected.Use(middleware.JWTAuthDoctorMiddleware(hb.DoctorRepo))
		protected.PATCH("/me", hb.UpdateDoctorHandler)
		protected.PUT("/me/availability", hb.SetAvailabilityHandler)
		protected.PUT("/me/booking-policy", hb.SetBookingPolicyHandler)
		protected.DELETE("/me/revoke", hb.RevokeDoctorTokenHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Hi, I'm Clinicbook",
			"deps":    utils.GetHealthStatus(),
		})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterScheduleRoutes(r, hb)
	RegisterAppointmentRoutes(r, hb)
	RegisterDoctorRoutes(r, hb)
	RegisterHealthRoute(r)
}
