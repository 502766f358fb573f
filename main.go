// File: clinicbook/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"clinicbook/config"
	"clinicbook/cron"
	"clinicbook/database"
	appointmentRepoPkg "clinicbook/database/repository/appointment"
	doctorRepoPkg "clinicbook/database/repository/doctor"
	"clinicbook/handlers"
	"clinicbook/middleware"
	"clinicbook/routes"
	"clinicbook/services/booking"
	"clinicbook/services/doctor"
	"clinicbook/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()
	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetCacheClient(), utils.GetAuthCacheClient()},
		database.MongoClient,
	)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	docRepo := doctorRepoPkg.NewMongoDoctorRepo()
	apptRepo := appointmentRepoPkg.NewMongoAppointmentRepo()

	// services.
	doctorService := &doctor.DefaultDoctorService{
		Repo:      docRepo,
		AuthCache: utils.GetAuthCacheClient(),
	}

	reminderScheduler := cron.NewReminderScheduler()
	bookingService := &booking.DefaultBookingService{
		DoctorRepo: docRepo,
		ApptRepo:   apptRepo,
		Cache:      utils.GetCacheClient(),
		Reminders:  reminderScheduler,
	}

	// Background reminder worker.
	cron.InitReminderWorker(apptRepo, docRepo)

	scheduleHandler := handlers.NewScheduleHandler(bookingService)
	appointmentHandler := handlers.NewAppointmentHandler(bookingService)
	doctorHandler := handlers.NewDoctorHandler(doctorService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		DoctorRepo: docRepo,

		// Schedule endpoints.
		GetDaySlotsHandler:        scheduleHandler.GetDaySlotsHandler,
		GetSelectableDatesHandler: scheduleHandler.GetSelectableDatesHandler,

		// Appointment endpoints.
		BookAppointmentHandler:         appointmentHandler.BookAppointmentHandler,
		RescheduleAppointmentHandler:   appointmentHandler.RescheduleAppointmentHandler,
		CancelAppointmentHandler:       appointmentHandler.CancelAppointmentHandler,
		SetStatusHandler:               appointmentHandler.SetStatusHandler,
		GetAppointmentHandler:          appointmentHandler.GetAppointmentHandler,
		ListDoctorAppointmentsHandler:  appointmentHandler.ListDoctorAppointmentsHandler,
		ListPatientAppointmentsHandler: appointmentHandler.ListPatientAppointmentsHandler,

		// Doctor endpoints.
		RegisterDoctorHandler:     doctorHandler.RegisterDoctorHandler,
		AuthenticateDoctorHandler: doctorHandler.AuthenticateDoctorHandler,
		RevokeDoctorTokenHandler:  doctorHandler.RevokeDoctorTokenHandler,
		GetDoctorsHandler:         doctorHandler.GetDoctorsHandler,
		GetDoctorHandler:          doctorHandler.GetDoctorHandler,
		UpdateDoctorHandler:       doctorHandler.UpdateDoctorHandler,
		SetAvailabilityHandler:    doctorHandler.SetAvailabilityHandler,
		SetBookingPolicyHandler:   doctorHandler.SetBookingPolicyHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
