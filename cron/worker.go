package cron

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"clinicbook/config"
	appointmentRepo "clinicbook/database/repository/appointment"
	doctorRepo "clinicbook/database/repository/doctor"
	"clinicbook/models"
	"clinicbook/services/tasks"
	"clinicbook/utils"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// ReminderScheduler enqueues delayed reminder tasks for upcoming
// appointments. Appointments too close to (or past) their start time
// get no reminder.
type ReminderScheduler struct {
	Client *asynq.Client
	Now    func() time.Time
}

// NewReminderScheduler constructs a scheduler backed by the reminder
// queue's Redis DB.
func NewReminderScheduler() *ReminderScheduler {
	return &ReminderScheduler{
		Client: asynq.NewClient(asynq.RedisClientOpt{
			Addr:     config.AppConfig.RedisAddr,
			Password: config.AppConfig.RedisPassword,
			DB:       config.AppConfig.RedisReminderQueueDB,
		}),
	}
}

// ScheduleReminder queues a reminder to fire ahead of the appointment
// by the configured lead time.
func (s *ReminderScheduler) ScheduleReminder(ctx context.Context, appt *models.Appointment) error {
	fireAt, err := reminderFireTime(appt)
	if err != nil {
		return err
	}

	now := time.Now()
	if s.Now != nil {
		now = s.Now()
	}
	if !fireAt.After(now) {
		return fmt.Errorf("appointment %s is too soon for a reminder", appt.ID)
	}

	payload := models.ReminderPayload{
		AppointmentID: appt.ID,
		DoctorID:      appt.DoctorID,
		PatientID:     appt.PatientID,
		Date:          appt.Date,
		Time:          appt.Time,
		Mode:          appt.Mode,
	}
	task, opts, err := tasks.NewReminderTask(payload, fireAt)
	if err != nil {
		return err
	}
	if _, err := s.Client.Enqueue(task, opts...); err != nil {
		return fmt.Errorf("failed to enqueue reminder: %w", err)
	}
	return nil
}

// reminderFireTime computes when the reminder should fire: the
// appointment's start time minus the configured lead hours.
func reminderFireTime(appt *models.Appointment) (time.Time, error) {
	day, err := utils.ParseDate(appt.Date)
	if err != nil {
		return time.Time{}, fmt.Errorf("bad appointment date: %w", err)
	}
	minute, err := utils.ParseClock(appt.Time)
	if err != nil {
		return time.Time{}, fmt.Errorf("bad appointment time: %w", err)
	}

	lead := config.AppConfig.ReminderLeadHours
	if lead <= 0 {
		lead = 24
	}
	startAt := day.Add(time.Duration(minute) * time.Minute)
	return startAt.Add(-time.Duration(lead) * time.Hour), nil
}

// InitReminderWorker runs the async worker in background.
func InitReminderWorker(apptRepo appointmentRepo.AppointmentRepository, docRepo doctorRepo.DoctorRepository) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeSendReminder, handleReminderTask(apptRepo, docRepo))

	// Start Redis health monitor
	go monitorRedisConnection()

	// Start async worker with retry logic
	go func() {
		log.Println("[ReminderWorker] Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ReminderWorker] Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ReminderWorker] Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

// handleReminderTask fires a due reminder. Appointments that were
// cancelled or rejected after the reminder was queued are dropped
// silently.
func handleReminderTask(apptRepo appointmentRepo.AppointmentRepository, docRepo doctorRepo.DoctorRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		logger := utils.GetLogger()

		var p models.ReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			logger.Error("Invalid reminder payload", zap.Error(err))
			return err
		}

		appt, err := apptRepo.GetByID(ctx, p.AppointmentID)
		if err != nil {
			// The appointment may have been deleted; nothing to remind.
			logger.Warn("Reminder for missing appointment",
				zap.String("appointmentID", p.AppointmentID), zap.Error(err))
			return nil
		}
		if !models.StatusHoldsCapacity(appt.Status) {
			return nil
		}

		doctorName := p.DoctorID
		if doc, err := docRepo.GetByID(ctx, appt.DoctorID); err == nil {
			doctorName = doc.Name
		}

		// Delivery channels (SMS, push) hang off this log hook; the
		// engine itself only tracks that the reminder fired.
		logger.Info("Appointment reminder due",
			zap.String("appointmentID", appt.ID),
			zap.String("patientID", appt.PatientID),
			zap.String("doctor", doctorName),
			zap.String("date", appt.Date),
			zap.String("time", appt.Time),
			zap.String("mode", string(appt.Mode)),
		)
		return nil
	}
}

// monitorRedisConnection pings Redis periodically to detect failures at runtime.
func monitorRedisConnection() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})

	ctx := context.Background()

	for {
		if err := client.Ping(ctx).Err(); err != nil && !errors.Is(err, redis.Nil) {
			log.Printf("[ReminderWorker] Redis connection lost: %v", err)
		}
		time.Sleep(10 * time.Second)
	}
}
