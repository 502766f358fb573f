package booking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"clinicbook/config"
	"clinicbook/models"
	"clinicbook/services/schedule"
	"clinicbook/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// GetDaySlots computes the bookable slot list for one doctor, date and
// mode. Responses are cached briefly; booking paths always recompute
// from a fresh snapshot, so the cache can only ever serve display.
func (s *DefaultBookingService) GetDaySlots(ctx context.Context, doctorID, date string, mode models.Mode, excludeAppointmentID string) (*models.DaySlots, error) {
	if doctorID == "" {
		return nil, &schedule.InvalidInputError{Field: "doctorId", Message: "doctor is required"}
	}
	day, err := utils.ParseDate(date)
	if err != nil {
		return nil, &schedule.InvalidInputError{Field: "date", Message: err.Error()}
	}

	cacheKey := fmt.Sprintf("slots:%s:%s:%s:%s", doctorID, utils.FormatDate(day), mode, excludeAppointmentID)
	if s.Cache != nil {
		if cached, err := s.Cache.Get(ctx, cacheKey).Result(); err == nil {
			var out models.DaySlots
			if json.Unmarshal([]byte(cached), &out) == nil {
				return &out, nil
			}
		}
	}

	out, err := s.computeDaySlots(ctx, doctorID, day, mode, excludeAppointmentID)
	if err != nil {
		return nil, err
	}

	if s.Cache != nil {
		if data, err := json.Marshal(out); err == nil {
			ttl := time.Duration(config.AppConfig.SlotCacheTTLSeconds) * time.Second
			if ttl <= 0 {
				ttl = 30 * time.Second
			}
			if err := s.Cache.Set(ctx, cacheKey, data, ttl).Err(); err != nil {
				utils.GetLogger().Warn("failed to cache slot response", zap.Error(err))
			}
		}
	}

	return out, nil
}

func (s *DefaultBookingService) computeDaySlots(ctx context.Context, doctorID string, day time.Time, mode models.Mode, excludeAppointmentID string) (*models.DaySlots, error) {
	doctor, err := s.DoctorRepo.GetByID(ctx, doctorID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrDoctorNotFound
		}
		return nil, err
	}

	appts, err := s.ApptRepo.ListByDoctorAndDate(ctx, doctorID, day)
	if err != nil {
		return nil, err
	}

	slots, err := schedule.GetAvailableSlots(doctor, day, mode, appts, s.now(), excludeAppointmentID)
	if err != nil {
		return nil, err
	}

	return &models.DaySlots{
		DoctorID: doctorID,
		Date:     utils.FormatDate(day),
		Mode:     mode,
		Slots:    slots,
	}, nil
}

// GetSelectableDates evaluates day selectability over a range starting
// at "from", for calendar-picker enablement.
func (s *DefaultBookingService) GetSelectableDates(ctx context.Context, doctorID string, mode models.Mode, from string, days int) ([]models.SelectableDate, error) {
	if doctorID == "" {
		return nil, &schedule.InvalidInputError{Field: "doctorId", Message: "doctor is required"}
	}

	now := s.now()
	start := utils.DateOnly(now)
	if from != "" {
		parsed, err := utils.ParseDate(from)
		if err != nil {
			return nil, &schedule.InvalidInputError{Field: "from", Message: err.Error()}
		}
		start = parsed
	}
	if days <= 0 {
		days = 30
	}
	if days > 90 {
		days = 90
	}

	doctor, err := s.DoctorRepo.GetByID(ctx, doctorID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrDoctorNotFound
		}
		return nil, err
	}

	appts, err := s.ApptRepo.ListByDoctor(ctx, doctorID)
	if err != nil {
		return nil, err
	}

	out := make([]models.SelectableDate, 0, days)
	for i := 0; i < days; i++ {
		day := start.AddDate(0, 0, i)
		selectable, err := schedule.IsDateSelectable(doctor, day, mode, appts, now)
		if err != nil {
			return nil, err
		}
		out = append(out, models.SelectableDate{
			Date:       utils.FormatDate(day),
			Selectable: selectable,
		})
	}
	return out, nil
}

// BookAppointment validates the requested slot against a snapshot
// fetched at this moment and persists the booking. A slot shown as
// available earlier can still be lost to a concurrent booking; the
// recomputation here is the last line of defense before insert.
func (s *DefaultBookingService) BookAppointment(ctx context.Context, req models.BookingRequest) (*models.Appointment, error) {
	day, minute, err := s.normalizeSlotRequest(req.Date, req.Time, req.Mode)
	if err != nil {
		return nil, err
	}

	if err := s.validateSlot(ctx, req.DoctorID, day, minute, req.Mode, ""); err != nil {
		return nil, err
	}

	appt := &models.Appointment{
		DoctorID:    req.DoctorID,
		PatientID:   req.PatientID,
		PatientName: req.PatientName,
		Date:        utils.FormatDate(day),
		Time:        utils.FormatClock(minute),
		Mode:        req.Mode,
		Status:      models.StatusPending,
		Reason:      req.Reason,
	}
	if err := s.ApptRepo.Create(ctx, appt); err != nil {
		return nil, err
	}

	s.invalidateSlotCache(ctx, req.DoctorID, appt.Date)
	s.scheduleReminder(ctx, appt)

	return appt, nil
}

// RescheduleAppointment moves an existing appointment. Its own
// capacity is excluded during validation so the patient can keep or
// move within their current slot even when it is otherwise full.
func (s *DefaultBookingService) RescheduleAppointment(ctx context.Context, appointmentID string, req models.RescheduleRequest) (*models.Appointment, error) {
	appt, err := s.getOwned(ctx, appointmentID, req.PatientID)
	if err != nil {
		return nil, err
	}
	if appt.Status == models.StatusCancelled || appt.Status == models.StatusRejected {
		return nil, ErrAppointmentNotFound
	}

	day, minute, err := s.normalizeSlotRequest(req.Date, req.Time, req.Mode)
	if err != nil {
		return nil, err
	}

	if err := s.validateSlot(ctx, appt.DoctorID, day, minute, req.Mode, appt.ID); err != nil {
		return nil, err
	}

	oldDate := appt.Date
	appt.Date = utils.FormatDate(day)
	appt.Time = utils.FormatClock(minute)
	appt.Mode = req.Mode
	if err := s.ApptRepo.UpdateSlot(ctx, appt.ID, appt.Date, appt.Time, appt.Mode); err != nil {
		return nil, err
	}

	s.invalidateSlotCache(ctx, appt.DoctorID, oldDate)
	s.invalidateSlotCache(ctx, appt.DoctorID, appt.Date)

	return appt, nil
}

// CancelAppointment cancels an appointment on the patient's behalf and
// releases its slot capacity.
func (s *DefaultBookingService) CancelAppointment(ctx context.Context, appointmentID, patientID, reason string) error {
	appt, err := s.getOwned(ctx, appointmentID, patientID)
	if err != nil {
		return err
	}
	if appt.Status == models.StatusCancelled {
		return ErrAlreadyCancelled
	}

	if err := s.ApptRepo.UpdateStatus(ctx, appt.ID, models.StatusCancelled, reason); err != nil {
		return err
	}
	s.invalidateSlotCache(ctx, appt.DoctorID, appt.Date)
	return nil
}

// SetStatus moves an appointment through its lifecycle (approve,
// complete, reject). Status changes can release capacity, so the slot
// cache is invalidated.
func (s *DefaultBookingService) SetStatus(ctx context.Context, appointmentID, status string) error {
	switch status {
	case models.StatusPending, models.StatusApproved, models.StatusDone, models.StatusCancelled, models.StatusRejected:
	default:
		return ErrUnknownStatus
	}

	appt, err := s.ApptRepo.GetByID(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrAppointmentNotFound
		}
		return err
	}

	if err := s.ApptRepo.UpdateStatus(ctx, appointmentID, status, ""); err != nil {
		return err
	}
	s.invalidateSlotCache(ctx, appt.DoctorID, appt.Date)
	return nil
}

func (s *DefaultBookingService) GetAppointment(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	appt, err := s.ApptRepo.GetByID(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrAppointmentNotFound
		}
		return nil, err
	}
	return appt, nil
}

func (s *DefaultBookingService) ListDoctorAppointments(ctx context.Context, doctorID, date string) ([]models.Appointment, error) {
	if date == "" {
		return s.ApptRepo.ListByDoctor(ctx, doctorID)
	}
	day, err := utils.ParseDate(date)
	if err != nil {
		return nil, &schedule.InvalidInputError{Field: "date", Message: err.Error()}
	}
	return s.ApptRepo.ListByDoctorAndDate(ctx, doctorID, day)
}

func (s *DefaultBookingService) ListPatientAppointments(ctx context.Context, patientID string) ([]models.Appointment, error) {
	return s.ApptRepo.ListByPatient(ctx, patientID)
}

// normalizeSlotRequest parses the caller-facing textual date and time
// once, at the boundary.
func (s *DefaultBookingService) normalizeSlotRequest(date, clock string, mode models.Mode) (time.Time, int, error) {
	if !mode.Valid() {
		return time.Time{}, 0, &schedule.InvalidInputError{Field: "mode", Message: "mode must be clinic or video"}
	}
	day, err := utils.ParseDate(date)
	if err != nil {
		return time.Time{}, 0, &schedule.InvalidInputError{Field: "date", Message: err.Error()}
	}
	minute, err := utils.ParseClock(clock)
	if err != nil {
		return time.Time{}, 0, &schedule.InvalidInputError{Field: "time", Message: err.Error()}
	}
	return day, minute, nil
}

// validateSlot recomputes availability from a fresh snapshot and
// checks the requested minute is an open candidate.
func (s *DefaultBookingService) validateSlot(ctx context.Context, doctorID string, day time.Time, minute int, mode models.Mode, excludeAppointmentID string) error {
	out, err := s.computeDaySlots(ctx, doctorID, day, mode, excludeAppointmentID)
	if err != nil {
		return err
	}
	for _, slot := range out.Slots {
		if slot.Start == minute {
			if !slot.Available {
				return ErrSlotUnavailable
			}
			return nil
		}
	}
	return ErrSlotUnavailable
}

func (s *DefaultBookingService) getOwned(ctx context.Context, appointmentID, patientID string) (*models.Appointment, error) {
	appt, err := s.ApptRepo.GetByID(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrAppointmentNotFound
		}
		return nil, err
	}
	if patientID == "" || appt.PatientID != patientID {
		return nil, ErrWrongPatient
	}
	return appt, nil
}

// invalidateSlotCache drops every cached slot response for the given
// doctor and date, across modes and exclusion variants.
func (s *DefaultBookingService) invalidateSlotCache(ctx context.Context, doctorID, date string) {
	if s.Cache == nil {
		return
	}
	pattern := fmt.Sprintf("slots:%s:%s:*", doctorID, date)
	keys, err := s.Cache.Keys(ctx, pattern).Result()
	if err != nil {
		utils.GetLogger().Warn("slot cache invalidation failed", zap.Error(err))
		return
	}
	if len(keys) > 0 {
		s.Cache.Del(ctx, keys...)
	}
}

func (s *DefaultBookingService) scheduleReminder(ctx context.Context, appt *models.Appointment) {
	if s.Reminders == nil {
		return
	}
	if err := s.Reminders.ScheduleReminder(ctx, appt); err != nil {
		// Reminders are best-effort; the booking itself stands.
		utils.GetLogger().Warn("failed to schedule reminder",
			zap.String("appointmentID", appt.ID), zap.Error(err))
		return
	}
	if err := s.ApptRepo.MarkReminderSet(ctx, appt.ID); err != nil {
		utils.GetLogger().Warn("failed to flag reminder on appointment",
			zap.String("appointmentID", appt.ID), zap.Error(err))
	}
}
