package doctor

import (
	"context"
	"fmt"
	"strings"

	"clinicbook/models"
	"clinicbook/utils"

	"go.mongodb.org/mongo-driver/mongo"
)

var weekdays = map[string]bool{
	"monday": true, "tuesday": true, "wednesday": true,
	"thursday": true, "friday": true, "saturday": true, "sunday": true,
}

func (s *DefaultDoctorService) GetProfile(ctx context.Context, doctorID string) (*models.Doctor, error) {
	doc, err := s.Repo.GetByID(ctx, doctorID)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("doctor not found")
		}
		return nil, err
	}
	return doc, nil
}

func (s *DefaultDoctorService) ListDoctors(ctx context.Context) ([]models.Doctor, error) {
	return s.Repo.List(ctx)
}

func (s *DefaultDoctorService) UpdateProfile(ctx context.Context, doctorID, name, specialty string) error {
	if name == "" && specialty == "" {
		return fmt.Errorf("nothing to update")
	}
	if err := s.Repo.UpdateProfile(ctx, doctorID, name, specialty); err != nil {
		if err == mongo.ErrNoDocuments {
			return fmt.Errorf("doctor not found")
		}
		return err
	}
	return nil
}

// SetWeeklyAvailability validates and stores the doctor's working-hours
// table. Entries are rejected up front here; the slot engine still
// tolerates bad stored rows, but there is no reason to accept them.
func (s *DefaultDoctorService) SetWeeklyAvailability(ctx context.Context, doctorID string, entries []models.AvailabilityEntry) error {
	normalized := make([]models.AvailabilityEntry, 0, len(entries))
	for i, e := range entries {
		e.Weekday = strings.ToLower(strings.TrimSpace(e.Weekday))
		if !weekdays[e.Weekday] {
			return fmt.Errorf("entry %d: unknown weekday %q", i, e.Weekday)
		}
		if e.Closed {
			normalized = append(normalized, e)
			continue
		}
		start, err := utils.ParseClock(e.Start)
		if err != nil {
			return fmt.Errorf("entry %d: bad start time: %w", i, err)
		}
		end, err := utils.ParseClock(e.End)
		if err != nil {
			return fmt.Errorf("entry %d: bad end time: %w", i, err)
		}
		if start >= end {
			return fmt.Errorf("entry %d: start must be before end", i)
		}
		if e.SlotDurationMinutes < 0 {
			return fmt.Errorf("entry %d: slot duration cannot be negative", i)
		}
		e.Start = utils.FormatClock(start)
		e.End = utils.FormatClock(end)
		normalized = append(normalized, e)
	}

	if err := s.Repo.SetWeeklyAvailability(ctx, doctorID, normalized); err != nil {
		if err == mongo.ErrNoDocuments {
			return fmt.Errorf("doctor not found")
		}
		return err
	}
	return nil
}

// SetBookingPolicy stores the booking window and per-slot capacity.
func (s *DefaultDoctorService) SetBookingPolicy(ctx context.Context, doctorID string, startBufferDays, endBufferDays *int, slotsPerPerson int) error {
	if startBufferDays != nil && *startBufferDays < 0 {
		return fmt.Errorf("startBufferDays cannot be negative")
	}
	if endBufferDays != nil && *endBufferDays < 0 {
		return fmt.Errorf("endBufferDays cannot be negative")
	}
	if startBufferDays != nil && endBufferDays != nil && *startBufferDays > *endBufferDays {
		return fmt.Errorf("startBufferDays cannot exceed endBufferDays")
	}
	if slotsPerPerson < 0 {
		return fmt.Errorf("slotsPerPerson cannot be negative")
	}

	if err := s.Repo.SetBookingPolicy(ctx, doctorID, startBufferDays, endBufferDays, slotsPerPerson); err != nil {
		if err == mongo.ErrNoDocuments {
			return fmt.Errorf("doctor not found")
		}
		return err
	}
	return nil
}
