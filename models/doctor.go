package models

import "time"

// Mode is the consultation mode a booking is made under.
type Mode string

const (
	ModeClinic Mode = "clinic"
	ModeVideo  Mode = "video"
)

// Valid reports whether m is a known consultation mode.
func (m Mode) Valid() bool {
	return m == ModeClinic || m == ModeVideo
}

// AvailabilityEntry is one row of a doctor's weekly working-hours table.
// A weekday may carry several entries (e.g. split morning/evening
// sessions); all open entries for the day are considered.
type AvailabilityEntry struct {
	Weekday             string `bson:"weekday" json:"weekday"`                         // e.g. "monday"
	Start               string `bson:"start" json:"start"`                             // 24-hour "HH:MM"
	End                 string `bson:"end" json:"end"`                                 // 24-hour "HH:MM", exclusive
	Closed              bool   `bson:"closed" json:"closed"`                           // entry disabled without deleting it
	SlotDurationMinutes int    `bson:"slotDurationMinutes" json:"slotDurationMinutes"` // step between candidate times; 30 when unset
	InClinic            bool   `bson:"inClinic" json:"inClinic"`                       // entry offers in-clinic bookings
	Video               bool   `bson:"video" json:"video"`                             // entry offers video bookings
}

// AppliesTo reports whether the entry offers the given mode.
func (e AvailabilityEntry) AppliesTo(mode Mode) bool {
	switch mode {
	case ModeClinic:
		return e.InClinic
	case ModeVideo:
		return e.Video
	}
	return false
}

// Doctor is a bookable practitioner profile.
type Doctor struct {
	ID                 string              `bson:"id" json:"id"`
	Name               string              `bson:"name" json:"name"`
	Email              string              `bson:"email" json:"email"`
	Specialty          string              `bson:"specialty,omitempty" json:"specialty,omitempty"`
	Password           string              `bson:"-" json:"password,omitempty"`
	PasswordHash       string              `bson:"passwordHash,omitempty" json:"-"`
	WeeklyAvailability []AvailabilityEntry `bson:"weeklyAvailability,omitempty" json:"weeklyAvailability,omitempty"`

	// Booking window relative to "today", both inclusive. Nil means the
	// default policy: 0 days ahead minimum, 365 days ahead maximum.
	StartBufferDays *int `bson:"startBufferDays,omitempty" json:"startBufferDays,omitempty"`
	EndBufferDays   *int `bson:"endBufferDays,omitempty" json:"endBufferDays,omitempty"`

	// SlotsPerPerson is the booking capacity per (date, time, mode).
	// Values <= 0 mean the default capacity of 1.
	SlotsPerPerson int `bson:"slotsPerPerson,omitempty" json:"slotsPerPerson,omitempty"`

	TokenHash string    `bson:"tokenHash,omitempty" json:"-"`
	IsActive  bool      `bson:"isActive" json:"isActive"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}
