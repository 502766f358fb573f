package models

// Slot is one bookable time slot computed for a (doctor, date, mode).
// Start is minutes from midnight (e.g. 540 for 9:00 AM); Label is the
// canonical 24-hour "HH:MM" form. Fully-booked slots are still
// returned, marked unavailable, so callers can render them disabled
// instead of silently hiding the option.
type Slot struct {
	Start     int    `json:"start"`
	Label     string `json:"label"`
	Mode      Mode   `json:"mode"`
	Booked    int    `json:"bookedCount"`
	Capacity  int    `json:"maxCapacity"`
	Remaining int    `json:"remainingCapacity"`
	Available bool   `json:"isAvailable"`
}

// DaySlots is the slot list for one calendar date, as served over HTTP.
type DaySlots struct {
	DoctorID string `json:"doctorId"`
	Date     string `json:"date"` // "YYYY-MM-DD"
	Mode     Mode   `json:"mode"`
	Slots    []Slot `json:"slots"`
}

// SelectableDate reports whether a calendar day can be picked at all,
// used to gray out days in a date picker.
type SelectableDate struct {
	Date       string `json:"date"`
	Selectable bool   `json:"selectable"`
}
