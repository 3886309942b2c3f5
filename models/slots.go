package models

import "time"

// Interval is a half-open time range [Start, End).
type Interval struct {
	Start         time.Time `json:"start"`
	End           time.Time `json:"end"`
	Label         string    `json:"label,omitempty"`         // e.g. "Lunch" for breaks
	AppointmentID string    `json:"appointmentId,omitempty"` // set for booked intervals
}

// DaySchedule is a read-only snapshot of one staff member's day.
type DaySchedule struct {
	StaffID   string     `json:"staffId"`
	Date      string     `json:"date"` // "2006-01-02"
	WorkStart time.Time  `json:"workStart"`
	WorkEnd   time.Time  `json:"workEnd"`
	Breaks    []Interval `json:"breaks"`
	Booked    []Interval `json:"booked"`
}

// CandidateSlot is a possible appointment window for the requested services.
type CandidateSlot struct {
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	Available bool      `json:"available"`
}

// SlotGroup collects slots that start within the same hour.
type SlotGroup struct {
	Hour  string          `json:"hour"` // "HH:00"
	Slots []CandidateSlot `json:"slots"`
}

// AvailabilityResult is returned to clients picking a time.
type AvailabilityResult struct {
	StaffID       string          `json:"staffId"`
	Date          string          `json:"date"`
	TotalDuration int             `json:"totalDuration"`
	TotalPrice    int64           `json:"totalPrice"`
	Slots         []CandidateSlot `json:"slots"`
	Groups        []SlotGroup     `json:"groups"`
	Labels        []string        `json:"labels"`
}
