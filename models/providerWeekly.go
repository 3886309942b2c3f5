package models

import "time"

// ClockRange is a wall-clock range in "HH:MM" form.
type ClockRange struct {
	Start string `bson:"start" json:"start" binding:"required,clock"`
	End   string `bson:"end" json:"end" binding:"required,clock"`
	Label string `bson:"label,omitempty" json:"label,omitempty"`
}

// WorkingDay is the regular shift for one weekday.
type WorkingDay struct {
	Start  string       `bson:"start" json:"start" binding:"required,clock"`
	End    string       `bson:"end" json:"end" binding:"required,clock"`
	Breaks []ClockRange `bson:"breaks,omitempty" json:"breaks,omitempty" binding:"dive"`
}

// ScheduleOverride replaces the weekly template on a specific date.
type ScheduleOverride struct {
	Date   string       `bson:"date" json:"date" binding:"required,isodate"`
	Closed bool         `bson:"closed" json:"closed"`
	Start  string       `bson:"start,omitempty" json:"start,omitempty"`
	End    string       `bson:"end,omitempty" json:"end,omitempty"`
	Breaks []ClockRange `bson:"breaks,omitempty" json:"breaks,omitempty"`
}

// StaffSchedule is the stored working pattern of a staff member.
type StaffSchedule struct {
	StaffID     string                      `bson:"staffId" json:"staffId"`
	WeeklyHours map[time.Weekday]WorkingDay `bson:"weeklyHours" json:"weeklyHours"`
	Overrides   []ScheduleOverride          `bson:"overrides,omitempty" json:"overrides,omitempty"`
	UpdatedAt   time.Time                   `bson:"updatedAt" json:"updatedAt"`
}
