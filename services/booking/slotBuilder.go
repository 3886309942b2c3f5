package booking

import (
	"time"

	"salonbook/models"
)

// DefaultSlotInterval is the spacing between candidate start times, in minutes.
const DefaultSlotInterval = 15

// ComputeAvailableSlots returns every start time, stepMinutes apart from WorkStart, at which
// a block of durationMinutes fits inside working hours without touching a break or booking.
// Intervals are half-open, so a slot may end exactly where a booking starts.
// A non-positive stepMinutes falls back to DefaultSlotInterval.
func ComputeAvailableSlots(durationMinutes int, schedule models.DaySchedule, stepMinutes int) []models.CandidateSlot {
	slots := []models.CandidateSlot{}
	if durationMinutes <= 0 || !schedule.WorkStart.Before(schedule.WorkEnd) {
		return slots
	}
	if stepMinutes <= 0 {
		stepMinutes = DefaultSlotInterval
	}

	duration := time.Duration(durationMinutes) * time.Minute
	step := time.Duration(stepMinutes) * time.Minute

	for start := schedule.WorkStart; start.Before(schedule.WorkEnd); start = start.Add(step) {
		end := start.Add(duration)
		if end.After(schedule.WorkEnd) {
			// every later candidate ends even further out
			break
		}
		if overlapsAny(start, end, schedule.Booked) || overlapsAny(start, end, schedule.Breaks) {
			continue
		}
		slots = append(slots, models.CandidateSlot{
			Start:     start,
			End:       end,
			Available: true,
		})
	}
	return slots
}

// IsSlotAvailable reports whether start is one of the slots ComputeAvailableSlots would return.
func IsSlotAvailable(start time.Time, durationMinutes int, schedule models.DaySchedule, stepMinutes int) bool {
	for _, s := range ComputeAvailableSlots(durationMinutes, schedule, stepMinutes) {
		if s.Start.Equal(start) {
			return true
		}
	}
	return false
}

// Overlaps reports whether [a0, a1) and [b0, b1) share any instant. An empty interval overlaps nothing.
func Overlaps(a0, a1, b0, b1 time.Time) bool {
	if !a0.Before(a1) || !b0.Before(b1) {
		return false
	}
	return a0.Before(b1) && b0.Before(a1)
}

func overlapsAny(start, end time.Time, intervals []models.Interval) bool {
	for _, iv := range intervals {
		if Overlaps(start, end, iv.Start, iv.End) {
			return true
		}
	}
	return false
}
