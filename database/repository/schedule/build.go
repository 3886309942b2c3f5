package scheduleRepo

import (
	"fmt"
	"time"

	"salonbook/models"
	"salonbook/utils"
)

// BuildDaySchedule resolves the working hours for date from the weekly template and any dated
// override, and turns the given appointments into booked intervals. A closed day has
// WorkEnd == WorkStart.
func BuildDaySchedule(staffID, date string, loc *time.Location, sched *models.StaffSchedule, appts []models.Appointment) (models.DaySchedule, error) {
	day, err := utils.ParseDate(date, loc)
	if err != nil {
		return models.DaySchedule{}, fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}

	ds := models.DaySchedule{
		StaffID:   staffID,
		Date:      date,
		WorkStart: day,
		WorkEnd:   day,
		Breaks:    []models.Interval{},
		Booked:    []models.Interval{},
	}

	start, end, breaks, open := resolveHours(sched, date, day.Weekday())
	if !open {
		return ds, nil
	}

	if ds.WorkStart, err = utils.AtClock(day, start); err != nil {
		return models.DaySchedule{}, fmt.Errorf("staff %s work start: %w", staffID, err)
	}
	if ds.WorkEnd, err = utils.AtClock(day, end); err != nil {
		return models.DaySchedule{}, fmt.Errorf("staff %s work end: %w", staffID, err)
	}

	for _, b := range breaks {
		iv, err := clockInterval(day, b.Start, b.End)
		if err != nil {
			return models.DaySchedule{}, fmt.Errorf("staff %s break: %w", staffID, err)
		}
		iv.Label = b.Label
		ds.Breaks = append(ds.Breaks, iv)
	}

	for _, a := range appts {
		iv, err := clockInterval(day, a.StartTime, a.EndTime)
		if err != nil {
			return models.DaySchedule{}, fmt.Errorf("appointment %s: %w", a.ID, err)
		}
		iv.AppointmentID = a.ID
		ds.Booked = append(ds.Booked, iv)
	}
	return ds, nil
}

func resolveHours(sched *models.StaffSchedule, date string, weekday time.Weekday) (start, end string, breaks []models.ClockRange, open bool) {
	if sched == nil {
		return "", "", nil, false
	}

	weekly, hasWeekly := sched.WeeklyHours[weekday]

	for _, o := range sched.Overrides {
		if o.Date != date {
			continue
		}
		if o.Closed {
			return "", "", nil, false
		}
		start, end, breaks = o.Start, o.End, o.Breaks
		if start == "" || end == "" {
			if !hasWeekly {
				return "", "", nil, false
			}
			if start == "" {
				start = weekly.Start
			}
			if end == "" {
				end = weekly.End
			}
		}
		return start, end, breaks, true
	}

	if !hasWeekly {
		return "", "", nil, false
	}
	return weekly.Start, weekly.End, weekly.Breaks, true
}

func clockInterval(day time.Time, start, end string) (models.Interval, error) {
	s, err := utils.AtClock(day, start)
	if err != nil {
		return models.Interval{}, err
	}
	e, err := utils.AtClock(day, end)
	if err != nil {
		return models.Interval{}, err
	}
	// an end at or before the start wraps past midnight ("23:15"-"00:00")
	if !e.After(s) {
		e = e.AddDate(0, 0, 1)
	}
	return models.Interval{Start: s, End: e}, nil
}

// DemoWeeklyHours is the salon's standard week: closed Sunday and Monday, lunch break on weekdays.
func DemoWeeklyHours() map[time.Weekday]models.WorkingDay {
	lunch := []models.ClockRange{{Start: "13:00", End: "14:00", Label: "Pausa pranzo"}}
	weekday := models.WorkingDay{Start: "09:00", End: "19:00", Breaks: lunch}
	return map[time.Weekday]models.WorkingDay{
		time.Tuesday:   weekday,
		time.Wednesday: weekday,
		time.Thursday:  weekday,
		time.Friday:    weekday,
		time.Saturday:  {Start: "09:00", End: "17:00"},
	}
}
