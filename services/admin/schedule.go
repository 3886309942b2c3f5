package admin

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"salonbook/models"
	"salonbook/utils"
)

func (a *DefaultAdminService) GetSchedule(ctx context.Context, staffID string) (*models.StaffSchedule, error) {
	if err := a.ensureStaff(ctx, staffID); err != nil {
		return nil, err
	}
	sched, err := a.Schedules.GetSchedule(ctx, staffID)
	if errors.Is(err, mongo.ErrNoDocuments) {
		// never configured: closed every day
		return &models.StaffSchedule{StaffID: staffID, WeeklyHours: map[time.Weekday]models.WorkingDay{}}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load schedule: %w", err)
	}
	return sched, nil
}

// UpsertSchedule replaces a staff member's weekly hours and overrides after checking every range.
func (a *DefaultAdminService) UpsertSchedule(ctx context.Context, schedule models.StaffSchedule) (*models.StaffSchedule, error) {
	if err := a.ensureStaff(ctx, schedule.StaffID); err != nil {
		return nil, err
	}
	if err := validateSchedule(schedule); err != nil {
		return nil, err
	}
	schedule.UpdatedAt = time.Now()
	if err := a.Schedules.UpsertSchedule(ctx, &schedule); err != nil {
		return nil, fmt.Errorf("failed to save schedule: %w", err)
	}
	a.Logger.Info("Staff schedule updated", zap.String("staffId", schedule.StaffID))
	return &schedule, nil
}

func (a *DefaultAdminService) ensureStaff(ctx context.Context, staffID string) error {
	if _, err := a.Catalog.GetStaff(ctx, staffID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrStaffNotFound
		}
		return fmt.Errorf("failed to load staff: %w", err)
	}
	return nil
}

func validateSchedule(s models.StaffSchedule) error {
	for day, wd := range s.WeeklyHours {
		if day < time.Sunday || day > time.Saturday {
			return fmt.Errorf("%w: unknown weekday %d", ErrInvalidSchedule, day)
		}
		if err := validateShift(wd.Start, wd.End, wd.Breaks); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidSchedule, day, err)
		}
	}
	seen := make(map[string]bool, len(s.Overrides))
	for _, o := range s.Overrides {
		if !utils.IsDate(o.Date) {
			return fmt.Errorf("%w: override date %q", ErrInvalidSchedule, o.Date)
		}
		if seen[o.Date] {
			return fmt.Errorf("%w: duplicate override for %s", ErrInvalidSchedule, o.Date)
		}
		seen[o.Date] = true
		if o.Closed || (o.Start == "" && o.End == "") {
			continue
		}
		if err := validateShift(o.Start, o.End, o.Breaks); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidSchedule, o.Date, err)
		}
	}
	return nil
}

// validateShift requires start < end and every break inside the shift.
func validateShift(start, end string, breaks []models.ClockRange) error {
	s, err := utils.ClockMinutes(start)
	if err != nil {
		return err
	}
	e, err := utils.ClockMinutes(end)
	if err != nil {
		return err
	}
	if s >= e {
		return fmt.Errorf("shift %s-%s ends before it starts", start, end)
	}
	for _, b := range breaks {
		bs, err := utils.ClockMinutes(b.Start)
		if err != nil {
			return err
		}
		be, err := utils.ClockMinutes(b.End)
		if err != nil {
			return err
		}
		if bs >= be || bs < s || be > e {
			return fmt.Errorf("break %s-%s is outside the shift %s-%s", b.Start, b.End, start, end)
		}
	}
	return nil
}
