package scheduleRepo

import (
	"context"
	"errors"

	"salonbook/models"
)

var ErrInvalidDate = errors.New("invalid schedule date")

// ScheduleProvider returns a fresh snapshot of a staff member's day.
type ScheduleProvider interface {
	GetDaySchedule(ctx context.Context, staffID, date string) (models.DaySchedule, error)
}

// ScheduleStore also manages the stored weekly template.
type ScheduleStore interface {
	ScheduleProvider
	GetSchedule(ctx context.Context, staffID string) (*models.StaffSchedule, error)
	UpsertSchedule(ctx context.Context, schedule *models.StaffSchedule) error
}

// BookedLister supplies the appointments that occupy a day.
type BookedLister interface {
	ListActiveByStaffAndDate(ctx context.Context, staffID, date string) ([]models.Appointment, error)
}
