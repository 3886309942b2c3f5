package admin

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"salonbook/models"
	"salonbook/utils"
)

// Calendar lists every appointment on date ordered by start time.
func (a *DefaultAdminService) Calendar(ctx context.Context, date string) ([]models.Appointment, error) {
	if !utils.IsDate(date) {
		return nil, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", date)
	}
	appts, err := a.Appointments.ListByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("failed to load calendar: %w", err)
	}
	return appts, nil
}

func (a *DefaultAdminService) ListAppointments(ctx context.Context, limit int64) ([]models.Appointment, error) {
	if limit < 0 {
		limit = 0
	}
	appts, err := a.Appointments.ListAll(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	return appts, nil
}

func (a *DefaultAdminService) UpdateAppointmentStatus(ctx context.Context, id, status string) (*models.Appointment, error) {
	if !models.IsValidStatus(status) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}
	if err := a.Appointments.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrAppointmentNotFound
		}
		return nil, fmt.Errorf("failed to update appointment: %w", err)
	}
	a.Logger.Info("Appointment status changed", zap.String("appointmentId", id), zap.String("status", status))

	appt, err := a.Appointments.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load appointment: %w", err)
	}
	return appt, nil
}
