package appointmentRepo

import (
	"context"
	"errors"

	"salonbook/models"
)

// AppointmentRepository stores booked visits.
type AppointmentRepository interface {
	Create(ctx context.Context, appt *models.Appointment) error
	GetByID(ctx context.Context, id string) (*models.Appointment, error)
	// GetByPaymentIntent returns the appointment a payment intent was attached to.
	GetByPaymentIntent(ctx context.Context, intentID string) (*models.Appointment, error)
	// ListByUser returns a customer's appointments, newest date first.
	ListByUser(ctx context.Context, userID string) ([]models.Appointment, error)
	// ListByDate returns every appointment on date ordered by start time (admin calendar).
	ListByDate(ctx context.Context, date string) ([]models.Appointment, error)
	// ListAll returns the most recent appointments, up to limit (0 means no limit).
	ListAll(ctx context.Context, limit int64) ([]models.Appointment, error)
	// ListActiveByStaffAndDate returns pending and confirmed appointments that occupy the staff member's day.
	ListActiveByStaffAndDate(ctx context.Context, staffID, date string) ([]models.Appointment, error)
	UpdateStatus(ctx context.Context, id, status string) error
	// SettlePayment moves an appointment still awaiting payment (pending/pending) to status and
	// paymentStatus. It reports false when the appointment had already left that state.
	SettlePayment(ctx context.Context, id, status, paymentStatus string) (bool, error)
}

// ErrDuplicatePaymentIntent is returned by Create when the payment intent already backs another appointment.
var ErrDuplicatePaymentIntent = errors.New("payment intent is already attached to an appointment")

// ActiveStatuses are the statuses that block a time slot.
var ActiveStatuses = []string{models.StatusPending, models.StatusConfirmed}
