package booking

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	appointmentRepo "salonbook/database/repository/appointment"
	"salonbook/metrics"
	"salonbook/models"
	"salonbook/services/loyalty"
	"salonbook/services/payment"
)

// DefaultAppointmentService lets customers see and cancel their own bookings.
type DefaultAppointmentService struct {
	Appointments appointmentRepo.AppointmentRepository
	Payments     payment.Gateway
	Loyalty      *loyalty.Service
	Metrics      *metrics.BookingMetrics
	Logger       *zap.Logger
}

func (s *DefaultAppointmentService) ListAppointments(ctx context.Context, userID string) ([]models.Appointment, error) {
	appts, err := s.Appointments.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	return appts, nil
}

func (s *DefaultAppointmentService) ownAppointment(ctx context.Context, userID, appointmentID string) (*models.Appointment, error) {
	appt, err := s.Appointments.GetByID(ctx, appointmentID)
	if errors.Is(err, mongo.ErrNoDocuments) || (err == nil && appt.UserID != userID) {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load appointment: %w", err)
	}
	return appt, nil
}

// CancelAppointment cancels a pending or confirmed booking. Another customer's appointment is reported as missing.
func (s *DefaultAppointmentService) CancelAppointment(ctx context.Context, userID, appointmentID string) (*models.Appointment, error) {
	appt, err := s.ownAppointment(ctx, userID, appointmentID)
	if err != nil {
		return nil, err
	}
	if appt.Status != models.StatusPending && appt.Status != models.StatusConfirmed {
		return nil, fmt.Errorf("%w: status is %s", ErrNotCancellable, appt.Status)
	}
	if err := s.Appointments.UpdateStatus(ctx, appointmentID, models.StatusCancelled); err != nil {
		return nil, fmt.Errorf("failed to cancel appointment: %w", err)
	}

	s.Logger.Info("Appointment cancelled by customer",
		zap.String("appointmentId", appointmentID),
		zap.String("userId", userID),
	)
	appt.Status = models.StatusCancelled
	return appt, nil
}

// ConfirmPayment settles a booking left pending by checkout once its intent has been paid, and
// awards the points withheld until then.
func (s *DefaultAppointmentService) ConfirmPayment(ctx context.Context, userID, appointmentID string) (*models.PaymentConfirmation, error) {
	appt, err := s.ownAppointment(ctx, userID, appointmentID)
	if err != nil {
		return nil, err
	}
	if appt.PaymentMethod != models.PaymentOnline || appt.PaymentStatus != models.PaymentPending ||
		appt.Status != models.StatusPending || appt.StripePaymentIntentID == "" {
		return nil, ErrNotAwaitingPayment
	}

	if err := s.Payments.VerifyPaymentIntent(ctx, appt.StripePaymentIntentID, appt.UserID, appt.TotalPrice); err != nil {
		s.Metrics.ObservePaymentIntent("unverified")
		return nil, fmt.Errorf("%w: %v", ErrPaymentNotVerified, err)
	}

	settled, err := s.Appointments.SettlePayment(ctx, appt.ID, models.StatusConfirmed, models.PaymentPaid)
	if err != nil {
		return nil, fmt.Errorf("failed to confirm appointment: %w", err)
	}
	if !settled {
		// expired or confirmed concurrently
		return nil, ErrNotAwaitingPayment
	}
	s.Metrics.ObservePaymentIntent("confirmed")
	appt.Status = models.StatusConfirmed
	appt.PaymentStatus = models.PaymentPaid

	earned := loyalty.PointsEarned(appt.TotalPrice)
	if earned > 0 {
		if _, err := s.Loyalty.AddPoints(ctx, userID, earned, fmt.Sprintf("Booking %s", appt.Date), appt.ID); err != nil {
			s.Logger.Error("Failed to award loyalty points", zap.String("appointmentId", appt.ID), zap.Error(err))
			earned = 0
		}
	}

	s.Logger.Info("Online payment confirmed",
		zap.String("appointmentId", appt.ID),
		zap.String("paymentIntentId", appt.StripePaymentIntentID),
	)
	return &models.PaymentConfirmation{
		Appointment:  *appt,
		PointsEarned: earned,
		Message:      checkoutMessage(appt, earned),
	}, nil
}
