package cron

import (
	"context"
	"errors"
	"fmt"

	"github.com/hibiken/asynq"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	appointmentRepo "salonbook/database/repository/appointment"
	catalogRepo "salonbook/database/repository/catalog"
	userRepo "salonbook/database/repository/user"
	"salonbook/models"
	"salonbook/services/loyalty"
	"salonbook/services/notification"
	"salonbook/services/payment"
	"salonbook/services/tasks"
)

// Worker processes the appointment tasks enqueued at checkout.
type Worker struct {
	Appointments appointmentRepo.AppointmentRepository
	Profiles     userRepo.ProfileRepository
	Catalog      catalogRepo.CatalogProvider
	Loyalty      *loyalty.Service
	Email        notification.EmailSender
	Payments     payment.Gateway
	Logger       *zap.Logger
}

// Mux routes task types to their handlers.
func (w *Worker) Mux() *asynq.ServeMux {
	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeAppointmentReminder, w.HandleReminder)
	mux.HandleFunc(tasks.TypeExpireUnpaid, w.HandleExpireUnpaid)
	return mux
}

// HandleReminder emails the customer unless the appointment is no longer active.
func (w *Worker) HandleReminder(ctx context.Context, task *asynq.Task) error {
	p, err := tasks.ParsePayload(task)
	if err != nil {
		w.Logger.Error("Dropping reminder task", zap.Error(err))
		return fmt.Errorf("%v: %w", err, asynq.SkipRetry)
	}

	appt, ok, err := w.load(ctx, p.AppointmentID)
	if err != nil || !ok {
		return err
	}
	if appt.Status != models.StatusPending && appt.Status != models.StatusConfirmed {
		w.Logger.Debug("Skipping reminder for inactive appointment", zap.String("appointmentId", appt.ID), zap.String("status", appt.Status))
		return nil
	}

	profile, err := w.Profiles.GetByID(ctx, appt.UserID)
	if err != nil {
		return fmt.Errorf("failed to load profile %s: %w", appt.UserID, err)
	}
	if !profile.NotificationPreferences.AppointmentReminders {
		return nil
	}

	staffName := appt.StaffID
	if staff, err := w.Catalog.GetStaff(ctx, appt.StaffID); err == nil {
		staffName = staff.Name
	}

	if err := w.Email.Send(ctx, notification.AppointmentReminder(*profile, *appt, staffName)); err != nil {
		w.Logger.Error("Failed to send appointment reminder", zap.String("appointmentId", appt.ID), zap.Error(err))
		return err
	}
	w.Logger.Info("Sent appointment reminder", zap.String("appointmentId", appt.ID))
	return nil
}

// HandleExpireUnpaid cancels an online booking whose payment never completed, freeing its slot
// and returning any redeemed points. A booking paid at the provider but never confirmed by the
// app is confirmed instead.
func (w *Worker) HandleExpireUnpaid(ctx context.Context, task *asynq.Task) error {
	p, err := tasks.ParsePayload(task)
	if err != nil {
		w.Logger.Error("Dropping expiry task", zap.Error(err))
		return fmt.Errorf("%v: %w", err, asynq.SkipRetry)
	}

	appt, ok, err := w.load(ctx, p.AppointmentID)
	if err != nil || !ok {
		return err
	}
	if appt.Status != models.StatusPending || appt.PaymentStatus != models.PaymentPending {
		return nil
	}

	paid, err := w.intentPaid(ctx, appt)
	if err != nil {
		return err
	}
	if paid {
		return w.settlePaid(ctx, appt)
	}

	expired, err := w.Appointments.SettlePayment(ctx, appt.ID, models.StatusCancelled, models.PaymentFailed)
	if err != nil {
		return fmt.Errorf("failed to expire appointment %s: %w", appt.ID, err)
	}
	if !expired {
		return nil
	}

	w.Logger.Info("Expired unpaid appointment",
		zap.String("appointmentId", appt.ID),
		zap.String("paymentIntentId", appt.StripePaymentIntentID),
	)
	if appt.PointsRedeemed > 0 {
		if _, err := w.Loyalty.AddPoints(ctx, appt.UserID, appt.PointsRedeemed, "Refund for unpaid booking", appt.ID); err != nil {
			w.Logger.Error("Failed to refund redeemed points", zap.String("appointmentId", appt.ID), zap.Error(err))
		}
	}
	return nil
}

// intentPaid asks the gateway about the booking's intent. Transient gateway errors are returned
// so asynq retries the task.
func (w *Worker) intentPaid(ctx context.Context, appt *models.Appointment) (bool, error) {
	if w.Payments == nil || appt.StripePaymentIntentID == "" {
		return false, nil
	}
	err := w.Payments.VerifyPaymentIntent(ctx, appt.StripePaymentIntentID, appt.UserID, appt.TotalPrice)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, payment.ErrIntentNotPaid),
		errors.Is(err, payment.ErrIntentMismatch),
		errors.Is(err, payment.ErrIntentOwner):
		return false, nil
	case errors.Is(err, payment.ErrProviderDisabled):
		w.Logger.Warn("Expiring appointment without checking its payment",
			zap.String("appointmentId", appt.ID),
			zap.String("paymentIntentId", appt.StripePaymentIntentID),
		)
		return false, nil
	}
	return false, fmt.Errorf("failed to check payment for appointment %s: %w", appt.ID, err)
}

func (w *Worker) settlePaid(ctx context.Context, appt *models.Appointment) error {
	settled, err := w.Appointments.SettlePayment(ctx, appt.ID, models.StatusConfirmed, models.PaymentPaid)
	if err != nil {
		return fmt.Errorf("failed to confirm appointment %s: %w", appt.ID, err)
	}
	if !settled {
		// confirmed by the app meanwhile
		return nil
	}

	w.Logger.Info("Confirmed appointment paid without confirmation",
		zap.String("appointmentId", appt.ID),
		zap.String("paymentIntentId", appt.StripePaymentIntentID),
	)
	if earned := loyalty.PointsEarned(appt.TotalPrice); earned > 0 {
		if _, err := w.Loyalty.AddPoints(ctx, appt.UserID, earned, fmt.Sprintf("Booking %s", appt.Date), appt.ID); err != nil {
			w.Logger.Error("Failed to award loyalty points", zap.String("appointmentId", appt.ID), zap.Error(err))
		}
	}
	return nil
}

// load reports ok=false for appointments deleted since the task was enqueued.
func (w *Worker) load(ctx context.Context, id string) (*models.Appointment, bool, error) {
	appt, err := w.Appointments.GetByID(ctx, id)
	if errors.Is(err, mongo.ErrNoDocuments) {
		w.Logger.Warn("Task refers to unknown appointment", zap.String("appointmentId", id))
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to load appointment %s: %w", id, err)
	}
	return appt, true, nil
}

// StartWorker runs the asynq server in the background and returns it for shutdown.
func StartWorker(opt asynq.RedisClientOpt, w *Worker, logger *zap.Logger) (*asynq.Server, error) {
	srv := asynq.NewServer(opt, asynq.Config{
		Concurrency: 10,
		Queues: map[string]int{
			"default": 1,
		},
		Logger:   logger.Sugar(),
		LogLevel: asynq.WarnLevel,
	})

	if err := srv.Start(w.Mux()); err != nil {
		return nil, fmt.Errorf("failed to start task worker: %w", err)
	}
	logger.Info("Task worker started")
	return srv, nil
}
