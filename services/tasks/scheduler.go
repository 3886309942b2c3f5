package tasks

import (
	"context"
	"errors"
	"time"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"salonbook/models"
	"salonbook/utils"
)

const (
	DefaultReminderLead  = 24 * time.Hour
	DefaultPaymentWindow = 30 * time.Minute
)

// Scheduler plans follow-up work for a freshly booked appointment.
type Scheduler interface {
	AppointmentBooked(ctx context.Context, appt models.Appointment, profile models.Profile)
}

// Enqueuer is the part of *asynq.Client the scheduler uses.
type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// AsynqScheduler enqueues reminder and payment-expiry tasks.
type AsynqScheduler struct {
	Client        Enqueuer
	Location      *time.Location
	ReminderLead  time.Duration
	PaymentWindow time.Duration
	Logger        *zap.Logger
	now           func() time.Time
}

func NewAsynqScheduler(client Enqueuer, loc *time.Location, reminderLead, paymentWindow time.Duration, logger *zap.Logger) *AsynqScheduler {
	if reminderLead <= 0 {
		reminderLead = DefaultReminderLead
	}
	if paymentWindow <= 0 {
		paymentWindow = DefaultPaymentWindow
	}
	return &AsynqScheduler{
		Client:        client,
		Location:      loc,
		ReminderLead:  reminderLead,
		PaymentWindow: paymentWindow,
		Logger:        logger,
		now:           time.Now,
	}
}

// AppointmentBooked never fails the booking; enqueue errors are logged.
func (s *AsynqScheduler) AppointmentBooked(ctx context.Context, appt models.Appointment, profile models.Profile) {
	payload := models.AppointmentTaskPayload{AppointmentID: appt.ID, UserID: appt.UserID}
	now := s.now()

	if appt.PaymentMethod == models.PaymentOnline && appt.PaymentStatus == models.PaymentPending {
		task, opts, err := NewExpireUnpaidTask(payload, now.Add(s.PaymentWindow))
		s.enqueue(ctx, task, opts, err, appt.ID)
	}

	if !profile.NotificationPreferences.AppointmentReminders {
		return
	}
	start, err := AppointmentStart(appt, s.Location)
	if err != nil {
		s.Logger.Warn("Cannot schedule reminder", zap.String("appointmentId", appt.ID), zap.Error(err))
		return
	}
	fireAt := start.Add(-s.ReminderLead)
	if !fireAt.After(now) {
		return
	}
	task, opts, err := NewReminderTask(payload, fireAt)
	s.enqueue(ctx, task, opts, err, appt.ID)
}

func (s *AsynqScheduler) enqueue(ctx context.Context, task *asynq.Task, opts []asynq.Option, err error, appointmentID string) {
	if err == nil {
		_, err = s.Client.EnqueueContext(ctx, task, opts...)
	}
	if errors.Is(err, asynq.ErrTaskIDConflict) {
		return
	}
	if err != nil {
		s.Logger.Error("Failed to enqueue appointment task", zap.String("appointmentId", appointmentID), zap.Error(err))
		return
	}
	s.Logger.Debug("Enqueued appointment task", zap.String("type", task.Type()), zap.String("appointmentId", appointmentID))
}

// AppointmentStart is the appointment's start instant in loc.
func AppointmentStart(appt models.Appointment, loc *time.Location) (time.Time, error) {
	day, err := utils.ParseDate(appt.Date, loc)
	if err != nil {
		return time.Time{}, err
	}
	return utils.AtClock(day, appt.StartTime)
}
