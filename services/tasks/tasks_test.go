package tasks

import (
	"context"
	"testing"
	"time"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"salonbook/models"
)

type recorder struct {
	tasks []*asynq.Task
}

func (r *recorder) EnqueueContext(_ context.Context, task *asynq.Task, _ ...asynq.Option) (*asynq.TaskInfo, error) {
	r.tasks = append(r.tasks, task)
	return &asynq.TaskInfo{}, nil
}

func (r *recorder) types() []string {
	out := make([]string, len(r.tasks))
	for i, t := range r.tasks {
		out[i] = t.Type()
	}
	return out
}

func newTestScheduler(rec *recorder, now time.Time) *AsynqScheduler {
	s := NewAsynqScheduler(rec, time.UTC, 0, 0, zap.NewNop())
	s.now = func() time.Time { return now }
	return s
}

func TestNewReminderTask(t *testing.T) {
	fireAt := time.Date(2025, 3, 13, 10, 0, 0, 0, time.UTC)
	task, opts, err := NewReminderTask(models.AppointmentTaskPayload{AppointmentID: "a1", UserID: "u1"}, fireAt)
	require.NoError(t, err)
	assert.Equal(t, TypeAppointmentReminder, task.Type())
	assert.Len(t, opts, 3)

	p, err := ParsePayload(task)
	require.NoError(t, err)
	assert.Equal(t, "a1", p.AppointmentID)
	assert.Equal(t, "2025-03-13T10:00:00Z", p.FireDate)
}

func TestParsePayload_Invalid(t *testing.T) {
	_, err := ParsePayload(asynq.NewTask(TypeExpireUnpaid, []byte("{")))
	assert.Error(t, err)
	_, err = ParsePayload(asynq.NewTask(TypeExpireUnpaid, []byte(`{"userId":"u1"}`)))
	assert.Error(t, err)
}

func TestAppointmentBooked(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	withReminders := models.Profile{NotificationPreferences: models.NotificationPreferences{AppointmentReminders: true}}

	tests := []struct {
		name    string
		appt    models.Appointment
		profile models.Profile
		want    []string
	}{
		{
			name:    "in store with reminders",
			appt:    models.Appointment{ID: "a1", Date: "2025-03-14", StartTime: "10:00", PaymentMethod: models.PaymentInPerson, PaymentStatus: models.PaymentPending},
			profile: withReminders,
			want:    []string{TypeAppointmentReminder},
		},
		{
			name:    "unpaid online",
			appt:    models.Appointment{ID: "a2", Date: "2025-03-14", StartTime: "10:00", PaymentMethod: models.PaymentOnline, PaymentStatus: models.PaymentPending},
			profile: withReminders,
			want:    []string{TypeExpireUnpaid, TypeAppointmentReminder},
		},
		{
			name: "reminders disabled",
			appt: models.Appointment{ID: "a3", Date: "2025-03-14", StartTime: "10:00", PaymentMethod: models.PaymentOnline, PaymentStatus: models.PaymentPaid},
			want: []string{},
		},
		{
			name:    "too close for a reminder",
			appt:    models.Appointment{ID: "a4", Date: "2025-03-10", StartTime: "18:00", PaymentMethod: models.PaymentInPerson, PaymentStatus: models.PaymentPending},
			profile: withReminders,
			want:    []string{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &recorder{}
			newTestScheduler(rec, now).AppointmentBooked(context.Background(), tt.appt, tt.profile)
			assert.Equal(t, tt.want, rec.types())
		})
	}
}

func TestAppointmentStart(t *testing.T) {
	rome, err := time.LoadLocation("Europe/Rome")
	require.NoError(t, err)

	start, err := AppointmentStart(models.Appointment{Date: "2025-07-01", StartTime: "09:30"}, rome)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 7, 1, 7, 30, 0, 0, time.UTC), start.UTC())

	_, err = AppointmentStart(models.Appointment{Date: "bad", StartTime: "09:30"}, rome)
	assert.Error(t, err)
}
