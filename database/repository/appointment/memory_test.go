package appointmentRepo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"

	"salonbook/models"
)

func TestMemoryAppointmentRepo(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryAppointmentRepo(
		models.Appointment{ID: "a1", UserID: "u1", StaffID: "s1", Date: "2025-03-14", StartTime: "11:00", Status: models.StatusConfirmed},
		models.Appointment{ID: "a2", UserID: "u1", StaffID: "s1", Date: "2025-03-14", StartTime: "09:00", Status: models.StatusPending},
		models.Appointment{ID: "a3", UserID: "u2", StaffID: "s1", Date: "2025-03-14", StartTime: "10:00", Status: models.StatusCancelled},
		models.Appointment{ID: "a4", UserID: "u1", StaffID: "s2", Date: "2025-03-15", StartTime: "09:00", Status: models.StatusConfirmed},
	)

	active, err := repo.ListActiveByStaffAndDate(ctx, "s1", "2025-03-14")
	require.NoError(t, err)
	require.Len(t, active, 2)
	assert.Equal(t, "a2", active[0].ID)
	assert.Equal(t, "a1", active[1].ID)

	mine, err := repo.ListByUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, mine, 3)
	assert.Equal(t, "a4", mine[0].ID, "newest first")

	day, err := repo.ListByDate(ctx, "2025-03-14")
	require.NoError(t, err)
	assert.Len(t, day, 3)

	recent, err := repo.ListAll(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, recent, 2)

	require.NoError(t, repo.UpdateStatus(ctx, "a1", models.StatusCancelled))
	active, err = repo.ListActiveByStaffAndDate(ctx, "s1", "2025-03-14")
	require.NoError(t, err)
	assert.Len(t, active, 1)

	assert.ErrorIs(t, repo.UpdateStatus(ctx, "missing", models.StatusCancelled), mongo.ErrNoDocuments)
	_, err = repo.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, mongo.ErrNoDocuments)
}

func TestMemoryAppointmentRepo_CreateAssignsID(t *testing.T) {
	repo := NewMemoryAppointmentRepo()
	appt := &models.Appointment{UserID: "u1"}
	require.NoError(t, repo.Create(context.Background(), appt))
	assert.NotEmpty(t, appt.ID)
	assert.False(t, appt.CreatedAt.IsZero())
}

func TestMemoryAppointmentRepo_SettlePayment(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryAppointmentRepo()
	appt := &models.Appointment{
		UserID: "u1", Status: models.StatusPending,
		PaymentMethod: models.PaymentOnline, PaymentStatus: models.PaymentPending,
	}
	require.NoError(t, repo.Create(ctx, appt))

	ok, err := repo.SettlePayment(ctx, appt.ID, models.StatusConfirmed, models.PaymentPaid)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.SettlePayment(ctx, appt.ID, models.StatusCancelled, models.PaymentFailed)
	require.NoError(t, err)
	assert.False(t, ok, "already settled")

	stored, err := repo.GetByID(ctx, appt.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusConfirmed, stored.Status)
	assert.Equal(t, models.PaymentPaid, stored.PaymentStatus)

	_, err = repo.SettlePayment(ctx, "missing", models.StatusConfirmed, models.PaymentPaid)
	assert.ErrorIs(t, err, mongo.ErrNoDocuments)
}

func TestMemoryAppointmentRepo_PaymentIntentIsUnique(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryAppointmentRepo()

	first := &models.Appointment{UserID: "u1", StripePaymentIntentID: "pi_1"}
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, &models.Appointment{UserID: "u1"}))
	require.NoError(t, repo.Create(ctx, &models.Appointment{UserID: "u1"}), "bookings without an intent never clash")

	err := repo.Create(ctx, &models.Appointment{UserID: "u1", StripePaymentIntentID: "pi_1"})
	assert.ErrorIs(t, err, ErrDuplicatePaymentIntent)

	found, err := repo.GetByPaymentIntent(ctx, "pi_1")
	require.NoError(t, err)
	assert.Equal(t, first.ID, found.ID)

	_, err = repo.GetByPaymentIntent(ctx, "pi_2")
	assert.ErrorIs(t, err, mongo.ErrNoDocuments)
	_, err = repo.GetByPaymentIntent(ctx, "")
	assert.ErrorIs(t, err, mongo.ErrNoDocuments)
}
