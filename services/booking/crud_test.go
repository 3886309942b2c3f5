package booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"salonbook/models"
)

func TestCancelAppointment(t *testing.T) {
	h := newHarness(t, 0)
	ctx := context.Background()
	svc := &DefaultAppointmentService{Appointments: h.appointments, Logger: zap.NewNop()}

	booked, err := h.checkout.Checkout(ctx, h.request("11:00", models.PayInStore, "svc-cut-women"))
	require.NoError(t, err)
	id := booked.Appointment.ID

	_, err = svc.CancelAppointment(ctx, "someone-else", id)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
	_, err = svc.CancelAppointment(ctx, h.customer.ID, "missing")
	assert.ErrorIs(t, err, ErrAppointmentNotFound)

	cancelled, err := svc.CancelAppointment(ctx, h.customer.ID, id)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCancelled, cancelled.Status)

	_, err = svc.CancelAppointment(ctx, h.customer.ID, id)
	assert.ErrorIs(t, err, ErrNotCancellable)

	slots, err := h.availability.GetAvailableSlots(ctx, "staff-giulia", openFriday, []string{"svc-cut-women"})
	require.NoError(t, err)
	assert.Contains(t, slots.Labels, "11:00", "cancelling frees the slot")

	appts, err := svc.ListAppointments(ctx, h.customer.ID)
	require.NoError(t, err)
	require.Len(t, appts, 1)
	assert.Equal(t, models.StatusCancelled, appts[0].Status)
}

func TestCancelAppointment_CompletedIsFinal(t *testing.T) {
	h := newHarness(t, 0)
	ctx := context.Background()
	svc := &DefaultAppointmentService{Appointments: h.appointments, Logger: zap.NewNop()}

	appt := &models.Appointment{UserID: h.customer.ID, StaffID: "staff-sara", Date: openFriday, StartTime: "09:00", EndTime: "09:30", Status: models.StatusCompleted}
	require.NoError(t, h.appointments.Create(ctx, appt))

	_, err := svc.CancelAppointment(ctx, h.customer.ID, appt.ID)
	assert.ErrorIs(t, err, ErrNotCancellable)
}

func TestConfirmPayment(t *testing.T) {
	h := newHarness(t, 0)
	ctx := context.Background()
	svc := &DefaultAppointmentService{
		Appointments: h.appointments,
		Payments:     h.gateway,
		Loyalty:      h.checkout.Loyalty,
		Logger:       zap.NewNop(),
	}

	booked, err := h.checkout.Checkout(ctx, h.request("10:00", models.PayNow, "svc-cut-women"))
	require.NoError(t, err)
	require.Equal(t, models.StatusPending, booked.Appointment.Status)

	_, err = svc.ConfirmPayment(ctx, "intruder", booked.Appointment.ID)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)

	confirmed, err := svc.ConfirmPayment(ctx, h.customer.ID, booked.Appointment.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusConfirmed, confirmed.Appointment.Status)
	assert.Equal(t, models.PaymentPaid, confirmed.Appointment.PaymentStatus)
	assert.Equal(t, 33, confirmed.PointsEarned)
	assert.Equal(t, 33, h.balance(t))

	_, err = svc.ConfirmPayment(ctx, h.customer.ID, booked.Appointment.ID)
	assert.ErrorIs(t, err, ErrNotAwaitingPayment)
}

func TestConfirmPayment_InStoreBooking(t *testing.T) {
	h := newHarness(t, 0)
	ctx := context.Background()
	svc := &DefaultAppointmentService{Appointments: h.appointments, Payments: h.gateway, Loyalty: h.checkout.Loyalty, Logger: zap.NewNop()}

	booked, err := h.checkout.Checkout(ctx, h.request("10:00", models.PayInStore, "svc-cut-women"))
	require.NoError(t, err)

	_, err = svc.ConfirmPayment(ctx, h.customer.ID, booked.Appointment.ID)
	assert.ErrorIs(t, err, ErrNotAwaitingPayment)
}
