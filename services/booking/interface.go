package booking

import (
	"context"

	"salonbook/models"
)

// AvailabilityService computes free start times for a staff member.
type AvailabilityService interface {
	GetAvailableSlots(ctx context.Context, staffID, date string, serviceIDs []string) (*models.AvailabilityResult, error)
}

// CartService keeps the customer's in-progress selection between app screens.
type CartService interface {
	Get(ctx context.Context, userID string) (*models.Cart, error)
	AddService(ctx context.Context, userID, serviceID string) (*models.Cart, error)
	RemoveService(ctx context.Context, userID, serviceID string) (*models.Cart, error)
	AddProduct(ctx context.Context, userID, productID string) (*models.Cart, error)
	RemoveProduct(ctx context.Context, userID, productID string) (*models.Cart, error)
	SetSchedule(ctx context.Context, userID, staffID, date, startTime string) (*models.Cart, error)
	Reset(ctx context.Context, userID string) error
}

// CheckoutService prices and books appointments.
type CheckoutService interface {
	Quote(ctx context.Context, req models.CheckoutRequest) (*models.PriceBreakdown, error)
	Checkout(ctx context.Context, req models.CheckoutRequest) (*models.CheckoutResult, error)
}

// AppointmentService is the customer's view of their bookings.
type AppointmentService interface {
	ListAppointments(ctx context.Context, userID string) ([]models.Appointment, error)
	CancelAppointment(ctx context.Context, userID, appointmentID string) (*models.Appointment, error)
	// ConfirmPayment verifies the appointment's payment intent and confirms the booking.
	ConfirmPayment(ctx context.Context, userID, appointmentID string) (*models.PaymentConfirmation, error)
}
