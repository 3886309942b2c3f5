package booking

import "errors"

var (
	ErrInvalidRequest      = errors.New("invalid booking request")
	ErrInvalidCheckout     = errors.New("invalid checkout request")
	ErrStaffNotFound       = errors.New("staff member not found")
	ErrServiceNotFound     = errors.New("service not found or inactive")
	ErrProductNotFound     = errors.New("product not found or inactive")
	ErrSlotUnavailable     = errors.New("selected time is no longer available")
	ErrCheckoutInProgress  = errors.New("another booking for this staff member is being processed")
	ErrPaymentNotVerified  = errors.New("payment could not be verified")
	ErrPaymentIntentUsed   = errors.New("payment has already been used for another booking")
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrNotCancellable      = errors.New("appointment can no longer be cancelled")
	ErrNotAwaitingPayment  = errors.New("appointment is not awaiting an online payment")
)
