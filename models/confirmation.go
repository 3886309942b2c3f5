package models

// CheckoutResult is returned after a booking has been stored.
type CheckoutResult struct {
	Appointment   Appointment          `json:"appointment"`
	Pricing       PriceBreakdown       `json:"pricing"`
	PaymentIntent *PaymentIntentResult `json:"paymentIntent,omitempty"`
	PointsEarned  int                  `json:"pointsEarned"`
	Message       string               `json:"message"`
}

// PaymentConfirmation is returned when a pending online payment is confirmed.
type PaymentConfirmation struct {
	Appointment  Appointment `json:"appointment"`
	PointsEarned int         `json:"pointsEarned"`
	Message      string      `json:"message"`
}
