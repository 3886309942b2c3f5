package models

// Checkout payment choices as sent by the app.
const (
	PayNow     = "pay_now"
	PayInStore = "pay_in_store"
)

// CheckoutRequest is the payload for confirming a booking.
type CheckoutRequest struct {
	UserID          string   `json:"-"`
	StaffID         string   `json:"staffId" binding:"required"`
	Date            string   `json:"date" binding:"required,isodate"`
	StartTime       string   `json:"startTime" binding:"required,clock"`
	ServiceIDs      []string `json:"serviceIds" binding:"required,min=1"`
	ProductIDs      []string `json:"productIds,omitempty"`
	PaymentMethod   string   `json:"paymentMethod" binding:"required,oneof=pay_now pay_in_store"`
	PaymentIntentID string   `json:"paymentIntentId,omitempty"`
	RedeemPoints    int      `json:"redeemPoints,omitempty" binding:"gte=0"`
	Notes           string   `json:"notes,omitempty"`
}
