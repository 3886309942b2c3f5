package models

// PaymentIntentRequest asks the payment provider for a new intent.
type PaymentIntentRequest struct {
	Amount   int64             `json:"amount" binding:"required"` // cents
	Metadata map[string]string `json:"metadata,omitempty"`
}

// PaymentIntentResult is what the client needs to present the payment sheet.
type PaymentIntentResult struct {
	ClientSecret    string `json:"clientSecret"`
	PaymentIntentID string `json:"paymentIntentId"`
}
