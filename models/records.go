package models

import "time"

// LoyaltyEntry records a change to a customer's points balance.
type LoyaltyEntry struct {
	ID            string    `bson:"id" json:"id"`
	UserID        string    `bson:"userId" json:"userId"`
	PointsChange  int       `bson:"pointsChange" json:"pointsChange"` // negative for redemptions
	Reason        string    `bson:"reason" json:"reason"`
	AppointmentID string    `bson:"appointmentId,omitempty" json:"appointmentId,omitempty"`
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt"`
}

// TierBadge is the display data for a loyalty tier.
type TierBadge struct {
	Emoji string `json:"emoji"`
	Color string `json:"color"`
	Name  string `json:"name"`
}

// NextTierInfo describes progress toward the next tier.
type NextTierInfo struct {
	NextTier        string `json:"nextTier"`
	PointsNeeded    int    `json:"pointsNeeded"`
	ProgressPercent int    `json:"progressPercent"`
}

// LoyaltySummary is the customer-facing view of their loyalty status.
type LoyaltySummary struct {
	Points       int           `json:"points"`
	Tier         string        `json:"tier"`
	Discount     float64       `json:"discount"`
	Badge        TierBadge     `json:"badge"`
	Benefits     []string      `json:"benefits"`
	Next         *NextTierInfo `json:"next,omitempty"`
	FormattedPts string        `json:"formattedPoints"`
}

// RedeemRequest asks whether points can be spent on the next booking.
type RedeemRequest struct {
	Points int `json:"points" binding:"required,gt=0"`
}

// RedeemPreview is the discount the points are worth; nothing is deducted until checkout.
type RedeemPreview struct {
	Points   int    `json:"points"`
	Discount int64  `json:"discount"`
	Display  string `json:"display"`
	Balance  int    `json:"balance"`
}
