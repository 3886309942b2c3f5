package models

// PriceBreakdown itemises how an order total was reached.
type PriceBreakdown struct {
	Subtotal           int64   `json:"subtotal"`
	Tier               string  `json:"tier"`
	TierDiscountRate   float64 `json:"tierDiscountRate"`
	OnlineDiscountRate float64 `json:"onlineDiscountRate"`
	DiscountedTotal    int64   `json:"discountedTotal"`
	PointsRedeemed     int     `json:"pointsRedeemed"`
	PointsDiscount     int64   `json:"pointsDiscount"`
	Total              int64   `json:"total"`
	PointsToEarn       int     `json:"pointsToEarn"`
	FormattedTotal     string  `json:"formattedTotal"`
	TotalDuration      int     `json:"totalDuration"`
	FormattedDuration  string  `json:"formattedDuration"`
}
