package booking

import (
	"math"

	"salonbook/models"
	"salonbook/services/loyalty"
)

// DefaultOnlineDiscountRate is the pay-now discount.
const DefaultOnlineDiscountRate = 0.05

// ComputePricing applies the tier discount and the online discount together, then subtracts
// redeemed points. Points beyond the discounted total are not spent.
func ComputePricing(subtotal int64, duration, balance int, payNow bool, onlineRate float64, redeem int) models.PriceBreakdown {
	tier := loyalty.TierFor(balance)
	tierRate := loyalty.Discount(tier)
	if !payNow {
		onlineRate = 0
	}

	discounted := int64(math.Round(float64(subtotal) * (1 - (tierRate + onlineRate))))
	if discounted < 0 {
		discounted = 0
	}

	if redeem < 0 {
		redeem = 0
	}
	pointsDiscount := loyalty.PointsDiscount(redeem)
	if pointsDiscount > discounted {
		pointsDiscount = discounted
		redeem = int(discounted / loyalty.PointsToCents)
	}
	total := discounted - pointsDiscount

	return models.PriceBreakdown{
		Subtotal:           subtotal,
		Tier:               tier,
		TierDiscountRate:   tierRate,
		OnlineDiscountRate: onlineRate,
		DiscountedTotal:    discounted,
		PointsRedeemed:     redeem,
		PointsDiscount:     pointsDiscount,
		Total:              total,
		PointsToEarn:       loyalty.PointsEarned(total),
		FormattedTotal:     FormatEuro(total),
		TotalDuration:      duration,
		FormattedDuration:  FormatDuration(duration),
	}
}
