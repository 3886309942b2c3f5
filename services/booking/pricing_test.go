package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"salonbook/services/loyalty"
)

func TestComputePricing(t *testing.T) {
	tests := []struct {
		name      string
		subtotal  int64
		balance   int
		payNow    bool
		redeem    int
		wantTier  string
		wantTotal int64
		wantSpent int
		wantEarn  int
	}{
		{"bronze in store", 10000, 0, false, 0, loyalty.Bronze, 10000, 0, 100},
		{"bronze online", 10000, 0, true, 0, loyalty.Bronze, 9500, 0, 95},
		{"gold online stacks", 10000, 300, true, 0, loyalty.Gold, 9000, 0, 90},
		{"platinum in store", 10000, 650, false, 0, loyalty.Platinum, 9000, 0, 90},
		{"silver with points", 3500, 200, false, 100, loyalty.Silver, 3330, 100, 33},
		{"rounding", 3333, 0, true, 0, loyalty.Bronze, 3166, 0, 31},
		{"points capped at total", 1000, 50, false, 5000, loyalty.Bronze, 0, 1000, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := ComputePricing(tt.subtotal, 60, tt.balance, tt.payNow, DefaultOnlineDiscountRate, tt.redeem)
			assert.Equal(t, tt.wantTier, p.Tier)
			assert.Equal(t, tt.wantTotal, p.Total)
			assert.Equal(t, tt.wantSpent, p.PointsRedeemed)
			assert.Equal(t, tt.wantEarn, p.PointsToEarn)
			assert.Equal(t, p.DiscountedTotal-p.PointsDiscount, p.Total)
			assert.Equal(t, "1h", p.FormattedDuration)
		})
	}
}

func TestComputePricing_OnlineRateOnlyWhenPayingNow(t *testing.T) {
	p := ComputePricing(2000, 30, 0, false, 0.05, 0)
	assert.Zero(t, p.OnlineDiscountRate)
	assert.Equal(t, "€20,00", p.FormattedTotal)

	p = ComputePricing(2000, 30, 0, true, 0.05, 0)
	assert.Equal(t, 0.05, p.OnlineDiscountRate)
	assert.Equal(t, int64(1900), p.Total)
}
