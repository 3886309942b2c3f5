package loyalty

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPointsEarned(t *testing.T) {
	assert.Equal(t, 0, PointsEarned(0))
	assert.Equal(t, 0, PointsEarned(99))
	assert.Equal(t, 1, PointsEarned(100))
	assert.Equal(t, 33, PointsEarned(3325))
	assert.Equal(t, 0, PointsEarned(-500))
}

func TestTierFor(t *testing.T) {
	tests := map[int]string{
		0:    Bronze,
		99:   Bronze,
		100:  Silver,
		299:  Silver,
		300:  Gold,
		599:  Gold,
		600:  Platinum,
		5000: Platinum,
	}
	for points, want := range tests {
		assert.Equal(t, want, TierFor(points), "points %d", points)
	}
}

func TestNextTier(t *testing.T) {
	next, needed, pct, ok := NextTier(50)
	assert.True(t, ok)
	assert.Equal(t, Silver, next)
	assert.Equal(t, 50, needed)
	assert.Equal(t, 50, pct)

	next, needed, pct, ok = NextTier(200)
	assert.True(t, ok)
	assert.Equal(t, Gold, next)
	assert.Equal(t, 100, needed)
	assert.Equal(t, 50, pct)

	_, _, pct, _ = NextTier(301)
	assert.Equal(t, 0, pct, "1/300 rounds to 0")

	_, _, _, ok = NextTier(600)
	assert.False(t, ok)
}

func TestDiscounts(t *testing.T) {
	assert.Equal(t, 0.0, Discount(Bronze))
	assert.Equal(t, 0.02, Discount(Silver))
	assert.Equal(t, 0.05, Discount(Gold))
	assert.Equal(t, 0.10, Discount(Platinum))
	assert.Equal(t, 0.0, Discount("UNKNOWN"))

	assert.Equal(t, int64(3500), ApplyTierDiscount(3500, Bronze))
	assert.Equal(t, int64(3325), ApplyTierDiscount(3500, Gold))
	assert.Equal(t, int64(1960), ApplyTierDiscount(2000, Silver))
	assert.Equal(t, int64(150), PointsDiscount(150))
}

func TestBadgeAndBenefits(t *testing.T) {
	emoji, color, name := Badge(Platinum)
	assert.Equal(t, "💎", emoji)
	assert.Equal(t, "#E5E4E2", color)
	assert.Equal(t, "Platinum", name)

	assert.Len(t, Benefits(Bronze), 3)
	assert.Len(t, Benefits(Platinum), 6)

	b := Benefits(Gold)
	b[0] = "changed"
	assert.Equal(t, "5% discount on all services", Benefits(Gold)[0])
}

func TestFormatPoints(t *testing.T) {
	assert.Equal(t, "0", FormatPoints(0))
	assert.Equal(t, "999", FormatPoints(999))
	assert.Equal(t, "1.250", FormatPoints(1250))
	assert.Equal(t, "1.000.000", FormatPoints(1000000))
	assert.Equal(t, "-1.500", FormatPoints(-1500))
}
