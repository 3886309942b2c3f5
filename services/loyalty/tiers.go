package loyalty

import (
	"math"
	"strconv"
)

// Tier names.
const (
	Bronze   = "BRONZE"
	Silver   = "SILVER"
	Gold     = "GOLD"
	Platinum = "PLATINUM"
)

const (
	// PointsPerEuro is how many points a euro spent earns.
	PointsPerEuro = 1
	// PointsToCents is the value of one redeemed point.
	PointsToCents = 1
)

type tierRule struct {
	name      string
	threshold int
	discount  float64
	emoji     string
	color     string
	label     string
	benefits  []string
}

// ordered from lowest to highest threshold
var tiers = []tierRule{
	{Bronze, 0, 0, "🥉", "#CD7F32", "Bronze", []string{
		"Earn 1 point per euro spent",
		"Redeem points for discounts",
		"Birthday surprise",
	}},
	{Silver, 100, 0.02, "🥈", "#C0C0C0", "Silver", []string{
		"2% discount on all services",
		"Priority booking",
		"Earn 1 point per euro spent",
		"Exclusive offers",
	}},
	{Gold, 300, 0.05, "🥇", "#FFD700", "Gold", []string{
		"5% discount on all services",
		"Priority booking",
		"Earn 1 point per euro spent",
		"Free product samples",
		"Early access to new services",
	}},
	{Platinum, 600, 0.10, "💎", "#E5E4E2", "Platinum", []string{
		"10% discount on all services",
		"VIP priority booking",
		"Earn 1.5 points per euro spent",
		"Free premium treatments",
		"Personal stylist consultation",
		"Exclusive events access",
	}},
}

func tierIndex(points int) int {
	idx := 0
	for i, t := range tiers {
		if points >= t.threshold {
			idx = i
		}
	}
	return idx
}

func rule(tier string) tierRule {
	for _, t := range tiers {
		if t.name == tier {
			return t
		}
	}
	return tiers[0]
}

// PointsEarned returns the points a purchase of amountCents earns.
func PointsEarned(amountCents int64) int {
	if amountCents <= 0 {
		return 0
	}
	return int(amountCents/100) * PointsPerEuro
}

// TierFor returns the tier reached with points.
func TierFor(points int) string {
	return tiers[tierIndex(points)].name
}

// NextTier reports the next tier and progress toward it. ok is false at the top tier.
func NextTier(points int) (next string, pointsNeeded, progressPercent int, ok bool) {
	idx := tierIndex(points)
	if idx == len(tiers)-1 {
		return "", 0, 0, false
	}
	cur, nxt := tiers[idx], tiers[idx+1]
	pct := float64(points-cur.threshold) / float64(nxt.threshold-cur.threshold) * 100
	return nxt.name, nxt.threshold - points, int(math.Round(math.Min(100, pct))), true
}

// Discount returns the tier's discount as a fraction, e.g. 0.05.
func Discount(tier string) float64 {
	return rule(tier).discount
}

// ApplyTierDiscount returns priceCents reduced by the tier discount, rounded to the cent.
func ApplyTierDiscount(priceCents int64, tier string) int64 {
	return int64(math.Round(float64(priceCents) * (1 - Discount(tier))))
}

// PointsDiscount is the value in cents of redeeming points.
func PointsDiscount(points int) int64 {
	return int64(points) * PointsToCents
}

// Badge returns display data for tier.
func Badge(tier string) (emoji, color, name string) {
	r := rule(tier)
	return r.emoji, r.color, r.label
}

// Benefits lists what the tier offers.
func Benefits(tier string) []string {
	return append([]string(nil), rule(tier).benefits...)
}

// FormatPoints groups thousands with dots, e.g. 1.250.
func FormatPoints(points int) string {
	s := strconv.Itoa(points)
	neg := false
	if points < 0 {
		neg = true
		s = s[1:]
	}
	for i := len(s) - 3; i > 0; i -= 3 {
		s = s[:i] + "." + s[i:]
	}
	if neg {
		s = "-" + s
	}
	return s
}
