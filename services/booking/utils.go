package booking

import (
	"fmt"
	"strings"

	"salonbook/models"
)

// FormatSlotLabel renders the slot start as a 24-hour "HH:MM" label.
func FormatSlotLabel(slot models.CandidateSlot) string {
	return slot.Start.Format("15:04")
}

// GroupSlotsByHour buckets slots by their "HH:00" start hour. Groups keep the order in which
// each hour first appears and slots keep their order within a group.
func GroupSlotsByHour(slots []models.CandidateSlot) []models.SlotGroup {
	groups := []models.SlotGroup{}
	index := make(map[string]int)
	for _, s := range slots {
		hour := s.Start.Format("15") + ":00"
		i, ok := index[hour]
		if !ok {
			i = len(groups)
			index[hour] = i
			groups = append(groups, models.SlotGroup{Hour: hour})
		}
		groups[i].Slots = append(groups[i].Slots, s)
	}
	return groups
}

// SlotLabels maps each slot to its display label.
func SlotLabels(slots []models.CandidateSlot) []string {
	labels := make([]string, len(slots))
	for i, s := range slots {
		labels[i] = FormatSlotLabel(s)
	}
	return labels
}

func SumDurations(services []models.Service) int {
	total := 0
	for _, s := range services {
		total += s.DurationMin
	}
	return total
}

func SumPrices(services []models.Service) int64 {
	var total int64
	for _, s := range services {
		total += s.Price
	}
	return total
}

func SumProductPrices(products []models.Product) int64 {
	var total int64
	for _, p := range products {
		total += p.Price
	}
	return total
}

// FormatMinorUnits renders an amount in cents as a decimal string with two fraction digits.
func FormatMinorUnits(amount int64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	return fmt.Sprintf("%s%d.%02d", sign, amount/100, amount%100)
}

// FormatEuro renders cents the way the app displays prices, e.g. "€35,00".
func FormatEuro(cents int64) string {
	return "€" + strings.Replace(FormatMinorUnits(cents), ".", ",", 1)
}

// FormatDuration renders minutes as "45min", "1h" or "1h 30min".
func FormatDuration(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%dmin", minutes)
	}
	h, m := minutes/60, minutes%60
	if m == 0 {
		return fmt.Sprintf("%dh", h)
	}
	return fmt.Sprintf("%dh %dmin", h, m)
}
