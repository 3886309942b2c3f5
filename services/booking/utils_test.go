package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salonbook/models"
)

func TestGroupSlotsByHour(t *testing.T) {
	schedule := day("09:30", "11:30", nil, []models.Interval{iv("10:15", "10:45")})
	slots := ComputeAvailableSlots(15, schedule, 15)

	groups := GroupSlotsByHour(slots)

	require.Len(t, groups, 3)
	assert.Equal(t, "09:00", groups[0].Hour)
	assert.Equal(t, []string{"09:30", "09:45"}, starts(groups[0].Slots))
	assert.Equal(t, "10:00", groups[1].Hour)
	assert.Equal(t, []string{"10:00", "10:45"}, starts(groups[1].Slots))
	assert.Equal(t, "11:00", groups[2].Hour)
	assert.Equal(t, []string{"11:00", "11:15"}, starts(groups[2].Slots))
}

func TestGroupSlotsByHour_Empty(t *testing.T) {
	groups := GroupSlotsByHour(nil)
	require.NotNil(t, groups)
	assert.Empty(t, groups)
}

func TestSlotLabels(t *testing.T) {
	slots := ComputeAvailableSlots(60, day("16:00", "18:00", nil, nil), 30)
	assert.Equal(t, []string{"16:00", "16:30", "17:00"}, SlotLabels(slots))
}

func TestSums(t *testing.T) {
	services := []models.Service{
		{ID: "cut", DurationMin: 30, Price: 2500},
		{ID: "color", DurationMin: 90, Price: 6500},
		{ID: "beard", DurationMin: 15, Price: 1000},
	}
	assert.Equal(t, 135, SumDurations(services))
	assert.Equal(t, int64(10000), SumPrices(services))
	assert.Equal(t, 0, SumDurations(nil))
	assert.Equal(t, int64(0), SumPrices(nil))

	products := []models.Product{{Price: 1299}, {Price: 1299}}
	assert.Equal(t, int64(2598), SumProductPrices(products))
}

func TestFormatMinorUnits(t *testing.T) {
	tests := map[int64]string{
		0:        "0.00",
		5:        "0.05",
		50:       "0.50",
		3500:     "35.00",
		123456:   "1234.56",
		-50:      "-0.50",
		99999999: "999999.99",
	}
	for in, want := range tests {
		assert.Equal(t, want, FormatMinorUnits(in), "amount %d", in)
	}
}

func TestFormatEuro(t *testing.T) {
	assert.Equal(t, "€35,00", FormatEuro(3500))
	assert.Equal(t, "€0,99", FormatEuro(99))
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "45min", FormatDuration(45))
	assert.Equal(t, "1h", FormatDuration(60))
	assert.Equal(t, "1h 30min", FormatDuration(90))
	assert.Equal(t, "2h 5min", FormatDuration(125))
}
