package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingMetricsCustomRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewBookingMetrics(reg)

	m.ObserveSlotSearch("ok", 12)
	m.ObserveSlotSearch("error", 0)
	m.ObserveCheckout("pay_now", "ok")
	m.ObservePaymentIntent("ok")
	m.AddPointsAwarded(35)
	m.AddPointsAwarded(-3)

	families, err := reg.Gather()
	require.NoError(t, err)

	values := map[string]float64{}
	for _, f := range families {
		for _, metric := range f.GetMetric() {
			if c := metric.GetCounter(); c != nil {
				values[f.GetName()] += c.GetValue()
			}
		}
	}
	assert.Equal(t, 2.0, values["salonbook_booking_slot_searches_total"])
	assert.Equal(t, 1.0, values["salonbook_booking_checkouts_total"])
	assert.Equal(t, 35.0, values["salonbook_loyalty_points_awarded_total"])
}

func TestBookingMetricsNilSafe(t *testing.T) {
	var m *BookingMetrics
	m.ObserveSlotSearch("ok", 1)
	m.ObserveCheckout("pay_in_store", "ok")
	m.ObservePaymentIntent("error")
	m.AddPointsAwarded(10)
}
