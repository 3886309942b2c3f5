package metrics

import "github.com/prometheus/client_golang/prometheus"

// BookingMetrics exposes counters/histograms for the booking flow.
type BookingMetrics struct {
	slotSearches   *prometheus.CounterVec
	slotsReturned  prometheus.Histogram
	checkouts      *prometheus.CounterVec
	paymentIntents *prometheus.CounterVec
	pointsAwarded  prometheus.Counter
}

func NewBookingMetrics(reg prometheus.Registerer) *BookingMetrics {
	m := &BookingMetrics{
		slotSearches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "salonbook",
			Subsystem: "booking",
			Name:      "slot_searches_total",
			Help:      "Total availability lookups",
		}, []string{"status"}),
		slotsReturned: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "salonbook",
			Subsystem: "booking",
			Name:      "slots_returned",
			Help:      "Number of free slots returned per lookup",
			Buckets:   []float64{0, 1, 5, 10, 20, 40, 80},
		}),
		checkouts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "salonbook",
			Subsystem: "booking",
			Name:      "checkouts_total",
			Help:      "Checkout attempts by payment method and outcome",
		}, []string{"payment_method", "status"}),
		paymentIntents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "salonbook",
			Subsystem: "payments",
			Name:      "intents_total",
			Help:      "Stripe payment intents created",
		}, []string{"status"}),
		pointsAwarded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "salonbook",
			Subsystem: "loyalty",
			Name:      "points_awarded_total",
			Help:      "Loyalty points credited to customers",
		}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.slotSearches, m.slotsReturned, m.checkouts, m.paymentIntents, m.pointsAwarded)
	return m
}

func (m *BookingMetrics) ObserveSlotSearch(status string, slots int) {
	if m == nil {
		return
	}
	m.slotSearches.WithLabelValues(status).Inc()
	if status == "ok" {
		m.slotsReturned.Observe(float64(slots))
	}
}

func (m *BookingMetrics) ObserveCheckout(paymentMethod, status string) {
	if m == nil {
		return
	}
	m.checkouts.WithLabelValues(paymentMethod, status).Inc()
}

func (m *BookingMetrics) ObservePaymentIntent(status string) {
	if m == nil {
		return
	}
	m.paymentIntents.WithLabelValues(status).Inc()
}

func (m *BookingMetrics) AddPointsAwarded(points int) {
	if m == nil || points <= 0 {
		return
	}
	m.pointsAwarded.Add(float64(points))
}
