package metrics

import "github.com/prometheus/client_golang/prometheus"

// BookingMetrics counts checkout and payment outcomes.
type BookingMetrics struct {
	checkouts *prometheus.CounterVec
	failures  *prometheus.CounterVec
	payments  *prometheus.CounterVec
}

func NewBookingMetrics(reg prometheus.Registerer) *BookingMetrics {
	if reg == nil {
		return &BookingMetrics{}
	}
	checkouts := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "checkout_completed_total",
		Help:      "Checkouts that produced a booking, by payment method.",
	}, []string{"method"})
	failures := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "checkout_failed_total",
		Help:      "Checkouts that failed, by reason.",
	}, []string{"reason"})
	payments := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "payment_confirmed_total",
		Help:      "Bookings marked paid, by confirmation channel.",
	}, []string{"via"})
	reg.MustRegister(checkouts, failures, payments)
	return &BookingMetrics{
		checkouts: checkouts,
		failures:  failures,
		payments:  payments,
	}
}

func (m *BookingMetrics) CheckoutCompleted(method string) {
	if m == nil || m.checkouts == nil {
		return
	}
	m.checkouts.WithLabelValues(normalizeLabel(method)).Inc()
}

func (m *BookingMetrics) CheckoutFailed(reason string) {
	if m == nil || m.failures == nil {
		return
	}
	m.failures.WithLabelValues(normalizeLabel(reason)).Inc()
}

func (m *BookingMetrics) PaymentConfirmed(via string) {
	if m == nil || m.payments == nil {
		return
	}
	m.payments.WithLabelValues(normalizeLabel(via)).Inc()
}
