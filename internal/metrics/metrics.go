package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	ChargesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "charges_total",
			Help: "Charge requests by result",
		},
		[]string{"result"},
	)

	PaymentsInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "payments_in_flight",
			Help: "Payment requests published but not yet settled by the dispatcher",
		},
	)

	GatewayFallbackTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "gateway_fallback_total",
			Help: "Charges that fell back to the synchronous gateway",
		},
	)

	ConfirmationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "payment_confirmations_total",
			Help: "Payment confirmations consumed by result",
		},
		[]string{"status"},
	)

	ChargeDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "charge_duration_seconds",
			Help:    "Time spent accepting a charge request",
			Buckets: prometheus.DefBuckets,
		},
	)
)

func RegisterMetrics() {
	prometheus.MustRegister(
		ChargesTotal,
		PaymentsInFlight,
		GatewayFallbackTotal,
		ConfirmationsTotal,
		ChargeDuration,
	)
}

// RegisterPendingAttemptsGauge wires the ledger's pending count into a gauge.
// Separate from RegisterMetrics because the value function needs a live
// database handle.
func RegisterPendingAttemptsGauge(count func() float64) {
	prometheus.MustRegister(prometheus.NewGaugeFunc(
		prometheus.GaugeOpts{
			Name: "subscription_attempts_pending",
			Help: "Subscription attempts awaiting a payment outcome",
		},
		count,
	))
}
