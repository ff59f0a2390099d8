package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	TransactionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "card_transactions_total",
			Help: "Total card transactions processed, by operation and outcome",
		},
		[]string{"operation", "outcome"},
	)

	TransactionAmounts = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "card_transaction_amounts",
			Help:    "Distribution of transaction amounts in pesos",
			Buckets: prometheus.LinearBuckets(0, 50, 20),
		},
		[]string{"operation"},
	)

	FraudAlertsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fraud_alerts_total",
			Help: "Fraud alerts raised, by type and risk level",
		},
		[]string{"fraud_type", "risk_level"},
	)

	LockWaitSeconds = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "card_lock_wait_seconds",
			Help:    "Time spent acquiring the per-card resource lock",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 15),
		},
	)

	SuspendedCards = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "suspended_cards",
			Help: "Cards currently suspended by the fraud engine",
		},
	)
)

func RegisterMetrics() {
	prometheus.MustRegister(
		TransactionsTotal,
		TransactionAmounts,
		FraudAlertsTotal,
		LockWaitSeconds,
		SuspendedCards,
	)
}
