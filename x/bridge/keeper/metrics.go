package keeper

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// BridgeMetrics holds all Prometheus metrics for the bridge module
type BridgeMetrics struct {
	// Intent lifecycle
	IntentsCreated  prometheus.Counter
	IntentsMatched  prometheus.Counter
	IntentsExecuted prometheus.Counter
	IntentsSettled  prometheus.Counter
	IntentsFailed   prometheus.Counter

	// Escrow
	EscrowLocked   prometheus.Counter
	EscrowReleased prometheus.Counter
	EscrowRefunded prometheus.Counter

	// Solvers
	SolversRegistered prometheus.Counter
	SolversActive     prometheus.Gauge

	// Verification gate
	VerificationsQueued   prometheus.Counter
	VerificationsResolved prometheus.Counter
	VerificationsRejected prometheus.Counter
	VerificationsStale    prometheus.Counter
}

var (
	bridgeMetricsOnce sync.Once
	bridgeMetrics     *BridgeMetrics
)

// NewBridgeMetrics creates and registers bridge metrics (singleton pattern)
func NewBridgeMetrics() *BridgeMetrics {
	bridgeMetricsOnce.Do(func() {
		bridgeMetrics = &BridgeMetrics{
			IntentsCreated: promauto.NewCounter(prometheus.CounterOpts{
				Namespace: "silence",
				Subsystem: "bridge",
				Name:      "intents_created_total",
				Help:      "Total intents created",
			}),
			IntentsMatched: promauto.NewCounter(prometheus.CounterOpts{
				Namespace: "silence",
				Subsystem: "bridge",
				Name:      "intents_matched_total",
				Help:      "Total intents matched to a solver",
			}),
			IntentsExecuted: promauto.NewCounter(prometheus.CounterOpts{
				Namespace: "silence",
				Subsystem: "bridge",
				Name:      "intents_executed_total",
				Help:      "Total intents executed on the destination chain",
			}),
			IntentsSettled: promauto.NewCounter(prometheus.CounterOpts{
				Namespace: "silence",
				Subsystem: "bridge",
				Name:      "intents_settled_total",
				Help:      "Total intents settled",
			}),
			IntentsFailed: promauto.NewCounter(prometheus.CounterOpts{
				Namespace: "silence",
				Subsystem: "bridge",
				Name:      "intents_failed_total",
				Help:      "Total intents failed",
			}),
			EscrowLocked: promauto.NewCounter(prometheus.CounterOpts{
				Namespace: "silence",
				Subsystem: "bridge",
				Name:      "escrow_locked_total",
				Help:      "Total escrow lock operations",
			}),
			EscrowReleased: promauto.NewCounter(prometheus.CounterOpts{
				Namespace: "silence",
				Subsystem: "bridge",
				Name:      "escrow_released_total",
				Help:      "Total escrow release operations",
			}),
			EscrowRefunded: promauto.NewCounter(prometheus.CounterOpts{
				Namespace: "silence",
				Subsystem: "bridge",
				Name:      "escrow_refunded_total",
				Help:      "Total escrow refund operations",
			}),
			SolversRegistered: promauto.NewCounter(prometheus.CounterOpts{
				Namespace: "silence",
				Subsystem: "bridge",
				Name:      "solvers_registered_total",
				Help:      "Total solver registrations",
			}),
			SolversActive: promauto.NewGauge(prometheus.GaugeOpts{
				Namespace: "silence",
				Subsystem: "bridge",
				Name:      "solvers_active",
				Help:      "Solvers currently eligible for matching",
			}),
			VerificationsQueued: promauto.NewCounter(prometheus.CounterOpts{
				Namespace: "silence",
				Subsystem: "bridge",
				Name:      "verifications_queued_total",
				Help:      "Total verification requests queued with the gate",
			}),
			VerificationsResolved: promauto.NewCounter(prometheus.CounterOpts{
				Namespace: "silence",
				Subsystem: "bridge",
				Name:      "verifications_resolved_total",
				Help:      "Total verification callbacks resolved",
			}),
			VerificationsRejected: promauto.NewCounter(prometheus.CounterOpts{
				Namespace: "silence",
				Subsystem: "bridge",
				Name:      "verifications_rejected_total",
				Help:      "Total verification results rejected by the gate",
			}),
			VerificationsStale: promauto.NewCounter(prometheus.CounterOpts{
				Namespace: "silence",
				Subsystem: "bridge",
				Name:      "verifications_stale_total",
				Help:      "Pending verifications past the configured timeout",
			}),
		}
	})
	return bridgeMetrics
}
