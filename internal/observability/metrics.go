package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	totalPointsGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "healthpoints",
		Subsystem: "ledger",
		Name:      "total_points",
		Help:      "Current running total of the points ledger.",
	})
	transactionsCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "healthpoints",
		Subsystem: "ledger",
		Name:      "transactions_total",
		Help:      "Number of transactions appended, grouped by source.",
	}, []string{"source"})
	achievementsCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "healthpoints",
		Subsystem: "ledger",
		Name:      "achievements_unlocked_total",
		Help:      "Number of achievements unlocked since process start.",
	})
	lastMutationGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "healthpoints",
		Subsystem: "ledger",
		Name:      "last_mutation_timestamp_seconds",
		Help:      "Unix timestamp of the most recent accepted ledger mutation.",
	})
)

// Transaction sources reported to the transactions counter.
const (
	SourceActivity    = "activity"
	SourceAchievement = "achievement"
	SourceDirect      = "direct"
)

func init() {
	prometheus.MustRegister(totalPointsGauge, transactionsCounter, achievementsCounter, lastMutationGauge)
}

// RecordTransaction updates the counters after a transaction is appended.
func RecordTransaction(source string, totalPoints int, ts time.Time) {
	transactionsCounter.WithLabelValues(source).Inc()
	totalPointsGauge.Set(float64(totalPoints))
	if !ts.IsZero() {
		lastMutationGauge.Set(float64(ts.Unix()))
	}
}

// RecordAchievementUnlocked bumps the unlock counter.
func RecordAchievementUnlocked() {
	achievementsCounter.Inc()
}
