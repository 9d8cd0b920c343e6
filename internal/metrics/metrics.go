package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	cutoffEvaluation = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "urban_tiffin",
			Name:      "cutoff_evaluation_total",
			Help:      "Count of cutoff evaluations by action and decision.",
		},
		[]string{"action", "decision"},
	)

	configReload = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "urban_tiffin",
			Name:      "cutoff_config_reload_total",
			Help:      "Count of cutoff configuration reloads applied.",
		},
	)
)

// Register registers metrics (idempotent).
func Register() {
	once.Do(func() {
		prometheus.MustRegister(cutoffEvaluation, configReload)
	})
}

func IncEvaluation(action string, allowed bool) {
	decision := "denied"
	if allowed {
		decision = "allowed"
	}
	cutoffEvaluation.WithLabelValues(action, decision).Inc()
}

func IncConfigReload() {
	configReload.Inc()
}
