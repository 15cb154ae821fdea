package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector exposes screening counters to Prometheus.
type Collector struct {
	registry          *prometheus.Registry
	screeningsTotal   *prometheus.CounterVec
	riskScores        prometheus.Histogram
	screeningDuration prometheus.Histogram
	rulesReplacements prometheus.Counter
}

// NewCollector registers the screening metrics on a fresh registry.
func NewCollector() *Collector {
	registry := prometheus.NewRegistry()

	return &Collector{
		registry: registry,
		screeningsTotal: promauto.With(registry).NewCounterVec(prometheus.CounterOpts{
			Name: "screenings_total",
			Help: "Total number of screened transactions by decision",
		}, []string{"decision"}),
		riskScores: promauto.With(registry).NewHistogram(prometheus.HistogramOpts{
			Name:    "screening_risk_score",
			Help:    "Distribution of aggregate risk scores",
			Buckets: []float64{0, 20, 40, 60, 80, 100},
		}),
		screeningDuration: promauto.With(registry).NewHistogram(prometheus.HistogramOpts{
			Name:    "screening_duration_seconds",
			Help:    "Time taken to screen a transaction",
			Buckets: prometheus.DefBuckets,
		}),
		rulesReplacements: promauto.With(registry).NewCounter(prometheus.CounterOpts{
			Name: "rules_config_replacements_total",
			Help: "Number of rules configuration replacements applied",
		}),
	}
}

// ObserveScreening records the outcome of one screening.
func (c *Collector) ObserveScreening(decision string, riskScore int, duration time.Duration) {
	c.screeningsTotal.WithLabelValues(decision).Inc()
	c.riskScores.Observe(float64(riskScore))
	c.screeningDuration.Observe(duration.Seconds())
}

// ObserveRulesReplacement records a rules configuration swap.
func (c *Collector) ObserveRulesReplacement() {
	c.rulesReplacements.Inc()
}

// Handler returns the scrape endpoint handler for this registry.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
