package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors of the review service.
type Metrics struct {
	EntitiesCreated *prometheus.CounterVec
	RuleRejections  *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	LookupFailures  prometheus.Counter
}

// New registers the collectors with reg. Pass prometheus.DefaultRegisterer in
// production and a fresh registry in tests.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		EntitiesCreated: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "beerreview_entities_created_total",
			Help: "Total number of entities created, by entity type",
		}, []string{"entity"}),
		RuleRejections: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "beerreview_rule_rejections_total",
			Help: "Total number of writes rejected by a rate limit or uniqueness rule",
		}, []string{"entity", "kind"}),
		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "beerreview_http_request_duration_seconds",
			Help:    "HTTP request latency by route and status",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
		LookupFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "beerreview_lookup_failures_total",
			Help: "Total number of failed external beer lookups",
		}),
	}
}

func (m *Metrics) IncrementCreated(entity string) {
	if m == nil {
		return
	}

	m.EntitiesCreated.WithLabelValues(entity).Inc()
}

func (m *Metrics) IncrementRejected(entity string, kind string) {
	if m == nil {
		return
	}

	m.RuleRejections.WithLabelValues(entity, kind).Inc()
}

func (m *Metrics) ObserveRequest(method, route, status string, elapsed time.Duration) {
	if m == nil {
		return
	}

	m.RequestDuration.WithLabelValues(method, route, status).Observe(elapsed.Seconds())
}

func (m *Metrics) IncrementLookupFailures() {
	if m == nil {
		return
	}

	m.LookupFailures.Inc()
}
