package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/subway/planner"
)

// Build metadata, set with -ldflags at release time.
var (
	Version   = "dev"
	GitCommit = "unknown"
)

var _ planner.Observer = (*Metrics)(nil)

type Metrics struct {
	SearchesTotal       *prometheus.CounterVec
	SearchExpansions    *prometheus.HistogramVec
	SearchFrontierPeak  *prometheus.HistogramVec
	SearchSeconds       *prometheus.HistogramVec
	RouteCacheHitsTotal *prometheus.CounterVec
}

func NewMetrics(registry *prometheus.Registry) *Metrics {
	metrics := &Metrics{
		SearchesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "subway_searches_total",
				Help: "Route queries by strategy and outcome",
			},
			[]string{"strategy", "outcome"},
		),
		SearchExpansions: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "subway_search_expansions",
				Help:    "Stations or paths expanded per successful route query",
				Buckets: prometheus.ExponentialBuckets(1, 4, 10),
			},
			[]string{"strategy"},
		),
		SearchFrontierPeak: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "subway_search_frontier_peak",
				Help:    "Largest frontier held by a successful distance search",
				Buckets: prometheus.ExponentialBuckets(1, 4, 10),
			},
			[]string{"strategy"},
		),
		SearchSeconds: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "subway_search_seconds",
				Help:    "Wall time of route queries",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"strategy"},
		),
		RouteCacheHitsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "subway_route_cache_total",
				Help: "Route cache lookups by result",
			},
			[]string{"result"},
		),
	}

	registry.MustRegister(
		metrics.SearchesTotal,
		metrics.SearchExpansions,
		metrics.SearchFrontierPeak,
		metrics.SearchSeconds,
		metrics.RouteCacheHitsTotal,
	)

	return metrics
}

// Observe records one route query.
func (m *Metrics) Observe(strategy, outcome string, expansions, peakFrontier int, elapsed time.Duration) {
	m.SearchesTotal.WithLabelValues(strategy, outcome).Inc()
	m.SearchSeconds.WithLabelValues(strategy).Observe(elapsed.Seconds())
	if outcome != planner.OutcomeFound {
		return
	}
	m.SearchExpansions.WithLabelValues(strategy).Observe(float64(expansions))
	if peakFrontier > 0 {
		m.SearchFrontierPeak.WithLabelValues(strategy).Observe(float64(peakFrontier))
	}
}

// CacheLookup records a route cache hit or miss.
func (m *Metrics) CacheLookup(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	m.RouteCacheHitsTotal.WithLabelValues(result).Inc()
}

// NewRegistry returns a registry carrying the Go runtime and process
// collectors and a build info gauge.
func NewRegistry() *prometheus.Registry {
	registry := prometheus.NewRegistry()

	buildInfo := prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "subway_build_info",
			Help: "Build metadata",
		},
		[]string{"version", "git_commit"},
	)

	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		buildInfo,
	)

	buildInfo.WithLabelValues(Version, GitCommit).Set(1)

	return registry
}

// Handler serves registry in the Prometheus exposition format.
func Handler(registry *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
}
