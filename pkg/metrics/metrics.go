package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Visões do painel montadas, por estado de cada seção
	DashboardSections = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashboard_sections_total",
			Help: "Dashboard sections rendered, by section and status",
		},
		[]string{"section", "status"},
	)

	// Ids de cliente rejeitados antes de qualquer acesso a dados
	InvalidCustomerInput = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "dashboard_invalid_customer_input_total",
			Help: "Requests rejected because the customer id was not numeric",
		},
	)

	InsightBands = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashboard_insight_total",
			Help: "Insight messages emitted, by strategy and band",
		},
		[]string{"strategy", "band"},
	)

	DatasetLoadDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "dataset_load_duration_seconds",
			Help:    "Time spent loading forecast and recommendation tables",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"dataset", "source"},
	)

	DatasetLoadErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dataset_load_errors_total",
			Help: "Failed forecast and recommendation loads",
		},
		[]string{"dataset", "source"},
	)

	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "file_cache_hits_total",
			Help: "File cache hits",
		},
		[]string{"cache"},
	)

	CacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "file_cache_misses_total",
			Help: "File cache misses (first load, changed file or invalidated entry)",
		},
		[]string{"cache"},
	)

	CacheEvictions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "file_cache_evictions_total",
			Help: "File cache entries removed by invalidation or pruning",
		},
		[]string{"cache", "reason"},
	)

	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "HTTP requests served, by method and status code",
		},
		[]string{"method", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method"},
	)

	CacheRefreshRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_refresh_runs_total",
			Help: "Cache refresh job executions, by trigger and result",
		},
		[]string{"trigger", "result"},
	)
)
