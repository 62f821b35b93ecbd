package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"route", "method", "status"},
	)

	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)

	// DashboardFetchFailuresTotal cuenta los dashboards que se degradaron a
	// resultado vacío porque falló la lectura del store.
	DashboardFetchFailuresTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashboard_fetch_failures_total",
			Help: "Total number of dashboard computations served empty after a store read failure",
		},
		[]string{"dashboard"},
	)

	RateLimitedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "http_rate_limited_total",
			Help: "Total number of requests rejected by the rate limiter",
		},
	)
)

func init() {
	prometheus.MustRegister(HTTPRequestsTotal)
	prometheus.MustRegister(HTTPRequestDuration)
	prometheus.MustRegister(DashboardFetchFailuresTotal)
	prometheus.MustRegister(RateLimitedTotal)
}
