package router

import (
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "citynav_http_requests_total",
		Help: "Total HTTP requests by method, path and status code",
	}, []string{"method", "path", "code"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "citynav_http_request_duration_seconds",
		Help:    "HTTP request duration in seconds",
		Buckets: prometheus.ExponentialBuckets(0.0001, 2, 14), // 0.1ms to ~800ms
	}, []string{"method", "path"})
)

var knownPaths = map[string]bool{
	"/api/cities":        true,
	"/api/roads":         true,
	"/api/computeRoutes": true,
	"/api/snapRoute":     true,
	"/api/ws":            true,
	"/metrics":           true,
	"/healthz":           true,
}

// metricPath. bounded label for a request path, unknown paths share one label
func metricPath(path string) string {
	switch {
	case knownPaths[path]:
		return path
	case strings.HasPrefix(path, "/doc/"):
		return "/doc"
	case strings.HasPrefix(path, "/debug/pprof/"):
		return "/debug/pprof"
	default:
		return "other"
	}
}
