package middleware

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "storefront_http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path", "status"},
	)

	backendFallbacks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_backend_fallbacks_total",
			Help: "Catalog views served from the built-in fallback set",
		},
		[]string{"view"},
	)
)

// MetricsMiddleware collects request count and latency per route.
type MetricsMiddleware struct{}

// NewMetricsMiddleware creates a new metrics middleware.
func NewMetricsMiddleware() *MetricsMiddleware {
	return &MetricsMiddleware{}
}

// Handle records the request against the matched route path, not the raw
// URL, to keep the label cardinality bounded.
func (m *MetricsMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		err := next(c)
		if err != nil {
			// Echo only runs the error handler after the chain unwinds;
			// resolve it now so the recorded status is the one the client
			// receives. The Committed guard keeps it from writing twice.
			c.Error(err)
		}

		path := c.Path()
		if path == "" {
			path = c.Request().URL.Path
		}
		status := strconv.Itoa(c.Response().Status)

		httpRequestsTotal.WithLabelValues(c.Request().Method, path, status).Inc()
		httpRequestDuration.WithLabelValues(c.Request().Method, path, status).Observe(time.Since(start).Seconds())

		return err
	}
}

// RecordFallback counts a catalog view served from the fallback set.
func RecordFallback(view string) {
	backendFallbacks.WithLabelValues(view).Inc()
}
