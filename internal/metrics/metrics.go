// Package metrics provides Prometheus metrics collection for the cart service.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestDuration tracks HTTP request duration by method, path, and status code.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status_code"},
	)

	// HTTPRequestTotal tracks total HTTP requests by method, path, and status code.
	HTTPRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	// CartMutationsTotal tracks optimistic cart mutations by operation and outcome.
	CartMutationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cart_mutations_total",
			Help: "Total number of optimistic cart mutations",
		},
		[]string{"operation", "outcome"},
	)

	// CartRollbacksTotal tracks snapshot rollbacks after remote failures.
	CartRollbacksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cart_rollbacks_total",
			Help: "Total number of cart snapshot rollbacks",
		},
		[]string{"operation"},
	)

	// CartDebounceCoalescedTotal counts quantity updates absorbed by the debounce window.
	CartDebounceCoalescedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "cart_debounce_coalesced_total",
			Help: "Total number of quantity updates coalesced into a pending remote call",
		},
	)

	// GatewayRequestDuration tracks remote cart gateway call duration by operation.
	GatewayRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "cart_gateway_request_duration_seconds",
			Help:    "Remote cart gateway request duration in seconds",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0},
		},
		[]string{"operation"},
	)

	// GatewayRequestsTotal tracks remote cart gateway calls by operation and outcome.
	GatewayRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cart_gateway_requests_total",
			Help: "Total number of remote cart gateway requests",
		},
		[]string{"operation", "outcome"},
	)

	// CatalogCacheOperationsTotal tracks product cache hits and misses.
	CatalogCacheOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_cache_operations_total",
			Help: "Total number of catalog product cache operations",
		},
		[]string{"operation", "result"},
	)
)

// PrometheusMiddleware returns a Gin middleware that collects HTTP metrics.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		c.Next()

		duration := time.Since(start).Seconds()
		statusCode := strconv.Itoa(c.Writer.Status())
		method := c.Request.Method

		HTTPRequestDuration.WithLabelValues(method, path, statusCode).Observe(duration)
		HTTPRequestTotal.WithLabelValues(method, path, statusCode).Inc()
	}
}

// RecordCartMutation records the outcome of an optimistic cart mutation.
func RecordCartMutation(operation, outcome string) {
	CartMutationsTotal.WithLabelValues(operation, outcome).Inc()
}

// RecordRollback records a snapshot rollback for the given operation.
func RecordRollback(operation string) {
	CartRollbacksTotal.WithLabelValues(operation).Inc()
}

// RecordGatewayRequest records one remote gateway call.
func RecordGatewayRequest(operation string, duration time.Duration, err error) {
	outcome := "success"
	if err != nil {
		outcome = "failure"
	}
	GatewayRequestDuration.WithLabelValues(operation).Observe(duration.Seconds())
	GatewayRequestsTotal.WithLabelValues(operation, outcome).Inc()
}

// RecordCatalogCacheOperation records a product cache hit or miss.
func RecordCatalogCacheOperation(operation, result string) {
	CatalogCacheOperationsTotal.WithLabelValues(operation, result).Inc()
}
