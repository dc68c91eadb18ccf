// Package metrics provides Prometheus metrics collection for the quote service.
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

	// PriceCalculationsTotal tracks price calculations by pricing mode and status.
	PriceCalculationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "price_calculations_total",
			Help: "Total number of price calculations",
		},
		[]string{"mode", "status"},
	)

	// PriceCalculationDuration tracks price calculation duration.
	PriceCalculationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "price_calculation_duration_seconds",
			Help:    "Price calculation duration in seconds",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
		},
	)

	// ProviderQuotesTotal tracks carrier provider calls by provider and outcome.
	ProviderQuotesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "provider_quotes_total",
			Help: "Total number of carrier provider quote calls",
		},
		[]string{"provider", "outcome"},
	)

	// ProviderQuoteDuration tracks carrier provider call duration by provider.
	ProviderQuoteDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "provider_quote_duration_seconds",
			Help:    "Carrier provider quote call duration in seconds",
			Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0},
		},
		[]string{"provider"},
	)

	// PackingFallbacksTotal counts items that fit no configured box type.
	PackingFallbacksTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "packing_fallbacks_total",
			Help: "Total number of items packed into the fallback box",
		},
	)

	// CacheOperationsTotal tracks cache operations by cache, operation and result.
	CacheOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_operations_total",
			Help: "Total number of cache operations",
		},
		[]string{"cache", "operation", "result"},
	)

	// CacheSize tracks current in-process result cache size.
	CacheSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cache_size",
			Help: "Current result cache size",
		},
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

// RecordPriceCalculation records metrics for one price calculation.
func RecordPriceCalculation(mode string, duration time.Duration, status string) {
	PriceCalculationDuration.Observe(duration.Seconds())
	PriceCalculationsTotal.WithLabelValues(mode, status).Inc()
}

// RecordProviderQuote records metrics for one provider quote call.
func RecordProviderQuote(provider string, duration time.Duration, outcome string) {
	ProviderQuoteDuration.WithLabelValues(provider).Observe(duration.Seconds())
	ProviderQuotesTotal.WithLabelValues(provider, outcome).Inc()
}

// RecordPackingFallback counts one lossy fallback placement.
func RecordPackingFallback() {
	PackingFallbacksTotal.Inc()
}

// RecordCacheOperation records metrics for a cache operation.
func RecordCacheOperation(cache, operation, result string) {
	CacheOperationsTotal.WithLabelValues(cache, operation, result).Inc()
}
