package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	FieldErrorCode = "error_code"

	ValueNoError = ""

	Namespace      = "wifi_analytics"
	SubQuery       = "query"
	SubAggregation = "aggregation"
	SubStream      = "stream"
	SubReport      = "report"
	SubHTTP        = "http"
)

// ScanBuckets spans 50ms to about 7 minutes: a full pass over a multi-gigabyte access log
// takes minutes, a test fixture a few milliseconds.
var ScanBuckets = prometheus.ExponentialBuckets(0.05, 2, 14)

// CounterOpts is a type alias for prometheus.CounterOpts.
type CounterOpts = prometheus.CounterOpts

// HistogramOpts is a type alias for prometheus.HistogramOpts.
type HistogramOpts = prometheus.HistogramOpts

// NewCounterVec creates a new CounterVec with the given CounterOpts and label names.
// It is automatically registered with the default prometheus registry.
var NewCounterVec = promauto.NewCounterVec

// NewHistogramVec creates a new HistogramVec with the given HistogramOpts and label names.
// It is automatically registered with the default prometheus registry.
var NewHistogramVec = promauto.NewHistogramVec

// Handler serves the default registry, in OpenMetrics format when the scraper asks for it.
func Handler() http.Handler {
	return promhttp.HandlerFor(prometheus.DefaultGatherer, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	})
}
