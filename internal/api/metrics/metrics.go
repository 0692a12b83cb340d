// Package metrics defines the Prometheus metrics exposed by the marketplace
// API. It is the single source of truth for metric names, labels, and help
// strings; promauto registers everything with the default registry at init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "marketplace"

// RequestsTotal counts completed HTTP requests.
// Labels:
//   - method: HTTP method
//   - status: numeric response status (e.g. "200", "404")
var RequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests handled.",
	},
	[]string{"method", "status"},
)

// RequestDuration measures request handling time end-to-end.
var RequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP request handling.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"method"},
)

// PurchasesTotal counts purchase attempts by outcome.
// Label:
//   - result: "ok", "busy", "unavailable", "insufficient_funds", "not_found", "error"
var PurchasesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "purchases_total",
		Help:      "Total number of purchase attempts, by outcome.",
	},
	[]string{"result"},
)

// SSESubscribers tracks the number of currently-open event stream connections.
var SSESubscribers = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "sse_subscribers",
		Help:      "Current number of open event stream connections.",
	},
)
