package middleware

import (
	"strconv"
	"time"

	"github.com/carmart/marketplace-api/internal/api/metrics"
	"github.com/carmart/marketplace-api/internal/api/pipeline"
)

// Metrics records the request counter and duration histogram. Labelled by
// method and status only; raw paths would blow up label cardinality.
func Metrics() pipeline.Stage {
	return func(c *pipeline.Context, next func()) {
		rec := &statusRecorder{ResponseWriter: c.Response}
		c.Response = rec
		start := time.Now()

		next()

		metrics.RequestsTotal.WithLabelValues(c.Request.Method, strconv.Itoa(rec.status)).Inc()
		metrics.RequestDuration.WithLabelValues(c.Request.Method).Observe(time.Since(start).Seconds())
	}
}
