package middleware

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/carmart/marketplace-api/internal/api/pipeline"
)

// Logging emits one structured line per completed request.
func Logging(log zerolog.Logger) pipeline.Stage {
	return func(c *pipeline.Context, next func()) {
		rec := &statusRecorder{ResponseWriter: c.Response}
		c.Response = rec
		start := time.Now()

		next()

		log.Info().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", rec.status).
			Dur("duration", time.Since(start)).
			Msg("request")
	}
}
