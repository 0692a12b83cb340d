package middleware

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/carmart/marketplace-api/internal/api/pipeline"
)

// Recover converts a panic anywhere down the chain into a 500 response
// instead of killing the connection goroutine.
func Recover(log zerolog.Logger) pipeline.Stage {
	return func(c *pipeline.Context, next func()) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Error().
					Interface("panic", rec).
					Str("method", c.Request.Method).
					Str("path", c.Request.URL.Path).
					Msg("panic recovered")
				c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal server error"})
			}
		}()
		next()
	}
}
