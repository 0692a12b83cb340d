package handler

import (
	"net/http"

	"github.com/carmart/marketplace-api/internal/api/pipeline"
)

// Health answers the liveness probe.
func Health(c *pipeline.Context, _ func()) {
	c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
