package middleware

import (
	"net/http"

	"github.com/carmart/marketplace-api/internal/api/pipeline"
)

// CORS sets permissive cross-origin headers and answers preflight requests
// directly, short-circuiting the rest of the chain.
func CORS(c *pipeline.Context, next func()) {
	h := c.Response.Header()
	h.Set("Access-Control-Allow-Origin", "*")
	h.Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
	h.Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

	if c.Request.Method == http.MethodOptions {
		c.NoContent(http.StatusNoContent)
		return
	}

	next()
}
