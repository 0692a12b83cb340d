package middleware

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/carmart/marketplace-api/internal/api/pipeline"
)

const maxBodyBytes = 1 << 20

// BodyParser captures the JSON body of mutating requests into the context
// before any handler runs. A body that is not valid JSON ends the request
// with a 400; requests without a JSON content type pass through untouched.
func BodyParser(c *pipeline.Context, next func()) {
	method := c.Request.Method
	isMutating := method == http.MethodPost || method == http.MethodPut || method == http.MethodPatch
	contentType := c.Request.Header.Get("Content-Type")

	if !isMutating || !strings.HasPrefix(contentType, "application/json") {
		next()
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(c.Response, c.Request.Body, maxBodyBytes))
	if err != nil {
		c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid JSON body"})
		return
	}
	if len(body) > 0 && !json.Valid(body) {
		c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid JSON body"})
		return
	}

	c.Body = body
	next()
}
