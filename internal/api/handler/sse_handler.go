package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/carmart/marketplace-api/internal/api/metrics"
	"github.com/carmart/marketplace-api/internal/api/pipeline"
	"github.com/carmart/marketplace-api/internal/infrastructure/events"
)

// SSEHandler streams purchase events to long-lived connections. Each
// connection is one broker subscription; there is no replay, a client that
// connects after a purchase misses its event.
type SSEHandler struct {
	broker *events.Broker
}

func NewSSEHandler(broker *events.Broker) *SSEHandler {
	return &SSEHandler{broker: broker}
}

// Stream handles GET /sse.
func (h *SSEHandler) Stream(c *pipeline.Context, _ func()) {
	flusher, ok := c.Response.(http.Flusher)
	if !ok {
		c.JSON(http.StatusInternalServerError, errorResponse{Error: "streaming unsupported"})
		return
	}

	head := c.Response.Header()
	head.Set("Content-Type", "text/event-stream")
	head.Set("Cache-Control", "no-cache")
	head.Set("Connection", "keep-alive")
	c.Response.WriteHeader(http.StatusOK)
	flusher.Flush()

	sub := h.broker.Subscribe()
	defer h.broker.Unsubscribe(sub)

	metrics.SSESubscribers.Inc()
	defer metrics.SSESubscribers.Dec()

	for {
		select {
		case <-c.Request.Context().Done():
			return
		case event, ok := <-sub.C:
			if !ok {
				return
			}
			payload, err := json.Marshal(event)
			if err != nil {
				c.Log.Error().Err(err).Msg("failed to marshal purchase event")
				continue
			}
			if _, err := fmt.Fprintf(c.Response, "data: %s\n\n", payload); err != nil {
				return
			}
			flusher.Flush()
		}
	}
}
