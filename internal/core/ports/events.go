package ports

import "github.com/carmart/marketplace-api/internal/core/domain"

// EventPublisher is the fan-out point for purchase events. Publish must never
// block the caller; delivery to any one subscriber is best-effort.
type EventPublisher interface {
	Publish(event domain.PurchaseEvent)
}
