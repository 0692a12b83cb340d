// Package events implements the in-process purchase-event broadcaster: one
// publish point fanning out to the set of currently-open streaming
// connections. There is no replay buffer; a subscriber that connects after an
// event was published never sees it.
package events

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/carmart/marketplace-api/internal/core/domain"
)

const subscriberBuffer = 16

// Subscription is one live subscriber channel. Receive from C until the
// owning connection closes, then hand the subscription back via Unsubscribe.
type Subscription struct {
	id uint64
	C  <-chan domain.PurchaseEvent
	ch chan domain.PurchaseEvent
}

// Broker owns the subscriber set. It is shared process-wide: the purchase
// path publishes into it and the SSE handler subscribes connections to it.
type Broker struct {
	log zerolog.Logger

	mu   sync.Mutex
	next uint64
	subs map[uint64]chan domain.PurchaseEvent
}

func NewBroker(log zerolog.Logger) *Broker {
	return &Broker{
		log:  log,
		subs: make(map[uint64]chan domain.PurchaseEvent),
	}
}

// Subscribe registers a new long-lived subscriber channel.
func (b *Broker) Subscribe() *Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.next++
	ch := make(chan domain.PurchaseEvent, subscriberBuffer)
	b.subs[b.next] = ch
	return &Subscription{id: b.next, C: ch, ch: ch}
}

// Unsubscribe removes sub from the set and closes its channel. Called by the
// subscriber's connection teardown, never by the publisher. Idempotent.
func (b *Broker) Unsubscribe(sub *Subscription) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.subs[sub.id]; !ok {
		return
	}
	delete(b.subs, sub.id)
	close(sub.ch)
}

// Publish delivers event to every live subscriber. Delivery is independent
// per subscriber and never blocks the publisher: a subscriber whose buffer is
// full simply misses the event.
func (b *Broker) Publish(event domain.PurchaseEvent) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for id, ch := range b.subs {
		select {
		case ch <- event:
		default:
			b.log.Warn().Uint64("subscriber_id", id).Str("car_id", event.CarID).Msg("subscriber buffer full, event dropped")
		}
	}
}

// SubscriberCount reports the current number of live subscribers.
func (b *Broker) SubscriberCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs)
}
