package events

import (
	"sync"

	"github.com/hashicorp/go-hclog"
	"github.com/paklog/product-catalog/internal/domain"
)

// Subscriber is a channel that transports published domain events.
type Subscriber chan domain.DomainEvent

// Bus fans published domain events out to in-process subscribers, such as the
// websocket transport. Broadcast never blocks: events for a subscriber whose
// buffer is full are dropped.
type Bus struct {
	subscribers map[Subscriber]struct{}
	mutex       sync.RWMutex
	logger      hclog.Logger
}

func NewBus(logger hclog.Logger) *Bus {
	return &Bus{
		subscribers: make(map[Subscriber]struct{}),
		logger:      logger,
	}
}

func (b *Bus) Subscribe() Subscriber {
	ch := make(Subscriber, 100)
	b.mutex.Lock()
	b.subscribers[ch] = struct{}{}
	b.mutex.Unlock()
	return ch
}

func (b *Bus) Unsubscribe(ch Subscriber) {
	b.mutex.Lock()
	_, ok := b.subscribers[ch]
	delete(b.subscribers, ch)
	b.mutex.Unlock()
	if ok {
		close(ch)
	}
}

// Broadcast delivers the event to every registered subscriber.
func (b *Bus) Broadcast(event domain.DomainEvent) {
	b.mutex.RLock()
	defer b.mutex.RUnlock()
	for subscriber := range b.subscribers {
		select {
		case subscriber <- event:
		default:
			b.logger.Warn("Dropping event for slow subscriber",
				"event_type", event.EventType(),
				"event_id", event.EventID())
		}
	}
}
