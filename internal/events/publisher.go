package events

import (
	"encoding/json"
	"fmt"

	"github.com/hashicorp/go-hclog"
	"github.com/paklog/product-catalog/internal/domain"
)

// Publisher delivers a single domain event to the external bus. Low-level
// retry and idempotence belong to the implementation; the processor calls
// Publish exactly once per drained event.
type Publisher interface {
	Publish(event domain.DomainEvent) error
}

// PublishError wraps a failed publish attempt with the identity of the event
// that could not be delivered.
type PublishError struct {
	EventType string
	EventID   string
	Err       error
}

func (e *PublishError) Error() string {
	return fmt.Sprintf("failed to publish event %s with ID %s: %v", e.EventType, e.EventID, e.Err)
}

func (e *PublishError) Unwrap() error {
	return e.Err
}

// LogPublisher writes events to the log instead of a broker. It backs local
// development and tests.
type LogPublisher struct {
	logger hclog.Logger
}

func NewLogPublisher(logger hclog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) Publish(event domain.DomainEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	p.logger.Info("Publishing domain event",
		"event_type", event.EventType(),
		"event_id", event.EventID(),
		"payload", string(payload))
	return nil
}

// BusPublisher fans events out to in-process subscribers via the Bus, which
// feeds the websocket stream.
type BusPublisher struct {
	bus *Bus
}

func NewBusPublisher(bus *Bus) *BusPublisher {
	return &BusPublisher{bus: bus}
}

func (p *BusPublisher) Publish(event domain.DomainEvent) error {
	p.bus.Broadcast(event)
	return nil
}

// MultiPublisher delivers each event to every wrapped publisher in order and
// stops at the first failure.
type MultiPublisher struct {
	publishers []Publisher
}

func NewMultiPublisher(publishers ...Publisher) *MultiPublisher {
	return &MultiPublisher{publishers: publishers}
}

func (p *MultiPublisher) Publish(event domain.DomainEvent) error {
	for _, pub := range p.publishers {
		if err := pub.Publish(event); err != nil {
			return err
		}
	}
	return nil
}
