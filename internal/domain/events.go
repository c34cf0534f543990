package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// DomainEvent is a fact recorded by the Product aggregate for external
// notification. The event id and timestamp are assigned when the event is
// constructed, not when it is published: OccurredOn is when the business fact
// happened, not when it reached the bus.
type DomainEvent interface {
	EventID() string
	OccurredOn() time.Time
	EventType() string
}

// Event type discriminators used for routing and serialization.
const (
	EventTypeProductCreated = "ProductCreated"
	EventTypeProductUpdated = "ProductUpdated"
	EventTypeProductDeleted = "ProductDeleted"
)

type eventHeader struct {
	id         string
	occurredOn time.Time
}

func newEventHeader() eventHeader {
	return eventHeader{
		id:         uuid.New().String(),
		occurredOn: time.Now().UTC(),
	}
}

func (h eventHeader) EventID() string {
	return h.id
}

func (h eventHeader) OccurredOn() time.Time {
	return h.occurredOn
}

// ProductCreated is emitted once when a product is first added to the catalog.
type ProductCreated struct {
	eventHeader
	sku   SKU
	title string
}

func NewProductCreated(sku SKU, title string) ProductCreated {
	return ProductCreated{eventHeader: newEventHeader(), sku: sku, title: title}
}

func (e ProductCreated) EventType() string { return EventTypeProductCreated }
func (e ProductCreated) SKU() SKU          { return e.sku }
func (e ProductCreated) Title() string     { return e.title }

func (e ProductCreated) MarshalJSON() ([]byte, error) {
	return json.Marshal(eventEnvelope{
		EventID:    e.id,
		OccurredOn: e.occurredOn,
		EventType:  e.EventType(),
		SKU:        e.sku.Value(),
		Title:      e.title,
	})
}

// ProductUpdated is emitted for every real mutation of an existing product.
type ProductUpdated struct {
	eventHeader
	sku   SKU
	title string
}

func NewProductUpdated(sku SKU, title string) ProductUpdated {
	return ProductUpdated{eventHeader: newEventHeader(), sku: sku, title: title}
}

func (e ProductUpdated) EventType() string { return EventTypeProductUpdated }
func (e ProductUpdated) SKU() SKU          { return e.sku }
func (e ProductUpdated) Title() string     { return e.title }

func (e ProductUpdated) MarshalJSON() ([]byte, error) {
	return json.Marshal(eventEnvelope{
		EventID:    e.id,
		OccurredOn: e.occurredOn,
		EventType:  e.EventType(),
		SKU:        e.sku.Value(),
		Title:      e.title,
	})
}

// ProductDeleted is emitted when a product is marked for deletion.
type ProductDeleted struct {
	eventHeader
	sku SKU
}

func NewProductDeleted(sku SKU) ProductDeleted {
	return ProductDeleted{eventHeader: newEventHeader(), sku: sku}
}

func (e ProductDeleted) EventType() string { return EventTypeProductDeleted }
func (e ProductDeleted) SKU() SKU          { return e.sku }

func (e ProductDeleted) MarshalJSON() ([]byte, error) {
	return json.Marshal(eventEnvelope{
		EventID:    e.id,
		OccurredOn: e.occurredOn,
		EventType:  e.EventType(),
		SKU:        e.sku.Value(),
	})
}

// eventEnvelope is the wire shape shared by all event variants.
type eventEnvelope struct {
	EventID    string    `json:"event_id"`
	OccurredOn time.Time `json:"occurred_on"`
	EventType  string    `json:"event_type"`
	SKU        string    `json:"sku"`
	Title      string    `json:"title,omitempty"`
}
