package domain

import (
	"fmt"
	"strings"
	"time"
)

// Product is the aggregate root and the single consistency boundary of the
// catalog. It is identified by its SKU alone and accumulates domain events as
// it is mutated; the events package drains and publishes them after a
// successful save.
//
// A Product instance is exclusively owned by the business operation that
// created or loaded it. It is not safe for concurrent mutation.
type Product struct {
	sku        SKU
	title      string
	dimensions *Dimensions
	attributes Attributes
	createdAt  time.Time
	updatedAt  time.Time
	version    int64

	events []DomainEvent
}

// NewProduct is the only way to obtain a brand-new aggregate. It validates
// the SKU and title, defaults absent attributes to non-hazmat, and records a
// single ProductCreated event.
func NewProduct(sku SKU, title string, dimensions *Dimensions, attributes *Attributes) (*Product, error) {
	if sku.IsZero() {
		return nil, ValidationError{Field: "sku", Message: "must not be blank"}
	}
	validTitle, err := validateTitle(title)
	if err != nil {
		return nil, err
	}

	attrs := DefaultAttributes()
	if attributes != nil {
		attrs = *attributes
	}

	now := time.Now().UTC()
	p := &Product{
		sku:        sku,
		title:      validTitle,
		dimensions: dimensions,
		attributes: attrs,
		createdAt:  now,
		updatedAt:  now,
		version:    0,
	}
	p.events = append(p.events, NewProductCreated(p.sku, p.title))
	return p, nil
}

// RehydrateProduct rebuilds an aggregate from persisted state. No events are
// recorded; the product existed already.
func RehydrateProduct(sku SKU, title string, dimensions *Dimensions, attributes Attributes,
	createdAt, updatedAt time.Time, version int64) *Product {
	return &Product{
		sku:        sku,
		title:      title,
		dimensions: dimensions,
		attributes: attributes,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
		version:    version,
	}
}

// UpdateTitle replaces the title if the trimmed new value differs from the
// current one. Re-setting the same title is a no-op: no event, no updatedAt
// change.
func (p *Product) UpdateTitle(newTitle string) error {
	validTitle, err := validateTitle(newTitle)
	if err != nil {
		return err
	}
	if p.title == validTitle {
		return nil
	}
	p.title = validTitle
	p.touch()
	return nil
}

// UpdateDimensions replaces the dimensions if they differ from the current
// ones. nil is a legal target and means "no dimensions recorded".
func (p *Product) UpdateDimensions(newDimensions *Dimensions) {
	if dimensionsEqual(p.dimensions, newDimensions) {
		return
	}
	p.dimensions = newDimensions
	p.touch()
}

// UpdateAttributes replaces the attributes if they differ from the current
// ones. nil collapses to the non-hazmat default rather than remaining unset.
func (p *Product) UpdateAttributes(newAttributes *Attributes) {
	attrs := DefaultAttributes()
	if newAttributes != nil {
		attrs = *newAttributes
	}
	if p.attributes == attrs {
		return
	}
	p.attributes = attrs
	p.touch()
}

// MarkForDeletion records a ProductDeleted event. The in-memory state is left
// intact; removing the product is the repository's job. Calling this twice
// records two events, deletion is expected to be a single terminal call.
func (p *Product) MarkForDeletion() {
	p.events = append(p.events, NewProductDeleted(p.sku))
}

func (p *Product) touch() {
	p.updatedAt = time.Now().UTC()
	p.events = append(p.events, NewProductUpdated(p.sku, p.title))
}

// DrainEvents returns a snapshot of the pending events without clearing them.
// It is always paired with ClearEvents by the event processor.
func (p *Product) DrainEvents() []DomainEvent {
	snapshot := make([]DomainEvent, len(p.events))
	copy(snapshot, p.events)
	return snapshot
}

// ClearEvents empties the pending event buffer.
func (p *Product) ClearEvents() {
	p.events = p.events[:0]
}

func (p *Product) SKU() SKU                { return p.sku }
func (p *Product) Title() string           { return p.title }
func (p *Product) Dimensions() *Dimensions { return p.dimensions }
func (p *Product) Attributes() Attributes  { return p.attributes }
func (p *Product) CreatedAt() time.Time    { return p.createdAt }
func (p *Product) UpdatedAt() time.Time    { return p.updatedAt }

// Version is the optimistic-concurrency counter. It is owned by the
// repository, not by business logic.
func (p *Product) Version() int64 { return p.version }

func (p *Product) SetVersion(version int64) { p.version = version }

// Equal reports whether two products are the same logical entity. Identity is
// the SKU alone, other fields do not participate.
func (p *Product) Equal(other *Product) bool {
	if other == nil {
		return false
	}
	return p.sku == other.sku
}

func (p *Product) String() string {
	return fmt.Sprintf("Product{sku=%s, title=%q, version=%d}", p.sku, p.title, p.version)
}

func validateTitle(title string) (string, error) {
	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		return "", ValidationError{Field: "title", Message: "must not be blank"}
	}
	return trimmed, nil
}

func dimensionsEqual(a, b *Dimensions) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
