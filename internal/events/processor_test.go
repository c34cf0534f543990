package events

import (
	"errors"
	"sync"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/paklog/product-catalog/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakePublisher records published events and can be told to fail on a
// specific event type.
type fakePublisher struct {
	mutex      sync.Mutex
	published  []domain.DomainEvent
	failOnType string
}

func (p *fakePublisher) Publish(event domain.DomainEvent) error {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	if p.failOnType != "" && event.EventType() == p.failOnType {
		return errors.New("broker unavailable")
	}
	p.published = append(p.published, event)
	return nil
}

func (p *fakePublisher) events() []domain.DomainEvent {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	snapshot := make([]domain.DomainEvent, len(p.published))
	copy(snapshot, p.published)
	return snapshot
}

func testProduct(t *testing.T) *domain.Product {
	t.Helper()
	sku, err := domain.NewSKU("A-100")
	require.NoError(t, err)
	product, err := domain.NewProduct(sku, "Widget", nil, nil)
	require.NoError(t, err)
	return product
}

func TestProcessAndClearPublishesAndClears(t *testing.T) {
	publisher := &fakePublisher{}
	processor := NewProcessor(publisher, hclog.NewNullLogger(), 2, 8)

	product := testProduct(t)
	require.NoError(t, product.UpdateTitle("New Name"))

	processor.ProcessAndClear(product)

	// The aggregate's buffer is cleared synchronously
	assert.Empty(t, product.DrainEvents())

	require.NoError(t, processor.Close())

	published := publisher.events()
	require.Len(t, published, 2)
	assert.Equal(t, domain.EventTypeProductCreated, published[0].EventType())
	assert.Equal(t, domain.EventTypeProductUpdated, published[1].EventType())
}

func TestProcessAndClearEmptyBufferIsNoOp(t *testing.T) {
	publisher := &fakePublisher{}
	processor := NewProcessor(publisher, hclog.NewNullLogger(), 1, 4)

	product := testProduct(t)
	product.ClearEvents()

	processor.ProcessAndClear(product)
	require.NoError(t, processor.Close())

	assert.Empty(t, publisher.events())
}

func TestPublishFailureAbortsBatchButNotCaller(t *testing.T) {
	publisher := &fakePublisher{failOnType: domain.EventTypeProductUpdated}
	processor := NewProcessor(publisher, hclog.NewNullLogger(), 1, 4)

	product := testProduct(t)
	require.NoError(t, product.UpdateTitle("First"))
	require.NoError(t, product.UpdateTitle("Second"))

	// ProcessAndClear has no error return: publish failures cannot surface
	// into the business operation.
	processor.ProcessAndClear(product)
	assert.Empty(t, product.DrainEvents())

	require.NoError(t, processor.Close())

	// The Created event went out; the first Updated failed and the second
	// was never attempted.
	published := publisher.events()
	require.Len(t, published, 1)
	assert.Equal(t, domain.EventTypeProductCreated, published[0].EventType())
}

func TestProcessorHandlesQueueOverflow(t *testing.T) {
	publisher := &fakePublisher{}
	processor := NewProcessor(publisher, hclog.NewNullLogger(), 1, 1)

	var products []*domain.Product
	for i := 0; i < 10; i++ {
		products = append(products, testProduct(t))
	}
	for _, product := range products {
		processor.ProcessAndClear(product)
	}

	require.NoError(t, processor.Close())
	assert.Len(t, publisher.events(), 10)
}

func TestPublishErrorCarriesEventIdentity(t *testing.T) {
	cause := errors.New("broker unavailable")
	err := &PublishError{EventType: "ProductCreated", EventID: "abc-123", Err: cause}

	assert.Contains(t, err.Error(), "ProductCreated")
	assert.Contains(t, err.Error(), "abc-123")
	assert.ErrorIs(t, err, cause)
}
