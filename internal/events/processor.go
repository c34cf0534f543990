package events

import (
	"errors"
	"sync"

	"github.com/hashicorp/go-hclog"
	"github.com/paklog/product-catalog/internal/domain"
)

// Processor bridges the synchronous persistence step and the asynchronous
// publication step. Publish failures never roll back or block the business
// operation that triggered them; they are logged and otherwise absorbed here.
//
// Delivery is best-effort with a single attempt per event. Reliability
// against transient broker failures is the publisher's job.
type Processor struct {
	publisher Publisher
	logger    hclog.Logger
	batches   chan []domain.DomainEvent
	wg        sync.WaitGroup
	once      sync.Once
}

// NewProcessor starts a fixed-size worker pool draining queued event batches.
func NewProcessor(publisher Publisher, logger hclog.Logger, workers, queueSize int) *Processor {
	if workers <= 0 {
		workers = 4
	}
	if queueSize <= 0 {
		queueSize = 64
	}
	p := &Processor{
		publisher: publisher,
		logger:    logger,
		batches:   make(chan []domain.DomainEvent, queueSize),
	}
	for i := 0; i < workers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
	return p
}

// ProcessAndClear snapshots the aggregate's pending events, clears its buffer
// and hands the snapshot to the worker pool. It returns without waiting for
// publication. Must not be called after Close.
func (p *Processor) ProcessAndClear(product *domain.Product) {
	snapshot := product.DrainEvents()
	product.ClearEvents()
	if len(snapshot) == 0 {
		return
	}

	select {
	case p.batches <- snapshot:
	default:
		// The queue is full. Publishing on a fresh goroutine keeps the
		// business operation from blocking during event bursts.
		p.logger.Warn("Event queue full, publishing batch out of pool", "batch_size", len(snapshot))
		p.wg.Add(1)
		go func() {
			defer p.wg.Done()
			p.publishBatch(snapshot)
		}()
	}
}

// Close stops accepting batches and waits for in-flight publications.
func (p *Processor) Close() error {
	p.once.Do(func() {
		close(p.batches)
	})
	p.wg.Wait()
	return nil
}

func (p *Processor) worker() {
	defer p.wg.Done()
	for batch := range p.batches {
		p.publishBatch(batch)
	}
}

// publishBatch publishes events one at a time, in the order the aggregate
// recorded them. The first failure aborts the rest of the batch.
func (p *Processor) publishBatch(batch []domain.DomainEvent) {
	p.logger.Debug("Publishing domain events", "count", len(batch))

	for _, event := range batch {
		if err := p.publishOne(event); err != nil {
			p.logger.Error("Failed to publish domain events batch",
				"batch_size", len(batch),
				"error", err)
			return
		}
	}

	p.logger.Debug("Successfully published domain events", "count", len(batch))
}

func (p *Processor) publishOne(event domain.DomainEvent) error {
	if err := p.publisher.Publish(event); err != nil {
		publishErr := &PublishError{
			EventType: event.EventType(),
			EventID:   event.EventID(),
			Err:       err,
		}
		p.logger.Error("Failed to publish domain event",
			"event_type", publishErr.EventType,
			"event_id", publishErr.EventID,
			"error", errors.Unwrap(publishErr))
		return publishErr
	}
	p.logger.Debug("Published domain event",
		"event_type", event.EventType(),
		"event_id", event.EventID())
	return nil
}
