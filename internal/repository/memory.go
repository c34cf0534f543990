package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/paklog/product-catalog/internal/domain"
)

// productRecord is the stored snapshot of an aggregate. The repository never
// hands out the instance it was given; every read rehydrates a fresh copy so
// aggregates stay exclusively owned by their business operation.
type productRecord struct {
	sku        domain.SKU
	title      string
	dimensions *domain.Dimensions
	attributes domain.Attributes
	createdAt  time.Time
	updatedAt  time.Time
	version    int64
}

type memoryProductRepository struct {
	records map[string]productRecord
	mutex   sync.RWMutex
}

func NewMemoryProductRepository() ProductRepository {
	return &memoryProductRepository{
		records: make(map[string]productRecord),
	}
}

func (r *memoryProductRepository) Save(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	key := product.SKU().Value()
	stored, exists := r.records[key]

	if product.Version() == 0 {
		if exists {
			return nil, domain.ErrProductAlreadyExists
		}
	} else {
		if !exists {
			return nil, domain.ErrProductNotFound
		}
		if stored.version != product.Version() {
			return nil, domain.ErrVersionConflict
		}
	}

	record := snapshot(product)
	record.version = product.Version() + 1
	r.records[key] = record

	return rehydrate(record), nil
}

func (r *memoryProductRepository) FindBySku(ctx context.Context, sku domain.SKU) (*domain.Product, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	record, ok := r.records[sku.Value()]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	return rehydrate(record), nil
}

func (r *memoryProductRepository) FindAll(ctx context.Context, offset, limit int64) ([]*domain.Product, int64, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	keys := make([]string, 0, len(r.records))
	for key := range r.records {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	total := int64(len(keys))
	if offset >= total {
		return nil, total, nil
	}

	end := offset + limit
	if end > total {
		end = total
	}

	products := make([]*domain.Product, 0, end-offset)
	for _, key := range keys[offset:end] {
		products = append(products, rehydrate(r.records[key]))
	}
	return products, total, nil
}

func (r *memoryProductRepository) ExistsBySku(ctx context.Context, sku domain.SKU) (bool, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	_, ok := r.records[sku.Value()]
	return ok, nil
}

func (r *memoryProductRepository) Delete(ctx context.Context, product *domain.Product) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	key := product.SKU().Value()
	if _, ok := r.records[key]; !ok {
		return domain.ErrProductNotFound
	}
	delete(r.records, key)
	return nil
}

func (r *memoryProductRepository) Count(ctx context.Context) (int64, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	return int64(len(r.records)), nil
}

func snapshot(product *domain.Product) productRecord {
	return productRecord{
		sku:        product.SKU(),
		title:      product.Title(),
		dimensions: product.Dimensions(),
		attributes: product.Attributes(),
		createdAt:  product.CreatedAt(),
		updatedAt:  product.UpdatedAt(),
		version:    product.Version(),
	}
}

func rehydrate(record productRecord) *domain.Product {
	return domain.RehydrateProduct(
		record.sku,
		record.title,
		record.dimensions,
		record.attributes,
		record.createdAt,
		record.updatedAt,
		record.version,
	)
}
