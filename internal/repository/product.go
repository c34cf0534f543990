package repository

import (
	"context"

	"github.com/paklog/product-catalog/internal/domain"
)

// ProductRepository is the persistence port consumed by the application
// services. Save owns the optimistic-concurrency version: it assigns the
// version on insert and bumps it on update, failing with
// domain.ErrVersionConflict when the stored version has moved on.
// Absent products surface as domain.ErrProductNotFound.
type ProductRepository interface {
	Save(ctx context.Context, product *domain.Product) (*domain.Product, error)
	FindBySku(ctx context.Context, sku domain.SKU) (*domain.Product, error)
	FindAll(ctx context.Context, offset, limit int64) ([]*domain.Product, int64, error)
	ExistsBySku(ctx context.Context, sku domain.SKU) (bool, error)
	Delete(ctx context.Context, product *domain.Product) error
	Count(ctx context.Context) (int64, error)
}
