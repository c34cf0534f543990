package repository

import (
	"context"
	"testing"

	"github.com/paklog/product-catalog/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProduct(t *testing.T, sku, title string) *domain.Product {
	t.Helper()
	s, err := domain.NewSKU(sku)
	require.NoError(t, err)
	product, err := domain.NewProduct(s, title, nil, nil)
	require.NoError(t, err)
	return product
}

func TestMemorySaveAssignsVersion(t *testing.T) {
	repo := NewMemoryProductRepository()
	ctx := context.Background()

	saved, err := repo.Save(ctx, newProduct(t, "A-100", "Widget"))
	require.NoError(t, err)
	assert.Equal(t, int64(1), saved.Version())

	require.NoError(t, saved.UpdateTitle("New Name"))
	saved2, err := repo.Save(ctx, saved)
	require.NoError(t, err)
	assert.Equal(t, int64(2), saved2.Version())
}

func TestMemorySaveRejectsDuplicateSKU(t *testing.T) {
	repo := NewMemoryProductRepository()
	ctx := context.Background()

	_, err := repo.Save(ctx, newProduct(t, "A-100", "Widget"))
	require.NoError(t, err)

	_, err = repo.Save(ctx, newProduct(t, "A-100", "Other"))
	assert.ErrorIs(t, err, domain.ErrProductAlreadyExists)
}

func TestMemorySaveDetectsVersionConflict(t *testing.T) {
	repo := NewMemoryProductRepository()
	ctx := context.Background()

	_, err := repo.Save(ctx, newProduct(t, "A-100", "Widget"))
	require.NoError(t, err)

	first, err := repo.FindBySku(ctx, mustSKU(t, "A-100"))
	require.NoError(t, err)
	second, err := repo.FindBySku(ctx, mustSKU(t, "A-100"))
	require.NoError(t, err)

	require.NoError(t, first.UpdateTitle("From first"))
	_, err = repo.Save(ctx, first)
	require.NoError(t, err)

	require.NoError(t, second.UpdateTitle("From second"))
	_, err = repo.Save(ctx, second)
	assert.ErrorIs(t, err, domain.ErrVersionConflict)
}

func TestMemoryFindBySku(t *testing.T) {
	repo := NewMemoryProductRepository()
	ctx := context.Background()

	_, err := repo.FindBySku(ctx, mustSKU(t, "A-100"))
	assert.ErrorIs(t, err, domain.ErrProductNotFound)

	_, err = repo.Save(ctx, newProduct(t, "A-100", "Widget"))
	require.NoError(t, err)

	found, err := repo.FindBySku(ctx, mustSKU(t, "A-100"))
	require.NoError(t, err)
	assert.Equal(t, "Widget", found.Title())

	// Loaded aggregates are fresh copies with empty event buffers
	assert.Empty(t, found.DrainEvents())
}

func TestMemoryFindAllPagination(t *testing.T) {
	repo := NewMemoryProductRepository()
	ctx := context.Background()

	for _, sku := range []string{"C-300", "A-100", "B-200"} {
		_, err := repo.Save(ctx, newProduct(t, sku, "Widget"))
		require.NoError(t, err)
	}

	page, total, err := repo.FindAll(ctx, 0, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, page, 2)
	assert.Equal(t, "A-100", page[0].SKU().Value())
	assert.Equal(t, "B-200", page[1].SKU().Value())

	page, total, err = repo.FindAll(ctx, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, page, 1)
	assert.Equal(t, "C-300", page[0].SKU().Value())

	page, _, err = repo.FindAll(ctx, 10, 2)
	require.NoError(t, err)
	assert.Empty(t, page)
}

func TestMemoryExistsAndCount(t *testing.T) {
	repo := NewMemoryProductRepository()
	ctx := context.Background()

	exists, err := repo.ExistsBySku(ctx, mustSKU(t, "A-100"))
	require.NoError(t, err)
	assert.False(t, exists)

	_, err = repo.Save(ctx, newProduct(t, "A-100", "Widget"))
	require.NoError(t, err)

	exists, err = repo.ExistsBySku(ctx, mustSKU(t, "A-100"))
	require.NoError(t, err)
	assert.True(t, exists)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestMemoryDelete(t *testing.T) {
	repo := NewMemoryProductRepository()
	ctx := context.Background()

	product := newProduct(t, "A-100", "Widget")
	err := repo.Delete(ctx, product)
	assert.ErrorIs(t, err, domain.ErrProductNotFound)

	saved, err := repo.Save(ctx, product)
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, saved))

	_, err = repo.FindBySku(ctx, mustSKU(t, "A-100"))
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func mustSKU(t *testing.T, value string) domain.SKU {
	t.Helper()
	sku, err := domain.NewSKU(value)
	require.NoError(t, err)
	return sku
}
