package service

import (
	"context"
	"errors"
	"sync"

	"github.com/hashicorp/go-hclog"
	"github.com/paklog/product-catalog/internal/domain"
	"github.com/paklog/product-catalog/internal/events"
	"github.com/paklog/product-catalog/internal/repository"
)

// CreateProductCommand carries the validated input of a create operation.
type CreateProductCommand struct {
	SKU        domain.SKU
	Title      string
	Dimensions *domain.Dimensions
	Attributes *domain.Attributes
}

// UpdateProductCommand replaces the full mutable state of a product. A nil
// Dimensions clears the recorded dimensions; a nil Attributes collapses to
// the non-hazmat default.
type UpdateProductCommand struct {
	SKU        domain.SKU
	Title      string
	Dimensions *domain.Dimensions
	Attributes *domain.Attributes
}

// PatchProductCommand updates only the fields that are present. nil means
// "leave unchanged".
type PatchProductCommand struct {
	SKU        domain.SKU
	Title      *string
	Dimensions *domain.Dimensions
	Attributes *domain.Attributes
}

// ProductPage is one page of catalog listings.
type ProductPage struct {
	Products []*domain.Product
	Total    int64
	Offset   int64
	Limit    int64
}

type ProductService interface {
	CreateProduct(ctx context.Context, cmd CreateProductCommand) (*domain.Product, error)
	GetProduct(ctx context.Context, sku domain.SKU) (*domain.Product, error)
	ListProducts(ctx context.Context, offset, limit int64) (ProductPage, error)
	UpdateProduct(ctx context.Context, cmd UpdateProductCommand) (*domain.Product, error)
	PatchProduct(ctx context.Context, cmd PatchProductCommand) (*domain.Product, error)
	DeleteProduct(ctx context.Context, sku domain.SKU) error
	Close() error
}

type productService struct {
	repo      repository.ProductRepository
	processor *events.Processor
	logger    hclog.Logger
	once      sync.Once
}

func NewProductService(
	repo repository.ProductRepository,
	processor *events.Processor,
	logger hclog.Logger) ProductService {
	return &productService{
		repo:      repo,
		processor: processor,
		logger:    logger,
	}
}

func (s *productService) CreateProduct(ctx context.Context, cmd CreateProductCommand) (*domain.Product, error) {
	s.logger.Debug("Creating product", "sku", cmd.SKU)

	exists, err := s.repo.ExistsBySku(ctx, cmd.SKU)
	if err != nil {
		s.logger.Error("Unable to check product existence", "sku", cmd.SKU, "error", err)
		return nil, err
	}
	if exists {
		return nil, domain.ErrProductAlreadyExists
	}

	product, err := domain.NewProduct(cmd.SKU, cmd.Title, cmd.Dimensions, cmd.Attributes)
	if err != nil {
		return nil, err
	}

	saved, err := s.repo.Save(ctx, product)
	if err != nil {
		s.logger.Error("Unable to save product", "sku", cmd.SKU, "error", err)
		return nil, err
	}

	// The repository returns a rehydrated copy; the pending events live on
	// the instance the mutation ran against.
	s.processor.ProcessAndClear(product)

	s.logger.Info("Product created", "sku", cmd.SKU)
	return saved, nil
}

func (s *productService) GetProduct(ctx context.Context, sku domain.SKU) (*domain.Product, error) {
	s.logger.Debug("Retrieving product", "sku", sku)
	return s.repo.FindBySku(ctx, sku)
}

func (s *productService) ListProducts(ctx context.Context, offset, limit int64) (ProductPage, error) {
	s.logger.Debug("Listing products", "offset", offset, "limit", limit)

	products, total, err := s.repo.FindAll(ctx, offset, limit)
	if err != nil {
		s.logger.Error("Unable to list products", "error", err)
		return ProductPage{}, err
	}
	return ProductPage{Products: products, Total: total, Offset: offset, Limit: limit}, nil
}

func (s *productService) UpdateProduct(ctx context.Context, cmd UpdateProductCommand) (*domain.Product, error) {
	s.logger.Debug("Updating product", "sku", cmd.SKU)

	product, err := s.repo.FindBySku(ctx, cmd.SKU)
	if err != nil {
		return nil, err
	}

	if err := product.UpdateTitle(cmd.Title); err != nil {
		return nil, err
	}
	product.UpdateDimensions(cmd.Dimensions)
	product.UpdateAttributes(cmd.Attributes)

	return s.saveAndProcess(ctx, product)
}

func (s *productService) PatchProduct(ctx context.Context, cmd PatchProductCommand) (*domain.Product, error) {
	s.logger.Debug("Patching product", "sku", cmd.SKU)

	product, err := s.repo.FindBySku(ctx, cmd.SKU)
	if err != nil {
		return nil, err
	}

	if cmd.Title != nil {
		if err := product.UpdateTitle(*cmd.Title); err != nil {
			return nil, err
		}
	}
	if cmd.Dimensions != nil {
		product.UpdateDimensions(cmd.Dimensions)
	}
	if cmd.Attributes != nil {
		product.UpdateAttributes(cmd.Attributes)
	}

	return s.saveAndProcess(ctx, product)
}

func (s *productService) DeleteProduct(ctx context.Context, sku domain.SKU) error {
	s.logger.Debug("Deleting product", "sku", sku)

	product, err := s.repo.FindBySku(ctx, sku)
	if err != nil {
		return err
	}

	product.MarkForDeletion()

	if err := s.repo.Delete(ctx, product); err != nil {
		s.logger.Error("Unable to delete product", "sku", sku, "error", err)
		return err
	}

	s.processor.ProcessAndClear(product)

	s.logger.Info("Product deleted", "sku", sku)
	return nil
}

func (s *productService) saveAndProcess(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	saved, err := s.repo.Save(ctx, product)
	if err != nil {
		if !errors.Is(err, domain.ErrVersionConflict) {
			s.logger.Error("Unable to save product", "sku", product.SKU(), "error", err)
		}
		return nil, err
	}

	s.processor.ProcessAndClear(product)

	s.logger.Info("Product saved", "sku", saved.SKU(), "version", saved.Version())
	return saved, nil
}

func (s *productService) Close() error {
	var err error
	s.once.Do(func() {
		s.logger.Info("Shutting down ProductService...")
		err = s.processor.Close()
		s.logger.Info("ProductService shutdown complete.")
	})
	return err
}
