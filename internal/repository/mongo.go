package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/paklog/product-catalog/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const productCollection = "products"

// measurementDocument stores a value/unit pair.
type measurementDocument struct {
	Value float64 `bson:"value"`
	Unit  string  `bson:"unit"`
}

type dimensionSetDocument struct {
	Length measurementDocument `bson:"length"`
	Width  measurementDocument `bson:"width"`
	Height measurementDocument `bson:"height"`
	Weight measurementDocument `bson:"weight"`
}

type dimensionsDocument struct {
	Item    dimensionSetDocument `bson:"item"`
	Package dimensionSetDocument `bson:"package"`
}

type hazmatDocument struct {
	IsHazmat bool   `bson:"is_hazmat"`
	UNNumber string `bson:"un_number,omitempty"`
}

type attributesDocument struct {
	Hazmat hazmatDocument `bson:"hazmat"`
}

// productDocument is the persistence shape of the aggregate. The SKU doubles
// as the document id, which gives the uniqueness guarantee for free.
type productDocument struct {
	SKU        string              `bson:"_id"`
	Title      string              `bson:"title"`
	Dimensions *dimensionsDocument `bson:"dimensions,omitempty"`
	Attributes attributesDocument  `bson:"attributes"`
	CreatedAt  time.Time           `bson:"created_at"`
	UpdatedAt  time.Time           `bson:"updated_at"`
	Version    int64               `bson:"version"`
}

type mongoProductRepository struct {
	collection *mongo.Collection
	logger     hclog.Logger
}

func NewMongoProductRepository(db *mongo.Database, logger hclog.Logger) ProductRepository {
	return &mongoProductRepository{
		collection: db.Collection(productCollection),
		logger:     logger,
	}
}

func (r *mongoProductRepository) Save(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	doc := toDocument(product)

	if product.Version() == 0 {
		doc.Version = 1
		if _, err := r.collection.InsertOne(ctx, doc); err != nil {
			if mongo.IsDuplicateKeyError(err) {
				r.logger.Warn("Attempted to insert product with duplicate SKU", "sku", doc.SKU)
				return nil, domain.ErrProductAlreadyExists
			}
			return nil, fmt.Errorf("inserting product %s: %w", doc.SKU, err)
		}
		return toDomain(doc)
	}

	// Update only succeeds when the stored version still matches the one
	// this aggregate was loaded with.
	filter := bson.M{"_id": doc.SKU, "version": product.Version()}
	doc.Version = product.Version() + 1

	result, err := r.collection.ReplaceOne(ctx, filter, doc)
	if err != nil {
		return nil, fmt.Errorf("updating product %s: %w", doc.SKU, err)
	}
	if result.MatchedCount == 0 {
		count, err := r.collection.CountDocuments(ctx, bson.M{"_id": doc.SKU})
		if err != nil {
			return nil, fmt.Errorf("resolving save conflict for product %s: %w", doc.SKU, err)
		}
		if count == 0 {
			return nil, domain.ErrProductNotFound
		}
		return nil, domain.ErrVersionConflict
	}
	return toDomain(doc)
}

func (r *mongoProductRepository) FindBySku(ctx context.Context, sku domain.SKU) (*domain.Product, error) {
	var doc productDocument
	err := r.collection.FindOne(ctx, bson.M{"_id": sku.Value()}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("finding product %s: %w", sku, err)
	}
	return toDomain(doc)
}

func (r *mongoProductRepository) FindAll(ctx context.Context, offset, limit int64) ([]*domain.Product, int64, error) {
	total, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, fmt.Errorf("counting products: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "_id", Value: 1}}).
		SetSkip(offset).
		SetLimit(limit)

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("listing products: %w", err)
	}
	defer cursor.Close(ctx)

	var products []*domain.Product
	for cursor.Next(ctx) {
		var doc productDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, 0, fmt.Errorf("decoding product document: %w", err)
		}
		product, err := toDomain(doc)
		if err != nil {
			return nil, 0, err
		}
		products = append(products, product)
	}
	if err := cursor.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterating products: %w", err)
	}
	return products, total, nil
}

func (r *mongoProductRepository) ExistsBySku(ctx context.Context, sku domain.SKU) (bool, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"_id": sku.Value()})
	if err != nil {
		return false, fmt.Errorf("checking product existence %s: %w", sku, err)
	}
	return count > 0, nil
}

func (r *mongoProductRepository) Delete(ctx context.Context, product *domain.Product) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": product.SKU().Value()})
	if err != nil {
		return fmt.Errorf("deleting product %s: %w", product.SKU(), err)
	}
	if result.DeletedCount == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

func (r *mongoProductRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("counting products: %w", err)
	}
	return count, nil
}

func toDocument(product *domain.Product) productDocument {
	doc := productDocument{
		SKU:       product.SKU().Value(),
		Title:     product.Title(),
		CreatedAt: product.CreatedAt(),
		UpdatedAt: product.UpdatedAt(),
		Version:   product.Version(),
		Attributes: attributesDocument{
			Hazmat: hazmatDocument{
				IsHazmat: product.Attributes().Hazmat().IsHazmat(),
				UNNumber: product.Attributes().Hazmat().UNNumber(),
			},
		},
	}
	if dims := product.Dimensions(); dims != nil {
		doc.Dimensions = &dimensionsDocument{
			Item:    toSetDocument(dims.Item()),
			Package: toSetDocument(dims.Package()),
		}
	}
	return doc
}

func toSetDocument(set domain.DimensionSet) dimensionSetDocument {
	return dimensionSetDocument{
		Length: measurementDocument{Value: set.Length().Value(), Unit: string(set.Length().Unit())},
		Width:  measurementDocument{Value: set.Width().Value(), Unit: string(set.Width().Unit())},
		Height: measurementDocument{Value: set.Height().Value(), Unit: string(set.Height().Unit())},
		Weight: measurementDocument{Value: set.Weight().Value(), Unit: string(set.Weight().Unit())},
	}
}

func toDomain(doc productDocument) (*domain.Product, error) {
	sku, err := domain.NewSKU(doc.SKU)
	if err != nil {
		return nil, fmt.Errorf("document %s has invalid sku: %w", doc.SKU, err)
	}

	var dimensions *domain.Dimensions
	if doc.Dimensions != nil {
		item, err := fromSetDocument(doc.Dimensions.Item)
		if err != nil {
			return nil, fmt.Errorf("document %s has invalid item dimensions: %w", doc.SKU, err)
		}
		pkg, err := fromSetDocument(doc.Dimensions.Package)
		if err != nil {
			return nil, fmt.Errorf("document %s has invalid package dimensions: %w", doc.SKU, err)
		}
		dims, err := domain.NewDimensions(item, pkg)
		if err != nil {
			return nil, fmt.Errorf("document %s has invalid dimensions: %w", doc.SKU, err)
		}
		dimensions = &dims
	}

	hazmat := domain.NonHazmat()
	if doc.Attributes.Hazmat.IsHazmat {
		hazmat, err = domain.Hazmat(doc.Attributes.Hazmat.UNNumber)
		if err != nil {
			return nil, fmt.Errorf("document %s has invalid hazmat info: %w", doc.SKU, err)
		}
	}

	return domain.RehydrateProduct(
		sku,
		doc.Title,
		dimensions,
		domain.NewAttributes(hazmat),
		doc.CreatedAt,
		doc.UpdatedAt,
		doc.Version,
	), nil
}

func fromSetDocument(doc dimensionSetDocument) (domain.DimensionSet, error) {
	length, err := domain.NewDimensionMeasurement(doc.Length.Value, domain.DimensionUnit(doc.Length.Unit))
	if err != nil {
		return domain.DimensionSet{}, err
	}
	width, err := domain.NewDimensionMeasurement(doc.Width.Value, domain.DimensionUnit(doc.Width.Unit))
	if err != nil {
		return domain.DimensionSet{}, err
	}
	height, err := domain.NewDimensionMeasurement(doc.Height.Value, domain.DimensionUnit(doc.Height.Unit))
	if err != nil {
		return domain.DimensionSet{}, err
	}
	weight, err := domain.NewWeightMeasurement(doc.Weight.Value, domain.WeightUnit(doc.Weight.Unit))
	if err != nil {
		return domain.DimensionSet{}, err
	}
	return domain.NewDimensionSet(length, width, height, weight)
}
