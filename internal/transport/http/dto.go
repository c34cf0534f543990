package http

import (
	"time"

	"github.com/paklog/product-catalog/internal/domain"
	"github.com/paklog/product-catalog/internal/service"
)

// MeasurementRequest is a value/unit pair
//
// swagger:model
type MeasurementRequest struct {
	// The measured value
	//
	// required: true
	// min: 0.01
	Value float64 `json:"value" validate:"required,gt=0"`

	// The measurement unit
	//
	// required: true
	Unit string `json:"unit" validate:"required"`
}

// DimensionSetRequest carries the measurements of a physical object
//
// swagger:model
type DimensionSetRequest struct {
	Length *MeasurementRequest `json:"length" validate:"required"`
	Width  *MeasurementRequest `json:"width" validate:"required"`
	Height *MeasurementRequest `json:"height" validate:"required"`
	Weight *MeasurementRequest `json:"weight" validate:"required"`
}

// DimensionsRequest pairs item and package measurements
//
// swagger:model
type DimensionsRequest struct {
	Item    *DimensionSetRequest `json:"item" validate:"required"`
	Package *DimensionSetRequest `json:"package" validate:"required"`
}

// HazmatRequest is the hazardous-material classification of a product
//
// swagger:model
type HazmatRequest struct {
	IsHazmat bool    `json:"is_hazmat"`
	UNNumber *string `json:"un_number,omitempty"`
}

// AttributesRequest wraps the regulatory attributes of a product
//
// swagger:model
type AttributesRequest struct {
	Hazmat *HazmatRequest `json:"hazmat,omitempty"`
}

// CreateProductRequest is the payload for POST /products
//
// swagger:model
type CreateProductRequest struct {
	// The SKU of the product
	//
	// required: true
	// pattern: '^[A-Z0-9][A-Z0-9-_]{2,49}$'
	// example: A-100
	SKU string `json:"sku" validate:"required,sku"`

	// The title of the product
	//
	// required: true
	// example: Widget
	Title string `json:"title" validate:"required"`

	Dimensions *DimensionsRequest `json:"dimensions,omitempty"`
	Attributes *AttributesRequest `json:"attributes,omitempty"`
}

// UpdateProductRequest is the payload for PUT /products/{sku}. Omitted
// dimensions are cleared; omitted attributes reset to non-hazmat.
//
// swagger:model
type UpdateProductRequest struct {
	// The title of the product
	//
	// required: true
	Title string `json:"title" validate:"required"`

	Dimensions *DimensionsRequest `json:"dimensions,omitempty"`
	Attributes *AttributesRequest `json:"attributes,omitempty"`
}

// PatchProductRequest is the payload for PATCH /products/{sku}. Omitted
// fields are left unchanged.
//
// swagger:model
type PatchProductRequest struct {
	Title      *string            `json:"title,omitempty"`
	Dimensions *DimensionsRequest `json:"dimensions,omitempty"`
	Attributes *AttributesRequest `json:"attributes,omitempty"`
}

// ProductResponse is the API shape of a catalog product
//
// swagger:model
type ProductResponse struct {
	SKU        string              `json:"sku"`
	Title      string              `json:"title"`
	Dimensions *DimensionsRequest  `json:"dimensions,omitempty"`
	Attributes *AttributesResponse `json:"attributes"`
	CreatedAt  time.Time           `json:"created_at"`
	UpdatedAt  time.Time           `json:"updated_at"`
	Version    int64               `json:"version"`
}

// AttributesResponse mirrors AttributesRequest with the hazmat block always
// present.
type AttributesResponse struct {
	Hazmat HazmatRequest `json:"hazmat"`
}

// ProductPageResponse is one page of catalog listings
//
// swagger:model
type ProductPageResponse struct {
	Products []ProductResponse `json:"products"`
	Total    int64             `json:"total"`
	Offset   int64             `json:"offset"`
	Limit    int64             `json:"limit"`
}

// ErrorResponse defines the structure for API error responses
//
// swagger:model
type ErrorResponse struct {
	// The error message
	//
	// required: true
	Message string `json:"message"`
}

// ValidationErrorResponse defines the structure for API validation errors
//
// swagger:model
type ValidationErrorResponse struct {
	// The validation errors
	//
	// required: true
	Messages []string `json:"messages"`
}

func toDomainDimensions(req *DimensionsRequest) (*domain.Dimensions, error) {
	if req == nil {
		return nil, nil
	}
	item, err := toDomainSet(req.Item)
	if err != nil {
		return nil, err
	}
	pkg, err := toDomainSet(req.Package)
	if err != nil {
		return nil, err
	}
	dims, err := domain.NewDimensions(item, pkg)
	if err != nil {
		return nil, err
	}
	return &dims, nil
}

func toDomainSet(req *DimensionSetRequest) (domain.DimensionSet, error) {
	length, err := domain.NewDimensionMeasurement(req.Length.Value, domain.DimensionUnit(req.Length.Unit))
	if err != nil {
		return domain.DimensionSet{}, err
	}
	width, err := domain.NewDimensionMeasurement(req.Width.Value, domain.DimensionUnit(req.Width.Unit))
	if err != nil {
		return domain.DimensionSet{}, err
	}
	height, err := domain.NewDimensionMeasurement(req.Height.Value, domain.DimensionUnit(req.Height.Unit))
	if err != nil {
		return domain.DimensionSet{}, err
	}
	weight, err := domain.NewWeightMeasurement(req.Weight.Value, domain.WeightUnit(req.Weight.Unit))
	if err != nil {
		return domain.DimensionSet{}, err
	}
	return domain.NewDimensionSet(length, width, height, weight)
}

func toDomainAttributes(req *AttributesRequest) (*domain.Attributes, error) {
	if req == nil {
		return nil, nil
	}
	hazmat := domain.NonHazmat()
	if req.Hazmat != nil {
		var err error
		hazmat, err = domain.NewHazmatInfo(req.Hazmat.IsHazmat, req.Hazmat.UNNumber)
		if err != nil {
			return nil, err
		}
	}
	attrs := domain.NewAttributes(hazmat)
	return &attrs, nil
}

func toProductResponse(product *domain.Product) ProductResponse {
	resp := ProductResponse{
		SKU:       product.SKU().Value(),
		Title:     product.Title(),
		CreatedAt: product.CreatedAt(),
		UpdatedAt: product.UpdatedAt(),
		Version:   product.Version(),
	}

	hazmat := product.Attributes().Hazmat()
	attrs := &AttributesResponse{Hazmat: HazmatRequest{IsHazmat: hazmat.IsHazmat()}}
	if hazmat.IsHazmat() {
		un := hazmat.UNNumber()
		attrs.Hazmat.UNNumber = &un
	}
	resp.Attributes = attrs

	if dims := product.Dimensions(); dims != nil {
		resp.Dimensions = &DimensionsRequest{
			Item:    fromDomainSet(dims.Item()),
			Package: fromDomainSet(dims.Package()),
		}
	}
	return resp
}

func fromDomainSet(set domain.DimensionSet) *DimensionSetRequest {
	return &DimensionSetRequest{
		Length: &MeasurementRequest{Value: set.Length().Value(), Unit: string(set.Length().Unit())},
		Width:  &MeasurementRequest{Value: set.Width().Value(), Unit: string(set.Width().Unit())},
		Height: &MeasurementRequest{Value: set.Height().Value(), Unit: string(set.Height().Unit())},
		Weight: &MeasurementRequest{Value: set.Weight().Value(), Unit: string(set.Weight().Unit())},
	}
}

func toProductPageResponse(page service.ProductPage) ProductPageResponse {
	products := make([]ProductResponse, 0, len(page.Products))
	for _, product := range page.Products {
		products = append(products, toProductResponse(product))
	}
	return ProductPageResponse{
		Products: products,
		Total:    page.Total,
		Offset:   page.Offset,
		Limit:    page.Limit,
	}
}
