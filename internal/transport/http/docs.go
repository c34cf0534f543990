// Package classification of Product Catalog API
//
// # Documentation for Product Catalog API
//
// Schemes: http
// BasePath: /
// Version: 1.0.0
//
// Consumes:
// - application/json
//
// Produces:
// - application/json
//
// swagger:meta
package http

// NOTE: Types defined here are purely for documentation purposes
// These types are not used by any of the handlers

// Generic error message
// swagger:response errorResponse
type errorResponseWrapper struct {
	// Description of the error
	// in: body
	Body ErrorResponse
}

// Validation errors defined as an array of strings
// swagger:response validationErrorResponse
type validationErrorResponseWrapper struct {
	// Collection of the errors
	// in: body
	Body ValidationErrorResponse
}

// A page of products
// swagger:response productPageResponse
type productPageResponseWrapper struct {
	// One page of the catalog
	// in: body
	Body ProductPageResponse
}

// Data structure representing a single product
// swagger:response productResponse
type productResponseWrapper struct {
	// A single product
	// in: body
	Body ProductResponse
}

// No content response for endpoints that return 204
// swagger:response noContentResponse
type noContentResponseWrapper struct{}

// swagger:parameters getProduct updateProduct patchProduct deleteProduct
type productSKUParamsWrapper struct {
	// The SKU of the product
	// in: path
	// required: true
	SKU string `json:"sku"`
}

// swagger:parameters createProduct
type createProductParamsWrapper struct {
	// Product data structure to create.
	// in: body
	// required: true
	Body CreateProductRequest
}

// swagger:parameters updateProduct
type updateProductParamsWrapper struct {
	// Product data structure to update.
	// in: body
	// required: true
	Body UpdateProductRequest
}

// swagger:parameters listProducts
type listProductsParamsWrapper struct {
	// Number of products to skip
	// in: query
	Offset int64 `json:"offset"`

	// Maximum number of products to return
	// in: query
	Limit int64 `json:"limit"`
}
