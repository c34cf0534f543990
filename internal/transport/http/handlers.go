package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/hashicorp/go-hclog"
	"github.com/paklog/product-catalog/internal/domain"
	"github.com/paklog/product-catalog/internal/service"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

type ProductHandler struct {
	productService service.ProductService
	validation     *domain.Validation
	logger         hclog.Logger
}

func NewProductHandler(ps service.ProductService, validation *domain.Validation, log hclog.Logger) *ProductHandler {
	return &ProductHandler{
		productService: ps,
		validation:     validation,
		logger:         log,
	}
}

// CreateProduct handles POST /products
//
// swagger:route POST /products products createProduct
//
// Adds a new product to the catalog. The SKU must be unique.
//
// Responses:
//
//	201: productResponse
//	409: errorResponse
//	422: validationErrorResponse
//	500: errorResponse
func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req CreateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if errs := h.validation.Validate(&req); len(errs) > 0 {
		h.writeValidationErrors(w, errs)
		return
	}

	cmd, err := h.toCreateCommand(req)
	if err != nil {
		h.writeDomainError(w, err)
		return
	}

	product, err := h.productService.CreateProduct(r.Context(), cmd)
	if err != nil {
		h.writeDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(toProductResponse(product))
}

// GetProduct handles GET /products/{sku}
//
// swagger:route GET /products/{sku} products getProduct
//
// Returns a product by SKU.
//
// Responses:
//
//	200: productResponse
//	404: errorResponse
//	500: errorResponse
func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	sku, err := domain.NewSKU(mux.Vars(r)["sku"])
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid SKU")
		return
	}

	product, err := h.productService.GetProduct(r.Context(), sku)
	if err != nil {
		h.writeDomainError(w, err)
		return
	}

	json.NewEncoder(w).Encode(toProductResponse(product))
}

// ListProducts handles GET /products
//
// swagger:route GET /products products listProducts
//
// Returns a page of products.
//
// Responses:
//
//	200: productPageResponse
//	500: errorResponse
func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	offset := parseQueryInt(r, "offset", 0)
	limit := parseQueryInt(r, "limit", defaultPageLimit)
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	if offset < 0 || limit <= 0 {
		h.writeError(w, http.StatusBadRequest, "Invalid pagination parameters")
		return
	}

	page, err := h.productService.ListProducts(r.Context(), offset, limit)
	if err != nil {
		h.writeDomainError(w, err)
		return
	}

	json.NewEncoder(w).Encode(toProductPageResponse(page))
}

// UpdateProduct handles PUT /products/{sku}
//
// swagger:route PUT /products/{sku} products updateProduct
//
// Replaces the mutable state of an existing product.
//
// Responses:
//
//	200: productResponse
//	404: errorResponse
//	409: errorResponse
//	422: validationErrorResponse
//	500: errorResponse
func (h *ProductHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	sku, err := domain.NewSKU(mux.Vars(r)["sku"])
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid SKU")
		return
	}

	var req UpdateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if errs := h.validation.Validate(&req); len(errs) > 0 {
		h.writeValidationErrors(w, errs)
		return
	}

	dimensions, err := toDomainDimensions(req.Dimensions)
	if err != nil {
		h.writeDomainError(w, err)
		return
	}
	attributes, err := toDomainAttributes(req.Attributes)
	if err != nil {
		h.writeDomainError(w, err)
		return
	}

	product, err := h.productService.UpdateProduct(r.Context(), service.UpdateProductCommand{
		SKU:        sku,
		Title:      req.Title,
		Dimensions: dimensions,
		Attributes: attributes,
	})
	if err != nil {
		h.writeDomainError(w, err)
		return
	}

	json.NewEncoder(w).Encode(toProductResponse(product))
}

// PatchProduct handles PATCH /products/{sku}
//
// swagger:route PATCH /products/{sku} products patchProduct
//
// Updates only the provided fields of an existing product.
//
// Responses:
//
//	200: productResponse
//	404: errorResponse
//	409: errorResponse
//	422: validationErrorResponse
//	500: errorResponse
func (h *ProductHandler) PatchProduct(w http.ResponseWriter, r *http.Request) {
	sku, err := domain.NewSKU(mux.Vars(r)["sku"])
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid SKU")
		return
	}

	var req PatchProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if errs := h.validation.Validate(&req); len(errs) > 0 {
		h.writeValidationErrors(w, errs)
		return
	}

	cmd := service.PatchProductCommand{SKU: sku, Title: req.Title}
	if req.Dimensions != nil {
		dimensions, err := toDomainDimensions(req.Dimensions)
		if err != nil {
			h.writeDomainError(w, err)
			return
		}
		cmd.Dimensions = dimensions
	}
	if req.Attributes != nil {
		attributes, err := toDomainAttributes(req.Attributes)
		if err != nil {
			h.writeDomainError(w, err)
			return
		}
		cmd.Attributes = attributes
	}

	product, err := h.productService.PatchProduct(r.Context(), cmd)
	if err != nil {
		h.writeDomainError(w, err)
		return
	}

	json.NewEncoder(w).Encode(toProductResponse(product))
}

// DeleteProduct handles DELETE /products/{sku}
//
// swagger:route DELETE /products/{sku} products deleteProduct
//
// Deletes a product.
//
// Responses:
//
//	204: noContentResponse
//	404: errorResponse
//	500: errorResponse
func (h *ProductHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	sku, err := domain.NewSKU(mux.Vars(r)["sku"])
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid SKU")
		return
	}

	if err := h.productService.DeleteProduct(r.Context(), sku); err != nil {
		h.writeDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Health handles GET /health
func (h *ProductHandler) Health(w http.ResponseWriter, r *http.Request) {
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

func (h *ProductHandler) toCreateCommand(req CreateProductRequest) (service.CreateProductCommand, error) {
	sku, err := domain.NewSKU(req.SKU)
	if err != nil {
		return service.CreateProductCommand{}, err
	}
	dimensions, err := toDomainDimensions(req.Dimensions)
	if err != nil {
		return service.CreateProductCommand{}, err
	}
	attributes, err := toDomainAttributes(req.Attributes)
	if err != nil {
		return service.CreateProductCommand{}, err
	}
	return service.CreateProductCommand{
		SKU:        sku,
		Title:      req.Title,
		Dimensions: dimensions,
		Attributes: attributes,
	}, nil
}

func (h *ProductHandler) writeDomainError(w http.ResponseWriter, err error) {
	var validationErr domain.ValidationError
	switch {
	case errors.Is(err, domain.ErrProductNotFound):
		h.writeError(w, http.StatusNotFound, "Product not found")
	case errors.Is(err, domain.ErrProductAlreadyExists):
		h.writeError(w, http.StatusConflict, "Product with this SKU already exists")
	case errors.Is(err, domain.ErrVersionConflict):
		h.writeError(w, http.StatusConflict, "Product was modified concurrently")
	case errors.As(err, &validationErr):
		h.writeValidationErrors(w, domain.ValidationErrors{validationErr})
	default:
		h.logger.Error("Unexpected error handling request", "error", err)
		h.writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func (h *ProductHandler) writeError(w http.ResponseWriter, status int, message string) {
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(ErrorResponse{Message: message})
}

func (h *ProductHandler) writeValidationErrors(w http.ResponseWriter, errs domain.ValidationErrors) {
	messages := make([]string, 0, len(errs))
	for _, e := range errs {
		messages = append(messages, e.Error())
	}
	w.WriteHeader(http.StatusUnprocessableEntity)
	json.NewEncoder(w).Encode(ValidationErrorResponse{Messages: messages})
}

func parseQueryInt(r *http.Request, name string, fallback int64) int64 {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return -1
	}
	return value
}
