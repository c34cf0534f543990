package domain

import "strings"

// SKU is the stock-keeping unit identifying a product. It is the aggregate's
// sole identity: two products with the same SKU are the same logical product.
type SKU struct {
	value string
}

func NewSKU(value string) (SKU, error) {
	if strings.TrimSpace(value) == "" {
		return SKU{}, ValidationError{Field: "sku", Message: "must not be blank"}
	}
	return SKU{value: value}, nil
}

func (s SKU) Value() string {
	return s.value
}

func (s SKU) IsZero() bool {
	return s.value == ""
}

func (s SKU) String() string {
	return s.value
}
