package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSKUFormatValidation(t *testing.T) {
	testCases := []struct {
		name  string
		sku   string
		valid bool
	}{
		{"Valid SKU", "A-100", true},
		{"Valid SKU with underscore", "SKU_200", true},
		{"Valid numeric SKU", "12345", true},
		{"Invalid SKU - lowercase", "a-100", false},
		{"Invalid SKU - too short", "AB", false},
		{"Invalid SKU - leading hyphen", "-A100", false},
		{"Invalid SKU - spaces", "A 100", false},
	}

	v := NewValidation()

	type payload struct {
		SKU string `validate:"required,sku"`
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			errs := v.Validate(&payload{SKU: tc.sku})
			if tc.valid {
				assert.Empty(t, errs)
			} else {
				assert.NotEmpty(t, errs)
			}
		})
	}
}

func TestNewSKURejectsBlank(t *testing.T) {
	_, err := NewSKU("")
	assert.Error(t, err)

	_, err = NewSKU("   ")
	assert.Error(t, err)

	sku, err := NewSKU("A-100")
	assert.NoError(t, err)
	assert.Equal(t, "A-100", sku.Value())
	assert.Equal(t, "A-100", sku.String())
	assert.False(t, sku.IsZero())
}
