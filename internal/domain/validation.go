package domain

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

type Validation struct {
	validator *validator.Validate
}

func NewValidation() *Validation {
	v := validator.New()
	v.RegisterValidation("sku", validateSKUFormat)
	return &Validation{validator: v}
}

// skuPattern matches the catalog's SKU format: alphanumeric start, then
// 2 to 49 characters of alphanumerics, hyphens and underscores.
var skuPattern = regexp.MustCompile(`^[A-Z0-9][A-Z0-9-_]{2,49}$`)

func validateSKUFormat(fl validator.FieldLevel) bool {
	return skuPattern.MatchString(fl.Field().String())
}

func (v *Validation) Validate(i interface{}) ValidationErrors {
	var errs ValidationErrors

	err := v.validator.Struct(i)
	if err != nil {
		validationErrors := err.(validator.ValidationErrors)
		for _, ve := range validationErrors {
			errs = append(errs, ValidationError{
				Field:   ve.Field(),
				Message: "failed on the '" + ve.Tag() + "' tag",
			})
		}
	}

	return errs
}
