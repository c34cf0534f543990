package domain

import "strings"

// HazmatInfo records whether a product is classified as hazardous material.
// Hazardous products must carry a UN number; non-hazardous products must not.
type HazmatInfo struct {
	isHazmat bool
	unNumber string
}

// NewHazmatInfo validates both directions of the hazmat/UN-number invariant.
// A nil unNumber means "not provided", which is distinct from an empty string.
func NewHazmatInfo(isHazmat bool, unNumber *string) (HazmatInfo, error) {
	if isHazmat {
		if unNumber == nil || strings.TrimSpace(*unNumber) == "" {
			return HazmatInfo{}, ValidationError{
				Field:   "unNumber",
				Message: "is required when the item is classified as hazardous material",
			}
		}
		return HazmatInfo{isHazmat: true, unNumber: *unNumber}, nil
	}
	if unNumber != nil {
		return HazmatInfo{}, ValidationError{
			Field:   "unNumber",
			Message: "must not be provided when the item is not hazardous material",
		}
	}
	return HazmatInfo{}, nil
}

// NonHazmat is the zero classification: not hazardous, no UN number.
func NonHazmat() HazmatInfo {
	return HazmatInfo{}
}

// Hazmat classifies an item as hazardous with the given UN number.
func Hazmat(unNumber string) (HazmatInfo, error) {
	return NewHazmatInfo(true, &unNumber)
}

func (h HazmatInfo) IsHazmat() bool {
	return h.isHazmat
}

func (h HazmatInfo) UNNumber() string {
	return h.unNumber
}

// Attributes wraps the regulatory attributes of a product. The hazmat
// classification is always present; products without one default to
// non-hazmat.
type Attributes struct {
	hazmat HazmatInfo
}

func NewAttributes(hazmat HazmatInfo) Attributes {
	return Attributes{hazmat: hazmat}
}

func DefaultAttributes() Attributes {
	return Attributes{hazmat: NonHazmat()}
}

func (a Attributes) Hazmat() HazmatInfo {
	return a.hazmat
}
