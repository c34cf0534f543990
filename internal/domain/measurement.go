package domain

// DimensionUnit is the unit of a linear measurement.
type DimensionUnit string

const (
	Inches      DimensionUnit = "INCHES"
	Centimeters DimensionUnit = "CENTIMETERS"
	Millimeters DimensionUnit = "MILLIMETERS"
	Feet        DimensionUnit = "FEET"
	Meters      DimensionUnit = "METERS"
)

func (u DimensionUnit) IsValid() bool {
	switch u {
	case Inches, Centimeters, Millimeters, Feet, Meters:
		return true
	}
	return false
}

// WeightUnit is the unit of a weight measurement.
type WeightUnit string

const (
	Pounds    WeightUnit = "POUNDS"
	Kilograms WeightUnit = "KILOGRAMS"
	Grams     WeightUnit = "GRAMS"
	Ounces    WeightUnit = "OUNCES"
)

func (u WeightUnit) IsValid() bool {
	switch u {
	case Pounds, Kilograms, Grams, Ounces:
		return true
	}
	return false
}

// DimensionMeasurement is a strictly positive value with a dimension unit.
// A DimensionMeasurement that exists is guaranteed valid; the constructor is
// the single validation gate.
type DimensionMeasurement struct {
	value float64
	unit  DimensionUnit
}

func NewDimensionMeasurement(value float64, unit DimensionUnit) (DimensionMeasurement, error) {
	if value <= 0 {
		return DimensionMeasurement{}, ValidationError{Field: "value", Message: "must be positive"}
	}
	if !unit.IsValid() {
		return DimensionMeasurement{}, ValidationError{Field: "unit", Message: "unknown dimension unit"}
	}
	return DimensionMeasurement{value: value, unit: unit}, nil
}

func (m DimensionMeasurement) Value() float64 {
	return m.value
}

func (m DimensionMeasurement) Unit() DimensionUnit {
	return m.unit
}

func (m DimensionMeasurement) IsZero() bool {
	return m == DimensionMeasurement{}
}

// WeightMeasurement is a strictly positive value with a weight unit.
type WeightMeasurement struct {
	value float64
	unit  WeightUnit
}

func NewWeightMeasurement(value float64, unit WeightUnit) (WeightMeasurement, error) {
	if value <= 0 {
		return WeightMeasurement{}, ValidationError{Field: "value", Message: "must be positive"}
	}
	if !unit.IsValid() {
		return WeightMeasurement{}, ValidationError{Field: "unit", Message: "unknown weight unit"}
	}
	return WeightMeasurement{value: value, unit: unit}, nil
}

func (m WeightMeasurement) Value() float64 {
	return m.value
}

func (m WeightMeasurement) Unit() WeightUnit {
	return m.unit
}

func (m WeightMeasurement) IsZero() bool {
	return m == WeightMeasurement{}
}
