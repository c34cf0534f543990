package domain

// DimensionSet groups the three linear measurements and the weight of a
// physical object. All four fields are mandatory.
type DimensionSet struct {
	length DimensionMeasurement
	width  DimensionMeasurement
	height DimensionMeasurement
	weight WeightMeasurement
}

func NewDimensionSet(length, width, height DimensionMeasurement, weight WeightMeasurement) (DimensionSet, error) {
	if length.IsZero() {
		return DimensionSet{}, ValidationError{Field: "length", Message: "is required"}
	}
	if width.IsZero() {
		return DimensionSet{}, ValidationError{Field: "width", Message: "is required"}
	}
	if height.IsZero() {
		return DimensionSet{}, ValidationError{Field: "height", Message: "is required"}
	}
	if weight.IsZero() {
		return DimensionSet{}, ValidationError{Field: "weight", Message: "is required"}
	}
	return DimensionSet{length: length, width: width, height: height, weight: weight}, nil
}

func (d DimensionSet) Length() DimensionMeasurement { return d.length }
func (d DimensionSet) Width() DimensionMeasurement  { return d.width }
func (d DimensionSet) Height() DimensionMeasurement { return d.height }
func (d DimensionSet) Weight() WeightMeasurement    { return d.weight }

func (d DimensionSet) IsZero() bool {
	return d == DimensionSet{}
}

// Dimensions pairs the item's own measurements with those of its packaging.
// The item must fit inside the package on every axis; weight is not compared.
//
// The containment check compares raw values without unit conversion, so
// callers are responsible for supplying item and package measurements in
// compatible units.
type Dimensions struct {
	item DimensionSet
	pkg  DimensionSet
}

func NewDimensions(item, pkg DimensionSet) (Dimensions, error) {
	if item.IsZero() {
		return Dimensions{}, ValidationError{Field: "item", Message: "is required"}
	}
	if pkg.IsZero() {
		return Dimensions{}, ValidationError{Field: "package", Message: "is required"}
	}
	if item.length.Value() > pkg.length.Value() ||
		item.width.Value() > pkg.width.Value() ||
		item.height.Value() > pkg.height.Value() {
		return Dimensions{}, ValidationError{
			Field:   "item",
			Message: "item dimensions cannot be larger than package dimensions",
		}
	}
	return Dimensions{item: item, pkg: pkg}, nil
}

func (d Dimensions) Item() DimensionSet    { return d.item }
func (d Dimensions) Package() DimensionSet { return d.pkg }
