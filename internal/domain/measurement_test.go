package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDimensionMeasurementValidation(t *testing.T) {
	testCases := []struct {
		name  string
		value float64
		unit  DimensionUnit
		valid bool
	}{
		{"Positive inches", 10.5, Inches, true},
		{"Positive centimeters", 0.1, Centimeters, true},
		{"Positive meters", 2, Meters, true},
		{"Zero value", 0, Inches, false},
		{"Negative value", -3, Centimeters, false},
		{"Unknown unit", 1, DimensionUnit("FURLONGS"), false},
		{"Empty unit", 1, DimensionUnit(""), false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m, err := NewDimensionMeasurement(tc.value, tc.unit)
			if tc.valid {
				require.NoError(t, err)
				assert.Equal(t, tc.value, m.Value())
				assert.Equal(t, tc.unit, m.Unit())
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestWeightMeasurementValidation(t *testing.T) {
	testCases := []struct {
		name  string
		value float64
		unit  WeightUnit
		valid bool
	}{
		{"Positive pounds", 1.2, Pounds, true},
		{"Positive grams", 500, Grams, true},
		{"Zero value", 0, Kilograms, false},
		{"Negative value", -0.5, Ounces, false},
		{"Unknown unit", 1, WeightUnit("STONES"), false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m, err := NewWeightMeasurement(tc.value, tc.unit)
			if tc.valid {
				require.NoError(t, err)
				assert.Equal(t, tc.value, m.Value())
				assert.Equal(t, tc.unit, m.Unit())
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestMeasurementEquality(t *testing.T) {
	a, err := NewDimensionMeasurement(10, Inches)
	require.NoError(t, err)
	b, err := NewDimensionMeasurement(10, Inches)
	require.NoError(t, err)
	c, err := NewDimensionMeasurement(10, Centimeters)
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}
