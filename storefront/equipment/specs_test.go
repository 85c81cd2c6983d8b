package equipment

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sport-store/storefront/types"
)

func validSpecsParams() SpecsParams {
	return SpecsParams{
		Weight:         "75.5",
		Dimensions:     "180x85x130",
		Material:       "Steel",
		Color:          "Black",
		MaxUserWeight:  "150",
		WarrantyMonths: "24",
	}
}

func TestNewSpecs_Valid(t *testing.T) {
	s, err := NewSpecs(validSpecsParams())
	require.NoError(t, err)
	assert.Equal(t, "75.5", s.Weight())
	assert.Equal(t, "180x85x130", s.Dimensions())
	assert.Equal(t, "Steel", s.Material())
	assert.Equal(t, "Black", s.Color())
	assert.Equal(t, "150", s.MaxUserWeight())
	assert.Equal(t, "24", s.WarrantyMonths())
	assert.Equal(t, 24, s.WarrantyMonthsValue())
	assert.False(t, s.IsZero())
}

func TestNewSpecs_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(p *SpecsParams)
	}{
		{"zero weight", func(p *SpecsParams) { p.Weight = "0" }},
		{"negative weight", func(p *SpecsParams) { p.Weight = "-3" }},
		{"weight not a number", func(p *SpecsParams) { p.Weight = "heavy" }},
		{"weight infinite", func(p *SpecsParams) { p.Weight = "Inf" }},
		{"two dimensions", func(p *SpecsParams) { p.Dimensions = "10x20" }},
		{"four dimensions", func(p *SpecsParams) { p.Dimensions = "10x20x30x40" }},
		{"zero dimension", func(p *SpecsParams) { p.Dimensions = "10x0x30" }},
		{"dimension not a number", func(p *SpecsParams) { p.Dimensions = "10xax30" }},
		{"empty material", func(p *SpecsParams) { p.Material = "" }},
		{"empty color", func(p *SpecsParams) { p.Color = "" }},
		{"zero max user weight", func(p *SpecsParams) { p.MaxUserWeight = "0" }},
		{"fractional warranty", func(p *SpecsParams) { p.WarrantyMonths = "12.5" }},
		{"zero warranty", func(p *SpecsParams) { p.WarrantyMonths = "0" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validSpecsParams()
			tt.mutate(&p)
			_, err := NewSpecs(p)
			var verr *types.ValidationError
			require.True(t, errors.As(err, &verr), "expected ValidationError, got %v", err)
		})
	}
}

func TestParseDimensions(t *testing.T) {
	dims, err := ParseDimensions("200, 80 ,140")
	require.NoError(t, err)
	assert.Equal(t, [3]float64{200, 80, 140}, dims)

	dims, err = ParseDimensions("1.5x2x3")
	require.NoError(t, err)
	assert.Equal(t, [3]float64{1.5, 2, 3}, dims)
}

func TestSpecs_JSONRoundTrip(t *testing.T) {
	inputs := []SpecsParams{
		validSpecsParams(),
		{Weight: "1", Dimensions: "1,1,1", Material: "Aluminium", Color: "Silver", MaxUserWeight: "0.5", WarrantyMonths: "1"},
		{Weight: " 200 ", Dimensions: "220x180x200", Material: "Steel", Color: "Black/Red", MaxUserWeight: "150.25", WarrantyMonths: "36"},
	}
	for _, in := range inputs {
		s, err := NewSpecs(in)
		require.NoError(t, err)

		data, err := json.Marshal(s)
		require.NoError(t, err)

		var out Specs
		require.NoError(t, json.Unmarshal(data, &out))
		assert.Equal(t, s, out)
		assert.Equal(t, in, out.Params())
	}
}

func TestSpecs_UnmarshalValidates(t *testing.T) {
	var s Specs
	err := json.Unmarshal([]byte(`{"weight":"-1","dimensions":"1x1x1","material":"Steel","color":"Black","max_user_weight":"1","warranty_months":"1"}`), &s)
	require.Error(t, err)
	assert.True(t, s.IsZero())
}

func TestSpecs_WithWarrantyMonths(t *testing.T) {
	s := MustSpecs(validSpecsParams())
	extended, err := s.WithWarrantyMonths(48)
	require.NoError(t, err)
	assert.Equal(t, "48", extended.WarrantyMonths())
	assert.Equal(t, "24", s.WarrantyMonths())

	_, err = s.WithWarrantyMonths(0)
	assert.Error(t, err)
}
