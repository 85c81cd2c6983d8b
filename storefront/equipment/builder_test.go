package equipment

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder_Chained(t *testing.T) {
	e, err := NewBuilder().
		SetName("Adjustable Dumbbells").
		SetDescription("Dumbbell set from 2 to 24 kg").
		SetBasePrice(decimal.RequireFromString("299.99")).
		SetCategory("Free weights").
		SetDimensions("40,20,20").
		SetWeight(24).
		SetMaterial("Cast iron").
		SetColor("Gray").
		SetMaxUserWeight(100.5).
		SetWarrantyMonths(6).
		Build()
	require.NoError(t, err)

	assert.Equal(t, "Adjustable Dumbbells", e.Name())
	assert.Equal(t, "Free weights", e.Category())
	assert.Equal(t, "24", e.Specs().Weight())
	assert.Equal(t, "100.5", e.Specs().MaxUserWeight())
	assert.Equal(t, "6", e.Specs().WarrantyMonths())
}

func TestBuilder_DefaultDimensionsRejected(t *testing.T) {
	_, err := NewBuilder().SetName("Mat").SetBasePrice(decimal.NewFromInt(20)).Build()
	assert.Error(t, err)
}

func TestBuilder_MissingPriceRejected(t *testing.T) {
	_, err := NewTreadmillBuilder().SetName("Treadmill").Build()
	assert.Error(t, err)
}

func TestDirector_Treadmill(t *testing.T) {
	b := NewTreadmillBuilder()
	e, err := NewDirector(b).ConstructBasicModel("Silver").Build()
	require.NoError(t, err)

	assert.Equal(t, KindTreadmill, b.Kind())
	assert.Equal(t, "Professional Treadmill", e.Name())
	assert.Equal(t, "Cardio", e.Category())
	assert.True(t, e.BasePrice().Equal(decimal.RequireFromString("1999.99")))
	assert.Equal(t, "200x85x140", e.Specs().Dimensions())
	assert.Equal(t, "Silver", e.Specs().Color())
	assert.Equal(t, "12", e.Specs().WarrantyMonths())
}

func TestDirector_PowerRackFallbackColor(t *testing.T) {
	d := NewDirector(NewTreadmillBuilder())
	d.ChangeBuilder(NewPowerRackBuilder())
	e, err := d.ConstructBasicModel("Neon").Build()
	require.NoError(t, err)

	assert.Equal(t, "Professional Power Rack", e.Name())
	assert.Equal(t, "Strength", e.Category())
	assert.Equal(t, "Black/Red", e.Specs().Color())
	assert.Equal(t, "Heavy Gauge Steel", e.Specs().Material())
	assert.Equal(t, "36", e.Specs().WarrantyMonths())
}

func TestIsValidColor(t *testing.T) {
	assert.True(t, IsValidColor("Black"))
	assert.True(t, IsValidColor("Black/Red"))
	assert.False(t, IsValidColor("black"))
}
