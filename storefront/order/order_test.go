package order

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sport-store/storefront/equipment"
	"sport-store/storefront/types"
)

func testItem(t *testing.T) *equipment.Equipment {
	t.Helper()
	e, err := equipment.New(equipment.Params{
		Name:        "Exercise Bike",
		Description: "Magnetic exercise bike",
		BasePrice:   decimal.RequireFromString("499.99"),
		Category:    "Cardio",
		Specs: equipment.MustSpecs(equipment.SpecsParams{
			Weight: "35", Dimensions: "120x60x150", Material: "Aluminium",
			Color: "Silver", MaxUserWeight: "120", WarrantyMonths: "12",
		}),
	})
	require.NoError(t, err)
	return e
}

func TestNew(t *testing.T) {
	item := testItem(t)
	o, err := New(Params{Equipment: item, Quantity: 3, CustomerID: "cust-1", CustomerEmail: "a@example.com"})
	require.NoError(t, err)

	assert.NotEmpty(t, o.ID)
	assert.Equal(t, types.StatusPending, o.Status)
	assert.Equal(t, item.ID(), o.EquipmentID())
	assert.True(t, o.TotalPrice().Equal(decimal.RequireFromString("1499.97")))
	assert.False(t, o.CreatedAt.IsZero())
}

func TestNew_Placeholder(t *testing.T) {
	o, err := New(Params{CustomerID: "cust-1"})
	require.NoError(t, err)
	assert.False(t, o.HasLineItem())
	assert.Equal(t, "", o.EquipmentID())
	assert.True(t, o.TotalPrice().IsZero())
	assert.Contains(t, o.String(), "No equipment")
}

func TestNew_Invalid(t *testing.T) {
	item := testItem(t)
	tests := []struct {
		name string
		p    Params
	}{
		{"missing customer", Params{Equipment: item, Quantity: 1}},
		{"zero quantity with equipment", Params{Equipment: item, Quantity: 0, CustomerID: "c"}},
		{"negative quantity with equipment", Params{Equipment: item, Quantity: -2, CustomerID: "c"}},
		{"quantity without equipment", Params{Quantity: 2, CustomerID: "c"}},
		{"negative quantity without equipment", Params{Quantity: -1, CustomerID: "c"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.p)
			var verr *types.ValidationError
			assert.True(t, errors.As(err, &verr), "expected ValidationError, got %v", err)
		})
	}
}

func TestAdvance_ForwardOnly(t *testing.T) {
	o, err := New(Params{CustomerID: "c"})
	require.NoError(t, err)

	assert.True(t, o.Advance(types.StatusStockValidated))
	assert.True(t, o.Advance(types.StatusFulfilled))
	assert.False(t, o.Advance(types.StatusPaid))
	assert.False(t, o.Advance(types.StatusFulfilled))
	assert.False(t, o.Advance("shipped"))
	assert.Equal(t, types.StatusFulfilled, o.Status)
}

func TestAddNote(t *testing.T) {
	o, err := New(Params{CustomerID: "c"})
	require.NoError(t, err)
	require.NoError(t, o.AddNote("leave at the door"))
	assert.Error(t, o.AddNote(""))
	assert.Equal(t, []string{"leave at the door"}, o.Notes)
}

func TestSnapshotRoundTrip(t *testing.T) {
	item := testItem(t)
	o, err := New(Params{Equipment: item, Quantity: 2, CustomerID: "c", CustomerName: "Dana", ShippingAddress: "Kyiv"})
	require.NoError(t, err)
	require.NoError(t, o.AddNote("gift"))
	o.Advance(types.StatusPaid)

	s := o.Snapshot()
	assert.Equal(t, item.ID(), s.EquipmentID)

	restored, err := FromSnapshot(s, item)
	require.NoError(t, err)
	assert.Equal(t, o.ID, restored.ID)
	assert.Equal(t, types.StatusPaid, restored.Status)
	assert.Equal(t, []string{"gift"}, restored.Notes)
	assert.Equal(t, o.CreatedAt, restored.CreatedAt)
	assert.Equal(t, "Dana", restored.CustomerName)
}

func TestFromSnapshot_Mismatch(t *testing.T) {
	item := testItem(t)
	_, err := FromSnapshot(types.OrderSnapshot{OrderID: "o", EquipmentID: "other", Quantity: 1, CustomerID: "c"}, item)
	assert.Error(t, err)

	_, err = FromSnapshot(types.OrderSnapshot{OrderID: "o", EquipmentID: item.ID(), Quantity: 1, CustomerID: "c"}, nil)
	assert.Error(t, err)

	_, err = FromSnapshot(types.OrderSnapshot{OrderID: "o", CustomerID: "c", Status: "lost", CreatedAt: time.Now()}, nil)
	assert.Error(t, err)
}
