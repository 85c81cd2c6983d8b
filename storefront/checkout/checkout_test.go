package checkout

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sport-store/storefront/catalog"
	"sport-store/storefront/equipment"
	"sport-store/storefront/notify"
	"sport-store/storefront/order"
	"sport-store/storefront/pipeline"
	"sport-store/storefront/types"
)

type eventRecorder struct {
	events []types.EventType
}

func (r *eventRecorder) OnOrderEvent(_ context.Context, _ *order.Order, event types.EventType) error {
	r.events = append(r.events, event)
	return nil
}

type outcomes struct {
	passed []bool
}

func (o *outcomes) ObserveCheckout(passed bool, _ time.Duration) {
	o.passed = append(o.passed, passed)
}

type fixture struct {
	store    *catalog.Store
	item     equipment.Item
	events   *eventRecorder
	outcomes *outcomes
	svc      *Service
}

func newFixture(t *testing.T, stock int) fixture {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	item, err := equipment.New(equipment.Params{
		Name:        "Kettlebell",
		Description: "Cast iron kettlebell",
		BasePrice:   decimal.RequireFromString("49.90"),
		Category:    "Strength",
		Specs: equipment.MustSpecs(equipment.SpecsParams{
			Weight: "16", Dimensions: "20x20x28", Material: "Cast iron",
			Color: "Black", MaxUserWeight: "150", WarrantyMonths: "12",
		}),
	})
	require.NoError(t, err)

	store := catalog.New()
	_, err = store.AddEquipment(item, stock)
	require.NoError(t, err)

	events := &eventRecorder{}
	n := notify.New(logger)
	n.Attach(events)
	out := &outcomes{}
	svc := New(store, pipeline.Default(store, n, logger), n, WithRecorder(out), WithLogger(logger))
	return fixture{store: store, item: item, events: events, outcomes: out, svc: svc}
}

func TestPlaceOrder_Success(t *testing.T) {
	f := newFixture(t, 3)
	o, err := order.New(order.Params{Equipment: f.item, Quantity: 2, CustomerID: "cust-1"})
	require.NoError(t, err)

	ok, err := f.svc.PlaceOrder(context.Background(), o)
	require.NoError(t, err)
	assert.True(t, ok)

	stored, found := f.store.Order(o.ID)
	require.True(t, found)
	assert.Same(t, o, stored)
	assert.Equal(t, types.StatusFulfilled, stored.Status)
	assert.Equal(t, 1, f.store.Stock(f.item.ID()))
	assert.Equal(t, []types.EventType{
		types.EventStockValidated, types.EventPaid, types.EventFulfilled, types.EventCreated,
	}, f.events.events)
	assert.Equal(t, []bool{true}, f.outcomes.passed)
}

func TestPlaceOrder_HaltedIsNotRecorded(t *testing.T) {
	f := newFixture(t, 1)
	o, err := order.New(order.Params{Equipment: f.item, Quantity: 2, CustomerID: "cust-1"})
	require.NoError(t, err)

	ok, err := f.svc.PlaceOrder(context.Background(), o)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, types.StatusPending, o.Status)

	_, found := f.store.Order(o.ID)
	assert.False(t, found)
	assert.Empty(t, f.events.events)
	assert.Equal(t, []bool{false}, f.outcomes.passed)
}

func TestRecord_WithoutNotifier(t *testing.T) {
	store := catalog.New()
	svc := New(store, pipeline.New(nil), nil)
	o, err := order.New(order.Params{CustomerID: "cust-1"})
	require.NoError(t, err)

	ok, err := svc.PlaceOrder(context.Background(), o)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Len(t, store.AllOrders(), 1)
}
