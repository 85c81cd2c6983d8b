package activities

import (
	"context"
	"fmt"

	"go.temporal.io/sdk/activity"

	"sport-store/storefront/equipment"
	"sport-store/storefront/order"
	"sport-store/storefront/pipeline"
	"sport-store/storefront/types"
)

// RecordOrderActivity is the name of the activity that stores a processed order
const RecordOrderActivity = "RecordOrder"

// Catalog resolves the equipment an order snapshot refers to
type Catalog interface {
	Equipment(id string) (equipment.Item, bool)
}

// Stages looks up pipeline stages by name
type Stages interface {
	Stage(name string) (pipeline.Stage, bool)
}

// OrderRecorder stores a processed order and announces it
type OrderRecorder interface {
	Record(ctx context.Context, o *order.Order)
}

// OrderActivities runs single pipeline stages against the catalog. Every
// activity rebuilds the order from its snapshot.
type OrderActivities struct {
	Catalog  Catalog
	Pipeline Stages
	Recorder OrderRecorder
}

// ValidateStock checks that enough units are in stock
func (a *OrderActivities) ValidateStock(ctx context.Context, snapshot types.OrderSnapshot) (types.StageResult, error) {
	return a.runStage(ctx, pipeline.StageValidateStock, snapshot)
}

// ProcessPayment charges the customer
func (a *OrderActivities) ProcessPayment(ctx context.Context, snapshot types.OrderSnapshot) (types.StageResult, error) {
	return a.runStage(ctx, pipeline.StageProcessPayment, snapshot)
}

// FulfillOrder removes the ordered units from stock
func (a *OrderActivities) FulfillOrder(ctx context.Context, snapshot types.OrderSnapshot) (types.StageResult, error) {
	return a.runStage(ctx, pipeline.StageFulfillOrder, snapshot)
}

// RecordOrder stores the processed order in the catalog
func (a *OrderActivities) RecordOrder(ctx context.Context, snapshot types.OrderSnapshot) (types.StageResult, error) {
	logger := activity.GetLogger(ctx)
	logger.Info("Recording order", "orderID", snapshot.OrderID)

	o, err := a.rebuild(snapshot)
	if err != nil {
		logger.Error("Cannot rebuild order", "orderID", snapshot.OrderID, "error", err)
		return types.StageResult{}, err
	}
	a.Recorder.Record(ctx, o)

	logger.Info("Order recorded", "orderID", o.ID, "status", o.Status)
	return types.StageResult{Stage: RecordOrderActivity, Passed: true, Status: o.Status}, nil
}

func (a *OrderActivities) runStage(ctx context.Context, name string, snapshot types.OrderSnapshot) (types.StageResult, error) {
	logger := activity.GetLogger(ctx)
	logger.Info("Running stage", "stage", name, "orderID", snapshot.OrderID, "status", snapshot.Status)

	stage, ok := a.Pipeline.Stage(name)
	if !ok {
		return types.StageResult{}, &types.PermanentError{Msg: fmt.Sprintf("stage %s is not configured", name)}
	}
	o, err := a.rebuild(snapshot)
	if err != nil {
		logger.Error("Cannot rebuild order", "orderID", snapshot.OrderID, "error", err)
		return types.StageResult{}, err
	}

	passed := stage.Process(ctx, o)
	logger.Info("Stage complete", "stage", name, "orderID", o.ID, "passed", passed, "status", o.Status)
	return types.StageResult{Stage: name, Passed: passed, Status: o.Status}, nil
}

func (a *OrderActivities) rebuild(snapshot types.OrderSnapshot) (*order.Order, error) {
	var item equipment.Item
	if snapshot.EquipmentID != "" {
		found, ok := a.Catalog.Equipment(snapshot.EquipmentID)
		if !ok {
			return nil, &types.PermanentError{Msg: fmt.Sprintf("equipment %s not found", snapshot.EquipmentID)}
		}
		item = found
	}
	return order.FromSnapshot(snapshot, item)
}
