package pipeline

import (
	"context"
	"log/slog"

	"sport-store/storefront/equipment"
	"sport-store/storefront/order"
	"sport-store/storefront/types"
)

// Stage names, also used as Temporal activity names
const (
	StageValidateStock  = "ValidateStock"
	StageProcessPayment = "ProcessPayment"
	StageFulfillOrder   = "FulfillOrder"
)

// Inventory is the catalog surface the stages need
type Inventory interface {
	IsInStock(item equipment.Item, qty int) bool
	RemoveEquipment(item equipment.Item, qty int) (bool, error)
}

// Notifier delivers order events. Delivery errors never halt a stage.
type Notifier interface {
	Notify(ctx context.Context, o *order.Order, event types.EventType) error
}

// Stage is one step of order processing. Process reports whether the
// order may continue to the next stage.
type Stage interface {
	Name() string
	Process(ctx context.Context, o *order.Order) bool
}

// Pipeline runs its stages in order and stops at the first one that halts
type Pipeline struct {
	stages []Stage
	logger *slog.Logger
}

func New(logger *slog.Logger, stages ...Stage) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{stages: stages, logger: logger}
}

// Default builds the stock check, payment and fulfillment pipeline
func Default(inv Inventory, n Notifier, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	return New(logger,
		NewStockValidator(inv, n, logger),
		NewPaymentProcessor(n, logger),
		NewOrderFulfillment(inv, n, logger),
	)
}

// Process returns true only when every stage passed. On a halt the order
// status is left where the last passing stage put it.
func (p *Pipeline) Process(ctx context.Context, o *order.Order) bool {
	for _, s := range p.stages {
		if !s.Process(ctx, o) {
			p.logger.Info("Order processing halted", "orderID", o.ID, "stage", s.Name(), "status", o.Status)
			return false
		}
	}
	p.logger.Info("Order processed", "orderID", o.ID, "status", o.Status)
	return true
}

// Stages returns the stage names in execution order
func (p *Pipeline) Stages() []string {
	names := make([]string, len(p.stages))
	for i, s := range p.stages {
		names[i] = s.Name()
	}
	return names
}

// Stage looks up a stage by name
func (p *Pipeline) Stage(name string) (Stage, bool) {
	for _, s := range p.stages {
		if s.Name() == name {
			return s, true
		}
	}
	return nil, false
}

func notify(ctx context.Context, n Notifier, logger *slog.Logger, o *order.Order, event types.EventType) {
	if n == nil {
		return
	}
	if err := n.Notify(ctx, o, event); err != nil {
		logger.Warn("Order notification incomplete", "orderID", o.ID, "event", event, "error", err)
	}
}
