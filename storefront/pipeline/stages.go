package pipeline

import (
	"context"
	"log/slog"

	"sport-store/storefront/order"
	"sport-store/storefront/types"
)

// StockValidator checks that the catalog holds enough units for the order.
// Orders without a line item pass untouched.
type StockValidator struct {
	inventory Inventory
	notifier  Notifier
	logger    *slog.Logger
}

func NewStockValidator(inv Inventory, n Notifier, logger *slog.Logger) *StockValidator {
	if logger == nil {
		logger = slog.Default()
	}
	return &StockValidator{inventory: inv, notifier: n, logger: logger}
}

func (s *StockValidator) Name() string { return StageValidateStock }

func (s *StockValidator) Process(ctx context.Context, o *order.Order) bool {
	if !o.HasLineItem() {
		return true
	}
	if !s.inventory.IsInStock(o.Equipment, o.Quantity) {
		s.logger.Warn("Insufficient stock", "orderID", o.ID, "equipmentID", o.EquipmentID(), "quantity", o.Quantity)
		return false
	}
	o.Advance(types.StatusStockValidated)
	s.logger.Info("Stock validated", "orderID", o.ID, "equipmentID", o.EquipmentID())
	notify(ctx, s.notifier, s.logger, o, types.EventStockValidated)
	return true
}

// PaymentProcessor charges the customer. There is no gateway: any order
// with a customer id is paid.
type PaymentProcessor struct {
	notifier Notifier
	logger   *slog.Logger
}

func NewPaymentProcessor(n Notifier, logger *slog.Logger) *PaymentProcessor {
	if logger == nil {
		logger = slog.Default()
	}
	return &PaymentProcessor{notifier: n, logger: logger}
}

func (p *PaymentProcessor) Name() string { return StageProcessPayment }

func (p *PaymentProcessor) Process(ctx context.Context, o *order.Order) bool {
	if o.CustomerID == "" {
		p.logger.Warn("Payment rejected: missing customer id", "orderID", o.ID)
		return false
	}
	o.Advance(types.StatusPaid)
	p.logger.Info("Payment processed", "orderID", o.ID, "amount", o.TotalPrice().StringFixed(2))
	notify(ctx, p.notifier, p.logger, o, types.EventPaid)
	return true
}

// OrderFulfillment takes the ordered units out of stock. It only accepts
// paid orders, and fails if stock changed since validation.
type OrderFulfillment struct {
	inventory Inventory
	notifier  Notifier
	logger    *slog.Logger
}

func NewOrderFulfillment(inv Inventory, n Notifier, logger *slog.Logger) *OrderFulfillment {
	if logger == nil {
		logger = slog.Default()
	}
	return &OrderFulfillment{inventory: inv, notifier: n, logger: logger}
}

func (f *OrderFulfillment) Name() string { return StageFulfillOrder }

func (f *OrderFulfillment) Process(ctx context.Context, o *order.Order) bool {
	if o.Status != types.StatusPaid {
		f.logger.Warn("Fulfillment rejected: order not paid", "orderID", o.ID, "status", o.Status)
		return false
	}
	if !o.HasLineItem() {
		return true
	}
	removed, err := f.inventory.RemoveEquipment(o.Equipment, o.Quantity)
	if err != nil {
		f.logger.Error("Fulfillment failed", "orderID", o.ID, "error", err)
		return false
	}
	if !removed {
		f.logger.Warn("Stock changed before fulfillment", "orderID", o.ID, "equipmentID", o.EquipmentID())
		return false
	}
	o.Advance(types.StatusFulfilled)
	f.logger.Info("Order fulfilled", "orderID", o.ID, "equipmentID", o.EquipmentID(), "quantity", o.Quantity)
	notify(ctx, f.notifier, f.logger, o, types.EventFulfilled)
	return true
}
