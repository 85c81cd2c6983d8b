package types

import "time"

// OrderStatus is the lifecycle position of an order in the processing pipeline
type OrderStatus string

const (
	StatusPending        OrderStatus = "pending"
	StatusStockValidated OrderStatus = "stock_validated"
	StatusPaid           OrderStatus = "paid"
	StatusFulfilled      OrderStatus = "fulfilled"
)

// Rank orders statuses along the pipeline. Unknown statuses rank below pending.
func (s OrderStatus) Rank() int {
	switch s {
	case StatusPending:
		return 0
	case StatusStockValidated:
		return 1
	case StatusPaid:
		return 2
	case StatusFulfilled:
		return 3
	}
	return -1
}

// Valid reports whether s is one of the known statuses
func (s OrderStatus) Valid() bool {
	return s.Rank() >= 0
}

// EventType names an order lifecycle event delivered to listeners
type EventType string

const (
	EventCreated        EventType = "created"
	EventStockValidated EventType = "stock_validated"
	EventPaid           EventType = "paid"
	EventFulfilled      EventType = "fulfilled"
)

// OrderSnapshot is the serializable form of an order passed to workflows and activities.
// The equipment line item travels by id and is resolved against the catalog.
type OrderSnapshot struct {
	OrderID         string
	EquipmentID     string
	Quantity        int
	CustomerID      string
	CustomerName    string
	CustomerEmail   string
	ShippingAddress string
	Status          OrderStatus
	Notes           []string
	CreatedAt       time.Time
}

// StageResult is returned by every pipeline stage activity
type StageResult struct {
	Stage  string
	Passed bool
	Status OrderStatus
}

// OrderResult is the outcome of the order workflow
type OrderResult struct {
	OrderID  string
	Passed   bool
	Status   OrderStatus
	HaltedAt string
}

// OrderWorkflowStatus represents the current state of an order workflow
type OrderWorkflowStatus struct {
	OrderID   string
	Stage     string
	Status    OrderStatus
	Completed []string
	Recorded  bool
	LastError string
}
