package order

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"sport-store/storefront/equipment"
	"sport-store/storefront/types"
)

// Order is a customer's request to buy Quantity units of one equipment item.
// An order without equipment is a placeholder with quantity zero.
type Order struct {
	ID              string
	Equipment       equipment.Item
	Quantity        int
	CustomerID      string
	CustomerName    string
	CustomerEmail   string
	ShippingAddress string
	Status          types.OrderStatus
	Notes           []string
	CreatedAt       time.Time
}

// Params is the input for New
type Params struct {
	ID              string
	Equipment       equipment.Item
	Quantity        int
	CustomerID      string
	CustomerName    string
	CustomerEmail   string
	ShippingAddress string
}

// New validates p and returns a pending order
func New(p Params) (*Order, error) {
	if p.CustomerID == "" {
		return nil, &types.ValidationError{Msg: "customer id is required"}
	}
	if p.Equipment != nil && p.Quantity <= 0 {
		return nil, &types.ValidationError{Msg: "quantity must be positive"}
	}
	if p.Equipment == nil && p.Quantity > 0 {
		return nil, &types.ValidationError{Msg: "equipment is required for non-empty orders"}
	}
	if p.Quantity < 0 {
		return nil, &types.ValidationError{Msg: "quantity must not be negative"}
	}
	id := p.ID
	if id == "" {
		id = uuid.NewString()
	}
	return &Order{
		ID:              id,
		Equipment:       p.Equipment,
		Quantity:        p.Quantity,
		CustomerID:      p.CustomerID,
		CustomerName:    p.CustomerName,
		CustomerEmail:   p.CustomerEmail,
		ShippingAddress: p.ShippingAddress,
		Status:          types.StatusPending,
		CreatedAt:       time.Now().UTC(),
	}, nil
}

// HasLineItem reports whether the order references equipment
func (o *Order) HasLineItem() bool {
	return o.Equipment != nil
}

// EquipmentID returns the referenced equipment id, or "" for placeholders
func (o *Order) EquipmentID() string {
	if o.Equipment == nil {
		return ""
	}
	return o.Equipment.ID()
}

// TotalPrice is the decorated unit price times quantity
func (o *Order) TotalPrice() decimal.Decimal {
	if o.Equipment == nil {
		return decimal.Zero
	}
	return o.Equipment.Price().Mul(decimal.NewFromInt(int64(o.Quantity)))
}

// Advance moves the order to next. It refuses to move backwards or sideways
// and reports whether the status changed.
func (o *Order) Advance(next types.OrderStatus) bool {
	if !next.Valid() || next.Rank() <= o.Status.Rank() {
		return false
	}
	o.Status = next
	return true
}

// AddNote appends a free-form note
func (o *Order) AddNote(note string) error {
	if note == "" {
		return &types.ValidationError{Msg: "note cannot be empty"}
	}
	o.Notes = append(o.Notes, note)
	return nil
}

func (o *Order) String() string {
	name := "No equipment"
	if o.Equipment != nil {
		name = o.Equipment.Name()
	}
	return fmt.Sprintf("Order %s: %dx %s - %s", o.ID, o.Quantity, name, o.Status)
}

// Snapshot returns the serializable form of the order
func (o *Order) Snapshot() types.OrderSnapshot {
	notes := make([]string, len(o.Notes))
	copy(notes, o.Notes)
	return types.OrderSnapshot{
		OrderID:         o.ID,
		EquipmentID:     o.EquipmentID(),
		Quantity:        o.Quantity,
		CustomerID:      o.CustomerID,
		CustomerName:    o.CustomerName,
		CustomerEmail:   o.CustomerEmail,
		ShippingAddress: o.ShippingAddress,
		Status:          o.Status,
		Notes:           notes,
		CreatedAt:       o.CreatedAt,
	}
}

// FromSnapshot rebuilds an order from s with its equipment already resolved.
// item must be nil exactly when s carries no equipment id.
func FromSnapshot(s types.OrderSnapshot, item equipment.Item) (*Order, error) {
	if (item == nil) != (s.EquipmentID == "") {
		return nil, &types.ValidationError{Msg: fmt.Sprintf("order %s: equipment does not match snapshot", s.OrderID)}
	}
	if item != nil && item.ID() != s.EquipmentID {
		return nil, &types.ValidationError{Msg: fmt.Sprintf("order %s: equipment %s does not match %s", s.OrderID, item.ID(), s.EquipmentID)}
	}
	o, err := New(Params{
		ID:              s.OrderID,
		Equipment:       item,
		Quantity:        s.Quantity,
		CustomerID:      s.CustomerID,
		CustomerName:    s.CustomerName,
		CustomerEmail:   s.CustomerEmail,
		ShippingAddress: s.ShippingAddress,
	})
	if err != nil {
		return nil, err
	}
	if s.Status != "" {
		if !s.Status.Valid() {
			return nil, &types.ValidationError{Msg: fmt.Sprintf("unknown order status %q", s.Status)}
		}
		o.Status = s.Status
	}
	o.Notes = append(o.Notes, s.Notes...)
	if !s.CreatedAt.IsZero() {
		o.CreatedAt = s.CreatedAt
	}
	return o, nil
}
