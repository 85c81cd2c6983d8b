package catalog

import (
	"sync"

	"github.com/google/uuid"

	"sport-store/storefront/equipment"
	"sport-store/storefront/order"
	"sport-store/storefront/types"
)

// Store is the in-memory registry of equipment, stock and orders.
// Every method is safe for concurrent use, but a check with IsInStock followed
// by RemoveEquipment is two separate operations: stock may change in between.
type Store struct {
	mu sync.RWMutex

	items    map[string]equipment.Item
	stock    map[string]int
	orders   map[string]*order.Order
	itemIDs  []string
	orderIDs []string
}

// New returns an empty store
func New() *Store {
	s := &Store{}
	s.reset()
	return s
}

func (s *Store) reset() {
	s.items = make(map[string]equipment.Item)
	s.stock = make(map[string]int)
	s.orders = make(map[string]*order.Order)
	s.itemIDs = nil
	s.orderIDs = nil
}

// AddEquipment registers item with qty units, or adds qty units to an
// existing record with the same id. An item with no id is given one.
// The returned item is the one held by the catalog.
func (s *Store) AddEquipment(item equipment.Item, qty int) (equipment.Item, error) {
	if qty <= 0 {
		return nil, &types.InvalidQuantityError{Quantity: qty}
	}
	if item.ID() == "" {
		item = equipment.WithID(item, uuid.NewString())
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id := item.ID()
	stored, ok := s.items[id]
	if !ok {
		s.items[id] = item
		s.itemIDs = append(s.itemIDs, id)
		stored = item
	}
	s.stock[id] += qty
	return stored, nil
}

// RemoveEquipment takes qty units of item out of stock. It returns false
// when the item is unknown or fewer than qty units are available.
func (s *Store) RemoveEquipment(item equipment.Item, qty int) (bool, error) {
	if qty <= 0 {
		return false, &types.InvalidQuantityError{Quantity: qty}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	have, ok := s.stock[item.ID()]
	if !ok || have < qty {
		return false, nil
	}
	s.stock[item.ID()] = have - qty
	return true, nil
}

// Equipment returns the record stored under id
func (s *Store) Equipment(id string) (equipment.Item, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	item, ok := s.items[id]
	return item, ok
}

// AllEquipment returns every record in insertion order
func (s *Store) AllEquipment() []equipment.Item {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]equipment.Item, 0, len(s.itemIDs))
	for _, id := range s.itemIDs {
		out = append(out, s.items[id])
	}
	return out
}

// Stock returns the units available for id, zero when unknown
func (s *Store) Stock(id string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stock[id]
}

// IsInStock reports whether at least qty units of item are available
func (s *Store) IsInStock(item equipment.Item, qty int) bool {
	return s.Stock(item.ID()) >= qty
}

// UpdateEquipment replaces the record for id with item, rebinding item to id.
// Stock is untouched. It returns false when id is unknown.
func (s *Store) UpdateEquipment(id string, item equipment.Item) (equipment.Item, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[id]; !ok {
		return nil, false
	}
	item = equipment.WithID(item, id)
	s.items[id] = item
	return item, true
}

// AddOrder stores o, replacing any order with the same id
func (s *Store) AddOrder(o *order.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.orders[o.ID]; !ok {
		s.orderIDs = append(s.orderIDs, o.ID)
	}
	s.orders[o.ID] = o
}

// Order returns the order stored under id
func (s *Store) Order(id string) (*order.Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	o, ok := s.orders[id]
	return o, ok
}

// AllOrders returns every order in insertion order
func (s *Store) AllOrders() []*order.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*order.Order, 0, len(s.orderIDs))
	for _, id := range s.orderIDs {
		out = append(out, s.orders[id])
	}
	return out
}

// OrdersByCustomer returns the orders placed by customerID in insertion order
func (s *Store) OrdersByCustomer(customerID string) []*order.Order {
	var out []*order.Order
	for _, o := range s.AllOrders() {
		if o.CustomerID == customerID {
			out = append(out, o)
		}
	}
	return out
}

// UpdateOrderStatus sets the status of a stored order. Unknown ids are ignored.
func (s *Store) UpdateOrderStatus(id string, status types.OrderStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if o, ok := s.orders[id]; ok {
		o.Status = status
	}
}

// Clear empties equipment, stock and orders
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reset()
}
