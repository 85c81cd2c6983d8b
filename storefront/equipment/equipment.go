package equipment

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"sport-store/storefront/types"
)

// Item is implemented by base equipment and by every feature decorator
// wrapping it. The set of implementations is closed to this package.
type Item interface {
	ID() string
	Name() string
	Category() string
	// BasePrice is the undecorated price of the underlying equipment
	BasePrice() decimal.Decimal
	// Price is the unit price after every applied feature
	Price() decimal.Decimal
	Description() string
	Specs() Specs
	// Features lists the applied features, innermost first
	Features() []string

	withID(id string) Item
}

// Equipment is a base catalog record
type Equipment struct {
	id          string
	name        string
	description string
	basePrice   decimal.Decimal
	category    string
	specs       Specs
}

// Params is the input for New. ID may be empty, in which case one is generated.
type Params struct {
	ID          string
	Name        string
	Description string
	BasePrice   decimal.Decimal
	Category    string
	Specs       Specs
}

// New validates p and returns a base equipment record
func New(p Params) (*Equipment, error) {
	if p.Name == "" {
		return nil, &types.ValidationError{Msg: "name must be a non-empty string"}
	}
	if p.Description == "" {
		return nil, &types.ValidationError{Msg: "description must be a non-empty string"}
	}
	if !p.BasePrice.IsPositive() {
		return nil, &types.ValidationError{Msg: "base price must be a positive number"}
	}
	if p.Category == "" {
		return nil, &types.ValidationError{Msg: "category must be a non-empty string"}
	}
	if p.Specs.IsZero() {
		return nil, &types.ValidationError{Msg: "specs are required"}
	}
	id := p.ID
	if id == "" {
		id = uuid.NewString()
	}
	return &Equipment{
		id:          id,
		name:        p.Name,
		description: p.Description,
		basePrice:   p.BasePrice,
		category:    p.Category,
		specs:       p.Specs,
	}, nil
}

// ParsePrice coerces a numeric string into a price
func ParsePrice(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, &types.ValidationError{Msg: fmt.Sprintf("base price %q must be a valid number", s)}
	}
	return d, nil
}

func (e *Equipment) ID() string                 { return e.id }
func (e *Equipment) Name() string               { return e.name }
func (e *Equipment) Category() string           { return e.category }
func (e *Equipment) BasePrice() decimal.Decimal { return e.basePrice }
func (e *Equipment) Price() decimal.Decimal     { return e.basePrice }
func (e *Equipment) Description() string        { return e.description }
func (e *Equipment) Specs() Specs               { return e.specs }
func (e *Equipment) Features() []string         { return nil }

func (e *Equipment) String() string {
	return fmt.Sprintf("%s (%s) - $%s", e.name, e.category, e.basePrice.StringFixed(2))
}

func (e *Equipment) withID(id string) Item {
	c := *e
	c.id = id
	return &c
}

// WithID returns item bound to id. Decorated items are rebuilt around a
// re-bound base so the wrapped value is never modified.
func WithID(item Item, id string) Item {
	if item.ID() == id {
		return item
	}
	return item.withID(id)
}

// Unwrap returns the base equipment underneath any number of decorators
func Unwrap(item Item) *Equipment {
	for {
		switch v := item.(type) {
		case *Equipment:
			return v
		case interface{ Inner() Item }:
			item = v.Inner()
		default:
			return nil
		}
	}
}
