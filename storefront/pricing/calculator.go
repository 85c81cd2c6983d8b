package pricing

import (
	"errors"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"sport-store/storefront/equipment"
)

// ErrUnknownKind is returned when no strategy is configured for a kind
var ErrUnknownKind = errors.New("unknown pricing strategy")

// Calculator prices items with a swappable strategy
type Calculator struct {
	strategy Strategy
}

func NewCalculator(s Strategy) *Calculator {
	return &Calculator{strategy: s}
}

// SetStrategy replaces the strategy used by subsequent calls
func (c *Calculator) SetStrategy(s Strategy) {
	c.strategy = s
}

func (c *Calculator) Strategy() Strategy { return c.strategy }

func (c *Calculator) Calculate(item equipment.Item, quantity int, p Params) (decimal.Decimal, error) {
	return c.strategy.Calculate(item, quantity, p)
}

// Config selects and parameterizes a strategy. Only the fields of the chosen kind are read.
type Config struct {
	Kind            Kind
	BulkThreshold   int
	BulkPercent     float64
	SeasonalPercent float64
	PromoCodes      map[string]float64
}

// New builds the strategy described by cfg
func New(cfg Config) (Strategy, error) {
	switch cfg.Kind {
	case KindRegular, "":
		return Regular{}, nil
	case KindBulk:
		return NewBulk(cfg.BulkThreshold, cfg.BulkPercent)
	case KindSeasonal:
		return NewSeasonal(cfg.SeasonalPercent)
	case KindPremium:
		return Premium{}, nil
	case KindPromoCode:
		p := NewPromoCode()
		for code, percent := range cfg.PromoCodes {
			if err := p.AddCode(code, percent); err != nil {
				return nil, fmt.Errorf("promo code %q: %w", code, err)
			}
		}
		return p, nil
	case KindLoyalty:
		return Loyalty{}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownKind, cfg.Kind)
}

// Registry holds one configured strategy per kind
type Registry struct {
	strategies map[Kind]Strategy
}

// AllKinds lists every strategy variant
var AllKinds = []Kind{KindRegular, KindBulk, KindSeasonal, KindPremium, KindPromoCode, KindLoyalty}

// NewRegistry builds every strategy variant from the shared settings in cfg.
// cfg.Kind is ignored.
func NewRegistry(cfg Config) (*Registry, error) {
	r := &Registry{strategies: make(map[Kind]Strategy, len(AllKinds))}
	for _, kind := range AllKinds {
		c := cfg
		c.Kind = kind
		s, err := New(c)
		if err != nil {
			return nil, fmt.Errorf("build %s strategy: %w", kind, err)
		}
		r.strategies[kind] = s
	}
	return r, nil
}

// Get returns the strategy for kind
func (r *Registry) Get(kind Kind) (Strategy, error) {
	if kind == "" {
		kind = KindRegular
	}
	s, ok := r.strategies[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	return s, nil
}

// Kinds returns the registered kinds in sorted order
func (r *Registry) Kinds() []Kind {
	out := make([]Kind, 0, len(r.strategies))
	for k := range r.strategies {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
