package pricing

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"sport-store/storefront/equipment"
	"sport-store/storefront/types"
)

// Kind tags a pricing strategy variant
type Kind string

const (
	KindRegular   Kind = "regular"
	KindBulk      Kind = "bulk"
	KindSeasonal  Kind = "seasonal"
	KindPremium   Kind = "premium"
	KindPromoCode Kind = "promo_code"
	KindLoyalty   Kind = "loyalty"
)

const (
	maxBulkDiscount     = 20.0
	maxSeasonalDiscount = 30.0
)

var (
	hundred       = decimal.NewFromInt(100)
	premiumMarkup = decimal.New(12, -1)
)

// Params are the optional per-call inputs some strategies read
type Params struct {
	PromoCode     string
	LoyaltyPoints int
}

// Strategy computes the price of quantity units of an item.
// Implementations keep no per-item state and may be shared across calls.
type Strategy interface {
	Kind() Kind
	Calculate(item equipment.Item, quantity int, p Params) (decimal.Decimal, error)
}

// baseTotal is the unit price times quantity
func baseTotal(item equipment.Item, quantity int) (decimal.Decimal, error) {
	if quantity <= 0 {
		return decimal.Zero, &types.InvalidQuantityError{Quantity: quantity}
	}
	return item.Price().Mul(decimal.NewFromInt(int64(quantity))), nil
}

// discounted returns total reduced by percent
func discounted(total, percent decimal.Decimal) decimal.Decimal {
	return total.Sub(total.Mul(percent).Div(hundred))
}

func validatePercent(percent float64) error {
	if percent <= 0 || percent >= 100 {
		return &types.InvalidConfigurationError{Msg: "discount percent must be between 0 and 100"}
	}
	return nil
}

// Regular charges the base total
type Regular struct{}

func (Regular) Kind() Kind { return KindRegular }

func (Regular) Calculate(item equipment.Item, quantity int, _ Params) (decimal.Decimal, error) {
	return baseTotal(item, quantity)
}

// Bulk discounts orders of at least Threshold units
type Bulk struct {
	threshold int
	percent   decimal.Decimal
}

// NewBulk validates the configuration; percent is capped at 20
func NewBulk(threshold int, percent float64) (*Bulk, error) {
	if threshold <= 0 {
		return nil, &types.InvalidConfigurationError{Msg: "threshold must be positive"}
	}
	if err := validatePercent(percent); err != nil {
		return nil, err
	}
	return &Bulk{
		threshold: threshold,
		percent:   decimal.NewFromFloat(min(percent, maxBulkDiscount)),
	}, nil
}

func (b *Bulk) Kind() Kind                { return KindBulk }
func (b *Bulk) Threshold() int            { return b.threshold }
func (b *Bulk) Percent() decimal.Decimal { return b.percent }

func (b *Bulk) Calculate(item equipment.Item, quantity int, _ Params) (decimal.Decimal, error) {
	total, err := baseTotal(item, quantity)
	if err != nil {
		return decimal.Zero, err
	}
	if quantity >= b.threshold {
		return discounted(total, b.percent), nil
	}
	return total, nil
}

// Seasonal discounts purchases made in the winter months
type Seasonal struct {
	percent decimal.Decimal
	now     func() time.Time
}

// NewSeasonal validates the configuration; percent is capped at 30
func NewSeasonal(percent float64) (*Seasonal, error) {
	if err := validatePercent(percent); err != nil {
		return nil, err
	}
	return &Seasonal{
		percent: decimal.NewFromFloat(min(percent, maxSeasonalDiscount)),
		now:     time.Now,
	}, nil
}

// WithClock returns a copy of s that reads the current time from now
func (s *Seasonal) WithClock(now func() time.Time) *Seasonal {
	c := *s
	c.now = now
	return &c
}

func (s *Seasonal) Kind() Kind                { return KindSeasonal }
func (s *Seasonal) Percent() decimal.Decimal { return s.percent }

func (s *Seasonal) Calculate(item equipment.Item, quantity int, _ Params) (decimal.Decimal, error) {
	total, err := baseTotal(item, quantity)
	if err != nil {
		return decimal.Zero, err
	}
	switch s.now().Month() {
	case time.December, time.January, time.February:
		return discounted(total, s.percent), nil
	}
	return total, nil
}

// Premium marks the base total up by 20%
type Premium struct{}

func (Premium) Kind() Kind { return KindPremium }

func (Premium) Calculate(item equipment.Item, quantity int, _ Params) (decimal.Decimal, error) {
	total, err := baseTotal(item, quantity)
	if err != nil {
		return decimal.Zero, err
	}
	return total.Mul(premiumMarkup), nil
}

// PromoCode discounts by a registered promotional code
type PromoCode struct {
	mu    sync.RWMutex
	codes map[string]decimal.Decimal
}

func NewPromoCode() *PromoCode {
	return &PromoCode{codes: make(map[string]decimal.Decimal)}
}

func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// AddCode registers code with a discount percent
func (p *PromoCode) AddCode(code string, percent float64) error {
	key := normalizeCode(code)
	if key == "" {
		return &types.InvalidConfigurationError{Msg: "invalid promo code"}
	}
	if err := validatePercent(percent); err != nil {
		return err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.codes[key] = decimal.NewFromFloat(percent)
	return nil
}

// Discount returns the percent registered for code
func (p *PromoCode) Discount(code string) (decimal.Decimal, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	d, ok := p.codes[normalizeCode(code)]
	return d, ok
}

func (p *PromoCode) Kind() Kind { return KindPromoCode }

func (p *PromoCode) Calculate(item equipment.Item, quantity int, params Params) (decimal.Decimal, error) {
	total, err := baseTotal(item, quantity)
	if err != nil {
		return decimal.Zero, err
	}
	if percent, ok := p.Discount(params.PromoCode); ok {
		return discounted(total, percent), nil
	}
	return total, nil
}

// Loyalty discounts by tiers of accumulated loyalty points
type Loyalty struct{}

var loyaltyTiers = []struct {
	points  int
	percent decimal.Decimal
}{
	{200, decimal.NewFromInt(15)},
	{100, decimal.NewFromInt(10)},
	{50, decimal.NewFromInt(5)},
}

func (Loyalty) Kind() Kind { return KindLoyalty }

func (Loyalty) Calculate(item equipment.Item, quantity int, p Params) (decimal.Decimal, error) {
	total, err := baseTotal(item, quantity)
	if err != nil {
		return decimal.Zero, err
	}
	if p.LoyaltyPoints < 0 {
		return decimal.Zero, &types.InvalidInputError{Msg: fmt.Sprintf("invalid loyalty points %d", p.LoyaltyPoints)}
	}
	for _, tier := range loyaltyTiers {
		if p.LoyaltyPoints >= tier.points {
			return discounted(total, tier.percent), nil
		}
	}
	return total, nil
}
