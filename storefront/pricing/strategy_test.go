package pricing

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sport-store/storefront/equipment"
	"sport-store/storefront/types"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func testItem(t *testing.T, price string) equipment.Item {
	t.Helper()
	e, err := equipment.New(equipment.Params{
		Name:        "Power Rack",
		Description: "Heavy-duty power rack",
		BasePrice:   dec(price),
		Category:    "Strength",
		Specs: equipment.MustSpecs(equipment.SpecsParams{
			Weight: "200", Dimensions: "140x140x230", Material: "Steel",
			Color: "Black/Red", MaxUserWeight: "450", WarrantyMonths: "36",
		}),
	})
	require.NoError(t, err)
	return e
}

func assertPrice(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, got.Equal(dec(want)), "want %s, got %s", want, got)
}

func TestInvalidQuantity(t *testing.T) {
	item := testItem(t, "100")
	bulk, err := NewBulk(5, 10)
	require.NoError(t, err)
	seasonal, err := NewSeasonal(20)
	require.NoError(t, err)

	for _, s := range []Strategy{Regular{}, bulk, seasonal, Premium{}, NewPromoCode(), Loyalty{}} {
		for _, qty := range []int{0, -3} {
			_, err := s.Calculate(item, qty, Params{})
			var qerr *types.InvalidQuantityError
			assert.True(t, errors.As(err, &qerr), "%s qty=%d: %v", s.Kind(), qty, err)
		}
	}
}

func TestRegular(t *testing.T) {
	price, err := Regular{}.Calculate(testItem(t, "999.99"), 3, Params{})
	require.NoError(t, err)
	assertPrice(t, "2999.97", price)
}

func TestRegular_UsesDecoratedPrice(t *testing.T) {
	item := equipment.WithInsurance(testItem(t, "100"), "basic")
	price, err := Regular{}.Calculate(item, 2, Params{})
	require.NoError(t, err)
	assertPrice(t, "210", price)
}

func TestBulk(t *testing.T) {
	item := testItem(t, "49.99")
	base := item.Price()
	for _, percent := range []float64{5, 10, 20, 25, 99} {
		bulk, err := NewBulk(5, percent)
		require.NoError(t, err)
		effective := decimal.NewFromFloat(min(percent, 20))

		for qty := 1; qty <= 8; qty++ {
			t.Run(fmt.Sprintf("percent=%v,qty=%d", percent, qty), func(t *testing.T) {
				got, err := bulk.Calculate(item, qty, Params{})
				require.NoError(t, err)
				total := base.Mul(decimal.NewFromInt(int64(qty)))
				want := total
				if qty >= 5 {
					want = total.Mul(decimal.NewFromInt(1).Sub(effective.Div(decimal.NewFromInt(100))))
				}
				assert.True(t, got.Equal(want), "want %s got %s", want, got)
			})
		}
	}
}

func TestBulk_InvalidConfiguration(t *testing.T) {
	tests := []struct {
		threshold int
		percent   float64
	}{
		{0, 10},
		{-1, 10},
		{5, 0},
		{5, -5},
		{5, 100},
		{5, 150},
	}
	for _, tt := range tests {
		_, err := NewBulk(tt.threshold, tt.percent)
		var cerr *types.InvalidConfigurationError
		assert.True(t, errors.As(err, &cerr), "threshold=%d percent=%v", tt.threshold, tt.percent)
	}
}

func TestSeasonal(t *testing.T) {
	item := testItem(t, "200")
	s, err := NewSeasonal(50)
	require.NoError(t, err)
	assert.True(t, s.Percent().Equal(decimal.NewFromInt(30)))

	for month := time.January; month <= time.December; month++ {
		clock := func() time.Time { return time.Date(2026, month, 15, 12, 0, 0, 0, time.UTC) }
		got, err := s.WithClock(clock).Calculate(item, 2, Params{})
		require.NoError(t, err)

		switch month {
		case time.December, time.January, time.February:
			assertPrice(t, "280", got)
		default:
			assertPrice(t, "400", got)
		}
	}

	_, err = NewSeasonal(100)
	var cerr *types.InvalidConfigurationError
	assert.True(t, errors.As(err, &cerr))
}

func TestPremium(t *testing.T) {
	got, err := Premium{}.Calculate(testItem(t, "1499.99"), 1, Params{})
	require.NoError(t, err)
	assertPrice(t, "1799.988", got)
}

func TestPromoCode(t *testing.T) {
	item := testItem(t, "100")
	p := NewPromoCode()
	require.NoError(t, p.AddCode("  Winter25 ", 25))

	tests := []struct {
		code string
		want string
	}{
		{"WINTER25", "150"},
		{"winter25", "150"},
		{" wInTeR25\t", "150"},
		{"SUMMER", "200"},
		{"", "200"},
	}
	for _, tt := range tests {
		got, err := p.Calculate(item, 2, Params{PromoCode: tt.code})
		require.NoError(t, err)
		assertPrice(t, tt.want, got)
	}
}

func TestPromoCode_AddCodeValidation(t *testing.T) {
	p := NewPromoCode()
	var cerr *types.InvalidConfigurationError
	assert.True(t, errors.As(p.AddCode("", 10), &cerr))
	assert.True(t, errors.As(p.AddCode("   ", 10), &cerr))
	assert.True(t, errors.As(p.AddCode("X", 0), &cerr))
	assert.True(t, errors.As(p.AddCode("X", 100), &cerr))
	_, ok := p.Discount("X")
	assert.False(t, ok)
}

func TestLoyaltyBoundaries(t *testing.T) {
	item := testItem(t, "100")
	tests := []struct {
		points int
		want   string
	}{
		{0, "100"},
		{49, "100"},
		{50, "95"},
		{99, "95"},
		{100, "90"},
		{199, "90"},
		{200, "85"},
		{10000, "85"},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("points=%d", tt.points), func(t *testing.T) {
			got, err := Loyalty{}.Calculate(item, 1, Params{LoyaltyPoints: tt.points})
			require.NoError(t, err)
			assertPrice(t, tt.want, got)
		})
	}

	_, err := Loyalty{}.Calculate(item, 1, Params{LoyaltyPoints: -1})
	var ierr *types.InvalidInputError
	assert.True(t, errors.As(err, &ierr))
}

func TestStrategyReusableAcrossItems(t *testing.T) {
	bulk, err := NewBulk(2, 10)
	require.NoError(t, err)
	a := testItem(t, "10")
	b := testItem(t, "20")

	pa, err := bulk.Calculate(a, 2, Params{})
	require.NoError(t, err)
	pb, err := bulk.Calculate(b, 2, Params{})
	require.NoError(t, err)
	pa2, err := bulk.Calculate(a, 2, Params{})
	require.NoError(t, err)

	assertPrice(t, "18", pa)
	assertPrice(t, "36", pb)
	assert.True(t, pa.Equal(pa2))
}
