package equipment

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"sport-store/storefront/types"
)

// Feature names reported by Item.Features
const (
	FeatureWarranty     = "warranty"
	FeatureInstallation = "installation"
	FeatureMaintenance  = "maintenance"
	FeatureInsurance    = "insurance"
)

// Insurance levels
const (
	InsuranceBasic    = "basic"
	InsuranceStandard = "standard"
	InsurancePremium  = "premium"
)

var (
	one              = decimal.NewFromInt(1)
	warrantyPerYear  = decimal.New(10, -2)
	maintenanceVisit = decimal.New(2, -2)
	installationRate = decimal.New(110, -2)

	insuranceRates = map[string]decimal.Decimal{
		InsuranceBasic:    decimal.New(105, -2),
		InsuranceStandard: decimal.New(110, -2),
		InsurancePremium:  decimal.New(115, -2),
	}
)

// feature forwards the identity of the wrapped item. Concrete decorators
// override Price, Description and Features.
type feature struct {
	inner Item
}

func (f feature) Inner() Item                { return f.inner }
func (f feature) ID() string                 { return f.inner.ID() }
func (f feature) Name() string               { return f.inner.Name() }
func (f feature) Category() string           { return f.inner.Category() }
func (f feature) BasePrice() decimal.Decimal { return f.inner.BasePrice() }
func (f feature) Specs() Specs               { return f.inner.Specs() }

func (f feature) features(name string) []string {
	inner := f.inner.Features()
	out := make([]string, 0, len(inner)+1)
	out = append(out, inner...)
	return append(out, name)
}

// Warranty extends the warranty by a number of years, adding 10% per year
type Warranty struct {
	feature
	years int
	specs Specs
}

// WithWarranty wraps item with an extended warranty of the given years
func WithWarranty(item Item, years int) (Item, error) {
	if years <= 0 {
		return nil, &types.ValidationError{Msg: "warranty years must be positive"}
	}
	base := item.Specs()
	specs, err := base.WithWarrantyMonths(base.WarrantyMonthsValue() + 12*years)
	if err != nil {
		return nil, err
	}
	return &Warranty{feature: feature{inner: item}, years: years, specs: specs}, nil
}

// Years returns the number of warranty years this decorator adds
func (w *Warranty) Years() int { return w.years }

func (w *Warranty) Price() decimal.Decimal {
	return w.inner.Price().Mul(one.Add(warrantyPerYear.Mul(decimal.NewFromInt(int64(w.years)))))
}

func (w *Warranty) Description() string {
	return fmt.Sprintf("%s with %d-year warranty", w.inner.Description(), w.years)
}

func (w *Warranty) Specs() Specs       { return w.specs }
func (w *Warranty) Features() []string { return w.features(FeatureWarranty) }

func (w *Warranty) withID(id string) Item {
	c := *w
	c.inner = w.inner.withID(id)
	return &c
}

// Installation adds professional installation for 10%
type Installation struct {
	feature
	on time.Time
}

// WithInstallation wraps item with installation scheduled on the given date
func WithInstallation(item Item, on time.Time) Item {
	return &Installation{feature: feature{inner: item}, on: on}
}

// Date returns the installation date
func (i *Installation) Date() time.Time { return i.on }

func (i *Installation) Price() decimal.Decimal {
	return i.inner.Price().Mul(installationRate)
}

func (i *Installation) Description() string {
	return fmt.Sprintf("%s with installation on %s", i.inner.Description(), i.on.Format(time.DateOnly))
}

func (i *Installation) Features() []string { return i.features(FeatureInstallation) }

func (i *Installation) withID(id string) Item {
	c := *i
	c.inner = i.inner.withID(id)
	return &c
}

// Maintenance adds a number of service visits at 2% each
type Maintenance struct {
	feature
	visits int
}

// WithMaintenance wraps item with a maintenance plan of the given visits
func WithMaintenance(item Item, visits int) (Item, error) {
	if visits <= 0 {
		return nil, &types.ValidationError{Msg: "maintenance visits must be positive"}
	}
	return &Maintenance{feature: feature{inner: item}, visits: visits}, nil
}

// Visits returns the number of maintenance visits
func (m *Maintenance) Visits() int { return m.visits }

func (m *Maintenance) Price() decimal.Decimal {
	return m.inner.Price().Mul(one.Add(maintenanceVisit.Mul(decimal.NewFromInt(int64(m.visits)))))
}

func (m *Maintenance) Description() string {
	return fmt.Sprintf("%s with %d maintenance visits", m.inner.Description(), m.visits)
}

func (m *Maintenance) Features() []string { return m.features(FeatureMaintenance) }

func (m *Maintenance) withID(id string) Item {
	c := *m
	c.inner = m.inner.withID(id)
	return &c
}

// Insurance adds damage coverage priced by level
type Insurance struct {
	feature
	level string
}

// WithInsurance wraps item with insurance. Unknown levels are treated as standard.
func WithInsurance(item Item, level string) Item {
	return &Insurance{feature: feature{inner: item}, level: NormalizeInsuranceLevel(level)}
}

// NormalizeInsuranceLevel maps level onto one of the known insurance levels
func NormalizeInsuranceLevel(level string) string {
	l := strings.ToLower(strings.TrimSpace(level))
	if _, ok := insuranceRates[l]; ok {
		return l
	}
	return InsuranceStandard
}

// Level returns the normalized insurance level
func (i *Insurance) Level() string { return i.level }

func (i *Insurance) Price() decimal.Decimal {
	return i.inner.Price().Mul(insuranceRates[i.level])
}

func (i *Insurance) Description() string {
	return fmt.Sprintf("%s with %s insurance", i.inner.Description(), i.level)
}

func (i *Insurance) Features() []string { return i.features(FeatureInsurance) }

func (i *Insurance) withID(id string) Item {
	c := *i
	c.inner = i.inner.withID(id)
	return &c
}

// WithPremiumPackage applies the premium bundle:
// premium insurance, 12 maintenance visits, installation and a 2-year warranty.
func WithPremiumPackage(item Item, on time.Time) Item {
	decorated := WithInsurance(item, InsurancePremium)
	decorated, _ = WithMaintenance(decorated, 12)
	decorated = WithInstallation(decorated, on)
	// warranty months only grow, so the specs stay valid
	decorated, _ = WithWarranty(decorated, 2)
	return decorated
}
