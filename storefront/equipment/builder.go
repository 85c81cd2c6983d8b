package equipment

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// Kind selects the preset a Builder starts from
type Kind string

const (
	KindGeneral   Kind = "general"
	KindTreadmill Kind = "treadmill"
	KindPowerRack Kind = "power_rack"
)

const colorBlackRed = "Black/Red"

// AvailableColors maps supported colors to their display names
var AvailableColors = map[string]string{
	"Black":       "Classic black",
	"White":       "White",
	"Silver":      "Silver",
	"Red":         "Red",
	"Blue":        "Blue",
	colorBlackRed: "Black with red",
	"Gray":        "Gray",
}

// IsValidColor reports whether color is one of AvailableColors
func IsValidColor(color string) bool {
	_, ok := AvailableColors[color]
	return ok
}

// Builder assembles equipment step by step. Setters return the builder for chaining;
// validation happens in Build.
type Builder struct {
	kind           Kind
	name           string
	description    string
	basePrice      decimal.Decimal
	category       string
	dimensions     string
	weight         string
	material       string
	color          string
	maxUserWeight  string
	warrantyMonths string
}

// NewBuilder returns a builder with general-purpose defaults
func NewBuilder() *Builder {
	return &Builder{
		kind:           KindGeneral,
		description:    "Standard equipment",
		category:       "General",
		dimensions:     "0x0x0",
		weight:         "75.0",
		material:       "Steel",
		color:          "Black",
		maxUserWeight:  "150.0",
		warrantyMonths: "12",
	}
}

// NewTreadmillBuilder returns a builder preset for treadmills
func NewTreadmillBuilder() *Builder {
	b := NewBuilder()
	b.kind = KindTreadmill
	b.category = "Cardio"
	b.dimensions = "200x80x140"
	b.description = "Professional treadmill with advanced features"
	return b
}

// NewPowerRackBuilder returns a builder preset for power racks
func NewPowerRackBuilder() *Builder {
	b := NewBuilder()
	b.kind = KindPowerRack
	b.category = "Strength"
	b.color = colorBlackRed
	b.warrantyMonths = "36"
	return b
}

// Kind returns the preset this builder was created from
func (b *Builder) Kind() Kind { return b.kind }

func (b *Builder) SetName(name string) *Builder {
	b.name = name
	return b
}

func (b *Builder) SetDescription(description string) *Builder {
	b.description = description
	return b
}

func (b *Builder) SetBasePrice(price decimal.Decimal) *Builder {
	b.basePrice = price
	return b
}

func (b *Builder) SetCategory(category string) *Builder {
	b.category = category
	return b
}

func (b *Builder) SetDimensions(dimensions string) *Builder {
	b.dimensions = dimensions
	return b
}

func (b *Builder) SetWeight(kg float64) *Builder {
	b.weight = formatFloat(kg)
	return b
}

func (b *Builder) SetMaterial(material string) *Builder {
	b.material = material
	return b
}

func (b *Builder) SetColor(color string) *Builder {
	b.color = color
	return b
}

func (b *Builder) SetMaxUserWeight(kg float64) *Builder {
	b.maxUserWeight = formatFloat(kg)
	return b
}

func (b *Builder) SetWarrantyMonths(months int) *Builder {
	b.warrantyMonths = strconv.Itoa(months)
	return b
}

// Build validates the collected fields and returns the equipment
func (b *Builder) Build() (*Equipment, error) {
	specs, err := NewSpecs(SpecsParams{
		Weight:         b.weight,
		Dimensions:     b.dimensions,
		Material:       b.material,
		Color:          b.color,
		MaxUserWeight:  b.maxUserWeight,
		WarrantyMonths: b.warrantyMonths,
	})
	if err != nil {
		return nil, err
	}
	return New(Params{
		Name:        b.name,
		Description: b.description,
		BasePrice:   b.basePrice,
		Category:    b.category,
		Specs:       specs,
	})
}

// Director drives a builder through the steps of a known model
type Director struct {
	builder *Builder
}

func NewDirector(b *Builder) *Director {
	return &Director{builder: b}
}

// ChangeBuilder switches the builder the director works with
func (d *Director) ChangeBuilder(b *Builder) {
	d.builder = b
}

// ConstructBasicModel configures the builder with the basic model of its kind.
// Unsupported colors fall back to the model's default; other kinds are left as is.
func (d *Director) ConstructBasicModel(color string) *Builder {
	b := d.builder
	switch b.kind {
	case KindTreadmill:
		b.SetName("Professional Treadmill").
			SetDescription("Professional grade treadmill with advanced features").
			SetBasePrice(decimal.RequireFromString("1999.99")).
			SetWeight(125.0).
			SetDimensions("200x85x140").
			SetColor(colorOr(color, "Black")).
			SetMaxUserWeight(180.0)
	case KindPowerRack:
		b.SetName("Professional Power Rack").
			SetDescription("Heavy-duty power rack for professional use").
			SetBasePrice(decimal.RequireFromString("1499.99")).
			SetWeight(200.0).
			SetDimensions("140x140x230").
			SetMaterial("Heavy Gauge Steel").
			SetColor(colorOr(color, colorBlackRed)).
			SetMaxUserWeight(450.0)
	}
	return b
}

func colorOr(color, fallback string) string {
	if IsValidColor(color) {
		return color
	}
	return fallback
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
