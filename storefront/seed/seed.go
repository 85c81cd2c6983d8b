package seed

import (
	"fmt"
	"log/slog"

	"sport-store/storefront/equipment"
)

// UnitsPerItem is the stock loaded for every sample item
const UnitsPerItem = 5

// Catalog receives the sample equipment
type Catalog interface {
	AddEquipment(item equipment.Item, qty int) (equipment.Item, error)
}

type sample struct {
	name, description, price, category string
	specs                              equipment.SpecsParams
}

var samples = []sample{
	{
		name:        "Treadmill Pro-X",
		description: "Motorized treadmill with multiple training programs",
		price:       "999.99",
		category:    "Cardio",
		specs:       equipment.SpecsParams{Weight: "75", Dimensions: "180x85x130", Material: "Steel/Plastic", Color: "Black", MaxUserWeight: "150", WarrantyMonths: "24"},
	},
	{
		name:        "Exercise Bike Cycle-100",
		description: "Magnetic exercise bike with LCD display and heart rate sensors",
		price:       "499.99",
		category:    "Cardio",
		specs:       equipment.SpecsParams{Weight: "35", Dimensions: "120x60x150", Material: "Aluminium/Plastic", Color: "Silver", MaxUserWeight: "120", WarrantyMonths: "12"},
	},
	{
		name:        "Gym Master Station",
		description: "Multi-function strength station for a full body workout",
		price:       "1499.99",
		category:    "Strength",
		specs:       equipment.SpecsParams{Weight: "200", Dimensions: "220x180x200", Material: "Steel", Color: "Black/Red", MaxUserWeight: "150", WarrantyMonths: "36"},
	},
	{
		name:        "Pro Weight Dumbbell Set",
		description: "Adjustable dumbbells from 2 to 24 kg",
		price:       "299.99",
		category:    "Free Weights",
		specs:       equipment.SpecsParams{Weight: "48", Dimensions: "40x20x20", Material: "Steel/Rubber", Color: "Black", MaxUserWeight: "200", WarrantyMonths: "12"},
	},
	{
		name:        "Powerlifting Pro Bench",
		description: "Professional bench press with adjustable incline",
		price:       "399.99",
		category:    "Strength",
		specs:       equipment.SpecsParams{Weight: "45", Dimensions: "180x60x130", Material: "Steel", Color: "Black", MaxUserWeight: "300", WarrantyMonths: "24"},
	},
}

// Load adds the sample equipment and the director's basic models to c.
// It returns the items as stored.
func Load(c Catalog, logger *slog.Logger) ([]equipment.Item, error) {
	if logger == nil {
		logger = slog.Default()
	}

	var items []*equipment.Equipment
	for _, s := range samples {
		specs, err := equipment.NewSpecs(s.specs)
		if err != nil {
			return nil, fmt.Errorf("sample %q: %w", s.name, err)
		}
		price, err := equipment.ParsePrice(s.price)
		if err != nil {
			return nil, fmt.Errorf("sample %q: %w", s.name, err)
		}
		e, err := equipment.New(equipment.Params{
			Name:        s.name,
			Description: s.description,
			BasePrice:   price,
			Category:    s.category,
			Specs:       specs,
		})
		if err != nil {
			return nil, fmt.Errorf("sample %q: %w", s.name, err)
		}
		items = append(items, e)
	}

	director := equipment.NewDirector(equipment.NewTreadmillBuilder())
	for _, b := range []*equipment.Builder{equipment.NewTreadmillBuilder(), equipment.NewPowerRackBuilder()} {
		director.ChangeBuilder(b)
		e, err := director.ConstructBasicModel("").Build()
		if err != nil {
			return nil, fmt.Errorf("basic %s model: %w", b.Kind(), err)
		}
		items = append(items, e)
	}

	stored := make([]equipment.Item, 0, len(items))
	for _, e := range items {
		item, err := c.AddEquipment(e, UnitsPerItem)
		if err != nil {
			return nil, fmt.Errorf("add %q: %w", e.Name(), err)
		}
		stored = append(stored, item)
	}
	logger.Info("Sample data loaded", "items", len(stored), "unitsPerItem", UnitsPerItem)
	return stored, nil
}
