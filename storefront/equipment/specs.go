package equipment

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"sport-store/storefront/types"
)

// Specs holds the physical characteristics of a piece of equipment.
// All numeric fields are kept as the strings they were supplied as; a Specs
// value is only obtainable through NewSpecs or JSON decoding, both of which validate.
type Specs struct {
	weight         string
	dimensions     string
	material       string
	color          string
	maxUserWeight  string
	warrantyMonths string
}

// SpecsParams is the raw input for NewSpecs
type SpecsParams struct {
	Weight         string `json:"weight"`
	Dimensions     string `json:"dimensions"`
	Material       string `json:"material"`
	Color          string `json:"color"`
	MaxUserWeight  string `json:"max_user_weight"`
	WarrantyMonths string `json:"warranty_months"`
}

// NewSpecs validates p and returns the resulting Specs
func NewSpecs(p SpecsParams) (Specs, error) {
	if _, err := positiveNumber(p.Weight); err != nil {
		return Specs{}, &types.ValidationError{Msg: "weight must be a positive number string"}
	}
	if _, err := ParseDimensions(p.Dimensions); err != nil {
		return Specs{}, err
	}
	if p.Material == "" {
		return Specs{}, &types.ValidationError{Msg: "material must be a non-empty string"}
	}
	if p.Color == "" {
		return Specs{}, &types.ValidationError{Msg: "color must be a non-empty string"}
	}
	if _, err := positiveNumber(p.MaxUserWeight); err != nil {
		return Specs{}, &types.ValidationError{Msg: "max user weight must be a positive number string"}
	}
	if _, err := positiveInt(p.WarrantyMonths); err != nil {
		return Specs{}, &types.ValidationError{Msg: "warranty months must be a positive integer string"}
	}
	return Specs{
		weight:         p.Weight,
		dimensions:     p.Dimensions,
		material:       p.Material,
		color:          p.Color,
		maxUserWeight:  p.MaxUserWeight,
		warrantyMonths: p.WarrantyMonths,
	}, nil
}

// MustSpecs is NewSpecs for static data; it panics on invalid input.
func MustSpecs(p SpecsParams) Specs {
	s, err := NewSpecs(p)
	if err != nil {
		panic(err)
	}
	return s
}

func (s Specs) Weight() string         { return s.weight }
func (s Specs) Dimensions() string     { return s.dimensions }
func (s Specs) Material() string       { return s.material }
func (s Specs) Color() string          { return s.color }
func (s Specs) MaxUserWeight() string  { return s.maxUserWeight }
func (s Specs) WarrantyMonths() string { return s.warrantyMonths }

// IsZero reports whether s was never constructed
func (s Specs) IsZero() bool {
	return s == Specs{}
}

// WarrantyMonthsValue returns the warranty period as an integer
func (s Specs) WarrantyMonthsValue() int {
	n, _ := positiveInt(s.warrantyMonths)
	return n
}

// WithWarrantyMonths returns a copy of s with a new warranty period
func (s Specs) WithWarrantyMonths(months int) (Specs, error) {
	p := s.Params()
	p.WarrantyMonths = strconv.Itoa(months)
	return NewSpecs(p)
}

// Params returns the raw fields of s
func (s Specs) Params() SpecsParams {
	return SpecsParams{
		Weight:         s.weight,
		Dimensions:     s.dimensions,
		Material:       s.material,
		Color:          s.color,
		MaxUserWeight:  s.maxUserWeight,
		WarrantyMonths: s.warrantyMonths,
	}
}

func (s Specs) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Params())
}

func (s *Specs) UnmarshalJSON(data []byte) error {
	var p SpecsParams
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	v, err := NewSpecs(p)
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// ParseDimensions parses "LxWxH" or "L,W,H" into three positive numbers
func ParseDimensions(dims string) ([3]float64, error) {
	var out [3]float64
	parts := strings.Split(strings.ReplaceAll(dims, "x", ","), ",")
	if len(parts) != 3 {
		return out, &types.ValidationError{Msg: fmt.Sprintf("dimensions %q must be in format 'LxWxH'", dims)}
	}
	for i, part := range parts {
		v, err := positiveNumber(part)
		if err != nil {
			return out, &types.ValidationError{Msg: fmt.Sprintf("dimensions %q must contain positive numbers", dims)}
		}
		out[i] = v
	}
	return out, nil
}

func positiveNumber(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return 0, fmt.Errorf("%q is not a positive number", s)
	}
	return v, nil
}

func positiveInt(s string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, err
	}
	if v <= 0 {
		return 0, fmt.Errorf("%q is not a positive integer", s)
	}
	return v, nil
}
