package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"sport-store/storefront/equipment"
	"sport-store/storefront/order"
	"sport-store/storefront/types"
)

type ErrorResponse struct {
	Error   string            `json:"error"`
	Message string            `json:"message,omitempty"`
	Status  types.OrderStatus `json:"status,omitempty"`
}

// flexString accepts a JSON string or number and keeps its text
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("expected string or number, got %s", data)
	}
	*f = flexString(n.String())
	return nil
}

type SpecsRequest struct {
	Weight         flexString `json:"weight"`
	Dimensions     string     `json:"dimensions"`
	Material       string     `json:"material"`
	Color          string     `json:"color"`
	MaxUserWeight  flexString `json:"max_user_weight"`
	WarrantyMonths flexString `json:"warranty_months"`
}

func (s SpecsRequest) params() equipment.SpecsParams {
	return equipment.SpecsParams{
		Weight:         string(s.Weight),
		Dimensions:     s.Dimensions,
		Material:       s.Material,
		Color:          s.Color,
		MaxUserWeight:  string(s.MaxUserWeight),
		WarrantyMonths: string(s.WarrantyMonths),
	}
}

type EquipmentRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	BasePrice   decimal.Decimal `json:"base_price"`
	Category    string          `json:"category"`
	Specs       SpecsRequest    `json:"specs"`
	Quantity    *int            `json:"quantity,omitempty"`
}

func (r EquipmentRequest) build() (*equipment.Equipment, error) {
	specs, err := equipment.NewSpecs(r.Specs.params())
	if err != nil {
		return nil, err
	}
	return equipment.New(equipment.Params{
		Name:        r.Name,
		Description: r.Description,
		BasePrice:   r.BasePrice,
		Category:    r.Category,
		Specs:       specs,
	})
}

type EquipmentResponse struct {
	ID          string                `json:"id"`
	Name        string                `json:"name"`
	Description string                `json:"description"`
	BasePrice   string                `json:"base_price"`
	Price       string                `json:"price"`
	Category    string                `json:"category"`
	Specs       equipment.SpecsParams `json:"specs"`
	Features    []string              `json:"features"`
	Stock       int                   `json:"stock"`
}

func equipmentResponse(item equipment.Item, stock int) EquipmentResponse {
	features := item.Features()
	if features == nil {
		features = []string{}
	}
	return EquipmentResponse{
		ID:          item.ID(),
		Name:        item.Name(),
		Description: item.Description(),
		BasePrice:   item.BasePrice().StringFixed(2),
		Price:       item.Price().StringFixed(2),
		Category:    item.Category(),
		Specs:       item.Specs().Params(),
		Features:    features,
		Stock:       stock,
	}
}

type StockRequest struct {
	Quantity int `json:"quantity"`
}

type QuoteRequest struct {
	Strategy      string `json:"strategy"`
	Quantity      int    `json:"quantity"`
	PromoCode     string `json:"promo_code,omitempty"`
	LoyaltyPoints int    `json:"loyalty_points,omitempty"`
}

type QuoteResponse struct {
	EquipmentID string `json:"equipment_id"`
	Strategy    string `json:"strategy"`
	Quantity    int    `json:"quantity"`
	UnitPrice   string `json:"unit_price"`
	Total       string `json:"total"`
}

type OrderRequest struct {
	EquipmentID     string   `json:"equipment_id"`
	Quantity        int      `json:"quantity"`
	CustomerID      string   `json:"customer_id"`
	CustomerName    string   `json:"customer_name,omitempty"`
	CustomerEmail   string   `json:"customer_email,omitempty"`
	ShippingAddress string   `json:"shipping_address,omitempty"`
	Notes           []string `json:"notes,omitempty"`
}

type OrderResponse struct {
	ID              string            `json:"id"`
	EquipmentID     string            `json:"equipment_id,omitempty"`
	Quantity        int               `json:"quantity"`
	CustomerID      string            `json:"customer_id"`
	CustomerName    string            `json:"customer_name,omitempty"`
	CustomerEmail   string            `json:"customer_email,omitempty"`
	ShippingAddress string            `json:"shipping_address,omitempty"`
	Status          types.OrderStatus `json:"status"`
	Notes           []string          `json:"notes"`
	TotalAmount     string            `json:"total_amount"`
	CreatedAt       time.Time         `json:"created_at"`
}

func orderResponse(o *order.Order) OrderResponse {
	notes := o.Notes
	if notes == nil {
		notes = []string{}
	}
	return OrderResponse{
		ID:              o.ID,
		EquipmentID:     o.EquipmentID(),
		Quantity:        o.Quantity,
		CustomerID:      o.CustomerID,
		CustomerName:    o.CustomerName,
		CustomerEmail:   o.CustomerEmail,
		ShippingAddress: o.ShippingAddress,
		Status:          o.Status,
		Notes:           notes,
		TotalAmount:     o.TotalPrice().StringFixed(2),
		CreatedAt:       o.CreatedAt,
	}
}

type ColorInfo struct {
	Code string `json:"code"`
	Name string `json:"name"`
}
