package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sort"
	"time"

	"github.com/go-chi/chi/v5"

	"sport-store/storefront/catalog"
	"sport-store/storefront/equipment"
	"sport-store/storefront/order"
	"sport-store/storefront/pricing"
	"sport-store/storefront/types"
)

// OrderPlacer runs an order through processing. The boolean reports whether
// every stage passed.
type OrderPlacer interface {
	PlaceOrder(ctx context.Context, o *order.Order) (bool, error)
}

type Handler struct {
	store   *catalog.Store
	pricing *pricing.Registry
	orders  OrderPlacer
	logger  *slog.Logger
	now     func() time.Time
}

func New(store *catalog.Store, prices *pricing.Registry, orders OrderPlacer, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{store: store, pricing: prices, orders: orders, logger: logger, now: time.Now}
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, err string, message string) {
	writeJSON(w, status, ErrorResponse{Error: err, Message: message})
}

// writeDomainError maps construction and pricing errors to a status code
func (h *Handler) writeDomainError(w http.ResponseWriter, err error) {
	var (
		validation *types.ValidationError
		quantity   *types.InvalidQuantityError
		input      *types.InvalidInputError
	)
	switch {
	case errors.Is(err, equipment.ErrUnknownDecoration), errors.Is(err, pricing.ErrUnknownKind):
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
	case errors.As(err, &validation), errors.As(err, &quantity), errors.As(err, &input):
		writeError(w, http.StatusUnprocessableEntity, "validation_error", err.Error())
	default:
		h.logger.Error("Request failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "Internal server error")
	}
}

func decode(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "Invalid JSON body")
		return false
	}
	return true
}

func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func (h *Handler) ListColors(w http.ResponseWriter, r *http.Request) {
	colors := make([]ColorInfo, 0, len(equipment.AvailableColors))
	for code, name := range equipment.AvailableColors {
		colors = append(colors, ColorInfo{Code: code, Name: name})
	}
	sort.Slice(colors, func(i, j int) bool { return colors[i].Code < colors[j].Code })
	writeJSON(w, http.StatusOK, colors)
}

func (h *Handler) CreateEquipment(w http.ResponseWriter, r *http.Request) {
	var req EquipmentRequest
	if !decode(w, r, &req) {
		return
	}
	qty := 1
	if req.Quantity != nil {
		qty = *req.Quantity
	}
	if qty <= 0 {
		h.writeDomainError(w, &types.InvalidQuantityError{Quantity: qty})
		return
	}

	item, err := req.build()
	if err != nil {
		h.writeDomainError(w, err)
		return
	}
	stored, err := h.store.AddEquipment(item, qty)
	if err != nil {
		h.writeDomainError(w, err)
		return
	}
	h.logger.Info("Equipment created", "equipmentID", stored.ID(), "name", stored.Name(), "quantity", qty)
	writeJSON(w, http.StatusCreated, equipmentResponse(stored, h.store.Stock(stored.ID())))
}

func (h *Handler) ListEquipment(w http.ResponseWriter, r *http.Request) {
	items := h.store.AllEquipment()
	out := make([]EquipmentResponse, 0, len(items))
	for _, item := range items {
		out = append(out, equipmentResponse(item, h.store.Stock(item.ID())))
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handler) lookup(w http.ResponseWriter, r *http.Request) (equipment.Item, bool) {
	id := chi.URLParam(r, "id")
	item, ok := h.store.Equipment(id)
	if !ok {
		writeError(w, http.StatusNotFound, "not_found", "Equipment not found")
	}
	return item, ok
}

func (h *Handler) GetEquipment(w http.ResponseWriter, r *http.Request) {
	item, ok := h.lookup(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, equipmentResponse(item, h.store.Stock(item.ID())))
}

func (h *Handler) UpdateEquipment(w http.ResponseWriter, r *http.Request) {
	current, ok := h.lookup(w, r)
	if !ok {
		return
	}
	var req EquipmentRequest
	if !decode(w, r, &req) {
		return
	}
	item, err := req.build()
	if err != nil {
		h.writeDomainError(w, err)
		return
	}
	updated, ok := h.store.UpdateEquipment(current.ID(), item)
	if !ok {
		writeError(w, http.StatusNotFound, "not_found", "Equipment not found")
		return
	}
	writeJSON(w, http.StatusOK, equipmentResponse(updated, h.store.Stock(updated.ID())))
}

func (h *Handler) AddStock(w http.ResponseWriter, r *http.Request) {
	item, ok := h.lookup(w, r)
	if !ok {
		return
	}
	var req StockRequest
	if !decode(w, r, &req) {
		return
	}
	if _, err := h.store.AddEquipment(item, req.Quantity); err != nil {
		h.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, equipmentResponse(item, h.store.Stock(item.ID())))
}

func (h *Handler) DecorateEquipment(w http.ResponseWriter, r *http.Request) {
	item, ok := h.lookup(w, r)
	if !ok {
		return
	}
	var req equipment.Decoration
	if !decode(w, r, &req) {
		return
	}
	decorated, err := equipment.Decorate(item, req, h.now())
	if err != nil {
		h.writeDomainError(w, err)
		return
	}
	updated, ok := h.store.UpdateEquipment(item.ID(), decorated)
	if !ok {
		writeError(w, http.StatusNotFound, "not_found", "Equipment not found")
		return
	}
	h.logger.Info("Equipment decorated", "equipmentID", updated.ID(), "decoration", req.Type, "price", updated.Price().StringFixed(2))
	writeJSON(w, http.StatusOK, equipmentResponse(updated, h.store.Stock(updated.ID())))
}

func (h *Handler) QuoteEquipment(w http.ResponseWriter, r *http.Request) {
	item, ok := h.lookup(w, r)
	if !ok {
		return
	}
	var req QuoteRequest
	if !decode(w, r, &req) {
		return
	}
	strategy, err := h.pricing.Get(pricing.Kind(req.Strategy))
	if err != nil {
		h.writeDomainError(w, err)
		return
	}
	total, err := pricing.NewCalculator(strategy).Calculate(item, req.Quantity, pricing.Params{
		PromoCode:     req.PromoCode,
		LoyaltyPoints: req.LoyaltyPoints,
	})
	if err != nil {
		h.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, QuoteResponse{
		EquipmentID: item.ID(),
		Strategy:    string(strategy.Kind()),
		Quantity:    req.Quantity,
		UnitPrice:   item.Price().StringFixed(2),
		Total:       total.StringFixed(2),
	})
}

func (h *Handler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req OrderRequest
	if !decode(w, r, &req) {
		return
	}

	var item equipment.Item
	if req.EquipmentID != "" {
		found, ok := h.store.Equipment(req.EquipmentID)
		if !ok {
			writeError(w, http.StatusNotFound, "not_found", "Equipment not found")
			return
		}
		item = found
	}

	o, err := order.New(order.Params{
		Equipment:       item,
		Quantity:        req.Quantity,
		CustomerID:      req.CustomerID,
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		ShippingAddress: req.ShippingAddress,
	})
	if err != nil {
		h.writeDomainError(w, err)
		return
	}
	for _, note := range req.Notes {
		if err := o.AddNote(note); err != nil {
			h.writeDomainError(w, err)
			return
		}
	}

	passed, err := h.orders.PlaceOrder(r.Context(), o)
	if err != nil {
		h.writeDomainError(w, fmt.Errorf("place order %s: %w", o.ID, err))
		return
	}
	if !passed {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{
			Error:   "order_processing_failed",
			Message: "Order processing failed",
			Status:  o.Status,
		})
		return
	}
	writeJSON(w, http.StatusCreated, orderResponse(o))
}

func (h *Handler) ListOrders(w http.ResponseWriter, r *http.Request) {
	var orders []*order.Order
	if customerID := r.URL.Query().Get("customer_id"); customerID != "" {
		orders = h.store.OrdersByCustomer(customerID)
	} else {
		orders = h.store.AllOrders()
	}
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, orderResponse(o))
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handler) GetOrder(w http.ResponseWriter, r *http.Request) {
	o, ok := h.store.Order(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, http.StatusNotFound, "not_found", "Order not found")
		return
	}
	writeJSON(w, http.StatusOK, orderResponse(o))
}
