package checkout

import (
	"context"
	"log/slog"
	"time"

	"sport-store/storefront/order"
	"sport-store/storefront/types"
)

// Processor runs an order through the processing stages
type Processor interface {
	Process(ctx context.Context, o *order.Order) bool
}

// OrderStore is where successful orders are recorded
type OrderStore interface {
	AddOrder(o *order.Order)
}

// Notifier delivers order events
type Notifier interface {
	Notify(ctx context.Context, o *order.Order, event types.EventType) error
}

// Recorder observes checkout outcomes
type Recorder interface {
	ObserveCheckout(passed bool, d time.Duration)
}

// Service places orders in-process
type Service struct {
	store     OrderStore
	processor Processor
	notifier  Notifier
	recorder  Recorder
	logger    *slog.Logger
}

type Option func(*Service)

// WithRecorder attaches an outcome observer
func WithRecorder(r Recorder) Option {
	return func(s *Service) { s.recorder = r }
}

func WithLogger(l *slog.Logger) Option {
	return func(s *Service) { s.logger = l }
}

func New(store OrderStore, processor Processor, notifier Notifier, opts ...Option) *Service {
	s := &Service{store: store, processor: processor, notifier: notifier, logger: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// PlaceOrder runs o through the pipeline and records it when every stage
// passed. The boolean is the pipeline result; o.Status tells where a halted
// order stopped.
func (s *Service) PlaceOrder(ctx context.Context, o *order.Order) (bool, error) {
	start := time.Now()
	passed := s.processor.Process(ctx, o)
	if s.recorder != nil {
		s.recorder.ObserveCheckout(passed, time.Since(start))
	}
	if !passed {
		s.logger.Info("Checkout halted", "orderID", o.ID, "status", o.Status)
		return false, nil
	}
	s.Record(ctx, o)
	return true, nil
}

// Record stores o and announces it with a created event
func (s *Service) Record(ctx context.Context, o *order.Order) {
	s.store.AddOrder(o)
	s.logger.Info("Order recorded", "orderID", o.ID, "customerID", o.CustomerID, "total", o.TotalPrice().StringFixed(2))
	if s.notifier == nil {
		return
	}
	if err := s.notifier.Notify(ctx, o, types.EventCreated); err != nil {
		s.logger.Warn("Order notification incomplete", "orderID", o.ID, "event", types.EventCreated, "error", err)
	}
}
