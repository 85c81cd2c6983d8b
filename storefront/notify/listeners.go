package notify

import (
	"context"
	"log/slog"

	"sport-store/storefront/order"
	"sport-store/storefront/types"
)

// EmailListener logs the confirmation email a customer would receive
type EmailListener struct {
	logger *slog.Logger
}

func NewEmailListener(logger *slog.Logger) *EmailListener {
	if logger == nil {
		logger = slog.Default()
	}
	return &EmailListener{logger: logger}
}

func (l *EmailListener) OnOrderEvent(_ context.Context, o *order.Order, event types.EventType) error {
	if o.CustomerEmail == "" {
		l.logger.Warn("No email address available", "orderID", o.ID)
		return nil
	}
	l.logger.Info("Sending email", "to", o.CustomerEmail, "orderID", o.ID, "event", event)
	return nil
}

// SMSListener logs the text message a customer would receive
type SMSListener struct {
	logger *slog.Logger
}

func NewSMSListener(logger *slog.Logger) *SMSListener {
	if logger == nil {
		logger = slog.Default()
	}
	return &SMSListener{logger: logger}
}

func (l *SMSListener) OnOrderEvent(_ context.Context, o *order.Order, event types.EventType) error {
	if o.CustomerName == "" {
		l.logger.Warn("No customer name available", "orderID", o.ID)
		return nil
	}
	l.logger.Info("Sending SMS", "to", o.CustomerName, "orderID", o.ID, "event", event)
	return nil
}
