package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/segmentio/kafka-go"

	"sport-store/storefront/order"
	"sport-store/storefront/types"
)

// OrderEvent is the message published for every order lifecycle event
type OrderEvent struct {
	OrderID     string            `json:"order_id"`
	Event       types.EventType   `json:"event"`
	Status      types.OrderStatus `json:"status"`
	CustomerID  string            `json:"customer_id"`
	EquipmentID string            `json:"equipment_id,omitempty"`
	Quantity    int               `json:"quantity"`
	Total       string            `json:"total"`
	TS          int64             `json:"ts"`
}

// kafkaMessageWriter abstracts kafka.Writer for testability.
type kafkaMessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

// KafkaListener publishes order events to a Kafka topic, keyed by order id
type KafkaListener struct {
	writer kafkaMessageWriter
	now    func() time.Time
}

// NewKafkaListener creates a listener writing to topic.
// bootstrap can be a comma-separated list of host:port.
func NewKafkaListener(bootstrap string, topic string) *KafkaListener {
	var brokers []string
	for _, a := range strings.Split(bootstrap, ",") {
		a = strings.TrimSpace(a)
		if a != "" {
			brokers = append(brokers, a)
		}
	}
	return &KafkaListener{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireAll,
			Async:        false,
		},
		now: time.Now,
	}
}

// NewKafkaListenerWith is only for tests to inject a fake writer.
func NewKafkaListenerWith(w kafkaMessageWriter, now func() time.Time) *KafkaListener {
	return &KafkaListener{writer: w, now: now}
}

func (k *KafkaListener) OnOrderEvent(ctx context.Context, o *order.Order, event types.EventType) error {
	msg := OrderEvent{
		OrderID:     o.ID,
		Event:       event,
		Status:      o.Status,
		CustomerID:  o.CustomerID,
		EquipmentID: o.EquipmentID(),
		Quantity:    o.Quantity,
		Total:       o.TotalPrice().StringFixed(2),
		TS:          k.now().UnixMilli(),
	}
	b, err := json.Marshal(&msg)
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}
	if err := k.writer.WriteMessages(ctx, kafka.Message{Key: []byte(o.ID), Value: b}); err != nil {
		return fmt.Errorf("publish %s event for order %s: %w", event, o.ID, err)
	}
	return nil
}

// Close flushes and closes the underlying writer when it supports closing
func (k *KafkaListener) Close() error {
	if c, ok := k.writer.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}
