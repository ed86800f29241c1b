// Package kafka publishes order lifecycle events to a Kafka topic.
// Events are emitted after the owning transaction commits; delivery is best
// effort and failures are reported to the caller for logging only.
package kafka

import (
	"context"
	"encoding/json"
	"time"

	"fulfillment/internal/core/domain/model/order"

	"github.com/segmentio/kafka-go"
)

const (
	EventOrderCreated       = "order.created"
	EventOrderStatusChanged = "order.status_changed"
)

// OrderEvent is the wire envelope for order lifecycle events.
// OldStatus is empty for creation events.
type OrderEvent struct {
	EventType  string    `json:"event_type"`
	OrderID    string    `json:"order_id"`
	CustomerID string    `json:"customer_id"`
	OldStatus  string    `json:"old_status,omitempty"`
	NewStatus  string    `json:"new_status"`
	Total      float64   `json:"total"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Publisher implements OrderEventPublisher on top of a kafka-go writer.
// Messages are keyed by order ID so all events for one order land in the
// same partition, preserving their relative order.
type Publisher struct {
	writer *kafka.Writer
}

// NewPublisher creates a publisher writing to the given topic on the broker.
func NewPublisher(addr, topic string) *Publisher {
	return &Publisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(addr),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireOne,
		},
	}
}

// PublishOrderCreated announces a newly placed order.
func (p *Publisher) PublishOrderCreated(ctx context.Context, aggregate *order.Order) error {
	return p.publish(ctx, OrderEvent{
		EventType:  EventOrderCreated,
		OrderID:    aggregate.ID().String(),
		CustomerID: aggregate.CustomerID().String(),
		NewStatus:  aggregate.Status().String(),
		Total:      aggregate.Cost().TotalCost(),
		OccurredAt: time.Now().UTC(),
	})
}

// PublishOrderStatusChanged announces an order status transition.
func (p *Publisher) PublishOrderStatusChanged(ctx context.Context, aggregate *order.Order, from order.Status) error {
	return p.publish(ctx, OrderEvent{
		EventType:  EventOrderStatusChanged,
		OrderID:    aggregate.ID().String(),
		CustomerID: aggregate.CustomerID().String(),
		OldStatus:  from.String(),
		NewStatus:  aggregate.Status().String(),
		Total:      aggregate.Cost().TotalCost(),
		OccurredAt: time.Now().UTC(),
	})
}

// Close releases the underlying writer.
func (p *Publisher) Close() error {
	return p.writer.Close()
}

func (p *Publisher) publish(ctx context.Context, event OrderEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.OrderID),
		Value: data,
		Time:  event.OccurredAt,
	})
}
