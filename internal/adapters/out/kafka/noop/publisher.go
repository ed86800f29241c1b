// Package noop provides an order event publisher that discards events.
// Used when no Kafka broker is configured.
package noop

import (
	"context"

	"fulfillment/internal/core/domain/model/order"
)

// Publisher implements OrderEventPublisher by doing nothing.
type Publisher struct{}

// NewPublisher creates a publisher that discards all events.
func NewPublisher() *Publisher {
	return &Publisher{}
}

// PublishOrderCreated discards the event.
func (p *Publisher) PublishOrderCreated(_ context.Context, _ *order.Order) error {
	return nil
}

// PublishOrderStatusChanged discards the event.
func (p *Publisher) PublishOrderStatusChanged(_ context.Context, _ *order.Order, _ order.Status) error {
	return nil
}
