package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/order"
)

// OrderEventPublisher publishes order lifecycle events to interested
// consumers. Publishing happens after the owning transaction commits;
// a publish failure is logged, never surfaced to the caller.
type OrderEventPublisher interface {
	// PublishOrderCreated announces a newly placed order.
	PublishOrderCreated(ctx context.Context, aggregate *order.Order) error

	// PublishOrderStatusChanged announces an order status transition.
	PublishOrderStatusChanged(ctx context.Context, aggregate *order.Order, from order.Status) error
}
