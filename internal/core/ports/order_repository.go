// Package ports defines repository interfaces for the fulfillment domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and querying order entities
// based on their identity and owner.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// UpdateStatusFrom persists the aggregate's status and delivery time,
	// guarded by the status the caller read before transitioning.
	// The write only applies if the stored row is still in expectedStatus;
	// otherwise a concurrent transition won the race and an
	// errs.IllegalTransitionError is returned. This is the optimistic
	// guard that keeps two concurrent shipments of the same order from
	// both succeeding.
	UpdateStatusFrom(ctx context.Context, aggregate *order.Order, expectedStatus order.Status) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns errs.ObjectNotFoundError if no such order exists.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllByCustomer retrieves every order owned by the given customer,
	// in store insertion order.
	GetAllByCustomer(ctx context.Context, customerID kernel.UUID) ([]*order.Order, error)

	// Delete removes an order. Deletion is terminal: it never reverses
	// stock decrements already applied by a shipment.
	// Returns errs.ObjectNotFoundError if no such order exists.
	Delete(ctx context.Context, id kernel.UUID) error
}
