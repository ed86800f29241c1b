package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/address"
	"fulfillment/internal/core/domain/model/kernel"
)

// AddressRepository defines the persistence contract for customer address
// aggregates. A customer owns at most one stored address.
type AddressRepository interface {
	// Add persists a new customer address aggregate to storage.
	Add(ctx context.Context, aggregate *address.CustomerAddress) error

	// Update persists changes to an existing customer address aggregate.
	Update(ctx context.Context, aggregate *address.CustomerAddress) error

	// GetByCustomer retrieves the address stored for the given customer.
	// Returns errs.ObjectNotFoundError if the customer has none.
	GetByCustomer(ctx context.Context, customerID kernel.UUID) (*address.CustomerAddress, error)

	// Delete removes the address stored for the given customer.
	// Returns errs.ObjectNotFoundError if the customer has none.
	Delete(ctx context.Context, customerID kernel.UUID) error
}
