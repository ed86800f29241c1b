package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for product aggregates
// and their stock levels.
type ProductRepository interface {
	// Add persists a new product aggregate to storage.
	Add(ctx context.Context, aggregate *product.Product) error

	// Get retrieves a product aggregate by its unique identifier.
	// Returns errs.ObjectNotFoundError if no such product exists.
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)

	// GetByIDs retrieves the products with the given identifiers.
	// Missing identifiers are not an error; the caller compares the
	// result against its request to detect unknown products.
	GetByIDs(ctx context.Context, ids []kernel.UUID) ([]*product.Product, error)

	// DecrementStock atomically subtracts quantity from the product's
	// stock, but only if the remaining stock covers it. The store applies
	// the subtraction and the check in a single conditional write, so
	// concurrent decrements can never drive stock negative. Returns the
	// stock level after the decrement, errs.InsufficientStockError when
	// the condition fails, or errs.ObjectNotFoundError when the product
	// does not exist.
	DecrementStock(ctx context.Context, id kernel.UUID, quantity int) (int, error)

	// GetBelowStock retrieves every product whose stock is strictly
	// below the given threshold.
	GetBelowStock(ctx context.Context, threshold int) ([]*product.Product, error)
}
