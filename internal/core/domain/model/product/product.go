package product

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

var (
	// ErrProductIsNotConstructed is returned when a Product instance was not created
	// through the NewProduct factory method.
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")
)

// Product is the stock-relevant subset of a catalog product. The fulfillment
// core owns only the stock count; every other product attribute belongs to
// the catalog collaborator.
//
// Product follows these invariants:
//   - Must have a valid unique identifier and a non-empty name
//   - Stock is a non-negative integer and must never go negative as a
//     result of a shipment transition
//   - Can only be created through the NewProduct constructor
type Product struct {
	// id is the unique identifier for the product
	id kernel.UUID

	// name is the product name, kept for error reporting and snapshots
	name string

	// stock is the live on-hand count
	stock int

	// isConstructed ensures the product was created via NewProduct
	isConstructed bool
}

// NewProduct creates a Product with validation.
//
// Parameters:
//   - id: unique identifier (must be valid)
//   - name: product name (must not be empty)
//   - stock: on-hand count (must not be negative; zero is legal)
//
// Returns:
//   - *Product: the created product if all validations pass
//   - error: aggregated validation errors otherwise
func NewProduct(id kernel.UUID, name string, stock int) (*Product, error) {
	product := &Product{
		isConstructed: true,
	}

	if err := errors.Join(
		product.setID(id),
		product.setName(name),
		product.setStock(stock),
	); err != nil {
		return nil, err
	}

	return product, nil
}

// Validate ensures the Product instance was properly constructed through NewProduct.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}

	return nil
}

// IsEqual compares two products by their unique identifiers.
func (p *Product) IsEqual(other *Product) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the product's unique identifier.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// Name returns the product name.
func (p *Product) Name() string {
	return p.name
}

// Stock returns the live on-hand count.
func (p *Product) Stock() int {
	return p.stock
}

// CanFulfill reports whether the current stock covers the requested
// quantity. It performs no mutation, supporting the validate-all pass of a
// shipment before any decrement is applied.
func (p *Product) CanFulfill(quantity int) bool {
	return quantity > 0 && p.stock >= quantity
}

// Decrement reduces stock by the requested quantity.
//
// This method enforces the following business rules:
//   - The quantity must be positive
//   - Stock never goes negative: a shortfall is rejected with an
//     errs.InsufficientStockError naming the product
//
// Returns:
//   - nil on success, with stock reduced by exactly quantity
//   - error if the quantity is invalid or stock is insufficient
func (p *Product) Decrement(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	if p.stock < quantity {
		return errs.NewInsufficientStockError(p.id.String(), quantity, p.stock)
	}

	p.stock -= quantity
	return nil
}

// Restock increases stock by the given quantity.
// The quantity must be positive.
func (p *Product) Restock(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}

	p.stock += quantity
	return nil
}

// IsBelow reports whether stock has fallen under the given threshold.
// Used by the low-stock monitoring job.
func (p *Product) IsBelow(threshold int) bool {
	return p.stock < threshold
}

// setID validates and sets the product's unique identifier.
// This is a private method used only during construction.
func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

// setName validates and sets the product name.
// This is a private method used only during construction.
func (p *Product) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}

// setStock validates and sets the initial stock count.
// This is a private method used only during construction.
func (p *Product) setStock(stock int) error {
	if stock < 0 {
		return errs.NewValueIsInvalidErrorWithCause("stock", fmt.Errorf("%d is negative", stock))
	}
	p.stock = stock
	return nil
}
