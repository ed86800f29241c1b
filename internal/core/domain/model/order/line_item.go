package order

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// ErrLineItemIsNotConstructed is returned when a LineItem was not created
// through the NewLineItem factory method.
var ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem constructor")

// LineItem is a value object describing one product entry within an order.
// It snapshots the product's name, unit price and image at placement time,
// so later catalog edits never change the placed order.
//
// LineItem is immutable: an order's item list is fixed at creation, and the
// only way to undo it is deleting the whole order.
type LineItem struct {
	// productID references the catalog product by identity only
	productID kernel.UUID

	// name is the product name snapshotted at placement time
	name string

	// unitPrice is the per-unit price snapshotted at placement time
	unitPrice float64

	// quantity is the ordered amount (must be positive)
	quantity int

	// imageURL is the product image reference snapshotted at placement time
	imageURL string

	// guard ensures the value object was properly initialized
	guard guard.ConstructorGuard
}

// NewLineItem creates a validated LineItem.
//
// Parameters:
//   - productID: identity of the referenced catalog product (must be valid)
//   - name: product name snapshot (must not be empty)
//   - unitPrice: per-unit price (must not be negative; zero is legal)
//   - quantity: ordered amount (must be greater than 0)
//   - imageURL: product image reference (may be empty)
//
// Returns:
//   - LineItem: the created value object if all validations pass
//   - error: aggregated validation errors otherwise
func NewLineItem(productID kernel.UUID, name string, unitPrice float64, quantity int, imageURL string) (LineItem, error) {
	item := LineItem{
		imageURL: imageURL,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setProductID(productID),
		item.setName(name),
		item.setUnitPrice(unitPrice),
		item.setQuantity(quantity),
	); err != nil {
		return LineItem{}, err
	}

	return item, nil
}

// Validate ensures the LineItem was created through NewLineItem.
func (li LineItem) Validate() error {
	return li.guard.Validate(ErrLineItemIsNotConstructed)
}

// ProductID returns the identity of the referenced product.
func (li LineItem) ProductID() kernel.UUID {
	return li.productID
}

// Name returns the product name snapshot.
func (li LineItem) Name() string {
	return li.name
}

// UnitPrice returns the per-unit price snapshot.
func (li LineItem) UnitPrice() float64 {
	return li.unitPrice
}

// Quantity returns the ordered amount.
func (li LineItem) Quantity() int {
	return li.quantity
}

// ImageURL returns the product image reference snapshot.
func (li LineItem) ImageURL() string {
	return li.imageURL
}

func (li *LineItem) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	li.productID = productID
	return nil
}

func (li *LineItem) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	li.name = name
	return nil
}

func (li *LineItem) setUnitPrice(unitPrice float64) error {
	if unitPrice < 0 {
		return errs.NewValueIsInvalidErrorWithCause("unitPrice", fmt.Errorf("%f is negative", unitPrice))
	}
	li.unitPrice = unitPrice
	return nil
}

func (li *LineItem) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	li.quantity = quantity
	return nil
}
