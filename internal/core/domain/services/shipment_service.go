package services

import (
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/product"

	"fulfillment/internal/pkg/errs"
)

// ShipmentService is a domain service responsible for shipping an order
// against live product stock with an all-or-nothing guarantee.
//
// Key responsibilities:
//   - Validating the order is in a shippable state
//   - Checking every line item against live stock before touching any of it
//   - Applying every decrement and the status change only after all checks pass
//
// Business rules:
//   - Stock decrement is all-or-nothing per order: a shortfall on any line
//     item means no product's stock is altered
//   - A missing product rejects the shipment with a not-found error naming
//     the line item's product
//   - A shortfall rejects the shipment with an insufficient-stock error
//     naming the product, the requested and the available quantity
//
// The two-pass protocol (validate all, then apply all) exists so inventory
// is never charged against an order that ultimately fails validation on a
// later line item.
//
// Example usage:
//
//	svc := services.NewShipmentService()
//	decremented, err := svc.Ship(ord, products)
//	if errors.Is(err, errs.ErrInsufficientStock) {
//	    // No stock was altered; surface the shortfall to the caller
//	    return err
//	}
type ShipmentService struct{}

// NewShipmentService creates a new ShipmentService instance.
func NewShipmentService() ShipmentService {
	return ShipmentService{}
}

// Ship validates every line item of the order against the provided live
// products and, only if all pass, decrements each product's stock and marks
// the order shipped.
//
// Parameters:
//   - ord: the order to ship (must be valid and in Processing status)
//   - products: live products referenced by the order's line items, keyed
//     implicitly by identity; extra products are ignored
//
// Returns:
//   - []*product.Product: the products whose stock was decremented, in line
//     item order, for the caller to persist in the same unit of work
//   - error: the specific rejection, with no product mutated on failure
//
// Quantities of line items referencing the same product accumulate: the
// combined quantity must fit the product's stock.
func (s ShipmentService) Ship(ord *order.Order, products []*product.Product) ([]*product.Product, error) {
	if err := ord.Validate(); err != nil {
		return nil, err
	}

	if err := ord.Status().ValidateShip(); err != nil {
		return nil, err
	}

	index, err := s.indexProducts(products)
	if err != nil {
		return nil, err
	}

	// First pass: every line item must be coverable before anything moves.
	required := make(map[kernel.UUID]int, len(ord.Items()))
	for _, item := range ord.Items() {
		p, ok := index[item.ProductID()]
		if !ok {
			return nil, errs.NewObjectNotFoundError("product", item.ProductID().String())
		}

		required[item.ProductID()] += item.Quantity()
		if !p.CanFulfill(required[item.ProductID()]) {
			return nil, errs.NewInsufficientStockError(p.ID().String(), required[item.ProductID()], p.Stock())
		}
	}

	// Second pass: all checks passed, apply every decrement.
	decremented := make([]*product.Product, 0, len(required))
	for _, item := range ord.Items() {
		quantity, pending := required[item.ProductID()]
		if !pending {
			continue // already applied for an earlier duplicate line item
		}
		delete(required, item.ProductID())

		p := index[item.ProductID()]
		if err = p.Decrement(quantity); err != nil {
			return nil, err
		}
		decremented = append(decremented, p)
	}

	if err = ord.Ship(); err != nil {
		return nil, err
	}

	return decremented, nil
}

// indexProducts validates each product and builds an identity index.
func (s ShipmentService) indexProducts(products []*product.Product) (map[kernel.UUID]*product.Product, error) {
	index := make(map[kernel.UUID]*product.Product, len(products))
	for _, p := range products {
		if err := p.Validate(); err != nil {
			return nil, err
		}
		index[p.ID()] = p
	}
	return index, nil
}
