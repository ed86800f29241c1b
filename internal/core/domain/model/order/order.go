package order

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder factory method. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order represents a customer order in the system. It is the aggregate root that manages
// the order lifecycle from placement through shipment to delivery.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and owning customer
//   - Must have at least one line item; the item list is immutable after creation
//   - Shipping snapshot and cost breakdown are fixed at placement time
//   - Status transitions follow the Processing -> Shipped -> Delivered workflow
//   - DeliveredAt is stamped exactly once, on entry to Delivered
//   - Can only be created through NewOrder or restored through RestoreOrder
//
// The Order struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// customerID identifies the purchasing customer; immutable after creation
	customerID kernel.UUID

	// items is the immutable list of purchased line items
	items []LineItem

	// shipping is the destination snapshot taken at placement time
	shipping ShippingInfo

	// payment is the opaque payment record attached to the order
	payment PaymentInfo

	// cost is the monetary breakdown fixed at placement time
	cost CostInfo

	// status represents the current state in the order lifecycle
	status Status

	// deliveredAt is set once, on the transition into Delivered
	deliveredAt *time.Time

	// createdAt records placement time
	createdAt time.Time

	// isConstructed ensures the order was created via NewOrder or RestoreOrder
	isConstructed bool
}

// NewOrder creates a new Order with validation. This is the only way to place
// a valid order, ensuring all business invariants hold from the start.
//
// Parameters:
//   - id: unique identifier for the order (must be valid)
//   - customerID: identity of the purchasing customer (must be valid)
//   - items: line items (must be non-empty, each constructed via NewLineItem)
//   - shipping: address snapshot (constructed via NewShippingInfo)
//   - payment: opaque payment record
//   - cost: cost breakdown (constructed via NewCostInfo)
//
// Returns:
//   - *Order: the placed order in Processing status
//   - error: aggregated validation errors if any input is invalid
//
// The constructor copies the item slice so callers cannot mutate the order's
// items afterwards.
func NewOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	items []LineItem,
	shipping ShippingInfo,
	payment PaymentInfo,
	cost CostInfo,
) (*Order, error) {
	order := &Order{
		payment:       payment,
		status:        Processing,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerID(customerID),
		order.setItems(items),
		order.setShipping(shipping),
		order.setCost(cost),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an Order from persistence. Unlike NewOrder it
// accepts any valid status and a previously stamped delivery time, so the
// aggregate comes back exactly as it was stored.
//
// Returns an error if the identifier, customer, items, snapshots or status
// fail validation: a row that cannot be restored indicates corrupt data and
// must not produce a usable aggregate.
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	items []LineItem,
	shipping ShippingInfo,
	payment PaymentInfo,
	cost CostInfo,
	status Status,
	deliveredAt *time.Time,
	createdAt time.Time,
) (*Order, error) {
	order, err := NewOrder(id, customerID, items, shipping, payment, cost)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}

	order.status = status
	order.deliveredAt = deliveredAt
	order.createdAt = createdAt
	return order, nil
}

// Validate ensures the Order instance was properly constructed through
// NewOrder or RestoreOrder. This prevents bypassing validation by directly
// instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
// Orders are considered equal if they have the same ID.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the identity of the purchasing customer.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// Items returns a copy of the order's line items.
// The copy keeps the aggregate's item list immutable from the outside.
func (o *Order) Items() []LineItem {
	items := make([]LineItem, len(o.items))
	copy(items, o.items)
	return items
}

// Shipping returns the destination snapshot taken at placement time.
func (o *Order) Shipping() ShippingInfo {
	return o.shipping
}

// Payment returns the opaque payment record.
func (o *Order) Payment() PaymentInfo {
	return o.payment
}

// Cost returns the monetary breakdown fixed at placement time.
func (o *Order) Cost() CostInfo {
	return o.cost
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// DeliveredAt returns the delivery time, nil until the order is delivered.
func (o *Order) DeliveredAt() *time.Time {
	return o.deliveredAt
}

// CreatedAt returns the placement time.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Ship marks the order as shipped.
//
// This method enforces the status machine only: the caller is responsible
// for committing the matching stock decrements in the same unit of work
// (see the shipment domain service). Rejected transitions return an
// errs.IllegalTransitionError with the specific reason.
func (o *Order) Ship() error {
	newStatus, err := o.status.Ship()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Deliver marks the order as delivered and stamps DeliveredAt.
//
// This method enforces the following business rules:
//   - The order must be in Shipped status
//   - Delivered is a final state with no further transitions
//
// After successful completion DeliveredAt is set to the current time and
// never changes again.
func (o *Order) Deliver() error {
	newStatus, err := o.status.Deliver()
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	o.status = newStatus
	o.deliveredAt = &now
	return nil
}

// setID validates and sets the order's unique identifier.
// This is a private method used only during construction.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setCustomerID validates and sets the owning customer.
// This is a private method used only during construction.
func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}

// setItems validates and copies the line items.
// The list must be non-empty and every item properly constructed.
// This is a private method used only during construction.
func (o *Order) setItems(items []LineItem) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("lineItems")
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	o.items = make([]LineItem, len(items))
	copy(o.items, items)
	return nil
}

// setShipping validates and sets the destination snapshot.
// This is a private method used only during construction.
func (o *Order) setShipping(shipping ShippingInfo) error {
	if err := shipping.Validate(); err != nil {
		return err
	}
	o.shipping = shipping
	return nil
}

// setCost validates and sets the cost breakdown.
// This is a private method used only during construction.
func (o *Order) setCost(cost CostInfo) error {
	if err := cost.Validate(); err != nil {
		return err
	}
	o.cost = cost
	return nil
}
