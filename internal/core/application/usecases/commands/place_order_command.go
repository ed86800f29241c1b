package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrPlaceOrderCommandIsNotConstructed = errors.New(
		"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
	)
	ErrItemsAreRequired = errors.New("at least one line item is required")
)

// PlaceOrderCommand represents a request to place a new customer order.
// Carries the line items, payment snapshot and cost breakdown; the shipping
// address is resolved from the customer's stored address by the handler.
//
// Example:
//
//	item, _ := order.NewLineItem(productID, "Walnut desk", 249.99, 1, "")
//	cost, _ := order.NewCostInfo(249.99, 20.00, 15.00, 284.99)
//	payment := order.NewPaymentInfo("card", order.PaymentStatusPending, "", 284.99, nil)
//
//	cmd, err := NewPlaceOrderCommand(kernel.NewUUID(), customerID, []order.LineItem{item}, payment, cost)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	customerID kernel.UUID
	items      []order.LineItem
	payment    order.PaymentInfo
	cost       order.CostInfo

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command to place a new order.
// Validates that both IDs are valid, the item list is non-empty with valid
// entries, and the cost breakdown is well formed.
func NewPlaceOrderCommand(
	orderID kernel.UUID,
	customerID kernel.UUID,
	items []order.LineItem,
	payment order.PaymentInfo,
	cost order.CostInfo,
) (PlaceOrderCommand, error) {
	placeCommand := PlaceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		placeCommand.setOrderID(orderID),
		placeCommand.setCustomerID(customerID),
		placeCommand.setItems(items),
		placeCommand.setCost(cost),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	placeCommand.payment = payment
	return placeCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrPlaceOrderCommandIsNotConstructed if validation fails.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// OrderID returns the identifier assigned to the new order.
func (c PlaceOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the identifier of the customer placing the order.
func (c PlaceOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Items returns the requested line items.
func (c PlaceOrderCommand) Items() []order.LineItem {
	return c.items
}

// Payment returns the payment snapshot supplied by the caller.
func (c PlaceOrderCommand) Payment() order.PaymentInfo {
	return c.payment
}

// Cost returns the cost breakdown for the order.
func (c PlaceOrderCommand) Cost() order.CostInfo {
	return c.cost
}

func (c *PlaceOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *PlaceOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *PlaceOrderCommand) setItems(items []order.LineItem) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	c.items = items
	return nil
}

func (c *PlaceOrderCommand) setCost(cost order.CostInfo) error {
	if err := cost.Validate(); err != nil {
		return err
	}

	c.cost = cost
	return nil
}
