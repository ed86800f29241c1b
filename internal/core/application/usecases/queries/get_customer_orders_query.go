// Package queries contains read-only operations over the fulfillment store.
// Query handlers bypass the domain aggregates and read projection rows
// directly with raw SQL, following the CQRS split.
package queries

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrGetCustomerOrdersQueryIsNotConstructed = errors.New(
	"GetCustomerOrdersQuery must be created via NewGetCustomerOrdersQuery constructor",
)

// GetCustomerOrdersQuery retrieves every order belonging to one customer,
// including the line items with their persisted name and price snapshots.
//
// Example:
//
//	query, err := NewGetCustomerOrdersQuery(customerID)
//	if err != nil {
//	    return fmt.Errorf("invalid query: %w", err)
//	}
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get orders: %w", err)
//	}
type GetCustomerOrdersQuery struct {
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCustomerOrdersQuery creates a query for one customer's orders.
// Validates that the customer ID is a valid UUID.
func NewGetCustomerOrdersQuery(customerID kernel.UUID) (GetCustomerOrdersQuery, error) {
	if err := customerID.Validate(); err != nil {
		return GetCustomerOrdersQuery{}, err
	}

	return GetCustomerOrdersQuery{
		customerID: customerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetCustomerOrdersQueryIsNotConstructed if validation fails.
func (q GetCustomerOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerOrdersQueryIsNotConstructed)
}

// CustomerID returns the customer whose orders are requested.
func (q GetCustomerOrdersQuery) CustomerID() kernel.UUID {
	return q.customerID
}

// GetCustomerOrdersQueryResponse represents one order in the customer's
// order history, with its cost breakdown and line items.
type GetCustomerOrdersQueryResponse struct {
	ID           kernel.UUID
	Status       string
	ItemCost     float64
	TaxCost      float64
	ShippingCost float64
	TotalCost    float64
	CreatedAt    time.Time
	DeliveredAt  *time.Time
	Items        []CustomerOrderItemResponse
}

// CustomerOrderItemResponse represents one line item within an order,
// carrying the product snapshot taken at placement time.
type CustomerOrderItemResponse struct {
	ProductID kernel.UUID
	Name      string
	UnitPrice float64
	Quantity  int
	ImageURL  string
}
