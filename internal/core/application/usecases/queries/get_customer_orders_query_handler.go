package queries

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCustomerOrdersQueryHandler retrieves a customer's order history from the
// database. Joins orders with their line items so each order comes back with
// the product names and prices snapshotted at placement time.
//
// Example:
//
//	handler := NewGetCustomerOrdersQueryHandler(db)
//	query, _ := NewGetCustomerOrdersQuery(customerID)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get orders: %v", err)
//	    return err
//	}
//	fmt.Printf("Customer has %d orders\n", len(orders))
type GetCustomerOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetCustomerOrdersQueryHandler creates a handler for customer order queries.
// Requires a GORM database connection for query execution.
func NewGetCustomerOrdersQueryHandler(db *gorm.DB) GetCustomerOrdersQueryHandler {
	return GetCustomerOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve the customer's orders.
// Orders come back oldest first; line item rows are grouped under their order.
func (h GetCustomerOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetCustomerOrdersQuery,
) ([]GetCustomerOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetCustomerOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.status,
			o.cost_item,
			o.cost_tax,
			o.cost_shipping,
			o.cost_total,
			o.created_at,
			o.delivered_at,
			i.product_id,
			i.name,
			i.unit_price,
			i.quantity,
			i.image_url
		FROM orders o
		JOIN order_items i ON i.order_id = o.id
		WHERE o.customer_id = ?
		ORDER BY o.created_at, o.id, i.id
	`, query.CustomerID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var current *GetCustomerOrdersQueryResponse

	for rows.Next() {
		var (
			id          uuid.UUID
			status      int
			itemCost    float64
			taxCost     float64
			shipCost    float64
			totalCost   float64
			createdAt   time.Time
			deliveredAt *time.Time
			productID   uuid.UUID
			name        string
			unitPrice   float64
			quantity    int
			imageURL    string
		)

		err = rows.Scan(
			&id, &status, &itemCost, &taxCost, &shipCost, &totalCost,
			&createdAt, &deliveredAt,
			&productID, &name, &unitPrice, &quantity, &imageURL,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		if current == nil || !current.ID.IsEqual(orderID) {
			orders = append(orders, GetCustomerOrdersQueryResponse{
				ID:           orderID,
				Status:       order.Status(status).String(),
				ItemCost:     itemCost,
				TaxCost:      taxCost,
				ShippingCost: shipCost,
				TotalCost:    totalCost,
				CreatedAt:    createdAt,
				DeliveredAt:  deliveredAt,
				Items:        make([]CustomerOrderItemResponse, 0, 1),
			})
			current = &orders[len(orders)-1]
		}

		itemProductID, idErr := kernel.UUIDFromBytes(productID[:])
		if idErr != nil {
			return nil, idErr
		}

		current.Items = append(current.Items, CustomerOrderItemResponse{
			ProductID: itemProductID,
			Name:      name,
			UnitPrice: unitPrice,
			Quantity:  quantity,
			ImageURL:  imageURL,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
