// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Maps order domain entities to relational database tables, with the shipping,
// payment and cost snapshots embedded as prefixed columns and line items in a
// child table.
type OrderDTO struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey"`
	CustomerID  uuid.UUID      `gorm:"type:uuid;index"`
	Items       []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Shipping    ShippingDTO    `gorm:"embedded;embeddedPrefix:shipping_"`
	Payment     PaymentDTO     `gorm:"embedded;embeddedPrefix:payment_"`
	Cost        CostDTO        `gorm:"embedded;embeddedPrefix:cost_"`
	Status      int            `gorm:"index"`
	DeliveredAt *time.Time
	CreatedAt   time.Time
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents a single line item row belonging to an order.
type OrderItemDTO struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	OrderID   uuid.UUID `gorm:"type:uuid;index"`
	ProductID uuid.UUID `gorm:"type:uuid"`
	Name      string
	UnitPrice float64
	Quantity  int
	ImageURL  string
}

// TableName specifies the database table name for order line items.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// ShippingDTO represents the embedded shipping address snapshot within the order table.
type ShippingDTO struct {
	Address string
	State   string
	City    string
	Pin     string
	Phone   string
}

// PaymentDTO represents the embedded payment snapshot within the order table.
type PaymentDTO struct {
	Method        string
	Status        string
	TransactionID string
	Amount        float64
	PaidAt        *time.Time
}

// CostDTO represents the embedded cost breakdown within the order table.
type CostDTO struct {
	Item     float64
	Tax      float64
	Shipping float64
	Total    float64
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	items := aggregate.Items()
	itemDTOs := make([]OrderItemDTO, 0, len(items))
	for _, item := range items {
		itemDTOs = append(itemDTOs, OrderItemDTO{
			OrderID:   aggregate.ID().Bytes(),
			ProductID: item.ProductID().Bytes(),
			Name:      item.Name(),
			UnitPrice: item.UnitPrice(),
			Quantity:  item.Quantity(),
			ImageURL:  item.ImageURL(),
		})
	}

	shipping := aggregate.Shipping()
	payment := aggregate.Payment()
	cost := aggregate.Cost()

	return OrderDTO{
		ID:         aggregate.ID().Bytes(),
		CustomerID: aggregate.CustomerID().Bytes(),
		Items:      itemDTOs,
		Shipping: ShippingDTO{
			Address: shipping.Address(),
			State:   shipping.State(),
			City:    shipping.City(),
			Pin:     shipping.Pin(),
			Phone:   shipping.Phone(),
		},
		Payment: PaymentDTO{
			Method:        payment.Method(),
			Status:        payment.Status(),
			TransactionID: payment.TransactionID(),
			Amount:        payment.Amount(),
			PaidAt:        payment.PaidAt(),
		},
		Cost: CostDTO{
			Item:     cost.ItemCost(),
			Tax:      cost.TaxCost(),
			Shipping: cost.ShippingCost(),
			Total:    cost.TotalCost(),
		},
		Status:      int(aggregate.Status()),
		DeliveredAt: aggregate.DeliveredAt(),
		CreatedAt:   aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including status and delivery time using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	items := make([]order.LineItem, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		productID, itemErr := kernel.UUIDFromBytes(itemDTO.ProductID[:])
		if itemErr != nil {
			return nil, itemErr
		}

		item, itemErr := order.NewLineItem(
			productID, itemDTO.Name, itemDTO.UnitPrice, itemDTO.Quantity, itemDTO.ImageURL,
		)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	shipping, err := order.NewShippingInfo(
		dto.Shipping.Address, dto.Shipping.State, dto.Shipping.City, dto.Shipping.Pin, dto.Shipping.Phone,
	)
	if err != nil {
		return nil, err
	}

	cost, err := order.NewCostInfo(dto.Cost.Item, dto.Cost.Tax, dto.Cost.Shipping, dto.Cost.Total)
	if err != nil {
		return nil, err
	}

	payment := order.NewPaymentInfo(
		dto.Payment.Method, dto.Payment.Status, dto.Payment.TransactionID, dto.Payment.Amount, dto.Payment.PaidAt,
	)

	return order.RestoreOrder(
		id, customerID, items, shipping, payment, cost,
		order.Status(dto.Status), dto.DeliveredAt, dto.CreatedAt,
	)
}
