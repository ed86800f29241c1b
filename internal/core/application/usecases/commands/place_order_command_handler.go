package commands

import (
	"context"
	"log/slog"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"
)

// PlaceOrderCommandHandler handles the business logic for order placement.
// Resolves the customer's stored shipping address, snapshots it into the
// order, and persists the order in "processing" status. Stock is not touched
// at placement time; it is adjusted when the order ships.
//
// Example:
//
//	handler := NewPlaceOrderCommandHandler(uowFactory, publisher)
//	cmd, _ := NewPlaceOrderCommand(orderID, customerID, items, payment, cost)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order placement failed: %w", err)
//	}
//	// Order is now in "processing" status, awaiting shipment
type PlaceOrderCommandHandler struct {
	uowFactory PlaceOrderUoWFactory
	publisher  ports.OrderEventPublisher
}

// NewPlaceOrderCommandHandler creates a handler for order placement operations.
// Requires a PlaceOrderUoWFactory for transactional persistence and an
// event publisher for the post-commit announcement.
func NewPlaceOrderCommandHandler(
	uowFactory PlaceOrderUoWFactory,
	publisher ports.OrderEventPublisher,
) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the order placement command.
// Loads the customer's stored address inside the transaction; a customer
// without an address cannot place an order and no order row is written.
// Publishes an order created event after commit, best effort.
func (h PlaceOrderCommandHandler) Handle(ctx context.Context, command PlaceOrderCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	addressRepo := uow.AddressRepository()
	orderRepo := uow.OrderRepository()

	customerAddress, err := addressRepo.GetByCustomer(ctx, command.CustomerID())
	if err != nil {
		return err
	}

	shipping, err := order.NewShippingInfo(
		customerAddress.Address(),
		customerAddress.State(),
		customerAddress.City(),
		customerAddress.Pin(),
		customerAddress.Phone(),
	)
	if err != nil {
		return err
	}

	newOrder, err := order.NewOrder(
		command.OrderID(),
		command.CustomerID(),
		command.Items(),
		shipping,
		command.Payment(),
		command.Cost(),
	)
	if err != nil {
		return err
	}

	if err = orderRepo.Add(ctx, newOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if err = h.publisher.PublishOrderCreated(ctx, newOrder); err != nil {
		slog.Warn("failed to publish order created event",
			"order_id", newOrder.ID().String(),
			"error", err)
	}

	return nil
}
