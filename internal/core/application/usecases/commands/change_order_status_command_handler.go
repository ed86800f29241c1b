package commands

import (
	"context"
	"log/slog"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
)

// ChangeOrderStatusCommandHandler orchestrates order status transitions.
// Shipping an order couples the status change with stock decrements for
// every line item: all items are validated first, then every decrement and
// the status write happen in one transaction, so either the whole shipment
// commits or nothing does.
//
// Example:
//
//	handler := NewChangeOrderStatusCommandHandler(uowFactory, publisher)
//	cmd, _ := NewChangeOrderStatusCommand(orderID, order.Shipped, "admin")
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.As(err, &errs.InsufficientStockError{}):
//	    // 422: some product cannot cover its quantity, stock untouched
//	case errors.As(err, &errs.IllegalTransitionError{}):
//	    // 409: order is not in a status that allows this transition
//	case err != nil:
//	    // other failure
//	}
type ChangeOrderStatusCommandHandler struct {
	uowFactory FulfillmentUoWFactory
	publisher  ports.OrderEventPublisher
}

// NewChangeOrderStatusCommandHandler creates a handler for status change
// operations. Requires a FulfillmentUoWFactory for coordinating transactional
// updates across order and product repositories.
func NewChangeOrderStatusCommandHandler(
	uowFactory FulfillmentUoWFactory,
	publisher ports.OrderEventPublisher,
) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the status change command.
// Admin only. Loads the order, applies the transition through the domain
// model, and persists with a status-conditional update so a concurrent
// transition of the same order cannot be applied twice. Publishes a status
// changed event after commit, best effort.
func (h ChangeOrderStatusCommandHandler) Handle(ctx context.Context, command ChangeOrderStatusCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	if command.ActorRole() != RoleAdmin {
		return ErrActorNotAllowed
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	existingOrder, err := orderRepo.Get(ctx, command.OrderID())
	if err != nil {
		return err
	}

	fromStatus := existingOrder.Status()

	switch command.Status() {
	case order.Shipped:
		if err = h.ship(ctx, uow.ProductRepository(), existingOrder); err != nil {
			return err
		}
	case order.Delivered:
		if err = existingOrder.Deliver(); err != nil {
			return err
		}
	default:
		_, err = fromStatus.Transition(command.Status())
		return err
	}

	if err = orderRepo.UpdateStatusFrom(ctx, existingOrder, fromStatus); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if err = h.publisher.PublishOrderStatusChanged(ctx, existingOrder, fromStatus); err != nil {
		slog.Warn("failed to publish order status changed event",
			"order_id", existingOrder.ID().String(),
			"from", fromStatus.String(),
			"to", existingOrder.Status().String(),
			"error", err)
	}

	return nil
}

// ship validates and applies the shipment in memory through ShipmentService,
// then persists a conditional stock decrement per product. The conditional
// updates re-check stock at the store, so a concurrent shipment racing past
// the in-memory check still cannot drive stock negative.
func (h ChangeOrderStatusCommandHandler) ship(
	ctx context.Context,
	productRepo ports.ProductRepository,
	existingOrder *order.Order,
) error {
	items := existingOrder.Items()
	required := make(map[kernel.UUID]int, len(items))
	ids := make([]kernel.UUID, 0, len(items))

	for _, item := range items {
		if _, ok := required[item.ProductID()]; !ok {
			ids = append(ids, item.ProductID())
		}
		required[item.ProductID()] += item.Quantity()
	}

	products, err := productRepo.GetByIDs(ctx, ids)
	if err != nil {
		return err
	}

	if _, err = services.NewShipmentService().Ship(existingOrder, products); err != nil {
		return err
	}

	for _, id := range ids {
		if _, err = productRepo.DecrementStock(ctx, id, required[id]); err != nil {
			return err
		}
	}

	return nil
}
