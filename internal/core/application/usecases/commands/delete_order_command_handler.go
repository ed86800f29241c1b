package commands

import (
	"context"
	"errors"
)

// ErrActorNotAllowed is returned when the acting identity may not perform
// the requested operation on the target order.
var ErrActorNotAllowed = errors.New("actor is not allowed to perform this operation")

// DeleteOrderCommandHandler handles the business logic for order deletion.
// Deletion is terminal bookkeeping: it never restores stock, even when the
// order has already shipped.
//
// Example:
//
//	handler := NewDeleteOrderCommandHandler(uowFactory)
//	cmd, _ := NewDeleteOrderCommand(orderID, customerID, "customer")
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, ErrActorNotAllowed):
//	    // 403: order belongs to someone else
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    // 404: no such order
//	case err != nil:
//	    // 500
//	}
type DeleteOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewDeleteOrderCommandHandler creates a handler for order deletion operations.
// Requires an OrderUoWFactory for transactional persistence.
func NewDeleteOrderCommandHandler(uowFactory OrderUoWFactory) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order deletion command.
// Loads the order to check ownership: the order's owner and admins may
// delete, anyone else gets ErrActorNotAllowed. Stock levels are left as
// they are regardless of the order's status.
func (h DeleteOrderCommandHandler) Handle(ctx context.Context, command DeleteOrderCommand) error {
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

	orderRepo := uow.OrderRepository()

	existingOrder, err := orderRepo.Get(ctx, command.OrderID())
	if err != nil {
		return err
	}

	if command.ActorRole() != RoleAdmin && !existingOrder.CustomerID().IsEqual(command.ActorID()) {
		return ErrActorNotAllowed
	}

	if err = orderRepo.Delete(ctx, command.OrderID()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
