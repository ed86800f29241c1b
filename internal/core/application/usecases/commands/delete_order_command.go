package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrDeleteOrderCommandIsNotConstructed = errors.New(
		"DeleteOrderCommand must be created via NewDeleteOrderCommand constructor",
	)
	ErrActorRoleIsRequired = errors.New("actor role is required")
)

// DeleteOrderCommand represents a request to delete an order.
// The acting identity is carried explicitly; the handler enforces that only
// the order's owner or an admin may delete it.
type DeleteOrderCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	actorID   kernel.UUID
	actorRole string

	guard guard.ConstructorGuard
}

// NewDeleteOrderCommand creates a command to delete an order.
// Validates that both IDs are valid and the role is present.
func NewDeleteOrderCommand(orderID, actorID kernel.UUID, actorRole string) (DeleteOrderCommand, error) {
	deleteCommand := DeleteOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		deleteCommand.setOrderID(orderID),
		deleteCommand.setActorID(actorID),
		deleteCommand.setActorRole(actorRole),
	); err != nil {
		return DeleteOrderCommand{}, err
	}

	return deleteCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrDeleteOrderCommandIsNotConstructed if validation fails.
func (c DeleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeleteOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to delete.
func (c DeleteOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ActorID returns the identifier of the requesting identity.
func (c DeleteOrderCommand) ActorID() kernel.UUID {
	return c.actorID
}

// ActorRole returns the role of the requesting identity.
func (c DeleteOrderCommand) ActorRole() string {
	return c.actorRole
}

func (c *DeleteOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *DeleteOrderCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}

func (c *DeleteOrderCommand) setActorRole(actorRole string) error {
	if actorRole == "" {
		return ErrActorRoleIsRequired
	}

	c.actorRole = actorRole
	return nil
}
