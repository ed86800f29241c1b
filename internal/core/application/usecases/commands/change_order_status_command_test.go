package commands_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewChangeOrderStatusCommand_Success(t *testing.T) {
	orderID := kernel.NewUUID()

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, order.Shipped, commands.RoleAdmin)

	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, orderID, cmd.OrderID())
	assert.Equal(t, order.Shipped, cmd.Status())
	assert.Equal(t, commands.RoleAdmin, cmd.ActorRole())
}

func TestNewChangeOrderStatusCommand_InvalidOrderID(t *testing.T) {
	_, err := commands.NewChangeOrderStatusCommand(kernel.UUID{}, order.Shipped, commands.RoleAdmin)

	require.Error(t, err)
}

func TestNewChangeOrderStatusCommand_UnknownStatus(t *testing.T) {
	_, err := commands.NewChangeOrderStatusCommand(kernel.NewUUID(), order.Unknown, commands.RoleAdmin)

	require.Error(t, err)
}

func TestNewChangeOrderStatusCommand_EmptyRole(t *testing.T) {
	_, err := commands.NewChangeOrderStatusCommand(kernel.NewUUID(), order.Shipped, "")

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrActorRoleIsRequired)
}

func TestChangeOrderStatusCommand_Validate_NotConstructed(t *testing.T) {
	cmd := commands.ChangeOrderStatusCommand{}

	err := cmd.Validate()

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrChangeOrderStatusCommandIsNotConstructed)
}
