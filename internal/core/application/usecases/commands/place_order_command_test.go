package commands_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestItems(t *testing.T, productID kernel.UUID, quantity int) []order.LineItem {
	t.Helper()
	item, err := order.NewLineItem(productID, "Walnut desk", 249.99, quantity, "https://img.example/desk.png")
	require.NoError(t, err)
	return []order.LineItem{item}
}

func newTestCost(t *testing.T) order.CostInfo {
	t.Helper()
	cost, err := order.NewCostInfo(249.99, 20.00, 15.00, 284.99)
	require.NoError(t, err)
	return cost
}

func newTestPayment() order.PaymentInfo {
	return order.NewPaymentInfo("card", order.PaymentStatusPending, "", 284.99, nil)
}

func TestNewPlaceOrderCommand_Success(t *testing.T) {
	orderID := kernel.NewUUID()
	customerID := kernel.NewUUID()
	productID := kernel.NewUUID()
	items := newTestItems(t, productID, 2)

	cmd, err := commands.NewPlaceOrderCommand(orderID, customerID, items, newTestPayment(), newTestCost(t))

	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, orderID, cmd.OrderID())
	assert.Equal(t, customerID, cmd.CustomerID())
	assert.Len(t, cmd.Items(), 1)
	assert.Equal(t, productID, cmd.Items()[0].ProductID())
	assert.InEpsilon(t, 284.99, cmd.Cost().TotalCost(), 0.0001)
}

func TestNewPlaceOrderCommand_InvalidOrderID(t *testing.T) {
	customerID := kernel.NewUUID()
	items := newTestItems(t, kernel.NewUUID(), 1)

	_, err := commands.NewPlaceOrderCommand(kernel.UUID{}, customerID, items, newTestPayment(), newTestCost(t))

	require.Error(t, err)
}

func TestNewPlaceOrderCommand_InvalidCustomerID(t *testing.T) {
	orderID := kernel.NewUUID()
	items := newTestItems(t, kernel.NewUUID(), 1)

	_, err := commands.NewPlaceOrderCommand(orderID, kernel.UUID{}, items, newTestPayment(), newTestCost(t))

	require.Error(t, err)
}

func TestNewPlaceOrderCommand_EmptyItems(t *testing.T) {
	orderID := kernel.NewUUID()
	customerID := kernel.NewUUID()

	_, err := commands.NewPlaceOrderCommand(orderID, customerID, nil, newTestPayment(), newTestCost(t))

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrItemsAreRequired)
}

func TestPlaceOrderCommand_Validate_NotConstructed(t *testing.T) {
	cmd := commands.PlaceOrderCommand{}

	err := cmd.Validate()

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrPlaceOrderCommandIsNotConstructed)
}
