package commands_test

import (
	"testing"
	"time"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validItemInputs() []commands.OrderItemInput {
	return []commands.OrderItemInput{
		{
			ProductID: kernel.NewProductID().String(),
			Quantity:  2,
			Name:      "Mechanical keyboard",
			UnitPrice: 89.90,
		},
	}
}

func TestNewCreateOrderCommand_ValidInput(t *testing.T) {
	orderID := kernel.NewOrderID()
	customerID := kernel.NewCustomerID()
	orderDate := time.Now()
	deliveryDate := orderDate.AddDate(0, 0, 3)
	items := validItemInputs()

	cmd, err := commands.NewCreateOrderCommand(orderID, customerID, orderDate, deliveryDate, items)
	require.NoError(t, err)
	assert.Equal(t, orderID, cmd.OrderID())
	assert.Equal(t, customerID, cmd.CustomerID())
	assert.Equal(t, orderDate, cmd.OrderDate())
	assert.Equal(t, deliveryDate, cmd.DeliveryDate())
	assert.Equal(t, items, cmd.Items())
}

func TestNewCreateOrderCommand_InvalidOrderID(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(
		kernel.OrderID{}, kernel.NewCustomerID(), time.Now(), time.Now(), validItemInputs(),
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewCreateOrderCommand_InvalidCustomerID(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(
		kernel.NewOrderID(), kernel.CustomerID{}, time.Now(), time.Now(), validItemInputs(),
	)
	require.Error(t, err)
}

func TestNewCreateOrderCommand_ZeroDates(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(
		kernel.NewOrderID(), kernel.NewCustomerID(), time.Time{}, time.Time{}, validItemInputs(),
	)
	require.Error(t, err)
}

func TestNewCreateOrderCommand_EmptyItems(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(
		kernel.NewOrderID(), kernel.NewCustomerID(), time.Now(), time.Now(), nil,
	)
	require.Error(t, err)
}

func TestCreateOrderCommand_Items_ReturnsCopy(t *testing.T) {
	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewOrderID(), kernel.NewCustomerID(), time.Now(), time.Now(), validItemInputs(),
	)
	require.NoError(t, err)

	items := cmd.Items()
	items[0].Quantity = 999
	assert.NotEqual(t, 999, cmd.Items()[0].Quantity)
}

func TestCreateOrderCommand_NotConstructed(t *testing.T) {
	cmd := commands.CreateOrderCommand{}
	require.Error(t, cmd.Validate())
}
