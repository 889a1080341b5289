package commands

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/guard"
)

var ErrRemoveOrderItemCommandIsNotConstructed = errors.New(
	"RemoveOrderItemCommand must be created via NewRemoveOrderItemCommand constructor",
)

// RemoveOrderItemCommand represents a request to remove a line item from a
// pending order.
type RemoveOrderItemCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.OrderID
	productID kernel.ProductID

	guard guard.ConstructorGuard
}

// NewRemoveOrderItemCommand creates a command to remove the item for the
// given product from the given order.
func NewRemoveOrderItemCommand(
	orderID kernel.OrderID, productID kernel.ProductID,
) (RemoveOrderItemCommand, error) {
	if err := errors.Join(orderID.Validate(), productID.Validate()); err != nil {
		return RemoveOrderItemCommand{}, err
	}

	return RemoveOrderItemCommand{
		orderID:   orderID,
		productID: productID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveOrderItemCommand) Validate() error {
	return c.guard.Validate(ErrRemoveOrderItemCommandIsNotConstructed)
}

// OrderID returns the order to modify.
func (c RemoveOrderItemCommand) OrderID() kernel.OrderID { return c.orderID }

// ProductID returns the product whose line item is removed.
func (c RemoveOrderItemCommand) ProductID() kernel.ProductID { return c.productID }
