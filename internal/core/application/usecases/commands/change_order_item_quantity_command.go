package commands

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/guard"
)

var ErrChangeOrderItemQuantityCommandIsNotConstructed = errors.New(
	"ChangeOrderItemQuantityCommand must be created via NewChangeOrderItemQuantityCommand constructor",
)

// ChangeOrderItemQuantityCommand represents a request to change the
// quantity of an existing line item on a pending order.
type ChangeOrderItemQuantityCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.OrderID
	productID kernel.ProductID
	quantity  order.ProductQuantity

	guard guard.ConstructorGuard
}

// NewChangeOrderItemQuantityCommand creates a command to set the quantity of
// the given product's line item.
func NewChangeOrderItemQuantityCommand(
	orderID kernel.OrderID, productID kernel.ProductID, quantity order.ProductQuantity,
) (ChangeOrderItemQuantityCommand, error) {
	if err := errors.Join(
		orderID.Validate(), productID.Validate(), quantity.Validate(),
	); err != nil {
		return ChangeOrderItemQuantityCommand{}, err
	}

	return ChangeOrderItemQuantityCommand{
		orderID:   orderID,
		productID: productID,
		quantity:  quantity,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeOrderItemQuantityCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderItemQuantityCommandIsNotConstructed)
}

// OrderID returns the order to modify.
func (c ChangeOrderItemQuantityCommand) OrderID() kernel.OrderID { return c.orderID }

// ProductID returns the product whose line item is changed.
func (c ChangeOrderItemQuantityCommand) ProductID() kernel.ProductID { return c.productID }

// Quantity returns the new quantity.
func (c ChangeOrderItemQuantityCommand) Quantity() order.ProductQuantity { return c.quantity }
