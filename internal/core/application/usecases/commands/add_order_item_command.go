package commands

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/guard"
)

var ErrAddOrderItemCommandIsNotConstructed = errors.New(
	"AddOrderItemCommand must be created via NewAddOrderItemCommand constructor",
)

// AddOrderItemCommand represents a request to add a line item to a pending
// order.
type AddOrderItemCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.OrderID
	item    OrderItemInput

	guard guard.ConstructorGuard
}

// NewAddOrderItemCommand creates a command to add an item to the given
// order. The item fields themselves are validated by the domain when the
// line item is built.
func NewAddOrderItemCommand(orderID kernel.OrderID, item OrderItemInput) (AddOrderItemCommand, error) {
	if err := orderID.Validate(); err != nil {
		return AddOrderItemCommand{}, err
	}

	return AddOrderItemCommand{
		orderID: orderID,
		item:    item,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AddOrderItemCommand) Validate() error {
	return c.guard.Validate(ErrAddOrderItemCommandIsNotConstructed)
}

// OrderID returns the order to modify.
func (c AddOrderItemCommand) OrderID() kernel.OrderID { return c.orderID }

// Item returns the requested order position.
func (c AddOrderItemCommand) Item() OrderItemInput { return c.item }
