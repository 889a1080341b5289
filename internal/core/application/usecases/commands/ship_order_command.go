package commands

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/guard"
)

var ErrShipOrderCommandIsNotConstructed = errors.New(
	"ShipOrderCommand must be created via NewShipOrderCommand constructor",
)

// ShipOrderCommand represents a request to mark a confirmed order as
// shipped.
type ShipOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.OrderID

	guard guard.ConstructorGuard
}

// NewShipOrderCommand creates a command to ship the given order.
func NewShipOrderCommand(orderID kernel.OrderID) (ShipOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return ShipOrderCommand{}, err
	}

	return ShipOrderCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ShipOrderCommand) Validate() error {
	return c.guard.Validate(ErrShipOrderCommandIsNotConstructed)
}

// OrderID returns the order to ship.
func (c ShipOrderCommand) OrderID() kernel.OrderID { return c.orderID }
