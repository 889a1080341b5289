package commands

import (
	"context"

	"ordering/internal/core/domain/model/order"
)

// ShipOrderCommandHandler orchestrates the ship transition.
type ShipOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewShipOrderCommandHandler creates a handler for shipping orders.
func NewShipOrderCommandHandler(uowFactory UoWFactory) ShipOrderCommandHandler {
	return ShipOrderCommandHandler{uowFactory: uowFactory}
}

// Handle processes the ship command. Only confirmed orders can ship.
func (h *ShipOrderCommandHandler) Handle(ctx context.Context, cmd ShipOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return updateOrder(ctx, h.uowFactory, cmd.OrderID(), func(o *order.Order) error {
		return o.Ship()
	})
}
