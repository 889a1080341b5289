package commands

import (
	"context"

	"ordering/internal/core/domain/model/order"
)

// DeliverOrderCommandHandler orchestrates the deliver transition.
type DeliverOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewDeliverOrderCommandHandler creates a handler for order delivery.
func NewDeliverOrderCommandHandler(uowFactory UoWFactory) DeliverOrderCommandHandler {
	return DeliverOrderCommandHandler{uowFactory: uowFactory}
}

// Handle processes the deliver command. Only shipped orders can be
// delivered; delivery is the happy-path terminal state.
func (h *DeliverOrderCommandHandler) Handle(ctx context.Context, cmd DeliverOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return updateOrder(ctx, h.uowFactory, cmd.OrderID(), func(o *order.Order) error {
		return o.Deliver()
	})
}
