package commands

import (
	"context"

	"ordering/internal/core/domain/model/order"
)

// ConfirmOrderCommandHandler orchestrates the confirm transition: load,
// confirm, save, stage the event, with bounded retry on concurrent writers.
type ConfirmOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewConfirmOrderCommandHandler creates a handler for order confirmation.
func NewConfirmOrderCommandHandler(uowFactory UoWFactory) ConfirmOrderCommandHandler {
	return ConfirmOrderCommandHandler{uowFactory: uowFactory}
}

// Handle processes the confirm command. A lifecycle violation (already
// cancelled, already shipped, already delivered) is returned as-is and never
// retried; only optimistic conflicts restart the cycle.
func (h *ConfirmOrderCommandHandler) Handle(ctx context.Context, cmd ConfirmOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return updateOrder(ctx, h.uowFactory, cmd.OrderID(), func(o *order.Order) error {
		return o.Confirm()
	})
}
