package commands

import (
	"context"

	"ordering/internal/core/domain/model/order"
)

// CancelOrderCommandHandler orchestrates order cancellation.
type CancelOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(uowFactory UoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{uowFactory: uowFactory}
}

// Handle processes the cancel command. Cancellation is only possible while
// the order is pending or confirmed; once goods leave the warehouse the
// request fails with the status-specific lifecycle error.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return updateOrder(ctx, h.uowFactory, cmd.OrderID(), func(o *order.Order) error {
		return o.Cancel()
	})
}
