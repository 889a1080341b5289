package commands

import (
	"context"

	"ordering/internal/core/domain/model/order"
)

// RemoveOrderItemCommandHandler handles removing a line item from an order.
type RemoveOrderItemCommandHandler struct {
	uowFactory UoWFactory
}

// NewRemoveOrderItemCommandHandler creates a handler for removing order
// items.
func NewRemoveOrderItemCommandHandler(uowFactory UoWFactory) RemoveOrderItemCommandHandler {
	return RemoveOrderItemCommandHandler{uowFactory: uowFactory}
}

// Handle processes the remove-item command. The aggregate refuses to drop
// its last remaining item, so an order always keeps at least one position.
func (h *RemoveOrderItemCommandHandler) Handle(ctx context.Context, cmd RemoveOrderItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return updateOrder(ctx, h.uowFactory, cmd.OrderID(), func(o *order.Order) error {
		return o.RemoveItem(cmd.ProductID())
	})
}
