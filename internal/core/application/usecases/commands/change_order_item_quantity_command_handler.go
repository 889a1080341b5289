package commands

import (
	"context"

	"ordering/internal/core/domain/model/order"
)

// ChangeOrderItemQuantityCommandHandler handles quantity changes on order
// line items.
type ChangeOrderItemQuantityCommandHandler struct {
	uowFactory UoWFactory
}

// NewChangeOrderItemQuantityCommandHandler creates a handler for changing
// item quantities.
func NewChangeOrderItemQuantityCommandHandler(uowFactory UoWFactory) ChangeOrderItemQuantityCommandHandler {
	return ChangeOrderItemQuantityCommandHandler{uowFactory: uowFactory}
}

// Handle processes the change-quantity command.
func (h *ChangeOrderItemQuantityCommandHandler) Handle(
	ctx context.Context, cmd ChangeOrderItemQuantityCommand,
) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return updateOrder(ctx, h.uowFactory, cmd.OrderID(), func(o *order.Order) error {
		return o.ChangeItemQuantity(cmd.ProductID(), cmd.Quantity().Value())
	})
}
