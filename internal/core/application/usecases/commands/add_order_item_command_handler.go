package commands

import (
	"context"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
)

// AddOrderItemCommandHandler handles adding a line item to an order. Item
// mutation is only allowed while the order is pending; the aggregate
// enforces that and rejects duplicate products.
type AddOrderItemCommandHandler struct {
	uowFactory UoWFactory
}

// NewAddOrderItemCommandHandler creates a handler for adding order items.
func NewAddOrderItemCommandHandler(uowFactory UoWFactory) AddOrderItemCommandHandler {
	return AddOrderItemCommandHandler{uowFactory: uowFactory}
}

// Handle processes the add-item command.
func (h *AddOrderItemCommandHandler) Handle(ctx context.Context, cmd AddOrderItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	input := cmd.Item()
	productID, err := kernel.ProductIDFromString(input.ProductID)
	if err != nil {
		return err
	}

	item, err := order.NewLineItem(
		productID, input.Quantity, input.Name, input.Description, input.UnitPrice,
	)
	if err != nil {
		return err
	}

	return updateOrder(ctx, h.uowFactory, cmd.OrderID(), func(o *order.Order) error {
		return o.AddItem(item)
	})
}
