package commands

import (
	"context"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
)

// CreateOrderCommandHandler handles the business logic for order placement.
// Builds the aggregate from validated value objects, persists it and stages
// the order-created event in the outbox within the same transaction.
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order placement.
func NewCreateOrderCommandHandler(uowFactory UoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command. The order starts in Pending
// status; its recorded creation event is committed together with the order
// row and published afterwards by the outbox relay.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	aggregate, err := buildOrder(cmd)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Save(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.OutboxRepository().Add(ctx, aggregate.ID().String(), aggregate.Events()); err != nil {
		return err
	}
	aggregate.ClearEvents()

	return uow.Commit(ctx)
}

// buildOrder converts command input into domain value objects and constructs
// the aggregate, failing fast on the first invalid field group.
func buildOrder(cmd CreateOrderCommand) (*order.Order, error) {
	orderDate, err := order.NewOrderDate(cmd.OrderDate())
	if err != nil {
		return nil, err
	}

	deliveryDate, err := order.NewDeliveryDate(cmd.DeliveryDate())
	if err != nil {
		return nil, err
	}

	inputs := cmd.Items()
	items := make([]order.LineItem, 0, len(inputs))
	for _, input := range inputs {
		productID, idErr := kernel.ProductIDFromString(input.ProductID)
		if idErr != nil {
			return nil, idErr
		}

		item, itemErr := order.NewLineItem(
			productID, input.Quantity, input.Name, input.Description, input.UnitPrice,
		)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.NewOrder(cmd.OrderID(), cmd.CustomerID(), orderDate, deliveryDate, items)
}
